package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IlikeChooros/go-uttt/pkg/mcts"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const banner = `
 Ultimate Tic Tac Toe 

  Type "exit" to quit the game
  Move format [big row, big col, small row, small col]: example 1,2,2,3 
`

type game struct {
	board  uttt.Board
	engine *mcts.MCTS
	human  uttt.PieceType // mark of the human player, ignored when 'pvp'
	pvp    bool
	render *renderer
	log    zerolog.Logger
}

// Engine plays the other mark than 'human'. If 'dotPath' is set, every
// search tree (two levels deep) is written there in DOT format.
func newGame(human uttt.PieceType, pvp bool, render *renderer, log zerolog.Logger, dotPath string) *game {
	g := &game{
		board:  uttt.NewBoard(),
		human:  human,
		pvp:    pvp,
		render: render,
		log:    log,
	}

	if !pvp {
		g.engine = mcts.NewMCTS()
		g.engine.SetLogger(log)
		g.engine.StatsListener().OnStop(func(stats mcts.ListenerTreeStats) {
			log.Info().
				Stringer("move", stats.BestMove).
				Float64("eval", stats.Eval).
				Int("cycles", stats.Cycles).
				Int("nodes", stats.Size).
				Int("ms", stats.TimeMs).
				Msg("AI move")

			if dotPath == "" {
				return
			}
			dot, err := stats.Tree.ToDot(2)
			if err == nil {
				err = os.WriteFile(dotPath, []byte(dot), 0o644)
			}
			if err != nil {
				log.Warn().Err(err).Str("path", dotPath).Msg("cannot write the search tree")
			}
		})
	}
	return g
}

func (g *game) engineTurn() bool {
	return !g.pvp && g.board.ToMove() != g.human
}

// Message announcing the end of the game
func (g *game) result() string {
	outcome := g.board.Outcome()
	if outcome.Status == uttt.Drawn {
		return "Game is drawn!"
	}
	if !g.pvp && outcome.Winner != g.human {
		return "AI has won the game!"
	}
	return fmt.Sprintf("Player '%s' has won the game!", outcome.Winner)
}

// Play until the game ends, the input runs out or "exit" is typed
func (g *game) run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, g.render.Render(g.board))
		if g.board.IsGameOver() {
			fmt.Fprintf(out, "%s\n\n", g.result())
			g.log.Debug().Str("position", g.board.Notation()).Stringer("outcome", g.board.Outcome()).Msg("game over")
			return nil
		}

		if g.engineTurn() {
			fmt.Fprintln(out, "AI is making a move...")
			next, err := g.engine.ChooseMove(g.board)
			if err != nil {
				return errors.WithMessage(err, "engine move")
			}
			g.board = next
			continue
		}

		fmt.Fprintf(out, "Player '%s' move > ", g.board.ToMove())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "exit":
			return nil
		case "":
			continue
		}

		move, err := uttt.ParseMove(input)
		if err != nil {
			fmt.Fprintln(out, "  Error:", err)
			fmt.Fprintln(out, "  Illegal command!")
			continue
		}

		next, err := g.board.MakeLegalMove(move)
		if err != nil {
			g.log.Debug().Err(err).Msg("rejected move")
			fmt.Fprintln(out, " Illegal move!")
			continue
		}
		g.board = next
	}
}
