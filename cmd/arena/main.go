package main

/*

Self-play arena: the MCTS engine against itself or against a random mover,
both sides starting equally often. Ctrl+C stops the arena, unfinished games
are not counted.

*/

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-uttt/internal/logger"
	"github.com/IlikeChooros/go-uttt/pkg/bench"
	"github.com/IlikeChooros/go-uttt/pkg/mcts"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// Baseline opponent, plays uniformly random legal moves
type randomPlayer struct {
	r *rand.Rand
}

func (p *randomPlayer) ChooseMove(b uttt.Board) (uttt.Board, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return b, mcts.ErrNoLegalMoves
	}
	return b.Apply(moves[p.r.Intn(len(moves))]), nil
}

func main() {
	var (
		games    = flag.Int("games", 10, "number of games to play")
		workers  = flag.Int("workers", 2, "number of games played in parallel")
		opponent = flag.String("opponent", "mcts", "second player: 'mcts' or 'random'")
		logLevel = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
		asJSON   = flag.Bool("json", false, "print the summary as JSON to stdout")
	)
	flag.Parse()

	log, err := logger.New(os.Stderr, *logLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	engine := func() bench.Player {
		e := mcts.NewMCTS()
		e.SetLogger(log)
		return e
	}

	var second bench.PlayerFactory
	switch *opponent {
	case "mcts":
		second = engine
	case "random":
		second = func() bench.Player {
			return &randomPlayer{r: rand.New(rand.NewSource(mcts.SeedGeneratorFn()))}
		}
	default:
		log.Fatal().Str("opponent", *opponent).Msg("unknown opponent, use 'mcts' or 'random'")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	arena := bench.NewVersusArena(engine, second).WithContext(ctx)
	arena.P1Name, arena.P2Name = "mcts", *opponent
	if *opponent == "mcts" {
		arena.P2Name = "mcts2"
	}
	arena.Setup(*games, *workers)

	if err := arena.Run(bench.NewLogListener(log)); err != nil {
		log.Error().Err(err).Msg("arena stopped")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(arena.Summary()); err != nil {
			log.Fatal().Err(err).Msg("cannot encode the summary")
		}
	}
}
