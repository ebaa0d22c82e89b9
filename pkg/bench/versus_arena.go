package bench

import (
	"context"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
players, both starting equally often.
*/

// Anything that picks the next position, *mcts.MCTS satisfies it
type Player interface {
	ChooseMove(board uttt.Board) (uttt.Board, error)
}

// Creates a new player, every worker gets its own pair of players
type PlayerFactory func() Player

type VersusArena struct {
	VersusArenaStats
	Player1  PlayerFactory
	Player2  PlayerFactory
	P1Name   string
	P2Name   string
	NGames   int
	NWorkers int
	Position uttt.Board
	ctx      context.Context
}

func NewVersusArena(player1, player2 PlayerFactory) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		P1Name:   "player1",
		P2Name:   "player2",
		NGames:   100,
		NWorkers: 2,
		Position: uttt.NewBoard(),
		ctx:      context.Background(),
	}
}

// Make the arena cancellable, unfinished games are not counted
func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers int) {
	va.NGames = nGames
	va.NWorkers = nWorkers
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.workers(),
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
}

func (va *VersusArena) workers() int {
	return max(1, min(va.NWorkers, va.NGames))
}

// Play all games, split equally between the workers, and block until they
// are done. Returns the first error of any worker (a player error or the
// context's error), the remaining workers are cancelled then.
func (va *VersusArena) Run(listener ListenerLike) error {
	if va.Player1 == nil || va.Player2 == nil {
		return errors.New("versus arena: both players must be set")
	}

	listener.OnStart()
	g, ctx := errgroup.WithContext(va.ctx)

	nWorkers := va.workers()
	nGames := va.NGames / nWorkers
	rest := va.NGames % nWorkers
	for id := 0; id < nWorkers; id++ {
		id := id
		games := nGames
		if id < rest {
			games++
		}

		p1, p2 := va.Player1(), va.Player2()
		g.Go(func() error {
			return va.worker(ctx, id, games, listener, p1, p2)
		})
	}

	err := g.Wait()
	listener.Summary(va.Summary())
	listener.OnEnd()
	return err
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, listener ListenerLike, p1, p2 Player) error {
	local := VersusArenaStats{}
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   va.P1Name,
		P2Name:   va.P2Name,
	}

	for i := 0; i < nGames; i++ {
		// Alternate the first player
		p1WentFirst := i%2 == 0
		first, second := p1, p2
		if !p1WentFirst {
			first, second = p2, p1
		}

		info.FinishedGames = i
		board, err := playGame(ctx, first, second, va.Position, listener, info)
		if err != nil {
			return errors.WithMessagef(err, "worker %d, game %d", id, i+1)
		}

		outcome := computeOutcome(board)
		result := toAgentResult(outcome, p1WentFirst)
		va.record(result, outcome)
		local.record(result, outcome)

		info.P1Wins, info.P2Wins, info.Draws = local.P1Wins(), local.P2Wins(), local.Draws()
		info.FirstToMoveWins, info.SecondToMoveWins = local.FirstToMoveWins(), local.SecondToMoveWins()
	}

	info.FinishedGames = nGames
	info.Moves, info.GameMoveNum = nil, 0
	listener.OnFinishedWork(info)
	return nil
}

// Play a single game from 'position', 'first' making the first move.
// Returns the final board.
func playGame(ctx context.Context, first, second Player, position uttt.Board,
	listener ListenerLike, info VersusWorkerInfo,
) (uttt.Board, error) {
	board := position
	moves := make([]uttt.Move, 0, 81)
	players := [2]Player{first, second}

	info.Board = board
	listener.OnGameStart(info)

	for turn := 0; !board.IsGameOver(); turn++ {
		if err := ctx.Err(); err != nil {
			return board, err
		}

		next, err := players[turn%2].ChooseMove(board)
		if err != nil {
			return board, err
		}

		move, ok := next.LastMove()
		if !ok || !board.IsLegal(move) || board.Apply(move) != next {
			return board, errors.WithMessagef(uttt.ErrIllegalMove, "player returned %s from %s", next.Notation(), board.Notation())
		}

		board = next
		moves = append(moves, move)
		info.Moves, info.GameMoveNum, info.Board = moves, len(moves), board
		listener.OnMoveMade(info)
	}

	info.FinishedGames++
	listener.OnFinishedGame(info)
	return board, nil
}
