package bench

import (
	"github.com/rs/zerolog"
)

// Arena progress callbacks. Workers call them concurrently,
// so implementations must be safe for concurrent use.
type ListenerLike interface {
	OnStart()
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
}

// Listener writing the arena progress to a zerolog logger:
// moves at trace, games at debug, workers and the summary at info
type LogListener struct {
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnStart() {
	l.logger.Info().Msg("arena started")
}

func (l *LogListener) OnGameStart(info VersusWorkerInfo) {
	l.logger.Debug().Int("worker", info.WorkerID).Int("game", info.FinishedGames+1).Int("of", info.NGames).Msg("game started")
}

func (l *LogListener) OnMoveMade(info VersusWorkerInfo) {
	if len(info.Moves) == 0 {
		return
	}
	l.logger.Trace().
		Int("worker", info.WorkerID).
		Int("ply", info.GameMoveNum).
		Stringer("move", info.Moves[len(info.Moves)-1]).
		Msg("move")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("plies", info.GameMoveNum).
		Stringer("outcome", info.Board.Outcome()).
		Str("position", info.Board.Notation()).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Info().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int(info.P1Name, info.P1Wins).
		Int(info.P2Name, info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker finished")
}

func (l *LogListener) Summary(summary VersusSummaryInfo) {
	l.logger.Info().
		Int("games", summary.TotalGames).
		Int(summary.P1Name, summary.P1Wins).
		Int(summary.P2Name, summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first_to_move_wins", summary.FirstToMoveWins).
		Int("second_to_move_wins", summary.SecondToMoveWins).
		Msg("arena summary")
}

func (l *LogListener) OnEnd() {
	l.logger.Info().Msg("arena finished")
}
