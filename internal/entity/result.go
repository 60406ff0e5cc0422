package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
)

// ResultField names a mark column of a stored GameResult that can be grouped by.
type ResultField string

const (
	FieldWinner ResultField = "winner"
	FieldLoser  ResultField = "loser"
)

// GameResult is the persisted outcome of one completed game.
type GameResult struct {
	Winner *Mark `json:"winner"`
	Loser  *Mark `json:"loser"`
	IsDraw bool  `json:"draw"`
}

func NewWinResult(winner Mark) GameResult {
	loser := winner.Opponent()

	return GameResult{
		Winner: &winner,
		Loser:  &loser,
	}
}

func NewDrawResult() GameResult {
	return GameResult{IsDraw: true}
}

// Mark - returns the mark stored under field, or nil when absent.
func (that GameResult) Mark(field ResultField) *Mark {
	switch field {
	case FieldWinner:
		return that.Winner
	case FieldLoser:
		return that.Loser
	default:
		return nil
	}
}

// Validate - a draw carries no marks, any other result carries two different player marks.
func (that GameResult) Validate() error {
	if that.IsDraw {
		if that.Winner != nil || that.Loser != nil {
			return fmt.Errorf("%w: draw must not have winner or loser", apperror.ErrInvalidResult)
		}
		return nil
	}

	if that.Winner == nil || !that.Winner.IsPlayer() {
		return fmt.Errorf("%w: winner must be one of X, O", apperror.ErrInvalidResult)
	}

	if that.Loser == nil || !that.Loser.IsPlayer() {
		return fmt.Errorf("%w: loser must be one of X, O", apperror.ErrInvalidResult)
	}

	if *that.Winner == *that.Loser {
		return fmt.Errorf("%w: winner and loser are the same mark", apperror.ErrInvalidResult)
	}

	return nil
}

// StatsSnapshot is aggregated from the full result history on every request.
type StatsSnapshot struct {
	Wins   map[Mark]int64 `json:"wins"`
	Losses map[Mark]int64 `json:"losses"`
	Draws  int64          `json:"draws"`
}

// NewStatsSnapshot - returns a snapshot with a zero count for every player mark.
func NewStatsSnapshot() *StatsSnapshot {
	stats := &StatsSnapshot{
		Wins:   make(map[Mark]int64, 2),
		Losses: make(map[Mark]int64, 2),
	}

	for _, mark := range Marks() {
		stats.Wins[mark] = 0
		stats.Losses[mark] = 0
	}

	return stats
}
