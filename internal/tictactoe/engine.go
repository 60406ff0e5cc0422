package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

const (
	MinBoardSize     = 3
	MaxBoardSize     = 15
	DefaultBoardSize = 3
)

// Create - returns a fresh game on an empty size×size board with X to move.
func Create(size int) (entity.Game, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return entity.Game{}, fmt.Errorf("%w: %d is outside [%d, %d]", apperror.ErrInvalidSize, size, MinBoardSize, MaxBoardSize)
	}

	return entity.Game{
		Board:  entity.NewBoard(size),
		Turn:   entity.PlayerX,
		Winner: entity.EmptyCell,
		Status: entity.StatusOngoing,
	}, nil
}

// Reset - discards the current game entirely; the board size may change.
func Reset(size int) (entity.Game, error) {
	return Create(size)
}

// CheckMove - reports why placing the current mark at (row, col) would be ignored.
func CheckMove(game entity.Game, row, col int) error {
	if game.IsFinished() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	if !game.Board.InBounds(row, col) {
		return fmt.Errorf("%w: %w (%d, %d)", apperror.ErrIllegalMove, apperror.ErrInvalidCell, row, col)
	}

	if game.Board.At(row, col) != entity.EmptyCell {
		return fmt.Errorf("%w: %w (%d, %d)", apperror.ErrIllegalMove, apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// ApplyMove - places the current mark at (row, col) and returns the next state.
// The given game is never modified. An illegal move returns the game unchanged.
func ApplyMove(game entity.Game, row, col int) entity.Game {
	if err := CheckMove(game, row, col); err != nil {
		return game
	}

	next := game
	next.Board = game.Board.Clone()
	next.Board.Cells[next.Board.Index(row, col)] = game.Turn
	next.Moves++

	switch {
	case completesLine(next.Board, row, col, game.Turn):
		next.Winner = game.Turn
		next.Status = entity.StatusFinished
	case next.Board.IsFull():
		next.Winner = entity.PlayerTie
		next.Status = entity.StatusFinished
	default:
		next.Turn = game.Turn.Opponent()
	}

	return next
}

// completesLine - checks only the lines through (row, col), in the same order as Lines.
func completesLine(board entity.Board, row, col int, mark entity.Mark) bool {
	size := board.Size

	if lineHolds(board, mark, func(i int) (int, int) { return row, i }) {
		return true
	}

	if lineHolds(board, mark, func(i int) (int, int) { return i, col }) {
		return true
	}

	if row == col && lineHolds(board, mark, func(i int) (int, int) { return i, i }) {
		return true
	}

	return row+col == size-1 && lineHolds(board, mark, func(i int) (int, int) { return i, size - 1 - i })
}

func lineHolds(board entity.Board, mark entity.Mark, cell func(i int) (int, int)) bool {
	for i := range board.Size {
		if board.At(cell(i)) != mark {
			return false
		}
	}

	return true
}
