package apperror

import "errors"

var (
	ErrInvalidSize        = errors.New("invalid board size")
	ErrIllegalMove        = errors.New("illegal move")
	ErrGameFinished       = errors.New("game is already finished")
	ErrInvalidCell        = errors.New("invalid cell")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidResult      = errors.New("invalid game result")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrSessionNotFound    = errors.New("game session not found")
)
