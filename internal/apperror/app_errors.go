package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrGameFinished     = errors.New("game is already finished")
	ErrOutOfBounds      = errors.New("cell is outside the board")
	ErrCellOccupied     = errors.New("cell is already occupied")
)
