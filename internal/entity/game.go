package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	MinBoardSize = 3
	MaxBoardSize = 9
)

// Game represents one match on an N×N board. The board is stored row-major,
// so the cell at (row, col) lives at index row*Size+col.
type Game struct {
	ID         string
	Size       int
	Board      []string
	PlayerTurn string
	Winner     string
	Status     string
}

// NewGame - creates a fresh game of the given board size. Player X always
// opens.
func NewGame(id string, size int) (*Game, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d is not within [%d, %d]", apperror.ErrInvalidBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	return &Game{
		ID:         id,
		Size:       size,
		Board:      make([]string, size*size),
		PlayerTurn: PlayerX,
		Winner:     "",
		Status:     StatusOngoing,
	}, nil
}

func (that *Game) index(row, col int) int {
	return row*that.Size + col
}

func (that *Game) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

// At returns the mark at (row, col). The caller must stay in bounds.
func (that *Game) At(row, col int) string {
	return that.Board[that.index(row, col)]
}

func (that *Game) Set(row, col int, mark string) {
	that.Board[that.index(row, col)] = mark
}

func (that *Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

// Snapshot returns a deep copy of the game, so callers can render or inspect
// state without being able to mutate the live board.
func (that *Game) Snapshot() *Game {
	board := make([]string, len(that.Board))
	copy(board, that.Board)

	return &Game{
		ID:         that.ID,
		Size:       that.Size,
		Board:      board,
		PlayerTurn: that.PlayerTurn,
		Winner:     that.Winner,
		Status:     that.Status,
	}
}
