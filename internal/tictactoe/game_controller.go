package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn places the active player's mark at (row, col) and advances the
// game. A rejected turn leaves the game exactly as it was.
func MakeTurn(gameInstance *entity.Game, row, col int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	mover := gameInstance.PlayerTurn
	gameInstance.Set(row, col, mover)
	updateGameStatus(gameInstance, row, col, mover)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, row, col int) error {
	if !gameInstance.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if gameInstance.At(row, col) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move. A full board with a
// completed line is a win, so the draw check runs only after the win check.
func updateGameStatus(gameInstance *entity.Game, row, col int, mover string) {
	switch {
	case isWinningMove(gameInstance, row, col, mover):
		gameInstance.Winner = mover
		gameInstance.Status = entity.StatusFinished
		gameInstance.PlayerTurn = ""
	case gameInstance.IsFull():
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.PlayerTurn = ""
	default:
		gameInstance.PlayerTurn = toggleMark(mover)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// isWinningMove reports whether the mark just placed at (row, col) completes
// a full-length line. Only the lines through the played cell can change, so
// the scan covers its row, its column, and the diagonals the cell lies on.
// The winning run is always the full board size, for every size.
func isWinningMove(gameInstance *entity.Game, row, col int, mark string) bool {
	size := gameInstance.Size

	wonRow, wonCol := true, true
	for i := 0; i < size; i++ {
		wonRow = wonRow && gameInstance.At(row, i) == mark
		wonCol = wonCol && gameInstance.At(i, col) == mark
	}

	if wonRow || wonCol {
		return true
	}

	if row == col {
		won := true
		for i := 0; i < size; i++ {
			won = won && gameInstance.At(i, i) == mark
		}

		if won {
			return true
		}
	}

	if row+col == size-1 {
		won := true
		for i := 0; i < size; i++ {
			won = won && gameInstance.At(i, size-1-i) == mark
		}

		if won {
			return true
		}
	}

	return false
}
