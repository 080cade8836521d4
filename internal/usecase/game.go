package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type GameUseCase interface {
	NewGame(size int) (*entity.Game, error)
	MakeTurn(game *entity.Game, row, col int) (*entity.Game, error)
}

type gameUseCase struct {
	logger *slog.Logger
}

func NewGameUseCase(logger *slog.Logger) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "usecase"),
	}
}

// NewGame starts a fresh game of the given board size.
func (that *gameUseCase) NewGame(size int) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), size)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "size", size)

	return game, nil
}

// MakeTurn applies a move for the active player and returns the updated game,
// so the caller does not need a separate state query.
func (that *gameUseCase) MakeTurn(game *entity.Game, row, col int) (*entity.Game, error) {
	mover := game.PlayerTurn

	if err := tictactoe.MakeTurn(game, row, col); err != nil {
		that.logger.Debug("turn rejected", "game_id", game.ID, "row", row, "col", col, "error", err)

		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("turn accepted", "game_id", game.ID, "player", mover, "row", row, "col", col)

	if game.IsFinished() {
		that.logger.Info("game finished", "game_id", game.ID, "winner", game.Winner)
	}

	return game, nil
}
