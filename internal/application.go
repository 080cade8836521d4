package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameUseCase := usecase.NewGameUseCase(logger)

	log.Info("Starting console session", "default_board_size", conf.Game.BoardSize)
	srv := console.New(logger, conf, gameUseCase, os.Stdin, os.Stdout)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("console session error: %w", err)
	}

	log.Info("Console session finished")

	return nil
}
