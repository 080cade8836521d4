package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type uGame interface {
	NewGame(size int) (*entity.Game, error)
	MakeTurn(game *entity.Game, row, col int) (*entity.Game, error)
}

// Server runs the interactive terminal session: it renders engine state,
// forwards the players' answers, and reacts to the engine's verdicts. It
// never changes game state itself.
type Server struct {
	logger   *slog.Logger
	conf     *config.Config
	uGame    uGame
	in       *bufio.Scanner
	out      io.Writer
	renderer *Renderer
}

func New(logger *slog.Logger, conf *config.Config, uGame uGame, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		conf:     conf,
		uGame:    uGame,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: NewRenderer(conf.Game.Colors),
	}
}

// Start - runs game sessions until the players stop or input ends.
func (that *Server) Start(ctx context.Context) error {
	that.printf("Tic-Tac-Toe\n")

	game, err := that.newGameFromPrompt(ctx)
	if err != nil {
		return err
	}

	if game == nil {
		return nil
	}

	for {
		if err = that.playGame(ctx, game); err != nil {
			return err
		}

		if !that.askPlayAgain(ctx) {
			return nil
		}

		// Rematches keep the board size chosen at the start of the session.
		game, err = that.uGame.NewGame(game.Size)
		if err != nil {
			return fmt.Errorf("could not start game: %w", err)
		}
	}
}

// newGameFromPrompt asks for a board size until the engine accepts one.
// Returns a nil game once the session should end.
func (that *Server) newGameFromPrompt(ctx context.Context) (*entity.Game, error) {
	for {
		that.printf("Select board size [%d-%d] (enter for %d): ",
			entity.MinBoardSize, entity.MaxBoardSize, that.conf.Game.BoardSize)

		line, ok := that.readLine(ctx)
		if !ok {
			return nil, nil
		}

		size := that.conf.Game.BoardSize
		if token := strings.TrimSpace(line); token != "" {
			parsed, err := strconv.Atoi(token)
			if err != nil {
				that.printf("Please enter a number.\n")
				continue
			}

			size = parsed
		}

		game, err := that.uGame.NewGame(size)
		switch {
		case errors.Is(err, apperror.ErrInvalidBoardSize):
			that.printf("Board size must be between %d and %d, try again.\n",
				entity.MinBoardSize, entity.MaxBoardSize)
		case err != nil:
			return nil, fmt.Errorf("could not start game: %w", err)
		default:
			return game, nil
		}
	}
}

// playGame drives one match to its terminal phase: render, prompt, submit,
// and re-prompt whenever the engine rejects a move.
func (that *Server) playGame(ctx context.Context, game *entity.Game) error {
	for game.IsOngoing() {
		state := game.Snapshot()
		that.printf("%s", that.renderer.RenderBoard(state))
		that.printf("Player %s's turn (column+row): ", state.PlayerTurn)

		line, ok := that.readLine(ctx)
		if !ok {
			return nil
		}

		row, col, err := ParseMove(line)
		if err != nil {
			that.printf("Invalid input! Please enter column and row (e.g. 12).\n")
			continue
		}

		if _, err = that.uGame.MakeTurn(game, row, col); err != nil {
			switch {
			case errors.Is(err, apperror.ErrOutOfBounds), errors.Is(err, apperror.ErrCellOccupied):
				that.printf("Invalid move! Try again.\n")
			default:
				return fmt.Errorf("turn rejected: %w", err)
			}
		}
	}

	that.printf("%s", that.renderer.RenderBoard(game.Snapshot()))

	if game.IsTie() {
		that.printf("It's a tie!\n")
	} else {
		that.printf("Player %s wins!\n", game.Winner)
	}

	return nil
}

func (that *Server) askPlayAgain(ctx context.Context) bool {
	that.printf("Play again? (y/n): ")

	line, ok := that.readLine(ctx)
	if !ok {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}

// readLine returns the next input line. ok is false once the session should
// end, either because the context was cancelled or stdin was closed.
func (that *Server) readLine(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}

		return "", false
	}

	return that.in.Text(), true
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
