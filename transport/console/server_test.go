package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// runSession feeds a scripted player dialogue through a real engine and
// returns everything the session printed.
func runSession(t *testing.T, script ...string) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := &config.Config{Game: config.Game{BoardSize: 3, Colors: false}}

	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	out := &bytes.Buffer{}

	srv := New(logger, conf, usecase.NewGameUseCase(logger), in, out)
	require.NoError(t, srv.Start(context.Background()))

	return out.String()
}

func TestServer_Start(t *testing.T) {
	t.Run("Row win announces the winner", func(t *testing.T) {
		// Given: an empty answer accepts the configured 3x3 default, then X
		// takes the top row while O plays the second row
		output := runSession(t,
			"", // board size: default
			"11", "12", "21", "22", "31",
			"n",
		)

		// Then: the session announces X's win and offers another game
		assert.Contains(t, output, "Player X wins!")
		assert.Contains(t, output, "Play again? (y/n):")
		assert.NotContains(t, output, "It's a tie!")
	})

	t.Run("Full board without a line is announced as a tie", func(t *testing.T) {
		// Given: an out-of-range size, a non-numeric size, then a lineless
		// nine-move game on 3x3
		output := runSession(t,
			"12", "abc", "3",
			"11", "21", "31", "22", "12", "32", "23", "13", "33",
			"n",
		)

		// Then: both bad size answers were re-prompted and the game tied
		assert.Contains(t, output, "Board size must be between 3 and 9, try again.")
		assert.Contains(t, output, "Please enter a number.")
		assert.Contains(t, output, "It's a tie!")
	})

	t.Run("Rejected moves re-prompt without losing the turn", func(t *testing.T) {
		// Given: after X takes (1,1), O answers with an occupied cell, an
		// off-board cell, and a malformed token before a legal move
		output := runSession(t,
			"3",
			"11",
			"11", // occupied
			"99", // off the board
			"x",  // malformed
			"12", "21", "22", "31",
			"n",
		)

		// Then: each bad answer produced its message and X still won
		assert.Contains(t, output, "Invalid move! Try again.")
		assert.Contains(t, output, "Invalid input! Please enter column and row (e.g. 12).")
		assert.Contains(t, output, "Player X wins!")
	})

	t.Run("Play again starts a fresh game of the same size", func(t *testing.T) {
		// Given: two complete games separated by a "y" answer
		output := runSession(t,
			"3",
			"11", "12", "21", "22", "31",
			"y",
			"11", "12", "21", "22", "31",
			"n",
		)

		// Then: the winner is announced twice
		assert.Equal(t, 2, strings.Count(output, "Player X wins!"))
		assert.Equal(t, 2, strings.Count(output, "Play again? (y/n):"))
	})

	t.Run("Closed input ends the session cleanly", func(t *testing.T) {
		// Given: input that ends in the middle of a game
		output := runSession(t, "3", "11")

		// Then: the session exits without a result announcement
		assert.NotContains(t, output, "wins!")
		assert.NotContains(t, output, "It's a tie!")
	})

	t.Run("Cancelled context stops before prompting", func(t *testing.T) {
		// Given: a context that is already cancelled
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		conf := &config.Config{Game: config.Game{BoardSize: 3, Colors: false}}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := &bytes.Buffer{}
		srv := New(logger, conf, usecase.NewGameUseCase(logger), strings.NewReader("3\n"), out)

		// When: the session starts
		err := srv.Start(ctx)

		// Then: it returns at once without reading the size answer
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "turn")
	})
}
