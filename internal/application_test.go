package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunApp(t *testing.T) {
	t.Run("Plays a full game", func(t *testing.T) {
		// Given: X completes the top row
		var out bytes.Buffer
		input := "1 1\n2 1\n1 2\n2 2\n1 3\n"

		// When: the app runs
		err := RunApp(discardLogger(), strings.NewReader(input), &out)

		// Then: the final board and result are printed
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "---------\n| X X X |\n| O O   |\n|       |\n---------\nX wins\n"))
	})

	t.Run("Very long line re-prompts instead of failing", func(t *testing.T) {
		// Given: a 70000-character line before the first move
		var out bytes.Buffer
		input := strings.Repeat("1", 70000) + "\n1 1\n"

		// When: the app runs until input ends
		err := RunApp(discardLogger(), strings.NewReader(input), &out)

		// Then: the line was refused and X's move still landed
		require.NoError(t, err)
		assert.Contains(t, out.String(), "You should enter numbers!\nEnter the coordinates: ")
		assert.Contains(t, out.String(), "| X     |")
	})

	t.Run("Closed input ends quietly", func(t *testing.T) {
		var out bytes.Buffer

		err := RunApp(discardLogger(), strings.NewReader("2 2\n"), &out)

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "wins")
	})
}

func TestRunEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  string
	}{
		{"In progress", "X_O______", "Game not finished"},
		{"X wins", "XXXOO____", "X wins"},
		{"O wins", "XXOXO_O__", "O wins"},
		{"Draw", "XOXXOOOXX", "Draw"},
		{"Both win", "XXXOOO___", "Impossible"},
		{"Unbalanced", "XXXX_____", "Impossible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board line
			var out bytes.Buffer

			// When: it is evaluated
			err := RunEvaluate(discardLogger(), strings.NewReader(tt.state+"\n"), &out)

			// Then: the status is the last line
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out.String(), "---------\n"+tt.want+"\n"), out.String())
		})
	}

	t.Run("CRLF line ending", func(t *testing.T) {
		var out bytes.Buffer

		err := RunEvaluate(discardLogger(), strings.NewReader("XXXOO____\r\n"), &out)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "X wins\n"))
	})

	t.Run("Malformed board", func(t *testing.T) {
		err := RunEvaluate(discardLogger(), strings.NewReader("XO\n"), io.Discard)

		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.ErrorIs(t, err, apperror.ErrMalformedInput)
	})

	t.Run("No input", func(t *testing.T) {
		err := RunEvaluate(discardLogger(), strings.NewReader(""), io.Discard)

		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
