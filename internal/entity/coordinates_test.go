package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("Every in-range pair is accepted", func(t *testing.T) {
		for row := 0; row < BoardSide; row++ {
			for col := 0; col < BoardSide; col++ {
				// When: constructing coordinates inside the board
				c, err := NewCoordinates(row, col)

				// Then: the index is row-major
				require.NoError(t, err)
				assert.Equal(t, row, c.Row())
				assert.Equal(t, col, c.Col())
				assert.Equal(t, row*3+col, c.Index())
			}
		}
	})

	t.Run("Out of range values fail", func(t *testing.T) {
		pairs := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {-5, 10}, {100, 1}}

		for _, p := range pairs {
			// When: constructing coordinates outside the board
			c, err := NewCoordinates(p[0], p[1])

			// Then: ErrOutOfBounds is returned with a zero value
			require.ErrorIs(t, err, apperror.ErrOutOfBounds, "pair %v", p)
			assert.Equal(t, Coordinates{}, c)
		}
	})
}

func TestBoard_At(t *testing.T) {
	// Given: a board with O in the bottom-left corner
	board := Board{6: CellO}
	c, err := NewCoordinates(2, 0)
	require.NoError(t, err)

	// Then: the lookup reads index 6
	assert.Equal(t, CellO, board.At(c))
}
