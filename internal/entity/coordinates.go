package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	minCoordinate = 0
	maxCoordinate = BoardSide - 1
)

// Coordinates - address a board cell. The zero value is the top-left cell; any other value
// must come from NewCoordinates.
type Coordinates struct {
	row int
	col int
}

// NewCoordinates - validates a zero-based (row, col) pair.
func NewCoordinates(row, col int) (Coordinates, error) {
	if row < minCoordinate || row > maxCoordinate || col < minCoordinate || col > maxCoordinate {
		return Coordinates{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	return Coordinates{row: row, col: col}, nil
}

// Row - returns the zero-based row.
func (that Coordinates) Row() int {
	return that.row
}

// Col - returns the zero-based column.
func (that Coordinates) Col() int {
	return that.col
}

// Index - returns the row-major board index.
func (that Coordinates) Index() int {
	return that.row*BoardSide + that.col
}
