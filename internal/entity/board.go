package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Cell - the content of one board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

// String - returns the mark drawn for the cell, a space when empty.
func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

// Player - the side to move. Its value doubles as the Cell it marks.
type Player uint8

const (
	PlayerX = Player(CellX)
	PlayerO = Player(CellO)
)

// Cell - returns the mark the player places.
func (p Player) Cell() Cell {
	return Cell(p)
}

// Opponent - returns the player who moves after p.
func (p Player) Opponent() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// String - returns "X" or "O".
func (p Player) String() string {
	return p.Cell().String()
}

// Board - a 3x3 grid in row-major order: index = row*3 + col.
type Board [BoardSize]Cell

// ParseBoard - reads a row-major board such as "XO_ X  O_". X and O are case-insensitive,
// '_' and ' ' are empty. A trailing carriage return is ignored.
func ParseBoard(state string) (Board, error) {
	var board Board

	state = strings.TrimSuffix(state, "\r")

	if len(state) != BoardSize {
		return board, fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrMalformedInput, BoardSize, len(state))
	}

	for i, r := range strings.ToUpper(state) {
		switch r {
		case 'X':
			board[i] = CellX
		case 'O':
			board[i] = CellO
		case '_', ' ':
			board[i] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected cell %q at %d", apperror.ErrMalformedInput, r, i)
		}
	}

	return board, nil
}

// At - returns the cell at c.
func (that Board) At(c Coordinates) Cell {
	return that[c.Index()]
}

// Rows - returns the three rows, each a contiguous slice of the board.
func (that Board) Rows() [BoardSide][BoardSide]Cell {
	var rows [BoardSide][BoardSide]Cell
	for i := range rows {
		copy(rows[i][:], that[i*BoardSide:(i+1)*BoardSide])
	}
	return rows
}

// Cols - returns the three columns, each read with a stride of BoardSide.
func (that Board) Cols() [BoardSide][BoardSide]Cell {
	var cols [BoardSide][BoardSide]Cell
	for i := range cols {
		for j := range cols[i] {
			cols[i][j] = that[i+BoardSide*j]
		}
	}
	return cols
}

// RightDiagonal - returns cells 0, 4 and 8.
func (that Board) RightDiagonal() [BoardSide]Cell {
	return [BoardSide]Cell{that[0], that[4], that[8]}
}

// LeftDiagonal - returns cells 2, 4 and 6.
func (that Board) LeftDiagonal() [BoardSide]Cell {
	return [BoardSide]Cell{that[2], that[4], that[6]}
}

func (that Board) lines() [][BoardSide]Cell {
	rows, cols := that.Rows(), that.Cols()

	lines := make([][BoardSide]Cell, 0, 2*BoardSide+2)
	lines = append(lines, rows[:]...)
	lines = append(lines, cols[:]...)

	return append(lines, that.RightDiagonal(), that.LeftDiagonal())
}

// HasLineOf - reports whether any row, column or diagonal holds three of player's marks.
func (that Board) HasLineOf(player Player) bool {
	mark := player.Cell()
	full := [BoardSide]Cell{mark, mark, mark}

	for _, line := range that.lines() {
		if line == full {
			return true
		}
	}
	return false
}

// Wins - reports whether player holds a line.
func (that Board) Wins(player Player) bool {
	return that.HasLineOf(player)
}

// Count - returns the number of cells marked by player.
func (that Board) Count(player Player) int {
	count := 0
	for _, cell := range that {
		if cell == player.Cell() {
			count++
		}
	}
	return count
}

// MovesRemain - reports whether any cell is empty.
func (that Board) MovesRemain() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return true
		}
	}
	return false
}

// IsWellFormed - is false when both players hold a line or when the mark counts differ by more than one.
func (that Board) IsWellFormed() bool {
	if that.Wins(PlayerX) && that.Wins(PlayerO) {
		return false
	}

	diff := that.Count(PlayerX) - that.Count(PlayerO)
	return diff >= -1 && diff <= 1
}

func (that Board) hasNoWinner() bool {
	return !that.Wins(PlayerX) && !that.Wins(PlayerO)
}

// Status - classifies the board. Order matters: Impossible outranks everything, and a full
// board is only a Draw once no line was found.
func (that Board) Status() Status {
	switch {
	case !that.IsWellFormed():
		return StatusImpossible
	case that.MovesRemain() && that.hasNoWinner():
		return StatusInProgress
	case that.Wins(PlayerX):
		return StatusXWins
	case that.Wins(PlayerO):
		return StatusOWins
	default:
		return StatusDraw
	}
}
