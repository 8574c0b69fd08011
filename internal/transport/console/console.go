package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	movePrompt = "Enter the coordinates: "
	horizontal = "---------"

	msgOutOfBounds    = "Coordinates should be from 1 to 3!"
	msgCellOccupied   = "This cell is occupied! Choose another one!"
	msgMalformedInput = "You should enter numbers!"
)

// Console - a line-oriented terminal: it reads moves from in and draws the game to out.
type Console struct {
	logger *slog.Logger
	reader *bufio.Reader
	out    io.Writer
}

// New - creates a console reading from in and writing to out.
func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadMove - prompts once and reads one line. It returns apperror.ErrInputClosed when the input is exhausted.
func (that *Console) ReadMove() (entity.Coordinates, error) {
	that.write(movePrompt)

	line, err := that.ReadLine()
	if err != nil {
		return entity.Coordinates{}, err
	}

	return ParseMove(line)
}

// ReadLine - returns the next input line without its "\n" or "\r\n" terminator. Lines have no length limit.
func (that *Console) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if err != nil && line == "" {
		return "", apperror.ErrInputClosed
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// ShowBoard - draws the board.
func (that *Console) ShowBoard(board entity.Board) {
	that.write(RenderBoard(board))
}

// ShowRejection - explains why the last move was refused.
func (that *Console) ShowRejection(err error) {
	that.write(RejectionMessage(err) + "\n")
}

// ShowResult - prints the final status line.
func (that *Console) ShowResult(status entity.Status) {
	that.write(status.String() + "\n")
}

func (that *Console) write(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Warn("failed to write output", "error", err)
	}
}

// ParseMove - turns "row col" (both 1-based) into Coordinates.
func ParseMove(line string) (entity.Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Coordinates{}, fmt.Errorf("%w: expected 2 numbers, got %d fields", apperror.ErrMalformedInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("%w: col %q", apperror.ErrMalformedInput, fields[1])
	}

	coords, err := entity.NewCoordinates(row-1, col-1)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("invalid move: %w", err)
	}

	return coords, nil
}

// RenderBoard - draws the board framed by horizontal rules, one row per line.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString(horizontal + "\n")
	for _, row := range board.Rows() {
		sb.WriteString("| ")
		for _, cell := range row {
			sb.WriteString(cell.String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(horizontal + "\n")

	return sb.String()
}

// RejectionMessage - returns the text shown for a refused move.
func RejectionMessage(err error) string {
	switch apperror.KindOf(err) {
	case apperror.KindOutOfBounds:
		return msgOutOfBounds
	case apperror.KindCellOccupied:
		return msgCellOccupied
	case apperror.KindMalformedInput:
		return msgMalformedInput
	default:
		return err.Error()
	}
}
