package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrInvalidBoard = errors.New("invalid board")

// RunApp - plays one game on the given console streams.
func RunApp(logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(logger, in, out)
	gameController := tictactoe.NewGameController(logger)

	status, err := gameController.Run(term, term)
	if errors.Is(err, apperror.ErrInputClosed) {
		log.Info("Input closed before the game finished", "status", status.String())
		return nil
	}
	if err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	return nil
}

// RunEvaluate - reads one board line, draws it and prints its status.
func RunEvaluate(logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "evaluate")

	term := console.New(logger, in, out)

	line, err := term.ReadLine()
	if err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	board, err := entity.ParseBoard(line)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	status := board.Status()
	log.Debug("Board evaluated", "state", line, "status", status.String())

	term.ShowBoard(board)
	term.ShowResult(status)

	return nil
}
