package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type moveReader interface {
	ReadMove() (entity.Coordinates, error)
}

type view interface {
	ShowBoard(board entity.Board)
	ShowRejection(err error)
	ShowResult(status entity.Status)
}

// GameController - owns the board of one game and alternates turns starting with X.
type GameController struct {
	logger *slog.Logger

	board entity.Board
	turn  entity.Player
}

// NewGameController - starts an empty game with X to move.
func NewGameController(logger *slog.Logger) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller", "game", uuid.NewString()),
		turn:   entity.PlayerX,
	}
}

// Board - returns a copy of the current board.
func (that *GameController) Board() entity.Board {
	return that.board
}

// Turn - returns the player to move.
func (that *GameController) Turn() entity.Player {
	return that.turn
}

// Status - classifies the current board.
func (that *GameController) Status() entity.Status {
	return that.board.Status()
}

// MakeTurn - places the active player's mark. A rejected move leaves the board and turn untouched.
func (that *GameController) MakeTurn(coords entity.Coordinates) error {
	if err := applyMove(&that.board, that.turn, coords); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// Run - plays until the board reaches a terminal status and returns it. Rejected moves are
// reported through out and asked for again; only a failing input ends the game early.
func (that *GameController) Run(input moveReader, out view) (entity.Status, error) {
	status := that.Status()

	for !status.IsTerminal() {
		out.ShowBoard(that.board)

		if err := that.acquireMove(input, out); err != nil {
			return status, err
		}

		status = that.Status()
		if status.IsTerminal() {
			break
		}

		that.turn = toggleMark(that.turn)
	}

	out.ShowBoard(that.board)
	out.ShowResult(status)

	that.logger.Info("game finished", "status", status.String(), "last_player", that.turn.String())

	return status, nil
}

// acquireMove - keeps asking the active player until one move is applied.
func (that *GameController) acquireMove(input moveReader, out view) error {
	log := that.logger.With("method", "acquireMove", "player", that.turn.String())

	for {
		coords, err := input.ReadMove()
		if err == nil {
			err = that.MakeTurn(coords)
		}

		if err == nil {
			log.Debug("move accepted", "row", coords.Row(), "col", coords.Col())
			return nil
		}

		if apperror.KindOf(err) == apperror.KindUnknown {
			return fmt.Errorf("failed to read move: %w", err)
		}

		log.Debug("move rejected", "reason", apperror.KindOf(err).String(), "error", err)
		out.ShowRejection(err)
	}
}

// applyMove - sets the target cell to player's mark if it is empty.
func applyMove(board *entity.Board, player entity.Player, coords entity.Coordinates) error {
	if err := validateMove(*board, coords); err != nil {
		return err
	}

	board[coords.Index()] = player.Cell()

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, coords entity.Coordinates) error {
	if board.At(coords) != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, coords.Row()+1, coords.Col()+1)
	}

	return nil
}

func toggleMark(current entity.Player) entity.Player {
	return current.Opponent()
}
