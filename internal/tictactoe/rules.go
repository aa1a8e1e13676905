package tictactoe

import (
	"fmt"

	"github.com/dmatykhin/tictactoe-console/internal/apperror"
	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

// Lines - the 8 winning lines in fixed scan order: rows, columns,
// main diagonal, anti-diagonal. The order is the tie-break for
// WinningCell, so it must stay stable.
var Lines = [8][3]entity.Coordinate{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Evaluate - classifies the board as in progress, won or drawn.
// Win checks for both players happen before the draw check.
func Evaluate(board entity.Board) entity.Outcome {
	for _, mark := range []entity.Mark{entity.MarkX, entity.MarkO} {
		if hasCompletedLine(board, mark) {
			return entity.WonBy(mark)
		}
	}

	if !board.IsFull() {
		return entity.OutcomeInProgress
	}

	return entity.OutcomeDraw
}

func hasCompletedLine(board entity.Board, mark entity.Mark) bool {
	for _, line := range Lines {
		if board.At(line[0]) == mark && board.At(line[1]) == mark && board.At(line[2]) == mark {
			return true
		}
	}
	return false
}

// MakeTurn - validates and applies one move, then updates the game state.
// The returned errors for out-of-range and occupied cells are the caller's
// cue to re-prompt; everything else means the turn was taken out of order.
func MakeTurn(game *entity.Game, mark entity.Mark, cell entity.Coordinate) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell.Row][cell.Col] = mark
	game.ApplyOutcome(Evaluate(game.Board))

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Mark, cell entity.Coordinate) error {
	if !cell.InBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOutOfRange, cell.Row, cell.Col)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !game.Board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}
