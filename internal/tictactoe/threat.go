package tictactoe

import "github.com/dmatykhin/tictactoe-console/internal/entity"

// WinningCell - finds the one empty cell that would complete a line for
// the given player, scanning rows, then columns, then the diagonals.
// When several lines are one move from completion the earliest in scan
// order wins. It is a pure lookahead: it never mutates the board and
// does not care whose turn it is, so it serves both offense ("can I win
// now?") and defense ("can they win next turn?").
func WinningCell(board entity.Board, mark entity.Mark) (entity.Coordinate, bool) {
	for _, line := range Lines {
		var owned, empties int
		var open entity.Coordinate

		for _, cell := range line {
			switch board.At(cell) {
			case mark:
				owned++
			case entity.MarkEmpty:
				open = cell
				empties++
			}
		}

		if owned == 2 && empties == 1 {
			return open, true
		}
	}

	return entity.Coordinate{}, false
}
