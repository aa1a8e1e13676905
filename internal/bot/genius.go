package bot

import (
	"github.com/dmatykhin/tictactoe-console/internal/entity"
	"github.com/dmatykhin/tictactoe-console/internal/tictactoe"
)

type geniusStrategy struct {
	mark     entity.Mark
	fallback Strategy
}

// NewGenius - the default strategy: take the center, win if a single
// move wins, block the opponent's single-move win, and only then fall
// back to Smart's positional play. The order matters; putting the block
// before the win check would throw away winning games.
func NewGenius(mark entity.Mark) Strategy {
	return &geniusStrategy{
		mark:     mark,
		fallback: NewSmart(),
	}
}

func (that *geniusStrategy) Name() string {
	return StrategyGenius
}

func (that *geniusStrategy) PickCell(board entity.Board) (entity.Coordinate, error) {
	if board.IsEmpty(center) {
		return center, nil
	}

	if cell, ok := tictactoe.WinningCell(board, that.mark); ok {
		return cell, nil
	}

	if cell, ok := tictactoe.WinningCell(board, that.mark.Opponent()); ok {
		return cell, nil
	}

	return that.fallback.PickCell(board)
}
