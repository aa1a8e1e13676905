package bot

import (
	"math/rand"

	"github.com/dmatykhin/tictactoe-console/internal/apperror"
	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

type randomStrategy struct{}

// NewRandom - a strategy that claims a uniformly random empty cell.
func NewRandom() Strategy {
	return &randomStrategy{}
}

func (that *randomStrategy) Name() string {
	return StrategyRandom
}

func (that *randomStrategy) PickCell(board entity.Board) (entity.Coordinate, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return entity.Coordinate{}, apperror.ErrNoAvailableMoves
	}

	return available[rand.Intn(len(available))], nil //nolint: gosec // it's ok
}
