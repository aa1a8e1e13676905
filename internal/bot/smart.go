package bot

import "github.com/dmatykhin/tictactoe-console/internal/entity"

var (
	center = entity.Coordinate{Row: 1, Col: 1}

	// Corner preference order is fixed, so Smart is deterministic
	// until it has to fall back to Random.
	corners = [4]entity.Coordinate{
		{Row: 0, Col: 0},
		{Row: 0, Col: 2},
		{Row: 2, Col: 0},
		{Row: 2, Col: 2},
	}
)

type smartStrategy struct {
	fallback Strategy
}

// NewSmart - a strategy that prefers the center, then the corners,
// then whatever Random comes up with.
func NewSmart() Strategy {
	return &smartStrategy{fallback: NewRandom()}
}

func (that *smartStrategy) Name() string {
	return StrategySmart
}

func (that *smartStrategy) PickCell(board entity.Board) (entity.Coordinate, error) {
	if board.IsEmpty(center) {
		return center, nil
	}

	for _, corner := range corners {
		if board.IsEmpty(corner) {
			return corner, nil
		}
	}

	return that.fallback.PickCell(board)
}
