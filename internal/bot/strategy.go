package bot

import (
	"errors"
	"fmt"

	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

const (
	StrategyRandom = "random"
	StrategySmart  = "smart"
	StrategyGenius = "genius"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy - picks one empty cell for the bot to claim. The caller must
// guarantee the board still has an empty cell; a full board is the
// caller's bug and surfaces as apperror.ErrNoAvailableMoves.
type Strategy interface {
	Name() string
	PickCell(board entity.Board) (entity.Coordinate, error)
}

// ForName - builds the strategy selected in the config. The bot plays
// with the given mark; only Genius cares, for its win/block lookahead.
func ForName(name string, mark entity.Mark) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return NewRandom(), nil
	case StrategySmart:
		return NewSmart(), nil
	case StrategyGenius, "":
		return NewGenius(mark), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
