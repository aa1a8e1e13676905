package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOutOfRange   = errors.New("cell is out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// IsInvalidMove - reports whether err is a rejected move the player may retry,
// as opposed to a broken game state.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrCellOutOfRange) || errors.Is(err, ErrCellOccupied)
}
