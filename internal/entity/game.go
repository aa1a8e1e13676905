package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dmatykhin/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - one session between the human (X) and the bot (O).
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"player_turn"`
	Winner Mark   `json:"winner,omitempty"`
	Status string `json:"status"`
	Draw   bool   `json:"draw,omitempty"`
}

// NewGame - creates an empty ongoing game with a coin flip for the first turn.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   RandomFirstTurn(),
		Status: StatusOngoing,
	}
}

// RandomFirstTurn - flips a coin to decide who moves first.
func RandomFirstTurn() Mark {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return MarkX
	}
	return MarkO
}

// ApplyOutcome - transitions the game status after a move.
func (that *Game) ApplyOutcome(outcome Outcome) {
	switch outcome {
	case OutcomeWonX, OutcomeWonO:
		that.Winner = outcome.Winner()
		that.Status = StatusFinished
		that.Turn = MarkEmpty
	case OutcomeDraw:
		that.Draw = true
		that.Status = StatusFinished
		that.Turn = MarkEmpty
	case OutcomeInProgress:
		that.Status = StatusOngoing
		that.Turn = that.Turn.Opponent()
	}
}

// Outcome - the terminal classification recorded on the game, if any.
func (that *Game) Outcome() Outcome {
	switch {
	case that.Winner == MarkX:
		return OutcomeWonX
	case that.Winner == MarkO:
		return OutcomeWonO
	case that.Draw:
		return OutcomeDraw
	default:
		return OutcomeInProgress
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// ConfirmOngoingState - guards operations that only make sense mid-game.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return fmt.Errorf("game %s: %w", that.ID, apperror.ErrGameFinished)
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameStatus, that.Status)
	}
}
