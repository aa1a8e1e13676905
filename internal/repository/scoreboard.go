package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

var ErrNotRecordable = errors.New("outcome is not recordable")

const (
	resultWin  = "win"
	resultLoss = "loss"
	resultDraw = "draw"
)

// ScoreRepository - a running wins/losses/draws tally from the human's
// point of view. It keeps counters only, never individual games.
type ScoreRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Totals(ctx context.Context) (Score, error)
}

type Score struct {
	Wins   int
	Losses int
	Draws  int
}

type dbScore struct {
	conn *sql.DB
}

func NewScoreRepository(conn *sql.DB) ScoreRepository {
	return &dbScore{
		conn: conn,
	}
}

// Record - bumps the counter for a finished game's outcome.
func (that *dbScore) Record(ctx context.Context, outcome entity.Outcome) error {
	result, err := resultForOutcome(outcome)
	if err != nil {
		return err
	}

	query := `INSERT INTO scoreboard (result, total) VALUES (?, 1)
		ON CONFLICT(result) DO UPDATE SET total = total + 1`

	if _, err = that.conn.ExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbScore) Totals(ctx context.Context) (Score, error) {
	rows, err := that.conn.QueryContext(ctx, `SELECT result, total FROM scoreboard`)
	if err != nil {
		return Score{}, fmt.Errorf("failed to query scoreboard: %w", err)
	}
	defer rows.Close()

	var score Score
	for rows.Next() {
		var result string
		var total int

		if err = rows.Scan(&result, &total); err != nil {
			return Score{}, fmt.Errorf("failed to scan scoreboard row: %w", err)
		}

		switch result {
		case resultWin:
			score.Wins = total
		case resultLoss:
			score.Losses = total
		case resultDraw:
			score.Draws = total
		}
	}

	if err = rows.Err(); err != nil {
		return Score{}, fmt.Errorf("failed to read scoreboard: %w", err)
	}

	return score, nil
}

func resultForOutcome(outcome entity.Outcome) (string, error) {
	switch outcome {
	case entity.OutcomeWonX:
		return resultWin, nil
	case entity.OutcomeWonO:
		return resultLoss, nil
	case entity.OutcomeDraw:
		return resultDraw, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrNotRecordable, outcome)
	}
}
