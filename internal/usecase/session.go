package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmatykhin/tictactoe-console/internal/apperror"
	"github.com/dmatykhin/tictactoe-console/internal/bot"
	"github.com/dmatykhin/tictactoe-console/internal/entity"
	"github.com/dmatykhin/tictactoe-console/internal/tictactoe"
)

type moveReader interface {
	ReadMove(board entity.Board) (entity.Coordinate, error)
}

type renderer interface {
	RenderBoard(board entity.Board)
	RenderOutcome(outcome entity.Outcome)
}

type gameRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	DeleteActive(ctx context.Context) error
}

type scoreRepo interface {
	Record(ctx context.Context, outcome entity.Outcome) error
}

// Session - the turn controller for one game. It is the only component
// that applies moves to the board; the reader and the strategy just
// produce coordinates.
type Session struct {
	logger   *slog.Logger
	game     *entity.Game
	strategy bot.Strategy
	reader   moveReader
	renderer renderer

	games  gameRepo  // optional, nil disables resume
	scores scoreRepo // optional, nil disables the tally
}

func NewSession(
	logger *slog.Logger,
	game *entity.Game,
	strategy bot.Strategy,
	reader moveReader,
	rend renderer,
	games gameRepo,
	scores scoreRepo,
) *Session {
	return &Session{
		logger:   logger,
		game:     game,
		strategy: strategy,
		reader:   reader,
		renderer: rend,

		games:  games,
		scores: scores,
	}
}

// Run - alternates turns until the game finishes or the context is
// canceled. On cancellation the last saved state stays in storage so
// the next launch resumes it.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("component", "session", "game", that.game.ID)

	if err := that.game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("cannot run session: %w", err)
	}

	for that.game.IsOngoing() {
		if ctx.Err() != nil {
			log.Info("session interrupted, game state saved")
			return nil
		}

		that.renderer.RenderBoard(that.game.Board)

		if that.game.Turn == entity.HumanMark {
			if err := that.humanTurn(); err != nil {
				return err
			}
		} else {
			if err := that.botTurn(log); err != nil {
				return err
			}
		}

		if err := that.persist(ctx); err != nil {
			return err
		}
	}

	return that.finish(ctx, log)
}

func (that *Session) humanTurn() error {
	for {
		cell, err := that.reader.ReadMove(that.game.Board)
		if err != nil {
			return fmt.Errorf("failed to read human move: %w", err)
		}

		err = tictactoe.MakeTurn(that.game, entity.HumanMark, cell)
		if apperror.IsInvalidMove(err) {
			// the reader validates against the board, so this only
			// trips if the two disagree; ask again either way
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to apply human move: %w", err)
		}

		return nil
	}
}

func (that *Session) botTurn(log *slog.Logger) error {
	cell, err := that.strategy.PickCell(that.game.Board)
	if err != nil {
		return fmt.Errorf("strategy %s failed to pick a cell: %w", that.strategy.Name(), err)
	}

	if err = tictactoe.MakeTurn(that.game, entity.BotMark, cell); err != nil {
		return fmt.Errorf("failed to apply bot move: %w", err)
	}

	log.Info("bot moved", "strategy", that.strategy.Name(), "row", cell.Row, "col", cell.Col)

	return nil
}

func (that *Session) persist(ctx context.Context) error {
	if that.games == nil {
		return nil
	}

	if err := that.games.Save(ctx, that.game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *Session) finish(ctx context.Context, log *slog.Logger) error {
	that.renderer.RenderBoard(that.game.Board)

	outcome := that.game.Outcome()
	that.renderer.RenderOutcome(outcome)

	if that.scores != nil {
		if err := that.scores.Record(ctx, outcome); err != nil {
			log.Error("failed to record result", "error", err)
		}
	}

	if that.games != nil {
		if err := that.games.DeleteActive(ctx); err != nil {
			log.Error("failed to delete finished game", "error", err)
		}
	}

	log.Info("game finished", "winner", string(that.game.Winner), "draw", that.game.Draw)

	return nil
}
