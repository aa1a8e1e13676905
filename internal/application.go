package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmatykhin/tictactoe-console/internal/bot"
	"github.com/dmatykhin/tictactoe-console/internal/config"
	"github.com/dmatykhin/tictactoe-console/internal/console"
	"github.com/dmatykhin/tictactoe-console/internal/entity"
	"github.com/dmatykhin/tictactoe-console/internal/repository"
	"github.com/dmatykhin/tictactoe-console/internal/repository/storage"
	"github.com/dmatykhin/tictactoe-console/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	renderer := console.NewRenderer(os.Stdout)
	reader := console.NewMoveReader(os.Stdin, os.Stdout)

	strategy, err := bot.ForName(conf.Strategy, entity.BotMark)
	if err != nil {
		return fmt.Errorf("could not build strategy: %w", err)
	}

	gameRepo, closeGames, err := buildGameRepo(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeGames()

	scoreRepo, closeScores, err := buildScoreRepo(ctx, log, conf, renderer)
	if err != nil {
		return err
	}
	defer closeScores()

	game, err := loadOrCreateGame(ctx, log, gameRepo)
	if err != nil {
		return err
	}

	session := usecase.NewSession(logger, game, strategy, reader, renderer, gameRepo, scoreRepo)

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

// buildGameRepo - connects the Redis-backed resume storage when an
// address is configured; without one the game simply isn't saved.
func buildGameRepo(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	addr := conf.Redis.GetRedisAddr()
	if addr == "" {
		log.Info("no redis address configured, resume disabled")
		return nil, func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), closeFn, nil
}

// buildScoreRepo - opens the SQLite scoreboard when a path is configured,
// and prints the running tally before the game starts.
func buildScoreRepo(ctx context.Context, log *slog.Logger, conf *config.Config, renderer *console.Renderer) (repository.ScoreRepository, func(), error) {
	if conf.ScoreboardPath == "" {
		log.Info("no scoreboard path configured, tally disabled")
		return nil, func() {}, nil
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.ScoreboardPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open scoreboard storage: %w", err)
	}

	closeFn := func() {
		if closeErr := sqliteStorage.Close(); closeErr != nil {
			log.Error("could not close scoreboard storage", "error", closeErr)
		}
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("could not init scoreboard storage: %w", err)
	}

	scoreRepo := repository.NewScoreRepository(sqliteStorage.Connection)

	score, err := scoreRepo.Totals(ctx)
	if err != nil {
		log.Error("could not read scoreboard", "error", err)
	} else {
		renderer.RenderScore(score.Wins, score.Losses, score.Draws)
	}

	return scoreRepo, closeFn, nil
}

// loadOrCreateGame - resumes the saved game if one exists, otherwise
// starts fresh with a coin flip for the first turn.
func loadOrCreateGame(ctx context.Context, log *slog.Logger, gameRepo repository.GameRepository) (*entity.Game, error) {
	if gameRepo != nil {
		game, err := gameRepo.GetActive(ctx)
		if err == nil {
			log.Info("resuming saved game", "game", game.ID)
			return game, nil
		}

		if !errors.Is(err, repository.ErrNoActiveGame) {
			return nil, fmt.Errorf("could not load saved game: %w", err)
		}
	}

	game := entity.NewGame(uuid.NewString())
	log.Info("starting new game", "game", game.ID, "first_turn", string(game.Turn))

	return game, nil
}
