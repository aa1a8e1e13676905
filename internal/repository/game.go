package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmatykhin/tictactoe-console/internal/entity"
)

var ErrNoActiveGame = errors.New("no active game found")

// activeGameKey - only one game runs at a time, so the unfinished game
// lives under a single well-known key.
const activeGameKey = "game:active"

type GameRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	GetActive(ctx context.Context) (*entity.Game, error)
	DeleteActive(ctx context.Context) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

// Save - stores the current game so an interrupted session can resume.
func (that *dbGame) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, activeGameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetActive(ctx context.Context) (*entity.Game, error) {
	response, err := that.client.Get(ctx, activeGameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrNoActiveGame
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteActive(ctx context.Context) error {
	if err := that.client.Del(ctx, activeGameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete active game: %w", err)
	}

	return nil
}
