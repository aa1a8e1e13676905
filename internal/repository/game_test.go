package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmatykhin/tictactoe-console/internal/entity"
	"github.com/dmatykhin/tictactoe-console/testing/suite"
)

func TestGameRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game mid-play
	game := &entity.Game{
		ID:     "123",
		Turn:   entity.MarkO,
		Status: entity.StatusOngoing,
	}
	game.Board[1][1] = entity.MarkX

	// When: Save is called
	err := gameRepo.Save(ctx, game)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestGameRepository_GetActive(t *testing.T) {
	t.Run("GetActive_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a saved game with a half-played board
		game := &entity.Game{
			ID:     "123",
			Turn:   entity.MarkX,
			Status: entity.StatusOngoing,
		}
		game.Board[0][0] = entity.MarkO
		game.Board[1][1] = entity.MarkX

		require.NoError(t, gameRepo.Save(ctx, game))

		// When: GetActive is called
		retrievedGame, err := gameRepo.GetActive(ctx)

		// Then: the stored game comes back intact, board included
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetActive_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetActive is called with nothing saved
		_, err := gameRepo.GetActive(ctx)

		// Then: an ErrNoActiveGame error should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoActiveGame)
	})
}

func TestGameRepository_DeleteActive(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a saved game
	game := &entity.Game{
		ID:     "123",
		Status: entity.StatusOngoing,
	}
	require.NoError(t, gameRepo.Save(ctx, game))

	// When: DeleteActive is called
	err := gameRepo.DeleteActive(ctx)

	// Then: the game is gone
	require.NoError(t, err)

	_, err = gameRepo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNoActiveGame)
}
