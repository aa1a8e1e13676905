package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmatykhin/tictactoe-console/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: creating a game
	game := NewGame("123")

	// Then: the board is empty, the game is ongoing and someone has the first turn
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Contains(t, []Mark{MarkX, MarkO}, game.Turn)
}

func TestGame_ApplyOutcome(t *testing.T) {
	t.Run("A win finishes the game and records the winner", func(t *testing.T) {
		// Given: an ongoing game
		game := &Game{Status: StatusOngoing, Turn: MarkX}

		// When: X's win is applied
		game.ApplyOutcome(OutcomeWonX)

		// Then: the game is finished with X as the winner and no next turn
		assert.True(t, game.IsFinished())
		assert.Equal(t, MarkX, game.Winner)
		assert.Equal(t, MarkEmpty, game.Turn)
		assert.Equal(t, OutcomeWonX, game.Outcome())
	})

	t.Run("A draw finishes the game without a winner", func(t *testing.T) {
		// Given: an ongoing game
		game := &Game{Status: StatusOngoing, Turn: MarkO}

		// When: the draw is applied
		game.ApplyOutcome(OutcomeDraw)

		// Then: the game is finished, drawn, with no winner
		assert.True(t, game.IsFinished())
		assert.True(t, game.Draw)
		assert.Equal(t, MarkEmpty, game.Winner)
		assert.Equal(t, OutcomeDraw, game.Outcome())
	})

	t.Run("An in-progress outcome hands the turn to the other player", func(t *testing.T) {
		// Given: an ongoing game with X to move
		game := &Game{Status: StatusOngoing, Turn: MarkX}

		// When: the game continues
		game.ApplyOutcome(OutcomeInProgress)

		// Then: it's O's turn and the game stays ongoing
		assert.True(t, game.IsOngoing())
		assert.Equal(t, MarkO, game.Turn)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("A fresh board has nine empty cells", func(t *testing.T) {
		board := Board{}

		assert.Len(t, board.EmptyCells(), 9)
		assert.False(t, board.IsFull())
	})

	t.Run("Claimed cells are excluded, in row-major order", func(t *testing.T) {
		// Given: a board with two claimed cells
		board := Board{}
		board[0][0] = MarkX
		board[1][1] = MarkO

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: seven cells remain and the first is (0,1)
		require.Len(t, cells, 7)
		assert.Equal(t, Coordinate{Row: 0, Col: 1}, cells[0])
	})

	t.Run("A full board reports no empty cells", func(t *testing.T) {
		board := Board{
			{MarkX, MarkO, MarkX},
			{MarkO, MarkX, MarkO},
			{MarkO, MarkX, MarkO},
		}

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})
}

func TestCoordinate_InBounds(t *testing.T) {
	assert.True(t, Coordinate{Row: 0, Col: 0}.InBounds())
	assert.True(t, Coordinate{Row: 2, Col: 2}.InBounds())
	assert.False(t, Coordinate{Row: -1, Col: 0}.InBounds())
	assert.False(t, Coordinate{Row: 0, Col: 3}.InBounds())
	assert.False(t, Coordinate{Row: 3, Col: 3}.InBounds())
}
