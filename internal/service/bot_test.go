package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Plays the minimax move", func(t *testing.T) {
		// Given: the bot plays O and the human threatens the anti diagonal
		game := entity.NewGame("123", entity.PlayerO)
		require.NoError(t, game.MakeTurn(entity.PlayerX, tictactoe.Action{Row: 1, Col: 1}))
		require.NoError(t, game.MakeTurn(entity.PlayerO, tictactoe.Action{Row: 0, Col: 0}))
		require.NoError(t, game.MakeTurn(entity.PlayerX, tictactoe.Action{Row: 0, Col: 2}))

		// When: the bot moves
		err := NewBotService(discardLogger()).MakeTurn(game)

		// Then: it blocks the diagonal
		require.NoError(t, err)
		assert.Equal(t, tictactoe.MarkO, game.Board[2][0])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Opens as X", func(t *testing.T) {
		game := entity.NewGame("123", entity.PlayerX)

		err := NewBotService(discardLogger()).MakeTurn(game)

		require.NoError(t, err)
		assert.Equal(t, []tictactoe.Action{{Row: 0, Col: 0}}, game.Moves)
	})

	t.Run("Refuses to move out of turn", func(t *testing.T) {
		game := entity.NewGame("123", entity.PlayerO)

		err := NewBotService(discardLogger()).MakeTurn(game)

		assert.ErrorIs(t, err, ErrNotBotTurn)
	})

	t.Run("Refuses to move on a finished game", func(t *testing.T) {
		game := entity.NewGame("123", entity.PlayerO)
		game.Status = entity.StatusFinished

		err := NewBotService(discardLogger()).MakeTurn(game)

		assert.ErrorIs(t, err, ErrNotBotTurn)
	})
}
