package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a new game", func(t *testing.T) {
		// Given: a repository that accepts writes
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		gameService := NewGameService(repo)

		// When: a game against an O bot is created
		game, err := gameService.CreateGame(ctx, entity.PlayerO)

		// Then: the game has an id and is stored
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerO, game.BotMark)
		repo.AssertExpectations(t)
	})

	t.Run("Returns storage errors", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()
		gameService := NewGameService(repo)

		game, err := gameService.CreateGame(ctx, entity.PlayerX)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored game", func(t *testing.T) {
		repo := &mockGameRepo{}
		stored := entity.NewGame("123", entity.PlayerO)
		repo.On("GetByID", mock.Anything, "123").Return(stored, nil).Once()

		game, err := NewGameService(repo).GetGameByID(ctx, "123")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("Keeps ErrGameNotFound", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "404").Return(&entity.Game{}, apperror.ErrGameNotFound).Once()

		_, err := NewGameService(repo).GetGameByID(ctx, "404")

		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	repo := &mockGameRepo{}
	repo.On("DeleteByID", mock.Anything, "123").Return(nil).Once()

	err := NewGameService(repo).DeleteGame(context.Background(), "123")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
