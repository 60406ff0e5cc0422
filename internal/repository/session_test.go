package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

func newSession(id string) *entity.Session {
	board := entity.NewBoard(3)
	board.Cells[board.Index(1, 1)] = entity.PlayerX

	return &entity.Session{
		ID: id,
		Game: entity.Game{
			Board:  board,
			Turn:   entity.PlayerO,
			Status: entity.StatusOngoing,
			Moves:  1,
		},
	}
}

func testSessionRepository(t *testing.T, newRepo func(t *testing.T) SessionRepository) {
	t.Helper()

	t.Run("CreateOrUpdate then GetByID", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		// Given: a stored session
		session := newSession("123")
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with its id
		retrieved, err := repo.GetByID(ctx, "123")

		// Then: the same session comes back
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)
	})

	t.Run("CreateOrUpdate overwrites", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		session := newSession("123")
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		session.Recorded = true
		session.Game.Status = entity.StatusFinished
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		retrieved, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.True(t, retrieved.Recorded)
		assert.True(t, retrieved.Game.IsFinished())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		_, err := newRepo(t).GetByID(context.Background(), "9999999")
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		require.NoError(t, repo.CreateOrUpdate(ctx, newSession("123")))

		// When: deleting an existing session
		require.NoError(t, repo.DeleteByID(ctx, "123"))

		// Then: it is gone, and deleting again reports it
		_, err := repo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		require.ErrorIs(t, repo.DeleteByID(ctx, "123"), apperror.ErrSessionNotFound)
	})
}

func TestMemorySessionRepository(t *testing.T) {
	testSessionRepository(t, func(*testing.T) SessionRepository {
		return NewMemorySessionRepository()
	})

	t.Run("Returned sessions do not alias the stored board", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMemorySessionRepository()
		require.NoError(t, repo.CreateOrUpdate(ctx, newSession("123")))

		retrieved, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		retrieved.Game.Board.Cells[0] = entity.PlayerO

		again, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, again.Game.Board.Cells[0])
	})
}

func TestRedisSessionRepository(t *testing.T) {
	testSessionRepository(t, func(t *testing.T) SessionRepository {
		return NewSessionRepository(newMiniredisClient(t), time.Hour)
	})

	t.Run("Sessions expire after the ttl", func(t *testing.T) {
		ctx := context.Background()
		mini := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
		t.Cleanup(func() {
			_ = client.Close()
		})
		repo := NewSessionRepository(client, time.Minute)

		require.NoError(t, repo.CreateOrUpdate(ctx, newSession("123")))

		// When: the ttl passes
		mini.FastForward(2 * time.Minute)

		// Then: the session is gone
		_, err := repo.GetByID(ctx, "123")
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
