package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

func TestNewMoveRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory cache keeps moves", func(t *testing.T) {
		// When: build the memory cache
		moveRepo, closeCache, err := newMoveRepository(ctx, config.Cache{Driver: config.DriverMemory})
		require.NoError(t, err)
		t.Cleanup(func() { require.NoError(t, closeCache()) })

		// Then: a stored move can be read back
		move := &entity.CachedMove{Key: "move:1:d3", Move: entity.Move{X: 1, Y: 2}}
		require.NoError(t, moveRepo.CreateOrUpdate(ctx, move))
		got, err := moveRepo.GetByKey(ctx, move.Key)
		require.NoError(t, err)
		assert.Equal(t, move, got)
	})

	t.Run("Badger cache opens in the configured directory", func(t *testing.T) {
		// When: build the badger cache
		moveRepo, closeCache, err := newMoveRepository(ctx, config.Cache{Driver: config.DriverBadger, BadgerPath: t.TempDir()})
		require.NoError(t, err)
		t.Cleanup(func() { require.NoError(t, closeCache()) })

		// Then: lookups miss on a fresh database
		_, err = moveRepo.GetByKey(ctx, "move:1:d3")
		require.ErrorIs(t, err, apperror.ErrMoveNotFound)
	})

	t.Run("Redis without a host is rejected", func(t *testing.T) {
		_, _, err := newMoveRepository(ctx, config.Cache{Driver: config.DriverRedis})
		require.ErrorIs(t, err, apperror.ErrAddrNotFound)
	})

	t.Run("Unknown driver is rejected", func(t *testing.T) {
		_, _, err := newMoveRepository(ctx, config.Cache{Driver: "etcd"})
		require.ErrorIs(t, err, apperror.ErrUnknownCacheDriver)
	})
}
