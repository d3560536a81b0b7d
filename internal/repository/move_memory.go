package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type memoryMove struct {
	mu    sync.RWMutex
	moves map[string]entity.CachedMove
}

// NewMemoryMoveRepository keeps searched moves for the lifetime of the process.
func NewMemoryMoveRepository() MoveRepository {
	return &memoryMove{
		moves: make(map[string]entity.CachedMove),
	}
}

func (that *memoryMove) CreateOrUpdate(_ context.Context, move *entity.CachedMove) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[move.Key] = *move

	return nil
}

func (that *memoryMove) GetByKey(_ context.Context, key string) (*entity.CachedMove, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	move, ok := that.moves[key]
	if !ok {
		return &entity.CachedMove{}, apperror.ErrMoveNotFound
	}

	return &move, nil
}

type noopMove struct{}

// NewNoopMoveRepository never stores anything; every lookup misses.
func NewNoopMoveRepository() MoveRepository {
	return noopMove{}
}

func (noopMove) CreateOrUpdate(context.Context, *entity.CachedMove) error {
	return nil
}

func (noopMove) GetByKey(context.Context, string) (*entity.CachedMove, error) {
	return &entity.CachedMove{}, apperror.ErrMoveNotFound
}
