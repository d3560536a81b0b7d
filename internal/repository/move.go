package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type MoveRepository interface {
	CreateOrUpdate(ctx context.Context, move *entity.CachedMove) error
	GetByKey(ctx context.Context, key string) (*entity.CachedMove, error)
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores searched moves in redis. A zero ttl keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) CreateOrUpdate(ctx context.Context, move *entity.CachedMove) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	err = that.client.Set(ctx, move.Key, moveJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, key string) (*entity.CachedMove, error) {
	response, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.CachedMove{}, apperror.ErrMoveNotFound
	}

	if err != nil {
		return &entity.CachedMove{}, fmt.Errorf("%w by key", err)
	}

	var cached entity.CachedMove
	if err = json.Unmarshal([]byte(response), &cached); err != nil {
		return &entity.CachedMove{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return &cached, nil
}
