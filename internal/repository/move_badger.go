package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type badgerMove struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerMoveRepository stores searched moves in an embedded badger database.
func NewBadgerMoveRepository(db *badger.DB, ttl time.Duration) MoveRepository {
	return &badgerMove{
		db:  db,
		ttl: ttl,
	}
}

func (that *badgerMove) CreateOrUpdate(_ context.Context, move *entity.CachedMove) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	err = that.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(move.Key), moveJSON)
		if that.ttl > 0 {
			entry = entry.WithTTL(that.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *badgerMove) GetByKey(_ context.Context, key string) (*entity.CachedMove, error) {
	var cached entity.CachedMove

	err := that.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return &entity.CachedMove{}, apperror.ErrMoveNotFound
	}

	if err != nil {
		return &entity.CachedMove{}, fmt.Errorf("failed to get move by key: %w", err)
	}

	return &cached, nil
}
