package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

type BadgerStorage struct {
	DB *badger.DB
}

// NewBadgerStorage opens or creates the database directory at path.
func NewBadgerStorage(path string) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return &BadgerStorage{DB: db}, nil
}

func (that *BadgerStorage) Close() error {
	if that.DB == nil {
		return nil
	}

	return that.DB.Close()
}
