//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package repositories

import (
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// IStore is the persistent key-value port every other repository is built on.
// Get never fails for a missing key: it reports absence through the bool.
// Values are JSON documents or plain strings; callers own (de)serialization.
type IStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

type Store struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStore(db *badger.DB, log *slog.Logger) IStore {
	return &Store{db: db, log: log}
}

// Get reads a single key. Unexpected storage errors are logged and reported
// as absence so that callers degrade instead of propagating a read failure.
func (s *Store) Get(key string) (string, bool) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.log.Error("store read failed", "key", key, "error", err)
		}
		return "", false
	}
	return string(value), true
}

func (s *Store) Set(key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// Remove deletes a key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
