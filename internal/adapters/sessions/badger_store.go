package sessions

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps sessions in an embedded Badger database, one JSON value
// per session id.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

// OpenBadger opens (or creates) a Badger database at path. An empty path
// opens an in-memory database.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", path, err)
	}
	return db, nil
}

func (b *BadgerStore) Get(ctx context.Context, id string) (domain.Session, error) {
	var s domain.Session

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Session{}, ports.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("badger session get %q: %w", id, err)
	}

	return s, nil
}

func (b *BadgerStore) Put(ctx context.Context, id string, s domain.Session) error {
	val, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("badger session encode %q: %w", id, err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(id), val)
		if b.ttl > 0 {
			e = e.WithTTL(b.ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		return fmt.Errorf("badger session put %q: %w", id, err)
	}
	return nil
}

func (b *BadgerStore) Delete(ctx context.Context, id string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("badger session delete %q: %w", id, err)
	}
	return nil
}
