package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/storage"
	bolt "go.etcd.io/bbolt"
)

var bucketEntries = []byte("entries")

// Bolt stores key/value pairs in a single bbolt bucket.
type Bolt struct {
	db *bolt.DB
}

// New opens a bbolt database at the given path.
func New(filePath string) (*Bolt, error) {
	db, err := bolt.Open(filePath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEntries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketEntries).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", storage.ErrNotFound
	}
	return string(value), nil
}

func (b *Bolt) Set(_ context.Context, key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEntries).Put([]byte(key), []byte(value))
	})
}

func (b *Bolt) Remove(_ context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEntries).Delete([]byte(key))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
