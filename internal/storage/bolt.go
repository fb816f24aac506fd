package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const kvBucket = "kv"

// BoltKV is a BoltDB-backed store, useful where cgo (and therefore the
// sqlite driver) is unavailable.
type BoltKV struct {
	db *bbolt.DB
}

func OpenBolt(path string) (*BoltKV, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage: bolt path is required")
	}
	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists([]byte(kvBucket))
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltKV{db: db}, nil
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}

func (b *BoltKV) Get(key string) (string, bool) {
	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(kvBucket)).Get([]byte(key))
		if raw != nil {
			value = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil || value == nil {
		return "", false
	}
	return string(value), true
}

func (b *BoltKV) Set(key, value string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

func (b *BoltKV) Delete(key string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (b *BoltKV) Keys() []string {
	out := make([]string, 0)
	_ = b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(kvBucket)).ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	return out
}
