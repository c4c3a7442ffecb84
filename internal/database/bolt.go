package database

import (
	"bytes"
	"fmt"

	"go.etcd.io/bbolt"
)

// BoltKVStore provides simple kv store interface based on boltdb.
type BoltKVStore struct {
	db         *bbolt.DB
	bucketName []byte
}

// NewBoltKVStore creates new BoltKVStore instance.
func NewBoltKVStore(dbPath string, bucketName string) (*BoltKVStore, error) {
	db, err := bbolt.Open(dbPath, 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return err
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltKVStore{
		db:         db,
		bucketName: []byte(bucketName),
	}, nil
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *BoltKVStore) ReadKey(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		// Values are valid only during transaction.
		if v := b.Get(key); v != nil {
			data = append([]byte{}, v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// ReadPrefix returns all values stored under keys starting with given prefix, in key order.
func (s *BoltKVStore) ReadPrefix(prefix []byte) ([][]byte, error) {
	var values [][]byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(s.bucketName).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			values = append(values, append([]byte{}, v...))
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return values, nil
}

// UpdateKey stores given data under given key.
func (s *BoltKVStore) UpdateKey(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		return b.Put(key, data)
	}); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// UpdateKeyIfExists replaces data stored under given key with the result of update, in single transaction.
// update receives current data, valid only during the call. Returns false and writes nothing if key isn't stored.
func (s *BoltKVStore) UpdateKeyIfExists(key []byte, update func([]byte) ([]byte, error)) (bool, error) {
	var existed bool
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		v := b.Get(key)
		if v == nil {
			return nil
		}
		existed = true

		data, err := update(v)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	}); err != nil {
		return false, fmt.Errorf("updating db: %w", err)
	}

	return existed, nil
}

// DeleteKey removes given key. Returns false if key wasn't stored.
func (s *BoltKVStore) DeleteKey(key []byte) (bool, error) {
	var existed bool
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		if b.Get(key) == nil {
			return nil
		}
		existed = true
		return b.Delete(key)
	}); err != nil {
		return false, fmt.Errorf("deleting from db: %w", err)
	}

	return existed, nil
}

// Close closes database.
func (s *BoltKVStore) Close() error {
	return s.db.Close()
}
