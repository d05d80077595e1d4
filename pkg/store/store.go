// Package store implements the persistent variable storage used by the
// console. Values are stored in their canonical textual rendering and
// re-parsed when loaded.
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"nscript.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

// ErrNoVar is returned by (*Store).Var when there is no such variable.
var ErrNoVar = errors.New("no such variable")

const bucketVar = "var"

// Store is the permanent storage backend for console variables. It is not
// safe for concurrent use.
type Store struct {
	db *bolt.DB
}

// NewStore creates a Store backed by the named file, creating the file and
// the schema if necessary.
func NewStore(dbname string) (*Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketVar))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened database", dbname)
	return &Store{db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Var gets the stored rendering of a variable.
func (s *Store) Var(n string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketVar))
		v := b.Get([]byte(n))
		if v == nil {
			return ErrNoVar
		}
		value = string(v)
		return nil
	})
	return value, err
}

// SetVar sets the stored rendering of a variable.
func (s *Store) SetVar(n, v string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketVar))
		return b.Put([]byte(n), []byte(v))
	})
}

// DelVar deletes a variable.
func (s *Store) DelVar(n string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketVar))
		return b.Delete([]byte(n))
	})
}

// Vars lists all stored variables.
func (s *Store) Vars() (map[string]string, error) {
	vars := make(map[string]string)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketVar))
		return b.ForEach(func(k, v []byte) error {
			vars[string(k)] = string(v)
			return nil
		})
	})
	return vars, err
}
