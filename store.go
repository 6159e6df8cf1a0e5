package pocketbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Well-known store keys.
const (
	keyUsername     = "username"
	keyUserPasscode = "userPasscode"
	keyLoggedIn     = "loggedIn"
	keyTransactions = "transactions"
	keyEditID       = "editTransactionId"
	keyEditData     = "editTransactionData"
)

// Store is a flat string-to-string map persisted as a single JSON object
// in one file. It is the durable key-value storage every other component
// builds on.
//
// Every operation performs a full read of the file, and mutating operations
// write the whole map back (last-writer-wins). The store is strictly
// single-client; there is no locking and no optimistic concurrency.
type Store struct {
	path string
}

// NewStore returns a store persisted at path. The file is created on the
// first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the store file.
func (s *Store) Path() string { return s.path }

// Get returns the value stored under key, and whether the key exists.
// A missing store file behaves as an empty store.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	m, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok = m[key]
	return value, ok, nil
}

// Set stores value under key and persists the whole store.
func (s *Store) Set(key, value string) error {
	m, err := s.read()
	if err != nil {
		return err
	}
	m[key] = value
	return s.write(m)
}

// Delete removes key from the store and persists it. Deleting a missing key
// is a no-op.
func (s *Store) Delete(key string) error {
	m, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.write(m)
}

// read loads the whole store map from disk.
//
// A missing file yields an empty map. An unreadable JSON payload also
// yields an empty map: stored state is untrusted, and a corrupt store must
// never surface as an error to the user.
func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store file %q: %w", s.path, err)
	}

	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("warning: store file %q is corrupt, starting from an empty store: %v", s.path, err)
		return make(map[string]string), nil
	}
	return m, nil
}

// write persists the whole store map to disk. Unlike reads, write failures
// are surfaced to the caller so that a user never mistakes a lost write for
// a successful one.
func (s *Store) write(m map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create store directory %q: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("could not write store file %q: %w", s.path, err)
	}
	return nil
}
