// Package localstore is the client-state repository: a small key/value store
// with get/set/subscribe, persisted as a single JSON file. It mirrors the
// browser's local storage so the held state can move to a real backend
// without touching view logic.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Keys the client state lives under.
const (
	KeyMealPlan     = "mealPlan"
	KeyShoppingList = "shoppingList"
	KeyPantryItems  = "pantryItems"
	KeyFavorites    = "favoriteRecipes"
)

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = fmt.Errorf("key not found")

// Store is a file-backed key/value repository. Every Set rewrites the file
// atomically (temp file + rename), so a crash never leaves a torn record.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
	subs map[string][]func(json.RawMessage)
}

// Open loads the store file, creating an empty store if the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
		subs: make(map[string][]func(json.RawMessage)),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return s, nil
}

// Get unmarshals the value under key into v.
func (s *Store) Get(key string, v interface{}) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return json.Unmarshal(raw, v)
}

// Set stores v under key, persists the full store, and notifies subscribers.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	err = s.persistLocked()
	subs := append([]func(json.RawMessage){}, s.subs[key]...)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	for _, fn := range subs {
		fn(raw)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.persistLocked()
}

// Subscribe registers fn to run after every Set of key.
func (s *Store) Subscribe(key string, fn func(json.RawMessage)) {
	s.mu.Lock()
	s.subs[key] = append(s.subs[key], fn)
	s.mu.Unlock()
}

func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".localstore-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
