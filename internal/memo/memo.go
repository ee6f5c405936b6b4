// Package memo provides a small keyed store with exactly-once memoization.
//
// A Store maps symbolic keys to computed values. Memoize runs a compute
// function at most once per key over the store's lifetime; concurrent first
// access from multiple goroutines is collapsed into a single computation.
package memo

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned by Get when a key is absent.
var ErrNotFound = errors.New("not found")

// Key identifies a stored value. Keys are compared by string equality and
// are expected to come from a small fixed enumeration.
type Key string

// Store is a mutable key-value mapping with memoization support.
// The zero value is not usable; create instances with New.
type Store struct {
	mu    sync.RWMutex
	data  map[Key]any
	group singleflight.Group
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		data: make(map[Key]any),
	}
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key Key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
}

// Get retrieves the value stored under key.
// It returns ErrNotFound when the key is absent.
func (s *Store) Get(key Key) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return v, nil
}

// Has reports whether key is present. It never fails.
func (s *Store) Has(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok
}

// Memoize returns the value stored under key, computing and storing it first
// if absent. The compute function runs at most once per key; concurrent
// callers for the same key share a single computation. A failing compute
// stores nothing, and its error is propagated to every waiting caller.
func Memoize[T any](s *Store, key Key, compute func() (T, error)) (T, error) {
	if v, err := s.Get(key); err == nil {
		return v.(T), nil
	}

	v, err, _ := s.group.Do(string(key), func() (any, error) {
		// Re-check under the group: another caller may have finished
		// between the fast-path miss and entering the flight.
		if v, err := s.Get(key); err == nil {
			return v, nil
		}

		v, err := compute()
		if err != nil {
			return nil, err
		}

		s.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}
