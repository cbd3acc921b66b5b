// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shortcut

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/apex/log"
)

// Storage is the port the Store persists through: one string value per key.
type Storage interface {
	// Get returns the value at key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value at key.
	Set(ctx context.Context, key, value string) error
}

// Store is the sole owner of the shortcut list. Every mutation is a
// read-modify-write of the whole list under one key; the last writer wins.
type Store struct {
	mu          sync.Mutex
	storage     Storage
	key         string
	defaults    List
	list        List
	subscribers []func(List)
}

// Option customizes a Store.
type Option func(*Store)

// WithKey sets the storage key. Blank keys are ignored.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithDefaults replaces the list written when the stored value is missing or
// unparseable.
func WithDefaults(defaults List) Option {
	return func(s *Store) {
		if defaults != nil {
			s.defaults = defaults.Clone()
		}
	}
}

// NewStore returns a Store over storage. Nothing is read until Load.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		key:      DefaultKey,
		defaults: Defaults(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key the Store reads and writes.
func (s *Store) Key() string {
	return s.key
}

// Defaults returns a copy of the list used to heal a missing or corrupt value.
func (s *Store) Defaults() List {
	return s.defaults.Clone()
}

// List returns a copy of the list as of the last Load or mutation.
func (s *Store) List() List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Clone()
}

// Subscribe registers fn to be called with the new list after every
// successful mutation and after a Reload that observed a change.
func (s *Store) Subscribe(fn func(List)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Load reads the stored list. A missing or unparseable value is replaced by
// the defaults, which are written back before returning. If that write fails
// the defaults are still returned, together with a *StorageError.
func (s *Store) Load(ctx context.Context) (List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if list != nil {
		s.list = list
	}
	return list.Clone(), err
}

// Reload is Load for observers of external writes: subscribers are notified
// when the stored list differs from the one held in memory.
func (s *Store) Reload(ctx context.Context) (bool, error) {
	s.mu.Lock()
	prev := s.list
	list, err := s.load(ctx)
	if list == nil {
		s.mu.Unlock()
		return false, err
	}
	s.list = list
	changed := !prev.Equal(list)
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	if changed {
		notify(subs, list)
	}
	return changed, err
}

// Add appends a new shortcut at the end of the list and persists it.
// Validation happens before anything is read, so a *ValidationError leaves
// both storage and the in-memory list untouched.
func (s *Store) Add(ctx context.Context, name, rawURL, icon string) error {
	sc, err := New(name, rawURL, icon)
	if err != nil {
		return err
	}

	return s.mutate(ctx, func(current List) (List, bool) {
		return append(current, sc), true
	})
}

// Remove deletes the shortcut at index (0-based, display order). An index
// outside the list is ignored: no error, no write.
func (s *Store) Remove(ctx context.Context, index int) error {
	return s.mutate(ctx, func(current List) (List, bool) {
		if index < 0 || index >= len(current) {
			log.Debugf("remove: index %d out of range [0,%d)", index, len(current))
			return current, false
		}
		return slices.Delete(current, index, index+1), true
	})
}

// Save overwrites the stored value with list, unconditionally.
func (s *Store) Save(ctx context.Context, list List) error {
	s.mu.Lock()
	next := list.Clone()
	if err := s.write(ctx, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.list = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	notify(subs, next)
	return nil
}

// Reset saves the default list.
func (s *Store) Reset(ctx context.Context) error {
	return s.Save(ctx, s.defaults)
}

// mutate runs one read-modify-write turn. fn receives a private copy of the
// current list and reports whether it changed anything.
func (s *Store) mutate(ctx context.Context, fn func(List) (List, bool)) error {
	s.mu.Lock()

	current, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.list = current

	next, changed := fn(current.Clone())
	if !changed {
		s.mu.Unlock()
		return nil
	}

	if err := s.write(ctx, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.list = next
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	notify(subs, next)
	return nil
}

// load must be called with s.mu held.
func (s *Store) load(ctx context.Context) (List, error) {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, &StorageError{Op: "get", Key: s.key, Err: err}
	}

	if ok {
		list, err := Decode(raw)
		if err == nil {
			return list, nil
		}
		var perr *ParseError
		if errors.As(err, &perr) {
			log.WithError(err).Debugf("resetting %s to defaults", s.key)
		}
	} else {
		log.Debugf("no value at %s, seeding defaults", s.key)
	}

	defaults := s.defaults.Clone()
	if err := s.write(ctx, defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}

// write must be called with s.mu held.
func (s *Store) write(ctx context.Context, list List) error {
	raw, err := list.Encode()
	if err != nil {
		return &StorageError{Op: "encode", Key: s.key, Err: err}
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		log.WithError(err).Warnf("failed to write %s", s.key)
		return &StorageError{Op: "set", Key: s.key, Err: err}
	}
	return nil
}

func notify(subs []func(List), list List) {
	for _, fn := range subs {
		fn(list.Clone())
	}
}
