// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shortcut

import "fmt"

// ValidationError rejects an Add before anything is read or written.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ParseError describes a stored value that could not be decoded as a list.
// Load recovers from it by falling back to the defaults.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unparseable shortcut list: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unparseable shortcut list: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StorageError wraps a failure of the storage backend.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
