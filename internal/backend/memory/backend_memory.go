// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package memory is a process-local backend. Values live as long as the
// process, which makes it the test double for everything above the port.
package memory

import (
	"context"
	"sync"
)

type BackendMemory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewBackendMemory() *BackendMemory {
	return &BackendMemory{data: map[string]string{}}
}

func (be *BackendMemory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	be.mu.RLock()
	defer be.mu.RUnlock()
	v, ok := be.data[key]
	return v, ok, nil
}

func (be *BackendMemory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	be.mu.Lock()
	defer be.mu.Unlock()
	be.data[key] = value
	return nil
}

func (be *BackendMemory) String() string {
	return "backend-memory"
}

func (be *BackendMemory) Type() string {
	return "memory"
}

func (be *BackendMemory) Close() error {
	return nil
}
