// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/tabctl/internal/backend/file"
	"github.com/staranto/tabctl/internal/backend/memory"
	"github.com/staranto/tabctl/internal/backend/postgres"
	"github.com/staranto/tabctl/internal/backend/s3"
	"github.com/staranto/tabctl/internal/backend/sqlite"
	"github.com/staranto/tabctl/internal/datadir"
)

// Backend is a synchronous, persistent, string-keyed store. It satisfies
// shortcut.Storage.
type Backend interface {
	// Get returns the value at key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value at key.
	Set(ctx context.Context, key, value string) error
	String() string
	Type() string
	Close() error
}

// Watcher is implemented by backends that can report writes made by other
// processes. fn is called from a background goroutine; stop releases it.
type Watcher interface {
	Watch(ctx context.Context, key string, fn func()) (stop func(), err error)
}

// Types lists the backend types NewBackend understands.
var Types = []string{"file", "memory", "sqlite", "postgres", "s3"}

// NewBackend opens the backend described by s.
func NewBackend(ctx context.Context, s Settings) (Backend, error) {
	typ := strings.ToLower(strings.TrimSpace(s.Type))
	log.Debugf("NewBackend: type=%s", typ)

	switch typ {
	case "", "file":
		return file.NewBackendFile(file.WithDir(s.Path))
	case "memory":
		return memory.NewBackendMemory(), nil
	case "sqlite":
		path := s.Path
		if path == "" {
			base, ok, err := datadir.EnsureBaseDir()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("sqlite backend: no path and no data directory")
			}
			path = filepath.Join(base, "tabctl.db")
		}
		return sqlite.Open(ctx, path)
	case "postgres":
		return postgres.Open(ctx, s.DSN)
	case "s3":
		return s3.NewBackendS3(ctx,
			s3.WithBucket(s.Bucket),
			s3.WithPrefix(s.Prefix),
			s3.WithRegion(s.Region),
			s3.WithProfile(s.Profile),
			s3.WithEndpoint(s.Endpoint),
			s3.WithPathStyle(s.PathStyle),
			s3.WithMaxAttempts(s.MaxAttempts),
			s3.WithCredentials(s.AccessKeyID, s.SecretAccessKey),
		)
	}

	return nil, fmt.Errorf("unknown backend type %q (want one of %v)", s.Type, Types)
}
