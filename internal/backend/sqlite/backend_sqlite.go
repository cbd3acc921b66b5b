// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package sqlite keeps values in a single kv table of a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/staranto/tabctl/internal/datadir"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

type BackendSQLite struct {
	Path string
	db   *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the kv
// table exists.
func Open(ctx context.Context, path string) (*BackendSQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite backend: path is required")
	}
	if path != ":memory:" {
		if err := datadir.Ensure(filepath.Dir(path)); err != nil {
			return nil, err
		}
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	log.Debugf("sqlite backend: %s", path)
	return &BackendSQLite{Path: path, db: db}, nil
}

func (be *BackendSQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := be.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

func (be *BackendSQLite) Set(ctx context.Context, key, value string) error {
	_, err := be.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (be *BackendSQLite) String() string {
	return "backend-sqlite:" + be.Path
}

func (be *BackendSQLite) Type() string {
	return "sqlite"
}

func (be *BackendSQLite) Close() error {
	if be.db == nil {
		return nil
	}
	return be.db.Close()
}
