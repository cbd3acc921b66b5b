// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package postgres keeps values in a tabctl_kv table of a PostgreSQL
// database, so several machines can share one shortcut list.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/jackc/pgx/v5"
)

const schema = `CREATE TABLE IF NOT EXISTS tabctl_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type BackendPostgres struct {
	Host     string
	Port     uint16
	Database string

	mu   sync.Mutex
	conn *pgx.Conn
}

// Config parses dsn (URL or keyword/value form) without connecting.
func Config(dsn string) (*pgx.ConnConfig, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres backend: dsn is required (set TABCTL_DSN or backend.dsn)")
	}
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres backend: %w", err)
	}
	return cfg, nil
}

// Open connects to dsn and ensures the tabctl_kv table exists.
func Open(ctx context.Context, dsn string) (*BackendPostgres, error) {
	cfg, err := Config(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	if _, err := conn.Exec(ctx, schema); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("create tabctl_kv table: %w", err)
	}

	be := &BackendPostgres{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Database: cfg.Database,
		conn:     conn,
	}
	log.Debugf("postgres backend: %s", be)
	return be, nil
}

func (be *BackendPostgres) Get(ctx context.Context, key string) (string, bool, error) {
	be.mu.Lock()
	defer be.mu.Unlock()

	var value string
	err := be.conn.QueryRow(ctx, `SELECT value FROM tabctl_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

func (be *BackendPostgres) Set(ctx context.Context, key, value string) error {
	be.mu.Lock()
	defer be.mu.Unlock()

	_, err := be.conn.Exec(ctx,
		`INSERT INTO tabctl_kv (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// String never includes credentials.
func (be *BackendPostgres) String() string {
	return fmt.Sprintf("backend-postgres:%s:%d/%s", be.Host, be.Port, be.Database)
}

func (be *BackendPostgres) Type() string {
	return "postgres"
}

func (be *BackendPostgres) Close() error {
	be.mu.Lock()
	defer be.mu.Unlock()
	if be.conn == nil {
		return nil
	}
	return be.conn.Close(context.Background())
}
