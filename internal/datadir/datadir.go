// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package datadir

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// Dir resolves the base data directory.
// Precedence:
//  1. TABCTL_DATA_DIR, if set and non-empty
//  2. os.UserConfigDir()/tabctl
//
// Returns ("", false) if a base cannot be resolved.
func Dir() (string, bool) {
	if d, ok := os.LookupEnv("TABCTL_DATA_DIR"); ok && d != "" {
		return d, true
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "tabctl"), true
	}
	return "", false
}

// EnsureBaseDir creates the base data directory. Returns the path, whether it
// is usable, and an error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}
	if err := Ensure(base); err != nil {
		return base, false, err
	}
	return base, true, nil
}

// Ensure creates dir and any missing parents.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	log.Debugf("data dir: %s", dir)
	return nil
}

// EntryPath returns the path where the value for the clear-text key lives
// beneath base.
func EntryPath(base string, clearKey string) string {
	return filepath.Join(base, EncodeKey(clearKey)+".json")
}

// EncodeKey hashes k with MD5 and returns the hex string. Storage keys are free
// text (dots, slashes) so they are never used as file names directly.
func EncodeKey(k string) string {
	h := md5.New()
	_, _ = h.Write([]byte(k))
	return hex.EncodeToString(h.Sum(nil))
}
