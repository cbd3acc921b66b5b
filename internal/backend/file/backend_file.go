// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/apex/log"
	"github.com/dchest/safefile"
	"github.com/fsnotify/fsnotify"

	"github.com/staranto/tabctl/internal/datadir"
)

// BackendFile keeps one file per key beneath Dir. Writes go to a temporary
// file that is renamed over the target, so a reader never sees half a list.
type BackendFile struct {
	Dir string
}

type BackendFileOption func(*BackendFile)

// WithDir overrides the data directory. Empty keeps the default resolution.
func WithDir(dir string) BackendFileOption {
	return func(be *BackendFile) {
		if dir != "" {
			be.Dir = dir
		}
	}
}

func NewBackendFile(opts ...BackendFileOption) (*BackendFile, error) {
	be := &BackendFile{}
	for _, opt := range opts {
		opt(be)
	}

	if be.Dir == "" {
		base, ok, err := datadir.EnsureBaseDir()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("file backend: cannot resolve a data directory")
		}
		be.Dir = base
	} else if err := datadir.Ensure(be.Dir); err != nil {
		return nil, err
	}

	return be, nil
}

// Path returns the file that holds key.
func (be *BackendFile) Path(key string) string {
	return datadir.EntryPath(be.Dir, key)
}

func (be *BackendFile) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(be.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (be *BackendFile) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := safefile.Create(be.Path(key), 0o600) //nolint:mnd
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", key, err)
	}
	defer f.Close()

	if _, err := f.WriteString(value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}

	log.Debugf("wrote %d bytes to %s", len(value), f.Name())
	return nil
}

// Watch calls fn whenever the file behind key is created, written, replaced
// or removed, by this process or any other. The directory is watched rather
// than the file because every Set replaces the file.
func (be *BackendFile) Watch(ctx context.Context, key string, fn func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(be.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", be.Dir, err)
	}

	target := filepath.Clean(be.Path(key))
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}
				log.Debugf("watch: %s %s", event.Op, key)
				fn()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warnf("watch error on %s", be.Dir)
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(stopCh)
			<-doneCh
			if err := watcher.Close(); err != nil {
				log.WithError(err).Warn("failed to close watcher")
			}
		})
	}
	return stop, nil
}

func (be *BackendFile) String() string {
	return "backend-file:" + be.Dir
}

func (be *BackendFile) Type() string {
	return "file"
}

func (be *BackendFile) Close() error {
	return nil
}
