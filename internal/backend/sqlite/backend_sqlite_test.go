// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestBackendSQLite_GetSet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tabctl.db")

	be, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = be.Close() })

	assert.Equal(t, "sqlite", be.Type())
	assert.Equal(t, "backend-sqlite:"+path, be.String())

	_, ok, err := be.Get(ctx, "aquaHome.shortcuts")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, be.Set(ctx, "aquaHome.shortcuts", `[]`))
	require.NoError(t, be.Set(ctx, "aquaHome.shortcuts", `[{"name":"A","url":"https://a"}]`))

	v, ok, err := be.Get(ctx, "aquaHome.shortcuts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"name":"A","url":"https://a"}]`, v)
}

func TestBackendSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tabctl.db")

	be, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, be.Set(ctx, "shortcuts", `["kept"]`))
	require.NoError(t, be.Close())

	be, err = Open(ctx, path)
	require.NoError(t, err)
	defer be.Close()

	v, ok, err := be.Get(ctx, "shortcuts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["kept"]`, v)
}

func TestBackendSQLite_CancelledContext(t *testing.T) {
	be, err := Open(context.Background(), filepath.Join(t.TempDir(), "tabctl.db"))
	require.NoError(t, err)
	defer be.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = be.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, be.Set(ctx, "k", "v"))
}
