// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/tabctl/internal/config"
)

func TestMangleArguments(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tabctl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
ls:
  defaults:
    - "--titles"
  wide:
    - "--attrs host"
    - "--sort -name"
`), 0o600))
	t.Setenv("TABCTL_CFG", cfg)
	config.Config = config.Type{}
	_, err := config.Load()
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "defaults set",
			args: []string{"tabctl", "ls", "-o", "json"},
			want: []string{"tabctl", "ls", "--titles", "-o", "json"},
		},
		{
			name: "named set in place",
			args: []string{"tabctl", "ls", "-o", "json", "@wide", "-t"},
			want: []string{"tabctl", "ls", "-o", "json", "--attrs", "host", "--sort", "-name", "-t"},
		},
		{
			name: "unknown set is dropped",
			args: []string{"tabctl", "ls", "@nope"},
			want: []string{"tabctl", "ls"},
		},
		{
			name: "no sets for command",
			args: []string{"tabctl", "add", "Go", "go.dev"},
			want: []string{"tabctl", "add", "Go", "go.dev"},
		},
		{
			name: "help",
			args: []string{"tabctl", "ls", "-o", "json", "--help"},
			want: []string{"tabctl", "ls", "--help"},
		},
		{
			name: "leading flag",
			args: []string{"tabctl", "--version"},
			want: []string{"tabctl", "--version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mangleArguments(tt.args))
		})
	}
}
