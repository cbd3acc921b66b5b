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
)

const addDoc = "# tabctl add\n\n## Short description\nAppend a shortcut to the list.\n\n## Quick examples\n\n```sh\n# Add a shortcut\ntabctl add Go go.dev\n\n# Add one with an icon\ntabctl add   <name> <url>  <icon>\n```\n"

func TestExtractQuickExamples(t *testing.T) {
	got := extractQuickExamples(addDoc)
	assert.Equal(t, []example{
		{Desc: "Add a shortcut", Cmd: "tabctl add Go go.dev"},
		{Desc: "Add one with an icon", Cmd: "tabctl add   <name> <url>  <icon>"},
	}, got)

	assert.Nil(t, extractQuickExamples("# nothing here"))
}

func TestExtractTitleAndShortDesc(t *testing.T) {
	title, short := extractTitleAndShortDesc(addDoc)
	assert.Equal(t, "tabctl add", title)
	assert.Equal(t, "Append a shortcut to the list.", short)

	title, short = extractTitleAndShortDesc("# tabctl rm\n")
	assert.Equal(t, "tabctl rm", title)
	assert.Equal(t, "tabctl rm.", short)
}

func TestBuildTLDR(t *testing.T) {
	got := buildTLDR("add", "tabctl add", "Append a shortcut.", extractQuickExamples(addDoc))
	want := "# tabctl-add\n\n" +
		"> Append a shortcut.\n" +
		"> More information: https://github.com/staranto/tabctl.\n\n" +
		"- Add a shortcut:\n\n`tabctl add Go go.dev`\n\n" +
		"- Add one with an icon:\n\n`tabctl add {{name}} {{url}} {{icon}}`\n"
	assert.Equal(t, want, got)

	assert.Contains(t, buildTLDR("rm", "", "", nil), "`tabctl rm --help`")
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	cmds := filepath.Join(root, "docs", "commands")
	require.NoError(t, os.MkdirAll(cmds, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cmds, "add.md"), []byte(addDoc), 0o644))

	n, err := generate(root, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	man, err := os.ReadFile(filepath.Join(root, "docs", "man", "share", "man1", "tabctl-add.1"))
	require.NoError(t, err)
	assert.Contains(t, string(man), "tabctl add")

	tldr, err := os.ReadFile(filepath.Join(root, "docs", "tldr", "tabctl-add.md"))
	require.NoError(t, err)
	assert.Contains(t, string(tldr), "# tabctl-add")

	_, err = generate(t.TempDir(), true)
	assert.Error(t, err)
}
