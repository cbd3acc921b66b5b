// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/dchest/safefile"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/shortcut"
)

// readList reads and decodes a list from path, or from the command's reader
// when path is "-". Unlike Load, an undecodable file is an error.
func readList(cmd *cli.Command, path string) (shortcut.List, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(in(cmd))
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	list, err := shortcut.Decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// ImportCommandAction replaces the stored list with the one in FILE.
func ImportCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}

	list, err := readList(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	if err := store.Save(ctx, list); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out(cmd), "%d shortcuts\n", len(list))
	return err
}

// ExportCommandAction writes the stored list as indented JSON to FILE, or to
// stdout when FILE is absent or "-".
func ExportCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}

	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	list, err := store.Load(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("failed to marshal shortcuts: %w", err)
	}
	b := buf.Bytes()

	path := cmd.Args().First()
	if path == "" || path == "-" {
		_, err = out(cmd).Write(b)
		return err
	}

	log.Debugf("exporting %d shortcuts to %s", len(list), path)
	if err := safefile.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ImportCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "import",
		Usage:     "replace the stored shortcuts with a JSON file",
		UsageText: "tabctl import FILE|- [options]",
		Action:    ImportCommandAction,
		Meta:      meta,
	}).Build()
}

func ExportCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "export",
		Usage:     "write the stored shortcuts as JSON",
		UsageText: "tabctl export [FILE] [options]",
		Action:    ExportCommandAction,
		Meta:      meta,
	}).Build()
}
