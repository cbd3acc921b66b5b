// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/shortcut"
)

// InfoCommandAction describes where the list lives and how big it is. It
// only reads: an absent or corrupt value is reported, not healed.
func InfoCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	raw, found, err := be.Get(ctx, store.Key())
	if err != nil {
		return &shortcut.StorageError{Op: "get", Key: store.Key(), Err: err}
	}

	entries := "absent"
	if found {
		if list, err := shortcut.Decode(raw); err != nil {
			entries = err.Error()
		} else {
			entries = fmt.Sprintf("%d", len(list))
		}
	}

	w := out(cmd)
	fmt.Fprintf(w, "backend: %s\n", be.String())
	fmt.Fprintf(w, "key:     %s\n", store.Key())
	fmt.Fprintf(w, "size:    %s\n", humanize.Bytes(uint64(len(raw))))
	fmt.Fprintf(w, "entries: %s\n", entries)
	_, err = fmt.Fprintf(w, "defaults: %d\n", len(store.Defaults()))
	return err
}

func InfoCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "info",
		Usage:     "show the backend, key and size of the stored list",
		UsageText: "tabctl info [options]",
		Action:    InfoCommandAction,
		Meta:      meta,
	}).Build()
}
