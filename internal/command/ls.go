// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/attrs"
	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/output"
)

// LsCommandAction loads the list and renders it per the presentation flags.
// --output raw prints the stored value exactly as the backend holds it.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	list, err := store.Load(ctx)
	if err != nil {
		return err
	}

	opts := output.OptionsFromCommand(cmd)
	w := out(cmd)

	if opts.Output == "raw" {
		raw, _, err := be.Get(ctx, store.Key())
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", store.Key(), err)
		}
		_, err = fmt.Fprintln(w, raw)
		return err
	}

	defaults := attrs.Defaults()
	al := BuildAttrs(cmd, defaults.String())
	log.Debugf("attrs: %v", al.String())

	return output.SliceDiceSpit(output.Dataset(list), al, opts, w)
}

func LsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "list shortcuts",
		UsageText: "tabctl ls [options]",
		Action:    LsCommandAction,
		Meta:      meta,
		Output:    true,
	}).Build()
}
