// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
)

// ResetCommandAction replaces the stored list with the default list.
func ResetCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	if err := store.Reset(ctx); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out(cmd), "%d shortcuts\n", len(store.List()))
	return err
}

func ResetCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "reset",
		Usage:     "restore the default shortcuts",
		UsageText: "tabctl reset [options]",
		Action:    ResetCommandAction,
		Meta:      meta,
	}).Build()
}
