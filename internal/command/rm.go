// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
)

// RmCommandAction removes the shortcuts at the given indices. Indices refer
// to the list as it was before the command, so they are removed highest
// first. Out of range indices are ignored.
func RmCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}

	indices, err := parseIndices(args)
	if err != nil {
		return err
	}

	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	for _, idx := range indices {
		log.Debugf("removing %d", idx)
		if err := store.Remove(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

// parseIndices returns the distinct indices in args, highest first.
func parseIndices(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, a := range args {
		idx, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", a, err)
		}
		indices = append(indices, idx)
	}

	slices.Sort(indices)
	indices = slices.Compact(indices)
	slices.Reverse(indices)
	return indices, nil
}

func RmCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "rm",
		Usage:     "remove shortcuts by index",
		UsageText: "tabctl rm INDEX... [options]",
		Action:    RmCommandAction,
		Meta:      meta,
	}).Build()
}
