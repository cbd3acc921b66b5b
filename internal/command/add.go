// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/shortcut"
)

// AddCommandAction appends NAME URL [ICON] and prints the new index.
func AddCommandAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	icon := cmd.String("icon")

	// Argument parsing stops at a blank argument, so a short list with a
	// blank on the command line means the next positional was given empty.
	if len(args) < 2 && hasBlankArg(GetMeta(cmd).Args) {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		_, err := shortcut.New(name, "", icon)
		return err
	}

	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}

	if len(args) == 3 {
		icon = args[2]
	}

	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	if err := store.Add(ctx, args[0], args[1], icon); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out(cmd), len(store.List())-1)
	return err
}

func hasBlankArg(args []string) bool {
	for _, a := range args {
		if strings.TrimSpace(a) == "" {
			return true
		}
	}
	return false
}

func AddCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "add",
		Usage:     "append a shortcut",
		UsageText: "tabctl add NAME URL [ICON] [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "icon",
				Aliases: []string{"i"},
				Usage:   "icon glyph (a third argument wins)",
			},
		},
		Action: AddCommandAction,
		Meta:   meta,
	}).Build()
}
