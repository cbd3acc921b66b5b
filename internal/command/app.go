// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/config"
	"github.com/staranto/tabctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the tabctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config: %v", err)
	}
	config.Config.Namespace = ns
	cfg.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "tabctl",
		Usage: "start page shortcut control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tabctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		AddCommandBuilder(meta),
		CompletionCommandBuilder(meta),
		DiffCommandBuilder(meta),
		ExportCommandBuilder(meta),
		ImportCommandBuilder(meta),
		InfoCommandBuilder(meta),
		LsCommandBuilder(meta),
		ResetCommandBuilder(meta),
		RmCommandBuilder(meta),
		SearchCommandBuilder(meta),
		UiCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
