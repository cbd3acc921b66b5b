// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/attrs"
	"github.com/staranto/tabctl/internal/backend"
	"github.com/staranto/tabctl/internal/config"
	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/shortcut"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr tabctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "tabctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs. The global transform spec is applied when the list is rendered.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
	}
	return
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// out is where a command writes its results. Tests swap the root Writer.
func out(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// in is where a command reads "-" from.
func in(cmd *cli.Command) io.Reader {
	if root := cmd.Root(); root != nil && root.Reader != nil {
		return root.Reader
	}
	return os.Stdin
}

// CommandBuilder constructs a cli.Command for the subcommands using a
// consistent pattern. Every command gets the store flags and tldr; Output
// commands also get the presentation flags.
type CommandBuilder struct {
	Name      string
	Aliases   []string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
	// Output adds --attrs, --color, --filter, --output, --sort and --titles.
	Output bool
	// NoStore leaves off --key, --backend and --path.
	NoStore bool
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	m := cb.Meta
	m.Namespace = cb.Name

	flags := append([]cli.Flag{tldrFlag()}, cb.Flags...)
	if !cb.NoStore {
		flags = append(flags, NewStoreFlags(cb.Name)...)
	}
	if cb.Output {
		flags = append(flags, NewGlobalFlags(cb.Name)...)
	}

	return &cli.Command{
		Name:      cb.Name,
		Aliases:   cb.Aliases,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			config.Config.Namespace = cb.Name
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			log.Debugf("Executing action for %s %v", cb.Name, c.Args().Slice())
			if ShortCircuitTLDR(ctx, c, cb.Name) {
				return nil
			}
			return cb.Action(ctx, c)
		},
	}
}

// OpenBackend resolves backend Settings from config and environment, lets
// --backend and --path override them and opens the backend.
func OpenBackend(ctx context.Context, cmd *cli.Command) (backend.Backend, error) {
	s, err := backend.LoadSettings()
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("backend") {
		s.Type = cmd.String("backend")
		// A path configured for another backend type means nothing here.
		if !cmd.IsSet("path") {
			s.Path = ""
		}
	}
	if cmd.IsSet("path") {
		s.Path = cmd.String("path")
	}

	be, err := backend.NewBackend(ctx, s)
	if err != nil {
		return nil, err
	}
	log.Debugf("be: %v", be)
	return be, nil
}

// OpenStore opens the backend and builds the Store over it, honouring --key
// and the configured default list. The caller closes the backend.
func OpenStore(ctx context.Context, cmd *cli.Command) (*shortcut.Store, backend.Backend, error) {
	be, err := OpenBackend(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := []shortcut.Option{shortcut.WithKey(cmd.String("key"))}

	defaults, err := ConfiguredDefaults()
	if err != nil {
		_ = be.Close()
		return nil, nil, err
	}
	if defaults != nil {
		opts = append(opts, shortcut.WithDefaults(defaults))
	}

	return shortcut.NewStore(be, opts...), be, nil
}

// ConfiguredDefaults returns the defaults: list of the config file, or nil
// when there is none. Each entry goes through the same validation as Add.
func ConfiguredDefaults() (shortcut.List, error) {
	var entries []struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
		Icon string `yaml:"icon"`
	}

	// defaults is a top-level block; <cmd>.defaults would be an argument set.
	ns := config.Config.Namespace
	config.Config.Namespace = ""
	defer func() { config.Config.Namespace = ns }()

	if err := config.Decode("defaults", &entries); err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	list := make(shortcut.List, 0, len(entries))
	for i, e := range entries {
		s, err := shortcut.New(e.Name, e.URL, e.Icon)
		if err != nil {
			return nil, fmt.Errorf("config defaults[%d]: %w", i, err)
		}
		list = append(list, s)
	}
	return list, nil
}
