// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/tabctl/internal/config"
	"github.com/staranto/tabctl/internal/shortcut"
)

// tldrFlag is built per command; urfave flags keep parse state.
func tldrFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

// NewGlobalFlags returns the presentation flags shared by commands that print
// the list. params[0] is the command name, used as the config namespace.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	src := altsrc.StringSourcer(config.Config.Source)

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"attrs", src),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", src),
				yaml.YAML("color", src),
			),
			Value: colorDefault(),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, raw, yaml)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", src),
				yaml.YAML("output", src),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"sort", src),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", src),
				yaml.YAML("titles", src),
			),
			Value: false,
		},
	}

	return
}

// NewStoreFlags returns the flags that select where the list lives.
func NewStoreFlags(params ...string) []cli.Flag {
	src := altsrc.StringSourcer(config.Config.Source)

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "storage key holding the list (shortcuts is the legacy key)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TABCTL_KEY"),
				yaml.YAML(params[0]+"."+"key", src),
				yaml.YAML("key", src),
			),
			Value: shortcut.DefaultKey,
			Validator: func(value string) error {
				return FlagValidators(value, NotBlankValidator, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "backend",
			Aliases: []string{"b"},
			Usage:   "storage backend (file, memory, sqlite, postgres, s3). Overrides config and TABCTL_BACKEND",
			Validator: func(value string) error {
				return FlagValidators(value, BackendValidator)
			},
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "data directory (file) or database file (sqlite). Overrides TABCTL_BACKEND_PATH",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
	}
}

// colorDefault turns colour on when stdout is a terminal and NO_COLOR is unset.
func colorDefault() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
