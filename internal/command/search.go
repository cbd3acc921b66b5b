// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/search"
)

// SearchCommandAction prints the URL the search box would navigate to.
func SearchCommandAction(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")

	target, ok := search.Resolve(query, cmd.String("engine"))
	if !ok {
		return errors.New("nothing to search for")
	}

	_, err := fmt.Fprintln(out(cmd), target)
	return err
}

func engineFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "engine",
		Aliases: []string{"e"},
		Usage:   "search engine prefix the escaped query is appended to",
		Sources: cli.EnvVars("TABCTL_SEARCH_ENGINE"),
		Value:   search.Engine(),
	}
}

func SearchCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "search",
		Usage:     "resolve a search box query to a URL",
		UsageText: "tabctl search QUERY... [options]",
		Flags:     []cli.Flag{engineFlag()},
		Action:    SearchCommandAction,
		Meta:      meta,
		NoStore:   true,
	}).Build()
}
