// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/shortcut"
)

// DiffCommandAction compares the stored list with the list in FILE. Both
// sides are decoded first, so only differences that survive a Load show.
func DiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}

	theirs, err := readList(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	ours, err := store.Load(ctx)
	if err != nil {
		return err
	}

	text, changed, err := diffLists(ours, theirs, cmd.Bool("color"))
	if err != nil {
		return err
	}

	w := out(cmd)
	if !changed {
		_, err = fmt.Fprintln(w, "no differences")
		return err
	}
	_, err = fmt.Fprint(w, text)
	return err
}

// diffLists returns the ascii diff from left to right and whether there is
// any difference at all.
func diffLists(left, right shortcut.List, coloring bool) (string, bool, error) {
	l, err := generic(left)
	if err != nil {
		return "", false, err
	}
	r, err := generic(right)
	if err != nil {
		return "", false, err
	}

	d := gojsondiff.New().CompareArrays(l, r)
	if !d.Modified() {
		return "", false, nil
	}

	f := formatter.NewAsciiFormatter(l, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       coloring,
	})
	text, err := f.Format(d)
	if err != nil {
		return "", true, fmt.Errorf("failed to format diff: %w", err)
	}
	return text, true, nil
}

// generic converts list to the []interface{} shape gojsondiff works on.
func generic(list shortcut.List) ([]interface{}, error) {
	raw, err := list.Encode()
	if err != nil {
		return nil, err
	}
	var v []interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("failed to decode shortcuts: %w", err)
	}
	return v, nil
}

func DiffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "compare the stored shortcuts with a JSON file",
		UsageText: "tabctl diff FILE|- [options]",
		Flags: []cli.Flag{
			&cli.BoolWithInverseFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "colour the diff",
				Value:   colorDefault(),
			},
		},
		Action: DiffCommandAction,
		Meta:   meta,
	}).Build()
}
