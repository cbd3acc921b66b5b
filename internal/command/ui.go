// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/backend"
	"github.com/staranto/tabctl/internal/config"
	"github.com/staranto/tabctl/internal/meta"
	"github.com/staranto/tabctl/internal/view"
)

// UiCommandAction runs the interactive view. When the user selects a tile
// or submits the search box, the URL is printed after the view closes.
func UiCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, be, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer be.Close()

	// Releases the view's listeners once the program is gone.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := view.New(ctx, store, view.WithEngine(cmd.String("engine")))

	if w, ok := be.(backend.Watcher); ok && watchEnabled() {
		stop, err := w.Watch(ctx, store.Key(), m.Notify)
		if err != nil {
			log.WithError(err).Warn("not watching for external changes")
		} else {
			defer stop()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	if fm, ok := final.(view.Model); ok && fm.Selected() != "" {
		_, err = fmt.Fprintln(out(cmd), fm.Selected())
		return err
	}
	return nil
}

// watchEnabled reads ui.watch (or a top-level watch), defaulting to true.
func watchEnabled() bool {
	watch, err := config.GetBool("watch", true)
	if err != nil {
		log.WithError(err).Warn("watch is not a bool, watching anyway")
		return true
	}
	return watch
}

func UiCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "ui",
		Usage:     "interactive shortcut view",
		UsageText: "tabctl ui [options]",
		Flags:     []cli.Flag{engineFlag()},
		Action:    UiCommandAction,
		Meta:      meta,
	}).Build()
}
