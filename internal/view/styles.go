// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/tabctl/internal/config"
)

// Colors follow the colors: block of the config so the view matches the
// tables printed by ls.
var (
	colorTitle  = lipgloss.Color(configColor("colors.title", "#f6be00"))
	colorAccent = lipgloss.Color(configColor("colors.odd", "#00c8f0"))
	colorError  = lipgloss.Color("9")
	colorMuted  = lipgloss.Color("8")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	hostStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	formStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Width(6)
	promptStyle = lipgloss.NewStyle().Foreground(colorAccent)
)

func configColor(key, def string) string {
	c, err := config.GetString(key, def)
	if err != nil || c == "" {
		return def
	}
	return c
}
