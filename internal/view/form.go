// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldURL
	fieldIcon
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "URL", "Icon"}

// addForm collects a new shortcut. Validation errors are shown in the form
// and the form stays open.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newAddForm() addForm {
	var f addForm
	placeholders := [fieldCount]string{"CourseWeb", "courseweb.sliit.lk", "optional"}
	limits := [fieldCount]int{64, 2048, 8}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 40
		f.inputs[i] = ti
	}
	return f
}

// reset clears the form and focuses the name field.
func (f *addForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.err = ""
	f.focus = fieldName
	return f.inputs[f.focus].Focus()
}

// cycle moves focus by delta, wrapping around.
func (f *addForm) cycle(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f addForm) values() (name, url, icon string) {
	return f.inputs[fieldName].Value(), f.inputs[fieldURL].Value(), f.inputs[fieldIcon].Value()
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add shortcut"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = promptStyle.Render(labelStyle.Render(fieldLabels[i]))
		}
		b.WriteString(label + " " + in.View() + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("tab next • enter save • esc cancel"))
	return formStyle.Render(b.String())
}
