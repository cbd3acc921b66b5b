// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staranto/tabctl/internal/search"
	"github.com/staranto/tabctl/internal/shortcut"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
)

type (
	tickMsg time.Time
	// changedMsg follows a store notification.
	changedMsg struct{}
	// watchMsg follows a write observed on the backend.
	watchMsg  struct{}
	loadedMsg struct {
		list shortcut.List
		err  error
	}
	// doneMsg carries the result of a store call made off the update loop.
	doneMsg struct{ err error }
)

// Model is the Bubble Tea model of the shortcut view.
type Model struct {
	ctx    context.Context
	store  *shortcut.Store
	engine string
	now    func() time.Time

	list     shortcut.List
	cursor   int
	mode     mode
	form     addForm
	search   textinput.Model
	clock    time.Time
	status   string
	selected string

	changed chan struct{}
	watched chan struct{}
}

type Option func(*Model)

// WithEngine sets the search engine prefix used by the search box.
func WithEngine(engine string) Option {
	return func(m *Model) {
		if engine != "" {
			m.engine = engine
		}
	}
}

// WithClock replaces time.Now for the header clock.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New builds the view over store and subscribes to its notifications.
func New(ctx context.Context, store *shortcut.Store, opts ...Option) Model {
	m := Model{
		ctx:     ctx,
		store:   store,
		engine:  search.DefaultEngine,
		now:     time.Now,
		form:    newAddForm(),
		changed: make(chan struct{}, 1),
		watched: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.search = textinput.New()
	m.search.Prompt = "› "
	m.search.Placeholder = "Search or type a URL"
	m.search.CharLimit = 2048
	m.search.Width = 50

	m.list = store.List()
	m.clock = m.now()

	changed := m.changed
	store.Subscribe(func(shortcut.List) { signal(changed) })

	return m
}

// signal coalesces: one pending signal is as good as many.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Notify asks the view to reload from storage. It is safe to call from any
// goroutine and is what backend watchers are wired to.
func (m Model) Notify() {
	signal(m.watched)
}

// Selected is the URL chosen when the view quit, if any.
func (m Model) Selected() string {
	return m.selected
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("tabctl"),
		m.loadCmd(),
		tick(),
		listen(m.ctx, m.changed, changedMsg{}),
		listen(m.ctx, m.watched, watchMsg{}),
	)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func listen(ctx context.Context, ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.store.Load(m.ctx)
		return loadedMsg{list: list, err: err}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.Reload(m.ctx)
		return doneMsg{err: err}
	}
}

func (m Model) addCmd(name, url, icon string) tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: m.store.Add(m.ctx, name, url, icon)}
	}
}

func (m Model) removeCmd(index int) tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: m.store.Remove(m.ctx, index)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.clock = time.Time(msg)
		return m, tick()

	case changedMsg:
		m.list = m.store.List()
		m.clampCursor()
		return m, listen(m.ctx, m.changed, changedMsg{})

	case watchMsg:
		log.Debug("view: backend changed, reloading")
		return m, tea.Batch(m.reloadCmd(), listen(m.ctx, m.watched, watchMsg{}))

	case loadedMsg:
		m.list = msg.list
		m.clampCursor()
		m.setStatus(msg.err)
		return m, nil

	case doneMsg:
		m.setStatus(msg.err)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *Model) setStatus(err error) {
	if err == nil {
		m.status = ""
		return
	}
	log.WithError(err).Warn("view")
	m.status = err.Error()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.list) {
		m.cursor = len(m.list) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, defaultKeys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, defaultKeys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, defaultKeys.Add):
		m.mode = modeAdd
		return m, m.form.reset()
	case key.Matches(msg, defaultKeys.Remove):
		if len(m.list) > 0 {
			return m, m.removeCmd(m.cursor)
		}
	case key.Matches(msg, defaultKeys.Search):
		m.mode = modeSearch
		m.search.Reset()
		return m, m.search.Focus()
	case key.Matches(msg, defaultKeys.Reload):
		return m, m.reloadCmd()
	case key.Matches(msg, defaultKeys.Select):
		if len(m.list) > 0 {
			m.selected = m.list[m.cursor].URL
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeys.Cancel):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, defaultKeys.Next):
		return m, m.form.cycle(1)
	case key.Matches(msg, defaultKeys.Prev):
		return m, m.form.cycle(-1)
	case key.Matches(msg, defaultKeys.Submit):
		name, url, icon := m.form.values()
		if _, err := shortcut.New(name, url, icon); err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.mode = modeList
		return m, m.addCmd(name, url, icon)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeys.Cancel):
		m.mode = modeList
		m.search.Blur()
		return m, nil
	case key.Matches(msg, defaultKeys.Submit):
		m.search.Blur()
		if url, ok := search.Resolve(m.search.Value(), m.engine); ok {
			m.selected = url
			return m, tea.Quit
		}
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tabctl") + "  " + clockStyle.Render(m.clock.Format("15:04:05")))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(m.form.View())
		b.WriteString("\n")
	case modeSearch:
		b.WriteString(promptStyle.Render("Search") + " " + m.search.View())
		b.WriteString("\n")
	default:
		if len(m.list) == 0 {
			b.WriteString(mutedStyle.Render("No shortcuts. Press a to add one."))
			b.WriteString("\n")
		}
		for i, s := range m.list {
			line := fmt.Sprintf("%s %s  %s", s.Glyph(), s.Name, hostStyle.Render(s.Host()))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("› ") + selectedStyle.Render(s.Glyph()+" "+s.Name) + "  " + hostStyle.Render(s.Host()))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(helpLine()))

	return b.String()
}
