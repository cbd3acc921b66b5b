// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package view

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/tabctl/internal/backend/memory"
	"github.com/staranto/tabctl/internal/search"
	"github.com/staranto/tabctl/internal/shortcut"
)

var fixed = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds msg to m and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// settle runs a store command, then applies the resulting message and any
// pending store notification.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	select {
	case <-m.changed:
		m, _ = send(t, m, changedMsg{})
	default:
	}
	return m
}

func newModel(t *testing.T, list shortcut.List) (Model, *shortcut.Store, *memory.BackendMemory) {
	t.Helper()
	ctx := context.Background()
	be := memory.NewBackendMemory()
	store := shortcut.NewStore(be)
	require.NoError(t, store.Save(ctx, list))

	m := New(ctx, store, WithClock(func() time.Time { return fixed }))
	return m, store, be
}

var (
	scA = shortcut.Shortcut{Name: "A", URL: "https://a.example"}
	scB = shortcut.Shortcut{Name: "B", URL: "https://b.example", Icon: "🅱"}
	scC = shortcut.Shortcut{Name: "C", URL: "http://c.example"}
)

func TestModel_LoadSeedsDefaults(t *testing.T) {
	store := shortcut.NewStore(memory.NewBackendMemory())
	m := New(context.Background(), store)
	assert.Empty(t, m.list)

	m, _ = send(t, m, m.loadCmd()())
	assert.Equal(t, shortcut.Defaults(), m.list)
	assert.Empty(t, m.status)
}

func TestModel_Navigation(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{scA, scB, scC})

	m, _ = send(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor, "clamped at the top")

	m, _ = send(t, m, runes("j"))
	m, _ = send(t, m, keyOf(tea.KeyDown))
	m, _ = send(t, m, runes("j"))
	assert.Equal(t, 2, m.cursor, "clamped at the bottom")

	m, _ = send(t, m, keyOf(tea.KeyUp))
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Select(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{scA, scB})

	m, _ = send(t, m, runes("j"))
	m, cmd := send(t, m, keyOf(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, scB.URL, m.Selected())
}

func TestModel_SelectEmpty(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{})

	m, cmd := send(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Empty(t, m.Selected())
	assert.Contains(t, m.View(), "No shortcuts")
}

func TestModel_AddForm(t *testing.T) {
	m, store, _ := newModel(t, shortcut.List{scA})

	m, _ = send(t, m, runes("a"))
	require.Equal(t, modeAdd, m.mode)

	m, _ = send(t, m, runes("Go"))
	m, _ = send(t, m, keyOf(tea.KeyTab))
	m, _ = send(t, m, runes("go.dev"))
	m, _ = send(t, m, keyOf(tea.KeyTab))
	m, _ = send(t, m, runes("🐹"))

	m, cmd := send(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, modeList, m.mode)
	m = settle(t, m, cmd)

	want := shortcut.List{scA, {Name: "Go", URL: "https://go.dev", Icon: "🐹"}}
	assert.Equal(t, want, store.List())
	assert.Equal(t, want, m.list)
	assert.Empty(t, m.status)
}

func TestModel_AddFormValidation(t *testing.T) {
	m, store, _ := newModel(t, shortcut.List{scA})

	m, _ = send(t, m, runes("a"))
	m, _ = send(t, m, keyOf(tea.KeyTab))
	m, _ = send(t, m, runes("example.com"))

	m, cmd := send(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, modeAdd, m.mode, "the form stays open")
	assert.Equal(t, "name is required", m.form.err)
	assert.Contains(t, m.View(), "name is required")
	assert.Equal(t, shortcut.List{scA}, store.List())

	m, _ = send(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, modeList, m.mode)

	// Reopening starts clean.
	m, _ = send(t, m, runes("a"))
	name, url, icon := m.form.values()
	assert.Empty(t, name+url+icon)
	assert.Empty(t, m.form.err)
}

func TestModel_AddFormTyping(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{})

	// List bindings are plain text inside the form.
	m, _ = send(t, m, runes("a"))
	m, _ = send(t, m, runes("jkdxq/"))
	name, _, _ := m.form.values()
	assert.Equal(t, "jkdxq/", name)
	assert.Equal(t, modeAdd, m.mode)

	m, _ = send(t, m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, fieldIcon, m.form.focus, "shift+tab wraps")
}

func TestModel_Remove(t *testing.T) {
	m, store, _ := newModel(t, shortcut.List{scA, scB, scC})

	m, _ = send(t, m, runes("j"))
	m, cmd := send(t, m, runes("d"))
	m = settle(t, m, cmd)

	assert.Equal(t, shortcut.List{scA, scC}, store.List())
	assert.Equal(t, shortcut.List{scA, scC}, m.list)

	m, _ = send(t, m, runes("j"))
	m, cmd = send(t, m, runes("x"))
	m = settle(t, m, cmd)
	assert.Equal(t, shortcut.List{scA}, m.list)
	assert.Equal(t, 0, m.cursor, "cursor follows the shorter list")
}

type failingStorage struct {
	*memory.BackendMemory
	err error
}

func (f *failingStorage) Set(ctx context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	return f.BackendMemory.Set(ctx, key, value)
}

func TestModel_StorageErrorInStatus(t *testing.T) {
	ctx := context.Background()
	fs := &failingStorage{BackendMemory: memory.NewBackendMemory()}
	store := shortcut.NewStore(fs)
	require.NoError(t, store.Save(ctx, shortcut.List{scA}))
	m := New(ctx, store)

	fs.err = errors.New("quota exceeded")
	m, cmd := send(t, m, runes("d"))
	m = settle(t, m, cmd)

	assert.Contains(t, m.status, "quota exceeded")
	assert.Contains(t, m.View(), "quota exceeded")
	assert.Equal(t, shortcut.List{scA}, m.list, "list unchanged")

	fs.err = nil
	m, cmd = send(t, m, runes("d"))
	m = settle(t, m, cmd)
	assert.Empty(t, m.status, "a later success clears the status")
	assert.Empty(t, m.list)
}

func TestModel_Search(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{scA})

	m, _ = send(t, m, runes("/"))
	require.Equal(t, modeSearch, m.mode)
	m, _ = send(t, m, runes("go generics"))

	m, cmd := send(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, search.DefaultEngine+"go%20generics", m.Selected())
}

func TestModel_SearchEngineAndCancel(t *testing.T) {
	ctx := context.Background()
	store := shortcut.NewStore(memory.NewBackendMemory())
	m := New(ctx, store, WithEngine("https://duckduckgo.com/?q="))

	m, _ = send(t, m, runes("/"))
	m, _ = send(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, modeList, m.mode)

	m, _ = send(t, m, runes("/"))
	m, cmd := send(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd, "blank search does nothing")
	assert.Equal(t, modeList, m.mode)

	m, _ = send(t, m, runes("/"))
	m, _ = send(t, m, runes("tabs"))
	m, _ = send(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, "https://duckduckgo.com/?q=tabs", m.Selected())
}

func TestModel_WatchReloads(t *testing.T) {
	ctx := context.Background()
	m, _, be := newModel(t, shortcut.List{scA})

	// Another process rewrote the value.
	require.NoError(t, be.Set(ctx, shortcut.DefaultKey, `[{"name":"C","url":"http://c.example"}]`))

	m.Notify()
	m.Notify()
	select {
	case <-m.watched:
	default:
		t.Fatal("Notify did not signal")
	}

	m, cmd := send(t, m, watchMsg{})
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.NotEmpty(t, batch)

	m = settle(t, m, batch[0])
	assert.Equal(t, shortcut.List{scC}, m.list)
}

func TestModel_ClockAndView(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{scA, scB})

	view := m.View()
	assert.Contains(t, view, "03:04:05")
	assert.Contains(t, view, shortcut.DefaultIcon+" A")
	assert.Contains(t, view, "b.example")

	m, cmd := send(t, m, tickMsg(fixed.Add(time.Minute)))
	assert.NotNil(t, cmd, "the clock keeps ticking")
	assert.Contains(t, m.View(), "03:05:05")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newModel(t, shortcut.List{scA})

	_, cmd := send(t, m, runes("q"))
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m, _ = send(t, m, runes("a"))
	_, cmd = send(t, m, keyOf(tea.KeyCtrlC))
	assert.Equal(t, tea.QuitMsg{}, cmd(), "ctrl+c quits from the form too")
}

func TestListen_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, listen(ctx, make(chan struct{}), watchMsg{})())
}
