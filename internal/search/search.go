// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package search turns what was typed into the search box into the address
// to navigate to.
package search

import (
	"net/url"
	"strings"

	"github.com/staranto/tabctl/internal/config"
	"github.com/staranto/tabctl/internal/shortcut"
)

// DefaultEngine is the query prefix used when search.engine is not set.
const DefaultEngine = "https://www.google.com/search?q="

// Engine returns search.engine from the config, or DefaultEngine.
func Engine() string {
	engine, err := config.GetString("search.engine", DefaultEngine)
	if err != nil || strings.TrimSpace(engine) == "" {
		return DefaultEngine
	}
	return engine
}

// Resolve returns the URL for query. Something that already looks like an
// address (an http(s) scheme, or one token with a dot in it) is normalised
// and returned; anything else is appended, escaped, to engine. A blank query
// resolves to nothing.
func Resolve(query, engine string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}

	if shortcut.HasScheme(query) || (!strings.ContainsAny(query, " \t") && strings.Contains(query, ".")) {
		return shortcut.NormalizeURL(query), true
	}

	if engine == "" {
		engine = DefaultEngine
	}
	// Spaces go out as %20 rather than +, which not every engine decodes.
	return engine + strings.ReplaceAll(url.QueryEscape(query), "+", "%20"), true
}
