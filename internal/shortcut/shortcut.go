// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shortcut

import (
	"regexp"
	"strings"
)

// DefaultIcon is displayed for shortcuts that were saved without an icon.
const DefaultIcon = "🔗"

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// Shortcut is a single tile on the start page.
type Shortcut struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// New builds a Shortcut from user input. Name, url and icon are trimmed, a
// blank name or url is rejected and the url gets https:// when it carries no
// http(s) scheme.
func New(name, rawURL, icon string) (Shortcut, error) {
	name = strings.TrimSpace(name)
	rawURL = strings.TrimSpace(rawURL)

	if name == "" {
		return Shortcut{}, &ValidationError{Field: "name"}
	}
	if rawURL == "" {
		return Shortcut{}, &ValidationError{Field: "url"}
	}

	return Shortcut{
		Name: name,
		URL:  NormalizeURL(rawURL),
		Icon: strings.TrimSpace(icon),
	}, nil
}

// HasScheme reports whether u starts with http:// or https://, ignoring case.
func HasScheme(u string) bool {
	return schemeRe.MatchString(u)
}

// NormalizeURL trims u and prefixes https:// unless it already has an http(s)
// scheme. An empty input stays empty.
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || HasScheme(u) {
		return u
	}
	return "https://" + u
}

// Glyph returns the icon, or DefaultIcon when none was saved.
func (s Shortcut) Glyph() string {
	if s.Icon == "" {
		return DefaultIcon
	}
	return s.Icon
}

// Host is the URL as shown under a tile title: the scheme is dropped.
func (s Shortcut) Host() string {
	return schemeRe.ReplaceAllString(s.URL, "")
}
