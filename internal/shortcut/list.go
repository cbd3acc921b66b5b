// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shortcut

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// List is the ordered shortcut list. The index is the only identity.
type List []Shortcut

// Clone returns a copy that shares nothing with l. A nil list clones to an
// empty one so it encodes as [].
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Equal reports whether both lists hold the same shortcuts in the same order.
func (l List) Equal(other List) bool {
	return slices.Equal(l, other)
}

// Encode serialises the list to the stored JSON form. HTML characters are
// left alone so urls with & stay readable in the raw value.
func (l List) Encode() (string, error) {
	if l == nil {
		l = List{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l); err != nil {
		return "", fmt.Errorf("failed to encode shortcuts: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a stored value. The value must be a JSON array, otherwise a
// *ParseError is returned. Object entries are kept as they are, taking only
// their string name, url and icon fields; entries that are not objects cannot
// be represented and are dropped.
func Decode(raw string) (List, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Reason: "empty value"}
	}
	if !gjson.Valid(raw) {
		return nil, &ParseError{Reason: "invalid json"}
	}

	doc := gjson.Parse(raw)
	if !doc.IsArray() {
		return nil, &ParseError{Reason: "not an array"}
	}

	list := List{}
	idx := 0
	doc.ForEach(func(_, entry gjson.Result) bool {
		defer func() { idx++ }()

		if !entry.IsObject() {
			log.Warnf("dropping shortcut entry %d: not an object", idx)
			return true
		}

		list = append(list, Shortcut{
			Name: stringField(entry, "name"),
			URL:  stringField(entry, "url"),
			Icon: stringField(entry, "icon"),
		})
		return true
	})

	return list, nil
}

func stringField(entry gjson.Result, key string) string {
	v := entry.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}
