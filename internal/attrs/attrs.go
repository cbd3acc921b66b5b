// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package attrs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Attr is one column of output. Key names a field of a shortcut row (name,
// url, icon, host or index).
type Attr struct {
	// The key to read from each row.
	Key string
	// Should this Attr be included in output or is it just intended for
	// filtering and sorting?
	Include bool
	// The key used in output, and the column title when output=text.
	OutputKey string
	// Transformation spec to apply to the output value.
	TransformSpec string
}

var lengthRe = regexp.MustCompile(`-?\d+`)

// Transform applies the case and length transforms in TransformSpec to a
// string value. Anything else is returned untouched.
func (a *Attr) Transform(value any) any {
	result, ok := value.(string)
	if !ok || a.TransformSpec == "" {
		return value
	}

	// The last case letter wins, so '*::U,name::l' lowercases name.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Likewise the last length wins. N truncates, -N elides the middle.
	match := lengthRe.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}
	l, _ := strconv.Atoi(match[len(match)-1])

	runes := []rune(result)
	abs := l
	if abs < 0 {
		abs = -abs
	}
	if len(runes) <= abs {
		return result
	}

	if l < 0 {
		side := abs/2 - 1
		if side < 1 {
			side = 1
		}
		return string(runes[:side]) + ".." + string(runes[len(runes)-side:])
	}
	return string(runes[:l])
}

type AttrList []Attr

// Defaults returns the columns used when --attrs is not given.
func Defaults() AttrList {
	return AttrList{
		{Key: "index", OutputKey: "index", Include: true},
		{Key: "icon", OutputKey: "icon", Include: true},
		{Key: "name", OutputKey: "name", Include: true},
		{Key: "url", OutputKey: "url", Include: true},
	}
}

// String renders the list in --attrs form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		key := attr.Key
		if !attr.Include && key != "*" {
			key = "!" + key
		}
		result = append(result, fmt.Sprintf("%s:%s:%s", key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Set parses the comma separated key[:output[:transform]] specs of --attrs.
// A spec for a key already in the list updates that entry in place, so the
// defaults can be renamed, hidden or transformed.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		fields := strings.Split(spec, ":")

		attr := Attr{Include: true}
		attr.Key = strings.TrimPrefix(strings.TrimSpace(fields[keyIdx]), ".")
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: missing key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		attr.OutputKey = attr.Key
		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}
		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the transform of a '*' spec to every attr.
// Only the first '*' spec is honoured.
func (a *AttrList) SetGlobalTransformSpec() {
	spec := ""
	for _, attr := range *a {
		if attr.Key == "*" {
			spec = attr.TransformSpec
			break
		}
	}
	if spec == "" {
		return
	}

	for i := range *a {
		if (*a)[i].Key != "*" {
			(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
		}
	}
}

func (a *AttrList) Type() string {
	return "list"
}
