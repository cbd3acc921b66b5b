// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/tabctl/internal/attrs"
)

// filterRegex splits key + operator + target. Operators are one of
// = ^ ~ < > @ or /, optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// Delimiter separates filter expressions. TABCTL_FILTER_DELIM overrides the
// default comma for targets that contain one.
func Delimiter() string {
	if d, ok := os.LookupEnv("TABCTL_FILTER_DELIM"); ok && d != "" {
		return d
	}
	return ","
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed expressions are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	for _, filterSpec := range strings.Split(spec, Delimiter()) {
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil || strings.TrimSpace(parts[1]) == "" {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")
		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  negate,
			Operand: strings.TrimPrefix(operand, "!"),
			Target:  parts[3],
		})
	}

	return filters
}

// FilterDataset returns the rows of candidates (a JSON array) that pass every
// filter in spec, projected onto attrs. Transforms are left to the caller.
func FilterDataset(candidates gjson.Result, attrList attrs.AttrList, spec string) []map[string]any {
	filters := BuildFilters(spec)

	//nolint:prealloc
	var results []map[string]any
	for _, candidate := range candidates.Array() {
		if !applyFilters(candidate, attrList, filters) {
			continue
		}

		row := make(map[string]any, len(attrList))
		for _, attr := range attrList {
			if attr.Key == "*" {
				continue
			}
			row[attr.OutputKey] = candidate.Get(attr.Key).Value()
		}
		results = append(results, row)
	}

	return results
}

// resolveKey maps a filter key, which may be an output name from --attrs, to
// the row field it reads.
func resolveKey(key string, attrList attrs.AttrList) string {
	for _, attr := range attrList {
		if attr.OutputKey == key {
			return attr.Key
		}
	}
	return key
}

// applyFilters reports whether candidate matches all filters.
func applyFilters(candidate gjson.Result, attrList attrs.AttrList, filters []Filter) bool {
	for _, filter := range filters {
		value := candidate.Get(resolveKey(filter.Key, attrList))
		if !value.Exists() {
			log.Debugf("filter key not found: %s", filter.Key)
			return false
		}
		if !filter.Match(value) {
			return false
		}
	}
	return true
}

// Match evaluates the filter against a single value. Numbers compare
// numerically for = < and >, arrays support @ membership, everything else
// compares as a string.
func (f Filter) Match(value gjson.Result) bool {
	switch {
	case value.Type == gjson.Number && strings.ContainsAny(f.Operand, "=<>"):
		return f.matchNumber(value.Num)
	case value.IsArray() && f.Operand == "@":
		found := false
		for _, item := range value.Array() {
			if item.String() == f.Target {
				found = true
				break
			}
		}
		return found != f.Negate
	default:
		return f.matchString(value.String())
	}
}

func (f Filter) matchNumber(value float64) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(f.Target), 64)
	if err != nil {
		log.Error("invalid numeric target: " + f.Target)
		return false
	}

	var result bool
	switch f.Operand {
	case "=":
		result = value == tgt
	case ">":
		result = value > tgt
	case "<":
		result = value < tgt
	}
	return result != f.Negate
}

func (f Filter) matchString(value string) bool {
	var result bool
	switch f.Operand {
	case "=":
		result = value == f.Target
	case "~":
		result = strings.EqualFold(value, f.Target)
	case "^":
		result = strings.HasPrefix(value, f.Target)
	case ">":
		result = value > f.Target
	case "<":
		result = value < f.Target
	case "@":
		result = strings.Contains(value, f.Target)
	case "/":
		matched, err := regexp.MatchString(f.Target, value)
		if err != nil {
			log.Error("invalid regex: " + f.Target)
			return false
		}
		result = matched
	default:
		log.Error("unsupported filtering operand: " + f.Operand)
		return false
	}
	return result != f.Negate
}
