// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/staranto/tabctl/internal/attrs"
)

const dataset = `[
	{"index":0,"name":"CourseWeb","url":"https://courseweb.sliit.lk","host":"courseweb.sliit.lk"},
	{"index":1,"name":"ChatGPT","url":"https://chat.openai.com","host":"chat.openai.com","tags":["ai","chat"]},
	{"index":2,"name":"DeepSeek","url":"https://www.deepseek.com","host":"www.deepseek.com","tags":["ai"]},
	{"index":3,"name":"MGX AI","url":"http://mgx.ai","host":"mgx.ai","icon":"🤖"}
]`

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		delim string
		want  []Filter
	}{
		{name: "empty spec", spec: ""},
		{
			name: "exact",
			spec: "name=ChatGPT",
			want: []Filter{{Key: "name", Operand: "=", Target: "ChatGPT"}},
		},
		{
			name: "negated prefix",
			spec: "url!^https",
			want: []Filter{{Key: "url", Operand: "^", Target: "https", Negate: true}},
		},
		{
			name: "multiple",
			spec: "name@AI,index>1",
			want: []Filter{
				{Key: "name", Operand: "@", Target: "AI"},
				{Key: "index", Operand: ">", Target: "1"},
			},
		},
		{
			name: "regex target keeps later operators",
			spec: "url/^https?://.*=",
			want: []Filter{{Key: "url", Operand: "/", Target: "^https?://.*="}},
		},
		{
			name: "invalid skipped",
			spec: "name=A,garbage,=nokey,host~MGX.AI",
			want: []Filter{
				{Key: "name", Operand: "=", Target: "A"},
				{Key: "host", Operand: "~", Target: "MGX.AI"},
			},
		},
		{
			name:  "custom delimiter",
			spec:  "url@a,b|name=X",
			delim: "|",
			want: []Filter{
				{Key: "url", Operand: "@", Target: "a,b"},
				{Key: "name", Operand: "=", Target: "X"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delim != "" {
				t.Setenv("TABCTL_FILTER_DELIM", tt.delim)
			}
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		value  string
		want   bool
	}{
		{"string equal", Filter{Operand: "=", Target: "ChatGPT"}, `"ChatGPT"`, true},
		{"string not equal", Filter{Operand: "=", Target: "ChatGPT", Negate: true}, `"ChatGPT"`, false},
		{"fold", Filter{Operand: "~", Target: "chatgpt"}, `"ChatGPT"`, true},
		{"prefix", Filter{Operand: "^", Target: "http://"}, `"http://mgx.ai"`, true},
		{"contains", Filter{Operand: "@", Target: "Seek"}, `"DeepSeek"`, true},
		{"contains is case-sensitive", Filter{Operand: "@", Target: "seek"}, `"DeepSeek"`, false},
		{"regex", Filter{Operand: "/", Target: `\.ai$`}, `"mgx.ai"`, true},
		{"bad regex", Filter{Operand: "/", Target: `(`}, `"mgx.ai"`, false},
		{"string less", Filter{Operand: "<", Target: "D"}, `"ChatGPT"`, true},
		{"number equal", Filter{Operand: "=", Target: "2"}, `2`, true},
		{"number greater", Filter{Operand: ">", Target: "10"}, `9`, false},
		{"number not less", Filter{Operand: "<", Target: "1", Negate: true}, `3`, true},
		{"number bad target", Filter{Operand: "=", Target: "x"}, `3`, false},
		{"number contains as string", Filter{Operand: "@", Target: "1"}, `12`, true},
		{"array member", Filter{Operand: "@", Target: "ai"}, `["ai","chat"]`, true},
		{"array not member", Filter{Operand: "@", Target: "news", Negate: true}, `["ai"]`, true},
		{"bool", Filter{Operand: "=", Target: "true"}, `true`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(gjson.Parse(tt.value)))
		})
	}
}

func TestFilterDataset(t *testing.T) {
	cols := attrs.Defaults()
	_ = cols.Set("!host,url:link")

	tests := []struct {
		name      string
		spec      string
		wantNames []string
	}{
		{"no filter", "", []string{"CourseWeb", "ChatGPT", "DeepSeek", "MGX AI"}},
		{"by output key", "link^http://", []string{"MGX AI"}},
		{"by hidden key", "host@openai", []string{"ChatGPT"}},
		{"by index", "index>0,index<3", []string{"ChatGPT", "DeepSeek"}},
		{"negated", "name!@e", []string{"ChatGPT", "MGX AI"}},
		{"array field", "tags@ai", []string{"ChatGPT", "DeepSeek"}},
		{"missing field fails row", "nope=x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := FilterDataset(gjson.Parse(dataset), cols, tt.spec)

			var names []string
			for _, row := range rows {
				names = append(names, row["name"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterDataset_Projection(t *testing.T) {
	cols := attrs.Defaults()
	_ = cols.Set("url:link")

	rows := FilterDataset(gjson.Parse(dataset), cols, "name=MGX AI")
	assert.Len(t, rows, 1)
	assert.Equal(t, map[string]any{
		"index": float64(3),
		"icon":  "🤖",
		"name":  "MGX AI",
		"link":  "http://mgx.ai",
	}, rows[0])

	rows = FilterDataset(gjson.Parse(dataset), cols, "index=0")
	assert.Nil(t, rows[0]["icon"])
}
