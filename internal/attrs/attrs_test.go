// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testSetCase represents a single test case for TestAttrList_Set.
type testSetCase struct {
	Name      string `yaml:"name"`
	Initial   []Attr `yaml:"initial"`
	Value     string `yaml:"value"`
	WantLen   int    `yaml:"wantLen"`
	WantAttrs []Attr `yaml:"wantAttrs"`
	WantErr   bool   `yaml:"wantErr"`
}

type testTransformCase struct {
	Name          string `yaml:"name"`
	TransformSpec string `yaml:"transformSpec"`
	Input         any    `yaml:"input"`
	Want          any    `yaml:"want"`
}

type testStringCase struct {
	Name     string `yaml:"name"`
	AttrList []Attr `yaml:"attrList"`
	Want     string `yaml:"want"`
}

func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestAttrList_Set(t *testing.T) {
	var tests []testSetCase
	require.NoError(t, loadTestData("set_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			err := a.Set(tt.Value)
			if tt.WantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, a, tt.WantLen)
			for i, want := range tt.WantAttrs {
				assert.Equal(t, want, a[i], "attr %d", i)
			}
		})
	}
}

func TestAttr_Transform(t *testing.T) {
	var tests []testTransformCase
	require.NoError(t, loadTestData("transform_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			attr := Attr{TransformSpec: tt.TransformSpec}
			assert.Equal(t, tt.Want, attr.Transform(tt.Input))
		})
	}
}

func TestAttrList_String(t *testing.T) {
	var tests []testStringCase
	require.NoError(t, loadTestData("string_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.AttrList)
			assert.Equal(t, tt.Want, a.String())
		})
	}
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	a := Defaults()
	require.NoError(t, a.Set("*::u,name::l"))
	a.SetGlobalTransformSpec()

	for _, attr := range a {
		if attr.Key == "*" {
			assert.Equal(t, "u", attr.TransformSpec)
			continue
		}
		assert.Contains(t, attr.TransformSpec, "u,")
	}

	name := a[2]
	assert.Equal(t, "name", name.Key)
	assert.Equal(t, "chatgpt", name.Transform("ChatGPT"))

	url := a[3]
	assert.Equal(t, "HTTPS://MGX.AI", url.Transform("https://mgx.ai"))
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	keys := make([]string, 0, len(d))
	for _, attr := range d {
		assert.True(t, attr.Include)
		keys = append(keys, attr.Key)
	}
	assert.Equal(t, []string{"index", "icon", "name", "url"}, keys)
	assert.Equal(t, "list", d.Type())
}
