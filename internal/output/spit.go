// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/staranto/tabctl/internal/attrs"
	"github.com/staranto/tabctl/internal/config"
	"github.com/staranto/tabctl/internal/filters"
	"github.com/staranto/tabctl/internal/shortcut"
)

// Options carries the presentation flags of a command.
type Options struct {
	Output string
	Filter string
	Sort   string
	Color  bool
	Titles bool
}

// OptionsFromCommand reads Options from the common flags of cmd.
func OptionsFromCommand(cmd *cli.Command) Options {
	return Options{
		Output: cmd.String("output"),
		Filter: cmd.String("filter"),
		Sort:   cmd.String("sort"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}
}

// row is the shape each shortcut takes in a dataset. Icon is always filled
// with the displayed glyph and host is the url without its scheme.
type row struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Host  string `json:"host"`
}

// Dataset returns list as a JSON array of rows, each carrying its index.
func Dataset(list shortcut.List) []byte {
	rows := make([]row, 0, len(list))
	for i, s := range list {
		rows = append(rows, row{
			Index: i,
			Name:  s.Name,
			URL:   s.URL,
			Icon:  s.Glyph(),
			Host:  s.Host(),
		})
	}

	b, err := json.Marshal(rows)
	if err != nil {
		log.WithError(err).Error("failed to marshal dataset")
		return []byte("[]")
	}
	return b
}

// SliceDiceSpit filters, transforms, sorts and renders dataset (a JSON array)
// to w according to opts.
func SliceDiceSpit(dataset []byte, attrList attrs.AttrList, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	if opts.Output == "raw" {
		_, err := fmt.Fprintln(w, string(dataset))
		return err
	}

	attrList.SetGlobalTransformSpec()

	rows := filters.FilterDataset(gjson.ParseBytes(dataset), attrList, opts.Filter)

	for _, r := range rows {
		for i := range attrList {
			attr := attrList[i]
			if attr.TransformSpec != "" {
				r[attr.OutputKey] = attr.Transform(r[attr.OutputKey])
			}
		}
	}

	SortDataset(rows, opts.Sort)

	switch opts.Output {
	case "json":
		projected := make([]map[string]any, 0, len(rows))
		for _, r := range rows {
			m := make(map[string]any)
			for _, attr := range attrList {
				if attr.Include {
					m[attr.OutputKey] = r[attr.OutputKey]
				}
			}
			projected = append(projected, m)
		}
		b, err := json.MarshalIndent(projected, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		// MapSlice keeps the --attrs column order.
		projected := make([]yaml.MapSlice, 0, len(rows))
		for _, r := range rows {
			var m yaml.MapSlice
			for _, attr := range attrList {
				if attr.Include {
					m = append(m, yaml.MapItem{Key: attr.OutputKey, Value: r[attr.OutputKey]})
				}
			}
			projected = append(projected, m)
		}
		b, err := yaml.Marshal(projected)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return TableWriter(rows, attrList, opts, w)
	}
}

// TableWriter renders rows as a borderless table honouring color, titles and
// padding.
func TableWriter(rows []map[string]any, attrList attrs.AttrList, opts Options, w io.Writer) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := make([]string, 0, len(attrList))
		for _, attr := range attrList {
			if attr.Include {
				line = append(line, InterfaceToString(r[attr.OutputKey], "-"))
			}
		}
		cells = append(cells, line)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}
			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		var headers []string
		for _, attr := range attrList {
			if attr.Include {
				headers = append(headers, attr.OutputKey)
			}
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts a row value to its display string. nil and ""
// become emptyValue (default ""); 0 and false are real values and print.
func InterfaceToString(value any, emptyValue ...string) string {
	empty := ""
	if len(emptyValue) > 0 {
		empty = emptyValue[0]
	}

	switch value := value.(type) {
	case nil:
		return empty
	case string:
		if value == "" {
			return empty
		}
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Every number in a row is an index, so drop the fraction.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(b)
	}
}
