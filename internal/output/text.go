// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/sbsdiff/internal/differ"
)

const tabWidth = 4

// Plain-text word markers used when color is off.
const (
	delOpen  = "[-"
	delClose = "-]"
	insOpen  = "{+"
	insClose = "+}"
)

// writeText renders rows as a borderless side-by-side table.
func writeText(w io.Writer, rows []differ.Row, opts Options) error {
	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		numberStyle = cellStyle.Align(lipgloss.Right)
		rowStyles   = map[differ.Kind]lipgloss.Style{}
		palette     textPalette
	)

	if opts.Color {
		palette = getTextColors("colors.text")
		headerStyle = headerStyle.Foreground(palette.title)
		for kind, c := range palette.rows {
			rowStyles[kind] = lipgloss.NewStyle().Foreground(c)
		}
	}

	kinds := make([]differ.Kind, 0, len(rows))
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		kinds = append(kinds, row.Type())
		left := renderSide(row.Left, opts.Color, palette)
		right := renderSide(row.Right, opts.Color, palette)
		if opts.Numbers {
			cells = append(cells, []string{lineNo(row.Left), left, lineNo(row.Right), right})
		} else {
			cells = append(cells, []string{left, right})
		}
	}

	isNumberCol := func(col int) bool {
		return opts.Numbers && col%2 == 0
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		// No cell padding: lipgloss pads with U+00A0, and the border space is
		// the only column gap.
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case isNumberCol(col):
				style = numberStyle
			default:
				style = cellStyle
			}

			if row >= 0 && row < len(kinds) {
				if rs, ok := rowStyles[kinds[row]]; ok {
					style = style.Inherit(rs)
				}
			}
			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}

	if opts.Titles {
		headers := []string{opts.LeftTitle, opts.RightTitle}
		if opts.Numbers {
			headers = []string{"#", opts.LeftTitle, "#", opts.RightTitle}
		}
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	if len(rows) > 0 || opts.Titles {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}

	if opts.Summary {
		if _, err := fmt.Fprintln(w, headerStyle.Render(Footer(rows))); err != nil {
			return err
		}
	}
	return nil
}

// renderSide returns the cell text for one side of a row. Absent sides render
// empty.
func renderSide(s differ.Side, color bool, palette textPalette) string {
	if !s.Present() {
		return ""
	}
	if s.Segments == nil {
		return expandTabs(s.Text)
	}

	var sb strings.Builder
	for _, seg := range s.Segments {
		text := expandTabs(seg.Text)
		switch {
		case seg.Op == differ.Literal:
			sb.WriteString(text)
		case color:
			sb.WriteString(palette.words[seg.Op].Render(text))
		case seg.Op == differ.WordDelete:
			sb.WriteString(delOpen + text + delClose)
		default:
			sb.WriteString(insOpen + text + insClose)
		}
	}
	return sb.String()
}

func lineNo(s differ.Side) string {
	if !s.Present() {
		return ""
	}
	return strconv.Itoa(s.LineNo)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
