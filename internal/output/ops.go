// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/sbsdiff/internal/differ"
)

// opRecord is the machine-readable shape of an Operation. A and B are null
// when the operation does not touch that document.
type opRecord struct {
	Kind differ.Kind `json:"kind" yaml:"kind"`
	A    *int        `json:"a" yaml:"a"`
	B    *int        `json:"b" yaml:"b"`
}

// SpitOps renders the raw aligner operations as a text table or JSON.
func SpitOps(w io.Writer, ops []differ.Operation, format string, titles bool) error {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case FormatJSON:
		records := make([]opRecord, 0, len(ops))
		for _, op := range ops {
			records = append(records, opRecord{Kind: op.Kind, A: index(op.A), B: index(op.B)})
		}
		return writeJSON(w, records)
	case FormatText, "":
	default:
		return fmt.Errorf("unknown ops format %q, want text or json", format)
	}

	cells := make([][]string, 0, len(ops))
	for _, op := range ops {
		cells = append(cells, []string{op.Kind.String(), indexString(op.A), indexString(op.B)})
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = style.Bold(true)
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		}).
		Rows(cells...)

	if titles {
		t = t.Headers("kind", "a", "b").BorderHeader(false)
	}

	if len(ops) == 0 && !titles {
		return nil
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

func index(i int) *int {
	if i < 0 {
		return nil
	}
	return &i
}

func indexString(i int) string {
	if i < 0 {
		return "-"
	}
	return strconv.Itoa(i)
}
