// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/tfctl/sbsdiff/internal/differ"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

// Formats lists the formats accepted by Spit.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatHTML}

// Default column titles.
const (
	DefaultLeftTitle  = "LeftSide"
	DefaultRightTitle = "RightSide"
)

// Options controls rendering.
type Options struct {
	Format     string
	Color      bool
	Numbers    bool
	Titles     bool
	LeftTitle  string
	RightTitle string
	// Width caps the text table width. Zero leaves it unbounded.
	Width   int
	Summary bool
}

// Spit renders rows to w in the format named by opts.Format. If w is nil,
// os.Stdout is used.
func Spit(w io.Writer, rows []differ.Row, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	if opts.LeftTitle == "" {
		opts.LeftTitle = DefaultLeftTitle
	}
	if opts.RightTitle == "" {
		opts.RightTitle = DefaultRightTitle
	}

	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, toRecords(rows))
	case FormatYAML:
		return writeYAML(w, toRecords(rows))
	case FormatHTML:
		return writeHTML(w, rows, opts)
	case FormatText, "":
		return writeText(w, rows, opts)
	default:
		return fmt.Errorf("unknown output format %q, want one of %v", opts.Format, Formats)
	}
}

// IsFormat reports whether f names a known output format.
func IsFormat(f string) bool {
	return slices.Contains(Formats, f)
}
