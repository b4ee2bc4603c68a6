// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/sbsdiff/internal/differ"
)

// record is the machine-readable shape of a row.
type record struct {
	Left  sideRecord `json:"left" yaml:"left"`
	Right sideRecord `json:"right" yaml:"right"`
}

// sideRecord leaves LineNo and Text nil for an absent counterpart so they
// encode as null.
type sideRecord struct {
	LineNo   *int            `json:"lineNo" yaml:"lineNo"`
	Text     *string         `json:"text" yaml:"text"`
	Type     string          `json:"type" yaml:"type"`
	Segments []segmentRecord `json:"segments,omitempty" yaml:"segments,omitempty"`
}

type segmentRecord struct {
	Op   string `json:"op" yaml:"op"`
	Text string `json:"text" yaml:"text"`
}

func toRecords(rows []differ.Row) []record {
	records := make([]record, 0, len(rows))
	for _, row := range rows {
		records = append(records, record{
			Left:  toSideRecord(row.Left),
			Right: toSideRecord(row.Right),
		})
	}
	return records
}

func toSideRecord(s differ.Side) sideRecord {
	rec := sideRecord{Type: s.Type.String()}
	if !s.Present() {
		return rec
	}

	lineNo, text := s.LineNo, s.Text
	rec.LineNo = &lineNo
	rec.Text = &text

	for _, seg := range s.Segments {
		rec.Segments = append(rec.Segments, segmentRecord{Op: seg.Op.String(), Text: seg.Text})
	}
	return rec
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}
