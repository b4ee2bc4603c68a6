// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "fmt"

// Kind is the classification of an alignment step or a display row.
type Kind int

const (
	Equal Kind = iota
	Insert
	Delete
	Update
)

var kindNames = [...]string{
	Equal:  "equal",
	Insert: "insert",
	Delete: "delete",
	Update: "update",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// Operation is one alignment decision. A indexes the old lines and B the new
// lines; either is -1 when the operation does not consume a line from that
// side.
type Operation struct {
	Kind Kind
	A    int
	B    int
}

// SegmentOp tags a piece of inline word-diff output.
type SegmentOp int

const (
	Literal SegmentOp = iota
	WordDelete
	WordInsert
)

func (o SegmentOp) String() string {
	switch o {
	case Literal:
		return "literal"
	case WordDelete:
		return "delete"
	case WordInsert:
		return "insert"
	}
	return fmt.Sprintf("SegmentOp(%d)", int(o))
}

// Segment is a token (or whitespace run) of an update row. Text is raw; it is
// up to the renderer to escape it for its display surface.
type Segment struct {
	Op   SegmentOp
	Text string
}

// Side is one half of a Row.
//
// LineNo is the 1-based line number within the side's own document, or 0 when
// the row has no line on this side. Text is the raw line. Segments is only set
// on update rows and concatenates back to Text.
type Side struct {
	LineNo   int
	Type     Kind
	Text     string
	Segments []Segment
}

// Present reports whether the side carries a line.
func (s Side) Present() bool {
	return s.LineNo > 0
}

// Row is one display row of a side-by-side diff.
type Row struct {
	Left  Side
	Right Side
}

// Type returns the row's classification. Both sides of a row always share it.
func (r Row) Type() Kind {
	return r.Left.Type
}
