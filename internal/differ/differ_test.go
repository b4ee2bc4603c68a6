// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single", text: "a", want: []string{"a"}},
		{name: "crlf and lf", text: "a\r\nb\nc", want: []string{"a", "b", "c"}},
		{name: "trailing newline", text: "a\n", want: []string{"a", ""}},
		{name: "only newline", text: "\n", want: []string{"", ""}},
		{name: "lone carriage return kept", text: "a\rb", want: []string{"a\rb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "update", Update.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())

	b, err := json.Marshal(map[string]Kind{"type": Update})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"update"}`, string(b))

	_, err = Kind(-1).MarshalText()
	assert.Error(t, err)
}

func TestSegmentOpString(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "delete", WordDelete.String())
	assert.Equal(t, "insert", WordInsert.String())
}

func TestSummarize(t *testing.T) {
	rows := Diff("a\nb: 1\nc\nd", "a\nb: 2\nd\ne")

	s := Summarize(rows)
	assert.Equal(t, len(rows), s.Rows())
	assert.Equal(t, s.Rows()-s.Equal, s.Changes())
	assert.Equal(t, 2, s.Equal)
	assert.Positive(t, s.Update)

	assert.Zero(t, Summarize(Diff("x", "x")).Changes())
}
