// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "both empty", a: "", b: "", want: 1},
		{name: "both blank", a: "   ", b: "\t", want: 1},
		{name: "left only", a: "x", b: "", want: 0},
		{name: "right only", a: "", b: "x", want: 0},
		{name: "identical", a: "a b c", b: "a b c", want: 1},
		{name: "spacing ignored", a: "  a   b ", b: "a b", want: 1},
		{name: "half shared", a: "hostname R1-OLD", b: "hostname R1-NEW", want: 0.5},
		{name: "longer side divides", a: "a b c d", b: "a x", want: 0.25},
		{name: "order matters", a: "a b c", b: "c b a", want: 1.0 / 3},
		{name: "nothing shared", a: "foo bar", b: "completely different", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Similarity(tt.b, tt.a), 1e-9, "similarity should be symmetric")
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	lines := []string{
		"",
		" ",
		"x",
		"interface GigabitEthernet0/1",
		" description WAN Interface (Updated)",
		" description WAN Interface",
		"a a a a",
		"a",
	}

	for _, a := range lines {
		for _, b := range lines {
			s := Similarity(a, b)
			assert.GreaterOrEqual(t, s, 0.0, "Similarity(%q, %q)", a, b)
			assert.LessOrEqual(t, s, 1.0, "Similarity(%q, %q)", a, b)
		}
	}
}

func TestLineKey(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "Hostname: R1", want: "hostname"},
		{line: "  MTU = 1500", want: "mtu"},
		{line: "a=b:c", want: "a"},
		{line: "a:b=c", want: "a"},
		{line: ": value", want: ""},
		{line: "", want: ""},
		{line: "No Delimiter Here ", want: "no delimiter here"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, lineKey(tt.line))
		})
	}
}

func TestSameKey(t *testing.T) {
	assert.True(t, sameKey("a=1", "A: 2"))
	assert.True(t, sameKey(" timeout: 30", "TIMEOUT=60"))
	assert.False(t, sameKey("a=1", "b=1"))
	assert.False(t, sameKey(": 1", ": 2"), "empty keys never match")
	assert.False(t, sameKey("", ""), "empty keys never match")
}

// myersCommon counts the lines a minimal Myers edit script keeps.
func myersCommon(a, b []string) int {
	dmp := diffmatchpatch.New()
	// A zero timeout disables the half-match shortcut, which can give up
	// minimality.
	dmp.DiffTimeout = 0

	join := func(lines []string) string {
		if len(lines) == 0 {
			return ""
		}
		return strings.Join(lines, "\n") + "\n"
	}

	r1, r2, _ := dmp.DiffLinesToRunes(join(a), join(b))
	common := 0
	for _, d := range dmp.DiffMainRunes(r1, r2, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			common += len([]rune(d.Text))
		}
	}
	return common
}

func TestLCSTableMatchesMyers(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
	}{
		{name: "empty", a: nil, b: nil},
		{name: "one side empty", a: []string{"a", "b"}, b: nil},
		{name: "identical", a: []string{"a", "b", "c"}, b: []string{"a", "b", "c"}},
		{name: "insert", a: []string{"a", "b"}, b: []string{"a", "x", "b"}},
		{name: "reordered", a: []string{"a", "b", "c", "d"}, b: []string{"d", "c", "b", "a"}},
		{name: "blank lines", a: []string{"", "a", "", "b"}, b: []string{"a", "", "", "b", ""}},
		{name: "router", a: strings.Split(routerOld, "\n"), b: strings.Split(routerNew, "\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, myersCommon(tt.a, tt.b), lcsTable(tt.a, tt.b)[0][0])
		})
	}
}
