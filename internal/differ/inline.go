// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "unicode"

// InlineDiff computes a token-level diff between an old and a new line.
// Tokens are words and whitespace runs, so concatenating either side's
// segment text reproduces the original line. Tokens only in oldLine are
// WordDelete segments on the left; tokens only in newLine are WordInsert
// segments on the right. On equal LCS counts a deletion is taken first.
func InlineDiff(oldLine, newLine string) (left, right []Segment) {
	a, b := splitTokens(oldLine), splitTokens(newLine)
	m, n := len(a), len(b)
	dp := lcsTable(a, b)

	left = make([]Segment, 0, m)
	right = make([]Segment, 0, n)

	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			left = append(left, Segment{Op: Literal, Text: a[i]})
			right = append(right, Segment{Op: Literal, Text: b[j]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			left = append(left, Segment{Op: WordDelete, Text: a[i]})
			i++
		default:
			right = append(right, Segment{Op: WordInsert, Text: b[j]})
			j++
		}
	}
	for ; i < m; i++ {
		left = append(left, Segment{Op: WordDelete, Text: a[i]})
	}
	for ; j < n; j++ {
		right = append(right, Segment{Op: WordInsert, Text: b[j]})
	}

	return left, right
}

// splitTokens breaks s into alternating runs of whitespace and
// non-whitespace. Empty input has no tokens.
func splitTokens(s string) []string {
	var tokens []string

	start := 0
	space := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i > 0 && isSpace != space {
			tokens = append(tokens, s[start:i])
			start = i
		}
		space = isSpace
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}

	return tokens
}
