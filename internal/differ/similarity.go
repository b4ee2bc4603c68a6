// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "strings"

// Similarity scores how alike two lines are on a whitespace-token basis: the
// length of the longest common token subsequence divided by the longer token
// count. Two blank lines score 1 and a blank line against a non-blank one
// scores 0.
func Similarity(a, b string) float64 {
	wa, wb := strings.Fields(a), strings.Fields(b)

	switch {
	case len(wa) == 0 && len(wb) == 0:
		return 1
	case len(wa) == 0 || len(wb) == 0:
		return 0
	}

	dp := lcsTable(wa, wb)
	return float64(dp[0][0]) / float64(max(len(wa), len(wb)))
}

// lcsTable builds the backward LCS table for a and b. dp[i][j] is the LCS
// length of a[i:] and b[j:]; the last row and column are zero.
func lcsTable(a, b []string) [][]int {
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}

	return dp
}
