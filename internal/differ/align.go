// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Align tags every line of a and b with an alignment operation, in document
// order. The checks at each position run in a fixed priority:
//  1. identical lines are Equal;
//  2. lines with the same key are an Update;
//  3. lines at or above the similarity threshold are an Update;
//  4. when the LCS table favors the diagonal, the pair is an Update unless
//     b[j+1] is a closer match for a[i], in which case b[j] is an Insert;
//  5. otherwise the LCS table picks Delete (preferred on ties) or Insert.
//
// Whatever is left on either side once the other runs out is flushed as
// Delete, then Insert.
func (d *Differ) Align(a, b []string) []Operation {
	m, n := len(a), len(b)
	dp := lcsTable(a, b)

	ops := make([]Operation, 0, max(m, n))
	emit := func(k Kind, i, j int) {
		ops = append(ops, Operation{Kind: k, A: i, B: j})
	}

	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			emit(Equal, i, j)
			i++
			j++

		case sameKey(a[i], b[j]), Similarity(a[i], b[j]) >= d.threshold:
			emit(Update, i, j)
			i++
			j++

		case dp[i+1][j+1] >= dp[i+1][j] && dp[i+1][j+1] >= dp[i][j+1]:
			// Defer a[i] if the next new line is a better partner.
			if j+1 < n && Similarity(a[i], b[j+1]) > Similarity(a[i], b[j]) {
				emit(Insert, -1, j)
				j++
				continue
			}
			emit(Update, i, j)
			i++
			j++

		case dp[i+1][j] >= dp[i][j+1]:
			emit(Delete, i, -1)
			i++

		default:
			emit(Insert, -1, j)
			j++
		}
	}

	for ; i < m; i++ {
		emit(Delete, i, -1)
	}
	for ; j < n; j++ {
		emit(Insert, -1, j)
	}

	return ops
}
