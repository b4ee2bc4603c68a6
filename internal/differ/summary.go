// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Stats counts rows by type.
type Stats struct {
	Equal  int
	Insert int
	Delete int
	Update int
}

// Summarize counts the rows of each type.
func Summarize(rows []Row) Stats {
	var s Stats
	for _, r := range rows {
		switch r.Type() {
		case Equal:
			s.Equal++
		case Insert:
			s.Insert++
		case Delete:
			s.Delete++
		case Update:
			s.Update++
		}
	}
	return s
}

// Rows is the total number of rows counted.
func (s Stats) Rows() int {
	return s.Equal + s.Insert + s.Delete + s.Update
}

// Changes is the number of rows that are not Equal.
func (s Stats) Changes() int {
	return s.Insert + s.Delete + s.Update
}
