// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/sbsdiff/internal/differ"
)

// Footer returns the one-line summary of rows, e.g.
// "1,204 rows: 1,180 equal, 20 updated, 3 deleted, 1 inserted".
func Footer(rows []differ.Row) string {
	s := differ.Summarize(rows)
	return fmt.Sprintf("%s rows: %s equal, %s updated, %s deleted, %s inserted",
		comma(s.Rows()),
		comma(s.Equal),
		comma(s.Update),
		comma(s.Delete),
		comma(s.Insert))
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}
