// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Group turns an operation sequence from Align into display rows. Line numbers
// on each side start at 1 and advance only when that side's line is placed in
// a row.
//
// A run of deletes and the run of inserts directly after it are paired
// greedily: each delete, in order, takes the first unused insert with the same
// non-empty key and becomes an Update row. Unpaired deletes become Delete rows
// and the inserts left over follow them as Insert rows.
//
// Group panics if an operation indexes past the end of a or b.
func Group(ops []Operation, a, b []string) []Row {
	g := grouper{a: a, b: b, oldNo: 1, newNo: 1}

	for i := 0; i < len(ops); {
		switch ops[i].Kind {
		case Equal:
			g.equal(ops[i])
			i++

		case Insert:
			for ; i < len(ops) && ops[i].Kind == Insert; i++ {
				g.insert(ops[i].B)
			}

		case Delete:
			var dels, ins []Operation
			for ; i < len(ops) && ops[i].Kind == Delete; i++ {
				dels = append(dels, ops[i])
			}
			for ; i < len(ops) && ops[i].Kind == Insert; i++ {
				ins = append(ins, ops[i])
			}
			g.pair(dels, ins)

		case Update:
			g.update(ops[i].A, ops[i].B)
			i++

		default:
			i++
		}
	}

	return g.rows
}

// grouper accumulates rows and the running line numbers for one Group call.
type grouper struct {
	a, b         []string
	oldNo, newNo int
	rows         []Row
}

func (g *grouper) equal(op Operation) {
	g.rows = append(g.rows, Row{
		Left:  Side{LineNo: g.nextOld(), Type: Equal, Text: g.a[op.A]},
		Right: Side{LineNo: g.nextNew(), Type: Equal, Text: g.b[op.B]},
	})
}

func (g *grouper) insert(j int) {
	g.rows = append(g.rows, Row{
		Left:  Side{Type: Insert},
		Right: Side{LineNo: g.nextNew(), Type: Insert, Text: g.b[j]},
	})
}

func (g *grouper) delete(i int) {
	g.rows = append(g.rows, Row{
		Left:  Side{LineNo: g.nextOld(), Type: Delete, Text: g.a[i]},
		Right: Side{Type: Delete},
	})
}

func (g *grouper) update(i, j int) {
	left, right := InlineDiff(g.a[i], g.b[j])
	g.rows = append(g.rows, Row{
		Left:  Side{LineNo: g.nextOld(), Type: Update, Text: g.a[i], Segments: left},
		Right: Side{LineNo: g.nextNew(), Type: Update, Text: g.b[j], Segments: right},
	})
}

// pair emits rows for a delete run and the insert run that follows it.
func (g *grouper) pair(dels, ins []Operation) {
	used := make([]bool, len(ins))

	for _, d := range dels {
		matched := -1
		for k, in := range ins {
			if !used[k] && sameKey(g.a[d.A], g.b[in.B]) {
				matched = k
				break
			}
		}

		if matched < 0 {
			g.delete(d.A)
			continue
		}
		used[matched] = true
		g.update(d.A, ins[matched].B)
	}

	for k, in := range ins {
		if !used[k] {
			g.insert(in.B)
		}
	}
}

func (g *grouper) nextOld() int {
	n := g.oldNo
	g.oldNo++
	return n
}

func (g *grouper) nextNew() int {
	n := g.newNo
	g.newNo++
	return n
}
