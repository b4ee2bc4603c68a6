// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes a line and word level difference between two
// versions of a text document and groups it into rows suitable for
// side-by-side display.
//
// The pipeline is:
//   - SplitLines divides each document on \r?\n.
//   - Differ.Align walks a line-level LCS table and tags every step as Equal,
//     Insert, Delete or Update. Lines that share a key (the text before the
//     first ':' or '=') or whose word similarity reaches the threshold are
//     reported as Update rather than Delete+Insert.
//   - Group turns the operations into Rows, pairing keyed delete/insert runs
//     into Update rows and running InlineDiff on every update.
//
// Everything is recomputed per call. No state is kept between invocations and
// none of the functions here block or log.
package differ
