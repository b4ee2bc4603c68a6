// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders diff rows in the formats commands emit: a side-by-side
// text table, JSON and YAML records, and HTML markup. Segment text arrives raw
// from the engine; any escaping happens here.
package output
