// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "strings"

// keyDelimiters separate a config-style key from its value.
const keyDelimiters = ":="

// lineKey returns the text before the first key delimiter, trimmed and
// lower-cased. A line without a delimiter is its own key.
func lineKey(line string) string {
	if i := strings.IndexAny(line, keyDelimiters); i >= 0 {
		line = line[:i]
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// sameKey reports whether both lines have the same non-empty key. Empty keys
// never match, not even each other.
func sameKey(a, b string) bool {
	k := lineKey(a)
	return k != "" && k == lineKey(b)
}
