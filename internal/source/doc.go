// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source reads the documents handed to sbsdiff. A document spec is a
// local path, "-" for stdin, or an s3://bucket/key object URI.
package source
