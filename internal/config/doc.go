// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for sbsdiff's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/sbsdiff.yaml or $HOME/.config/sbsdiff.yaml
//   - macOS: $HOME/Library/Application Support/sbsdiff.yaml
//   - Windows: %APPDATA%/sbsdiff.yaml
//
// SBSDIFF_CFG_FILE overrides the location. Actual resolution relies on
// os.UserConfigDir which follows platform conventions.
package config
