// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// Run parses and runs app with args after moving the subcommand's positional
// arguments behind a "--" terminator.
func Run(ctx context.Context, app *cli.Command, args []string) error {
	args = SeparatePositionals(app, args)
	log.Debugf("args after positional separation: args=%v", args)
	return app.Run(ctx, args)
}

// SeparatePositionals rewrites args so that every flag of the subcommand named
// by args[1] comes first, followed by "--" and the positional arguments in
// their original order. The cli parser stops at a lone "-" and drops whatever
// follows it, so "diff - new.txt" only reaches the action intact once the
// documents sit behind the terminator. Args that do not name a subcommand are
// returned unchanged.
func SeparatePositionals(app *cli.Command, args []string) []string {
	if len(args) < 3 || strings.HasPrefix(args[1], "-") {
		return args
	}

	sub := app.Command(args[1])
	if sub == nil {
		return args
	}

	// Names of flags that take a value in the following arg.
	valued := map[string]bool{}
	for _, f := range sub.Flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			valued[name] = true
		}
	}

	var flags, positionals []string
	for i := 2; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !hasValue && valued[name] && i+1 < len(args) {
			flags = append(flags, args[i+1])
			i++
		}
	}

	result := make([]string, 0, len(args)+1)
	result = append(result, args[:2]...)
	result = append(result, flags...)
	if len(positionals) > 0 {
		result = append(result, "--")
		result = append(result, positionals...)
	}
	return result
}
