// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/sbsdiff/internal/command"
	"github.com/tfctl/sbsdiff/internal/config"
	"github.com/tfctl/sbsdiff/internal/log"
	"github.com/tfctl/sbsdiff/internal/version"
)

var ctx = context.Background()

// Process exit codes.
const (
	exitOK        = 0
	exitDifferent = 1
	exitError     = 2
)

// boolFlags never take a separate value argument, so the token after one is
// left alone when de-duplicating.
var boolFlags = map[string]bool{
	"color":     true,
	"exit-code": true,
	"help":      true,
	"numbers":   true,
	"pager":     true,
	"summary":   true,
	"titles":    true,
}

// flagAliases maps short flag names to their long form.
var flagAliases = map[string]string{
	"c": "color",
	"h": "help",
	"n": "numbers",
	"o": "output",
	"p": "pager",
	"t": "titles",
	"w": "width",
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Debugf("args after dedup: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return exitError
	}

	if err := command.Run(ctx, app, args); err != nil {
		if errors.Is(err, command.ErrDifferent) {
			return exitDifferent
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitError
	}

	return exitOK
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return exitOK
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set
// arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	if len(args) <= idx {
		return args
	}

	for i, a := range args[idx:] {
		if len(a) > 1 && strings.HasPrefix(a, "@") {
			removeIdx := idx + i
			setArgs, _ := config.GetStringSlice(args[1] + "." + a[1:])
			rest := append([]string{}, args[removeIdx+1:]...)
			return injectConfigSet(args[:removeIdx], setArgs, rest)
		}
	}
	return args
}

// injectConfigSet splits each entry on whitespace and places the fields
// between head and tail.
func injectConfigSet(head, entries, tail []string) []string {
	out := append([]string{}, head...)
	for _, entry := range entries {
		out = append(out, strings.Fields(entry)...)
	}
	return append(out, tail...)
}

// deduplicateFlags collapses repeated flags so the last occurrence wins. A
// flag's value travels with it, whether given as --flag=value or as the
// following argument. Positional arguments keep their place.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		name  string
		parts []string
	}

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			for _, rest := range args[i:] {
				tokens = append(tokens, token{parts: []string{rest}})
			}
			break
		}
		if !isFlag(a) {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name, hasValue := flagName(a)
		parts := []string{a}
		if !hasValue && !boolFlags[name] && i+1 < len(args) && !isFlag(args[i+1]) {
			parts = append(parts, args[i+1])
			i++
		}
		tokens = append(tokens, token{name: name, parts: parts})
	}

	last := make(map[string]int, len(tokens))
	for i, t := range tokens {
		if t.name != "" {
			last[t.name] = i
		}
	}

	out := append(make([]string, 0, len(args)), args[:2]...)
	for i, t := range tokens {
		if t.name != "" && last[t.name] != i {
			continue
		}
		out = append(out, t.parts...)
	}
	return out
}

// isFlag reports whether a looks like a flag. A lone "-" names stdin.
func isFlag(a string) bool {
	return len(a) > 1 && strings.HasPrefix(a, "-")
}

// flagName returns the long name of flag a and whether a carries its value
// inline.
func flagName(a string) (string, bool) {
	name := strings.TrimLeft(a, "-")
	name, _, hasValue := strings.Cut(name, "=")
	if long, ok := flagAliases[name]; ok {
		name = long
	}
	return name, hasValue
}
