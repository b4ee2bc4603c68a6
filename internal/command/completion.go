// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/sbsdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for sbsdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_sbsdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "diff ops completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local aws="--endpoint --profile --region"

    case "$cmd" in
        diff)
            local opts="$aws --color -c --exit-code --left-title --numbers -n --output -o --pager -p --right-title --summary --threshold --titles -t --width -w"
            if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
                COMPREPLY=( $(compgen -W "text json yaml html" -- "$cur") )
                return 0
            fi
            ;;
        ops)
            local opts="$aws --output -o --threshold --titles -t"
            if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
                COMPREPLY=( $(compgen -W "text json" -- "$cur") )
                return 0
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on an OLD or NEW document, so complete files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _sbsdiff sbsdiff
`

const zshCompletionScript = `#compdef sbsdiff

_sbsdiff() {
  local -a cmds
  cmds=(
    'diff:side-by-side diff of two documents'
    'ops:raw line alignment operations'
    'completion:generate shell completion script'
  )

  local -a aws
  aws=(
  '--endpoint[S3-compatible endpoint URL]:url'
  '--profile[AWS shared config profile]:profile'
  '--region[AWS region]:region'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'sbsdiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    diff)
      _arguments -C \
        $aws \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '--exit-code[exit 1 when documents differ]' \
        '--left-title[title of the OLD column]:title' \
        '(-n --numbers)'{-n,--numbers}'[show line numbers]' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml html)' \
        '(-p --pager)'{-p,--pager}'[page text output]' \
        '--right-title[title of the NEW column]:title' \
        '--summary[append row counts]' \
        '--threshold[similarity threshold]:threshold' \
        '(-t --titles)'{-t,--titles}'[show titles]' \
        '(-w --width)'{-w,--width}'[table width]:width' \
        '1:OLD:_files' \
        '2:NEW:_files'
      ;;
    ops)
      _arguments -C \
        $aws \
        '(-o --output)'{-o,--output}'[output format]:format:(text json)' \
        '--threshold[similarity threshold]:threshold' \
        '(-t --titles)'{-t,--titles}'[show titles]' \
        '1:OLD:_files' \
        '2:NEW:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _sbsdiff sbsdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: sbsdiff completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "sbsdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
