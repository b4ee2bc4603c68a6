// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/sbsdiff/internal/config"
	"github.com/tfctl/sbsdiff/internal/differ"
	"github.com/tfctl/sbsdiff/internal/log"
	"github.com/tfctl/sbsdiff/internal/meta"
	"github.com/tfctl/sbsdiff/internal/output"
	"github.com/tfctl/sbsdiff/internal/pager"
)

// diffCommandAction is the action handler for the "diff" subcommand. It reads
// both documents, aligns them and renders the rows per the render flags.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	oldText, newText, err := ReadDocuments(ctx, cmd)
	if err != nil {
		return err
	}

	d := differ.New(differ.WithThreshold(cmd.Float("threshold")))
	rows := d.Diff(oldText, newText)
	stats := differ.Summarize(rows)
	log.Debugf("diff stats: %+v", stats)

	opts := output.Options{
		Format:     cmd.String("output"),
		Color:      cmd.Bool("color"),
		Numbers:    cmd.Bool("numbers"),
		Titles:     cmd.Bool("titles"),
		LeftTitle:  cmd.String("left-title"),
		RightTitle: cmd.String("right-title"),
		Width:      cmd.Int("width"),
		Summary:    cmd.Bool("summary"),
	}

	w := writer(cmd)
	interactive := w == os.Stdout && output.IsTerminal(os.Stdout)
	if opts.Width == 0 && interactive {
		opts.Width, _ = output.TerminalSize(os.Stdout)
	}

	if cmd.Bool("pager") && interactive && opts.Format == output.FormatText {
		var buf bytes.Buffer
		if err := output.Spit(&buf, rows, opts); err != nil {
			return err
		}
		width, height := output.TerminalSize(os.Stdout)
		if err := pager.Page(buf.String(), width, height, os.Stdin, os.Stdout); err != nil {
			return err
		}
	} else if err := output.Spit(w, rows, opts); err != nil {
		return err
	}

	if cmd.Bool("exit-code") && stats.Changes() > 0 {
		return ErrDifferent
	}
	return nil
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	path := meta.Config.Source
	return &cli.Command{
		Name:      "diff",
		Usage:     "side-by-side diff of two documents",
		UsageText: "sbsdiff diff [options] OLD NEW",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit with status 1 when the documents differ",
			},
			&cli.BoolFlag{
				Name:    "pager",
				Aliases: []string{"p"},
				Usage:   "page text output when stdout is a terminal",
			},
			NewThresholdFlag("diff", path),
		}, NewRenderFlags("diff", path)...), NewAWSFlags("diff", path)...),
		Before: DocumentArgsValidator,
		Action: diffCommandAction,
	}
}
