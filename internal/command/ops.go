// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/sbsdiff/internal/config"
	"github.com/tfctl/sbsdiff/internal/differ"
	"github.com/tfctl/sbsdiff/internal/log"
	"github.com/tfctl/sbsdiff/internal/meta"
	"github.com/tfctl/sbsdiff/internal/output"
)

// opsCommandAction prints the aligner operations for two documents without
// grouping them into rows.
func opsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "ops"

	oldText, newText, err := ReadDocuments(ctx, cmd)
	if err != nil {
		return err
	}

	d := differ.New(differ.WithThreshold(cmd.Float("threshold")))
	ops := d.Align(differ.SplitLines(oldText), differ.SplitLines(newText))

	return output.SpitOps(writer(cmd), ops, cmd.String("output"), cmd.Bool("titles"))
}

func opsCommandBuilder(meta meta.Meta) *cli.Command {
	path := meta.Config.Source
	return &cli.Command{
		Name:      "ops",
		Usage:     "raw line alignment operations",
		UsageText: "sbsdiff ops [options] OLD NEW",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format (text, json)",
				Value:   output.FormatText,
				Validator: func(value string) error {
					return FlagValidators(value, OpsOutputValidator)
				},
			},
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show column titles",
			},
			NewThresholdFlag("ops", path),
		}, NewAWSFlags("ops", path)...),
		Before: DocumentArgsValidator,
		Action: opsCommandAction,
	}
}
