// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/sbsdiff/internal/differ"
	"github.com/tfctl/sbsdiff/internal/output"
)

// NewRenderFlags returns the flags controlling how diff rows are rendered.
// ns is the command namespace and path the config file used as a fallback
// value source.
func NewRenderFlags(ns, path string) []cli.Flag {
	colorFlag := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_COLOR")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, colorFlag.Name, &colorFlag.Sources)

	numbersFlag := &cli.BoolFlag{
		Name:    "numbers",
		Aliases: []string{"n"},
		Usage:   "show line-number columns",
		Value:   true,
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_NUMBERS")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, numbersFlag.Name, &numbersFlag.Sources)

	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml, html)",
		Value:   output.FormatText,
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_OUTPUT")),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, outputFlag.Name, &outputFlag.Sources)

	summaryFlag := &cli.BoolFlag{
		Name:    "summary",
		Usage:   "append a summary of row counts",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_SUMMARY")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, summaryFlag.Name, &summaryFlag.Sources)

	titlesFlag := &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show column titles",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_TITLES")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, titlesFlag.Name, &titlesFlag.Sources)

	widthFlag := &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   "text table width, 0 for the terminal width",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_WIDTH")),
		Validator: func(value int) error {
			return FlagValidators(value, WidthValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, widthFlag.Name, &widthFlag.Sources)

	leftTitleFlag := &cli.StringFlag{
		Name:  "left-title",
		Usage: "title of the OLD column",
		Value: output.DefaultLeftTitle,
	}
	NameSpacedValueChainFromConfigFile(ns, path, "header.left", &leftTitleFlag.Sources)

	rightTitleFlag := &cli.StringFlag{
		Name:  "right-title",
		Usage: "title of the NEW column",
		Value: output.DefaultRightTitle,
	}
	NameSpacedValueChainFromConfigFile(ns, path, "header.right", &rightTitleFlag.Sources)

	return []cli.Flag{
		colorFlag,
		leftTitleFlag,
		numbersFlag,
		outputFlag,
		rightTitleFlag,
		summaryFlag,
		titlesFlag,
		widthFlag,
	}
}

// NewThresholdFlag returns the --threshold flag shared by diff and ops.
func NewThresholdFlag(ns, path string) *cli.FloatFlag {
	flag := &cli.FloatFlag{
		Name:    "threshold",
		Usage:   "word similarity at which two lines pair as an update",
		Value:   differ.DefaultThreshold,
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_THRESHOLD")),
		Validator: func(value float64) error {
			return FlagValidators(value, ThresholdValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(ns, path, flag.Name, &flag.Sources)
	return flag
}

// NewAWSFlags returns the flags used to reach s3:// documents.
func NewAWSFlags(ns, path string) []cli.Flag {
	profileFlag := &cli.StringFlag{
		Name:    "profile",
		Usage:   "AWS shared config profile for s3:// documents",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_PROFILE")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, profileFlag.Name, &profileFlag.Sources)

	regionFlag := &cli.StringFlag{
		Name:    "region",
		Usage:   "AWS region for s3:// documents",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_REGION")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, regionFlag.Name, &regionFlag.Sources)

	endpointFlag := &cli.StringFlag{
		Name:    "endpoint",
		Usage:   "S3-compatible endpoint URL",
		Sources: cli.NewValueSourceChain(cli.EnvVar("SBSDIFF_ENDPOINT")),
	}
	NameSpacedValueChainFromConfigFile(ns, path, endpointFlag.Name, &endpointFlag.Sources)

	return []cli.Flag{endpointFlag, profileFlag, regionFlag}
}

// NameSpacedValueChainFromConfigFile adds namespaced and global config file
// sources for key to the given Sources chain. Nothing is added when there is
// no config file.
func NameSpacedValueChainFromConfigFile(ns, path, key string, sources *cli.ValueSourceChain) {
	if path == "" {
		return
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+key, altsrc.StringSourcer(path))
		sources.Chain = append(sources.Chain, src)
	}

	src := yaml.YAML(key, altsrc.StringSourcer(path))
	sources.Chain = append(sources.Chain, src)
}
