// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/sbsdiff/internal/log"
	"github.com/tfctl/sbsdiff/internal/meta"
	"github.com/tfctl/sbsdiff/internal/source"
)

// ErrDifferent is returned by diff when --exit-code is set and the documents
// are not identical.
var ErrDifferent = errors.New("documents differ")

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// DocumentArgsValidator makes sure exactly two document specs were given.
func DocumentArgsValidator(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if n := cmd.Args().Len(); n != 2 {
		return ctx, fmt.Errorf("want OLD and NEW documents, got %d argument(s)", n)
	}
	return ctx, nil
}

// ReadDocuments loads the OLD and NEW documents named by the positional
// arguments.
func ReadDocuments(ctx context.Context, cmd *cli.Command) (oldText, newText string, err error) {
	loader := source.NewLoader(
		source.WithStdin(reader(cmd)),
		source.WithProfile(cmd.String("profile")),
		source.WithRegion(cmd.String("region")),
		source.WithEndpoint(cmd.String("endpoint")),
	)

	oldSpec, newSpec := cmd.Args().Get(0), cmd.Args().Get(1)
	log.Debugf("reading documents: old=%s new=%s", oldSpec, newSpec)

	if oldText, err = loader.Read(ctx, oldSpec); err != nil {
		return "", "", err
	}
	if newText, err = loader.Read(ctx, newSpec); err != nil {
		return "", "", err
	}
	return oldText, newText, nil
}

// writer returns the root command's writer, falling back to os.Stdout.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// reader returns the root command's reader, falling back to os.Stdin.
func reader(cmd *cli.Command) io.Reader {
	if root := cmd.Root(); root != nil && root.Reader != nil {
		return root.Reader
	}
	return os.Stdin
}
