// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/output"
)

// putCommandAction uploads LOCAL to BUCKET/KEY.
func putCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, err := s3Store(ctx, cmd)
	if err != nil {
		return err
	}

	args := cmd.Args()
	return emit(metaFrom(cmd).Out, store.WriteFile(ctx, args.Get(0), args.Get(1), args.Get(2)))
}

// getCommandAction downloads BUCKET/KEY to DEST.
func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, err := s3Store(ctx, cmd)
	if err != nil {
		return err
	}

	args := cmd.Args()
	return emit(metaFrom(cmd).Out, store.ReadFile(ctx, args.Get(0), args.Get(1), args.Get(2)))
}

// lsCommandAction lists the keys in BUCKET.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	store, err := s3Store(ctx, cmd)
	if err != nil {
		return err
	}

	keys, err := store.ListKeys(ctx, cmd.Args().Get(0), cmd.String("prefix"))
	if err != nil {
		return err
	}

	tbl := output.Table{}
	if cmd.Bool("titles") {
		tbl.Headers = []string{"KEY"}
	}
	for _, k := range keys {
		tbl.Rows = append(tbl.Rows, []string{k})
	}
	if keys == nil {
		keys = []string{}
	}

	return output.Render(metaFrom(cmd).Out, cmd.String("output"), cmd.Bool("color"), keys, tbl)
}

func putCommandBuilder(meta meta.Meta) *cli.Command {
	return (&AdapterCommandBuilder{
		Name:      "put",
		Usage:     "upload a local file to S3",
		UsageText: "awsh put LOCAL BUCKET KEY [options]",
		Args:      []string{"LOCAL", "BUCKET", "KEY"},
		S3:        true,
		Action:    putCommandAction,
		Meta:      meta,
	}).Build()
}

func getCommandBuilder(meta meta.Meta) *cli.Command {
	return (&AdapterCommandBuilder{
		Name:      "get",
		Usage:     "download an S3 object to a local file",
		UsageText: "awsh get BUCKET KEY DEST [options]",
		Args:      []string{"BUCKET", "KEY", "DEST"},
		S3:        true,
		Action:    getCommandAction,
		Meta:      meta,
	}).Build()
}

func lsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&AdapterCommandBuilder{
		Name:      "ls",
		Usage:     "list the keys in an S3 bucket",
		UsageText: "awsh ls BUCKET [options]",
		Args:      []string{"BUCKET"},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "only list keys starting with prefix",
			},
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show titles with text output",
			},
		}, NewOutputFlags()...),
		S3:     true,
		Action: lsCommandAction,
		Meta:   meta,
	}).Build()
}
