// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/params"
	"github.com/tfctl/awsh/internal/result"
)

// paramCommandAction prints the value of one SSM parameter, optionally
// narrowed to a JSON path.
func paramCommandAction(ctx context.Context, cmd *cli.Command) error {
	f, err := ssmFetcher(ctx, cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().Get(0)
	r := f.Get(ctx, name)

	if r.Kind == result.Success {
		v, err := params.Field(r.Message, cmd.String("path"))
		if err != nil {
			return fmt.Errorf("parameter %s: %s: %w", name, cmd.String("path"), err)
		}
		r.Message = v
	}

	return emit(metaFrom(cmd).Out, r)
}

// paramCommandBuilder constructs the cli.Command for "param".
func paramCommandBuilder(meta meta.Meta) *cli.Command {
	return (&AdapterCommandBuilder{
		Name:      "param",
		Usage:     "read a value from SSM Parameter Store",
		UsageText: "awsh param NAME [options]",
		Args:      []string{"NAME"},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "decrypt",
				Usage: "decrypt SecureString values",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "JSON path to extract from the value, e.g. s3.bucket",
			},
		},
		Action: paramCommandAction,
		Meta:   meta,
	}).Build()
}
