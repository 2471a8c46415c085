// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/meta"
)

// AdapterCommandBuilder constructs a cli.Command for the adapter subcommands
// (param, put, get, ls, demo) using a consistent pattern. It wires metadata,
// appends the AWS flags (plus S3 flags when S3 is set) and installs a Before
// hook that checks the positional arguments named in Args.
type AdapterCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Args      []string
	Flags     []cli.Flag
	S3        bool
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (acb *AdapterCommandBuilder) Build() *cli.Command {
	flags := append(acb.Flags, NewAWSFlags(acb.Name)...)
	if acb.S3 {
		flags = append(flags, NewS3Flags()...)
	}

	return &cli.Command{
		Name:      acb.Name,
		Usage:     acb.Usage,
		UsageText: acb.UsageText,
		Metadata: map[string]any{
			"meta": acb.Meta,
		},
		Flags:  flags,
		Before: ArgsValidator(acb.Args...),
		Action: acb.Action,
	}
}
