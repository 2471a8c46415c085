// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/config"
	"github.com/tfctl/awsh/internal/log"
	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/result"
)

// Demo defaults.
const (
	DefaultBucketParameter = "/temp/sprint/s3/bucket_name"
	DefaultDemoSource      = "tests/sonnet18.txt"
	DefaultDemoKey         = "sonnets/sonnet18.txt"
	DefaultDemoDest        = "sonnet18.txt"
)

// demoCommandAction looks up the bucket name in Parameter Store, uploads the
// source file to it, and downloads it again, printing each step's message.
// A bucket name that cannot be resolved ends the run after its message.
func demoCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := metaFrom(cmd).Out

	f, err := ssmFetcher(ctx, cmd)
	if err != nil {
		return err
	}

	bucket := f.Get(ctx, cmd.String("parameter"))
	if bucket.Kind != result.Success {
		return emit(out, bucket)
	}
	log.Infof("bucket resolved: parameter=%s, bucket=%s", cmd.String("parameter"), bucket.Message)

	store, err := s3Store(ctx, cmd)
	if err != nil {
		return err
	}

	key := cmd.String("key")
	if err := emit(out, store.WriteFile(ctx, cmd.String("source"), bucket.Message, key)); err != nil {
		return err
	}

	return emit(out, store.ReadFile(ctx, bucket.Message, key, cmd.String("dest")))
}

func demoCommandBuilder(meta meta.Meta) *cli.Command {
	parameterFlag := &cli.StringFlag{
		Name:  "parameter",
		Usage: "SSM parameter holding the bucket name",
		Value: DefaultBucketParameter,
	}
	if path := config.Source(); path != "" {
		parameterFlag = NameSpacedValueChainFlagFromConfigFile("demo", path, parameterFlag)
	}

	return (&AdapterCommandBuilder{
		Name:      "demo",
		Usage:     "resolve a bucket from Parameter Store, then upload and download a file",
		UsageText: "awsh demo [options]",
		Flags: []cli.Flag{
			parameterFlag,
			&cli.StringFlag{
				Name:  "source",
				Usage: "local file to upload",
				Value: DefaultDemoSource,
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "object key to upload to and download from",
				Value: DefaultDemoKey,
			},
			&cli.StringFlag{
				Name:  "dest",
				Usage: "local path to download to",
				Value: DefaultDemoDest,
			},
			&cli.BoolFlag{
				Name:  "decrypt",
				Usage: "decrypt the bucket parameter if it is a SecureString",
			},
		},
		S3:     true,
		Action: demoCommandAction,
		Meta:   meta,
	}).Build()
}
