// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsh/internal/aws"
	"github.com/tfctl/awsh/internal/config"
	"github.com/tfctl/awsh/internal/log"
	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/objstore"
	"github.com/tfctl/awsh/internal/params"
)

// SDKClients builds real SDK v2 clients.
type SDKClients struct{}

var _ meta.Clients = SDKClients{}

func (SDKClients) SSM(ctx context.Context, opts ...awsx.Option) (params.API, error) {
	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return awsx.NewSSM(cfg), nil
}

func (SDKClients) S3(ctx context.Context, pathStyle bool, opts ...awsx.Option) (objstore.API, error) {
	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return awsx.NewS3(cfg, awsx.WithS3PathStyle(pathStyle)), nil
}

// awsOptions turns the AWS flags on cmd into config options. Empty values are
// left to the SDK's default chain. A positive max-attempts in the config file
// (namespaced by command first) replaces the SDK's retry budget.
func awsOptions(cmd *cli.Command) []awsx.Option {
	opts := []awsx.Option{
		awsx.WithProfile(cmd.String("profile")),
		awsx.WithRegion(cmd.String("region")),
		awsx.WithEndpoint(cmd.String("endpoint")),
	}
	if id := cmd.String("access-key-id"); id != "" {
		opts = append(opts, awsx.WithCredentials(awsx.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: cmd.String("secret-access-key"),
			SessionToken:    cmd.String("session-token"),
		}))
	}
	if n, err := config.GetInt("max-attempts", 0); err != nil {
		log.Warnf("ignoring max-attempts: err=%v", err)
	} else if n > 0 {
		opts = append(opts, awsx.WithRetryer(func() awsv2.Retryer {
			return retry.NewStandard(func(o *retry.StandardOptions) {
				o.MaxAttempts = n
			})
		}))
	}
	return opts
}

// metaFrom recovers the Meta stashed on a command by AdapterCommandBuilder.
func metaFrom(cmd *cli.Command) meta.Meta {
	m, _ := cmd.Metadata["meta"].(meta.Meta)
	if m.Clients == nil {
		m.Clients = SDKClients{}
	}
	if m.Out == nil {
		m.Out = cmd.Root().Writer
	}
	return m
}

func ssmFetcher(ctx context.Context, cmd *cli.Command) (*params.Fetcher, error) {
	client, err := metaFrom(cmd).Clients.SSM(ctx, awsOptions(cmd)...)
	if err != nil {
		return nil, err
	}

	var opts []params.Option
	if cmd.Bool("decrypt") {
		opts = append(opts, params.WithDecryption())
	}
	return params.NewFetcher(client, opts...), nil
}

func s3Store(ctx context.Context, cmd *cli.Command) (*objstore.Store, error) {
	client, err := metaFrom(cmd).Clients.S3(ctx, cmd.Bool("path-style"), awsOptions(cmd)...)
	if err != nil {
		return nil, err
	}
	return objstore.NewStore(client), nil
}
