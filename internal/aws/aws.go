// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go/logging"

	"github.com/tfctl/awsh/internal/log"
)

// Credentials is a static key pair handed to the SDK instead of the default
// provider chain.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// options holds optional overrides for AWS config loading.
type options struct {
	profile     string
	region      string
	endpoint    string
	credentials *Credentials
	retryer     func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, endpoint, credentials and retryer without changing
// callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s, endpoint=%s, static=%t",
		o.profile, o.region, o.endpoint, o.credentials != nil)

	loadOpts := []func(*config.LoadOptions) error{config.WithLogger(sdkLogger())}
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpoint))
	}
	if c := o.credentials; c != nil {
		provider := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	log.Debugf("config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// sdkLogger sends SDK log output (e.g. checksum warnings) through apex/log
// so AWSH_LOG controls it.
func sdkLogger() logging.Logger {
	return logging.LoggerFunc(func(c logging.Classification, format string, v ...interface{}) {
		if c == logging.Warn {
			log.Warnf("sdk: "+format, v...)
			return
		}
		log.Debugf("sdk: "+format, v...)
	})
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// NewSSM constructs a v2 SSM client from the provided config.
func NewSSM(cfg awsv2.Config, optFns ...func(*ssmv2.Options)) *ssmv2.Client {
	client := ssmv2.NewFromConfig(cfg, optFns...)
	log.Debugf("ssm client created")
	return client
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points every client built from the config at endpoint, e.g. a
// LocalStack URL. Empty leaves endpoint resolution to the SDK.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithCredentials replaces the default credential chain with a static pair.
// An empty AccessKeyID is ignored.
func WithCredentials(c Credentials) Option {
	return func(o *options) {
		if c.AccessKeyID == "" {
			o.credentials = nil
			return
		}
		o.credentials = &c
	}
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// WithS3PathStyle forces path-style addressing (bucket in the path rather
// than the host), which most S3 emulators require.
func WithS3PathStyle(enabled bool) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.UsePathStyle = enabled
	}
}
