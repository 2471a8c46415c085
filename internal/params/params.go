// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package params

import (
	"context"
	"errors"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/tidwall/gjson"

	"github.com/tfctl/awsh/internal/log"
	"github.com/tfctl/awsh/internal/result"
)

// CodeParameterNotFound is the SSM error code translated into a message.
const CodeParameterNotFound = "ParameterNotFound"

// ErrNoValue is returned by Field when the path matches nothing.
var ErrNoValue = errors.New("no value at path")

// API is the slice of the SSM client the Fetcher needs.
type API interface {
	GetParameter(ctx context.Context, params *ssmv2.GetParameterInput, optFns ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error)
}

// Fetcher reads single values from Parameter Store.
type Fetcher struct {
	client  API
	decrypt bool
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithDecryption asks SSM to decrypt SecureString values.
func WithDecryption() Option {
	return func(f *Fetcher) { f.decrypt = true }
}

// NewFetcher returns a Fetcher over client.
func NewFetcher(client API, opts ...Option) *Fetcher {
	f := &Fetcher{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get looks up name. The value comes back as a Success, a missing parameter
// as a KnownError reading "Error: ParameterNotFound, Message: ...", and every
// other failure as an Unrecoverable holding the SDK error unchanged.
func (f *Fetcher) Get(ctx context.Context, name string) result.Result {
	log.Debugf("ssm get: name=%s, decrypt=%t", name, f.decrypt)

	out, err := f.client.GetParameter(ctx, &ssmv2.GetParameterInput{
		Name:           awsv2.String(name),
		WithDecryption: awsv2.Bool(f.decrypt),
	})
	if err != nil {
		log.Debugf("ssm get err: name=%s, err=%v", name, err)
		return result.FromAPIError(err, nil, CodeParameterNotFound)
	}

	if out.Parameter == nil {
		return result.OK("")
	}
	return result.OK(awsv2.ToString(out.Parameter.Value))
}

// Field extracts a gjson path from a JSON parameter value. An empty path
// returns value unchanged.
func Field(value, path string) (string, error) {
	if path == "" {
		return value, nil
	}

	v := gjson.Get(value, path)
	if !v.Exists() {
		return "", ErrNoValue
	}
	return v.String(), nil
}
