// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package params

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsx "github.com/tfctl/awsh/internal/aws"
	"github.com/tfctl/awsh/internal/result"
)

// TestIntegration_Get writes a parameter, reads it back, and reads a name
// that does not exist.
func TestIntegration_Get(t *testing.T) {
	ctx := context.Background()

	region := os.Getenv("AWSH_REGION")
	if region == "" {
		region = "eu-west-2"
	}
	cfg, err := awsx.LoadAWSConfig(ctx,
		awsx.WithRegion(region),
		awsx.WithEndpoint(os.Getenv("AWSH_ENDPOINT")),
	)
	require.NoError(t, err)
	client := awsx.NewSSM(cfg)

	name := fmt.Sprintf("/awsh/test/%d", time.Now().UnixNano())
	_, err = client.PutParameter(ctx, &ssmv2.PutParameterInput{
		Name:  awsv2.String(name),
		Value: awsv2.String("I am a unique test parameter"),
		Type:  types.ParameterTypeString,
	})
	require.NoError(t, err)
	defer client.DeleteParameter(ctx, &ssmv2.DeleteParameterInput{Name: awsv2.String(name)})

	f := NewFetcher(client)

	r := f.Get(ctx, name)
	assert.Equal(t, result.Success, r.Kind)
	assert.Equal(t, "I am a unique test parameter", r.Message)

	r = f.Get(ctx, name+"/missing")
	assert.Equal(t, result.KnownError, r.Kind)
	assert.Contains(t, r.Message, "Error: ParameterNotFound, Message: ")
}
