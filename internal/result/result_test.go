// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		result  Result
		kind    Kind
		str     string
		wantErr error
	}{
		{"ok", OK("done"), Success, "done", nil},
		{"known", Known("nope"), KnownError, "nope", nil},
		{"knownf", Knownf("no file: %s", "x"), KnownError, "no file: x", nil},
		{"fail", Fail(boom), Unrecoverable, "boom", boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.result.Kind)
			assert.Equal(t, tt.str, tt.result.String())
			assert.Equal(t, tt.wantErr, tt.result.Unwrap())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "known-error", KnownError.String())
	assert.Equal(t, "unrecoverable", Unrecoverable.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestFromAPIError(t *testing.T) {
	noBucket := &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"}
	noMessage := &smithy.GenericAPIError{Code: "NoSuchKey"}
	denied := &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"}
	plain := errors.New("dial tcp: connection refused")
	fallbacks := map[string]string{"NoSuchKey": "The specified key does not exist."}

	tests := []struct {
		name   string
		err    error
		kind   Kind
		result string
	}{
		{
			name:   "listed code",
			err:    noBucket,
			kind:   KnownError,
			result: "Error: NoSuchBucket, Message: The specified bucket does not exist",
		},
		{
			name:   "listed code wrapped",
			err:    fmt.Errorf("operation error S3: PutObject: %w", noBucket),
			kind:   KnownError,
			result: "Error: NoSuchBucket, Message: The specified bucket does not exist",
		},
		{
			name:   "empty message uses fallback",
			err:    noMessage,
			kind:   KnownError,
			result: "Error: NoSuchKey, Message: The specified key does not exist.",
		},
		{
			name:   "unlisted code",
			err:    denied,
			kind:   Unrecoverable,
			result: denied.Error(),
		},
		{
			name:   "no code",
			err:    plain,
			kind:   Unrecoverable,
			result: plain.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromAPIError(tt.err, fallbacks, "NoSuchBucket", "NoSuchKey")
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.result, r.String())
			if tt.kind == Unrecoverable {
				assert.ErrorIs(t, r.Unwrap(), tt.err)
			}
		})
	}
}
