// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package result holds the tagged outcome returned by the adapters. Expected
// failures carry a human-readable message; everything else carries the
// original error untouched.
package result

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Kind tags a Result.
type Kind int

const (
	Success Kind = iota
	KnownError
	Unrecoverable
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case KnownError:
		return "known-error"
	case Unrecoverable:
		return "unrecoverable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of a single adapter call. Message is set for Success
// and KnownError; Err is set only for Unrecoverable.
type Result struct {
	Kind    Kind
	Message string
	Err     error
}

// OK returns a Success carrying msg.
func OK(msg string) Result {
	return Result{Kind: Success, Message: msg}
}

// Known returns a KnownError carrying msg.
func Known(msg string) Result {
	return Result{Kind: KnownError, Message: msg}
}

// Knownf is Known with fmt.Sprintf formatting.
func Knownf(format string, args ...any) Result {
	return Known(fmt.Sprintf(format, args...))
}

// Fail returns an Unrecoverable carrying err as-is.
func Fail(err error) Result {
	return Result{Kind: Unrecoverable, Err: err}
}

// Unwrap returns the Unrecoverable error, or nil for the other kinds.
func (r Result) Unwrap() error {
	if r.Kind != Unrecoverable {
		return nil
	}
	return r.Err
}

// String renders the message, or the error text for Unrecoverable.
func (r Result) String() string {
	if r.Kind == Unrecoverable && r.Err != nil {
		return r.Err.Error()
	}
	return r.Message
}

// AsAPIError finds the service error in err's chain. It reports false if err
// does not carry one.
func AsAPIError(err error) (smithy.APIError, bool) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// FormatAPIError renders "Error: {code}, Message: {message}". An empty remote
// message falls back to fallback.
func FormatAPIError(apiErr smithy.APIError, fallback string) string {
	msg := apiErr.ErrorMessage()
	if msg == "" {
		msg = fallback
	}
	return fmt.Sprintf("Error: %s, Message: %s", apiErr.ErrorCode(), msg)
}

// FromAPIError maps err to a KnownError when its code is one of codes, using
// fallbacks[code] for an empty remote message. Any other error, including
// one with no code, becomes Unrecoverable.
func FromAPIError(err error, fallbacks map[string]string, codes ...string) Result {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return Fail(err)
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return Known(FormatAPIError(apiErr, fallbacks[code]))
		}
	}
	return Fail(err)
}
