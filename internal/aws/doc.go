// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws builds SDK v2 configuration and service clients from explicit
// options. Nothing here reads or mutates process-wide credentials; whatever the
// caller does not override falls through to the SDK's default chain.
package aws
