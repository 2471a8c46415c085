// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package quote serves random quotes from a static list as status/result
// pairs shaped like an HTTP API response.
package quote
