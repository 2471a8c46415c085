// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package objstore uploads local files to S3 and downloads objects back to
// local paths. Expected failures (missing file, bucket, key or destination)
// come back as result.KnownError messages; everything else is passed through
// as result.Unrecoverable.
package objstore
