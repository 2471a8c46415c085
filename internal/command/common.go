// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"

	"github.com/tfctl/awsh/internal/log"
	"github.com/tfctl/awsh/internal/result"
)

// emit prints Success and KnownError messages to w and hands Unrecoverable
// errors back to the caller unchanged.
func emit(w io.Writer, r result.Result) error {
	log.Debugf("result: kind=%s", r.Kind)
	if r.Kind == result.Unrecoverable {
		return r.Err
	}
	_, err := fmt.Fprintln(w, r.Message)
	return err
}
