// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	awsx "github.com/tfctl/awsh/internal/aws"
	"github.com/tfctl/awsh/internal/objstore"
	"github.com/tfctl/awsh/internal/params"
)

// Clients builds the service clients a command needs from resolved AWS
// options. Tests substitute in-memory fakes.
type Clients interface {
	SSM(ctx context.Context, opts ...awsx.Option) (params.API, error)
	S3(ctx context.Context, pathStyle bool, opts ...awsx.Option) (objstore.API, error)
}

// Meta contains runtime metadata shared by commands: the writer results go to
// and the client factory.
type Meta struct {
	Out     io.Writer
	Clients Clients
}
