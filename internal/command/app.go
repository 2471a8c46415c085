// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/config"
	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/version"
)

// InitApp builds the awsh command tree. Results are written to out; clients
// builds the AWS service clients (nil means SDKClients).
func InitApp(args []string, out io.Writer, clients meta.Clients) (*cli.Command, error) {
	if out == nil {
		out = os.Stdout
	}
	if clients == nil {
		clients = SDKClients{}
	}

	// The arg[1] immediately following the binary (arg[0]) is the awsh
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.SetNamespace(ns)

	// A config file named explicitly must load; the default location is
	// optional.
	if path := os.Getenv(config.EnvFile); path != "" {
		if _, err := config.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	meta := meta.Meta{
		Out:     out,
		Clients: clients,
	}

	app := &cli.Command{
		Name:                  "awsh",
		Usage:                 "AWS helpers: quotes, Parameter Store and S3",
		Version:               version.Version,
		Writer:                out,
		EnableShellCompletion: true,
	}

	app.Commands = append(app.Commands,
		quoteCommandBuilder(meta),
		paramCommandBuilder(meta),
		putCommandBuilder(meta),
		getCommandBuilder(meta),
		lsCommandBuilder(meta),
		demoCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
