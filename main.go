// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/awsh/internal/command"
	"github.com/tfctl/awsh/internal/log"
	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr, nil))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// runApp initializes the app and runs it, returning the exit code: 1 when
// the app cannot be built, 2 when a command fails.
func runApp(args []string, stdout, stderr io.Writer, clients meta.Clients) int {
	app, err := command.InitApp(args, stdout, clients)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.WithError(err).Debug("app init err")
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		log.WithError(err).Debug("app run err")
		return 2
	}

	return 0
}

func realMain(args []string, stdout, stderr io.Writer, clients meta.Clients) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if len(args) <= 2 && handleVersion(args) {
		fmt.Fprintln(stdout, version.Version)
		return 0
	}

	return runApp(handleNakedCommand(args), stdout, stderr, clients)
}
