// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OutputValidator accepts the formats output.Render understands.
func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// ArgsValidator returns a Before hook requiring exactly the named positional
// arguments.
func ArgsValidator(names ...string) func(context.Context, *cli.Command) (context.Context, error) {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd.NArg() != len(names) {
			return ctx, fmt.Errorf("%s: expected %d argument(s) %v, got %d", cmd.Name, len(names), names, cmd.NArg())
		}
		for i, name := range names {
			if cmd.Args().Get(i) == "" {
				return ctx, fmt.Errorf("%s: %s must not be empty", cmd.Name, name)
			}
		}
		return ctx, nil
	}
}
