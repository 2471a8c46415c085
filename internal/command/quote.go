// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/config"
	"github.com/tfctl/awsh/internal/meta"
	"github.com/tfctl/awsh/internal/output"
	"github.com/tfctl/awsh/internal/quote"
)

// quoteFieldOrder fixes the text rendering order of a quote response.
var quoteFieldOrder = []string{"content", "author", "length", "status_message"}

// quoteFiles returns the quote files to draw from: --file when given,
// otherwise the "files" list from the config file. None means the built-in
// list.
func quoteFiles(cmd *cli.Command) ([]string, error) {
	if path := cmd.String("file"); path != "" {
		return []string{path}, nil
	}
	return config.GetStringSlice("files", nil)
}

// quoteCommandAction prints one random quote with its status. A non-200
// status is rendered and then returned as an error.
func quoteCommandAction(ctx context.Context, cmd *cli.Command) error {
	files, err := quoteFiles(cmd)
	if err != nil {
		return fmt.Errorf("quote files: %w", err)
	}

	var opts []quote.Option
	if len(files) > 0 {
		var quotes []quote.Quote
		for _, path := range files {
			loaded, err := quote.Load(path)
			if err != nil {
				return err
			}
			quotes = append(quotes, loaded...)
		}
		opts = append(opts, quote.WithQuotes(quotes))
	}

	status, body := quote.NewProvider(opts...).Get()

	tbl := output.Table{Rows: [][]string{{"status", strconv.Itoa(status)}}}
	for _, k := range quoteFieldOrder {
		if v, ok := body[k]; ok {
			tbl.Rows = append(tbl.Rows, []string{k, output.InterfaceToString(v, "-")})
		}
	}

	data := map[string]any{"status": status, "result": body}
	if err := output.Render(metaFrom(cmd).Out, cmd.String("output"), cmd.Bool("color"), data, tbl); err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("quote: status %d", status)
	}
	return nil
}

// quoteCommandBuilder constructs the cli.Command for "quote". It needs no AWS
// flags so it skips AdapterCommandBuilder.
func quoteCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "quote",
		Usage:     "print a random quote",
		UsageText: "awsh quote [--file quotes.yaml] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML list of quotes to choose from. Defaults to the config file's files list, then the built-in list",
			},
		}, NewOutputFlags()...),
		Before: ArgsValidator(),
		Action: quoteCommandAction,
	}
}
