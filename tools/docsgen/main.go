// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes one markdown page per awsh subcommand into DIR/commands.
// Usage: go run ./tools/docsgen DIR
//
// Examples are optional and read from DIR/examples.yaml, keyed by subcommand:
//
//	quote:
//	  - command: awsh quote -o json
//	    description: print a random quote as JSON
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/awsh/internal/command"
)

type Flag struct {
	ID          string
	Syntax      string
	Description string
	Env         string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	ID       string
	Short    string
	Usage    string
	Flags    []Flag
	Examples []Example
	Date     string
	Version  string
}

const page = `# awsh {{ .ID }}

{{ .Short }}

## Usage

    {{ .Usage }}

## Flags
{{ range .Flags }}
- ` + "`{{ .Syntax }}`" + ` {{ .Description }}{{ if .Env }} (env: {{ .Env }}){{ end }}
{{- end }}
{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}
_Generated {{ .Date }} for awsh {{ .Version }}._
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DIR")
		os.Exit(1)
	}
	docs := os.Args[1]

	examples, err := loadExamples(filepath.Join(docs, "examples.yaml"))
	if err != nil {
		panic(err)
	}

	app, err := command.InitApp([]string{"awsh"}, io.Discard, nil)
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("page").Parse(page))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	for _, sub := range app.Commands {
		if sub.Hidden {
			continue
		}

		metadata := TemplateData{
			ID:       sub.Name,
			Short:    sub.Usage,
			Usage:    sub.UsageText,
			Flags:    flagsOf(sub),
			Examples: examples[sub.Name],
			Date:     time.Now().Format("January 2, 2006"),
			Version:  getVersion(),
		}

		path := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", path)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := tmpl.Execute(file, metadata); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// flagsOf returns the visible flags of cmd sorted by name.
func flagsOf(cmd *cli.Command) []Flag {
	var flags []Flag
	for _, f := range cmd.Flags {
		if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
			continue
		}

		names := f.Names()
		syntax := make([]string, len(names))
		for i, n := range names {
			if len(n) == 1 {
				syntax[i] = "-" + n
			} else {
				syntax[i] = "--" + n
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			flag.Env = strings.Join(df.GetEnvVars(), ", ")
		}
		flags = append(flags, flag)
	}

	sort.Slice(flags, func(i, j int) bool {
		return flags[i].ID < flags[j].ID
	})
	return flags
}

// loadExamples reads the per-command examples file. A missing file yields no
// examples.
func loadExamples(path string) (map[string][]Example, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var examples map[string][]Example
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return examples, nil
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
