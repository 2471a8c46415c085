// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsh/internal/config"
	"github.com/tfctl/awsh/internal/output"
)

// envVarSource is cli.EnvVar except that a variable set to "" counts as
// unset, so AWSH_REGION= falls through to the config file.
type envVarSource struct {
	key string
}

// EnvVar returns a value source for the environment variable key that skips
// empty values.
func EnvVar(key string) cli.ValueSource {
	return &envVarSource{key: key}
}

func (e *envVarSource) Lookup() (string, bool) {
	v, ok := os.LookupEnv(e.key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (e *envVarSource) IsFromEnv() bool { return true }
func (e *envVarSource) Key() string { return e.key }
func (e *envVarSource) String() string { return fmt.Sprintf("environment variable %q", e.key) }
func (e *envVarSource) GoString() string { return fmt.Sprintf("&envVarSource{key:%q}", e.key) }

// NewAWSFlags returns the flags every AWS-backed command carries. Each value
// resolves from the command line, then AWSH_* env vars, then the config file
// (namespaced "ns.flag" first, then "flag").
func NewAWSFlags(ns string) []cli.Flag {
	cfgPath := config.Source()

	str := func(name, usage, env string, hidden bool) *cli.StringFlag {
		flag := &cli.StringFlag{
			Name:    name,
			Usage:   usage,
			Hidden:  hidden,
			Sources: cli.NewValueSourceChain(EnvVar(env)),
		}
		if cfgPath != "" {
			flag = NameSpacedValueChainFlagFromConfigFile(ns, cfgPath, flag)
		}
		return flag
	}

	return []cli.Flag{
		str("profile", "shared config profile. Defaults to the SDK chain", "AWSH_PROFILE", false),
		str("region", "AWS region. Defaults to the SDK chain", "AWSH_REGION", false),
		str("endpoint", "service endpoint override, e.g. http://localhost:4566", "AWSH_ENDPOINT", false),
		str("access-key-id", "static access key id", "AWSH_ACCESS_KEY_ID", true),
		str("secret-access-key", "static secret access key", "AWSH_SECRET_ACCESS_KEY", true),
		str("session-token", "static session token", "AWSH_SESSION_TOKEN", true),
	}
}

// NewS3Flags returns flags specific to S3-backed commands.
func NewS3Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "path-style",
			Usage:   "use path-style bucket addressing",
			Sources: cli.NewValueSourceChain(EnvVar("AWSH_S3_PATH_STYLE")),
		},
	}
}

// NewOutputFlags returns the rendering flags for commands that print
// structured data.
func NewOutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   output.ColorDefault(),
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
