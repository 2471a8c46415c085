// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for awsh's user
// configuration. The configuration is a YAML document found at $AWSH_CFG_FILE
// or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/awsh.yaml or $HOME/.config/awsh.yaml
//   - macOS: $HOME/Library/Application Support/awsh.yaml
//   - Windows: %APPDATA%/awsh.yaml
//
// Keys may be namespaced by subcommand, e.g. "demo.parameter" is preferred
// over "parameter" while the demo command runs.
package config
