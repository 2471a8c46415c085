// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsh/internal/config"
	"github.com/tfctl/awsh/internal/version"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"long flag", []string{"awsh", "--version"}, true},
		{"short flag", []string{"awsh", "-v"}, true},
		{"no flag", []string{"awsh", "quote"}, false},
		{"empty", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handleVersion(tt.args))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"awsh", "--help"}, handleNakedCommand([]string{"awsh"}))
	assert.Equal(t, []string{"awsh", "quote"}, handleNakedCommand([]string{"awsh", "quote"}))
}

func TestRealMain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	prev := config.Config
	t.Cleanup(func() { config.Config = prev })

	t.Run("version", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := realMain([]string{"awsh", "--version"}, &stdout, &stderr, nil)

		assert.Equal(t, 0, code)
		assert.Equal(t, version.Version+"\n", stdout.String())
	})

	t.Run("naked prints help", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := realMain([]string{"awsh"}, &stdout, &stderr, nil)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "quote")
		assert.Contains(t, stdout.String(), "demo")
	})

	t.Run("quote", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := realMain([]string{"awsh", "quote", "-o", "json"}, &stdout, &stderr, nil)

		require.Equal(t, 0, code, stderr.String())
		var got map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.EqualValues(t, 200, got["status"])
	})

	t.Run("command error exits 2", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := realMain([]string{"awsh", "put", "only-one-arg"}, &stdout, &stderr, nil)

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "expected 3 argument(s)")
	})

	t.Run("bad config exits 1", func(t *testing.T) {
		t.Setenv("AWSH_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		var stdout, stderr bytes.Buffer
		code := realMain([]string{"awsh", "quote"}, &stdout, &stderr, nil)

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "failed to load config")
	})

	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		quotes := filepath.Join(dir, "quotes.yaml")
		require.NoError(t, os.WriteFile(quotes, []byte("- content: abc\n  author: me\n"), 0o600))
		cfg := filepath.Join(dir, "awsh.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("quote:\n  files:\n    - "+quotes+"\n"), 0o600))
		t.Setenv("AWSH_CFG_FILE", cfg)

		var stdout, stderr bytes.Buffer
		code := realMain([]string{"awsh", "quote", "-o", "yaml"}, &stdout, &stderr, nil)

		require.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "author: me")
	})
}
