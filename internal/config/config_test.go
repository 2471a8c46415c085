// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig points AWSH_CFG_FILE at a testdata file, resets the global
// Config, and runs fn.
func withConfig(t *testing.T, testdataFile string, fn func(t *testing.T)) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)
	t.Setenv(EnvFile, absPath)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "eu-west-2", cfg.Data["region"])
				assert.Equal(t, "sandbox", cfg.Data["profile"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				demo, ok := cfg.Data["demo"].(map[string]interface{})
				require.True(t, ok, "demo should be a map")
				assert.Equal(t, "/temp/sprint/s3/bucket_name", demo["parameter"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				cfg, err := Load()
				require.NoError(t, err)
				assert.Equal(t, filepath.Base(cfg.Source), tt.testFile)
				tt.checkFunc(t, cfg)
			})
		})
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "nested.yaml"))
		require.NoError(t, err)
		assert.Contains(t, cfg.Data, "demo")
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		errMsg string
	}{
		{"missing file", "/nonexistent/path/awsh.yaml", "config file not found"},
		{"directory", "testdata", "points to a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFile, tt.env)
			Config = Type{}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		namespace    string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{"simple", "simple.yaml", "", "region", nil, "eu-west-2", false},
		{"nested", "nested.yaml", "", "demo.parameter", nil, "/temp/sprint/s3/bucket_name", false},
		{"namespaced wins", "nested.yaml", "demo", "region", nil, "us-east-1", false},
		{"namespace falls back", "nested.yaml", "put", "region", nil, "eu-west-2", false},
		{"missing with default", "simple.yaml", "", "missing", []string{"fallback"}, "fallback", false},
		{"missing without default", "simple.yaml", "", "missing", nil, "", true},
		{"non-string", "mixed-types.yaml", "", "version", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				SetNamespace(tt.namespace)

				got, err := GetString(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{"int", "mixed-types.yaml", "version", nil, 1, false},
		{"float truncated", "mixed-types.yaml", "timeout", nil, 30, false},
		{"nested", "nested.yaml", "put.retries", nil, 3, false},
		{"missing with default", "simple.yaml", "missing", []int{7}, 7, false},
		{"missing without default", "simple.yaml", "missing", nil, 0, true},
		{"non-int", "simple.yaml", "region", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, tt.testFile, func(t *testing.T) {
				got, err := GetInt(tt.key, tt.defaultValue...)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		got, err := GetStringSlice("keys")
		require.NoError(t, err)
		assert.Equal(t, []string{"sonnets/sonnet18.txt", "sonnets/sonnet29.txt"}, got)

		_, err = GetStringSlice("bad-keys")
		assert.EqualError(t, err, "slice element is not a string")

		_, err = GetStringSlice("name")
		assert.EqualError(t, err, "value is not a slice")

		got, err = GetStringSlice("missing", []string{"a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)
	})
}

func TestSource(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		assert.Equal(t, "simple.yaml", filepath.Base(Source()))
	})
}
