// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
threshold: 0.6
width: 120
color: true
output: text
header:
  left: Running
  right: Candidate
colors:
  deleteBg: "#ffdddd"
diff:
  output: json
  defaults:
    - --summary
    - --output yaml
retries: 3
`

// setupTestConfig writes body to a temporary sbsdiff.yaml and points
// SBSDIFF_CFG_FILE at it. The global Config is reset before and after.
func setupTestConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sbsdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("SBSDIFF_CFG_FILE", path)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	return path
}

// withConfig sets up a test config, loads it and executes fn.
func withConfig(t *testing.T, body string, fn func(t *testing.T)) {
	t.Helper()
	setupTestConfig(t, body)
	_, err := Load()
	require.NoError(t, err)
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name: "nested structure",
			body: sampleConfig,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				header, ok := cfg.Data["header"].(map[string]interface{})
				require.True(t, ok, "header should be a map")
				assert.Equal(t, "Running", header["left"])
				assert.Equal(t, 0.6, cfg.Data["threshold"])
			},
		},
		{
			name: "empty file",
			body: "",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:    "malformed yaml",
			body:    "colors: [unterminated",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.body)

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("SBSDIFF_CFG_FILE", "/nonexistent/path/sbsdiff.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("SBSDIFF_CFG_FILE", t.TempDir())
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_KeepsNamespace(t *testing.T) {
	setupTestConfig(t, sampleConfig)
	Config.Namespace = "diff"

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "diff", cfg.Namespace)
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple string value", key: "output", want: "text"},
		{name: "nested string value", key: "colors.deleteBg", want: "#ffdddd"},
		{name: "missing key with default", key: "missing", defaultValue: []string{"fallback"}, want: "fallback"},
		{name: "missing key without default", key: "missing", wantErr: true},
		{name: "non-string value", key: "width", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, sampleConfig, func(t *testing.T) {
				got, err := GetString(tt.key, tt.defaultValue...)

				if tt.wantErr {
					assert.Error(t, err)
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int value", key: "width", want: 120},
		{name: "float value converted to int", key: "threshold", want: 0},
		{name: "missing key with default", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "missing key without default", key: "missing", wantErr: true},
		{name: "non-int value", key: "output", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, sampleConfig, func(t *testing.T) {
				got, err := GetInt(tt.key, tt.defaultValue...)

				if tt.wantErr {
					assert.Error(t, err)
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestGetFloat(t *testing.T) {
	withConfig(t, sampleConfig, func(t *testing.T) {
		got, err := GetFloat("threshold")
		assert.NoError(t, err)
		assert.Equal(t, 0.6, got)

		got, err = GetFloat("retries")
		assert.NoError(t, err)
		assert.Equal(t, 3.0, got, "ints widen to float")

		got, err = GetFloat("missing", 0.5)
		assert.NoError(t, err)
		assert.Equal(t, 0.5, got)

		_, err = GetFloat("output")
		assert.Error(t, err)
	})
}

func TestGetBool(t *testing.T) {
	withConfig(t, sampleConfig, func(t *testing.T) {
		got, err := GetBool("color")
		assert.NoError(t, err)
		assert.True(t, got)

		got, err = GetBool("missing", true)
		assert.NoError(t, err)
		assert.True(t, got)

		_, err = GetBool("width")
		assert.Error(t, err)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, sampleConfig, func(t *testing.T) {
		got, err := GetStringSlice("diff.defaults")
		assert.NoError(t, err)
		assert.Equal(t, []string{"--summary", "--output yaml"}, got)

		got, err = GetStringSlice("missing", []string{"a"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"a"}, got)

		_, err = GetStringSlice("output")
		assert.Error(t, err)
	})
}

func TestConfig_GetWithNamespace(t *testing.T) {
	withConfig(t, sampleConfig, func(t *testing.T) {
		Config.Namespace = "diff"

		// Namespaced value wins.
		val, err := Config.get("output")
		assert.NoError(t, err)
		assert.Equal(t, "json", val)

		// Falls back to the global key.
		val, err = Config.get("width")
		assert.NoError(t, err)
		assert.Equal(t, 120, val)

		_, err = Config.get("nope")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "diff.nope")
	})
}

func TestLazyLoad(t *testing.T) {
	setupTestConfig(t, sampleConfig)
	require.Empty(t, Config.Data)

	got, err := GetString("header.right")
	assert.NoError(t, err)
	assert.Equal(t, "Candidate", got)
	assert.NotEmpty(t, Config.Source)
}
