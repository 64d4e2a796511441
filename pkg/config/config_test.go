// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/josephus/pkg/config"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name string
		data string
		want config.Config
	}{
		{
			name: "full_file",
			data: "crossed-out: 7\nformat: yaml\n",
			want: config.Config{CrossedOut: 7, Format: config.FormatYAML},
		},
		{
			name: "partial_file_keeps_defaults",
			data: "crossed-out: 2\n",
			want: config.Config{CrossedOut: 2, Format: config.FormatText},
		},
		{
			name: "empty_file",
			data: "",
			want: config.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.Load(writeConfig(t, tt.data))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_Load_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "zero_crossed_out", data: "crossed-out: 0\n", want: "crossed-out"},
		{name: "negative_crossed_out", data: "crossed-out: -2\n", want: "crossed-out"},
		{name: "unknown_format", data: "format: json\n", want: "unknown format"},
		{name: "malformed_yaml", data: "crossed-out: [\n", want: "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func Test_Load_MissingExplicitPath(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_ValidateFormat(t *testing.T) {
	assert.NoError(t, config.ValidateFormat(config.FormatText))
	assert.NoError(t, config.ValidateFormat(config.FormatYAML))
	assert.Error(t, config.ValidateFormat(""))
	assert.Error(t, config.ValidateFormat("TEXT"))
}

func Test_Default(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

// useConfigHome points the xdg config directories at an empty temporary
// directory for the duration of the test, and returns it.
func useConfigHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()

	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	return home
}

func Test_Load_SearchesConfigHome(t *testing.T) {
	home := useConfigHome(t)

	got, err := config.Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), got); diff != "" {
		t.Errorf("config without a file mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(home, "josephus", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("crossed-out: 6\nformat: yaml\n"), 0644))

	got, err = config.Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(config.Config{CrossedOut: 6, Format: config.FormatYAML}, got); diff != "" {
		t.Errorf("config from %s mismatch (-want +got):\n%s", path, diff)
	}
}

func Test_Load_InvalidFileInConfigHome(t *testing.T) {
	home := useConfigHome(t)

	path := filepath.Join(home, "josephus", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("crossed-out: 0\n"), 0644))

	_, err := config.Load("")
	assert.ErrorContains(t, err, path)
}

func Test_Path(t *testing.T) {
	home := useConfigHome(t)

	path, err := config.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "josephus", "config.yaml"), path)
}
