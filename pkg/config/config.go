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

package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the location of the configuration file relative to the xdg
// config directories.
const File = "josephus/config.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Config struct {
	// CrossedOut is the step size used when a command isn't given one.
	CrossedOut int    `yaml:"crossed-out"`
	Format     string `yaml:"format"`
}

func Default() Config {
	return Config{
		CrossedOut: 3,
		Format:     FormatText,
	}
}

// Path returns the location where the configuration file should be put.
func Path() (string, error) {
	return xdg.ConfigFile(File)
}

// Load reads the configuration file at path. An empty path means the file
// is searched for in the xdg config directories, and the default
// configuration is used if it isn't found there.
func Load(path string) (Config, error) {
	config := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(File)
		if err != nil {
			logrus.WithField("file", File).Debug("No configuration file found")
			return config, nil
		}

		path = found
	}

	logrus.WithField("path", path).Debug("Loading configuration")

	file, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

func (config Config) Validate() error {
	if config.CrossedOut < 1 {
		return fmt.Errorf("crossed-out must be greater than 0, got %d", config.CrossedOut)
	}

	return ValidateFormat(config.Format)
}

func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected %s or %s", format, FormatText, FormatYAML)
	}
}
