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

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Result is the record printed by the commands in yaml format.
type Result struct {
	Count             int   `yaml:"count"`
	CrossedOut        int   `yaml:"crossed-out"`
	CrossedOutPersons []int `yaml:"crossed-out-persons,omitempty,flow"`
	Survivor          int   `yaml:"survivor"`
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}

func parseCount(arg string) (int, error) {
	count, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("count %q is not an integer", arg)
	}

	return count, nil
}

// crossedOut returns the value of the --crossed-out flag, or the configured
// default if the flag wasn't provided.
func (opts *options) crossedOut(cmd *cobra.Command) (int, error) {
	if flag := cmd.Flag("crossed-out"); flag != nil && flag.Changed {
		return cmd.Flags().GetInt("crossed-out")
	}

	return opts.config.CrossedOut, nil
}

func addCrossedOutFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("crossed-out", "k", 0, "Cross out every k-th person (default from config)")
}
