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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/josephus/pkg/config"
	"laptudirm.com/x/josephus/pkg/josephus"
)

// josephus survivor
func Survivor(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survivor count",
		Short: "Print the position of the survivor",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}

			k, err := opts.crossedOut(cmd)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"count":       count,
				"crossed-out": k,
			}).Debug("Computing survivor")

			survivor, err := josephus.Survivor(count, k)
			if err != nil {
				return err
			}

			if opts.config.Format == config.FormatYAML {
				return writeYAML(cmd.OutOrStdout(), Result{
					Count:      count,
					CrossedOut: k,
					Survivor:   survivor,
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), survivor)
			return err
		},
	}

	addCrossedOutFlag(cmd)
	return cmd
}
