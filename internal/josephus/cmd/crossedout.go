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
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/josephus/pkg/config"
	"laptudirm.com/x/josephus/pkg/josephus"
)

// josephus crossed-out
func CrossedOut(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crossed-out count",
		Short: "Print the persons in the order they are crossed out",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`crossed-out prints the positions of the persons in the order
			in which they are crossed out of the circle. The survivor
			is never crossed out, so count - 1 positions are printed.

			In text format every position is printed on its own line
			as soon as it is crossed out. In yaml format the whole
			sequence is printed together with the survivor.`),

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
			}).Debug("Crossing out persons")

			persons, err := josephus.CrossedOutPersons(count, k)
			if err != nil {
				return err
			}

			if opts.config.Format == config.FormatYAML {
				survivor, err := josephus.Survivor(count, k)
				if err != nil {
					return err
				}

				return writeYAML(cmd.OutOrStdout(), Result{
					Count:             count,
					CrossedOut:        k,
					CrossedOutPersons: slices.Collect(persons),
					Survivor:          survivor,
				})
			}

			for person := range persons {
				logrus.WithField("person", person).Trace("Crossed out")
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), person); err != nil {
					return err
				}
			}

			return nil
		},
	}

	addCrossedOutFlag(cmd)
	return cmd
}
