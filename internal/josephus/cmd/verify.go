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
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/josephus/internal/util"
	"laptudirm.com/x/josephus/pkg/josephus"
)

// josephus verify
func Verify(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify max-count",
		Short: "Check the survivor formula against played games",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`verify plays every game with 1 to max-count persons and a
			step size of 1 to max-crossed-out, and checks that every
			person but one is crossed out exactly once and that the
			person left over is the survivor given by the formula.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			maxCount, err := parseCount(args[0])
			if err != nil {
				return err
			}

			maxCrossedOut, err := cmd.Flags().GetInt("max-crossed-out")
			if err != nil {
				return err
			}

			if err := josephus.Validate(maxCount, maxCrossedOut); err != nil {
				name := "max-count"

				var invalid *josephus.InvalidArgumentError
				if errors.As(err, &invalid) && invalid.Param == josephus.ParamCrossedOut {
					name = "--max-crossed-out"
				}

				return fmt.Errorf("%s: %w", name, err)
			}

			s := util.NewSpinner(cmd.ErrOrStderr(), "Playing games...")
			s.Start()
			defer s.Stop()

			games := 0
			for count := 1; count <= maxCount; count++ {
				logrus.WithField("count", count).Trace("Verifying circle")
				for k := 1; k <= maxCrossedOut; k++ {
					if err := josephus.Verify(count, k); err != nil {
						return fmt.Errorf("verification \x1b[31mfailed\x1b[0m: %w", err)
					}

					games++
				}
			}

			s.Stop()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mVerified\x1b[0m %d games.\n", games)
			return err
		},
	}

	cmd.Flags().Int("max-crossed-out", 10, "Largest step size to verify")
	return cmd
}
