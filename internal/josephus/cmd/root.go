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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/josephus/pkg/config"
)

// options holds the state shared by every command of a single run.
type options struct {
	trace      bool
	configPath string
	format     string

	config config.Config
}

// load reads the configuration and applies the global flags over it.
func (opts *options) load() error {
	var err error
	opts.config, err = config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.format != "" {
		if err := config.ValidateFormat(opts.format); err != nil {
			return err
		}

		opts.config.Format = opts.format
	}

	logrus.WithFields(logrus.Fields{
		"crossed-out": opts.config.CrossedOut,
		"format":      opts.config.Format,
	}).Trace("Effective configuration")

	return nil
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "josephus",
		Short: "Solve the Josephus problem",
		Long: heredoc.Doc(`josephus solves the Josephus problem: count people stand in
			a circle, and going around the circle every crossed-out-th
			person still standing is crossed out until a single person,
			the survivor, is left.

			The default step size and output format are read from
			$XDG_CONFIG_HOME/josephus/config.yaml if it exists.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			if opts.trace {
				logrus.SetLevel(logrus.TraceLevel)
			}

			return opts.load()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Josephus's Version")
	root.PersistentFlags().BoolVarP(&opts.trace, "trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Read the configuration from this file")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "Output format, text or yaml")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Survivor(opts))
	root.AddCommand(CrossedOut(opts))
	root.AddCommand(Verify(opts))
	root.AddCommand(Config(opts))

	return root
}
