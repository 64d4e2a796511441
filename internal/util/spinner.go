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

package util

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

const SPIN = 31

// NewSpinner returns a stopped ~working~ spinner which draws on w. The
// spinner only draws if w is a terminal, and never while trace logging is
// on since the trace output would be garbled by it.
func NewSpinner(w io.Writer, suffix string) *spinner.Spinner {
	option := spinner.WithWriter(w)

	// The terminal check can only be made on a file.
	file, isFile := w.(*os.File)
	if isFile {
		option = spinner.WithWriterFile(file)
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, option)
	s.Suffix = " " + suffix

	if !isFile || logrus.IsLevelEnabled(logrus.TraceLevel) {
		s.Disable()
	}

	return s
}
