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

package josephus

import "errors"

// Names of the parameters an InvalidArgumentError can refer to.
const (
	ParamCount      = "count"
	ParamCrossedOut = "crossed_out"
)

// ErrInvalidArgument is matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a parameter which violated its precondition.
type InvalidArgumentError struct {
	Param   string // ParamCount or ParamCrossedOut
	Message string
}

func (err *InvalidArgumentError) Error() string {
	return "invalid argument " + err.Param + ": " + err.Message
}

func (err *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Validate checks the parameters shared by CrossedOutPersons and Survivor.
// The count is checked before the step size.
func Validate(count, crossedOut int) error {
	if count < 1 {
		return &InvalidArgumentError{
			Param:   ParamCount,
			Message: "count of persons in the circle must be greater than 0",
		}
	}

	if crossedOut < 1 {
		return &InvalidArgumentError{
			Param:   ParamCrossedOut,
			Message: "the number of the person to be crossed out must be greater than 0",
		}
	}

	return nil
}
