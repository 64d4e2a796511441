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

import "fmt"

// Verify plays the game for the given parameters and checks that every
// person except one is crossed out exactly once, and that the person left
// over is the one reported by Survivor.
func Verify(count, crossedOut int) error {
	persons, err := CrossedOutPersons(count, crossedOut)
	if err != nil {
		return err
	}

	seen := make([]bool, count+1)
	crossed := 0

	for person := range persons {
		if person < 1 || person > count {
			return fmt.Errorf("josephus(%d, %d): crossed out person %d is not in the circle", count, crossedOut, person)
		}

		if seen[person] {
			return fmt.Errorf("josephus(%d, %d): person %d crossed out twice", count, crossedOut, person)
		}

		seen[person] = true
		crossed++
	}

	if crossed != count-1 {
		return fmt.Errorf("josephus(%d, %d): %d persons crossed out, expected %d", count, crossedOut, crossed, count-1)
	}

	left := 0
	for person := 1; person <= count; person++ {
		if !seen[person] {
			left = person
			break
		}
	}

	survivor, err := Survivor(count, crossedOut)
	if err != nil {
		return err
	}

	if left != survivor {
		return fmt.Errorf("josephus(%d, %d): person %d left in the circle, survivor is %d", count, crossedOut, left, survivor)
	}

	return nil
}
