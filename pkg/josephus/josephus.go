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

// Package josephus solves the Josephus problem: count people stand in a
// circle, and every crossedOut-th remaining person is crossed out until a
// single survivor is left. See https://en.wikipedia.org/wiki/Josephus_problem.
package josephus

import "iter"

// CrossedOutPersons returns the positions of the people in the order in
// which they are crossed out of a circle of count people, where every
// crossedOut-th remaining person is crossed out. The survivor is not part
// of the sequence, so it has count - 1 values.
//
// The parameters are validated before the sequence is returned. The
// sequence is computed lazily and every iteration over it plays the game
// from the start on its own circle.
func CrossedOutPersons(count, crossedOut int) (iter.Seq[int], error) {
	if err := Validate(count, crossedOut); err != nil {
		return nil, err
	}

	return func(yield func(int) bool) {
		persons := newCircle(count)

		for persons.Len() > 1 {
			// Skipping a whole round returns the circle to where it was.
			persons.Skip((crossedOut - 1) % persons.Len())

			if !yield(persons.Remove()) {
				return
			}
		}
	}, nil
}

// Survivor returns the position of the person who is never crossed out of
// a circle of count people, where every crossedOut-th remaining person is
// crossed out. It doesn't play the game, and runs in O(count) time.
func Survivor(count, crossedOut int) (int, error) {
	if err := Validate(count, crossedOut); err != nil {
		return 0, err
	}

	// survivor is the zero-based position of the survivor in a circle of
	// i people, starting with the lone person in a circle of 1.
	survivor := 0
	for i := 2; i <= count; i++ {
		survivor = (survivor + crossedOut%i) % i
	}

	return survivor + 1, nil
}
