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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(c *circle) []int {
	var people []int
	for c.Len() > 0 {
		people = append(people, c.Remove())
	}
	return people
}

func Test_Circle_SeededInOrder(t *testing.T) {
	c := newCircle(5)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, drain(c))
}

func Test_Circle_SkipWrapsAround(t *testing.T) {
	c := newCircle(4)
	c.Skip(3)
	assert.Equal(t, []int{4, 1, 2, 3}, drain(c))

	c = newCircle(4)
	c.Skip(4)
	assert.Equal(t, []int{1, 2, 3, 4}, drain(c))
}

func Test_Circle_SkipAfterRemove(t *testing.T) {
	c := newCircle(5)
	c.Skip(1)
	assert.Equal(t, 2, c.Remove())
	assert.Equal(t, 4, c.Len())

	// 3 4 5 1
	c.Skip(5)
	assert.Equal(t, []int{4, 5, 1, 3}, drain(c))
}
