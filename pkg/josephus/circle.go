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

// circle is a fixed capacity FIFO ring holding the people who are still in
// the game, front first.
type circle struct {
	people []int

	front int // index of the person at the front
	size  int // number of people still in the circle
}

// newCircle returns a circle seeded with the people 1..count in order.
func newCircle(count int) *circle {
	people := make([]int, count)
	for i := range people {
		people[i] = i + 1
	}

	return &circle{
		people: people,
		size:   count,
	}
}

func (c *circle) Len() int {
	return c.size
}

// Skip moves the n people at the front of the circle to its back, one
// after the other.
func (c *circle) Skip(n int) {
	for ; n > 0; n-- {
		back := (c.front + c.size) % len(c.people)
		c.people[back] = c.people[c.front]
		c.front = c.next(c.front)
	}
}

// Remove takes the person at the front out of the circle.
func (c *circle) Remove() int {
	person := c.people[c.front]
	c.front = c.next(c.front)
	c.size--
	return person
}

func (c *circle) next(i int) int {
	i++
	if i == len(c.people) {
		i = 0
	}
	return i
}
