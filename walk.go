// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package org

// A Cursor describes an [Element] encountered during [Walk].
type Cursor struct {
	elem   Element
	parent Element
	offset int
}

// Element returns the current [Element].
func (c *Cursor) Element() Element {
	return c.elem
}

// Parent returns the parent of the current [Element]
// or the zero Element for the root.
func (c *Cursor) Parent() Element {
	return c.parent
}

// Offset returns the byte offset of the current [Element]
// relative to the start of the root passed to [Walk].
func (c *Cursor) Offset() int {
	return c.offset
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each element before the element's children are traversed (pre-order).
	// If Pre returns false, no children are traversed, and Post is not called for that element.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each element after the element's children are traversed (post-order).
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses an [Element] recursively, starting with root,
// and calling [WalkOptions.Pre] and [WalkOptions.Post].
func Walk(root Element, opts *WalkOptions) {
	type walkFrame struct {
		elem   Element
		parent Element
		offset int
		post   bool
	}

	stack := []walkFrame{{elem: root}}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cursor.elem = curr.elem
		cursor.parent = curr.parent
		cursor.offset = curr.offset
		if curr.post {
			if opts.Post != nil && !opts.Post(cursor) {
				break
			}
			continue
		}

		if opts.Pre != nil && !opts.Pre(cursor) {
			continue
		}
		curr.post = true
		stack = append(stack, curr)
		children := curr.elem.Node().Children()
		end := curr.offset + curr.elem.Width()
		for i := len(children) - 1; i >= 0; i-- {
			end -= children[i].Width()
			stack = append(stack, walkFrame{
				elem:   children[i],
				parent: curr.elem,
				offset: end,
			})
		}
	}
}
