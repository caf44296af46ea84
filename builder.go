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

import "fmt"

// nodeBuilder accumulates the children of a node under construction.
// A builder is frozen into an immutable [Node] by finish
// and must not be used afterward.
type nodeBuilder struct {
	children []Element
	done     bool
}

// pushWhitespace appends a [WhitespaceKind] token if ws is not empty.
func (b *nodeBuilder) pushWhitespace(ws input) {
	if ws.isEmpty() {
		return
	}
	if debugAssertions && !isHorizontalSpace(ws.s) {
		panic(fmt.Sprintf("%q is not horizontal whitespace", ws.s))
	}
	b.pushElement(ws.token(WhitespaceKind))
}

// pushLineEnding appends a [NewLineKind] token if nl is not empty.
func (b *nodeBuilder) pushLineEnding(nl input) {
	if nl.isEmpty() {
		return
	}
	if debugAssertions && nl.s != "\n" && nl.s != "\r\n" {
		panic(fmt.Sprintf("%q is not a line ending", nl.s))
	}
	b.pushElement(nl.token(NewLineKind))
}

// pushText appends a [TextKind] token.
func (b *nodeBuilder) pushText(text input) {
	b.pushElement(text.token(TextKind))
}

// push appends a token of the given kind.
func (b *nodeBuilder) push(kind Kind, text input) {
	b.pushElement(text.token(kind))
}

func (b *nodeBuilder) pushElement(e Element) {
	if b.done {
		panic("push on finished nodeBuilder")
	}
	b.children = append(b.children, e)
}

// pushElementIfPresent appends e unless it is the zero Element.
func (b *nodeBuilder) pushElementIfPresent(e Element) {
	if !e.IsZero() {
		b.pushElement(e)
	}
}

func (b *nodeBuilder) pushElements(elems []Element) {
	for _, e := range elems {
		b.pushElement(e)
	}
}

// finish returns the accumulated children as a new node.
func (b *nodeBuilder) finish(kind Kind) Element {
	if b.done {
		panic("finish called twice on nodeBuilder")
	}
	b.done = true
	n := &Node{kind: kind, children: b.children}
	for _, c := range b.children {
		n.width += c.Width()
	}
	b.children = nil
	return n.AsElement()
}
