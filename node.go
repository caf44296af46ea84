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

import (
	"io"
	"strings"
	"unsafe"
)

const (
	elementTypeNode = 1 + iota
	elementTypeToken
)

// Element is a pointer to a [Node] or a [Token].
// Elements can be compared for equality using the == operator.
// The zero value is an absent element.
type Element struct {
	ptr unsafe.Pointer
	typ uint8
}

// Node returns the referenced node
// or nil if the element does not reference a node.
func (e Element) Node() *Node {
	if e.typ != elementTypeNode {
		return nil
	}
	return (*Node)(e.ptr)
}

// Token returns the referenced token
// or nil if the element does not reference a token.
func (e Element) Token() *Token {
	if e.typ != elementTypeToken {
		return nil
	}
	return (*Token)(e.ptr)
}

// IsZero reports whether the element is absent.
func (e Element) IsZero() bool {
	return e.typ == 0
}

// Kind returns the kind of the referenced element
// or zero if the element is absent.
func (e Element) Kind() Kind {
	if n := e.Node(); n != nil {
		return n.Kind()
	}
	return e.Token().Kind()
}

// Width returns the number of source bytes the element covers.
func (e Element) Width() int {
	if n := e.Node(); n != nil {
		return n.Width()
	}
	return e.Token().Width()
}

// Text returns the source text the element covers.
func (e Element) Text() string {
	if n := e.Node(); n != nil {
		return n.Text()
	}
	return e.Token().Text()
}

// ChildCount returns the number of children the element has.
// Tokens and absent elements have no children.
func (e Element) ChildCount() int {
	return e.Node().ChildCount()
}

// Child returns the i'th child of the element.
func (e Element) Child(i int) Element {
	if n := e.Node(); n != nil {
		return n.Child(i)
	}
	panic("Child on non-node Element")
}

// A Token is a leaf of the syntax tree:
// a verbatim run of source text tagged with a kind.
type Token struct {
	kind Kind
	text string
}

// NewToken returns a new token covering text.
func NewToken(kind Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

// Kind returns the token's kind or zero if the token is nil.
func (tok *Token) Kind() Kind {
	if tok == nil {
		return 0
	}
	return tok.kind
}

// Text returns the token's source text.
func (tok *Token) Text() string {
	if tok == nil {
		return ""
	}
	return tok.text
}

// Width returns the length of the token's text in bytes.
func (tok *Token) Width() int {
	return len(tok.Text())
}

// AsElement converts the token to an [Element] pointer.
func (tok *Token) AsElement() Element {
	if tok == nil {
		return Element{}
	}
	return Element{
		typ: elementTypeToken,
		ptr: unsafe.Pointer(tok),
	}
}

// A Node is an interior element of the syntax tree.
// Nodes are immutable once created.
type Node struct {
	kind     Kind
	width    int
	children []Element
}

// NewNode returns a new node with the given children.
// Absent children are skipped.
// NewNode does not retain the children slice.
func NewNode(kind Kind, children ...Element) *Node {
	n := &Node{
		kind:     kind,
		children: make([]Element, 0, len(children)),
	}
	for _, c := range children {
		if c.IsZero() {
			continue
		}
		n.width += c.Width()
		n.children = append(n.children, c)
	}
	return n
}

// Kind returns the node's kind or zero if the node is nil.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Width returns the number of source bytes the node covers,
// which is the sum of its children's widths.
func (n *Node) Width() int {
	if n == nil {
		return 0
	}
	return n.width
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i'th child of the node.
func (n *Node) Child(i int) Element {
	return n.children[i]
}

// Children returns the node's children.
// The caller must not modify the returned slice.
func (n *Node) Children() []Element {
	if n == nil {
		return nil
	}
	return n.children
}

// Text returns the concatenation of the text of every token under the node.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	sb := new(strings.Builder)
	sb.Grow(n.width)
	n.appendText(sb)
	return sb.String()
}

func (n *Node) appendText(sb *strings.Builder) {
	for _, c := range n.children {
		if tok := c.Token(); tok != nil {
			sb.WriteString(tok.text)
		} else {
			c.Node().appendText(sb)
		}
	}
}

// WriteTo writes the node's source text to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	k, err := io.WriteString(w, n.Text())
	return int64(k), err
}

// AsElement converts the node to an [Element] pointer.
func (n *Node) AsElement() Element {
	if n == nil {
		return Element{}
	}
	return Element{
		typ: elementTypeNode,
		ptr: unsafe.Pointer(n),
	}
}

// firstChild returns the first child of the given kind
// or the zero Element if the node has no such child.
func (n *Node) firstChild(kind Kind) Element {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return Element{}
}
