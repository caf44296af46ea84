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

import "strings"

// PreBlank returns the number of blank lines
// at the start of a [DocumentKind] node
// or zero for any other node.
func (n *Node) PreBlank() int {
	if n.Kind() != DocumentKind {
		return 0
	}
	return countBlankLines(n.Children())
}

// PostBlank returns the number of blank lines that follow the node's contents.
// For a [HeadlineKind] node, these are the blank lines after the headline line,
// before its section and sub-headlines.
// For other nodes, these are the blank lines at the end of the node.
// Blank lines at the start of a document are counted by [Node.PreBlank].
func (n *Node) PostBlank() int {
	children := n.Children()
	if n.Kind() == HeadlineKind {
		for i, c := range children {
			if c.Kind() == NewLineKind {
				return countBlankLines(children[i+1:])
			}
		}
		return 0
	}
	count := 0
	for i := len(children) - 1; i >= 0 && children[i].Kind() == BlankLineKind; i-- {
		count++
	}
	return count
}

// countBlankLines returns the number of [BlankLineKind] elements
// at the start of elems.
func countBlankLines(elems []Element) int {
	count := 0
	for count < len(elems) && elems[count].Kind() == BlankLineKind {
		count++
	}
	return count
}

// Section returns the section directly inside a [DocumentKind] or [HeadlineKind] node
// or nil if the node does not have one.
func (n *Node) Section() *Node {
	switch n.Kind() {
	case DocumentKind, HeadlineKind:
		return n.firstChild(SectionKind).Node()
	default:
		return nil
	}
}

// Headlines returns the headlines directly inside
// a [DocumentKind] or [HeadlineKind] node.
func (n *Node) Headlines() []*Node {
	switch n.Kind() {
	case DocumentKind, HeadlineKind:
	default:
		return nil
	}
	var headlines []*Node
	for _, c := range n.Children() {
		if c.Kind() == HeadlineKind {
			headlines = append(headlines, c.Node())
		}
	}
	return headlines
}

// HeadlineLevel returns the number of stars of a [HeadlineKind] node
// or zero for any other node.
func (n *Node) HeadlineLevel() int {
	if n.Kind() != HeadlineKind {
		return 0
	}
	return n.firstChild(HeadlineStarsKind).Width()
}

// HeadlineKeyword returns the TODO keyword of a [HeadlineKind] node
// or the empty string if the headline does not have one.
func (n *Node) HeadlineKeyword() string {
	if n.Kind() != HeadlineKind {
		return ""
	}
	return n.firstChild(HeadlineKeywordKind).Text()
}

// HeadlinePriority returns the priority letter of a [HeadlineKind] node
// (for example 'A' for "[#A]")
// or zero if the headline does not have a priority.
func (n *Node) HeadlinePriority() byte {
	if n.Kind() != HeadlineKind {
		return 0
	}
	p := n.firstChild(HeadlinePriorityKind).Node()
	if p == nil {
		return 0
	}
	return p.firstChild(TextKind).Text()[0]
}

// HeadlineTitle returns the [HeadlineTitleKind] node of a [HeadlineKind] node
// or nil if the headline has no title.
func (n *Node) HeadlineTitle() *Node {
	if n.Kind() != HeadlineKind {
		return nil
	}
	return n.firstChild(HeadlineTitleKind).Node()
}

// HeadlineTags returns the tags of a [HeadlineKind] node.
func (n *Node) HeadlineTags() []string {
	if n.Kind() != HeadlineKind {
		return nil
	}
	var tags []string
	for _, c := range n.firstChild(HeadlineTagsKind).Node().Children() {
		if c.Kind() == TextKind {
			tags = append(tags, c.Text())
		}
	}
	return tags
}

// KeywordKey returns the key of a [KeywordKind] node,
// like "TITLE" for "#+TITLE: Hello".
func (n *Node) KeywordKey() string {
	if n.Kind() != KeywordKind {
		return ""
	}
	return n.firstChild(TextKind).Text()
}

// KeywordValue returns the value of a [KeywordKind] node,
// like "Hello" for "#+TITLE: Hello".
func (n *Node) KeywordValue() string {
	if n.Kind() != KeywordKind {
		return ""
	}
	afterColon := false
	for _, c := range n.Children() {
		switch {
		case c.Kind() == ColonKind:
			afterColon = true
		case afterColon && c.Kind() == TextKind:
			return c.Text()
		}
	}
	return ""
}

// LinkPath returns the path of a [LinkKind] node.
func (n *Node) LinkPath() string {
	if n.Kind() != LinkKind {
		return ""
	}
	return n.firstChild(LinkPathKind).Text()
}

// LinkDescription returns the description of a [LinkKind] node
// or the empty string if the link does not have one.
func (n *Node) LinkDescription() string {
	if n.Kind() != LinkKind {
		return ""
	}
	return n.firstChild(TextKind).Text()
}

// MarkupText returns the text between the markers
// of a [VerbatimKind] or [CodeKind] node.
func (n *Node) MarkupText() string {
	switch n.Kind() {
	case VerbatimKind, CodeKind:
		return n.firstChild(TextKind).Text()
	default:
		return ""
	}
}

// LinesText returns the text of a [CommentKind] or [FixedWidthKind] node
// without the leading markers,
// with one line per line of the node.
// A single space after each marker is removed.
func (n *Node) LinesText() string {
	var marker Kind
	switch n.Kind() {
	case CommentKind:
		marker = HashKind
	case FixedWidthKind:
		marker = ColonKind
	default:
		return ""
	}
	sb := new(strings.Builder)
	lines := 0
	afterMarker := false
	for _, c := range n.Children() {
		switch c.Kind() {
		case marker:
			if lines > 0 {
				sb.WriteString("\n")
			}
			lines++
			afterMarker = true
		case TextKind:
			if afterMarker {
				text := c.Text()
				if isSpace(text[0]) {
					text = text[1:]
				}
				sb.WriteString(text)
			}
		case NewLineKind, BlankLineKind:
			afterMarker = false
		}
	}
	return sb.String()
}
