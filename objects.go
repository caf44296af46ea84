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

// objectNodes splits text into inline objects:
// markup spans, links, and plain text.
// Anything that is not recognized as an object becomes a [TextKind] token,
// so the returned elements always cover all of the input.
func objectNodes(in input) []Element {
	var elems []Element
	plainStart := 0
	for pos := 0; pos < in.len(); {
		var obj Element
		n := 0
		switch c := in.s[pos]; c {
		case '*', '/', '_', '+', '=', '~':
			if canOpenMarkup(in.s, pos) {
				obj, n = markupNode(in.take(pos), c)
			}
		case '[':
			obj, n = linkNode(in.take(pos))
		}
		if obj.IsZero() {
			pos++
			continue
		}
		if plainStart < pos {
			elems = append(elems, in.slice(plainStart, pos).token(TextKind))
		}
		elems = append(elems, obj)
		pos += n
		plainStart = pos
	}
	if plainStart < in.len() {
		elems = append(elems, in.take(plainStart).token(TextKind))
	}
	return elems
}

// canOpenMarkup reports whether the marker at s[pos]
// is in a position where it may open a markup span.
func canOpenMarkup(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	switch s[pos-1] {
	case ' ', '\t', '\n', '\r', '-', '(', '{', '\'', '"':
		return true
	default:
		return false
	}
}

// markupNode parses a markup span like "*bold*" or "=verbatim="
// at the start of the input.
// It returns the zero Element if the input does not start with a valid span.
func markupNode(in input, marker byte) (_ Element, n int) {
	if in.len() < 3 {
		return Element{}, 0
	}
	body, _, ok := parseMarkupSpan(in.s, marker)
	if !ok || body == "" {
		return Element{}, 0
	}
	kinds := markupKinds[marker]
	n = len(body) + 2
	b := new(nodeBuilder)
	b.push(kinds.marker, in.slice(0, 1))
	bodyInput := in.slice(1, n-1)
	switch kinds.node {
	case VerbatimKind, CodeKind:
		b.pushText(bodyInput)
	default:
		b.pushElements(objectNodes(bodyInput))
	}
	b.push(kinds.marker, in.slice(n-1, n))
	return b.finish(kinds.node), n
}

// linkNode parses a bracket link like "[[path]]" or "[[path][description]]"
// at the start of the input.
// It returns the zero Element if the input does not start with a link.
func linkNode(in input) (_ Element, n int) {
	if !strings.HasPrefix(in.s, "[[") {
		return Element{}, 0
	}
	pathEnd := strings.IndexAny(in.s[2:], "[]\n")
	if pathEnd <= 0 || in.s[2+pathEnd] != ']' {
		return Element{}, 0
	}
	pathEnd += 2

	b := new(nodeBuilder)
	b.push(LBracket2Kind, in.slice(0, 2))
	b.push(LinkPathKind, in.slice(2, pathEnd))
	rest := in.s[pathEnd:]
	switch {
	case strings.HasPrefix(rest, "]]"):
		n = pathEnd + 2
		b.push(RBracket2Kind, in.slice(pathEnd, n))
	case strings.HasPrefix(rest, "]["):
		descStart := pathEnd + 2
		descLen := strings.Index(in.s[descStart:], "]]")
		if descLen <= 0 {
			return Element{}, 0
		}
		descEnd := descStart + descLen
		n = descEnd + 2
		b.push(RBracketKind, in.slice(pathEnd, pathEnd+1))
		b.push(LBracketKind, in.slice(pathEnd+1, descStart))
		b.pushText(in.slice(descStart, descEnd))
		b.push(RBracket2Kind, in.slice(descEnd, n))
	default:
		return Element{}, 0
	}
	return b.finish(LinkKind), n
}
