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
	"iter"
	"strings"
)

// blankLines consumes every blank line at the start of the input.
// A blank line is zero or more spaces or tabs
// followed by a line ending or the end of input.
// Each line becomes one [BlankLineKind] node.
// blankLines stops at the first line that is not blank
// and never consumes any part of it.
func blankLines(in input) ([]Element, input) {
	var lines []Element
	for !in.isEmpty() {
		wsEnd := spaceLen(in.s)
		nlEnd := wsEnd + lineEndingLen(in.s[wsEnd:])
		if nlEnd == wsEnd && nlEnd < in.len() {
			break
		}
		ws, rest := in.splitAt(wsEnd)
		nl, rest := rest.splitAt(nlEnd - wsEnd)
		b := new(nodeBuilder)
		b.pushWhitespace(ws)
		b.pushLineEnding(nl)
		lines = append(lines, b.finish(BlankLineKind))
		in = rest
	}
	return lines, in
}

// trimLineEnd splits the first line of the input
// into its contents up to the last non-whitespace byte,
// the trailing whitespace, and the line ending.
// Any of the three may be empty.
func trimLineEnd(in input) (rest, contents, ws, nl input) {
	line, rest := in.splitAt(firstLineEnd(in.s))
	body := len(line.s) - trailingLineEndingLen(line.s)
	contentEnd := body
	for contentEnd > 0 && isSpace(line.s[contentEnd-1]) {
		contentEnd--
	}
	contents, tail := line.splitAt(contentEnd)
	ws, nl = tail.splitAt(body - contentEnd)
	return rest, contents, ws, nl
}

// TrimLineEnd splits the first line of s
// into its contents, any trailing spaces or tabs, and its line ending.
// contents + ws + nl is always the first line of s.
func TrimLineEnd(s string) (contents, ws, nl string) {
	_, c, w, n := trimLineEnd(newInput(s, nil))
	return c.s, w.s, n.s
}

// LineStarts returns an iterator over the byte offsets
// at which lines in s begin.
// The first offset is always 0.
func LineStarts(s string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !yield(0) {
			return
		}
		for i := 0; ; {
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				return
			}
			i += j + 1
			if !yield(i) {
				return
			}
		}
	}
}

// LineEnds returns an iterator over the byte offsets
// just past each line ending in s.
// The last offset is always len(s),
// even if s does not end in a line ending.
// Each offset is yielded once.
func LineEnds(s string) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; {
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				if i < len(s) || i == 0 {
					yield(len(s))
				}
				return
			}
			i += j + 1
			if !yield(i) {
				return
			}
		}
	}
}

// firstLineEnd returns the offset just past the first line ending in s
// or len(s) if s contains no line feed.
func firstLineEnd(s string) int {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return i + 1
	}
	return len(s)
}

// isBlankLine reports whether line consists only of spaces and tabs
// followed by an optional line ending.
func isBlankLine(line string) bool {
	return isHorizontalSpace(line[:len(line)-trailingLineEndingLen(line)])
}

func isHorizontalSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// spaceLen returns the number of spaces and tabs at the start of s.
func spaceLen(s string) int {
	n := 0
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	return n
}

// lineEndingLen returns the length of the line ending at the start of s.
func lineEndingLen(s string) int {
	switch {
	case strings.HasPrefix(s, "\n"):
		return 1
	case strings.HasPrefix(s, "\r\n"):
		return 2
	default:
		return 0
	}
}

// trailingLineEndingLen returns the length of the line ending at the end of s.
func trailingLineEndingLen(s string) int {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return 2
	case strings.HasSuffix(s, "\n"):
		return 1
	default:
		return 0
	}
}
