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

// parseMarkupSpan attempts to find the closing marker of an inline markup span
// (like "*bold*") that starts at the beginning of text.
// text must start with marker and be at least 3 bytes long.
// On success, body is the text strictly between the two markers
// and rest is the text after the closing marker.
//
// The first marker after the opener that is not preceded by whitespace
// and that is followed by the end of text or a closing-context byte
// closes the span.
// A span may contain at most one line break:
// the search stops as soon as it has passed two line feeds.
func parseMarkupSpan(text string, marker byte) (body, rest string, ok bool) {
	debugAssert(len(text) >= 3 && text[0] == marker, "parseMarkupSpan precondition")

	if isWhitespace(text[1]) {
		return "", "", false
	}
	newlines := 0
	scanned := 1
	for i := 1; i < len(text); {
		j := strings.IndexByte(text[i:], marker)
		if j < 0 {
			break
		}
		pos := i + j
		newlines += strings.Count(text[scanned:pos], "\n")
		scanned = pos
		if newlines >= 2 {
			break
		}
		if isMarkupCloser(text, pos) {
			return text[1:pos], text[pos+1:], true
		}
		i = pos + 1
	}
	return "", "", false
}

// isMarkupCloser reports whether the marker at text[pos] can close a span.
func isMarkupCloser(text string, pos int) bool {
	if isWhitespace(text[pos-1]) {
		return false
	}
	if pos+1 >= len(text) {
		return true
	}
	switch text[pos+1] {
	case ' ', '-', '.', ',', ':', '!', '?', '\'', '\n', ')', '}':
		return true
	case '\r':
		return strings.HasPrefix(text[pos+1:], "\r\n")
	default:
		return false
	}
}
