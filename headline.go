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
	"strings"
	"unicode"
	"unicode/utf8"
)

// documentNode parses a whole document:
// leading blank lines, the section before the first headline,
// and every headline after it.
func documentNode(in input) Element {
	b := new(nodeBuilder)
	preBlank, in := blankLines(in)
	b.pushElements(preBlank)
	if end := nextHeadlineStart(in.s); end > 0 {
		var section input
		section, in = in.splitAt(end)
		b.pushElement(sectionNode(section))
	}
	for !in.isEmpty() {
		var h Element
		h, in = headlineNode(in)
		b.pushElement(h)
	}
	return b.finish(DocumentKind)
}

// headlineNode parses a headline line
// together with its section and all of its sub-headlines.
// The input must start with a headline.
func headlineNode(in input) (Element, input) {
	return assertLossless(headlineNodeBase)(in)
}

func headlineNodeBase(in input) (Element, input) {
	level := headlineLevel(in.s)
	debugAssert(level > 0, "headlineNode called on non-headline")

	rest, line, ws, nl := trimLineEnd(in)
	b := new(nodeBuilder)
	b.push(HeadlineStarsKind, line.slice(0, level))
	line = line.take(level)
	line = pushLeadingSpace(b, line)

	if word := line.s[:wordLen(line.s)]; word != "" && in.config.isTodoKeyword(word) {
		b.push(HeadlineKeywordKind, line.slice(0, len(word)))
		line = pushLeadingSpace(b, line.take(len(word)))
	}
	if isPriorityCookie(line.s) {
		p := new(nodeBuilder)
		p.push(LBracketKind, line.slice(0, 1))
		p.push(HashKind, line.slice(1, 2))
		p.pushText(line.slice(2, 3))
		p.push(RBracketKind, line.slice(3, 4))
		b.pushElement(p.finish(HeadlinePriorityKind))
		line = pushLeadingSpace(b, line.take(4))
	}

	titleEnd, tagsStart := splitTags(line.s)
	if titleEnd > 0 {
		t := new(nodeBuilder)
		t.pushElements(objectNodes(line.slice(0, titleEnd)))
		b.pushElement(t.finish(HeadlineTitleKind))
	}
	b.pushWhitespace(line.slice(titleEnd, tagsStart))
	if tagsStart < line.len() {
		b.pushElement(tagsNode(line.take(tagsStart)))
	}
	b.pushWhitespace(ws)
	b.pushLineEnding(nl)

	postBlank, rest := blankLines(rest)
	b.pushElements(postBlank)
	if end := nextHeadlineStart(rest.s); end > 0 {
		var section input
		section, rest = rest.splitAt(end)
		b.pushElement(sectionNode(section))
	}
	for !rest.isEmpty() && headlineLevel(rest.s) > level {
		var child Element
		child, rest = headlineNode(rest)
		b.pushElement(child)
	}
	return b.finish(HeadlineKind), rest
}

// headlineLevel returns the number of stars
// if s starts with a headline line, or zero otherwise.
// A headline is one or more stars followed by whitespace or the end of the line.
func headlineLevel(s string) int {
	n := 0
	for n < len(s) && s[n] == '*' {
		n++
	}
	if n == 0 {
		return 0
	}
	if n < len(s) && !isSpace(s[n]) && lineEndingLen(s[n:]) == 0 {
		return 0
	}
	return n
}

// nextHeadlineStart returns the offset of the first line in s
// that starts a headline, or len(s) if there is none.
func nextHeadlineStart(s string) int {
	for start := range LineStarts(s) {
		if headlineLevel(s[start:]) > 0 {
			return start
		}
	}
	return len(s)
}

// pushLeadingSpace pushes any spaces or tabs at the start of the input
// and returns the remaining input.
func pushLeadingSpace(b *nodeBuilder, in input) input {
	ws, rest := in.splitAt(spaceLen(in.s))
	b.pushWhitespace(ws)
	return rest
}

// wordLen returns the number of bytes before the first space or tab in s.
func wordLen(s string) int {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return i
	}
	return len(s)
}

// isPriorityCookie reports whether s starts with a cookie like "[#A]"
// followed by whitespace or the end of s.
func isPriorityCookie(s string) bool {
	return len(s) >= 4 &&
		s[0] == '[' && s[1] == '#' && s[3] == ']' &&
		('A' <= s[2] && s[2] <= 'Z' || '0' <= s[2] && s[2] <= '9') &&
		(len(s) == 4 || isSpace(s[4]))
}

// splitTags finds a trailing tag list like ":work:urgent:" in a headline title.
// s[:titleEnd] is the title,
// s[titleEnd:tagsStart] is the whitespace before the tags,
// and s[tagsStart:] are the tags.
// If there are no tags, titleEnd == tagsStart == len(s).
func splitTags(s string) (titleEnd, tagsStart int) {
	tagsStart = strings.LastIndexAny(s, " \t") + 1
	if !isTagList(s[tagsStart:]) {
		return len(s), len(s)
	}
	titleEnd = tagsStart
	for titleEnd > 0 && isSpace(s[titleEnd-1]) {
		titleEnd--
	}
	return titleEnd, tagsStart
}

// isTagList reports whether s is a colon-delimited list of one or more tags.
func isTagList(s string) bool {
	if len(s) < 3 || s[0] != ':' || s[len(s)-1] != ':' {
		return false
	}
	for _, tag := range strings.Split(s[1:len(s)-1], ":") {
		if tag == "" {
			return false
		}
		for _, c := range tag {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !strings.ContainsRune("_@#%", c) {
				return false
			}
		}
	}
	return utf8.ValidString(s)
}

func tagsNode(in input) Element {
	b := new(nodeBuilder)
	for !in.isEmpty() {
		b.push(ColonKind, in.slice(0, 1))
		in = in.take(1)
		if n := strings.IndexByte(in.s, ':'); n > 0 {
			b.pushText(in.slice(0, n))
			in = in.take(n)
		}
	}
	return b.finish(HeadlineTagsKind)
}
