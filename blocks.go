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

// blockStarts is the list of block elements tried, in order,
// at the start of each element inside a section.
// Each returns the zero Element if the input does not start with its block.
// Text that matches none of them is a paragraph.
var blockStarts = []elementParser{
	keywordNode,
	ruleNode,
	commentNode,
	fixedWidthNode,
}

// elementNodes splits the contents of a section into block elements.
func elementNodes(in input) []Element {
	var elems []Element
	for !in.isEmpty() {
		var e Element
		for _, start := range blockStarts {
			if e, in = start(in); !e.IsZero() {
				break
			}
		}
		if e.IsZero() {
			e, in = paragraphNode(in)
		}
		elems = append(elems, e)
	}
	return elems
}

// sectionNode wraps the block elements of the input in a [SectionKind] node.
func sectionNode(in input) Element {
	b := new(nodeBuilder)
	b.pushElements(elementNodes(in))
	return b.finish(SectionKind)
}

// keywordNode parses a line like "#+TITLE: Hello".
func keywordNode(in input) (Element, input) {
	rest, contents, ws, nl := trimLineEnd(in)
	line := contents.s
	indent := spaceLen(line)
	if !strings.HasPrefix(line[indent:], "#+") {
		return Element{}, in
	}
	keyStart := indent + len("#+")
	keyLen := strings.IndexByte(line[keyStart:], ':')
	if keyLen <= 0 || strings.ContainsAny(line[keyStart:keyStart+keyLen], " \t") {
		return Element{}, in
	}
	keyEnd := keyStart + keyLen
	valueStart := keyEnd + 1 + spaceLen(line[keyEnd+1:])

	b := new(nodeBuilder)
	b.pushWhitespace(contents.slice(0, indent))
	b.push(HashPlusKind, contents.slice(indent, keyStart))
	b.pushText(contents.slice(keyStart, keyEnd))
	b.push(ColonKind, contents.slice(keyEnd, keyEnd+1))
	b.pushWhitespace(contents.slice(keyEnd+1, valueStart))
	if valueStart < len(line) {
		b.pushText(contents.take(valueStart))
	}
	b.pushWhitespace(ws)
	b.pushLineEnding(nl)
	postBlank, rest := blankLines(rest)
	b.pushElements(postBlank)
	return b.finish(KeywordKind), rest
}

// minRuleDashes is the number of dashes required for a horizontal rule.
const minRuleDashes = 5

// ruleNode parses a horizontal rule: a line of five or more dashes.
func ruleNode(in input) (Element, input) {
	rest, contents, ws, nl := trimLineEnd(in)
	indent := spaceLen(contents.s)
	dashes := contents.s[indent:]
	if len(dashes) < minRuleDashes || strings.Trim(dashes, "-") != "" {
		return Element{}, in
	}

	b := new(nodeBuilder)
	b.pushWhitespace(contents.slice(0, indent))
	b.pushText(contents.take(indent))
	b.pushWhitespace(ws)
	b.pushLineEnding(nl)
	postBlank, rest := blankLines(rest)
	b.pushElements(postBlank)
	return b.finish(RuleKind), rest
}

// commentNode parses consecutive comment lines like "# text".
func commentNode(in input) (Element, input) {
	return markedLinesNode(in, '#', HashKind, CommentKind)
}

// fixedWidthNode parses consecutive fixed-width lines like ": text".
func fixedWidthNode(in input) (Element, input) {
	return markedLinesNode(in, ':', ColonKind, FixedWidthKind)
}

// markedLinesNode parses consecutive lines
// that start with optional indentation and marker,
// followed by a space or the end of the line.
func markedLinesNode(in input, marker byte, markerKind, kind Kind) (Element, input) {
	b := new(nodeBuilder)
	lines := 0
	for !in.isEmpty() {
		rest, contents, ws, nl := trimLineEnd(in)
		indent := spaceLen(contents.s)
		line := contents.s[indent:]
		if len(line) == 0 || line[0] != marker || len(line) > 1 && !isSpace(line[1]) {
			break
		}
		b.pushWhitespace(contents.slice(0, indent))
		b.push(markerKind, contents.slice(indent, indent+1))
		if text := contents.take(indent + 1); !text.isEmpty() {
			b.pushText(text)
		}
		b.pushWhitespace(ws)
		b.pushLineEnding(nl)
		lines++
		in = rest
	}
	if lines == 0 {
		return Element{}, in
	}
	postBlank, in := blankLines(in)
	b.pushElements(postBlank)
	return b.finish(kind), in
}
