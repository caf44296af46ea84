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

// paragraphNode consumes consecutive non-blank lines as one paragraph,
// followed by any blank lines after it.
// The blank lines become trailing [BlankLineKind] children
// of the paragraph itself rather than a separate element.
// The input must not be empty.
func paragraphNode(in input) (Element, input) {
	return assertLossless(paragraphNodeBase)(in)
}

func paragraphNodeBase(in input) (Element, input) {
	debugAssert(!in.isEmpty(), "paragraphNode called on empty input")

	start := 0
	for end := range LineEnds(in.s) {
		if isBlankLine(in.s[start:end]) {
			break
		}
		start = end
	}
	contents, rest := in.splitAt(start)
	postBlank, rest := blankLines(rest)

	b := new(nodeBuilder)
	b.pushElements(objectNodes(contents))
	b.pushElements(postBlank)
	return b.finish(ParagraphKind), rest
}

// paragraphNodes splits the whole input into paragraphs.
func paragraphNodes(in input) []Element {
	var paragraphs []Element
	for !in.isEmpty() {
		var p Element
		p, in = paragraphNode(in)
		paragraphs = append(paragraphs, p)
	}
	return paragraphs
}
