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

// Kind identifies the type of a [Node] or a [Token].
// The set of kinds is closed:
// every element produced by [Parse] has one of the kinds below.
type Kind uint16

// Node kinds.
const (
	DocumentKind Kind = 1 + iota
	SectionKind
	ParagraphKind
	BlankLineKind
	HeadlineKind
	HeadlinePriorityKind
	HeadlineTitleKind
	HeadlineTagsKind
	KeywordKind
	RuleKind
	CommentKind
	FixedWidthKind
	LinkKind
	BoldKind
	ItalicKind
	UnderlineKind
	StrikeKind
	VerbatimKind
	CodeKind

	// TextKind is a run of plain text.
	TextKind
	// WhitespaceKind is a run of spaces and tabs.
	WhitespaceKind
	// NewLineKind is a "\n" or "\r\n" line ending.
	NewLineKind
	HeadlineStarsKind
	HeadlineKeywordKind
	LinkPathKind
	StarKind
	SlashKind
	UnderscoreKind
	PlusKind
	EqualKind
	TildeKind
	HashKind
	HashPlusKind
	ColonKind
	LBracketKind
	RBracketKind
	LBracket2Kind
	RBracket2Kind

	kindCount
)

var kindNames = [...]string{
	DocumentKind:         "Document",
	SectionKind:          "Section",
	ParagraphKind:        "Paragraph",
	BlankLineKind:        "BlankLine",
	HeadlineKind:         "Headline",
	HeadlinePriorityKind: "HeadlinePriority",
	HeadlineTitleKind:    "HeadlineTitle",
	HeadlineTagsKind:     "HeadlineTags",
	KeywordKind:          "Keyword",
	RuleKind:             "Rule",
	CommentKind:          "Comment",
	FixedWidthKind:       "FixedWidth",
	LinkKind:             "Link",
	BoldKind:             "Bold",
	ItalicKind:           "Italic",
	UnderlineKind:        "Underline",
	StrikeKind:           "Strike",
	VerbatimKind:         "Verbatim",
	CodeKind:             "Code",
	TextKind:             "Text",
	WhitespaceKind:       "Whitespace",
	NewLineKind:          "NewLine",
	HeadlineStarsKind:    "HeadlineStars",
	HeadlineKeywordKind:  "HeadlineKeyword",
	LinkPathKind:         "LinkPath",
	StarKind:             "Star",
	SlashKind:            "Slash",
	UnderscoreKind:       "Underscore",
	PlusKind:             "Plus",
	EqualKind:            "Equal",
	TildeKind:            "Tilde",
	HashKind:             "Hash",
	HashPlusKind:         "HashPlus",
	ColonKind:            "Colon",
	LBracketKind:         "LBracket",
	RBracketKind:         "RBracket",
	LBracket2Kind:        "LBracket2",
	RBracket2Kind:        "RBracket2",
}

func (k Kind) String() string {
	if k == 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return kindNames[k]
}

// IsToken reports whether elements of the kind are leaves.
func (k Kind) IsToken() bool {
	return TextKind <= k && k < kindCount
}

// markupKinds maps an inline markup marker to the kind of node it delimits
// and the kind of its marker tokens.
var markupKinds = [256]struct{ node, marker Kind }{
	'*': {BoldKind, StarKind},
	'/': {ItalicKind, SlashKind},
	'_': {UnderlineKind, UnderscoreKind},
	'+': {StrikeKind, PlusKind},
	'=': {VerbatimKind, EqualKind},
	'~': {CodeKind, TildeKind},
}
