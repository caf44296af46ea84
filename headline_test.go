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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeadlineTree(t *testing.T) {
	const source = "* TODO [#A] Title *b* :a:b:\n"
	const want = "Document@0..28\n" +
		"  Headline@0..28\n" +
		"    HeadlineStars@0..1 \"*\"\n" +
		"    Whitespace@1..2 \" \"\n" +
		"    HeadlineKeyword@2..6 \"TODO\"\n" +
		"    Whitespace@6..7 \" \"\n" +
		"    HeadlinePriority@7..11\n" +
		"      LBracket@7..8 \"[\"\n" +
		"      Hash@8..9 \"#\"\n" +
		"      Text@9..10 \"A\"\n" +
		"      RBracket@10..11 \"]\"\n" +
		"    Whitespace@11..12 \" \"\n" +
		"    HeadlineTitle@12..21\n" +
		"      Text@12..18 \"Title \"\n" +
		"      Bold@18..21\n" +
		"        Star@18..19 \"*\"\n" +
		"        Text@19..20 \"b\"\n" +
		"        Star@20..21 \"*\"\n" +
		"    Whitespace@21..22 \" \"\n" +
		"    HeadlineTags@22..27\n" +
		"      Colon@22..23 \":\"\n" +
		"      Text@23..24 \"a\"\n" +
		"      Colon@24..25 \":\"\n" +
		"      Text@25..26 \"b\"\n" +
		"      Colon@26..27 \":\"\n" +
		"    NewLine@27..28 \"\\n\"\n"
	if diff := cmp.Diff(want, Parse(source, nil).DebugString()); diff != "" {
		t.Errorf("Parse(%q) (-want +got):\n%s", source, diff)
	}
}

func TestHeadlineParts(t *testing.T) {
	tests := []struct {
		line     string
		level    int
		keyword  string
		priority byte
		title    string
		tags     []string
	}{
		{line: "*", level: 1},
		{line: "**\n", level: 2},
		{line: "* Hello", level: 1, title: "Hello"},
		{line: "*** Hello, world  \n", level: 3, title: "Hello, world"},
		{line: "* TODO\n", level: 1, keyword: "TODO"},
		{line: "* DONE Ship it", level: 1, keyword: "DONE", title: "Ship it"},
		{line: "* TODOS x", level: 1, title: "TODOS x"},
		{line: "* [#B] Later", level: 1, priority: 'B', title: "Later"},
		{line: "* [#1]", level: 1, priority: '1'},
		{line: "* [#A]x", level: 1, title: "[#A]x"},
		{line: "* [#a] x", level: 1, title: "[#a] x"},
		{line: "* Title :work:home:", level: 1, title: "Title", tags: []string{"work", "home"}},
		{line: "* Title\t:@x_y#%:", level: 1, title: "Title", tags: []string{"@x_y#%"}},
		{line: "* :solo:", level: 1, tags: []string{"solo"}},
		{line: "* Title :not tags", level: 1, title: "Title :not tags"},
		{line: "* Title :a::b:", level: 1, title: "Title :a::b:"},
		{line: "* Title:a:", level: 1, title: "Title:a:"},
		{line: "*\tTabbed", level: 1, title: "Tabbed"},
	}
	for _, test := range tests {
		doc := Parse(test.line, nil)
		headlines := doc.Headlines()
		if len(headlines) != 1 {
			t.Errorf("Parse(%q) has %d headlines; want 1", test.line, len(headlines))
			continue
		}
		h := headlines[0]
		if got := h.HeadlineLevel(); got != test.level {
			t.Errorf("Parse(%q) level = %d; want %d", test.line, got, test.level)
		}
		if got := h.HeadlineKeyword(); got != test.keyword {
			t.Errorf("Parse(%q) keyword = %q; want %q", test.line, got, test.keyword)
		}
		if got := h.HeadlinePriority(); got != test.priority {
			t.Errorf("Parse(%q) priority = %q; want %q", test.line, got, test.priority)
		}
		if got := h.HeadlineTitle().Text(); got != test.title {
			t.Errorf("Parse(%q) title = %q; want %q", test.line, got, test.title)
		}
		if diff := cmp.Diff(test.tags, h.HeadlineTags()); diff != "" {
			t.Errorf("Parse(%q) tags (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestNotHeadline(t *testing.T) {
	for _, s := range []string{"*bold* text\n", " * indented\n", "text\n*not first\n"} {
		doc := Parse(s, nil)
		if n := len(doc.Headlines()); n != 0 {
			t.Errorf("Parse(%q) has %d headlines; want 0", s, n)
		}
		if got := doc.Section().Text(); got != s {
			t.Errorf("Parse(%q).Section().Text() = %q; want %q", s, got, s)
		}
	}
}

func TestHeadlineNesting(t *testing.T) {
	const source = "\n" +
		"intro\n" +
		"* A\n" +
		"text\n" +
		"** B\n" +
		"*** C\n" +
		"** D\n" +
		"\n" +
		"* E\n"

	type outline struct {
		Title    string
		Section  string
		Children []outline
	}
	var build func(h *Node) outline
	build = func(h *Node) outline {
		o := outline{
			Title:   h.HeadlineTitle().Text(),
			Section: h.Section().Text(),
		}
		for _, child := range h.Headlines() {
			o.Children = append(o.Children, build(child))
		}
		return o
	}

	doc := Parse(source, nil)
	if got := doc.PreBlank(); got != 1 {
		t.Errorf("doc.PreBlank() = %d; want 1", got)
	}
	if got, want := doc.Section().Text(), "intro\n"; got != want {
		t.Errorf("doc.Section().Text() = %q; want %q", got, want)
	}
	var got []outline
	for _, h := range doc.Headlines() {
		got = append(got, build(h))
	}
	want := []outline{
		{
			Title:   "A",
			Section: "text\n",
			Children: []outline{
				{
					Title:    "B",
					Children: []outline{{Title: "C"}},
				},
				{Title: "D"},
			},
		},
		{Title: "E"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outline (-want +got):\n%s", diff)
	}
	if got := doc.Headlines()[0].Headlines()[1].PostBlank(); got != 1 {
		t.Errorf("headline D PostBlank() = %d; want 1", got)
	}
}

func TestHeadlineCustomKeywords(t *testing.T) {
	config := &ParseConfig{
		TodoKeywords: []string{"NEXT", "WAIT"},
		DoneKeywords: []string{"CANCELED"},
	}
	tests := []struct {
		line    string
		keyword string
	}{
		{"* NEXT Call", "NEXT"},
		{"* WAIT Reply", "WAIT"},
		{"* CANCELED Trip", "CANCELED"},
		{"* TODO Not a keyword", ""},
	}
	for _, test := range tests {
		h := Parse(test.line, config).Headlines()[0]
		if got := h.HeadlineKeyword(); got != test.keyword {
			t.Errorf("Parse(%q, config) keyword = %q; want %q", test.line, got, test.keyword)
		}
	}
	if !config.IsDoneKeyword("CANCELED") || config.IsDoneKeyword("NEXT") {
		t.Error("IsDoneKeyword does not match DoneKeywords")
	}
	var nilConfig *ParseConfig
	if !nilConfig.IsDoneKeyword("DONE") {
		t.Error("(*ParseConfig)(nil).IsDoneKeyword(\"DONE\") = false; want true")
	}
}

func TestHeadlineLevel(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"x", 0},
		{"*", 1},
		{"* ", 1},
		{"**\t", 2},
		{"***\n", 3},
		{"*\r\n", 1},
		{"*a", 0},
		{"**a", 0},
		{"*\r", 0},
	}
	for _, test := range tests {
		if got := headlineLevel(test.s); got != test.want {
			t.Errorf("headlineLevel(%q) = %d; want %d", test.s, got, test.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		s         string
		titleEnd  int
		tagsStart int
	}{
		{"", 0, 0},
		{"Title", 5, 5},
		{"Title :a:", 5, 6},
		{"Title   :a:b:", 5, 8},
		{":a:", 0, 0},
		{"Title :a", 8, 8},
		{"Title ::", 8, 8},
	}
	for _, test := range tests {
		titleEnd, tagsStart := splitTags(test.s)
		if titleEnd != test.titleEnd || tagsStart != test.tagsStart {
			t.Errorf("splitTags(%q) = %d, %d; want %d, %d",
				test.s, titleEnd, tagsStart, test.titleEnd, test.tagsStart)
		}
	}
}
