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

// Package normhtml normalizes the HTML produced by the org exporter
// so that it can be compared against hand-written HTML.
//
// Whitespace next to block tags is dropped,
// other runs of whitespace outside of pre elements become a single space,
// the line ending before a closing pre tag is dropped,
// and attributes (and the names in a class attribute) are sorted.
package normhtml

import (
	"bytes"
	"slices"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// blockTags is the set of elements the exporter ends with a line break.
var blockTags = map[atom.Atom]bool{
	atom.Main:    true,
	atom.Section: true,
	atom.P:       true,
	atom.Pre:     true,
	atom.Hr:      true,
	atom.H1:      true,
	atom.H2:      true,
	atom.H3:      true,
	atom.H4:      true,
	atom.H5:      true,
	atom.H6:      true,
}

type normalizer struct {
	out        []byte
	text       []byte
	inPre      bool
	afterBlock bool
}

// NormalizeHTML returns a canonical form of the HTML fragment b.
func NormalizeHTML(b []byte) []byte {
	n := &normalizer{afterBlock: true}
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "body")
	for {
		switch tok.Next() {
		case html.ErrorToken:
			n.flushText(true)
			return n.out
		case html.TextToken:
			n.text = append(n.text, tok.Text()...)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			a := atom.Lookup(name)
			n.flushText(blockTags[a])
			n.out = append(n.out, '<')
			n.out = append(n.out, name...)
			if hasAttr {
				n.appendAttrs(tok)
			}
			n.out = append(n.out, '>')
			n.inPre = n.inPre || a == atom.Pre
			n.afterBlock = blockTags[a]
		case html.EndTagToken:
			name, _ := tok.TagName()
			a := atom.Lookup(name)
			n.flushText(blockTags[a])
			n.out = append(n.out, "</"...)
			n.out = append(n.out, name...)
			n.out = append(n.out, '>')
			if a == atom.Pre {
				n.inPre = false
			}
			n.afterBlock = blockTags[a]
		}
	}
}

// flushText writes the pending text.
// beforeBlock is true if a block tag or the end of input follows it.
func (n *normalizer) flushText(beforeBlock bool) {
	text := bytes.Clone(n.text)
	n.text = n.text[:0]
	switch {
	case n.inPre:
		if beforeBlock {
			text = bytes.TrimSuffix(text, []byte("\n"))
		}
	default:
		text = collapseSpace(text)
		if n.afterBlock {
			text = bytes.TrimPrefix(text, []byte(" "))
		}
		if beforeBlock {
			text = bytes.TrimSuffix(text, []byte(" "))
		}
	}
	n.out = append(n.out, htmlEscaper.Replace(text)...)
}

func (n *normalizer) appendAttrs(tok *html.Tokenizer) {
	var attrs []html.Attribute
	for more := true; more; {
		var k, v []byte
		k, v, more = tok.TagAttr()
		val := string(v)
		if string(k) == "class" {
			names := strings.Fields(val)
			slices.Sort(names)
			val = strings.Join(names, " ")
		}
		attrs = append(attrs, html.Attribute{Key: string(k), Val: val})
	}
	slices.SortFunc(attrs, func(a, b html.Attribute) int {
		return strings.Compare(a.Key, b.Key)
	})
	for _, attr := range attrs {
		n.out = append(n.out, ' ')
		n.out = append(n.out, attr.Key...)
		if attr.Val != "" {
			n.out = append(n.out, `="`...)
			n.out = append(n.out, htmlEscaper.Replace([]byte(attr.Val))...)
			n.out = append(n.out, '"')
		}
	}
}

// collapseSpace replaces every run of whitespace in b with a single space.
func collapseSpace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	space := false
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			out = append(out, ' ')
			space = false
		}
		out = append(out, c)
	}
	if space {
		out = append(out, ' ')
	}
	return out
}
