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

// Package org parses [Org] documents into lossless syntax trees.
//
// Every byte of the source, including whitespace and line endings,
// belongs to exactly one [Token] in the tree,
// so concatenating the tree's tokens in order reproduces the source.
// Constructs that are not recognized degrade to plain text:
// there is no such thing as an invalid document.
//
// [Org]: https://orgmode.org/
package org

import "slices"

// ParseConfig is the set of options for [Parse].
// A ParseConfig must not be modified while a parse is using it.
type ParseConfig struct {
	// TodoKeywords are the headline keywords for open items.
	TodoKeywords []string
	// DoneKeywords are the headline keywords for finished items.
	DoneKeywords []string
}

// DefaultParseConfig returns the options [Parse] uses when given nil.
func DefaultParseConfig() *ParseConfig {
	return &ParseConfig{
		TodoKeywords: []string{"TODO"},
		DoneKeywords: []string{"DONE"},
	}
}

func (c *ParseConfig) clone() *ParseConfig {
	if c == nil {
		return DefaultParseConfig()
	}
	return &ParseConfig{
		TodoKeywords: slices.Clone(c.TodoKeywords),
		DoneKeywords: slices.Clone(c.DoneKeywords),
	}
}

// isTodoKeyword reports whether word is one of the configured headline keywords.
func (c *ParseConfig) isTodoKeyword(word string) bool {
	if c == nil {
		c = DefaultParseConfig()
	}
	return slices.Contains(c.TodoKeywords, word) || slices.Contains(c.DoneKeywords, word)
}

// IsDoneKeyword reports whether word is one of c's done keywords.
func (c *ParseConfig) IsDoneKeyword(word string) bool {
	if c == nil {
		c = DefaultParseConfig()
	}
	return slices.Contains(c.DoneKeywords, word)
}

// Parse parses an Org document into a [DocumentKind] node.
// If config is nil, Parse uses [DefaultParseConfig].
// The returned tree covers all of source.
func Parse(source string, config *ParseConfig) *Node {
	in := newInput(source, config.clone())
	return documentNode(in).Node()
}
