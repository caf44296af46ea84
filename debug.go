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
	"fmt"
	"strings"
)

// debugAssert panics with msg if cond is false and debug assertions are enabled.
// Build with the orgdebug tag to enable debug assertions.
func debugAssert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic(msg)
	}
}

type elementParser func(input) (Element, input)

// assertLossless wraps a parser
// so that each element it produces is checked with [losslessError]
// when debug assertions are enabled.
func assertLossless(f elementParser) elementParser {
	if !debugAssertions {
		return f
	}
	return func(in input) (Element, input) {
		e, rest := f(in)
		if err := losslessError(in, e, rest); err != nil {
			panic(err)
		}
		return e, rest
	}
}

// losslessError reports whether e covers exactly
// the text consumed from in to produce rest.
func losslessError(in input, e Element, rest input) error {
	consumed := in.len() - rest.len()
	if consumed < 0 || !strings.HasSuffix(in.s, rest.s) {
		return fmt.Errorf("parser returned remainder %q that is not a suffix of its input %q", rest.s, in.s)
	}
	if got, want := e.Text(), in.s[:consumed]; got != want {
		return fmt.Errorf("parser must be lossless: %v covers %q; consumed %q", e.Kind(), got, want)
	}
	return nil
}

// DebugString returns a multi-line dump of the tree rooted at n,
// one element per line, indented by depth,
// with each element's kind and byte range.
// Tokens also show their text.
func (n *Node) DebugString() string {
	sb := new(strings.Builder)
	depth := 0
	Walk(n.AsElement(), &WalkOptions{
		Pre: func(c *Cursor) bool {
			e := c.Element()
			for i := 0; i < depth; i++ {
				sb.WriteString("  ")
			}
			fmt.Fprintf(sb, "%v@%d..%d", e.Kind(), c.Offset(), c.Offset()+e.Width())
			if tok := e.Token(); tok != nil {
				fmt.Fprintf(sb, " %q", tok.Text())
			}
			sb.WriteString("\n")
			depth++
			return true
		},
		Post: func(c *Cursor) bool {
			depth--
			return true
		},
	})
	return sb.String()
}
