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

// Package format provides a function to format an Org document
// that is equivalent to the original document.
package format

import (
	"fmt"
	"io"
	"strings"

	"zombiezen.com/go/org"
)

// Format writes the document rooted at root as Org to the given writer.
// The output differs from the source in whitespace only:
//
//   - Trailing spaces and tabs are removed from every line.
//   - Runs of blank lines are collapsed to a single empty line
//     and blank lines at the start of the document are removed.
//   - Headline parts are separated by a single space.
//
// Formatting the output again produces the same output.
func Format(w io.Writer, root *org.Node) error {
	ww := &errWriter{w: w}
	ps := pieces(root)
	// prev is the last string written.
	prev := ""
	for i, p := range ps {
		atLineEnd := i+1 == len(ps) || ps[i+1].kind == org.NewLineKind
		switch p.kind {
		case org.BlankLineKind:
			if !ww.hasWritten || i > 0 && ps[i-1].kind == org.BlankLineKind {
				continue
			}
			ww.WriteString(p.text)
			prev = p.text
		case org.WhitespaceKind:
			switch {
			case atLineEnd && strings.HasSuffix(prev, "\r"):
				// A carriage return followed by a line feed would end the line.
				prev = p.text[:1]
			case atLineEnd:
				continue
			case p.parent == org.HeadlineKind:
				prev = " "
			default:
				prev = p.text
			}
			ww.WriteString(prev)
		case org.TextKind:
			s := trimSpaceBeforeNewlines(p.text)
			if atLineEnd {
				s = trimLineSpace(s)
			}
			if s != "" {
				ww.WriteString(s)
				prev = s
			}
		default:
			ww.WriteString(p.text)
			prev = p.text
		}
	}
	if ww.err != nil {
		return fmt.Errorf("format org: %w", ww.err)
	}
	return nil
}

// A piece is a token of the document in source order.
// Each blank line is a single piece holding its line ending.
type piece struct {
	kind   org.Kind
	parent org.Kind
	text   string
}

func pieces(root *org.Node) []piece {
	var ps []piece
	org.Walk(root.AsElement(), &org.WalkOptions{
		Pre: func(c *org.Cursor) bool {
			e := c.Element()
			switch {
			case e.Kind() == org.BlankLineKind:
				nl := e.Node().Child(e.ChildCount() - 1)
				p := piece{kind: org.BlankLineKind, parent: c.Parent().Kind()}
				if nl.Kind() == org.NewLineKind {
					p.text = nl.Text()
				}
				ps = append(ps, p)
				return false
			case e.Token() != nil:
				ps = append(ps, piece{
					kind:   e.Kind(),
					parent: c.Parent().Kind(),
					text:   e.Text(),
				})
				return false
			default:
				return true
			}
		},
	})
	return ps
}

// trimSpaceBeforeNewlines removes spaces and tabs
// before every line ending in s.
// A line's contents are never reduced to a lone carriage return.
func trimSpaceBeforeNewlines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	sb := new(strings.Builder)
	sb.Grow(len(s))
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		line, nl := s[:i], "\n"
		if strings.HasSuffix(line, "\r") {
			line, nl = line[:len(line)-1], "\r\n"
		}
		sb.WriteString(trimLineSpace(line))
		sb.WriteString(nl)
		s = s[i+1:]
	}
}

type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}

// trimLineSpace removes the spaces and tabs at the end of s
// unless they follow a carriage return,
// in which case one of them is kept.
func trimLineSpace(s string) string {
	t := strings.TrimRight(s, " \t")
	if len(t) < len(s) && strings.HasSuffix(t, "\r") {
		return s[:len(t)+1]
	}
	return t
}
