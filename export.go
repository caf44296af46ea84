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
	"io"
	"iter"
)

// EventKind is an enumeration of the events produced by [Events].
type EventKind uint16

const (
	DocumentBeg EventKind = 1 + iota
	DocumentEnd
	HeadlineBeg
	HeadlineEnd
	TitleBeg
	TitleEnd
	SectionBeg
	SectionEnd
	ParagraphBeg
	ParagraphEnd
	BoldBeg
	BoldEnd
	ItalicBeg
	ItalicEnd
	UnderlineBeg
	UnderlineEnd
	StrikeBeg
	StrikeEnd

	KeywordEvent
	RuleEvent
	CommentEvent
	FixedWidthEvent
	LinkEvent
	VerbatimEvent
	CodeEvent
	TextEvent

	eventKindCount
)

var eventKindNames = [...]string{
	DocumentBeg:     "DocumentBeg",
	DocumentEnd:     "DocumentEnd",
	HeadlineBeg:     "HeadlineBeg",
	HeadlineEnd:     "HeadlineEnd",
	TitleBeg:        "TitleBeg",
	TitleEnd:        "TitleEnd",
	SectionBeg:      "SectionBeg",
	SectionEnd:      "SectionEnd",
	ParagraphBeg:    "ParagraphBeg",
	ParagraphEnd:    "ParagraphEnd",
	BoldBeg:         "BoldBeg",
	BoldEnd:         "BoldEnd",
	ItalicBeg:       "ItalicBeg",
	ItalicEnd:       "ItalicEnd",
	UnderlineBeg:    "UnderlineBeg",
	UnderlineEnd:    "UnderlineEnd",
	StrikeBeg:       "StrikeBeg",
	StrikeEnd:       "StrikeEnd",
	KeywordEvent:    "Keyword",
	RuleEvent:       "Rule",
	CommentEvent:    "Comment",
	FixedWidthEvent: "FixedWidth",
	LinkEvent:       "Link",
	VerbatimEvent:   "Verbatim",
	CodeEvent:       "Code",
	TextEvent:       "Text",
}

func (k EventKind) String() string {
	if k == 0 || k >= eventKindCount {
		return fmt.Sprintf("EventKind(%d)", uint16(k))
	}
	return eventKindNames[k]
}

// containerEvents maps node kinds that produce begin and end events
// to their begin event.
// The end event always directly follows the begin event.
var containerEvents = map[Kind]EventKind{
	DocumentKind:      DocumentBeg,
	HeadlineKind:      HeadlineBeg,
	HeadlineTitleKind: TitleBeg,
	SectionKind:       SectionBeg,
	ParagraphKind:     ParagraphBeg,
	BoldKind:          BoldBeg,
	ItalicKind:        ItalicBeg,
	UnderlineKind:     UnderlineBeg,
	StrikeKind:        StrikeBeg,
}

// An Event is a single step of a document traversal.
type Event struct {
	Kind EventKind
	// Node is the node that produced the event.
	// For [TitleBeg] and [TitleEnd], Node is the headline.
	// Node is nil for [TextEvent].
	Node *Node
	// Name is the key of a [KeywordEvent] or the path of a [LinkEvent].
	Name string
	// Text is the text of a leaf event:
	// the value of a [KeywordEvent],
	// the description of a [LinkEvent],
	// the lines of a [CommentEvent] or [FixedWidthEvent],
	// or the content of a [VerbatimEvent], [CodeEvent], or [TextEvent].
	Text string
}

// Events returns an iterator over the events of a depth-first traversal of root.
// Every begin event is followed by exactly one matching end event
// after the events of the node's contents.
// Every [HeadlineBeg] is directly followed by a [TitleBeg],
// even if the headline has no title.
// Blank lines and syntax markers produce no events.
func Events(root *Node) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		stopped := false
		Walk(root.AsElement(), &WalkOptions{
			Pre: func(c *Cursor) bool {
				if stopped {
					return false
				}
				ev, descend := enterEvent(c)
				if ev.Kind != 0 && !yield(ev) {
					stopped = true
					return false
				}
				if ev.Kind == HeadlineBeg && ev.Node.HeadlineTitle() == nil {
					// Untitled headlines still get a title pair.
					if !yield(Event{Kind: TitleBeg, Node: ev.Node}) || !yield(Event{Kind: TitleEnd, Node: ev.Node}) {
						stopped = true
						return false
					}
				}
				return descend
			},
			Post: func(c *Cursor) bool {
				if stopped {
					return false
				}
				n := c.Element().Node()
				beg, ok := containerEvents[n.Kind()]
				if !ok {
					return true
				}
				ev := Event{Kind: beg + 1, Node: n}
				if beg == TitleBeg {
					ev.Node = c.Parent().Node()
				}
				if !yield(ev) {
					stopped = true
					return false
				}
				return true
			},
		})
	}
}

// enterEvent returns the event for the element under the cursor, if any,
// and whether the element's children should be visited.
func enterEvent(c *Cursor) (_ Event, descend bool) {
	if tok := c.Element().Token(); tok != nil {
		if tok.Kind() != TextKind {
			return Event{}, false
		}
		return Event{Kind: TextEvent, Text: tok.Text()}, false
	}
	n := c.Element().Node()
	if beg, ok := containerEvents[n.Kind()]; ok {
		ev := Event{Kind: beg, Node: n}
		if beg == TitleBeg {
			ev.Node = c.Parent().Node()
		}
		return ev, true
	}
	switch n.Kind() {
	case KeywordKind:
		return Event{Kind: KeywordEvent, Node: n, Name: n.KeywordKey(), Text: n.KeywordValue()}, false
	case RuleKind:
		return Event{Kind: RuleEvent, Node: n}, false
	case CommentKind:
		return Event{Kind: CommentEvent, Node: n, Text: n.LinesText()}, false
	case FixedWidthKind:
		return Event{Kind: FixedWidthEvent, Node: n, Text: n.LinesText()}, false
	case LinkKind:
		return Event{Kind: LinkEvent, Node: n, Name: n.LinkPath(), Text: n.LinkDescription()}, false
	case VerbatimKind:
		return Event{Kind: VerbatimEvent, Node: n, Text: n.MarkupText()}, false
	case CodeKind:
		return Event{Kind: CodeEvent, Node: n, Text: n.MarkupText()}, false
	default:
		return Event{}, false
	}
}

// A Handler receives the events of a document traversal.
// Every method writes to the shared sink w.
// An error returned from any method stops the traversal.
type Handler interface {
	DocumentBeg(w io.Writer) error
	DocumentEnd(w io.Writer) error
	HeadlineBeg(w io.Writer, headline *Node) error
	HeadlineEnd(w io.Writer, headline *Node) error
	TitleBeg(w io.Writer, headline *Node) error
	TitleEnd(w io.Writer, headline *Node) error
	SectionBeg(w io.Writer) error
	SectionEnd(w io.Writer) error
	ParagraphBeg(w io.Writer) error
	ParagraphEnd(w io.Writer) error
	BoldBeg(w io.Writer) error
	BoldEnd(w io.Writer) error
	ItalicBeg(w io.Writer) error
	ItalicEnd(w io.Writer) error
	UnderlineBeg(w io.Writer) error
	UnderlineEnd(w io.Writer) error
	StrikeBeg(w io.Writer) error
	StrikeEnd(w io.Writer) error

	Keyword(w io.Writer, key, value string) error
	Rule(w io.Writer) error
	Comment(w io.Writer, text string) error
	FixedWidth(w io.Writer, text string) error
	Link(w io.Writer, path, desc string) error
	Verbatim(w io.Writer, text string) error
	Code(w io.Writer, text string) error
	Text(w io.Writer, text string) error
}

// Export sends the events of root to h, in order.
// It stops at the first error a handler method returns.
func Export(w io.Writer, root *Node, h Handler) error {
	for ev := range Events(root) {
		if err := dispatch(h, w, ev); err != nil {
			return fmt.Errorf("export org: %w", err)
		}
	}
	return nil
}

// dispatch calls the method of h that corresponds to the event's kind.
func dispatch(h Handler, w io.Writer, ev Event) error {
	switch ev.Kind {
	case DocumentBeg:
		return h.DocumentBeg(w)
	case DocumentEnd:
		return h.DocumentEnd(w)
	case HeadlineBeg:
		return h.HeadlineBeg(w, ev.Node)
	case HeadlineEnd:
		return h.HeadlineEnd(w, ev.Node)
	case TitleBeg:
		return h.TitleBeg(w, ev.Node)
	case TitleEnd:
		return h.TitleEnd(w, ev.Node)
	case SectionBeg:
		return h.SectionBeg(w)
	case SectionEnd:
		return h.SectionEnd(w)
	case ParagraphBeg:
		return h.ParagraphBeg(w)
	case ParagraphEnd:
		return h.ParagraphEnd(w)
	case BoldBeg:
		return h.BoldBeg(w)
	case BoldEnd:
		return h.BoldEnd(w)
	case ItalicBeg:
		return h.ItalicBeg(w)
	case ItalicEnd:
		return h.ItalicEnd(w)
	case UnderlineBeg:
		return h.UnderlineBeg(w)
	case UnderlineEnd:
		return h.UnderlineEnd(w)
	case StrikeBeg:
		return h.StrikeBeg(w)
	case StrikeEnd:
		return h.StrikeEnd(w)
	case KeywordEvent:
		return h.Keyword(w, ev.Name, ev.Text)
	case RuleEvent:
		return h.Rule(w)
	case CommentEvent:
		return h.Comment(w, ev.Text)
	case FixedWidthEvent:
		return h.FixedWidth(w, ev.Text)
	case LinkEvent:
		return h.Link(w, ev.Name, ev.Text)
	case VerbatimEvent:
		return h.Verbatim(w, ev.Text)
	case CodeEvent:
		return h.Code(w, ev.Text)
	case TextEvent:
		return h.Text(w, ev.Text)
	default:
		panic(fmt.Sprintf("unhandled event %v", ev.Kind))
	}
}
