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
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HTMLHandler is a [Handler] that writes HTML.
// The zero value writes headings without ids
// and classifies headline keywords with [DefaultParseConfig].
//
// Keywords and comments produce no output.
type HTMLHandler struct {
	// If HeadingIDs is true, headings get an id attribute
	// derived from the headline's title text.
	HeadingIDs bool
	// Config is used to tell done keywords from open ones.
	// If Config is nil, [DefaultParseConfig] is used.
	Config *ParseConfig
}

// RenderHTML writes root to w as HTML
// using the default options for [HTMLHandler].
func RenderHTML(w io.Writer, root *Node) error {
	return Export(w, root, new(HTMLHandler))
}

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func writeEscaped(w io.Writer, s string) error {
	_, err := w.Write(htmlEscaper.Replace([]byte(s)))
	return err
}

func openTag(w io.Writer, name atom.Atom) error {
	_, err := io.WriteString(w, "<"+name.String()+">")
	return err
}

func closeTag(w io.Writer, name atom.Atom) error {
	_, err := io.WriteString(w, "</"+name.String()+">")
	return err
}

func closeBlockTag(w io.Writer, name atom.Atom) error {
	_, err := io.WriteString(w, "</"+name.String()+">\n")
	return err
}

func (h *HTMLHandler) DocumentBeg(w io.Writer) error {
	_, err := io.WriteString(w, "<main>\n")
	return err
}

func (h *HTMLHandler) DocumentEnd(w io.Writer) error {
	return closeBlockTag(w, atom.Main)
}

func (h *HTMLHandler) HeadlineBeg(w io.Writer, headline *Node) error { return nil }
func (h *HTMLHandler) HeadlineEnd(w io.Writer, headline *Node) error { return nil }

// headingTag returns the heading element for a headline.
// Levels deeper than six share the h6 element.
func headingTag(headline *Node) atom.Atom {
	switch headline.HeadlineLevel() {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func (h *HTMLHandler) TitleBeg(w io.Writer, headline *Node) error {
	tag := headingTag(headline)
	buf := []byte("<" + tag.String())
	if h.HeadingIDs {
		if id := HeadingID(headline.HeadlineTitle().Text()); id != "" {
			buf = append(buf, ` id="`...)
			buf = append(buf, htmlEscaper.Replace([]byte(id))...)
			buf = append(buf, '"')
		}
	}
	buf = append(buf, '>')
	if kw := headline.HeadlineKeyword(); kw != "" {
		class := "todo"
		if h.Config.IsDoneKeyword(kw) {
			class = "done"
		}
		buf = append(buf, `<span class="`+class+`">`...)
		buf = append(buf, htmlEscaper.Replace([]byte(kw))...)
		buf = append(buf, "</span>"...)
		if headline.HeadlineTitle() != nil {
			buf = append(buf, ' ')
		}
	}
	_, err := w.Write(buf)
	return err
}

func (h *HTMLHandler) TitleEnd(w io.Writer, headline *Node) error {
	return closeBlockTag(w, headingTag(headline))
}

func (h *HTMLHandler) SectionBeg(w io.Writer) error {
	_, err := io.WriteString(w, "<section>\n")
	return err
}

func (h *HTMLHandler) SectionEnd(w io.Writer) error {
	return closeBlockTag(w, atom.Section)
}

func (h *HTMLHandler) ParagraphBeg(w io.Writer) error { return openTag(w, atom.P) }
func (h *HTMLHandler) ParagraphEnd(w io.Writer) error { return closeBlockTag(w, atom.P) }
func (h *HTMLHandler) BoldBeg(w io.Writer) error      { return openTag(w, atom.B) }
func (h *HTMLHandler) BoldEnd(w io.Writer) error      { return closeTag(w, atom.B) }
func (h *HTMLHandler) ItalicBeg(w io.Writer) error    { return openTag(w, atom.I) }
func (h *HTMLHandler) ItalicEnd(w io.Writer) error    { return closeTag(w, atom.I) }
func (h *HTMLHandler) UnderlineBeg(w io.Writer) error { return openTag(w, atom.U) }
func (h *HTMLHandler) UnderlineEnd(w io.Writer) error { return closeTag(w, atom.U) }
func (h *HTMLHandler) StrikeBeg(w io.Writer) error    { return openTag(w, atom.S) }
func (h *HTMLHandler) StrikeEnd(w io.Writer) error    { return closeTag(w, atom.S) }

func (h *HTMLHandler) Keyword(w io.Writer, key, value string) error { return nil }
func (h *HTMLHandler) Comment(w io.Writer, text string) error       { return nil }

func (h *HTMLHandler) Rule(w io.Writer) error {
	_, err := io.WriteString(w, "<hr>\n")
	return err
}

func (h *HTMLHandler) FixedWidth(w io.Writer, text string) error {
	if _, err := io.WriteString(w, `<pre class="example">`); err != nil {
		return err
	}
	if err := writeEscaped(w, text); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</pre>\n")
	return err
}

func (h *HTMLHandler) Link(w io.Writer, path, desc string) error {
	if desc == "" {
		desc = path
	}
	if _, err := io.WriteString(w, `<a href="`); err != nil {
		return err
	}
	if err := writeEscaped(w, NormalizeURI(path)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `">`); err != nil {
		return err
	}
	if err := writeEscaped(w, desc); err != nil {
		return err
	}
	return closeTag(w, atom.A)
}

func (h *HTMLHandler) Verbatim(w io.Writer, text string) error {
	return h.Code(w, text)
}

func (h *HTMLHandler) Code(w io.Writer, text string) error {
	if err := openTag(w, atom.Code); err != nil {
		return err
	}
	if err := writeEscaped(w, text); err != nil {
		return err
	}
	return closeTag(w, atom.Code)
}

func (h *HTMLHandler) Text(w io.Writer, text string) error {
	return writeEscaped(w, text)
}

// slugFolder strips accents and case from heading text.
var slugFolder = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	cases.Lower(language.Und),
)

// HeadingID returns an HTML id for a heading with the given title text.
// Letters and digits are kept (folded to lowercase without accents)
// and every other run of characters becomes a single hyphen.
// HeadingID returns the empty string if title has no letters or digits.
func HeadingID(title string) string {
	folded, _, err := transform.String(slugFolder, title)
	if err != nil {
		folded = strings.ToLower(title)
	}
	sb := new(strings.Builder)
	pendingHyphen := false
	for _, c := range folded {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			pendingHyphen = sb.Len() > 0
			continue
		}
		if pendingHyphen {
			sb.WriteByte('-')
			pendingHyphen = false
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// NormalizeURI percent-encodes any characters in a string
// that are not reserved or unreserved URI characters.
// Existing percent escapes are left alone.
func NormalizeURI(s string) string {
	// RFC 3986 reserved and unreserved characters.
	const safeSet = `;/?:@&=+$,-_.!~*'()#`

	sb := new(strings.Builder)
	sb.Grow(len(s))
	var buf [utf8.UTFMax]byte
	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			sb.WriteString(s[i : i+3])
			i += 3
			continue
		case c == '%':
			sb.WriteString("%25")
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.ContainsRune(safeSet, c):
			sb.WriteRune(c)
		default:
			n := utf8.EncodeRune(buf[:], c)
			for _, b := range buf[:n] {
				sb.WriteByte('%')
				sb.WriteByte(urlHexDigit(b >> 4))
				sb.WriteByte(urlHexDigit(b & 0x0f))
			}
		}
		i += size
	}
	return sb.String()
}

func isHex(c byte) bool {
	return 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' || '0' <= c && c <= '9'
}

var _ Handler = (*HTMLHandler)(nil)

func urlHexDigit(x byte) byte {
	if x < 0xa {
		return '0' + x
	}
	return 'A' + x - 0xa
}
