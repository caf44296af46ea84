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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"zombiezen.com/go/org/internal/corpus"
	"zombiezen.com/go/org/internal/normhtml"
)

func TestCorpus(t *testing.T) {
	examples, err := corpus.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, ex := range examples {
		t.Run(ex.Name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := RenderHTML(buf, Parse(ex.Org, nil)); err != nil {
				t.Fatal("RenderHTML:", err)
			}
			got := string(normhtml.NormalizeHTML(buf.Bytes()))
			want := string(normhtml.NormalizeHTML([]byte(ex.HTML)))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", ex.Org, diff)
			}
		})
	}
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name    string
		handler *HTMLHandler
		source  string
		want    string
	}{
		{
			name:    "Paragraph",
			handler: new(HTMLHandler),
			source:  "Hi <you>\n",
			want:    "<main>\n<section>\n<p>Hi &lt;you&gt;\n</p>\n</section>\n</main>\n",
		},
		{
			name:    "HeadingIDs",
			handler: &HTMLHandler{HeadingIDs: true},
			source:  "** Ünïcode & *Stuff*!\n",
			want:    "<main>\n<h2 id=\"unicode-stuff\">Ünïcode &amp; <b>Stuff</b>!</h2>\n</main>\n",
		},
		{
			name:    "KeywordOnly",
			handler: &HTMLHandler{HeadingIDs: true},
			source:  "* DONE\n",
			want:    "<main>\n<h1><span class=\"done\">DONE</span></h1>\n</main>\n",
		},
		{
			name:    "CustomDoneKeyword",
			handler: &HTMLHandler{Config: &ParseConfig{DoneKeywords: []string{"WONTFIX"}}},
			source:  "* DONE Bug\n",
			want:    "<main>\n<h1><span class=\"todo\">DONE</span> Bug</h1>\n</main>\n",
		},
		{
			name:    "Link",
			handler: new(HTMLHandler),
			source:  "[[https://example.com/a b?q=\"x\"][go <there>]]",
			want:    "<main>\n<section>\n<p><a href=\"https://example.com/a%20b?q=%22x%22\">go &lt;there&gt;</a></p>\n</section>\n</main>\n",
		},
		{
			name:    "FixedWidth",
			handler: new(HTMLHandler),
			source:  ": a & b\n:   c\n",
			want:    "<main>\n<section>\n<pre class=\"example\">a &amp; b\n  c\n</pre>\n</section>\n</main>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := new(strings.Builder)
			if err := Export(buf, Parse(test.source, nil), test.handler); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, buf.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderHTMLWriteError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	err := RenderHTML(errWriter{errBroken}, Parse("x\n", nil))
	if !errors.Is(err, errBroken) {
		t.Errorf("RenderHTML(...) = %v; want %v", err, errBroken)
	}
}

type errWriter struct {
	err error
}

func (w errWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func FuzzRenderHTML(f *testing.F) {
	examples, err := corpus.Load()
	if err != nil {
		f.Fatal(err)
	}
	for _, ex := range examples {
		f.Add(ex.Org)
	}
	f.Fuzz(func(t *testing.T, source string) {
		buf := new(bytes.Buffer)
		if err := Export(buf, Parse(source, nil), &HTMLHandler{HeadingIDs: true}); err != nil {
			t.Fatal(err)
		}
		if err := checkBalancedHTML(buf.Bytes()); err != nil {
			t.Errorf("%v\nhtml:\n%s", err, buf)
		}
	})
}

func BenchmarkRenderHTML(b *testing.B) {
	examples, err := corpus.Load()
	if err != nil {
		b.Fatal(err)
	}
	input := new(strings.Builder)
	for i, ex := range examples {
		if i > 0 {
			input.WriteString("\n")
		}
		input.WriteString(ex.Org)
	}
	doc := Parse(input.String(), nil)
	b.ResetTimer()
	b.SetBytes(int64(input.Len()))
	b.ReportMetric(float64(len(examples)), "examples/op")

	for i := 0; i < b.N; i++ {
		RenderHTML(io.Discard, doc)
	}
}

// checkBalancedHTML verifies that every start tag in b
// is closed by a matching end tag.
func checkBalancedHTML(b []byte) error {
	tok := html.NewTokenizer(bytes.NewReader(b))
	var stack []string
	for {
		switch tok.Next() {
		case html.ErrorToken:
			if err := tok.Err(); err != io.EOF {
				return err
			}
			if len(stack) > 0 {
				return fmt.Errorf("unclosed <%s>", stack[len(stack)-1])
			}
			return nil
		case html.StartTagToken:
			name, _ := tok.TagName()
			if string(name) == "hr" {
				continue
			}
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := tok.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				return fmt.Errorf("unexpected </%s>", name)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func TestHeadingID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"", ""},
		{"Hello", "hello"},
		{"Hello, World!", "hello-world"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Crème Brûlée", "creme-brulee"},
		{"*bold* and =code=", "bold-and-code"},
		{"v1.2", "v1-2"},
		{"!!!", ""},
		{"日本語", "日本語"},
	}
	for _, test := range tests {
		if got := HeadingID(test.title); got != test.want {
			t.Errorf("HeadingID(%q) = %q; want %q", test.title, got, test.want)
		}
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"https://example.com/", "https://example.com/"},
		{"a b", "a%20b"},
		{"100%", "100%25"},
		{"%2f", "%2f"},
		{"%zz", "%25zz"},
		{"ü", "%C3%BC"},
		{"a[b]", "a%5Bb%5D"},
	}
	for _, test := range tests {
		if got := NormalizeURI(test.s); got != test.want {
			t.Errorf("NormalizeURI(%q) = %q; want %q", test.s, got, test.want)
		}
	}
}
