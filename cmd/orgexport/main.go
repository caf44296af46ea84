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

// orgexport converts an Org document to HTML,
// reformats it, or dumps its syntax tree.
//
// Usage:
//
//	orgexport [flags] [FILE]
//
// If no file is given, the document is read from standard input.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"zombiezen.com/go/org"
	"zombiezen.com/go/org/format"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	format     string
	outPath    string
	todo       []string
	done       []string
	headingIDs bool
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaults := org.DefaultParseConfig()
	opts := new(options)
	flags := pflag.NewFlagSet("orgexport", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", "html", "Output format: html|org|tree")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringSliceVar(&opts.todo, "todo", defaults.TodoKeywords, "Headline keywords for open items")
	flags.StringSliceVar(&opts.done, "done", defaults.DoneKeywords, "Headline keywords for finished items")
	flags.BoolVar(&opts.headingIDs, "heading-ids", false, "Add id attributes to HTML headings")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log parse statistics")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: orgexport [flags] [FILE]\n")
		fmt.Fprintln(stderr, "\nIf no file is provided, Org is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	input := stdin
	inputName := "<stdin>"
	if flags.NArg() == 1 {
		inputName = flags.Arg(0)
		f, err := os.Open(inputName)
		if err != nil {
			log.Error("open input", "error", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	output := stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			log.Error("open output", "error", err)
			return 1
		}
		defer f.Close()
		output = f
	}

	if err := convert(output, input, opts, log.With("input", inputName)); err != nil {
		log.Error("convert", "error", err)
		return 1
	}
	return 0
}

func convert(w io.Writer, r io.Reader, opts *options, log *slog.Logger) error {
	source, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	config := &org.ParseConfig{
		TodoKeywords: opts.todo,
		DoneKeywords: opts.done,
	}
	doc := org.Parse(string(source), config)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("parsed document",
			"bytes", doc.Width(),
			"elements", countElements(doc),
			"headlines", len(doc.Headlines()))
	}

	switch opts.format {
	case "html":
		return org.Export(w, doc, &org.HTMLHandler{
			HeadingIDs: opts.headingIDs,
			Config:     config,
		})
	case "org":
		return format.Format(w, doc)
	case "tree":
		if _, err := io.WriteString(w, doc.DebugString()); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func countElements(doc *org.Node) int {
	n := 0
	org.Walk(doc.AsElement(), &org.WalkOptions{
		Pre: func(c *org.Cursor) bool {
			n++
			return true
		},
	})
	return n
}
