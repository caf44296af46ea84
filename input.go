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

// input is a cursor over the source text that remains to be parsed.
// Advancing an input produces a new value;
// an input is never modified in place.
type input struct {
	s      string
	config *ParseConfig
}

func newInput(s string, config *ParseConfig) input {
	return input{s: s, config: config}
}

func (in input) String() string {
	return in.s
}

func (in input) len() int {
	return len(in.s)
}

func (in input) isEmpty() bool {
	return len(in.s) == 0
}

// splitAt splits the input into the first n bytes and the remainder.
// n must come from a prior scan of the same text.
func (in input) splitAt(n int) (prefix, rest input) {
	return input{s: in.s[:n], config: in.config}, input{s: in.s[n:], config: in.config}
}

// take returns the input with n bytes removed from the front.
func (in input) take(n int) input {
	_, rest := in.splitAt(n)
	return rest
}

// token returns a token of the given kind covering the whole input.
func (in input) token(kind Kind) Element {
	return NewToken(kind, in.s).AsElement()
}

// slice returns the input between byte offsets i and j.
func (in input) slice(i, j int) input {
	return input{s: in.s[i:j], config: in.config}
}
