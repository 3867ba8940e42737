/*
Package seqalgo offers generic algorithms on sequences: find, replace, erase,
split, trim, join and case conversion.

Sequences

The algorithms of this package are not restricted to text. They operate on
slices of any element type T, through a non-owning window type View[T]. A view
is the currency of all algorithms: finders take a view of the region to search
and return a view of the match; formatters take the view of a match and
produce replacement elements.

	text := []rune("hello world")
	m := seqalgo.FindFirst(text, []rune("wor"))  // m.Begin()==6, m.Len()==3

Finders and Formatters

A Finder locates a match within a region. The package provides finders for
first, last and n-th occurrence of a pattern, for heads and tails of a
sequence, for fixed ranges and for runs of elements satisfying a Classifier
(tokens). A Formatter computes the replacement for a match. The find/replace
engine combines both:

	seqalgo.FindFormatAll(&text, seqalgo.FirstFinder([]rune("l"), seqalgo.Ordinal[rune]()),
	    seqalgo.ConstFormatter([]rune("LL")))

No match is not an error: finders report it with an empty view positioned at
the end of the searched region.

Case Insensitivity

Case-insensitive comparison and white-space classification are driven by a
Locale. Every locale-dependent operation accepts a *Locale; nil selects the
process default, which is derived once from the environment.

Package strs offers a string-centric facade for the common cases.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package seqalgo

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeqError is an error type for the seqalgo module.
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a position lies outside of a sequence.
const ErrIndexOutOfBounds = SeqError("index out of bounds")

// ErrEmptyPattern is flagged by constructors which cannot operate on an empty
// search pattern.
const ErrEmptyPattern = SeqError("empty search pattern")

// ErrUnknownLocale is flagged if a locale identifier cannot be parsed.
const ErrUnknownLocale = SeqError("unknown locale")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
