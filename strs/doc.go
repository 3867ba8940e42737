/*
Package strs offers the sequence algorithms of package seqalgo for Go strings.

Strings are decoded to runes, processed by the generic algorithms and encoded
again. Positions returned by this package are byte offsets into the input
string, as is customary for Go strings, provided the input is valid UTF-8.

Grapheme helpers segment strings into user-perceived characters, following
Unicode UAX#29, and measure their display width following UAX#11.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package strs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqalgo'
func tracer() tracing.Trace {
	return tracing.Select("seqalgo")
}
