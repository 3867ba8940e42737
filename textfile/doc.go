/*
Package textfile provides API helpers to load UTF-8 text files line by line,
for clients applying sequence algorithms to each line.

Loading is done asynchronously. Batches of lines are broadcast to all
subscribers as soon as they have been read, which lets several consumers
(e.g., a search and a statistics collector) share one pass over a file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqalgo'
func tracer() tracing.Trace {
	return tracing.Select("seqalgo")
}
