/*
Package multi provides finders searching for any of a set of patterns in one
pass over a byte sequence.

The patterns are compiled into an Aho-Corasick automaton. Finders created
from a Dictionary plug into every algorithm of package seqalgo, i.e. they may
be used for replace-all, find iteration and splitting.
*/
package multi

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seqalgo"
)

// tracer writes to trace with key 'seqalgo'
func tracer() tracing.Trace {
	return tracing.Select("seqalgo")
}

// Dictionary is a compiled set of non-empty patterns. It is immutable and
// safe for concurrent use.
type Dictionary struct {
	auto  *ahocorasick.Automaton
	count int
}

// NewDictionary compiles patterns into a dictionary. At least one pattern is
// required and none of them may be empty.
func NewDictionary(patterns ...string) (*Dictionary, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("multi: no patterns given: %w", seqalgo.ErrIllegalArguments)
	}
	builder := ahocorasick.NewBuilder()
	for i, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("multi: pattern #%d: %w", i, seqalgo.ErrEmptyPattern)
		}
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("multi: cannot compile dictionary: %w", err)
	}
	tracer().Debugf("multi: compiled dictionary of %d patterns", len(patterns))
	return &Dictionary{auto: auto, count: len(patterns)}, nil
}

// Len returns the number of patterns in d.
func (d *Dictionary) Len() int {
	return d.count
}

// Finder returns a finder for the first occurrence of any pattern of d within
// a region.
func (d *Dictionary) Finder() seqalgo.Finder[byte] {
	return func(region seqalgo.View[byte]) seqalgo.View[byte] {
		if region.IsEmpty() {
			return region.AtEnd()
		}
		haystack := region.Base()[:region.End()]
		m := d.auto.Find(haystack, region.Begin())
		if m == nil {
			return region.AtEnd()
		}
		return region.Slice(m.Start, m.End)
	}
}

// IsMatch reports whether any pattern of d occurs in input.
func (d *Dictionary) IsMatch(input []byte) bool {
	return d.auto.IsMatch(input)
}

// AnyFinder compiles patterns and returns a finder for the first occurrence
// of any of them.
func AnyFinder(patterns ...string) (seqalgo.Finder[byte], error) {
	d, err := NewDictionary(patterns...)
	if err != nil {
		return nil, err
	}
	return d.Finder(), nil
}

// ReplaceAny returns a copy of input with every occurrence of any pattern of d
// replaced by format.
func (d *Dictionary) ReplaceAny(input []byte, format []byte) []byte {
	return seqalgo.FindFormatAllCopy(input, d.Finder(), seqalgo.ConstFormatter(format))
}

// FindAny returns all non-overlapping occurrences of patterns of d in input.
func (d *Dictionary) FindAny(input []byte) [][]byte {
	return seqalgo.IterFind(input, d.Finder())
}
