package seqalgo

import "iter"

// FindIterator repeatedly applies a finder to a sequence and walks the
// matches found. Each step continues searching at the end of the current
// match.
//
// A FindIterator created by
//
//	FindIterator[T]{}
//
// is valid and at eof. All eof iterators are equal.
type FindIterator[T any] struct {
	finder Finder[T]
	match  View[T]
	seq    View[T]
}

// NewFindIterator creates a find iterator positioned at the first match of
// finder within seq.
func NewFindIterator[T any](seq View[T], finder Finder[T]) *FindIterator[T] {
	it := &FindIterator[T]{
		finder: finder,
		match:  seq.AtBegin(),
		seq:    seq,
	}
	it.increment()
	return it
}

func (it *FindIterator[T]) increment() {
	region := it.seq.From(it.match.to)
	m := nextMatch(it.finder, region)
	if m.IsEmpty() {
		// empty matches cannot make progress; treat them as end of input
		m = region.AtEnd()
	}
	it.match = m
}

// Match returns the current match. At eof it returns an empty view positioned
// at the end of the sequence.
func (it *FindIterator[T]) Match() View[T] {
	return it.match
}

// Next advances the iterator to the next match and reports whether the
// iterator is positioned at a match afterwards.
func (it *FindIterator[T]) Next() bool {
	if it.Eof() {
		return false
	}
	it.increment()
	return !it.Eof()
}

// Eof reports whether there are no (more) matches.
func (it *FindIterator[T]) Eof() bool {
	return it == nil || it.finder == nil ||
		(it.match.from == it.seq.to && it.match.to == it.seq.to)
}

// Equal reports whether two iterators are positioned at the same match of the
// same sequence. Iterators at eof are equal to each other.
func (it *FindIterator[T]) Equal(other *FindIterator[T]) bool {
	eof, otherEOF := it.Eof(), other.Eof()
	if eof || otherEOF {
		return eof == otherEOF
	}
	return sameBounds(it.match, other.match) && it.seq.to == other.seq.to
}

// SplitIterator repeatedly applies a finder to a sequence and walks the gaps
// between matches: the gap before the first match, the gaps between adjacent
// matches and the gap after the last match. Gaps may be empty.
//
// A split iterator always yields at least one token: for a sequence without
// matches, and for an empty sequence, the single token is the whole sequence.
//
// The zero value of SplitIterator is valid and at eof.
type SplitIterator[T any] struct {
	finder Finder[T]
	token  View[T]
	next   int
	seq    View[T]
	eof    bool
}

// NewSplitIterator creates a split iterator positioned at the first token of
// seq.
func NewSplitIterator[T any](seq View[T], finder Finder[T]) *SplitIterator[T] {
	it := &SplitIterator[T]{
		finder: finder,
		token:  seq.AtBegin(),
		next:   seq.from,
		seq:    seq,
	}
	if !seq.IsEmpty() {
		it.increment()
	}
	return it
}

func (it *SplitIterator[T]) increment() {
	region := it.seq.From(it.next)
	m := nextMatch(it.finder, region)
	if m.IsEmpty() {
		m = region.AtEnd()
		if it.token.to == it.seq.to {
			it.eof = true
		}
	}
	it.token = it.seq.Slice(it.next, m.from)
	it.next = m.to
}

// Token returns the current token.
func (it *SplitIterator[T]) Token() View[T] {
	return it.token
}

// Next advances the iterator to the next token and reports whether the
// iterator is positioned at a token afterwards.
func (it *SplitIterator[T]) Next() bool {
	if it.Eof() {
		return false
	}
	it.increment()
	return !it.Eof()
}

// Eof reports whether all tokens have been visited.
func (it *SplitIterator[T]) Eof() bool {
	return it == nil || it.finder == nil || it.eof
}

// Equal reports whether two iterators are positioned at the same token of the
// same sequence. Iterators at eof are equal to each other.
func (it *SplitIterator[T]) Equal(other *SplitIterator[T]) bool {
	eof, otherEOF := it.Eof(), other.Eof()
	if eof || otherEOF {
		return eof == otherEOF
	}
	return sameBounds(it.token, other.token) && it.next == other.next &&
		it.seq.to == other.seq.to
}

// --- Range functions -------------------------------------------------------

// Matches returns an iterator over all matches of finder in seq.
func Matches[T any](seq View[T], finder Finder[T]) iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for it := NewFindIterator(seq, finder); !it.Eof(); it.Next() {
			if !yield(it.Match()) {
				return
			}
		}
	}
}

// Tokens returns an iterator over all gaps between matches of finder in seq.
func Tokens[T any](seq View[T], finder Finder[T]) iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for it := NewSplitIterator(seq, finder); !it.Eof(); it.Next() {
			if !yield(it.Token()) {
				return
			}
		}
	}
}
