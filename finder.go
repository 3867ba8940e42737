package seqalgo

import "slices"

// Finder locates a match within a region. The region is given as a view; the
// result must be a view within the region. An empty view positioned at the end
// of the region signals that there is no match.
//
// Finders are pure: applying a finder twice to the same region yields the same
// match. Finders for repeated application (see FindIterator and FindFormatAll)
// must make forward progress, i.e. the engines will stop at the first empty
// match and treat matches before the search position as a contract violation.
//
// A nil Finder is valid and never reports a match.
type Finder[T any] func(region View[T]) View[T]

// Find applies the finder to a region. For a nil finder Find returns the
// "not found" match.
func (f Finder[T]) Find(region View[T]) View[T] {
	if f == nil {
		return region.AtEnd()
	}
	return f(region)
}

// TokenCompress controls how token finders treat adjacent tokens.
type TokenCompress int

const (
	// CompressOff: every token element is a match of its own. When splitting,
	// adjacent separators delimit empty tokens.
	CompressOff TokenCompress = iota
	// CompressOn: adjacent token elements are merged into a single match.
	CompressOn
)

func (c TokenCompress) String() string {
	if c == CompressOn {
		return "compress-on"
	}
	return "compress-off"
}

// --- Pattern finders -------------------------------------------------------

// FirstFinder returns a finder for the first occurrence of pattern. An empty
// pattern matches at the start of the region with length zero.
// The pattern is copied.
func FirstFinder[T any](pattern []T, cmp Comparator[T]) Finder[T] {
	assert(cmp != nil, "seqalgo.FirstFinder: comparator must not be nil")
	pat := slices.Clone(pattern)
	return func(region View[T]) View[T] {
		return findFirst(region, pat, cmp)
	}
}

// LastFinder returns a finder for the last occurrence of pattern. An empty
// pattern matches at the end of the region with length zero.
// The pattern is copied.
func LastFinder[T any](pattern []T, cmp Comparator[T]) Finder[T] {
	assert(cmp != nil, "seqalgo.LastFinder: comparator must not be nil")
	pat := slices.Clone(pattern)
	return func(region View[T]) View[T] {
		return findLast(region, pat, cmp)
	}
}

// NthFinder returns a finder for the nth (zero-indexed) occurrence of pattern.
// For negative nth occurrences are counted from the end, i.e. -1 denotes the
// last occurrence. Occurrences do not overlap.
// If there are not enough occurrences, the finder reports no match.
func NthFinder[T any](pattern []T, nth int, cmp Comparator[T]) Finder[T] {
	assert(cmp != nil, "seqalgo.NthFinder: comparator must not be nil")
	pat := slices.Clone(pattern)
	return func(region View[T]) View[T] {
		if nth >= 0 {
			return findNthForward(region, pat, nth, cmp)
		}
		return findNthBackward(region, pat, -nth-1, cmp)
	}
}

func matchesAt[T any](base []T, pos int, pat []T, cmp Comparator[T]) bool {
	for j := range pat {
		if !cmp(base[pos+j], pat[j]) {
			return false
		}
	}
	return true
}

func findFirst[T any](region View[T], pat []T, cmp Comparator[T]) View[T] {
	if len(pat) == 0 {
		return region.AtBegin()
	}
	for i := region.from; i+len(pat) <= region.to; i++ {
		if matchesAt(region.base, i, pat, cmp) {
			return View[T]{base: region.base, from: i, to: i + len(pat)}
		}
	}
	return region.AtEnd()
}

func findLast[T any](region View[T], pat []T, cmp Comparator[T]) View[T] {
	if len(pat) == 0 {
		return region.AtEnd()
	}
	for i := region.to - len(pat); i >= region.from; i-- {
		if matchesAt(region.base, i, pat, cmp) {
			return View[T]{base: region.base, from: i, to: i + len(pat)}
		}
	}
	return region.AtEnd()
}

func findNthForward[T any](region View[T], pat []T, nth int, cmp Comparator[T]) View[T] {
	if len(pat) == 0 {
		return region.AtBegin()
	}
	cursor := region.from
	for n := 0; ; n++ {
		m := findFirst(region.From(cursor), pat, cmp)
		if m.IsEmpty() {
			return region.AtEnd()
		}
		if n == nth {
			return m
		}
		cursor = m.to
	}
}

func findNthBackward[T any](region View[T], pat []T, nth int, cmp Comparator[T]) View[T] {
	if len(pat) == 0 {
		return region.AtEnd()
	}
	cursor := region.to
	for n := 0; ; n++ {
		m := findLast(region.Until(cursor), pat, cmp)
		if m.IsEmpty() {
			return region.AtEnd()
		}
		if n == nth {
			return m
		}
		cursor = m.from
	}
}

// --- Positional finders ----------------------------------------------------

// RangeFinder returns a finder which reports a fixed range, independent of
// the region contents. The positions of fixed are interpreted as absolute
// positions and are clipped to the searched region; if fixed and the region
// do not overlap, the finder reports no match.
func RangeFinder[T any](fixed View[T]) Finder[T] {
	from, to := fixed.from, fixed.to
	return func(region View[T]) View[T] {
		f, t := max(from, region.from), min(to, region.to)
		if f > t || (f == t && from != to) {
			return region.AtEnd()
		}
		return View[T]{base: region.base, from: f, to: t}
	}
}

// HeadFinder returns a finder for the head of a region. For n >= 0 the head
// consists of the first min(n, size) elements, for n < 0 of the first
// max(0, size-|n|) elements.
func HeadFinder[T any](n int) Finder[T] {
	return func(region View[T]) View[T] {
		return region.Sub(0, headLen(region.Len(), n))
	}
}

// TailFinder returns a finder for the tail of a region. For n >= 0 the tail
// consists of the last min(n, size) elements, for n < 0 of the last
// max(0, size-|n|) elements.
func TailFinder[T any](n int) Finder[T] {
	return func(region View[T]) View[T] {
		l := region.Len()
		return region.Sub(l-headLen(l, n), l)
	}
}

func headLen(size, n int) int {
	if n >= 0 {
		return min(n, size)
	}
	return max(0, size+n)
}

// --- Token finder ----------------------------------------------------------

// TokenFinder returns a finder for tokens, i.e. elements satisfying a
// classifier. With CompressOn, a maximal run of adjacent token elements
// is reported as a single match; with CompressOff each token element is a
// match of its own.
func TokenFinder[T any](c Classifier[T], compress TokenCompress) Finder[T] {
	return func(region View[T]) View[T] {
		i := region.from
		for i < region.to && !classify(c, region.base[i]) {
			i++
		}
		if i == region.to {
			return region.AtEnd()
		}
		j := i + 1
		if compress == CompressOn {
			for j < region.to && classify(c, region.base[j]) {
				j++
			}
		}
		return View[T]{base: region.base, from: i, to: j}
	}
}
