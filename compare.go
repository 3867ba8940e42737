package seqalgo

import "cmp"

// Comparator is an equality predicate on pairs of elements. Every finder and
// the predicates StartsWith, EndsWith, Contains and Equals accept a Comparator.
type Comparator[T any] func(a, b T) bool

// Ordinal returns the comparator for element identity (==).
func Ordinal[T comparable]() Comparator[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// IEqual returns a case-insensitive comparator for runes. Both runes are
// mapped to upper case according to loc before comparison. A nil locale
// selects the default locale.
func IEqual(loc *Locale) Comparator[rune] {
	loc = localeOrDefault(loc)
	return func(a, b rune) bool {
		return a == b || loc.ToUpper(a) == loc.ToUpper(b)
	}
}

// IEqualByte returns a case-insensitive comparator for ASCII bytes.
func IEqualByte() Comparator[byte] {
	return func(a, b byte) bool {
		return a == b || upperASCII(a) == upperASCII(b)
	}
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Ordering is a strict-weak-ordering predicate on pairs of elements.
type Ordering[T any] func(a, b T) bool

// OrdinalLess returns the natural ordering of ordered element types.
func OrdinalLess[T cmp.Ordered]() Ordering[T] {
	return cmp.Less[T]
}

// ILess returns a case-insensitive ordering for runes.
func ILess(loc *Locale) Ordering[rune] {
	loc = localeOrDefault(loc)
	return func(a, b rune) bool {
		return loc.ToUpper(a) < loc.ToUpper(b)
	}
}
