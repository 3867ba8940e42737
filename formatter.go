package seqalgo

import "slices"

// Formatter computes the replacement for a match. Formatters must not modify
// the elements of the match, and callers must not modify the returned slice,
// which may be shared between invocations.
type Formatter[T any] func(match View[T]) []T

// ConstFormatter returns a formatter which ignores the match and always yields
// a copy of repl, taken once at construction time.
func ConstFormatter[T any](repl []T) Formatter[T] {
	r := slices.Clip(slices.Clone(repl))
	return func(View[T]) []T {
		return r
	}
}

// IdentityFormatter returns a formatter yielding the elements of the match
// itself. Replacing with the identity formatter leaves a sequence unchanged.
func IdentityFormatter[T any]() Formatter[T] {
	return func(match View[T]) []T {
		return match.Elems()
	}
}

// EmptyFormatter returns a formatter yielding no elements. Replacing with the
// empty formatter erases the match.
func EmptyFormatter[T any]() Formatter[T] {
	return func(View[T]) []T {
		return nil
	}
}

// DissectFormatter returns a formatter which applies finder to the match and
// yields the elements of the narrower match found. If finder does not match,
// the formatter yields no elements.
func DissectFormatter[T any](finder Finder[T]) Formatter[T] {
	return func(match View[T]) []T {
		return finder.Find(match).Elems()
	}
}

// --- Find/format store -----------------------------------------------------

// findFormatStore pairs a match with the formatter output for it. The
// formatter is re-run only when a new non-empty match is assigned.
type findFormatStore[T any] struct {
	match     View[T]
	formatted []T
	formatter Formatter[T]
}

func newFindFormatStore[T any](m View[T], formatted []T, fm Formatter[T]) *findFormatStore[T] {
	return &findFormatStore[T]{match: m, formatted: formatted, formatter: fm}
}

func (s *findFormatStore[T]) assign(m View[T]) {
	s.match = m
	if !m.IsEmpty() {
		s.formatted = s.formatter(m)
	}
}

func (s *findFormatStore[T]) found() bool {
	return !s.match.IsEmpty()
}
