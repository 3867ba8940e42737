package seqalgo

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// View is a non-owning window [from,to) over a slice of elements.
//
// A view created by
//
//	View[T]{}
//
// is a valid object and behaves like an empty sequence.
//
// Positions returned by Begin and End are absolute offsets into the base
// slice the view has been taken from. This lets matches found in a sub-region
// be related to the original sequence without further arithmetic.
//
// A view must not outlive the slice it has been created from, and the slice
// must not be re-allocated while views into it are in use.
type View[T any] struct {
	base     []T
	from, to int
}

// Match is a view identifying the location of a finder result. An empty match
// positioned at the end of the searched region signals "not found".
type Match[T any] = View[T]

// Of creates a view over the full extent of seq.
func Of[T any](seq []T) View[T] {
	return View[T]{base: seq, from: 0, to: len(seq)}
}

// Terminated creates a view over a zero-terminated buffer, i.e. up to (but not
// including) the first zero element. If buf does not contain a zero element,
// the view spans all of buf.
func Terminated[T comparable](buf []T) View[T] {
	var zero T
	for i, e := range buf {
		if e == zero {
			return View[T]{base: buf, from: 0, to: i}
		}
	}
	return Of(buf)
}

// FromArray creates a view over a fixed-size array, passed as arr[:]. Trailing
// zero elements are considered to be a sentinel and are not part of the view.
func FromArray[T comparable](arr []T) View[T] {
	var zero T
	n := len(arr)
	for n > 0 && arr[n-1] == zero {
		n--
	}
	return View[T]{base: arr, from: 0, to: n}
}

// View returns v itself. It lets views be used wherever a view source is
// expected.
func (v View[T]) View() View[T] {
	return v
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return v.to - v.from
}

// IsEmpty reports whether the view has no elements.
func (v View[T]) IsEmpty() bool {
	return v.to == v.from
}

// Begin returns the start position of the view within its base slice.
func (v View[T]) Begin() int {
	return v.from
}

// End returns the position right after the last element of the view within
// its base slice.
func (v View[T]) End() int {
	return v.to
}

// Base returns the complete slice the view has been taken from.
func (v View[T]) Base() []T {
	return v.base
}

// Elems returns the elements of the view. The result shares storage with the
// base slice; its capacity is clipped, so appending to it will not overwrite
// elements after the view.
func (v View[T]) Elems() []T {
	return v.base[v.from:v.to:v.to]
}

// Copy returns a freshly allocated copy of the elements of the view.
func (v View[T]) Copy() []T {
	if v.IsEmpty() {
		return []T{}
	}
	return append([]T(nil), v.base[v.from:v.to]...)
}

// At returns the element at index i, relative to the start of the view.
// At panics if i is out of range.
func (v View[T]) At(i int) T {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("seqalgo.View.At: index %d out of range [0,%d)", i, v.Len()))
	}
	return v.base[v.from+i]
}

// Sub returns the sub-view [i,j), with i and j relative to the start of v.
// Sub panics if the bounds are invalid.
func (v View[T]) Sub(i, j int) View[T] {
	if i < 0 || j < i || j > v.Len() {
		panic(fmt.Sprintf("seqalgo.View.Sub: invalid bounds [%d,%d) for length %d", i, j, v.Len()))
	}
	return View[T]{base: v.base, from: v.from + i, to: v.from + j}
}

// Slice returns the view [from,to) with absolute positions of the base slice.
// Slice panics if [from,to) does not lie within v.
func (v View[T]) Slice(from, to int) View[T] {
	if from < v.from || to < from || to > v.to {
		panic(fmt.Sprintf("seqalgo.View.Slice: [%d,%d) not within [%d,%d)", from, to, v.from, v.to))
	}
	return View[T]{base: v.base, from: from, to: to}
}

// From returns the part of v starting at absolute position pos.
func (v View[T]) From(pos int) View[T] {
	return v.Slice(pos, v.to)
}

// Until returns the part of v ending at absolute position pos.
func (v View[T]) Until(pos int) View[T] {
	return v.Slice(v.from, pos)
}

// AtEnd returns the empty view positioned at the end of v, which is the
// "not found" result for finders searching v.
func (v View[T]) AtEnd() View[T] {
	return View[T]{base: v.base, from: v.to, to: v.to}
}

// AtBegin returns the empty view positioned at the start of v.
func (v View[T]) AtBegin() View[T] {
	return View[T]{base: v.base, from: v.from, to: v.from}
}

// String is a debugging aid.
func (v View[T]) String() string {
	return fmt.Sprintf("view[%d:%d]%v", v.from, v.to, v.Elems())
}

// Equal reports whether two views contain equal elements.
func Equal[T comparable](a, b View[T]) bool {
	return EqualFunc(a, b, Ordinal[T]())
}

// EqualFunc reports whether two views have equal length and all pairs of
// elements satisfy cmp.
func EqualFunc[T any](a, b View[T], cmp Comparator[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !cmp(a.base[a.from+i], b.base[b.from+i]) {
			return false
		}
	}
	return true
}

// sameBounds reports whether two views are windows over the same storage with
// identical bounds.
func sameBounds[T any](a, b View[T]) bool {
	if a.from != b.from || a.to != b.to || len(a.base) != len(b.base) {
		return false
	}
	if len(a.base) == 0 {
		return true
	}
	return &a.base[0] == &b.base[0]
}
