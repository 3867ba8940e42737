package seqalgo

import "slices"

// InPlaceStrategy selects how in-place replace-all operations modify a
// sequence.
type InPlaceStrategy int

const (
	// DrainFlush overwrites vacated positions of the sequence from a staging
	// buffer of pending replacement elements and either truncates the sequence
	// or appends the rest of the buffer at the end. It moves every element at
	// most a constant number of times and is the default for slices.
	DrainFlush InPlaceStrategy = iota
	// EraseInsert splices every replacement into the sequence as it is found.
	// It mirrors the behaviour of containers with cheap insert and erase and is
	// quadratic in the worst case for slices.
	EraseInsert
)

func (s InPlaceStrategy) String() string {
	switch s {
	case DrainFlush:
		return "drain-flush"
	case EraseInsert:
		return "erase-insert"
	}
	return "unknown-strategy"
}

// replaceRange replaces (*seq)[from:to] by repl, overwriting the overlapping
// prefix in place and inserting or erasing the length difference only.
func replaceRange[T any](seq *[]T, from, to int, repl []T) {
	s := *seq
	if len(repl) > to-from {
		repl = slices.Clone(repl) // repl may alias s, which is going to be shifted
	}
	n := min(len(repl), to-from)
	copy(s[from:from+n], repl[:n])
	switch {
	case len(repl) > to-from:
		s = slices.Insert(s, to, repl[n:]...)
	case len(repl) < to-from:
		s = slices.Delete(s, from+n, to)
	}
	*seq = s
}

// --- Replacement storage ---------------------------------------------------

// storage is a FIFO queue of pending replacement elements.
type storage[T any] struct {
	buf  []T
	head int
}

func (st *storage[T]) empty() bool {
	return st.head == len(st.buf)
}

func (st *storage[T]) push(elems ...T) {
	if st.head > 0 && st.head == len(st.buf) {
		st.buf, st.head = st.buf[:0], 0
	}
	st.buf = append(st.buf, elems...)
}

func (st *storage[T]) pop() T {
	e := st.buf[st.head]
	st.head++
	if st.head > 64 && st.head > len(st.buf)/2 {
		n := copy(st.buf, st.buf[st.head:])
		st.buf, st.head = st.buf[:n], 0
	}
	return e
}

func (st *storage[T]) rest() []T {
	return st.buf[st.head:]
}

// moveFromStorage drains pending elements into s[at:limit) and returns the
// position after the last element written.
func moveFromStorage[T any](st *storage[T], s []T, at, limit int) int {
	for at < limit && !st.empty() {
		s[at] = st.pop()
		at++
	}
	return at
}

// processSegment moves the unmatched segment s[segFrom:segTo) to its final
// position, which starts at insertAt. Pending elements in storage precede the
// segment; whatever does not fit before segTo is kept in storage.
// It returns the new insertion position.
func processSegment[T any](st *storage[T], s []T, insertAt, segFrom, segTo int) int {
	at := moveFromStorage(st, s, insertAt, segFrom)
	if st.empty() {
		if at == segFrom {
			return segTo
		}
		return at + copy(s[at:], s[segFrom:segTo])
	}
	// shift the segment left through the storage
	for ; at < segTo; at++ {
		st.push(s[at])
		s[at] = st.pop()
	}
	return at
}
