package seqalgo

// nextMatch applies a finder to region and checks that the result honours the
// finder contract.
func nextMatch[T any](f Finder[T], region View[T]) View[T] {
	m := f.Find(region)
	assert(m.from <= m.to && m.from >= region.from && m.to <= region.to,
		"seqalgo: finder returned a match outside of the searched region")
	return m
}

// --- Single match ----------------------------------------------------------

// AppendFindFormat appends a copy of in to dst, with the match of finder
// replaced by the output of formatter, and returns the extended slice.
// If finder does not match, in is appended verbatim.
func AppendFindFormat[T any](dst []T, in []T, finder Finder[T], formatter Formatter[T]) []T {
	m := nextMatch(finder, Of(in))
	if m.IsEmpty() {
		return append(dst, in...)
	}
	repl := formatter(m)
	dst = append(dst, in[:m.from]...)
	dst = append(dst, repl...)
	return append(dst, in[m.to:]...)
}

// FindFormatCopy returns a copy of in with the match of finder replaced by the
// output of formatter. The input is never modified.
func FindFormatCopy[T any](in []T, finder Finder[T], formatter Formatter[T]) []T {
	return AppendFindFormat(make([]T, 0, len(in)), in, finder, formatter)
}

// FindFormat replaces the match of finder in *seq by the output of formatter.
func FindFormat[T any](seq *[]T, finder Finder[T], formatter Formatter[T]) {
	m := nextMatch(finder, Of(*seq))
	if m.IsEmpty() {
		return
	}
	replaceRange(seq, m.from, m.to, formatter(m))
}

// --- All matches -----------------------------------------------------------

// AppendFindFormatAll appends a copy of in to dst, with all matches of finder
// replaced by the output of formatter, and returns the extended slice.
//
// After each match searching continues at the end of the match. Replacement
// stops at the first empty match.
func AppendFindFormatAll[T any](dst []T, in []T, finder Finder[T], formatter Formatter[T]) []T {
	region := Of(in)
	m := nextMatch(finder, region)
	if m.IsEmpty() {
		return append(dst, in...)
	}
	store := newFindFormatStore(m, formatter(m), formatter)
	last := 0
	for store.found() {
		dst = append(dst, in[last:store.match.from]...)
		dst = append(dst, store.formatted...)
		last = store.match.to
		store.assign(nextMatch(finder, region.From(last)))
	}
	return append(dst, in[last:]...)
}

// FindFormatAllCopy returns a copy of in with all matches of finder replaced
// by the output of formatter. The input is never modified.
func FindFormatAllCopy[T any](in []T, finder Finder[T], formatter Formatter[T]) []T {
	return AppendFindFormatAll(make([]T, 0, len(in)), in, finder, formatter)
}

// FindFormatAll replaces all matches of finder in *seq by the output of
// formatter, using the DrainFlush strategy.
func FindFormatAll[T any](seq *[]T, finder Finder[T], formatter Formatter[T]) {
	FindFormatAllWith(seq, finder, formatter, DrainFlush)
}

// FindFormatAllWith replaces all matches of finder in *seq by the output of
// formatter, modifying *seq with the given strategy.
//
// Matches are searched for in the original sequence: replacement elements are
// never subject to further matching.
func FindFormatAllWith[T any](seq *[]T, finder Finder[T], formatter Formatter[T], strategy InPlaceStrategy) {
	m := nextMatch(finder, Of(*seq))
	if m.IsEmpty() {
		return
	}
	store := newFindFormatStore(m, formatter(m), formatter)
	switch strategy {
	case EraseInsert:
		findFormatAllSplice(seq, finder, store)
	default:
		findFormatAllDrain(seq, finder, store)
	}
}

// findFormatAllDrain keeps pending replacement elements in a staging queue.
// Each unmatched segment is moved to its final position, draining the queue
// into the vacated positions first. At the end the sequence is either
// truncated or the rest of the queue is appended.
func findFormatAllDrain[E any](seq *[]E, finder Finder[E], store *findFormatStore[E]) {
	s := *seq
	region := Of(s)
	var st storage[E]
	insertAt, searchAt := 0, 0
	for store.found() {
		insertAt = processSegment(&st, s, insertAt, searchAt, store.match.from)
		searchAt = store.match.to
		st.push(store.formatted...)
		store.assign(nextMatch(finder, region.From(searchAt)))
	}
	insertAt = processSegment(&st, s, insertAt, searchAt, len(s))
	if st.empty() {
		clear(s[insertAt:])
		*seq = s[:insertAt]
		return
	}
	T().Debugf("seqalgo: replace-all flushes %d pending elements", len(st.rest()))
	*seq = append(s, st.rest()...)
}

// findFormatAllSplice replaces every match as soon as it has been found.
func findFormatAllSplice[T any](seq *[]T, finder Finder[T], store *findFormatStore[T]) {
	for store.found() {
		repl := append([]T(nil), store.formatted...)
		replaceRange(seq, store.match.from, store.match.to, repl)
		next := store.match.from + len(repl)
		store.assign(nextMatch(finder, Of(*seq).From(next)))
	}
}
