package seqalgo

// Find applies finder to the whole of input.
func Find[T any](input []T, finder Finder[T]) View[T] {
	return nextMatch(finder, Of(input))
}

// FindFirst finds the first occurrence of search in input.
// If there is no match, the result is empty and positioned at len(input).
func FindFirst[T comparable](input, search []T) View[T] {
	return Find(input, FirstFinder(search, Ordinal[T]()))
}

// IFindFirst finds the first case-insensitive occurrence of search in input.
func IFindFirst(input, search []rune, loc *Locale) View[rune] {
	return Find(input, FirstFinder(search, IEqual(loc)))
}

// FindLast finds the last occurrence of search in input.
func FindLast[T comparable](input, search []T) View[T] {
	return Find(input, LastFinder(search, Ordinal[T]()))
}

// IFindLast finds the last case-insensitive occurrence of search in input.
func IFindLast(input, search []rune, loc *Locale) View[rune] {
	return Find(input, LastFinder(search, IEqual(loc)))
}

// FindNth finds the nth (zero-indexed) occurrence of search in input. For
// negative nth, occurrences are counted from the end.
func FindNth[T comparable](input, search []T, nth int) View[T] {
	return Find(input, NthFinder(search, nth, Ordinal[T]()))
}

// IFindNth finds the nth (zero-indexed) case-insensitive occurrence of search
// in input. For negative nth, occurrences are counted from the end.
func IFindNth(input, search []rune, nth int, loc *Locale) View[rune] {
	return Find(input, NthFinder(search, nth, IEqual(loc)))
}

// FindHead returns the head of input. For n >= 0 at most n elements are
// returned, for n < 0 at most len(input)-|n|.
func FindHead[T any](input []T, n int) View[T] {
	return Find(input, HeadFinder[T](n))
}

// FindTail returns the tail of input. For n >= 0 at most n elements are
// returned, for n < 0 at most len(input)-|n|.
func FindTail[T any](input []T, n int) View[T] {
	return Find(input, TailFinder[T](n))
}

// FindToken finds the first token, i.e. an element satisfying isToken, in
// input. With CompressOn adjacent tokens are reported as one match.
func FindToken[T any](input []T, isToken Classifier[T], compress TokenCompress) View[T] {
	return Find(input, TokenFinder(isToken, compress))
}
