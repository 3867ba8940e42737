package seqalgo

// IterFindViews collects all matches of finder in seq.
func IterFindViews[T any](seq View[T], finder Finder[T]) []View[T] {
	var views []View[T]
	for m := range Matches(seq, finder) {
		views = append(views, m)
	}
	return views
}

// IterSplitViews collects all gaps between matches of finder in seq.
func IterSplitViews[T any](seq View[T], finder Finder[T]) []View[T] {
	var views []View[T]
	for tok := range Tokens(seq, finder) {
		views = append(views, tok)
	}
	return views
}

// IterFind returns copies of all matches of finder in input.
func IterFind[T any](input []T, finder Finder[T]) [][]T {
	return copyViews(IterFindViews(Of(input), finder))
}

// IterSplit returns copies of all gaps between matches of finder in input.
// The result has at least one element.
func IterSplit[T any](input []T, finder Finder[T]) [][]T {
	return copyViews(IterSplitViews(Of(input), finder))
}

func copyViews[T any](views []View[T]) [][]T {
	result := make([][]T, len(views))
	for i, v := range views {
		result[i] = v.Copy()
	}
	return result
}

// FindAll returns copies of all non-overlapping occurrences of search in input.
func FindAll[T comparable](input, search []T) [][]T {
	return IterFind(input, FirstFinder(search, Ordinal[T]()))
}

// FindAllFunc returns copies of all non-overlapping occurrences of search in
// input, comparing elements with cmp.
func FindAllFunc[T any](input, search []T, cmp Comparator[T]) [][]T {
	return IterFind(input, FirstFinder(search, cmp))
}

// IFindAll returns copies of all non-overlapping case-insensitive occurrences
// of search in input.
func IFindAll(input, search []rune, loc *Locale) [][]rune {
	return IterFind(input, FirstFinder(search, IEqual(loc)))
}

// Split divides input into tokens, separated by elements satisfying isSep.
//
// With CompressOff every separator ends a token, so adjacent separators
// delimit empty tokens and Join is the inverse of Split. With CompressOn runs
// of separators are treated as a single delimiter and empty tokens at the
// start and end of input are dropped.
func Split[T any](input []T, isSep Classifier[T], compress TokenCompress) [][]T {
	views := IterSplitViews(Of(input), TokenFinder(isSep, compress))
	if compress == CompressOn {
		views = trimEmptyViews(views)
	}
	return copyViews(views)
}

func trimEmptyViews[T any](views []View[T]) []View[T] {
	for len(views) > 0 && views[0].IsEmpty() {
		views = views[1:]
	}
	for len(views) > 0 && views[len(views)-1].IsEmpty() {
		views = views[:len(views)-1]
	}
	return views
}
