package seqalgo

// --- Prefix and suffix -----------------------------------------------------

// StartsWith reports whether input starts with prefix.
func StartsWith[T comparable](input, prefix []T) bool {
	return StartsWithFunc(input, prefix, Ordinal[T]())
}

// StartsWithFunc reports whether input starts with prefix, comparing elements
// with cmp.
func StartsWithFunc[T any](input, prefix []T, cmp Comparator[T]) bool {
	if len(prefix) > len(input) {
		return false
	}
	return matchesAt(input, 0, prefix, cmp)
}

// IStartsWith reports whether input starts with prefix, ignoring case.
func IStartsWith(input, prefix []rune, loc *Locale) bool {
	return StartsWithFunc(input, prefix, IEqual(loc))
}

// EndsWith reports whether input ends with suffix.
func EndsWith[T comparable](input, suffix []T) bool {
	return EndsWithFunc(input, suffix, Ordinal[T]())
}

// EndsWithFunc reports whether input ends with suffix, comparing elements with
// cmp.
func EndsWithFunc[T any](input, suffix []T, cmp Comparator[T]) bool {
	return EndsWithTraversal(input, suffix, cmp, Bidirectional)
}

// IEndsWith reports whether input ends with suffix, ignoring case.
func IEndsWith(input, suffix []rune, loc *Locale) bool {
	return EndsWithFunc(input, suffix, IEqual(loc))
}

// EndsWithTraversal reports whether input ends with suffix. For bidirectional
// traversal both sequences are compared backwards from their ends; for
// forward-only traversal the last occurrence of suffix is searched for and
// checked to be anchored at the end of input.
func EndsWithTraversal[T any](input, suffix []T, cmp Comparator[T], trav Traversal) bool {
	if trav == ForwardOnly {
		if len(suffix) == 0 {
			return true
		}
		m := findLast(Of(input), suffix, cmp)
		return !m.IsEmpty() && m.to == len(input)
	}
	i, j := len(input), len(suffix)
	for i > 0 && j > 0 {
		i, j = i-1, j-1
		if !cmp(input[i], suffix[j]) {
			return false
		}
	}
	return j == 0
}

// --- Containment and equality ----------------------------------------------

// Contains reports whether search occurs in input. An empty search is always
// contained.
func Contains[T comparable](input, search []T) bool {
	return ContainsFunc(input, search, Ordinal[T]())
}

// ContainsFunc reports whether search occurs in input, comparing elements
// with cmp.
func ContainsFunc[T any](input, search []T, cmp Comparator[T]) bool {
	if len(search) == 0 {
		return true
	}
	return !findFirst(Of(input), search, cmp).IsEmpty()
}

// IContains reports whether search occurs in input, ignoring case.
func IContains(input, search []rune, loc *Locale) bool {
	return ContainsFunc(input, search, IEqual(loc))
}

// Equals reports whether a and b are element-wise equal.
func Equals[T comparable](a, b []T) bool {
	return EqualFunc(Of(a), Of(b), Ordinal[T]())
}

// EqualsFunc reports whether a and b are element-wise equal according to cmp.
func EqualsFunc[T any](a, b []T, cmp Comparator[T]) bool {
	return EqualFunc(Of(a), Of(b), cmp)
}

// IEquals reports whether a and b are equal, ignoring case.
func IEquals(a, b []rune, loc *Locale) bool {
	return EqualFunc(Of(a), Of(b), IEqual(loc))
}

// LexicographicalCompare reports whether a is lexicographically less than b,
// according to less.
func LexicographicalCompare[T any](a, b []T, less Ordering[T]) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if less(a[i], b[i]) {
			return true
		}
		if less(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

// ILexicographicalCompare reports whether a is lexicographically less than b,
// ignoring case.
func ILexicographicalCompare(a, b []rune, loc *Locale) bool {
	return LexicographicalCompare(a, b, ILess(loc))
}

// All reports whether all elements of input satisfy c. All is true for an
// empty input.
func All[T any](input []T, c Classifier[T]) bool {
	for _, e := range input {
		if !classify(c, e) {
			return false
		}
	}
	return true
}
