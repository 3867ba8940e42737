package seqalgo

// Traversal describes the way an algorithm may walk a sequence. Algorithms
// working from the end of a sequence (trimming on the right, suffix tests)
// scan backwards for bidirectional traversal and fall back to a forward scan
// otherwise.
type Traversal int

const (
	Bidirectional Traversal = iota
	ForwardOnly
)

// trimBegin returns the absolute position of the first element of v not
// satisfying isSpace.
func trimBegin[T any](v View[T], isSpace Classifier[T]) int {
	i := v.from
	for i < v.to && classify(isSpace, v.base[i]) {
		i++
	}
	return i
}

// trimEnd returns the absolute position after the last element of v not
// satisfying isSpace.
func trimEnd[T any](v View[T], isSpace Classifier[T], trav Traversal) int {
	if trav == ForwardOnly {
		end := v.from
		for i := v.from; i < v.to; i++ {
			if !classify(isSpace, v.base[i]) {
				end = i + 1
			}
		}
		return end
	}
	for i := v.to; i > v.from; i-- {
		if !classify(isSpace, v.base[i-1]) {
			return i
		}
	}
	return v.from
}

// TrimView returns the part of v without leading and trailing elements
// satisfying isSpace. No elements are copied.
func TrimView[T any](v View[T], isSpace Classifier[T]) View[T] {
	end := trimEnd(v, isSpace, Bidirectional)
	return v.Slice(trimBegin(v.Until(end), isSpace), end)
}

// TrimLeftFunc removes leading elements satisfying isSpace from *seq.
func TrimLeftFunc[T any](seq *[]T, isSpace Classifier[T]) {
	s := *seq
	pos := trimBegin(Of(s), isSpace)
	if pos == 0 {
		return
	}
	n := copy(s, s[pos:])
	clear(s[n:])
	*seq = s[:n]
}

// TrimRightFunc removes trailing elements satisfying isSpace from *seq.
func TrimRightFunc[T any](seq *[]T, isSpace Classifier[T]) {
	s := *seq
	end := trimEnd(Of(s), isSpace, Bidirectional)
	clear(s[end:])
	*seq = s[:end]
}

// TrimFunc removes leading and trailing elements satisfying isSpace from *seq.
func TrimFunc[T any](seq *[]T, isSpace Classifier[T]) {
	TrimRightFunc(seq, isSpace)
	TrimLeftFunc(seq, isSpace)
}

// TrimLeftCopyFunc returns a copy of input without leading elements
// satisfying isSpace.
func TrimLeftCopyFunc[T any](input []T, isSpace Classifier[T]) []T {
	v := Of(input)
	return v.From(trimBegin(v, isSpace)).Copy()
}

// TrimRightCopyFunc returns a copy of input without trailing elements
// satisfying isSpace.
func TrimRightCopyFunc[T any](input []T, isSpace Classifier[T]) []T {
	v := Of(input)
	return v.Until(trimEnd(v, isSpace, Bidirectional)).Copy()
}

// TrimCopyFunc returns a copy of input without leading and trailing elements
// satisfying isSpace.
func TrimCopyFunc[T any](input []T, isSpace Classifier[T]) []T {
	return TrimView(Of(input), isSpace).Copy()
}

// TrimAllFunc trims *seq and compresses every inner run of elements
// satisfying isSpace to the first element of the run.
func TrimAllFunc[T any](seq *[]T, isSpace Classifier[T]) {
	TrimFunc(seq, isSpace)
	FindFormatAll(seq, TokenFinder(isSpace, CompressOn), DissectFormatter(HeadFinder[T](1)))
}

// TrimAllCopyFunc is the copying variant of TrimAllFunc.
func TrimAllCopyFunc[T any](input []T, isSpace Classifier[T]) []T {
	trimmed := TrimView(Of(input), isSpace).Elems()
	return FindFormatAllCopy(trimmed, TokenFinder(isSpace, CompressOn), DissectFormatter(HeadFinder[T](1)))
}

// TrimFillFunc trims *seq and replaces every inner run of elements
// satisfying isSpace by fill.
func TrimFillFunc[T any](seq *[]T, fill []T, isSpace Classifier[T]) {
	TrimFunc(seq, isSpace)
	FindFormatAll(seq, TokenFinder(isSpace, CompressOn), ConstFormatter(fill))
}

// TrimFillCopyFunc is the copying variant of TrimFillFunc.
func TrimFillCopyFunc[T any](input, fill []T, isSpace Classifier[T]) []T {
	trimmed := TrimView(Of(input), isSpace).Elems()
	return FindFormatAllCopy(trimmed, TokenFinder(isSpace, CompressOn), ConstFormatter(fill))
}

// --- Locale driven trimming of runes ---------------------------------------

// TrimLeft removes leading white-space from *seq.
func TrimLeft(seq *[]rune, loc *Locale) {
	TrimLeftFunc(seq, IsSpace(loc))
}

// TrimRight removes trailing white-space from *seq.
func TrimRight(seq *[]rune, loc *Locale) {
	TrimRightFunc(seq, IsSpace(loc))
}

// Trim removes leading and trailing white-space from *seq.
func Trim(seq *[]rune, loc *Locale) {
	TrimFunc(seq, IsSpace(loc))
}

// TrimLeftCopy returns a copy of input without leading white-space.
func TrimLeftCopy(input []rune, loc *Locale) []rune {
	return TrimLeftCopyFunc(input, IsSpace(loc))
}

// TrimRightCopy returns a copy of input without trailing white-space.
func TrimRightCopy(input []rune, loc *Locale) []rune {
	return TrimRightCopyFunc(input, IsSpace(loc))
}

// TrimCopy returns a copy of input without leading and trailing white-space.
func TrimCopy(input []rune, loc *Locale) []rune {
	return TrimCopyFunc(input, IsSpace(loc))
}

// TrimAll trims *seq and compresses inner white-space runs to one rune.
func TrimAll(seq *[]rune, loc *Locale) {
	TrimAllFunc(seq, IsSpace(loc))
}

// TrimAllCopy is the copying variant of TrimAll.
func TrimAllCopy(input []rune, loc *Locale) []rune {
	return TrimAllCopyFunc(input, IsSpace(loc))
}

// TrimFill trims *seq and replaces inner white-space runs by fill.
func TrimFill(seq *[]rune, fill []rune, loc *Locale) {
	TrimFillFunc(seq, fill, IsSpace(loc))
}

// TrimFillCopy is the copying variant of TrimFill.
func TrimFillCopy(input, fill []rune, loc *Locale) []rune {
	return TrimFillCopyFunc(input, fill, IsSpace(loc))
}
