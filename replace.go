package seqalgo

// Replace and erase algorithms are thin layers over the find/format engine:
// each one combines a finder with a constant (replace) or empty (erase)
// formatter. In-place variants take a pointer to the sequence, copy variants
// leave their input untouched.

// --- Replace ---------------------------------------------------------------

// ReplaceRange replaces (*seq)[from:to] by format. An empty range is left alone.
func ReplaceRange[T any](seq *[]T, from, to int, format []T) {
	FindFormat(seq, RangeFinder(Of(*seq).Slice(from, to)), ConstFormatter(format))
}

// ReplaceRangeCopy returns a copy of input with input[from:to] replaced by format.
func ReplaceRangeCopy[T any](input []T, from, to int, format []T) []T {
	return FindFormatCopy(input, RangeFinder(Of(input).Slice(from, to)), ConstFormatter(format))
}

// ReplaceFirst replaces the first occurrence of search in *seq by format.
func ReplaceFirst[T comparable](seq *[]T, search, format []T) {
	FindFormat(seq, FirstFinder(search, Ordinal[T]()), ConstFormatter(format))
}

// ReplaceFirstCopy returns a copy of input with the first occurrence of search
// replaced by format.
func ReplaceFirstCopy[T comparable](input, search, format []T) []T {
	return FindFormatCopy(input, FirstFinder(search, Ordinal[T]()), ConstFormatter(format))
}

// IReplaceFirst replaces the first case-insensitive occurrence of search.
func IReplaceFirst(seq *[]rune, search, format []rune, loc *Locale) {
	FindFormat(seq, FirstFinder(search, IEqual(loc)), ConstFormatter(format))
}

// IReplaceFirstCopy is the copying variant of IReplaceFirst.
func IReplaceFirstCopy(input, search, format []rune, loc *Locale) []rune {
	return FindFormatCopy(input, FirstFinder(search, IEqual(loc)), ConstFormatter(format))
}

// ReplaceLast replaces the last occurrence of search in *seq by format.
func ReplaceLast[T comparable](seq *[]T, search, format []T) {
	FindFormat(seq, LastFinder(search, Ordinal[T]()), ConstFormatter(format))
}

// ReplaceLastCopy returns a copy of input with the last occurrence of search
// replaced by format.
func ReplaceLastCopy[T comparable](input, search, format []T) []T {
	return FindFormatCopy(input, LastFinder(search, Ordinal[T]()), ConstFormatter(format))
}

// IReplaceLast replaces the last case-insensitive occurrence of search.
func IReplaceLast(seq *[]rune, search, format []rune, loc *Locale) {
	FindFormat(seq, LastFinder(search, IEqual(loc)), ConstFormatter(format))
}

// IReplaceLastCopy is the copying variant of IReplaceLast.
func IReplaceLastCopy(input, search, format []rune, loc *Locale) []rune {
	return FindFormatCopy(input, LastFinder(search, IEqual(loc)), ConstFormatter(format))
}

// ReplaceNth replaces the nth (zero-indexed, negative from the end) occurrence
// of search in *seq by format.
func ReplaceNth[T comparable](seq *[]T, search []T, nth int, format []T) {
	FindFormat(seq, NthFinder(search, nth, Ordinal[T]()), ConstFormatter(format))
}

// ReplaceNthCopy is the copying variant of ReplaceNth.
func ReplaceNthCopy[T comparable](input, search []T, nth int, format []T) []T {
	return FindFormatCopy(input, NthFinder(search, nth, Ordinal[T]()), ConstFormatter(format))
}

// IReplaceNth replaces the nth case-insensitive occurrence of search.
func IReplaceNth(seq *[]rune, search []rune, nth int, format []rune, loc *Locale) {
	FindFormat(seq, NthFinder(search, nth, IEqual(loc)), ConstFormatter(format))
}

// IReplaceNthCopy is the copying variant of IReplaceNth.
func IReplaceNthCopy(input, search []rune, nth int, format []rune, loc *Locale) []rune {
	return FindFormatCopy(input, NthFinder(search, nth, IEqual(loc)), ConstFormatter(format))
}

// ReplaceAll replaces all occurrences of search in *seq by format.
func ReplaceAll[T comparable](seq *[]T, search, format []T) {
	FindFormatAll(seq, FirstFinder(search, Ordinal[T]()), ConstFormatter(format))
}

// ReplaceAllCopy returns a copy of input with all occurrences of search
// replaced by format.
func ReplaceAllCopy[T comparable](input, search, format []T) []T {
	return FindFormatAllCopy(input, FirstFinder(search, Ordinal[T]()), ConstFormatter(format))
}

// IReplaceAll replaces all case-insensitive occurrences of search.
func IReplaceAll(seq *[]rune, search, format []rune, loc *Locale) {
	FindFormatAll(seq, FirstFinder(search, IEqual(loc)), ConstFormatter(format))
}

// IReplaceAllCopy is the copying variant of IReplaceAll.
func IReplaceAllCopy(input, search, format []rune, loc *Locale) []rune {
	return FindFormatAllCopy(input, FirstFinder(search, IEqual(loc)), ConstFormatter(format))
}

// ReplaceHead replaces the head of *seq (see HeadFinder) by format.
func ReplaceHead[T any](seq *[]T, n int, format []T) {
	FindFormat(seq, HeadFinder[T](n), ConstFormatter(format))
}

// ReplaceHeadCopy is the copying variant of ReplaceHead.
func ReplaceHeadCopy[T any](input []T, n int, format []T) []T {
	return FindFormatCopy(input, HeadFinder[T](n), ConstFormatter(format))
}

// ReplaceTail replaces the tail of *seq (see TailFinder) by format.
func ReplaceTail[T any](seq *[]T, n int, format []T) {
	FindFormat(seq, TailFinder[T](n), ConstFormatter(format))
}

// ReplaceTailCopy is the copying variant of ReplaceTail.
func ReplaceTailCopy[T any](input []T, n int, format []T) []T {
	return FindFormatCopy(input, TailFinder[T](n), ConstFormatter(format))
}

// --- Erase -----------------------------------------------------------------

// EraseRange removes (*seq)[from:to].
func EraseRange[T any](seq *[]T, from, to int) {
	FindFormat(seq, RangeFinder(Of(*seq).Slice(from, to)), EmptyFormatter[T]())
}

// EraseRangeCopy returns a copy of input without input[from:to].
func EraseRangeCopy[T any](input []T, from, to int) []T {
	return FindFormatCopy(input, RangeFinder(Of(input).Slice(from, to)), EmptyFormatter[T]())
}

// EraseFirst removes the first occurrence of search from *seq.
func EraseFirst[T comparable](seq *[]T, search []T) {
	FindFormat(seq, FirstFinder(search, Ordinal[T]()), EmptyFormatter[T]())
}

// EraseFirstCopy is the copying variant of EraseFirst.
func EraseFirstCopy[T comparable](input, search []T) []T {
	return FindFormatCopy(input, FirstFinder(search, Ordinal[T]()), EmptyFormatter[T]())
}

// IEraseFirst removes the first case-insensitive occurrence of search.
func IEraseFirst(seq *[]rune, search []rune, loc *Locale) {
	FindFormat(seq, FirstFinder(search, IEqual(loc)), EmptyFormatter[rune]())
}

// EraseLast removes the last occurrence of search from *seq.
func EraseLast[T comparable](seq *[]T, search []T) {
	FindFormat(seq, LastFinder(search, Ordinal[T]()), EmptyFormatter[T]())
}

// EraseLastCopy is the copying variant of EraseLast.
func EraseLastCopy[T comparable](input, search []T) []T {
	return FindFormatCopy(input, LastFinder(search, Ordinal[T]()), EmptyFormatter[T]())
}

// EraseNth removes the nth occurrence of search from *seq.
func EraseNth[T comparable](seq *[]T, search []T, nth int) {
	FindFormat(seq, NthFinder(search, nth, Ordinal[T]()), EmptyFormatter[T]())
}

// EraseNthCopy is the copying variant of EraseNth.
func EraseNthCopy[T comparable](input, search []T, nth int) []T {
	return FindFormatCopy(input, NthFinder(search, nth, Ordinal[T]()), EmptyFormatter[T]())
}

// EraseAll removes all occurrences of search from *seq.
func EraseAll[T comparable](seq *[]T, search []T) {
	FindFormatAll(seq, FirstFinder(search, Ordinal[T]()), EmptyFormatter[T]())
}

// EraseAllCopy is the copying variant of EraseAll.
func EraseAllCopy[T comparable](input, search []T) []T {
	return FindFormatAllCopy(input, FirstFinder(search, Ordinal[T]()), EmptyFormatter[T]())
}

// IEraseAll removes all case-insensitive occurrences of search.
func IEraseAll(seq *[]rune, search []rune, loc *Locale) {
	FindFormatAll(seq, FirstFinder(search, IEqual(loc)), EmptyFormatter[rune]())
}

// IEraseAllCopy is the copying variant of IEraseAll.
func IEraseAllCopy(input, search []rune, loc *Locale) []rune {
	return FindFormatAllCopy(input, FirstFinder(search, IEqual(loc)), EmptyFormatter[rune]())
}

// EraseHead removes the head of *seq (see HeadFinder).
func EraseHead[T any](seq *[]T, n int) {
	FindFormat(seq, HeadFinder[T](n), EmptyFormatter[T]())
}

// EraseHeadCopy is the copying variant of EraseHead.
func EraseHeadCopy[T any](input []T, n int) []T {
	return FindFormatCopy(input, HeadFinder[T](n), EmptyFormatter[T]())
}

// EraseTail removes the tail of *seq (see TailFinder).
func EraseTail[T any](seq *[]T, n int) {
	FindFormat(seq, TailFinder[T](n), EmptyFormatter[T]())
}

// EraseTailCopy is the copying variant of EraseTail.
func EraseTailCopy[T any](input []T, n int) []T {
	return FindFormatCopy(input, TailFinder[T](n), EmptyFormatter[T]())
}
