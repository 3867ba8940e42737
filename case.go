package seqalgo

// Transform replaces every element e of seq by fn(e), in place.
func Transform[T any](seq []T, fn func(T) T) {
	for i, e := range seq {
		seq[i] = fn(e)
	}
}

// TransformCopy returns a new sequence with fn applied to every element of
// input.
func TransformCopy[T any](input []T, fn func(T) T) []T {
	return AppendTransform(make([]T, 0, len(input)), input, fn)
}

// AppendTransform appends fn(e) for every element e of input to dst and
// returns the extended slice.
func AppendTransform[T any](dst, input []T, fn func(T) T) []T {
	for _, e := range input {
		dst = append(dst, fn(e))
	}
	return dst
}

// ToUpper maps the runes of seq to upper case, in place.
func ToUpper(seq []rune, loc *Locale) {
	Transform(seq, localeOrDefault(loc).ToUpper)
}

// ToUpperCopy returns an upper case copy of input.
func ToUpperCopy(input []rune, loc *Locale) []rune {
	return TransformCopy(input, localeOrDefault(loc).ToUpper)
}

// ToLower maps the runes of seq to lower case, in place.
func ToLower(seq []rune, loc *Locale) {
	Transform(seq, localeOrDefault(loc).ToLower)
}

// ToLowerCopy returns a lower case copy of input.
func ToLowerCopy(input []rune, loc *Locale) []rune {
	return TransformCopy(input, localeOrDefault(loc).ToLower)
}
