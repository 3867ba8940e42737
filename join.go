package seqalgo

// Join concatenates parts, inserting sep between adjacent parts. Join is the
// inverse of Split with CompressOff for single-element separators.
func Join[T any](parts [][]T, sep []T) []T {
	return JoinIf(parts, sep, nil)
}

// JoinIf concatenates the parts satisfying pred, inserting sep between
// adjacent selected parts. A nil pred selects all parts.
func JoinIf[T any](parts [][]T, sep []T, pred func([]T) bool) []T {
	size, n := 0, 0
	for _, p := range parts {
		if pred == nil || pred(p) {
			size += len(p)
			n++
		}
	}
	if n == 0 {
		return []T{}
	}
	result := make([]T, 0, size+(n-1)*len(sep))
	first := true
	for _, p := range parts {
		if pred != nil && !pred(p) {
			continue
		}
		if !first {
			result = append(result, sep...)
		}
		result = append(result, p...)
		first = false
	}
	return result
}
