package strs

import (
	"unicode/utf8"

	"github.com/npillmayer/seqalgo"
	"golang.org/x/text/cases"
)

// span converts a rune match within rs to a byte position and a byte length.
// Returns (-1, 0) for an empty match of a non-empty pattern.
func span(rs []rune, m seqalgo.View[rune], patlen int) (int, int) {
	if m.IsEmpty() && patlen > 0 {
		return -1, 0
	}
	pos := byteLen(rs[:m.Begin()])
	return pos, byteLen(m.Elems())
}

func byteLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		if l := utf8.RuneLen(r); l > 0 {
			n += l
		} else {
			n += utf8.RuneLen(utf8.RuneError)
		}
	}
	return n
}

// --- Find ------------------------------------------------------------------

// FindFirst returns the byte position and the byte length of the first
// occurrence of sub in s, or (-1, 0) if sub does not occur. An empty sub is
// found at position 0.
func FindFirst(s, sub string) (pos, length int) {
	rs := []rune(s)
	return span(rs, seqalgo.FindFirst(rs, []rune(sub)), len(sub))
}

// IFindFirst is like FindFirst, but ignores case.
func IFindFirst(s, sub string, loc *seqalgo.Locale) (pos, length int) {
	rs := []rune(s)
	return span(rs, seqalgo.IFindFirst(rs, []rune(sub), loc), len(sub))
}

// FindLast returns the byte position and the byte length of the last
// occurrence of sub in s, or (-1, 0) if sub does not occur.
func FindLast(s, sub string) (pos, length int) {
	rs := []rune(s)
	return span(rs, seqalgo.FindLast(rs, []rune(sub)), len(sub))
}

// FindNth returns the byte position and the byte length of the nth occurrence
// of sub in s, or (-1, 0). Negative values of nth count from the end.
func FindNth(s, sub string, nth int) (pos, length int) {
	rs := []rune(s)
	return span(rs, seqalgo.FindNth(rs, []rune(sub), nth), len(sub))
}

// IFindNth is like FindNth, but ignores case.
func IFindNth(s, sub string, nth int, loc *seqalgo.Locale) (pos, length int) {
	rs := []rune(s)
	return span(rs, seqalgo.IFindNth(rs, []rune(sub), nth, loc), len(sub))
}

// FindAll returns all non-overlapping occurrences of sub in s.
func FindAll(s, sub string) []string {
	return toStrings(seqalgo.FindAll([]rune(s), []rune(sub)))
}

// IFindAll returns all non-overlapping case-insensitive occurrences of sub
// in s, as they appear in s.
func IFindAll(s, sub string, loc *seqalgo.Locale) []string {
	return toStrings(seqalgo.IFindAll([]rune(s), []rune(sub), loc))
}

// --- Predicates ------------------------------------------------------------

// StartsWith reports whether s starts with prefix.
func StartsWith(s, prefix string) bool {
	return seqalgo.StartsWith([]byte(s), []byte(prefix))
}

// IStartsWith reports whether s starts with prefix, ignoring case.
func IStartsWith(s, prefix string, loc *seqalgo.Locale) bool {
	return seqalgo.IStartsWith([]rune(s), []rune(prefix), loc)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return seqalgo.EndsWith([]byte(s), []byte(suffix))
}

// IEndsWith reports whether s ends with suffix, ignoring case.
func IEndsWith(s, suffix string, loc *seqalgo.Locale) bool {
	return seqalgo.IEndsWith([]rune(s), []rune(suffix), loc)
}

// Contains reports whether sub occurs in s.
func Contains(s, sub string) bool {
	return seqalgo.Contains([]byte(s), []byte(sub))
}

// IContains reports whether sub occurs in s, ignoring case.
func IContains(s, sub string, loc *seqalgo.Locale) bool {
	return seqalgo.IContains([]rune(s), []rune(sub), loc)
}

// IEquals reports whether a and b are equal, ignoring case.
func IEquals(a, b string, loc *seqalgo.Locale) bool {
	return seqalgo.IEquals([]rune(a), []rune(b), loc)
}

// ILess reports whether a sorts before b, ignoring case.
func ILess(a, b string, loc *seqalgo.Locale) bool {
	return seqalgo.ILexicographicalCompare([]rune(a), []rune(b), loc)
}

// --- Trim and case ---------------------------------------------------------

// Trim removes leading and trailing white-space from s.
func Trim(s string, loc *seqalgo.Locale) string {
	return string(seqalgo.TrimCopy([]rune(s), loc))
}

// TrimLeft removes leading white-space from s.
func TrimLeft(s string, loc *seqalgo.Locale) string {
	return string(seqalgo.TrimLeftCopy([]rune(s), loc))
}

// TrimRight removes trailing white-space from s.
func TrimRight(s string, loc *seqalgo.Locale) string {
	return string(seqalgo.TrimRightCopy([]rune(s), loc))
}

// TrimAll trims s and compresses every inner run of white-space to its first
// character.
func TrimAll(s string, loc *seqalgo.Locale) string {
	return string(seqalgo.TrimAllCopy([]rune(s), loc))
}

// TrimFill trims s and replaces every inner run of white-space by fill.
func TrimFill(s, fill string, loc *seqalgo.Locale) string {
	return string(seqalgo.TrimFillCopy([]rune(s), []rune(fill), loc))
}

// ToUpper maps s to upper case, rune by rune.
func ToUpper(s string, loc *seqalgo.Locale) string {
	return string(seqalgo.ToUpperCopy([]rune(s), loc))
}

// ToLower maps s to lower case, rune by rune.
func ToLower(s string, loc *seqalgo.Locale) string {
	return string(seqalgo.ToLowerCopy([]rune(s), loc))
}

// Title maps s to title case, following the casing rules of loc.
func Title(s string, loc *seqalgo.Locale) string {
	if loc == nil {
		loc = seqalgo.DefaultLocale()
	}
	return cases.Title(loc.Tag()).String(s)
}

// --- Replace ---------------------------------------------------------------

// ReplaceFirst replaces the first occurrence of search in s by format.
func ReplaceFirst(s, search, format string) string {
	return string(seqalgo.ReplaceFirstCopy([]rune(s), []rune(search), []rune(format)))
}

// ReplaceLast replaces the last occurrence of search in s by format.
func ReplaceLast(s, search, format string) string {
	return string(seqalgo.ReplaceLastCopy([]rune(s), []rune(search), []rune(format)))
}

// ReplaceNth replaces the nth occurrence of search in s by format.
func ReplaceNth(s, search string, nth int, format string) string {
	return string(seqalgo.ReplaceNthCopy([]rune(s), []rune(search), nth, []rune(format)))
}

// ReplaceAll replaces all occurrences of search in s by format.
func ReplaceAll(s, search, format string) string {
	return string(seqalgo.ReplaceAllCopy([]rune(s), []rune(search), []rune(format)))
}

// IReplaceFirst replaces the first case-insensitive occurrence of search.
func IReplaceFirst(s, search, format string, loc *seqalgo.Locale) string {
	return string(seqalgo.IReplaceFirstCopy([]rune(s), []rune(search), []rune(format), loc))
}

// IReplaceNth replaces the nth case-insensitive occurrence of search.
func IReplaceNth(s, search string, nth int, format string, loc *seqalgo.Locale) string {
	return string(seqalgo.IReplaceNthCopy([]rune(s), []rune(search), nth, []rune(format), loc))
}

// IReplaceAll replaces all case-insensitive occurrences of search.
func IReplaceAll(s, search, format string, loc *seqalgo.Locale) string {
	return string(seqalgo.IReplaceAllCopy([]rune(s), []rune(search), []rune(format), loc))
}

// EraseFirst removes the first occurrence of search from s.
func EraseFirst(s, search string) string {
	return string(seqalgo.EraseFirstCopy([]rune(s), []rune(search)))
}

// EraseAll removes all occurrences of search from s.
func EraseAll(s, search string) string {
	return string(seqalgo.EraseAllCopy([]rune(s), []rune(search)))
}

// IEraseAll removes all case-insensitive occurrences of search from s.
func IEraseAll(s, search string, loc *seqalgo.Locale) string {
	return string(seqalgo.IEraseAllCopy([]rune(s), []rune(search), loc))
}

// --- Split and join --------------------------------------------------------

// Split splits s at every rune contained in separators. With
// seqalgo.CompressOn adjacent separators are treated as one and empty tokens
// at either end are dropped.
func Split(s, separators string, compress seqalgo.TokenCompress) []string {
	return SplitFunc(s, seqalgo.IsAnyRuneOf(separators), compress)
}

// SplitFunc splits s at every rune satisfying isSep.
func SplitFunc(s string, isSep seqalgo.Classifier[rune], compress seqalgo.TokenCompress) []string {
	return toStrings(seqalgo.Split([]rune(s), isSep, compress))
}

// Join concatenates parts, inserting sep between adjacent parts.
func Join(parts []string, sep string) string {
	rparts := make([][]rune, len(parts))
	for i, p := range parts {
		rparts[i] = []rune(p)
	}
	return string(seqalgo.Join(rparts, []rune(sep)))
}

func toStrings(parts [][]rune) []string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = string(p)
	}
	return strs
}
