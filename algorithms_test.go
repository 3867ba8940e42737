package seqalgo

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPredicates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := []rune("123456789")
	if !StartsWith(s, []rune("123")) {
		t.Errorf("expected %q to start with 123", string(s))
	}
	if !EndsWithFunc(s, []rune("789"), Ordinal[rune]()) {
		t.Errorf("expected %q to end with 789", string(s))
	}
	if Contains([]rune("1234567"), []rune("9")) {
		t.Errorf("expected 1234567 not to contain 9")
	}
	if !IContains([]rune("abcdef"), []rune("CDe"), nil) {
		t.Errorf("expected abcdef to contain CDe, ignoring case")
	}
	if StartsWith([]rune("12"), []rune("123")) || EndsWith([]rune("89"), []rune("789")) {
		t.Errorf("a sequence cannot start or end with a longer one")
	}
	if !StartsWith([]int{}, []int{}) || !EndsWith([]int{1}, []int{}) || !Contains([]int{}, []int{}) {
		t.Errorf("every sequence starts, ends with and contains the empty sequence")
	}
	if !IStartsWith([]rune("Hello"), []rune("hEL"), nil) || !IEndsWith([]rune("Hello"), []rune("LLO"), nil) {
		t.Errorf("case-insensitive prefix/suffix tests failed")
	}
	if !Equals([]byte("abc"), []byte("abc")) || Equals([]byte("abc"), []byte("abd")) {
		t.Errorf("Equals is broken")
	}
	if !EqualsFunc([]byte("abc"), []byte("ABC"), IEqualByte()) {
		t.Errorf("EqualsFunc with case-insensitive byte comparison is broken")
	}
}

func TestEndsWithTraversal(t *testing.T) {
	for _, tc := range []struct {
		in, suffix string
		expected   bool
	}{
		{"123456789", "789", true},
		{"123456789", "78", false},
		{"abab", "ab", true},
		{"ab", "abab", false},
		{"abc", "", true},
		{"", "", true},
	} {
		for _, trav := range []Traversal{Bidirectional, ForwardOnly} {
			if r := EndsWithTraversal([]rune(tc.in), []rune(tc.suffix), Ordinal[rune](), trav); r != tc.expected {
				t.Errorf("ends_with(%q, %q) with traversal %d: expected %v", tc.in, tc.suffix, trav, tc.expected)
			}
		}
	}
}

func TestLexicographicalCompare(t *testing.T) {
	less := OrdinalLess[rune]()
	if !LexicographicalCompare([]rune("abc"), []rune("abd"), less) {
		t.Errorf("abc < abd")
	}
	if !LexicographicalCompare([]rune("ab"), []rune("abc"), less) {
		t.Errorf("ab < abc")
	}
	if LexicographicalCompare([]rune("abc"), []rune("abc"), less) {
		t.Errorf("abc is not less than itself")
	}
	if !ILexicographicalCompare([]rune("apple"), []rune("BANANA"), nil) {
		t.Errorf("apple < BANANA, ignoring case")
	}
	if LexicographicalCompare([]rune("apple"), []rune("BANANA"), less) {
		t.Errorf("apple > BANANA, respecting case")
	}
}

func TestTrim(t *testing.T) {
	for _, s := range []string{"", "   ", "  a b  ", "x", "\t x \n"} {
		once := TrimCopy([]rune(s), nil)
		twice := TrimCopy(once, nil)
		if string(once) != string(twice) {
			t.Errorf("trim is not idempotent for %q: %q vs %q", s, string(once), string(twice))
		}
		seq := []rune(s)
		Trim(&seq, nil)
		if string(seq) != string(once) {
			t.Errorf("in-place trim of %q: expected %q, have %q", s, string(once), string(seq))
		}
	}
	if s := TrimLeftCopy([]rune("  ab  "), nil); string(s) != "ab  " {
		t.Errorf("trim left: have %q", string(s))
	}
	if s := TrimRightCopy([]rune("  ab  "), nil); string(s) != "  ab" {
		t.Errorf("trim right: have %q", string(s))
	}
	seq := []rune("  ab  ")
	TrimLeft(&seq, nil)
	TrimRight(&seq, nil)
	if string(seq) != "ab" {
		t.Errorf("in-place left and right trim: have %q", string(seq))
	}
	digits := []byte("007100")
	TrimFunc(&digits, IsEqualTo[byte]('0'))
	if string(digits) != "71" {
		t.Errorf("trim zeros: have %q", digits)
	}
	v := TrimView(Of([]rune("  ab  ")), IsSpace(nil))
	if v.Begin() != 2 || v.End() != 4 {
		t.Errorf("expected trimmed view [2,4), have %v", v)
	}
}

func TestTrimEndTraversal(t *testing.T) {
	v := Of([]rune(" a b  "))
	for _, trav := range []Traversal{Bidirectional, ForwardOnly} {
		if end := trimEnd(v, IsSpace(nil), trav); end != 4 {
			t.Errorf("traversal %d: expected end 4, have %d", trav, end)
		}
	}
	empty := Of([]rune("   "))
	for _, trav := range []Traversal{Bidirectional, ForwardOnly} {
		if end := trimEnd(empty, IsSpace(nil), trav); end != 0 {
			t.Errorf("traversal %d: expected end 0 for blank input, have %d", trav, end)
		}
	}
}

func TestTrimAllAndFill(t *testing.T) {
	if s := TrimAllCopy([]rune("  a \t b    c "), nil); string(s) != "a b c" {
		t.Errorf("trim all: have %q", string(s))
	}
	seq := []rune("\t a  \t b ")
	TrimAll(&seq, nil)
	if string(seq) != "a b" {
		t.Errorf("in-place trim all: have %q", string(seq))
	}
	if s := TrimFillCopy([]rune(" a  b   c "), []rune("--"), nil); string(s) != "a--b--c" {
		t.Errorf("trim fill: have %q", string(s))
	}
	seq = []rune(" a  b ")
	TrimFill(&seq, []rune("_"), nil)
	if string(seq) != "a_b" {
		t.Errorf("in-place trim fill: have %q", string(seq))
	}
}

func TestCase(t *testing.T) {
	for _, s := range []string{"Hello World", "straße", "ÄÖÜ", ""} {
		up := ToUpperCopy([]rune(s), nil)
		if string(ToUpperCopy(up, nil)) != string(up) {
			t.Errorf("to upper is not idempotent for %q", s)
		}
	}
	seq := []rune("Hello")
	ToLower(seq, nil)
	if string(seq) != "hello" {
		t.Errorf("in-place to lower: have %q", string(seq))
	}
	ToUpper(seq, nil)
	if string(seq) != "HELLO" {
		t.Errorf("in-place to upper: have %q", string(seq))
	}
	if s := ToLowerCopy([]rune("ABC"), nil); string(s) != "abc" {
		t.Errorf("to lower copy: have %q", string(s))
	}
	double := func(i int) int { return 2 * i }
	if r := TransformCopy([]int{1, 2, 3}, double); !slices.Equal(r, []int{2, 4, 6}) {
		t.Errorf("transform copy: have %v", r)
	}
}

func TestJoin(t *testing.T) {
	parts := Split([]rune("a,b,,c"), IsEqualTo(','), CompressOff)
	if len(parts) != 4 || len(parts[2]) != 0 {
		t.Fatalf("expected [a b '' c], have %q", parts)
	}
	if s := Join(parts, []rune(",")); string(s) != "a,b,,c" {
		t.Errorf("join: expected 'a,b,,c', have %q", string(s))
	}
	nonEmpty := func(p []rune) bool { return len(p) > 0 }
	if s := JoinIf(parts, []rune("+"), nonEmpty); string(s) != "a+b+c" {
		t.Errorf("join if: expected 'a+b+c', have %q", string(s))
	}
	if s := Join([][]rune{}, []rune(",")); s == nil || len(s) != 0 {
		t.Errorf("join of nothing must be an empty sequence")
	}
}

func TestReplaceAndErase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	in := []rune("one two one two")
	for _, tc := range []struct {
		name     string
		out      []rune
		expected string
	}{
		{"replace first", ReplaceFirstCopy(in, []rune("one"), []rune("1")), "1 two one two"},
		{"replace last", ReplaceLastCopy(in, []rune("two"), []rune("2")), "one two one 2"},
		{"replace nth", ReplaceNthCopy(in, []rune("one"), 1, []rune("1")), "one two 1 two"},
		{"replace all", ReplaceAllCopy(in, []rune("one"), []rune("1")), "1 two 1 two"},
		{"ireplace first", IReplaceFirstCopy(in, []rune("TWO"), []rune("2"), nil), "one 2 one two"},
		{"ireplace last", IReplaceLastCopy(in, []rune("ONE"), []rune("1"), nil), "one two 1 two"},
		{"ireplace nth", IReplaceNthCopy(in, []rune("ONE"), -2, []rune("1"), nil), "1 two one two"},
		{"ireplace all", IReplaceAllCopy(in, []rune("TWO"), []rune("2"), nil), "one 2 one 2"},
		{"replace head", ReplaceHeadCopy(in, 3, []rune("ONE")), "ONE two one two"},
		{"replace tail", ReplaceTailCopy(in, 3, []rune("TWO")), "one two one TWO"},
		{"replace range", ReplaceRangeCopy(in, 4, 7, []rune("2")), "one 2 one two"},
		{"erase first", EraseFirstCopy(in, []rune("one ")), "two one two"},
		{"erase last", EraseLastCopy(in, []rune(" two")), "one two one"},
		{"erase nth", EraseNthCopy(in, []rune(" two"), 0), "one one two"},
		{"erase all", EraseAllCopy(in, []rune("one ")), "two two"},
		{"ierase all", IEraseAllCopy(in, []rune("ONE "), nil), "two two"},
		{"erase head", EraseHeadCopy(in, 4), "two one two"},
		{"erase tail", EraseTailCopy(in, -4), "one "},
		{"erase range", EraseRangeCopy(in, 3, 11), "one two"},
	} {
		if string(tc.out) != tc.expected {
			t.Errorf("%s: expected %q, have %q", tc.name, tc.expected, string(tc.out))
		}
	}
	if string(in) != "one two one two" {
		t.Errorf("copying algorithms modified their input: %q", string(in))
	}
}

func TestReplaceAndEraseInPlace(t *testing.T) {
	seq := []rune("one two one two")
	ReplaceFirst(&seq, []rune("one"), []rune("three"))
	ReplaceLast(&seq, []rune("two"), []rune("2"))
	ReplaceNth(&seq, []rune("one"), 0, []rune("1"))
	if string(seq) != "three two 1 2" {
		t.Errorf("in-place replace: have %q", string(seq))
	}
	IReplaceAll(&seq, []rune("TWO"), []rune("II"), nil)
	IReplaceFirst(&seq, []rune("THREE"), []rune("III"), nil)
	if string(seq) != "III II 1 2" {
		t.Errorf("in-place case-insensitive replace: have %q", string(seq))
	}
	EraseAll(&seq, []rune("I"))
	if string(seq) != "  1 2" {
		t.Errorf("in-place erase all: have %q", string(seq))
	}
	EraseHead(&seq, 2)
	EraseTail(&seq, 2)
	if string(seq) != "1" {
		t.Errorf("in-place erase head and tail: have %q", string(seq))
	}
	ReplaceRange(&seq, 0, 1, []rune("one"))
	ReplaceHead(&seq, 1, []rune("O"))
	ReplaceTail(&seq, 1, []rune("E!"))
	if string(seq) != "OnE!" {
		t.Errorf("in-place range, head and tail replace: have %q", string(seq))
	}
	EraseRange(&seq, 1, 3)
	EraseFirst(&seq, []rune("!"))
	if string(seq) != "O" {
		t.Errorf("in-place erase range and first: have %q", string(seq))
	}
	seq = []rune("a.b.c")
	EraseLast(&seq, []rune("."))
	EraseNth(&seq, []rune("."), 0)
	IEraseFirst(&seq, []rune("B"), nil)
	if string(seq) != "ac" {
		t.Errorf("in-place erase last, nth and ifirst: have %q", string(seq))
	}
	seq = []rune("xXx")
	IEraseAll(&seq, []rune("x"), nil)
	if len(seq) != 0 {
		t.Errorf("in-place ierase all: have %q", string(seq))
	}
}

func TestEmptyInputs(t *testing.T) {
	var empty []rune
	if m := FindFirst(empty, []rune("x")); !m.IsEmpty() || m.Begin() != 0 {
		t.Errorf("find in empty input: have %v", m)
	}
	if s := TrimCopy(empty, nil); len(s) != 0 {
		t.Errorf("trim of empty input: have %q", string(s))
	}
	if s := Split(empty, IsSpace(nil), CompressOff); len(s) != 1 || len(s[0]) != 0 {
		t.Errorf("split of empty input: have %q", s)
	}
	Trim(&empty, nil)
	ReplaceAll(&empty, []rune("a"), []rune("b"))
	if len(empty) != 0 {
		t.Errorf("in-place algorithms on empty input: have %q", string(empty))
	}
}
