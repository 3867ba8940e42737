package seqalgo

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tokenStrings(views []View[rune]) []string {
	strs := make([]string, len(views))
	for i, v := range views {
		strs[i] = string(v.Elems())
	}
	return strs
}

func TestSplitIterator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	comma := TokenFinder(IsEqualTo(','), CompressOff)
	for _, tc := range []struct {
		in       string
		expected []string
	}{
		{"a,b,,c", []string{"a", "b", "", "c"}},
		{"a,", []string{"a", ""}},
		{",a", []string{"", "a"}},
		{"abc", []string{"abc"}},
		{"", []string{""}},
		{",", []string{"", ""}},
	} {
		tokens := tokenStrings(IterSplitViews(Of([]rune(tc.in)), comma))
		if !slices.Equal(tokens, tc.expected) {
			t.Errorf("split %q: expected %q, have %q", tc.in, tc.expected, tokens)
		}
	}
}

func TestFindIterator(t *testing.T) {
	seq := Of([]rune("abcabxab"))
	it := NewFindIterator(seq, FirstFinder([]rune("ab"), Ordinal[rune]()))
	var positions []int
	for ; !it.Eof(); it.Next() {
		positions = append(positions, it.Match().Begin())
	}
	if !slices.Equal(positions, []int{0, 3, 6}) {
		t.Errorf("expected matches at 0, 3, 6, have %v", positions)
	}
	if it.Next() {
		t.Errorf("an iterator at eof must not advance")
	}
	if !it.Equal(&FindIterator[rune]{}) {
		t.Errorf("iterators at eof must be equal")
	}
	a := NewFindIterator(seq, FirstFinder([]rune("ab"), Ordinal[rune]()))
	b := NewFindIterator(seq, FirstFinder([]rune("ab"), Ordinal[rune]()))
	if !a.Equal(b) {
		t.Errorf("iterators at the same match must be equal")
	}
	b.Next()
	if a.Equal(b) {
		t.Errorf("iterators at different matches must not be equal")
	}
}

func TestIteratorZeroValues(t *testing.T) {
	var fit FindIterator[int]
	if !fit.Eof() || fit.Next() {
		t.Errorf("zero find iterator must be at eof")
	}
	var sit SplitIterator[int]
	if !sit.Eof() || sit.Next() {
		t.Errorf("zero split iterator must be at eof")
	}
	var nilIt *SplitIterator[int]
	if !nilIt.Eof() || !nilIt.Equal(&sit) {
		t.Errorf("nil split iterator must be at eof and equal to other eof iterators")
	}
}

func TestRangeFunctions(t *testing.T) {
	seq := Of([]byte("k1=v1;k2=v2"))
	var keys []string
	for tok := range Tokens(seq, TokenFinder(IsAnyOf[byte]('=', ';'), CompressOff)) {
		keys = append(keys, string(tok.Elems()))
		if len(keys) == 3 {
			break
		}
	}
	if !slices.Equal(keys, []string{"k1", "v1", "k2"}) {
		t.Errorf("unexpected tokens %q", keys)
	}
	count := 0
	for range Matches(seq, TokenFinder(IsFromRange[byte]('0', '9'), CompressOff)) {
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 digits, counted %d", count)
	}
}

func TestEmptyMatchEndsIteration(t *testing.T) {
	empty := FirstFinder([]rune{}, Ordinal[rune]())
	if ms := IterFindViews(Of([]rune("abc")), empty); len(ms) != 0 {
		t.Errorf("expected no matches for an empty pattern, have %v", ms)
	}
	if ts := tokenStrings(IterSplitViews(Of([]rune("abc")), empty)); !slices.Equal(ts, []string{"abc"}) {
		t.Errorf("expected a single token for an empty pattern, have %q", ts)
	}
}

func TestSplitCompression(t *testing.T) {
	in := []rune(" i am a student , you are a  teacher! ")
	tokens := Split(in, IsAnyRuneOf(", "), CompressOn)
	expected := []string{"i", "am", "a", "student", "you", "are", "a", "teacher!"}
	have := make([]string, len(tokens))
	for i, tok := range tokens {
		have[i] = string(tok)
	}
	if !slices.Equal(have, expected) {
		t.Errorf("compressed split: expected %q, have %q", expected, have)
	}
	off := Split(in, IsAnyRuneOf(", "), CompressOff)
	empties := 0
	for _, tok := range off {
		if len(tok) == 0 {
			empties++
		}
	}
	if empties == 0 || len(off) <= len(expected) {
		t.Errorf("expected extra empty tokens without compression, have %d tokens", len(off))
	}
	if s := Split([]rune{}, IsSpace(nil), CompressOn); len(s) != 0 {
		t.Errorf("expected compressed split of empty input to have no tokens, have %d", len(s))
	}
}
