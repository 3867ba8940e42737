package strs

import (
	"sync"

	"github.com/npillmayer/seqalgo"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// graphemeString segments s into grapheme clusters. The grapheme classes are
// set up on first use.
func graphemeString(s string) grapheme.String {
	setupGraphemes.Do(func() {
		tracer().Debugf("setting up grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
	return grapheme.StringFromString(s)
}

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	gstr := graphemeString(s)
	g := make([]string, gstr.Len())
	for i := range g {
		g[i] = gstr.Nth(i)
	}
	return g
}

// HeadGraphemes returns the first n grapheme clusters of s. For negative n all
// but the last |n| grapheme clusters are returned.
func HeadGraphemes(s string, n int) string {
	return joinView(seqalgo.FindHead(Graphemes(s), n))
}

// TailGraphemes returns the last n grapheme clusters of s. For negative n all
// but the first |n| grapheme clusters are returned.
func TailGraphemes(s string, n int) string {
	return joinView(seqalgo.FindTail(Graphemes(s), n))
}

func joinView(v seqalgo.View[string]) string {
	var size int
	for _, g := range v.Elems() {
		size += len(g)
	}
	b := make([]byte, 0, size)
	for _, g := range v.Elems() {
		b = append(b, g...)
	}
	return string(b)
}

// Width returns the display width of s in units of 'en', i.e. the number of
// cells a fixed width terminal will use. If ctx is nil, a context derived from
// the user's environment is used.
func Width(s string, ctx *uax11.Context) int {
	if ctx == nil {
		ctx = uax11.ContextFromEnvironment()
	}
	return uax11.StringWidth(graphemeString(s), ctx)
}
