package seqalgo

import (
	"cmp"
	"slices"
	"unicode"
)

// Classifier is a predicate over a single element. Trim and token operations
// are driven by classifiers.
//
// Implementing Classifier is what makes a predicate eligible for composition
// with And, Or and Not. Plain functions may be adapted with ClassifierFunc.
type Classifier[T any] interface {
	Classify(T) bool
}

// ClassifierFunc adapts an ordinary function to a Classifier.
type ClassifierFunc[T any] func(T) bool

// Classify calls f(e).
func (f ClassifierFunc[T]) Classify(e T) bool {
	return f(e)
}

// --- Composition -----------------------------------------------------------

type andClassifier[T any] struct {
	left, right Classifier[T]
}

func (c andClassifier[T]) Classify(e T) bool {
	return c.left.Classify(e) && c.right.Classify(e)
}

type orClassifier[T any] struct {
	left, right Classifier[T]
}

func (c orClassifier[T]) Classify(e T) bool {
	return c.left.Classify(e) || c.right.Classify(e)
}

type notClassifier[T any] struct {
	c Classifier[T]
}

func (c notClassifier[T]) Classify(e T) bool {
	return !c.c.Classify(e)
}

// And composes two classifiers. The right classifier is consulted only if the
// left one is satisfied.
func And[T any](left, right Classifier[T]) Classifier[T] {
	return andClassifier[T]{left: left, right: right}
}

// Or composes two classifiers. The right classifier is consulted only if the
// left one is not satisfied.
func Or[T any](left, right Classifier[T]) Classifier[T] {
	return orClassifier[T]{left: left, right: right}
}

// Not negates a classifier.
func Not[T any](c Classifier[T]) Classifier[T] {
	return notClassifier[T]{c: c}
}

// --- Built-in classifiers --------------------------------------------------

// IsSpace classifies white-space runes according to loc (nil for the default
// locale).
func IsSpace(loc *Locale) Classifier[rune] {
	loc = localeOrDefault(loc)
	return ClassifierFunc[rune](loc.IsSpace)
}

// anyOfSmall is the set size up to which a linear scan beats binary search.
const anyOfSmall = 16

type anyOfClassifier[T cmp.Ordered] struct {
	set []T // sorted if len(set) > anyOfSmall
}

func (c anyOfClassifier[T]) Classify(e T) bool {
	if len(c.set) <= anyOfSmall {
		return slices.Contains(c.set, e)
	}
	_, found := slices.BinarySearch(c.set, e)
	return found
}

// IsAnyOf classifies elements which are members of set. The set is copied.
func IsAnyOf[T cmp.Ordered](set ...T) Classifier[T] {
	c := anyOfClassifier[T]{set: slices.Clone(set)}
	if len(c.set) > anyOfSmall {
		slices.Sort(c.set)
		c.set = slices.Compact(c.set)
	}
	return c
}

// IsAnyRuneOf classifies runes contained in s.
func IsAnyRuneOf(s string) Classifier[rune] {
	return IsAnyOf([]rune(s)...)
}

// IsEqualTo classifies elements equal to v.
func IsEqualTo[T comparable](v T) Classifier[T] {
	return ClassifierFunc[T](func(e T) bool {
		return e == v
	})
}

// IsFromRange classifies elements e with lo <= e <= hi.
func IsFromRange[T cmp.Ordered](lo, hi T) Classifier[T] {
	return ClassifierFunc[T](func(e T) bool {
		return lo <= e && e <= hi
	})
}

// Rune classes.
var (
	IsAlpha  Classifier[rune] = ClassifierFunc[rune](unicode.IsLetter)
	IsDigit  Classifier[rune] = ClassifierFunc[rune](unicode.IsDigit)
	IsAlnum  Classifier[rune] = Or(IsAlpha, IsDigit)
	IsPunct  Classifier[rune] = ClassifierFunc[rune](unicode.IsPunct)
	IsUpper  Classifier[rune] = ClassifierFunc[rune](unicode.IsUpper)
	IsLower  Classifier[rune] = ClassifierFunc[rune](unicode.IsLower)
	IsCntrl  Classifier[rune] = ClassifierFunc[rune](unicode.IsControl)
	IsGraph  Classifier[rune] = ClassifierFunc[rune](unicode.IsGraphic)
	IsPrint  Classifier[rune] = ClassifierFunc[rune](unicode.IsPrint)
	IsXDigit Classifier[rune] = Or(IsFromRange('0', '9'), Or(IsFromRange('a', 'f'), IsFromRange('A', 'F')))
)

// classify is the nil-safe way of consulting a classifier; a nil classifier
// never matches.
func classify[T any](c Classifier[T], e T) bool {
	return c != nil && c.Classify(e)
}
