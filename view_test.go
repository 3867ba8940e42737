package seqalgo

import (
	"testing"
)

func TestViewConstruction(t *testing.T) {
	v := Of([]int{1, 2, 3})
	if v.Len() != 3 || v.Begin() != 0 || v.End() != 3 {
		t.Errorf("expected view [0,3), have %v", v)
	}
	buf := []byte{'a', 'b', 0, 'c'}
	if tv := Terminated(buf); tv.Len() != 2 || string(tv.Elems()) != "ab" {
		t.Errorf("expected zero-terminated view 'ab', have %v", tv)
	}
	if tv := Terminated([]byte("abc")); tv.Len() != 3 {
		t.Errorf("expected unterminated buffer to be fully visible, have %v", tv)
	}
	var arr [8]rune
	copy(arr[:], []rune("hey"))
	if av := FromArray(arr[:]); av.Len() != 3 || string(av.Elems()) != "hey" {
		t.Errorf("expected array view 'hey', have %v", av)
	}
	if iv := v.View(); !sameBounds(iv, v) {
		t.Errorf("expected identity view to have the same bounds")
	}
}

func TestViewEmptyCopy(t *testing.T) {
	var nothing []int
	v := Of(nothing)
	if !v.IsEmpty() {
		t.Errorf("expected view of nil slice to be empty")
	}
	if c := v.Copy(); c == nil || len(c) != 0 {
		t.Errorf("expected copy of empty view to be a non-nil empty slice")
	}
}

func TestViewElemsClipped(t *testing.T) {
	s := []int{1, 2, 3, 4}
	e := Of(s).Sub(1, 3).Elems()
	_ = append(e, 99)
	if s[3] != 4 {
		t.Errorf("appending to the elements of a view overwrote the base slice")
	}
}

func TestViewSubAndSlice(t *testing.T) {
	v := Of([]rune("hello world")).Sub(6, 11)
	if string(v.Elems()) != "world" || v.At(0) != 'w' {
		t.Errorf("expected sub-view 'world', have %v", v)
	}
	if w := v.Slice(7, 9); string(w.Elems()) != "or" {
		t.Errorf("expected absolute slice 'or', have %v", w)
	}
	if e := v.AtEnd(); !e.IsEmpty() || e.Begin() != 11 {
		t.Errorf("expected empty view at 11, have %v", e)
	}
	if b := v.AtBegin(); !b.IsEmpty() || b.Begin() != 6 {
		t.Errorf("expected empty view at 6, have %v", b)
	}
}

func TestViewPanics(t *testing.T) {
	v := Of([]int{1, 2, 3})
	for name, fn := range map[string]func(){
		"At":    func() { v.At(3) },
		"Sub":   func() { v.Sub(2, 1) },
		"Slice": func() { v.Sub(1, 2).Slice(0, 2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected out of range access to panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestViewEquality(t *testing.T) {
	a := Of([]rune("abc"))
	b := Of([]rune("xabcx")).Sub(1, 4)
	if !Equal(a, b) {
		t.Errorf("expected views to be equal")
	}
	if !EqualFunc(Of([]rune("ABC")), a, IEqual(nil)) {
		t.Errorf("expected views to be equal ignoring case")
	}
	if sameBounds(a, b) {
		t.Errorf("views over different slices must not have the same bounds")
	}
}
