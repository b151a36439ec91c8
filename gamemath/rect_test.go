package gamemath

import "testing"

func TestIntersectionDisjointIsZero(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}
	b := Rect{X: 100, Y: 100, W: 32, H: 32}

	got := Intersection(a, b)
	if got != (Rect{}) {
		t.Errorf("Expected zero rect for disjoint inputs, got %+v", got)
	}
}

func TestIntersectionIdenticalIsUnchanged(t *testing.T) {
	a := Rect{X: 5, Y: 10, W: 64, H: 32}

	got := Intersection(a, a)
	if got != a {
		t.Errorf("Expected %+v, got %+v", a, got)
	}
}

func TestIntersectionPartialOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}
	b := Rect{X: 24, Y: 16, W: 32, H: 32}

	got := Intersection(a, b)
	want := Rect{X: 24, Y: 16, W: 8, H: 16}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestIntersectionGrazingContactIsZero(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}

	// Exact edge contact and sub-tolerance slivers are not collisions.
	cases := []Rect{
		{X: 32, Y: 0, W: 32, H: 32},
		{X: 31.95, Y: 0, W: 32, H: 32},
		{X: 0, Y: 31.91, W: 32, H: 32},
	}
	for _, b := range cases {
		if got := Intersection(a, b); got != (Rect{}) {
			t.Errorf("Expected zero rect for graze with %+v, got %+v", b, got)
		}
	}
}

func TestEmptyWithTolerance(t *testing.T) {
	if !(Rect{W: 0.05, H: 32}).EmptyWithTolerance() {
		t.Error("0.05-wide rect should be empty")
	}
	if !(Rect{W: 32, H: 0.09}).EmptyWithTolerance() {
		t.Error("0.09-tall rect should be empty")
	}
	if (Rect{W: 0.1, H: 0.1}).EmptyWithTolerance() {
		t.Error("rect at exactly the tolerance should not be empty")
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("Edge accessors wrong for %+v: %v %v %v %v",
			r, r.Left(), r.Right(), r.Top(), r.Bottom())
	}
}
