package rgn16

import (
	"math/rand"
	"testing"
)

func rect(x0, y0, x1, y1 Coord) Rect { return Rect{x0, y0, x1, y1} }

func TestUnionCoalescesBands(t *testing.T) {
	// Scenario B from the spec: two bands separated by a third band that
	// exactly bridges them collapse into one rectangle.
	a := Union(FromRect(rect(10, 10, 20, 15)), FromRect(rect(10, 20, 20, 30)))
	b := FromRect(rect(10, 15, 20, 25))

	got := Union(a, b)
	want := FromRect(rect(10, 10, 20, 30))

	if !got.Equals(want) {
		t.Fatalf("Union = %+v, want simple rect %+v", got.Rects(), want.Rects())
	}
	if got.Extents() != rect(10, 10, 20, 30) {
		t.Fatalf("Extents = %+v, want %+v", got.Extents(), rect(10, 10, 20, 30))
	}
}

func TestXorExactOverlapIsEmpty(t *testing.T) {
	a := FromRect(rect(10, 10, 20, 20))
	b := FromRect(rect(10, 10, 20, 20))

	got := Xor(a, b)
	if !got.IsEmpty() {
		t.Fatalf("Xor of identical rects = %+v, want empty", got.Rects())
	}
}

func TestCombinatorLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randomRegion(rng)
		b := randomRegion(rng)
		c := randomRegion(rng)

		if !Union(a, a).Equals(a) {
			t.Fatalf("union(A,A) != A for A=%+v", a.Rects())
		}
		if !Xor(a, a).IsEmpty() {
			t.Fatalf("xor(A,A) != empty for A=%+v", a.Rects())
		}
		if !Subtract(a, Empty()).Equals(a) {
			t.Fatalf("subtract(A,empty) != A for A=%+v", a.Rects())
		}
		if !Subtract(Empty(), a).IsEmpty() {
			t.Fatalf("subtract(empty,A) != empty for A=%+v", a.Rects())
		}
		if !Union(a, b).Equals(Union(b, a)) {
			t.Fatalf("union not commutative for A=%+v B=%+v", a.Rects(), b.Rects())
		}
		if !Xor(a, b).Equals(Xor(b, a)) {
			t.Fatalf("xor not commutative for A=%+v B=%+v", a.Rects(), b.Rects())
		}

		u := Union(a, b)
		assertCanonical(t, u)
		assertCanonical(t, Subtract(a, b))
		assertCanonical(t, Xor(a, b))

		probe := rect(Coord(rng.Intn(40)), Coord(rng.Intn(40)), 0, 0)
		probe.X1, probe.Y1 = probe.X0+1, probe.Y0+1
		gotUnion := u.ContainsRect(probe)
		wantUnion := a.ContainsRect(probe) || b.ContainsRect(probe)
		if gotUnion != wantUnion {
			t.Fatalf("contains(union(A,B),r)=%v want %v; A=%+v B=%+v r=%+v",
				gotUnion, wantUnion, a.Rects(), b.Rects(), probe)
		}

		_ = c
	}
}

func TestDisjointSubtractIsNoop(t *testing.T) {
	a := FromRect(rect(0, 0, 5, 5))
	b := FromRect(rect(10, 10, 15, 15))
	if !Subtract(a, b).Equals(a) {
		t.Fatalf("disjoint subtract changed A: %+v", Subtract(a, b).Rects())
	}
}

func TestSimpleSubsetSubtractIsEmpty(t *testing.T) {
	a := FromRect(rect(2, 2, 4, 4))
	b := FromRect(rect(0, 0, 10, 10))
	if !Subtract(a, b).IsEmpty() {
		t.Fatalf("subset subtract not empty: %+v", Subtract(a, b).Rects())
	}
}

func TestExtentsConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		r := randomRegion(rng)
		if r.IsEmpty() {
			continue
		}
		var x0, y0, x1, y1 Coord
		x0, y0 = ^Coord(0), ^Coord(0)
		for _, rc := range r.Rects() {
			if rc.X0 < x0 {
				x0 = rc.X0
			}
			if rc.Y0 < y0 {
				y0 = rc.Y0
			}
			if rc.X1 > x1 {
				x1 = rc.X1
			}
			if rc.Y1 > y1 {
				y1 = rc.Y1
			}
		}
		want := rect(x0, y0, x1, y1)
		if r.Extents() != want {
			t.Fatalf("extents = %+v, want %+v for rects %+v", r.Extents(), want, r.Rects())
		}
	}
}

// assertCanonical checks §3.2 / §8 property 3: bands strictly increasing in
// y0, rects within a band strictly increasing in x0 with gaps, and no two
// consecutive bands would coalesce.
func assertCanonical(t *testing.T, r Region) {
	t.Helper()
	if r.N() < 2 {
		return
	}
	bs := bandsOf(r)
	for i, b := range bs {
		if len(b.Spans) == 0 {
			t.Fatalf("band %d has no spans", i)
		}
		for j := 1; j < len(b.Spans); j++ {
			if b.Spans[j].X0 <= b.Spans[j-1].X1 {
				t.Fatalf("band %d spans not strictly increasing/gapped: %+v", i, b.Spans)
			}
		}
		if i > 0 {
			prev := bs[i-1]
			if prev.Y0 >= b.Y0 {
				t.Fatalf("bands not strictly increasing in y0: %+v then %+v", prev, b)
			}
			if prev.Y1 == b.Y0 && sameSpans(prev.Spans, b.Spans) {
				t.Fatalf("adjacent bands should have coalesced: %+v then %+v", prev, b)
			}
		}
	}
}

// randomRegion builds a small random region by unioning a handful of
// random rectangles, which is enough to exercise multi-band canonical
// forms without needing a from-scratch region literal syntax.
func randomRegion(rng *rand.Rand) Region {
	n := rng.Intn(4)
	r := Empty()
	for i := 0; i < n; i++ {
		x0 := Coord(rng.Intn(30))
		y0 := Coord(rng.Intn(30))
		r = Union(r, FromRect(rect(x0, y0, x0+Coord(1+rng.Intn(8)), y0+Coord(1+rng.Intn(8)))))
	}
	return r
}
