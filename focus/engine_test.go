package focus

import "testing"

func TestFindClosestDeterministic(t *testing.T) {
	from := &Focusable{ID: "a", Pos: rectAt(0, 0)}
	cands := []Focusable{
		{ID: "a", Pos: rectAt(0, 0)},
		{ID: "b", Pos: rectAt(0, 40)},
		{ID: "c", Pos: rectAt(0, 20)},
	}
	first := FindClosest(from, DirDown, cands)
	for i := 0; i < 50; i++ {
		got := FindClosest(from, DirDown, cands)
		if got == nil || got.ID != first.ID {
			t.Fatalf("iteration %d: got %v, want %s every time", i, got, first.ID)
		}
	}
}

func TestFindClosestPrefersNearestInDirection(t *testing.T) {
	// B below A with offset 20, C below A with offset 5: C wins.
	from := &Focusable{ID: "A", Pos: Rect{X: 0, Y: 0, W: 10, H: 10}}
	cands := []Focusable{
		{ID: "A", Pos: Rect{X: 0, Y: 0, W: 10, H: 10}},
		{ID: "B", Pos: Rect{X: 0, Y: 20, W: 10, H: 10}},
		{ID: "C", Pos: Rect{X: 0, Y: 5, W: 10, H: 10}},
	}
	got := FindClosest(from, DirDown, cands)
	if got == nil || got.ID != "C" {
		t.Fatalf("want C, got %v", got)
	}
}

func TestFindClosestConeRejection(t *testing.T) {
	from := &Focusable{ID: "a", Pos: rectAt(0, 0)}
	cands := []Focusable{
		{ID: "a", Pos: rectAt(0, 0)},
		{ID: "side", Pos: rectAt(300, 0)}, // same row, far right
	}
	if got := FindClosest(from, DirUp, cands); got != nil {
		t.Fatalf("up: want nil, got %s", got.ID)
	}
	if got := FindClosest(from, DirDown, cands); got != nil {
		t.Fatalf("down: want nil, got %s", got.ID)
	}
	if got := FindClosest(from, DirRight, cands); got == nil || got.ID != "side" {
		t.Fatalf("right: want side, got %v", got)
	}
}

func TestFindClosestSkipsDisabled(t *testing.T) {
	from := &Focusable{ID: "a", Pos: rectAt(0, 0)}
	cands := []Focusable{
		{ID: "a", Pos: rectAt(0, 0)},
		{ID: "b", Pos: rectAt(0, 30), Disabled: true},
		{ID: "c", Pos: rectAt(0, 60), Disabled: true},
	}
	if got := FindClosest(from, DirDown, cands); got != nil {
		t.Fatalf("all candidates disabled, want nil, got %s", got.ID)
	}
}

func TestFindClosestBootstrapByPriority(t *testing.T) {
	cands := []Focusable{
		{ID: "p1", Pos: rectAt(0, 0), Priority: 1},
		{ID: "p5", Pos: rectAt(0, 20), Priority: 5},
		{ID: "p2", Pos: rectAt(0, 40), Priority: 2},
	}
	got := FindClosest(nil, DirDown, cands)
	if got == nil || got.ID != "p5" {
		t.Fatalf("want p5, got %v", got)
	}
}

func TestFindClosestBootstrapTieFirstSeen(t *testing.T) {
	cands := []Focusable{
		{ID: "x", Pos: rectAt(0, 0)},
		{ID: "y", Pos: rectAt(0, 20)},
	}
	got := FindClosest(nil, DirUp, cands)
	if got == nil || got.ID != "x" {
		t.Fatalf("equal priority must fall to first seen, got %v", got)
	}
}

func TestSequentialOrderAndWraparound(t *testing.T) {
	// Two rows; b and c are within row tolerance of each other.
	cands := []Focusable{
		{ID: "c", Pos: Rect{X: 50, Y: 3, W: 10, H: 10}},
		{ID: "b", Pos: Rect{X: 0, Y: 0, W: 10, H: 10}},
		{ID: "d", Pos: Rect{X: 0, Y: 40, W: 10, H: 10}},
		{ID: "top", Pos: Rect{X: 0, Y: 100, W: 10, H: 10}, Priority: 9},
	}

	// Priority precedes position: top leads despite sitting lowest.
	first := NextSequential(nil, cands)
	if first == nil || first.ID != "top" {
		t.Fatalf("want top first, got %v", first)
	}

	order := []string{"top", "b", "c", "d"}
	cur := first
	for i := 1; i < len(order); i++ {
		cur = NextSequential(cur, cands)
		if cur == nil || cur.ID != order[i] {
			t.Fatalf("step %d: want %s, got %v", i, order[i], cur)
		}
	}

	// Wraparound both ways.
	if got := NextSequential(cur, cands); got == nil || got.ID != "top" {
		t.Fatalf("next past last must wrap to first, got %v", got)
	}
	if got := PrevSequential(first, cands); got == nil || got.ID != "d" {
		t.Fatalf("prev before first must wrap to last, got %v", got)
	}
}

func TestSequentialSkipsDisabled(t *testing.T) {
	cands := []Focusable{
		{ID: "a", Pos: rectAt(0, 0)},
		{ID: "b", Pos: rectAt(0, 20), Disabled: true},
		{ID: "c", Pos: rectAt(0, 40)},
	}
	from := &Focusable{ID: "a", Pos: rectAt(0, 0)}
	if got := NextSequential(from, cands); got == nil || got.ID != "c" {
		t.Fatalf("want c, got %v", got)
	}
}

func TestSequentialEmpty(t *testing.T) {
	if got := NextSequential(nil, nil); got != nil {
		t.Fatalf("want nil on empty set, got %v", got)
	}
}
