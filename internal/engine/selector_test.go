package engine

import (
	"errors"
	"testing"
)

var selectorBoard = [][]int{
	{1, 2, 3, 4},
	{5, 0, 7, 8},
	{9, 1, 2, 3},
}

func TestSelectorBeginEmptyAnchor(t *testing.T) {
	s := NewSelector(mustGrid(t, selectorBoard))
	if _, err := s.Begin(Coord{1, 1}); !errors.Is(err, ErrInvalidAnchor) {
		t.Fatalf("err = %v, want ErrInvalidAnchor", err)
	}
	if s.Active() {
		t.Error("selector active after rejected anchor")
	}
	if _, err := s.Begin(Coord{3, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestSelectorSingleCell(t *testing.T) {
	s := NewSelector(mustGrid(t, selectorBoard))
	sel, err := s.Begin(Coord{2, 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Cells) != 1 || sel.Sum != 9 {
		t.Fatalf("selection = %+v", sel)
	}
	if sel.Rect != (Rect{2, 0, 2, 0}) {
		t.Errorf("rect = %+v", sel.Rect)
	}
}

func TestSelectorUpdate(t *testing.T) {
	tests := []struct {
		name   string
		anchor Coord
		cursor Coord
		rect   Rect
		coords []Coord
		sum    int
	}{
		{"row", Coord{0, 0}, Coord{0, 2}, Rect{0, 0, 0, 2}, []Coord{{0, 0}, {0, 1}, {0, 2}}, 6},
		{"skips empty", Coord{0, 0}, Coord{1, 1}, Rect{0, 0, 1, 1}, []Coord{{0, 0}, {0, 1}, {1, 0}}, 8},
		{"up-left drag", Coord{2, 3}, Coord{1, 2}, Rect{1, 2, 2, 3}, []Coord{{1, 2}, {1, 3}, {2, 2}, {2, 3}}, 20},
		{"same cell", Coord{1, 3}, Coord{1, 3}, Rect{1, 3, 1, 3}, []Coord{{1, 3}}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(mustGrid(t, selectorBoard))
			if _, err := s.Begin(tt.anchor); err != nil {
				t.Fatal(err)
			}
			sel, _, err := s.Update(tt.cursor)
			if err != nil {
				t.Fatal(err)
			}
			if sel.Rect != tt.rect {
				t.Errorf("rect = %+v, want %+v", sel.Rect, tt.rect)
			}
			if sel.Sum != tt.sum {
				t.Errorf("sum = %d, want %d", sel.Sum, tt.sum)
			}
			got := sel.Coords()
			if len(got) != len(tt.coords) {
				t.Fatalf("coords = %v, want %v", got, tt.coords)
			}
			for i := range got {
				if got[i] != tt.coords[i] {
					t.Errorf("coords[%d] = %v, want %v (row-major)", i, got[i], tt.coords[i])
				}
			}
		})
	}
}

func TestSelectorUpdateSameRectangle(t *testing.T) {
	s := NewSelector(mustGrid(t, selectorBoard))
	if _, err := s.Begin(Coord{0, 0}); err != nil {
		t.Fatal(err)
	}
	first, changed, err := s.Update(Coord{1, 2})
	if err != nil || !changed {
		t.Fatalf("first update changed=%v err=%v", changed, err)
	}
	again, changed, err := s.Update(Coord{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("repeated cursor reported a change")
	}
	if again.Sum != first.Sum || !sameCoords(again.Cells, first.Cells) {
		t.Errorf("repeat = %+v, want %+v", again, first)
	}

	// A fresh selector reaching the same rectangle computes the same result.
	fresh := NewSelector(mustGrid(t, selectorBoard))
	if _, err := fresh.Begin(Coord{0, 0}); err != nil {
		t.Fatal(err)
	}
	fresh.Update(Coord{2, 3})
	recomputed, _, _ := fresh.Update(Coord{1, 2})
	if recomputed.Sum != first.Sum || !sameCoords(recomputed.Cells, first.Cells) {
		t.Errorf("recomputed = %+v, want %+v", recomputed, first)
	}
}

func TestSelectorUpdateOutOfBounds(t *testing.T) {
	s := NewSelector(mustGrid(t, selectorBoard))
	if _, err := s.Begin(Coord{0, 0}); err != nil {
		t.Fatal(err)
	}
	prev := s.Selection()
	sel, changed, err := s.Update(Coord{0, 4})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v", err)
	}
	if changed || sel.Rect != prev.Rect {
		t.Error("out-of-bounds update changed the selection")
	}
}

func TestSelectorSymmetric(t *testing.T) {
	g := NewGrid(Rows, Cols, seeded(42))
	if err := g.Clear([]Coord{{0, 0}, {3, 4}, {5, 5}, {9, 16}}); err != nil {
		t.Fatal(err)
	}
	rng := seeded(3)
	for i := 0; i < 200; i++ {
		a := Coord{rng.Intn(Rows), rng.Intn(Cols)}
		b := Coord{rng.Intn(Rows), rng.Intn(Cols)}
		if v, _ := g.ValueAt(a.Row, a.Col); v == Empty {
			continue
		}
		if v, _ := g.ValueAt(b.Row, b.Col); v == Empty {
			continue
		}
		ab := NewSelector(g)
		ab.Begin(a)
		x, _, _ := ab.Update(b)
		ba := NewSelector(g)
		ba.Begin(b)
		y, _, _ := ba.Update(a)
		if x.Sum != y.Sum || !sameCoords(x.Cells, y.Cells) {
			t.Fatalf("%v->%v gives %v, %v->%v gives %v", a, b, x.Coords(), b, a, y.Coords())
		}
	}
}

func TestSelectorEnd(t *testing.T) {
	s := NewSelector(mustGrid(t, selectorBoard))
	if _, ok := s.End(); ok {
		t.Error("End without Begin reported a selection")
	}
	s.Begin(Coord{0, 0})
	s.Update(Coord{0, 1})
	sel, ok := s.End()
	if !ok || sel.Sum != 3 {
		t.Errorf("End = %+v, %v", sel, ok)
	}
	if s.Active() || len(s.Cells()) != 0 {
		t.Error("selection survived End")
	}
}
