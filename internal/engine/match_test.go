package engine

import "testing"

func TestScore(t *testing.T) {
	tests := []struct{ n, want int }{
		{2, 10},
		{3, 15},
		{4, 20},
		{10, 50},
	}
	for _, tt := range tests {
		if got := Score(tt.n); got != tt.want {
			t.Errorf("Score(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	m := NewMatchEngine(mustGrid(t, [][]int{{1}}))
	tests := []struct {
		name  string
		cells []Cell
		sum   int
		match bool
	}{
		{"pair", []Cell{{0, 0, 4}, {0, 1, 6}}, 10, true},
		{"triple", []Cell{{0, 0, 3}, {0, 1, 3}, {0, 2, 4}}, 10, true},
		{"single cell at target", []Cell{{0, 0, 10}}, 10, false},
		{"short", []Cell{{0, 0, 3}, {0, 1, 4}}, 7, false},
		{"over", []Cell{{0, 0, 9}, {0, 1, 4}}, 13, false},
		{"empty", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := m.Validate(Selection{Cells: tt.cells, Sum: tt.sum})
			if ok != tt.match {
				t.Fatalf("match = %v, want %v", ok, tt.match)
			}
			if ok && match.ScoreDelta != Score(len(tt.cells)) {
				t.Errorf("delta = %d, want %d", match.ScoreDelta, Score(len(tt.cells)))
			}
		})
	}
}

func TestApplyClearsCells(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 3, 4, 9}})
	s := NewSelector(g)
	s.Begin(Coord{0, 0})
	sel, _, _ := s.Update(Coord{0, 2})
	m := NewMatchEngine(g)
	match, ok := m.Validate(sel)
	if !ok {
		t.Fatalf("no match for %+v", sel)
	}
	delta, err := m.Apply(match)
	if err != nil {
		t.Fatal(err)
	}
	if delta != 15 {
		t.Errorf("delta = %d, want 15", delta)
	}
	for _, p := range match.Coords() {
		if v, _ := g.ValueAt(p.Row, p.Col); v != Empty {
			t.Errorf("%v = %d after apply", p, v)
		}
	}
	if v, _ := g.ValueAt(0, 3); v != 9 {
		t.Errorf("untouched cell changed to %d", v)
	}
}

func TestFindMatch(t *testing.T) {
	tests := []struct {
		name  string
		board [][]int
		want  Rect
		found bool
	}{
		{"pair", [][]int{{1, 4, 6}, {8, 8, 8}}, Rect{0, 1, 0, 2}, true},
		{"vertical", [][]int{{2, 9}, {8, 9}}, Rect{0, 0, 1, 0}, true},
		{"diagonal through empty", [][]int{{0, 7}, {3, 9}}, Rect{0, 0, 1, 0}, false},
		{"anti-diagonal", [][]int{{0, 7}, {3, 0}}, Rect{0, 0, 1, 1}, true},
		{"none", [][]int{{9, 9}, {9, 9}}, Rect{}, false},
		{"lone nine and one", [][]int{{9, 0, 1}}, Rect{0, 0, 0, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMatch(mustGrid(t, tt.board))
			if ok != tt.found {
				t.Fatalf("found = %v, want %v (rect %+v)", ok, tt.found, got)
			}
			if ok && got != tt.want {
				t.Errorf("rect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindMatchAgreesWithValidate(t *testing.T) {
	g := NewGrid(Rows, Cols, seeded(11))
	m := NewMatchEngine(g)
	for i := 0; i < 40; i++ {
		rect, ok := FindMatch(g)
		if !ok {
			break
		}
		cells, sum := g.collect(rect)
		match, valid := m.Validate(Selection{Rect: rect, Cells: cells, Sum: sum})
		if !valid {
			t.Fatalf("hint %+v does not validate: sum %d over %d cells", rect, sum, len(cells))
		}
		if _, err := m.Apply(match); err != nil {
			t.Fatal(err)
		}
	}
}
