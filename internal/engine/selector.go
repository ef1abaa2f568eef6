package engine

import "fmt"

// Rect is an axis-aligned block of cells with inclusive bounds.
type Rect struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// RectBetween returns the smallest rectangle containing both a and b.
func RectBetween(a, b Coord) Rect {
	return Rect{
		MinRow: min(a.Row, b.Row),
		MinCol: min(a.Col, b.Col),
		MaxRow: max(a.Row, b.Row),
		MaxCol: max(a.Col, b.Col),
	}
}

func (r Rect) Contains(p Coord) bool {
	return p.Row >= r.MinRow && p.Row <= r.MaxRow && p.Col >= r.MinCol && p.Col <= r.MaxCol
}

func (r Rect) Area() int {
	return (r.MaxRow - r.MinRow + 1) * (r.MaxCol - r.MinCol + 1)
}

// Selection is the state of one drag: the rectangle spanned by anchor and
// cursor, and the non-empty cells inside it.
type Selection struct {
	Anchor Coord
	Cursor Coord
	Rect   Rect
	Cells  []Cell
	Sum    int
}

func (s Selection) Coords() []Coord {
	out := make([]Coord, len(s.Cells))
	for i, c := range s.Cells {
		out[i] = c.Coord()
	}
	return out
}

// Selector tracks one drag at a time over a grid.
type Selector struct {
	grid   *Grid
	active bool
	sel    Selection
}

func NewSelector(g *Grid) *Selector {
	return &Selector{grid: g}
}

// Begin starts a selection at anchor, which must hold a value.
func (s *Selector) Begin(anchor Coord) (Selection, error) {
	v, err := s.grid.ValueAt(anchor.Row, anchor.Col)
	if err != nil {
		return Selection{}, err
	}
	if v == Empty {
		return Selection{}, fmt.Errorf("begin at %v: %w", anchor, ErrInvalidAnchor)
	}
	s.active = true
	s.sel = s.compute(anchor, anchor)
	return s.sel, nil
}

// Update moves the cursor and recomputes the selection from scratch. The
// boolean reports whether the rectangle changed; when it did not, the
// previous selection is returned as is.
func (s *Selector) Update(cursor Coord) (Selection, bool, error) {
	if !s.grid.In(cursor.Row, cursor.Col) {
		return s.sel, false, fmt.Errorf("update to %v: %w", cursor, ErrOutOfBounds)
	}
	if !s.active {
		return Selection{}, false, nil
	}
	if RectBetween(s.sel.Anchor, cursor) == s.sel.Rect {
		return s.sel, false, nil
	}
	s.sel = s.compute(s.sel.Anchor, cursor)
	return s.sel, true, nil
}

func (s *Selector) compute(anchor, cursor Coord) Selection {
	rect := RectBetween(anchor, cursor)
	cells, sum := s.grid.collect(rect)
	return Selection{Anchor: anchor, Cursor: cursor, Rect: rect, Cells: cells, Sum: sum}
}

func (s *Selector) Active() bool { return s.active }

func (s *Selector) Selection() Selection { return s.sel }

// Cells returns the non-empty cells of the current selection in row-major order.
func (s *Selector) Cells() []Cell {
	return s.sel.Cells
}

// End returns the final selection and forgets it.
func (s *Selector) End() (Selection, bool) {
	sel, ok := s.sel, s.active
	s.Cancel()
	return sel, ok
}

func (s *Selector) Cancel() {
	s.active = false
	s.sel = Selection{}
}
