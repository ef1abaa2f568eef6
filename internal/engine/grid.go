package engine

import "fmt"

const (
	Rows           = 10
	Cols           = 17
	TargetSum      = 10
	SessionSeconds = 120
	MinValue       = 1
	MaxValue       = 9
)

// Empty is the value of a cell that has been cleared.
const Empty = 0

// Rand is the random source used to fill a grid. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Cell struct {
	Row, Col int
	Value    int
}

func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

func (c Cell) Filled() bool {
	return c.Value != Empty
}

// Grid is a fixed rows x cols matrix of cells. Coordinates never change;
// only a cell's value goes from filled to Empty.
type Grid struct {
	rows, cols int
	values     [][]int
}

// NewGrid fills every cell with an independent uniform value in
// [MinValue, MaxValue] drawn from rng.
func NewGrid(rows, cols int, rng Rand) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.values = make([][]int, rows)
	for r := range g.values {
		g.values[r] = make([]int, cols)
		for c := range g.values[r] {
			g.values[r][c] = MinValue + rng.Intn(MaxValue-MinValue+1)
		}
	}
	return g
}

// NewGridFromValues builds a grid from explicit rows of values. Rows must be
// of equal length; values outside [MinValue, MaxValue] are stored as Empty.
func NewGridFromValues(values [][]int) (*Grid, error) {
	g := &Grid{rows: len(values)}
	if g.rows > 0 {
		g.cols = len(values[0])
	}
	g.values = make([][]int, g.rows)
	for r, row := range values {
		if len(row) != g.cols {
			return nil, fmt.Errorf("row %d has %d values, want %d", r, len(row), g.cols)
		}
		g.values[r] = make([]int, g.cols)
		for c, v := range row {
			if v < MinValue || v > MaxValue {
				v = Empty
			}
			g.values[r][c] = v
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) In(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.rows && c < g.cols
}

func (g *Grid) ValueAt(r, c int) (int, error) {
	if !g.In(r, c) {
		return Empty, fmt.Errorf("value at %v: %w", Coord{r, c}, ErrOutOfBounds)
	}
	return g.values[r][c], nil
}

// Clear marks the listed cells empty. Clearing an empty cell is a no-op.
func (g *Grid) Clear(coords []Coord) error {
	for _, p := range coords {
		if !g.In(p.Row, p.Col) {
			return fmt.Errorf("clear %v: %w", p, ErrOutOfBounds)
		}
	}
	for _, p := range coords {
		g.values[p.Row][p.Col] = Empty
	}
	return nil
}

// Cells returns a row-major snapshot of every cell, empty ones included.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out = append(out, Cell{Row: r, Col: c, Value: g.values[r][c]})
		}
	}
	return out
}

func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.values {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

func (g *Grid) Total() int {
	sum := 0
	for _, row := range g.values {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// collect returns the non-empty cells inside rect in row-major order and
// their sum. rect must lie within the grid.
func (g *Grid) collect(rect Rect) ([]Cell, int) {
	var cells []Cell
	sum := 0
	for r := rect.MinRow; r <= rect.MaxRow; r++ {
		for c := rect.MinCol; c <= rect.MaxCol; c++ {
			v := g.values[r][c]
			if v == Empty {
				continue
			}
			cells = append(cells, Cell{Row: r, Col: c, Value: v})
			sum += v
		}
	}
	return cells, sum
}
