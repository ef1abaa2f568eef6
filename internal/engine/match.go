package engine

// Match is a finalized selection that clears its cells.
type Match struct {
	Cells      []Cell
	ScoreDelta int
}

func (m Match) Coords() []Coord {
	out := make([]Coord, len(m.Cells))
	for i, c := range m.Cells {
		out[i] = c.Coord()
	}
	return out
}

// Score is the reward for clearing n cells: 10 for a pair, 5 per extra cell.
func Score(n int) int {
	return 10 + max(0, n-2)*5
}

type MatchEngine struct {
	grid *Grid
}

func NewMatchEngine(g *Grid) *MatchEngine {
	return &MatchEngine{grid: g}
}

// Validate reports a match when the selection sums to TargetSum and holds
// more than one cell. A lone cell never matches.
func (m *MatchEngine) Validate(sel Selection) (Match, bool) {
	if len(sel.Cells) <= 1 || sel.Sum != TargetSum {
		return Match{}, false
	}
	cells := make([]Cell, len(sel.Cells))
	copy(cells, sel.Cells)
	return Match{Cells: cells, ScoreDelta: Score(len(cells))}, true
}

// Apply clears the matched cells and returns the score to add. Callers
// must apply a match at most once.
func (m *MatchEngine) Apply(match Match) (int, error) {
	if err := m.grid.Clear(match.Coords()); err != nil {
		return 0, err
	}
	return match.ScoreDelta, nil
}

// FindMatch returns a rectangle on the board whose cells would match, or
// false when none exists. Rectangles are tried by top-left corner in
// row-major order, smallest first for each corner.
func FindMatch(g *Grid) (Rect, bool) {
	// sum[r][c] and cnt[r][c] cover rows [0,r) and cols [0,c).
	sum := make([][]int, g.rows+1)
	cnt := make([][]int, g.rows+1)
	for r := range sum {
		sum[r] = make([]int, g.cols+1)
		cnt[r] = make([]int, g.cols+1)
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			v := g.values[r][c]
			filled := 0
			if v != Empty {
				filled = 1
			}
			sum[r+1][c+1] = v + sum[r][c+1] + sum[r+1][c] - sum[r][c]
			cnt[r+1][c+1] = filled + cnt[r][c+1] + cnt[r+1][c] - cnt[r][c]
		}
	}
	area := func(t [][]int, rect Rect) int {
		return t[rect.MaxRow+1][rect.MaxCol+1] - t[rect.MinRow][rect.MaxCol+1] -
			t[rect.MaxRow+1][rect.MinCol] + t[rect.MinRow][rect.MinCol]
	}

	best, found := Rect{}, false
	for r0 := 0; r0 < g.rows; r0++ {
		for c0 := 0; c0 < g.cols; c0++ {
			found = false
			for r1 := r0; r1 < g.rows; r1++ {
				for c1 := c0; c1 < g.cols; c1++ {
					rect := Rect{MinRow: r0, MinCol: c0, MaxRow: r1, MaxCol: c1}
					s := area(sum, rect)
					if s > TargetSum {
						break
					}
					if s == TargetSum && area(cnt, rect) > 1 {
						if !found || rect.Area() < best.Area() {
							best, found = rect, true
						}
						break
					}
				}
			}
			if found {
				return best, true
			}
		}
	}
	return Rect{}, false
}
