package engine

import (
	"math/rand"
	"testing"
)

type recorder struct {
	created  [][]Cell
	cleared  [][]Cell
	changed  [][]Cell
	rejected [][]Cell
	scores   []int
	times    []int
	ended    []int
}

func (r *recorder) GridCreated(cells []Cell) { r.created = append(r.created, cells) }
func (r *recorder) CellsCleared(cells []Cell) { r.cleared = append(r.cleared, cells) }
func (r *recorder) SelectionChanged(cells []Cell) { r.changed = append(r.changed, cells) }
func (r *recorder) SelectionRejected(cells []Cell) { r.rejected = append(r.rejected, cells) }
func (r *recorder) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recorder) TimeChanged(remaining int) { r.times = append(r.times, remaining) }
func (r *recorder) SessionEnded(finalScore int) { r.ended = append(r.ended, finalScore) }

func mustGrid(t *testing.T, values [][]int) *Grid {
	t.Helper()
	g, err := NewGridFromValues(values)
	if err != nil {
		t.Fatalf("NewGridFromValues: %v", err)
	}
	return g
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// startFixed returns an active session on the given board.
func startFixed(t *testing.T, values [][]int) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := NewSession(withGrid(values), WithSink(rec))
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s, rec
}

func sameCoords(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Coord]int, len(a))
	for _, c := range a {
		seen[c.Coord()] = c.Value
	}
	for _, c := range b {
		v, ok := seen[c.Coord()]
		if !ok || v != c.Value {
			return false
		}
	}
	return true
}
