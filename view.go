package main

import (
	"log"
	"time"

	"github.com/04pril/go-fruitbox/internal/engine"
)

const rejectFlashDur = 200 * time.Millisecond

// boardView collects what a front end needs to draw from session
// notifications: the highlighted cells, rejection flashes and the
// score/time readouts.
type boardView struct {
	now func() time.Time

	selected   map[engine.Coord]bool
	flashes    map[engine.Coord]time.Time
	score      int
	remaining  int
	finalScore int
	ended      bool
	cleared    int
}

func newBoardView(now func() time.Time) *boardView {
	if now == nil {
		now = time.Now
	}
	return &boardView{
		now:      now,
		selected: map[engine.Coord]bool{},
		flashes:  map[engine.Coord]time.Time{},
	}
}

func (v *boardView) GridCreated(cells []engine.Cell) {
	clear(v.selected)
	clear(v.flashes)
	v.ended = false
	v.finalScore = 0
	v.cleared = 0
}

func (v *boardView) CellsCleared(cells []engine.Cell) {
	for _, c := range cells {
		delete(v.selected, c.Coord())
		delete(v.flashes, c.Coord())
	}
	v.cleared += len(cells)
}

func (v *boardView) SelectionChanged(cells []engine.Cell) {
	clear(v.selected)
	for _, c := range cells {
		v.selected[c.Coord()] = true
	}
}

// SelectionRejected starts a flash on each cell. A second rejection of the
// same cell restarts its flash.
func (v *boardView) SelectionRejected(cells []engine.Cell) {
	until := v.now().Add(rejectFlashDur)
	for _, c := range cells {
		v.flashes[c.Coord()] = until
	}
}

func (v *boardView) ScoreChanged(score int) {
	v.score = score
}

func (v *boardView) TimeChanged(remaining int) {
	v.remaining = remaining
}

func (v *boardView) SessionEnded(finalScore int) {
	v.ended = true
	v.finalScore = finalScore
	clear(v.selected)
	log.Printf("game over: %d points, %d fruits cleared", finalScore, v.cleared)
}

func (v *boardView) isSelected(r, c int) bool {
	return v.selected[engine.Coord{Row: r, Col: c}]
}

func (v *boardView) isFlashing(r, c int) bool {
	until, ok := v.flashes[engine.Coord{Row: r, Col: c}]
	return ok && v.now().Before(until)
}

// prune drops finished flashes.
func (v *boardView) prune() {
	now := v.now()
	for p, until := range v.flashes {
		if !now.Before(until) {
			delete(v.flashes, p)
		}
	}
}

// reset forgets everything when the session goes back to the menu.
func (v *boardView) reset() {
	clear(v.selected)
	clear(v.flashes)
	v.score = 0
	v.remaining = 0
	v.finalScore = 0
	v.ended = false
	v.cleared = 0
}
