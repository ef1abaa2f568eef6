package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type State int

const (
	StateIdle State = iota
	StateActive
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Option func(*Session)

// WithRand sets the source used to fill each new board.
func WithRand(rng Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithSink(sink Sink) Option {
	return func(s *Session) { s.sink = sink }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// withGrid makes Start use a fixed board instead of a random one.
func withGrid(values [][]int) Option {
	return func(s *Session) { s.fixed = values }
}

// Session is one player's game: Idle until Start, Active while the clock
// runs, Ended once it expires. It is driven from a single goroutine.
type Session struct {
	rng  Rand
	sink Sink
	log  *log.Logger

	id         string
	state      State
	paused     bool
	grid       *Grid
	selector   *Selector
	matcher    *MatchEngine
	clock      *Clock
	score      int
	finalScore int
	remaining  int

	fixed [][]int
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		sink: NopSink{},
		log:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.clock = NewClock(s.onTick, s.onExpire)
	return s
}

// Start begins a fresh session from any state.
func (s *Session) Start() error {
	grid, err := s.newGrid()
	if err != nil {
		return err
	}
	s.clock.Stop()
	s.grid = grid
	s.selector = NewSelector(grid)
	s.matcher = NewMatchEngine(grid)
	s.id = uuid.NewString()
	s.score = 0
	s.finalScore = 0
	s.paused = false
	s.remaining = SessionSeconds
	if err := s.clock.Start(SessionSeconds); err != nil {
		return err
	}
	s.state = StateActive

	s.log.Printf("session %s started (%dx%d, %ds)", s.id, grid.Rows(), grid.Cols(), SessionSeconds)
	s.sink.GridCreated(grid.Cells())
	s.sink.ScoreChanged(s.score)
	s.sink.TimeChanged(s.remaining)
	return nil
}

func (s *Session) newGrid() (*Grid, error) {
	if s.fixed != nil {
		return NewGridFromValues(s.fixed)
	}
	return NewGrid(Rows, Cols, s.rng), nil
}

// Reset drops the board and returns to Idle.
func (s *Session) Reset() {
	if s.state == StateIdle {
		return
	}
	s.clock.Stop()
	s.log.Printf("session %s reset in state %s", s.id, s.state)
	s.state = StateIdle
	s.grid = nil
	s.selector = nil
	s.matcher = nil
	s.paused = false
	s.score = 0
	s.finalScore = 0
	s.remaining = 0
}

func (s *Session) accepting() bool {
	return s.state == StateActive && !s.paused
}

func (s *Session) PointerDown(r, c int) error {
	if !s.accepting() {
		return nil
	}
	sel, err := s.selector.Begin(Coord{Row: r, Col: c})
	if errors.Is(err, ErrInvalidAnchor) {
		return nil
	}
	if err != nil {
		return err
	}
	s.sink.SelectionChanged(sel.Cells)
	return nil
}

func (s *Session) PointerMove(r, c int) error {
	if !s.accepting() || !s.selector.Active() {
		return nil
	}
	sel, changed, err := s.selector.Update(Coord{Row: r, Col: c})
	if err != nil {
		return err
	}
	if changed {
		s.sink.SelectionChanged(sel.Cells)
	}
	return nil
}

// PointerUp finalizes the drag. The selection is gone afterwards whether or
// not it matched.
func (s *Session) PointerUp() error {
	if !s.accepting() {
		return nil
	}
	sel, ok := s.selector.End()
	if !ok {
		return nil
	}
	s.sink.SelectionChanged(nil)

	match, ok := s.matcher.Validate(sel)
	if !ok {
		if len(sel.Cells) > 0 {
			s.sink.SelectionRejected(sel.Cells)
		}
		return nil
	}
	delta, err := s.matcher.Apply(match)
	if err != nil {
		return err
	}
	s.score += delta
	s.sink.CellsCleared(match.Cells)
	s.sink.ScoreChanged(s.score)
	return nil
}

func (s *Session) Tick() {
	if s.state != StateActive {
		return
	}
	s.clock.Tick()
}

func (s *Session) Advance(d time.Duration) {
	if s.state != StateActive {
		return
	}
	s.clock.Advance(d)
}

// SetPaused freezes the clock and input. Pausing drops any drag in progress.
func (s *Session) SetPaused(paused bool) {
	if s.state != StateActive || s.paused == paused {
		return
	}
	s.paused = paused
	if paused {
		s.clock.Pause()
		s.cancelSelection()
		return
	}
	s.clock.Resume()
}

// Hint returns a rectangle that would match on the current board.
func (s *Session) Hint() (Rect, bool) {
	if s.state != StateActive {
		return Rect{}, false
	}
	return FindMatch(s.grid)
}

func (s *Session) cancelSelection() {
	if s.selector == nil || !s.selector.Active() {
		return
	}
	s.selector.Cancel()
	s.sink.SelectionChanged(nil)
}

func (s *Session) onTick(remaining int) {
	s.remaining = remaining
	s.sink.TimeChanged(remaining)
}

func (s *Session) onExpire() {
	s.cancelSelection()
	s.state = StateEnded
	s.paused = false
	s.finalScore = s.score
	s.log.Printf("session %s ended with score %d", s.id, s.finalScore)
	s.sink.SessionEnded(s.finalScore)
}

func (s *Session) ID() string { return s.id }
func (s *Session) State() State { return s.state }
func (s *Session) Paused() bool { return s.paused }
func (s *Session) Score() int { return s.score }
func (s *Session) FinalScore() int { return s.finalScore }
func (s *Session) TimeRemaining() int { return s.remaining }

func (s *Session) Rows() int {
	if s.grid == nil {
		return Rows
	}
	return s.grid.Rows()
}

func (s *Session) Cols() int {
	if s.grid == nil {
		return Cols
	}
	return s.grid.Cols()
}

// ValueAt reads the board. Without a board every cell reads Empty.
func (s *Session) ValueAt(r, c int) int {
	if s.grid == nil {
		return Empty
	}
	v, err := s.grid.ValueAt(r, c)
	if err != nil {
		return Empty
	}
	return v
}

// Selection returns the drag in progress, if any.
func (s *Session) Selection() (Selection, bool) {
	if s.selector == nil || !s.selector.Active() {
		return Selection{}, false
	}
	return s.selector.Selection(), true
}
