package engine

// Renderer receives board changes. The engine never draws.
type Renderer interface {
	GridCreated(cells []Cell)
	CellsCleared(cells []Cell)
	SelectionChanged(cells []Cell)
	SelectionRejected(cells []Cell)
}

type Scoreboard interface {
	ScoreChanged(score int)
	TimeChanged(secondsRemaining int)
}

type Lifecycle interface {
	SessionEnded(finalScore int)
}

// Sink is everything a front end observes from a session.
type Sink interface {
	Renderer
	Scoreboard
	Lifecycle
}

// NopSink ignores all notifications. Embed it to implement part of Sink.
type NopSink struct{}

func (NopSink) GridCreated([]Cell) {}
func (NopSink) CellsCleared([]Cell) {}
func (NopSink) SelectionChanged([]Cell) {}
func (NopSink) SelectionRejected([]Cell) {}
func (NopSink) ScoreChanged(int) {}
func (NopSink) TimeChanged(int) {}
func (NopSink) SessionEnded(int) {}
