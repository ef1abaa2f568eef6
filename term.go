package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/04pril/go-fruitbox/internal/engine"
)

const (
	termCellW   = 3
	termBoardX  = 2
	termBoardY  = 3
	termFrameMs = 50
)

var (
	styleText     = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFruit    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleRejected = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	styleEmpty    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
)

type termGame struct {
	screen  tcell.Screen
	session *engine.Session
	view    *boardView
	now     func() time.Time
	last    time.Time

	showHelp bool
	hint     *engine.Rect
	pressed  bool
	dragging bool
}

// termCellAt maps a terminal position to a board cell.
func termCellAt(x, y, rows, cols int) (int, int, bool) {
	if x < termBoardX || y < termBoardY {
		return 0, 0, false
	}
	c := (x - termBoardX) / termCellW
	r := y - termBoardY
	if r >= rows || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}

func newTermGame(screen tcell.Screen, rng engine.Rand) *termGame {
	t := &termGame{screen: screen, view: newBoardView(nil), now: time.Now}
	t.last = t.now()
	t.session = engine.NewSession(
		engine.WithRand(rng),
		engine.WithSink(t.view),
		engine.WithLogger(log.Default()),
	)
	return t
}

// runTerminal plays in the current terminal until the player quits. Log
// output goes to a file for the duration so it does not tear the screen.
func runTerminal(rng engine.Rand) error {
	logFile, err := os.OpenFile(filepath.Join(configDir(), "fruitbox.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	prevOut := log.Writer()
	log.SetOutput(logFile)
	defer log.SetOutput(prevOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	newTermGame(screen, rng).run()
	return nil
}

func (t *termGame) run() {
	frame := time.NewTicker(termFrameMs * time.Millisecond)
	defer frame.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				return
			}
			t.draw()
		case <-frame.C:
			t.advance()
			t.view.prune()
			t.draw()
		}
	}
}

// advance feeds the wall time since the last frame to the session clock.
// The clock keeps the sub-second remainder, including across a pause.
func (t *termGame) advance() {
	now := t.now()
	t.session.Advance(now.Sub(t.last))
	t.last = now
}

func (t *termGame) start() {
	t.hint = nil
	t.dragging = false
	t.showHelp = false
	if err := t.session.Start(); err != nil {
		log.Printf("start session: %v", err)
	}
	t.last = t.now()
}

func (t *termGame) togglePause() {
	if t.session.State() != engine.StateActive {
		return
	}
	t.advance()
	t.dragging = false
	t.session.SetPaused(!t.session.Paused())
}

// handleEvent reports false when the player quits.
func (t *termGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *termGame) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		t.start()
		return true
	case tcell.KeyF1:
		t.showHelp = !t.showHelp
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		return false
	case 'n':
		t.start()
	case 'r':
		t.hint = nil
		t.dragging = false
		t.session.Reset()
		t.view.reset()
	case 'p':
		t.togglePause()
	case 'h':
		if rect, ok := t.session.Hint(); ok && !t.session.Paused() {
			t.hint = &rect
		}
	case '?':
		t.showHelp = !t.showHelp
	}
	return true
}

// handleMouse turns tcell's button-state reports into down/move/up. A drag
// only begins when the button goes down over the board.
func (t *termGame) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	justPressed := pressed && !t.pressed
	t.pressed = pressed
	r, c, onBoard := termCellAt(x, y, t.session.Rows(), t.session.Cols())

	switch {
	case justPressed:
		if !onBoard {
			return
		}
		t.dragging = true
		if err := t.session.PointerDown(r, c); err != nil {
			log.Printf("pointer down: %v", err)
		}
	case pressed && t.dragging && onBoard:
		if err := t.session.PointerMove(r, c); err != nil {
			log.Printf("pointer move: %v", err)
		}
	case !pressed && t.dragging:
		t.dragging = false
		t.hint = nil
		if err := t.session.PointerUp(); err != nil {
			log.Printf("pointer up: %v", err)
		}
	}
}

func (t *termGame) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (t *termGame) draw() {
	t.screen.Clear()
	s := t.session

	t.drawText(termBoardX, 0, "FRUIT BOX", styleText.Bold(true))
	t.drawText(termBoardX, 1, fmt.Sprintf("Score: %3d   Time: %3d", t.view.score, t.view.remaining), styleText)

	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			t.drawCell(r, c)
		}
	}

	status := termBoardY + s.Rows() + 1
	switch {
	case s.State() == engine.StateIdle:
		t.drawText(termBoardX, status, fmt.Sprintf("Enter: start a %ds round   ?: help   q: quit", engine.SessionSeconds), styleText)
	case s.State() == engine.StateEnded:
		t.drawText(termBoardX, status, fmt.Sprintf("TIME UP! Final score %d. Enter: again   r: menu", t.view.finalScore), styleText.Bold(true))
	case s.Paused():
		t.drawText(termBoardX, status, "PAUSED. p: resume", styleText.Bold(true))
	default:
		t.drawText(termBoardX, status, "Drag over fruits that sum to 10   p: pause   h: hint", styleDim)
	}
	if t.showHelp {
		for i, ln := range helpLines {
			t.drawText(termBoardX, status+2+i, ln, styleDim)
		}
	}
	t.screen.Show()
}

func (t *termGame) drawCell(r, c int) {
	x := termBoardX + c*termCellW
	y := termBoardY + r

	v := t.session.ValueAt(r, c)
	label := " . "
	style := styleEmpty
	if v != engine.Empty {
		label = fmt.Sprintf(" %d ", v)
		style = styleFruit
	}
	switch {
	case t.view.isFlashing(r, c):
		style = styleRejected
	case t.view.isSelected(r, c):
		style = styleSelected
	case t.hint != nil && t.session.State() == engine.StateActive && t.hint.Contains(engine.Coord{Row: r, Col: c}) && v != engine.Empty:
		style = styleHint
	}
	t.drawText(x, y, label, style)
}
