package main

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/04pril/go-fruitbox/internal/engine"
)

const (
	cellSize       = 32
	outerPadding   = 12
	topPanelHeight = 68
)

var helpLines = []string{
	"Drag a box over fruits that add up to 10.",
	"2 fruits score 10, each extra fruit adds 5.",
	"Enter/N: Start | R: Menu | P: Pause | H: Hint",
	"T: Theme | F1: Toggle help | Click the face to restart",
}

type game struct {
	session *engine.Session
	view    *boardView
	prefs   prefs

	showHelp bool
	hint     *engine.Rect
	faceRect image.Rectangle
	fontMain font.Face

	dragging bool
	touching bool
	touchID  ebiten.TouchID
}

func newGame(rng engine.Rand) *game {
	view := newBoardView(nil)
	g := &game{
		view:     view,
		prefs:    loadPrefs(prefsFilePath()),
		fontMain: basicfont.Face7x13,
	}
	g.session = engine.NewSession(
		engine.WithRand(rng),
		engine.WithSink(view),
		engine.WithLogger(log.Default()),
	)
	g.showHelp = !g.prefs.SeenHelp
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Go Fruit Box")
	return g
}

func (g *game) Layout(_, _ int) (int, int) {
	return engine.Cols*cellSize + outerPadding*2, topPanelHeight + engine.Rows*cellSize + outerPadding*2
}

func (g *game) theme() theme {
	return themes[g.prefs.Theme]
}

func (g *game) savePrefs() {
	if err := savePrefs(prefsFilePath(), g.prefs); err != nil {
		log.Printf("save preferences: %v", err)
	}
}

func (g *game) start() {
	g.hint = nil
	g.dragging = false
	g.touching = false
	if g.showHelp {
		g.hideHelp()
	}
	if err := g.session.Start(); err != nil {
		log.Printf("start session: %v", err)
	}
}

func (g *game) toMenu() {
	g.hint = nil
	g.dragging = false
	g.touching = false
	g.session.Reset()
	g.view.reset()
}

func (g *game) hideHelp() {
	g.showHelp = false
	if !g.prefs.SeenHelp {
		g.prefs.SeenHelp = true
		g.savePrefs()
	}
}

// cellAtCursor maps a window position to a board cell.
func cellAtCursor(mx, my, rows, cols int) (int, int, bool) {
	bx0, by0 := outerPadding, topPanelHeight
	if mx < bx0 || my < by0 {
		return 0, 0, false
	}
	c := (mx - bx0) / cellSize
	r := (my - by0) / cellSize
	if r >= rows || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}

func (g *game) pointerDown(x, y int) {
	if pointInRect(x, y, g.faceRect) {
		g.start()
		return
	}
	if g.showHelp {
		g.hideHelp()
		return
	}
	r, c, ok := cellAtCursor(x, y, g.session.Rows(), g.session.Cols())
	if !ok {
		return
	}
	g.dragging = true
	if err := g.session.PointerDown(r, c); err != nil {
		log.Printf("pointer down: %v", err)
	}
}

// pointerMove ignores positions off the board; the rectangle keeps its
// last cursor until the pointer comes back.
func (g *game) pointerMove(x, y int) {
	if !g.dragging {
		return
	}
	r, c, ok := cellAtCursor(x, y, g.session.Rows(), g.session.Cols())
	if !ok {
		return
	}
	if err := g.session.PointerMove(r, c); err != nil {
		log.Printf("pointer move: %v", err)
	}
}

func (g *game) pointerUp() {
	if !g.dragging {
		return
	}
	g.dragging = false
	g.hint = nil
	if err := g.session.PointerUp(); err != nil {
		log.Printf("pointer up: %v", err)
	}
}

func (g *game) handleMouseInput() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pointerDown(mx, my)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointerMove(mx, my)
		g.pointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.pointerMove(mx, my)
	}
}

// handleTouchInput follows the first finger down and ignores the rest.
func (g *game) handleTouchInput() {
	if !g.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		g.touching = true
		g.touchID = ids[0]
		x, y := ebiten.TouchPosition(g.touchID)
		g.pointerDown(x, y)
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.pointerUp()
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	g.pointerMove(x, y)
}

func (g *game) handleGlobalKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.toMenu()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.prefs.Theme = (g.prefs.Theme + 1) % len(themes)
		g.savePrefs()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if g.showHelp {
			g.hideHelp()
		} else {
			g.showHelp = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.session.State() == engine.StateActive {
		g.dragging = false
		g.session.SetPaused(!g.session.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && g.session.State() == engine.StateActive && !g.session.Paused() {
		if rect, ok := g.session.Hint(); ok {
			g.hint = &rect
		}
	}
}

func (g *game) Update() error {
	g.handleGlobalKeys()
	g.session.Advance(time.Second / time.Duration(ebiten.TPS()))
	g.handleMouseInput()
	g.handleTouchInput()
	g.view.prune()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	th := g.theme()
	screen.Fill(th.BG)

	windowW, _ := g.Layout(0, 0)
	state := g.session.State()

	drawRaisedRect(screen, outerPadding-2, 10, windowW-(outerPadding-2)*2, topPanelHeight-18, th.Panel, th)
	ebitenutil.DrawRect(screen, float64(outerPadding+4), 16, float64(windowW-outerPadding*2-8), 40, th.Panel)

	drawDigital(screen, outerPadding+10, 20, g.view.score, 3, th.Digit)
	drawDigital(screen, windowW-outerPadding-10-58, 20, g.view.remaining, 3, th.Digit)

	faceSize := 28
	faceX := windowW/2 - faceSize/2
	faceY := 20
	g.faceRect = image.Rect(faceX, faceY, faceX+faceSize, faceY+faceSize)
	drawRaisedRect(screen, faceX, faceY, faceSize, faceSize, th.Panel, th)
	face := ":)"
	switch {
	case state == engine.StateEnded:
		face = "B)"
	case state == engine.StateIdle:
		face = ":o"
	case g.session.Paused():
		face = ":|"
	}
	drawTextCentered(screen, face, g.fontMain, faceX, faceY+6, faceSize, th.HeaderText)

	boardX, boardY := outerPadding, topPanelHeight
	bw := engine.Cols * cellSize
	bh := engine.Rows * cellSize
	drawSunkenRect(screen, boardX-2, boardY-2, bw+4, bh+4, th)

	for r := 0; r < g.session.Rows(); r++ {
		for c := 0; c < g.session.Cols(); c++ {
			g.drawCell(screen, r, c, th)
		}
	}

	text.Draw(screen, fmt.Sprintf("Target %d  Theme:%s", engine.TargetSum, th.Name), g.fontMain, outerPadding, 10, th.HeaderTextSoft)

	switch state {
	case engine.StateIdle:
		drawOverlayPanel(screen, "FRUIT BOX", []string{
			fmt.Sprintf("Clear as many fruits as you can in %d seconds.", engine.SessionSeconds),
			"Press Enter or click the face to start.",
			"F1: How to play",
		}, th)
	case engine.StateEnded:
		drawBanner(screen, "TIME UP!", th)
		drawOverlayPanel(screen, "GAME OVER", []string{
			fmt.Sprintf("Final score: %d", g.view.finalScore),
			fmt.Sprintf("Fruits cleared: %d", g.view.cleared),
			"Press Enter to play again, R for the menu.",
		}, th)
	default:
		if g.session.Paused() {
			drawOverlayPanel(screen, "PAUSED", []string{"Press P to resume"}, th)
		}
	}
	if g.showHelp {
		drawOverlayPanel(screen, "HOW TO PLAY", helpLines, th)
	}
}

func (g *game) drawCell(screen *ebiten.Image, r, c int, th theme) {
	px := outerPadding + c*cellSize
	py := topPanelHeight + r*cellSize

	bg := th.CellEmpty
	switch {
	case g.view.isFlashing(r, c):
		bg = th.Rejected
	case g.view.isSelected(r, c):
		bg = th.Selected
	}
	ebitenutil.DrawRect(screen, float64(px), float64(py), cellSize, cellSize, bg)
	vector.StrokeRect(screen, float32(px), float32(py), cellSize, cellSize, 1, th.CellGrid, false)

	if v := g.session.ValueAt(r, c); v != engine.Empty {
		drawFruit(screen, px, py, v, g.fontMain, th.CellFilled, valueColors[v])
	}

	if g.hint != nil && g.hint.Contains(engine.Coord{Row: r, Col: c}) && g.session.State() == engine.StateActive {
		vector.StrokeRect(screen, float32(px+2), float32(py+2), cellSize-4, cellSize-4, 2, th.Accent, false)
	}
}
