package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type theme struct {
	Name           string
	BG             color.Color
	Panel          color.Color
	Light          color.Color
	Dark           color.Color
	CellFilled     color.Color
	CellEmpty      color.Color
	CellGrid       color.Color
	Selected       color.Color
	Rejected       color.Color
	Accent         color.Color
	Overlay        color.Color
	Digit          color.Color
	HeaderText     color.Color
	HeaderTextSoft color.Color
}

var themes = []theme{
	{
		Name:           "Orchard",
		BG:             rgb(192, 214, 170),
		Panel:          rgb(192, 214, 170),
		Light:          rgb(245, 255, 235),
		Dark:           rgb(110, 138, 92),
		CellFilled:     rgb(226, 72, 58),
		CellEmpty:      rgb(214, 228, 198),
		CellGrid:       rgb(160, 184, 140),
		Selected:       rgb(255, 214, 90),
		Rejected:       rgb(255, 204, 204),
		Accent:         rgb(32, 128, 255),
		Overlay:        color.RGBA{0, 0, 0, 120},
		Digit:          rgb(215, 40, 40),
		HeaderText:     rgb(12, 12, 12),
		HeaderTextSoft: rgb(40, 52, 30),
	},
	{
		Name:           "Dark",
		BG:             rgb(34, 36, 42),
		Panel:          rgb(48, 51, 60),
		Light:          rgb(78, 82, 93),
		Dark:           rgb(18, 20, 26),
		CellFilled:     rgb(176, 58, 52),
		CellEmpty:      rgb(62, 66, 78),
		CellGrid:       rgb(30, 33, 41),
		Selected:       rgb(214, 170, 60),
		Rejected:       rgb(150, 40, 40),
		Accent:         rgb(107, 199, 255),
		Overlay:        color.RGBA{0, 0, 0, 140},
		Digit:          rgb(255, 98, 98),
		HeaderText:     rgb(245, 245, 245),
		HeaderTextSoft: rgb(215, 215, 225),
	},
}

// fruit label colors by value
var valueColors = []color.Color{
	color.RGBA{},
	rgb(255, 255, 255),
	rgb(255, 250, 220),
	rgb(255, 240, 190),
	rgb(255, 230, 160),
	rgb(250, 250, 250),
	rgb(255, 245, 210),
	rgb(255, 235, 180),
	rgb(255, 225, 150),
	rgb(255, 255, 255),
}

func drawFruit(screen *ebiten.Image, px, py, value int, f font.Face, fill, label color.Color) {
	r := float32(cellSize)/2 - 3
	vector.DrawFilledCircle(screen, float32(px)+cellSize/2, float32(py)+cellSize/2+1, r, fill, true)
	// stem
	vector.StrokeLine(screen, float32(px)+cellSize/2, float32(py+3), float32(px)+cellSize/2+3, float32(py), 2, rgb(70, 120, 40), true)
	drawTextCentered(screen, fmt.Sprintf("%d", value), f, px, py+(cellSize-13)/2-2, cellSize, label)
}

func drawOverlayPanel(screen *ebiten.Image, title string, lines []string, th theme) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), th.Overlay)
	pw := min(520, w-36)
	ph := min(220, h-36)
	px, py := (w-pw)/2, (h-ph)/2
	drawSunkenRect(screen, px, py, pw, ph, th)
	ebitenutil.DrawRect(screen, float64(px+6), float64(py+6), float64(pw-12), float64(ph-12), th.Panel)

	ff := basicfont.Face7x13
	text.Draw(screen, title, ff, px+16, py+24, th.HeaderText)
	y := py + 50
	for _, ln := range lines {
		text.Draw(screen, ln, ff, px+16, y, th.HeaderText)
		y += 20
		if y > py+ph-18 {
			break
		}
	}
}

func drawBanner(screen *ebiten.Image, label string, th theme) {
	w := screen.Bounds().Dx()
	bw, bh := 220, 30
	x := (w - bw) / 2
	ebitenutil.DrawRect(screen, float64(x), 14, float64(bw), float64(bh), th.Overlay)
	drawTextCentered(screen, label, basicfont.Face7x13, x, 22, bw, th.Accent)
}

func drawRaisedRect(screen *ebiten.Image, x, y, w, h int, fill color.Color, th theme) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), fill)
	drawBevel(screen, x, y, w, h, th.Light, th.Dark)
}

func drawSunkenRect(screen *ebiten.Image, x, y, w, h int, th theme) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), th.Panel)
	drawBevel(screen, x, y, w, h, th.Dark, th.Light)
}

// drawBevel draws the top/left edges in hi and the bottom/right edges in lo.
func drawBevel(screen *ebiten.Image, x, y, w, h int, hi, lo color.Color) {
	x0, y0, x1, y1 := float32(x), float32(y), float32(x+w), float32(y+h)
	vector.StrokeLine(screen, x0, y0, x1, y0, 2, hi, false)
	vector.StrokeLine(screen, x0, y0, x0, y1, 2, hi, false)
	vector.StrokeLine(screen, x1, y0, x1, y1, 2, lo, false)
	vector.StrokeLine(screen, x0, y1, x1, y1, 2, lo, false)
}

func drawTextCentered(screen *ebiten.Image, s string, f font.Face, x, y, w int, clr color.Color) {
	b := text.BoundString(f, s)
	text.Draw(screen, s, f, x+(w-b.Dx())/2, y+13, clr)
}

func drawDigital(screen *ebiten.Image, x, y, value, digits int, clr color.Color) {
	ebitenutil.DrawRect(screen, float64(x-3), float64(y-3), float64(digits*18+6), 28, color.RGBA{20, 20, 20, 255})

	n := clamp(value, 0, int(math.Pow10(digits))-1)
	for i := digits - 1; i >= 0; i-- {
		drawSevenSegDigit(screen, x+i*18, y, n%10, clr)
		n /= 10
	}
}

// segment masks for 0-9, bits a..g from high to low
var sevenSeg = [10]int{
	0b1111110,
	0b0110000,
	0b1101101,
	0b1111001,
	0b0110011,
	0b1011011,
	0b1011111,
	0b1110000,
	0b1111111,
	0b1111011,
}

func drawSevenSegDigit(screen *ebiten.Image, x, y, d int, clr color.Color) {
	mask := sevenSeg[d]
	off := color.RGBA{60, 20, 20, 255}
	segments := [7][4]float64{
		{3, 0, 10, 2},  // a
		{13, 2, 2, 9},  // b
		{13, 13, 2, 9}, // c
		{3, 22, 10, 2}, // d
		{1, 13, 2, 9},  // e
		{1, 2, 2, 9},   // f
		{3, 11, 10, 2}, // g
	}
	for i, s := range segments {
		c := color.Color(off)
		if mask&(1<<(6-i)) != 0 {
			c = clr
		}
		ebitenutil.DrawRect(screen, float64(x)+s[0], float64(y)+s[1], s[2], s[3], c)
	}
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
