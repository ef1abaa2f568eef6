package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	termMode := flag.Bool("term", false, "play in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "board random seed (0 picks one from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	if *termMode {
		if err := runTerminal(rng); err != nil {
			fmt.Fprintf(os.Stderr, "fruitbox: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	g := newGame(rng)
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
