// Command gridview renders a generated map and its A* route in the terminal.
//
// Usage:
//
//	gridview [-w 40] [-h 20] [-fraction 0.3] [-seed 10] [-random]
//
// Keys: r regenerates with the next seed, c toggles the Dijkstra cost
// overlay, q or Esc quits.
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridview: ")

	cfg := config{}
	flag.IntVar(&cfg.width, "w", 40, "map width in tiles")
	flag.IntVar(&cfg.height, "h", 20, "map height in tiles")
	flag.Float64Var(&cfg.fraction, "fraction", 0.3, "obstacle fraction in [0,1]")
	flag.Int64Var(&cfg.seed, "seed", 10, "generator seed (0 selects the default)")
	flag.BoolVar(&cfg.random, "random", false, "seed from the clock and ignore -seed")
	flag.Parse()

	v, err := newViewer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err = screen.Init(); err != nil {
		log.Fatal(err)
	}

	run(screen, v)
	screen.Fini()
}

// run draws v and dispatches key events until the viewer asks to quit.
func run(screen tcell.Screen, v *viewer) {
	for {
		screen.Clear()
		v.draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev.Key(), ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return
		}
	}
}
