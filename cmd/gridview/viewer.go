package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/dijkstra"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/mapgen"
)

// config holds the command-line settings.
type config struct {
	width, height int
	fraction      float64
	seed          int64
	random        bool
}

// canvas is the part of tcell.Screen the viewer draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleEmpty    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleStart    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnd      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCost     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStatus   = tcell.StyleDefault
)

// viewer owns the current map, its A* result and the exact cost field.
type viewer struct {
	cfg     config
	g       *grid.Grid
	res     *astar.Result
	field   *dijkstra.Field
	stats   mapgen.Stats
	overlay bool
	status  string
}

func newViewer(cfg config) (*viewer, error) {
	v := &viewer{cfg: cfg}
	if err := v.regenerate(); err != nil {
		return nil, err
	}
	return v, nil
}

// regenerate builds a new map with the current seed, places the endpoints,
// solves it and computes the cost field from Start.
func (v *viewer) regenerate() error {
	var opts []mapgen.Option
	if v.cfg.random {
		opts = append(opts, mapgen.WithRandomSeed())
	}
	g, stats, err := mapgen.GenerateWithStats(v.cfg.width, v.cfg.height, v.cfg.fraction, v.cfg.seed, opts...)
	if err != nil {
		return err
	}
	start, _, err := mapgen.PlaceEndpoints(g)
	if err != nil {
		return err
	}

	v.g, v.stats = g, stats
	v.res, err = astar.FindMarked(g)
	if err != nil {
		v.res = nil
		v.status = err.Error()
	} else {
		if err = astar.MarkPath(g, v.res.Path); err != nil {
			return err
		}
		v.status = fmt.Sprintf("cost %d, %d steps, %d expanded", v.res.Cost, len(v.res.Path)-1, v.res.Expanded)
	}

	v.field, err = dijkstra.Distances(g, start)
	return err
}

// handleKey applies one key press and reports whether the viewer keeps running.
func (v *viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q':
		return false
	case 'c':
		v.overlay = !v.overlay
	case 'r':
		if !v.cfg.random {
			v.cfg.seed = v.stats.Seed + 1
		}
		if err := v.regenerate(); err != nil {
			v.status = err.Error()
		}
	}
	return true
}

// draw paints the map with north up, followed by two status lines.
func (v *viewer) draw(c canvas) {
	for _, t := range v.g.Tiles() {
		ch, st := v.cell(t)
		c.SetContent(t.X, v.g.Height-1-t.Y, ch, nil, st)
	}

	y := v.g.Height + 1
	drawText(c, 0, y, fmt.Sprintf("seed %d, %d/%d obstacles", v.stats.Seed, v.stats.Placed, v.stats.Target), styleStatus)
	drawText(c, 0, y+1, v.status, styleStatus)
}

// cell picks the rune and style for one tile.
func (v *viewer) cell(t grid.Tile) (rune, tcell.Style) {
	switch t.Kind {
	case grid.Obstacle:
		return ' ', styleObstacle
	case grid.Start:
		return 'S', styleStart
	case grid.End:
		return 'E', styleEnd
	case grid.Path:
		return '*', stylePath
	}
	if v.overlay && v.field != nil {
		if d, ok := v.field.Dist(t.Coord); ok {
			// hundreds of cost units, one digit per tile
			return rune('0' + (d/100)%10), styleCost
		}
	}
	return '.', styleEmpty
}

func drawText(c canvas, x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, st)
	}
}
