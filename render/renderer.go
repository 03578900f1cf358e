// Package render implements the differential renderer: it compares
// the current screen buffer against a cached copy of the previous
// frame and emits only the terminal writes needed to synchronize the
// display, batching same-colored runs into single write calls.
package render

import (
	"github.com/dshills/imterm/backend"
	"github.com/dshills/imterm/screen"
)

// Renderer diffs screen buffers and flushes changed rows to a
// terminal backend. It owns the previous-frame cache; callers own the
// current buffer and the terminal handle. Draw performs real terminal
// writes and must run on the frame thread.
type Renderer struct {
	term  backend.Backend
	prev  *screen.Buffer
	pairs *PairCache
	run   []rune
}

// New creates a renderer for the given terminal. The previous-frame
// cache starts empty, so the first Draw paints everything.
func New(term backend.Backend) *Renderer {
	return &Renderer{
		term:  term,
		prev:  screen.New(0, 0),
		pairs: NewPairCache(),
	}
}

// Pairs exposes the color-pair cache, mainly for inspection.
func (r *Renderer) Pairs() *PairCache {
	return r.pairs
}

// Draw makes the visible terminal match cur. Rows identical to the
// previous frame are skipped; within a dirty row, consecutive cells
// sharing a color pair are written as one run. Afterwards the
// previous-frame cache is brought up to date: row by row normally,
// wholesale when the dimensions changed.
func (r *Renderer) Draw(cur *screen.Buffer) {
	nx, ny := cur.Size()
	pw, ph := r.prev.Size()
	compare := pw == nx && ph == ny
	if !compare {
		r.prev.Resize(nx, ny)
	}

	wrote := false
	for y := 0; y < ny; y++ {
		if compare && screen.RowEqual(cur, r.prev, y) {
			continue
		}
		r.drawRow(y, cur)
		wrote = true
		if compare {
			r.prev.CopyRow(cur, y)
		}
	}

	if !compare {
		r.prev.CopyFrom(cur)
	}
	if wrote {
		r.term.Flush()
	}
}

// drawRow writes one dirty row, flushing the accumulated run each
// time the color pair changes.
func (r *Renderer) drawRow(y int, cur *screen.Buffer) {
	row := cur.Row(y)
	r.run = r.run[:0]

	runStart := 0
	lastID := -1

	for x, cell := range row {
		id := r.pairs.Lookup(r.term, cell.Pair())
		if id != lastID {
			if len(r.run) > 0 {
				r.term.WriteRun(runStart, y, lastID, r.run)
				r.run = r.run[:0]
			}
			runStart = x
			lastID = id
		}
		r.run = append(r.run, cell.Rune())
	}

	if len(r.run) > 0 {
		r.term.WriteRun(runStart, y, lastID, r.run)
		r.run = r.run[:0]
	}
}
