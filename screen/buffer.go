// Package screen provides the cell buffer that the GUI rasterizer
// draws into each frame and the renderer diffs against.
package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/imterm/core"
)

// Buffer is a width x height grid of packed cells stored row-major.
// The render layer owns two of these: the current frame, written by
// the caller, and a private copy of the previous frame used for
// diffing.
type Buffer struct {
	cells  []core.Cell
	width  int
	height int
}

// New creates a buffer with the given dimensions.
func New(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts the buffer dimensions and clears the content.
// The backing slice is reallocated only when capacity is insufficient.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]core.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell. Positions outside the buffer are silently ignored.
func (b *Buffer) Set(x, y int, cell core.Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = cell
}

// Get returns the cell at the given position, or the zero cell when
// out of bounds.
func (b *Buffer) Get(x, y int) core.Cell {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.cells[y*b.width+x]
}

// Row returns the backing slice for one row. The slice aliases the
// buffer; callers must not hold it across a Resize.
func (b *Buffer) Row(y int) []core.Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// Clear resets every cell to the zero cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Fill sets every cell in the buffer to the given cell.
func (b *Buffer) Fill(cell core.Cell) {
	for i := range b.cells {
		b.cells[i] = cell
	}
}

// SetString writes a string starting at the given position, clipped to
// the row. Wide runes occupy two columns; the continuation column is
// left as a zero-character cell carrying the same color pair.
func (b *Buffer) SetString(x, y int, s string, fg, bg uint8) {
	if y < 0 || y >= b.height {
		return
	}
	col := x
	for _, r := range s {
		if col >= b.width {
			break
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 {
			b.Set(col, y, core.NewCell(r, fg, bg))
		}
		col++
		if w == 2 {
			if col >= 0 && col < b.width {
				b.Set(col, y, core.NewCell(0, fg, bg))
			}
			col++
		}
	}
}

// CopyFrom replaces the buffer content and dimensions with a full copy
// of src.
func (b *Buffer) CopyFrom(src *Buffer) {
	b.Resize(src.width, src.height)
	copy(b.cells, src.cells)
}

// CopyRow copies one row from src. Both buffers must have the same
// dimensions.
func (b *Buffer) CopyRow(src *Buffer, y int) {
	if y < 0 || y >= b.height || b.width != src.width {
		return
	}
	copy(b.Row(y), src.Row(y))
}

// RowEqual reports whether row y holds identical cells in both buffers.
func RowEqual(a, b *Buffer, y int) bool {
	ra, rb := a.Row(y), b.Row(y)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}
