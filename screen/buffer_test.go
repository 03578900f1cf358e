package screen

import (
	"testing"

	"github.com/dshills/imterm/core"
)

func TestNewBuffer(t *testing.T) {
	b := New(80, 24)
	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestBufferSetGet(t *testing.T) {
	b := New(80, 24)

	cell := core.NewCell('A', 7, 4)
	b.Set(10, 5, cell)

	if got := b.Get(10, 5); got != cell {
		t.Errorf("Get(10, 5) = %#x, want %#x", got, cell)
	}

	// Out of bounds writes are ignored, reads return the zero cell.
	b.Set(-1, 0, cell)
	b.Set(80, 0, cell)
	b.Set(0, 24, cell)
	if b.Get(-1, 0) != 0 || b.Get(80, 0) != 0 || b.Get(0, 24) != 0 {
		t.Error("out of bounds access must yield the zero cell")
	}
}

func TestBufferResizeClears(t *testing.T) {
	b := New(10, 4)
	b.Set(3, 2, core.NewCell('x', 1, 2))

	b.Resize(20, 8)
	w, h := b.Size()
	if w != 20 || h != 8 {
		t.Errorf("expected size (20, 8), got (%d, %d)", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.Get(x, y) != 0 {
				t.Fatalf("cell (%d, %d) not cleared after resize", x, y)
			}
		}
	}
}

func TestBufferFillClear(t *testing.T) {
	b := New(5, 3)
	cell := core.NewCell('#', 2, 0)
	b.Fill(cell)
	if b.Get(4, 2) != cell {
		t.Error("Fill should reach the last cell")
	}
	b.Clear()
	if b.Get(4, 2) != 0 {
		t.Error("Clear should reset all cells")
	}
}

func TestBufferSetString(t *testing.T) {
	b := New(10, 2)
	b.SetString(1, 0, "hi", 7, 0)

	if b.Get(1, 0).Char() != 'h' || b.Get(2, 0).Char() != 'i' {
		t.Error("SetString did not place the runes")
	}
	if b.Get(1, 0).Fg() != 7 {
		t.Error("SetString did not carry the color pair")
	}

	// Clipped at the right edge.
	b.SetString(8, 1, "long", 7, 0)
	if b.Get(8, 1).Char() != 'l' || b.Get(9, 1).Char() != 'o' {
		t.Error("SetString should clip at the row end")
	}
}

func TestBufferSetStringWideRune(t *testing.T) {
	b := New(10, 1)
	b.SetString(0, 0, "日x", 7, 0)

	if b.Get(0, 0).Char() != '日' {
		t.Error("wide rune not written")
	}
	if b.Get(1, 0).Char() != 0 || b.Get(1, 0).Fg() != 7 {
		t.Error("continuation column should be a zero-char cell with the pair")
	}
	if b.Get(2, 0).Char() != 'x' {
		t.Error("following rune should land after the continuation column")
	}
}

func TestBufferCopyRow(t *testing.T) {
	src := New(6, 3)
	dst := New(6, 3)
	src.SetString(0, 1, "abc", 7, 0)

	dst.CopyRow(src, 1)
	if !RowEqual(src, dst, 1) {
		t.Error("copied row should compare equal")
	}
	if RowEqual(src, dst, 0) != true {
		t.Error("untouched empty rows should compare equal")
	}

	src.Set(0, 0, core.NewCell('z', 1, 1))
	if RowEqual(src, dst, 0) {
		t.Error("rows should differ after mutating the source")
	}
}

func TestBufferCopyFrom(t *testing.T) {
	src := New(4, 2)
	src.SetString(0, 0, "ab", 3, 1)

	dst := New(9, 9)
	dst.CopyFrom(src)

	w, h := dst.Size()
	if w != 4 || h != 2 {
		t.Errorf("CopyFrom should adopt source dimensions, got (%d, %d)", w, h)
	}
	if dst.Get(0, 0) != src.Get(0, 0) || dst.Get(1, 0) != src.Get(1, 0) {
		t.Error("CopyFrom should duplicate cell content")
	}
}
