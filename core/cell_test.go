package core

import "testing"

func TestCellPacking(t *testing.T) {
	tests := []struct {
		name   string
		ch     rune
		fg, bg uint8
	}{
		{"ascii", 'A', 7, 0},
		{"unicode", '─', 15, 4},
		{"zero char", 0, 1, 2},
		{"max palette", 'x', 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell(tt.ch, tt.fg, tt.bg)
			if c.Char() != tt.ch {
				t.Errorf("Char() = %q, want %q", c.Char(), tt.ch)
			}
			if c.Fg() != tt.fg {
				t.Errorf("Fg() = %d, want %d", c.Fg(), tt.fg)
			}
			if c.Bg() != tt.bg {
				t.Errorf("Bg() = %d, want %d", c.Bg(), tt.bg)
			}
		})
	}
}

func TestCellCharTruncation(t *testing.T) {
	// Codepoints above 16 bits are truncated, not preserved.
	c := NewCell(0x1F600, 1, 2)
	if c.Char() != rune(0x1F600&0xFFFF) {
		t.Errorf("Char() = %#x, want %#x", c.Char(), 0x1F600&0xFFFF)
	}
	if c.Fg() != 1 || c.Bg() != 2 {
		t.Error("truncated char must not clobber the color pair")
	}
}

func TestCellRuneSubstitutesSpace(t *testing.T) {
	c := NewCell(0, 7, 0)
	if c.Rune() != ' ' {
		t.Errorf("unset cell should render as space, got %q", c.Rune())
	}
	if NewCell('z', 7, 0).Rune() != 'z' {
		t.Error("set cell should render its own character")
	}
}

func TestCellWithChar(t *testing.T) {
	c := NewCell('a', 3, 9)
	c = c.WithChar('b')
	if c.Char() != 'b' {
		t.Errorf("Char() = %q, want 'b'", c.Char())
	}
	if c.Fg() != 3 || c.Bg() != 9 {
		t.Error("WithChar must preserve the color pair")
	}
}

func TestPairRoundTrip(t *testing.T) {
	for _, tt := range []struct{ fg, bg uint8 }{
		{0, 0}, {7, 0}, {0, 7}, {255, 255}, {16, 232},
	} {
		p := MakePair(tt.fg, tt.bg)
		if p.Fg() != tt.fg || p.Bg() != tt.bg {
			t.Errorf("MakePair(%d, %d) round trip gave (%d, %d)",
				tt.fg, tt.bg, p.Fg(), p.Bg())
		}
	}
}

func TestPairDistinct(t *testing.T) {
	if MakePair(1, 2) == MakePair(2, 1) {
		t.Error("swapped fg/bg must produce distinct pairs")
	}
}
