// Package core provides the shared cell and color-pair types for the
// renderer subsystem. This package breaks import cycles between the
// screen buffer, the renderer, and the terminal backends.
package core

// Cell is one terminal character position packed into 32 bits:
// the low 16 bits hold the character code, bits 16-23 the foreground
// palette index and bits 24-31 the background palette index.
type Cell uint32

// Bit layout of a packed Cell.
const (
	charMask = 0x0000FFFF
	fgShift  = 16
	bgShift  = 24
)

// NewCell packs a character and a foreground/background palette pair.
// The character code is truncated to 16 bits.
func NewCell(ch rune, fg, bg uint8) Cell {
	return Cell(uint32(ch)&charMask | uint32(fg)<<fgShift | uint32(bg)<<bgShift)
}

// Char returns the character code. A zero code means the cell was
// never set and renders as a space.
func (c Cell) Char() rune {
	return rune(c & charMask)
}

// Fg returns the foreground palette index.
func (c Cell) Fg() uint8 {
	return uint8(c >> fgShift)
}

// Bg returns the background palette index.
func (c Cell) Bg() uint8 {
	return uint8(c >> bgShift)
}

// Rune returns the character to draw, substituting a space for an
// unset cell.
func (c Cell) Rune() rune {
	if ch := c.Char(); ch > 0 {
		return ch
	}
	return ' '
}

// WithChar returns the cell with its character code replaced.
func (c Cell) WithChar(ch rune) Cell {
	return c&^charMask | Cell(uint32(ch)&charMask)
}

// Pair returns the cell's color pair.
func (c Cell) Pair() Pair {
	return MakePair(c.Fg(), c.Bg())
}

// Pair identifies a (foreground, background) color combination.
// Terminals allocate a scarce handle per distinct pair, so Pair is the
// key of the renderer's pair cache.
type Pair uint16

// MakePair builds the pair key for a foreground/background combination.
func MakePair(fg, bg uint8) Pair {
	return Pair(uint16(bg)<<8 | uint16(fg))
}

// Fg returns the foreground palette index of the pair.
func (p Pair) Fg() uint8 {
	return uint8(p)
}

// Bg returns the background palette index of the pair.
func (p Pair) Bg() uint8 {
	return uint8(p >> 8)
}
