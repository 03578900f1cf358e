// Package ui holds the IO state an immediate-mode GUI reads every
// frame: the key map, key-down and modifier flags, mouse state, queued
// text input and the frame delta time. The input decoder writes this
// state; the GUI layer consumes it.
package ui

// Key names the logical key slots the GUI addresses through the key
// map. The order matches the slots a GUI framework typically reserves
// for navigation and clipboard shortcuts.
type Key int

const (
	KeyTab Key = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyPadEnter
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// MaxKeyCode bounds the KeysDown array. Key codes are masked into this
// range before indexing.
const MaxKeyCode = 512

// IO is the per-frame input/output state shared with the GUI.
type IO struct {
	// KeyMap translates logical key slots to key codes. Populated
	// with DefaultKeyMap at construction; the GUI may override it.
	KeyMap [KeyCount]int

	// KeysDown is indexed by key code. Fully reset at the start of
	// each frame.
	KeysDown [MaxKeyCode]bool

	// Per-frame modifier flags.
	KeyCtrl  bool
	KeyShift bool
	KeyAlt   bool
	KeySuper bool

	// Mouse state. Position and button-down flags persist across
	// frames; wheel deltas last one frame.
	MouseX, MouseY int
	MouseDown      [3]bool
	MouseWheel     float32
	MouseWheelH    float32

	// InputChars accumulates typed text for the frame.
	InputChars []rune

	// DeltaTime is the wall-clock time of the previous frame in
	// seconds.
	DeltaTime float32

	// DisplayWidth and DisplayHeight mirror the terminal size.
	DisplayWidth  int
	DisplayHeight int
}

// NewIO returns an IO with the default key map installed.
func NewIO() *IO {
	io := &IO{}
	io.KeyMap = DefaultKeyMap()
	return io
}

// ResetFrame clears the per-frame transient state: key-down flags,
// modifiers, wheel deltas and pending text. Mouse position and button
// state are deliberately left alone.
func (io *IO) ResetFrame() {
	io.KeysDown = [MaxKeyCode]bool{}
	io.KeyCtrl = false
	io.KeyShift = false
	io.KeyAlt = false
	io.KeySuper = false
	io.MouseWheel = 0
	io.MouseWheelH = 0
	io.InputChars = io.InputChars[:0]
}

// SetKeyDown marks a key code as pressed for this frame.
func (io *IO) SetKeyDown(code int) {
	io.KeysDown[code&(MaxKeyCode-1)] = true
}

// PressKey marks a logical key slot as pressed, resolving it through
// the key map.
func (io *IO) PressKey(k Key) {
	io.SetKeyDown(io.KeyMap[k])
}

// IsKeyDown reports whether the logical key slot is pressed.
func (io *IO) IsKeyDown(k Key) bool {
	return io.KeysDown[io.KeyMap[k]&(MaxKeyCode-1)]
}

// AddInputCharactersUTF8 appends typed text to the frame's input
// stream.
func (io *IO) AddInputCharactersUTF8(s string) {
	for _, r := range s {
		io.InputChars = append(io.InputChars, r)
	}
}

// AddInputCharacter appends a single typed rune.
func (io *IO) AddInputCharacter(r rune) {
	io.InputChars = append(io.InputChars, r)
}
