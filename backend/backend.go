// Package backend provides the terminal abstraction the renderer and
// input decoder sit on: non-blocking event polling, color-pair
// registration and batched run writes. Production backends wrap tcell
// and termbox; Sim is an in-memory backend for tests.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields. Key is KeyRune for printable input, with the
	// character in Rune.
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields. Buttons carries the button state at the
	// time of the event plus any one-shot wheel bits.
	MouseX, MouseY int
	Buttons        ButtonMask

	// Resize event fields.
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys. KeyCtrlA through KeyCtrlZ are
// contiguous so decoders can index by letter offset.
const (
	KeyNone Key = iota
	KeyRune     // Printable character (use the Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// ButtonMask represents mouse button state as a bit set. Button bits
// reflect held buttons; wheel bits are one-shot per event.
type ButtonMask int

const (
	ButtonNone ButtonMask = 0
	Button1    ButtonMask = 1 << iota // Left
	Button2                           // Middle
	Button3                           // Right
	WheelUp
	WheelDown
)

// Backend defines the terminal surface the render and input layers
// use. Implementations own the real terminal handle; all methods must
// be called from the frame thread except PostEvent, which is safe from
// the event pump.
type Backend interface {
	// Init configures the terminal: raw mode, no echo, hidden
	// cursor, non-blocking input.
	Init() error

	// Fini restores the terminal to its original mode.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// EnableMouse turns on extended mouse reporting, including wheel
	// events.
	EnableMouse()

	// DisableMouse turns mouse reporting off.
	DisableMouse()

	// PollEvent returns the next pending event without blocking.
	// Requeued events are returned before fresh terminal events.
	PollEvent() (Event, bool)

	// PostEvent requeues an event so the next PollEvent returns it.
	// Used by the frame pacer to hand a peeked event back to the
	// input decoder.
	PostEvent(Event)

	// InitPair registers a color-pair handle with its foreground and
	// background palette indices. Handles are small integers
	// allocated by the renderer; a handle is registered once.
	InitPair(id int, fg, bg uint8)

	// WriteRun draws a run of characters at (x, y) using a
	// registered pair handle. One call is one terminal write.
	WriteRun(x, y int, pair int, text []rune)

	// Flush makes all writes since the last Flush visible.
	Flush()
}
