// Package input drains terminal events once per frame and translates
// them into the GUI's key-state and mouse-state model.
package input

import (
	"github.com/dshills/imterm/backend"
	"github.com/dshills/imterm/ui"
)

// Decoder normalizes backend events into IO state. Key-down flags,
// modifiers and wheel deltas are frame-transient; mouse position and
// button state persist between frames because terminals report
// button transitions, not a continuous state poll.
type Decoder struct {
	term backend.Backend
	io   *ui.IO

	mouseX, mouseY int
	buttons        [3]bool

	onResize func(width, height int)
}

// NewDecoder creates a decoder writing into the given IO state.
func NewDecoder(term backend.Backend, io *ui.IO) *Decoder {
	return &Decoder{term: term, io: io}
}

// OnResize registers a callback for terminal resize events.
func (d *Decoder) OnResize(fn func(width, height int)) {
	d.onResize = fn
}

// NewFrame resets the transient IO state, drains all pending terminal
// events and reports whether any input was observed. The result
// drives the active/idle pacing decision upstream.
func (d *Decoder) NewFrame() bool {
	d.io.ResetFrame()

	hasInput := false
	for {
		ev, ok := d.term.PollEvent()
		if !ok {
			break
		}
		switch ev.Type {
		case backend.EventKey:
			d.handleKey(ev)
		case backend.EventMouse:
			d.handleMouse(ev)
		case backend.EventResize:
			if d.onResize != nil {
				d.onResize(ev.Width, ev.Height)
			}
		}
		hasInput = true
	}

	d.io.MouseX = d.mouseX
	d.io.MouseY = d.mouseY
	d.io.MouseDown = d.buttons

	w, h := d.term.Size()
	d.io.DisplayWidth = w
	d.io.DisplayHeight = h

	return hasInput
}

// handleKey decodes one key event. A bare escape immediately followed
// by another key event in the same drain batch folds into that key
// with the alt modifier; a lone escape is the Escape key itself.
func (d *Decoder) handleKey(ev backend.Event) {
	if ev.Key == backend.KeyEscape && ev.Mod == backend.ModNone {
		if next, ok := d.term.PollEvent(); ok {
			if next.Type == backend.EventKey {
				next.Mod |= backend.ModAlt
				ev = next
			} else {
				d.term.PostEvent(next)
			}
		}
	}

	d.applyMods(ev.Mod)

	switch {
	case ev.Key == backend.KeyRune:
		code := int(ev.Rune)
		d.io.SetKeyDown(code)
		if code != d.io.KeyMap[ui.KeyEnter] {
			d.io.AddInputCharacter(ev.Rune)
		}

	case ev.Key >= backend.KeyCtrlA && ev.Key <= backend.KeyCtrlZ:
		d.io.KeyCtrl = true
		d.io.SetKeyDown(int('a' + ev.Key - backend.KeyCtrlA))

	default:
		if slot, ok := keyTable[ev.Key]; ok {
			d.io.PressKey(slot)
		} else if code, ok := fallbackCodes[ev.Key]; ok {
			d.io.SetKeyDown(code)
		}
	}
}

// handleMouse updates the persistent mouse state from one event and
// accumulates wheel deltas for the frame.
func (d *Decoder) handleMouse(ev backend.Event) {
	d.mouseX = ev.MouseX
	d.mouseY = ev.MouseY

	// IO button order is left, right, middle.
	d.buttons[0] = ev.Buttons&backend.Button1 != 0
	d.buttons[1] = ev.Buttons&backend.Button3 != 0
	d.buttons[2] = ev.Buttons&backend.Button2 != 0

	if ev.Buttons&backend.WheelUp != 0 {
		d.io.MouseWheel++
	}
	if ev.Buttons&backend.WheelDown != 0 {
		d.io.MouseWheel--
	}

	d.applyMods(ev.Mod)
}

// applyMods ORs event modifiers into the frame's modifier flags.
func (d *Decoder) applyMods(m backend.ModMask) {
	if m.Has(backend.ModCtrl) {
		d.io.KeyCtrl = true
	}
	if m.Has(backend.ModShift) {
		d.io.KeyShift = true
	}
	if m.Has(backend.ModAlt) {
		d.io.KeyAlt = true
	}
	if m.Has(backend.ModMeta) {
		d.io.KeySuper = true
	}
}
