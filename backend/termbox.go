package backend

import (
	"fmt"

	termbox "github.com/nsf/termbox-go"
)

// Termbox implements Backend using termbox-go in 256-color output
// mode. It exists for environments where the terminfo-driven backend
// is unavailable and is otherwise equivalent to Screen.
type Termbox struct {
	queue *eventQueue
	pairs map[int][2]termbox.Attribute
	held  ButtonMask
	mouse bool
}

// NewTermbox creates a termbox-backed terminal backend.
func NewTermbox() *Termbox {
	return &Termbox{
		queue: newEventQueue(128),
		pairs: make(map[int][2]termbox.Attribute),
	}
}

func (t *Termbox) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("initializing termbox: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()
	if t.mouse {
		termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	} else {
		termbox.SetInputMode(termbox.InputEsc)
	}

	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt || ev.Type == termbox.EventError {
				return
			}
			if converted, ok := t.convertEvent(ev); ok {
				t.queue.push(converted)
			}
		}
	}()

	return nil
}

func (t *Termbox) Fini() {
	termbox.Interrupt()
	termbox.Close()
}

func (t *Termbox) Size() (int, int) {
	return termbox.Size()
}

func (t *Termbox) EnableMouse() {
	t.mouse = true
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
}

func (t *Termbox) DisableMouse() {
	t.mouse = false
	termbox.SetInputMode(termbox.InputEsc)
}

func (t *Termbox) PollEvent() (Event, bool) {
	return t.queue.poll()
}

func (t *Termbox) PostEvent(ev Event) {
	t.queue.requeue(ev)
}

func (t *Termbox) InitPair(id int, fg, bg uint8) {
	// Output256 maps palette index n to attribute n+1; zero is the
	// terminal default.
	t.pairs[id] = [2]termbox.Attribute{
		termbox.Attribute(uint16(fg) + 1),
		termbox.Attribute(uint16(bg) + 1),
	}
}

func (t *Termbox) WriteRun(x, y int, pair int, text []rune) {
	attrs, ok := t.pairs[pair]
	if !ok {
		attrs = [2]termbox.Attribute{termbox.ColorDefault, termbox.ColorDefault}
	}
	for i, r := range text {
		termbox.SetCell(x+i, y, r, attrs[0], attrs[1])
	}
}

func (t *Termbox) Flush() {
	_ = termbox.Flush()
}

// convertEvent converts a termbox event to a backend Event. Mouse
// button state is tracked here because termbox reports presses and a
// generic release rather than a state mask.
func (t *Termbox) convertEvent(ev termbox.Event) (Event, bool) {
	switch ev.Type {
	case termbox.EventKey:
		if ev.Ch != 0 {
			mod := ModNone
			if ev.Mod&termbox.ModAlt != 0 {
				mod = ModAlt
			}
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Ch, Mod: mod}, true
		}
		k, r := convertTermboxKey(ev.Key)
		if k == KeyNone && r == 0 {
			return Event{}, false
		}
		mod := ModNone
		if ev.Mod&termbox.ModAlt != 0 {
			mod = ModAlt
		}
		return Event{Type: EventKey, Key: k, Rune: r, Mod: mod}, true

	case termbox.EventMouse:
		buttons := t.held
		switch ev.Key {
		case termbox.MouseLeft:
			buttons |= Button1
		case termbox.MouseMiddle:
			buttons |= Button2
		case termbox.MouseRight:
			buttons |= Button3
		case termbox.MouseRelease:
			buttons = ButtonNone
		case termbox.MouseWheelUp:
			buttons |= WheelUp
		case termbox.MouseWheelDown:
			buttons |= WheelDown
		}
		t.held = buttons &^ (WheelUp | WheelDown)
		return Event{
			Type:    EventMouse,
			MouseX:  ev.MouseX,
			MouseY:  ev.MouseY,
			Buttons: buttons,
		}, true

	case termbox.EventResize:
		return Event{Type: EventResize, Width: ev.Width, Height: ev.Height}, true
	}

	return Event{}, false
}

// convertTermboxKey maps a termbox key code. Tab, enter and escape are
// matched before the control-letter range because termbox aliases them
// the same way a raw terminal does.
func convertTermboxKey(k termbox.Key) (Key, rune) {
	switch k {
	case termbox.KeySpace:
		return KeyRune, ' '
	case termbox.KeyEnter:
		return KeyEnter, 0
	case termbox.KeyCtrlJ:
		return KeyEnter, 0
	case termbox.KeyTab:
		return KeyTab, 0
	case termbox.KeyEsc:
		return KeyEscape, 0
	case termbox.KeyBackspace2:
		return KeyBackspace, 0
	case termbox.KeyDelete:
		return KeyDelete, 0
	case termbox.KeyInsert:
		return KeyInsert, 0
	case termbox.KeyHome:
		return KeyHome, 0
	case termbox.KeyEnd:
		return KeyEnd, 0
	case termbox.KeyPgup:
		return KeyPageUp, 0
	case termbox.KeyPgdn:
		return KeyPageDown, 0
	case termbox.KeyArrowUp:
		return KeyUp, 0
	case termbox.KeyArrowDown:
		return KeyDown, 0
	case termbox.KeyArrowLeft:
		return KeyLeft, 0
	case termbox.KeyArrowRight:
		return KeyRight, 0
	case termbox.KeyF1:
		return KeyF1, 0
	case termbox.KeyF2:
		return KeyF2, 0
	case termbox.KeyF3:
		return KeyF3, 0
	case termbox.KeyF4:
		return KeyF4, 0
	case termbox.KeyF5:
		return KeyF5, 0
	case termbox.KeyF6:
		return KeyF6, 0
	case termbox.KeyF7:
		return KeyF7, 0
	case termbox.KeyF8:
		return KeyF8, 0
	case termbox.KeyF9:
		return KeyF9, 0
	case termbox.KeyF10:
		return KeyF10, 0
	case termbox.KeyF11:
		return KeyF11, 0
	case termbox.KeyF12:
		return KeyF12, 0
	}

	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return KeyCtrlA + Key(k-termbox.KeyCtrlA), 0
	}

	return KeyNone, 0
}
