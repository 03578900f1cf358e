package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen implements Backend using tcell for terminal control.
type Screen struct {
	screen tcell.Screen
	queue  *eventQueue
	styles map[int]tcell.Style
	mouse  bool
}

// NewScreen creates a tcell-backed terminal backend.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	return &Screen{
		screen: s,
		queue:  newEventQueue(128),
		styles: make(map[int]tcell.Style),
	}, nil
}

func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	s.screen.HideCursor()
	if s.mouse {
		s.screen.EnableMouse()
	}

	// Pump terminal events into the queue. PollEvent returns nil
	// once Fini runs, which ends the goroutine.
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			if converted, ok := convertTcellEvent(ev); ok {
				s.queue.push(converted)
			}
		}
	}()

	return nil
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) EnableMouse() {
	s.mouse = true
	s.screen.EnableMouse()
}

func (s *Screen) DisableMouse() {
	s.mouse = false
	s.screen.DisableMouse()
}

func (s *Screen) PollEvent() (Event, bool) {
	return s.queue.poll()
}

func (s *Screen) PostEvent(ev Event) {
	s.queue.requeue(ev)
}

func (s *Screen) InitPair(id int, fg, bg uint8) {
	s.styles[id] = tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg)))
}

func (s *Screen) WriteRun(x, y int, pair int, text []rune) {
	style, ok := s.styles[pair]
	if !ok {
		style = tcell.StyleDefault
	}
	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) Flush() {
	s.screen.Show()
}

// convertTcellEvent converts a tcell event to a backend Event.
func convertTcellEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		out := Event{
			Type: EventKey,
			Mod:  convertTcellMod(e.Modifiers()),
		}
		out.Key, out.Rune = convertTcellKey(e.Key(), e.Rune())
		return out, true

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:    EventMouse,
			MouseX:  x,
			MouseY:  y,
			Buttons: convertTcellButtons(e.Buttons()),
			Mod:     convertTcellMod(e.Modifiers()),
		}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}

	return Event{}, false
}

// convertTcellKey maps a tcell key to a backend key. Control letters
// are detected by range; tab, enter and escape are pulled out first
// because tcell aliases them with Ctrl-I, Ctrl-M and Ctrl-[.
func convertTcellKey(k tcell.Key, r rune) (Key, rune) {
	switch k {
	case tcell.KeyRune:
		return KeyRune, r
	case tcell.KeyESC:
		return KeyEscape, 0
	case tcell.KeyCR:
		return KeyEnter, 0
	case tcell.KeyLF:
		return KeyEnter, 0
	case tcell.KeyTAB:
		return KeyTab, 0
	case tcell.KeyBackspace2:
		return KeyBackspace, 0
	case tcell.KeyDelete:
		return KeyDelete, 0
	case tcell.KeyInsert:
		return KeyInsert, 0
	case tcell.KeyHome:
		return KeyHome, 0
	case tcell.KeyEnd:
		return KeyEnd, 0
	case tcell.KeyPgUp:
		return KeyPageUp, 0
	case tcell.KeyPgDn:
		return KeyPageDown, 0
	case tcell.KeyUp:
		return KeyUp, 0
	case tcell.KeyDown:
		return KeyDown, 0
	case tcell.KeyLeft:
		return KeyLeft, 0
	case tcell.KeyRight:
		return KeyRight, 0
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1), 0
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyCtrlA + Key(k-tcell.KeyCtrlA), 0
	}

	return KeyNone, 0
}

// convertTcellMod converts a tcell modifier mask.
func convertTcellMod(m tcell.ModMask) ModMask {
	var out ModMask
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= ModMeta
	}
	return out
}

// convertTcellButtons converts a tcell button mask. tcell's Button2 is
// the secondary (right) button and Button3 the middle one.
func convertTcellButtons(b tcell.ButtonMask) ButtonMask {
	var out ButtonMask
	if b&tcell.Button1 != 0 {
		out |= Button1
	}
	if b&tcell.Button3 != 0 {
		out |= Button2
	}
	if b&tcell.Button2 != 0 {
		out |= Button3
	}
	if b&tcell.WheelUp != 0 {
		out |= WheelUp
	}
	if b&tcell.WheelDown != 0 {
		out |= WheelDown
	}
	return out
}
