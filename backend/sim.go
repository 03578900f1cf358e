package backend

// WriteOp records a single WriteRun call for test inspection.
type WriteOp struct {
	X, Y int
	Pair int
	Text string
}

// PairOp records a single InitPair call.
type PairOp struct {
	ID     int
	Fg, Bg uint8
}

// Sim is an in-memory backend for tests. It records every pair
// registration and run write, keeps a character grid of the visible
// state, and returns scripted events from its queue.
type Sim struct {
	width, height int
	queue         *eventQueue

	pairs map[int]PairOp
	grid  [][]rune

	Writes  []WriteOp
	PairOps []PairOp
	Flushes int

	MouseEnabled bool
	initialized  bool
}

// NewSim creates a simulated terminal with the given dimensions.
func NewSim(width, height int) *Sim {
	return &Sim{
		width:  width,
		height: height,
		queue:  newEventQueue(128),
		pairs:  make(map[int]PairOp),
	}
}

func (s *Sim) Init() error {
	s.grid = make([][]rune, s.height)
	for y := range s.grid {
		s.grid[y] = make([]rune, s.width)
		for x := range s.grid[y] {
			s.grid[y][x] = ' '
		}
	}
	s.initialized = true
	return nil
}

func (s *Sim) Fini() {
	s.initialized = false
}

func (s *Sim) Size() (int, int) {
	return s.width, s.height
}

func (s *Sim) EnableMouse()  { s.MouseEnabled = true }
func (s *Sim) DisableMouse() { s.MouseEnabled = false }

func (s *Sim) PollEvent() (Event, bool) {
	return s.queue.poll()
}

func (s *Sim) PostEvent(ev Event) {
	s.queue.requeue(ev)
}

func (s *Sim) InitPair(id int, fg, bg uint8) {
	op := PairOp{ID: id, Fg: fg, Bg: bg}
	s.pairs[id] = op
	s.PairOps = append(s.PairOps, op)
}

func (s *Sim) WriteRun(x, y int, pair int, text []rune) {
	s.Writes = append(s.Writes, WriteOp{X: x, Y: y, Pair: pair, Text: string(text)})
	if y < 0 || y >= s.height {
		return
	}
	for i, r := range text {
		if x+i >= 0 && x+i < s.width {
			s.grid[y][x+i] = r
		}
	}
}

func (s *Sim) Flush() {
	s.Flushes++
}

// Feed queues a scripted event as if the terminal produced it.
func (s *Sim) Feed(ev Event) {
	s.queue.push(ev)
}

// FeedKey queues a special-key event.
func (s *Sim) FeedKey(k Key, mod ModMask) {
	s.Feed(Event{Type: EventKey, Key: k, Mod: mod})
}

// FeedRune queues a printable-character event.
func (s *Sim) FeedRune(r rune) {
	s.Feed(Event{Type: EventKey, Key: KeyRune, Rune: r})
}

// FeedMouse queues a mouse event.
func (s *Sim) FeedMouse(x, y int, buttons ButtonMask, mod ModMask) {
	s.Feed(Event{Type: EventMouse, MouseX: x, MouseY: y, Buttons: buttons, Mod: mod})
}

// SetSize changes the terminal dimensions and queues the resize event.
func (s *Sim) SetSize(width, height int) {
	s.width = width
	s.height = height
	if s.initialized {
		_ = s.Init()
	}
	s.Feed(Event{Type: EventResize, Width: width, Height: height})
}

// Line returns the visible characters of one row.
func (s *Sim) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	return string(s.grid[y])
}

// Pair returns the registered colors for a pair handle.
func (s *Sim) Pair(id int) (PairOp, bool) {
	op, ok := s.pairs[id]
	return op, ok
}

// ResetCounters clears the recorded operations without touching the
// visible grid.
func (s *Sim) ResetCounters() {
	s.Writes = nil
	s.PairOps = nil
	s.Flushes = 0
}
