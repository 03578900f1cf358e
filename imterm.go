// Package imterm renders an immediate-mode GUI's cell output onto a
// character terminal and translates terminal input back into the
// GUI's IO model. Each frame the caller drains input with NewFrame,
// rasterizes into the shared screen buffer, and calls DrawScreen,
// which flushes only the changed rows and paces the loop.
package imterm

import (
	"fmt"

	"github.com/dshills/imterm/backend"
	"github.com/dshills/imterm/input"
	"github.com/dshills/imterm/render"
	"github.com/dshills/imterm/screen"
	"github.com/dshills/imterm/ui"
	"github.com/dshills/imterm/vsync"
)

// Context owns the terminal session state: the shared screen buffer,
// the differential renderer, the frame pacer and the input decoder.
// All methods must be called from the thread driving the frame loop;
// Shutdown must not run concurrently with any of them.
type Context struct {
	cfg     Config
	term    backend.Backend
	screen  *screen.Buffer
	io      *ui.IO
	render  *render.Renderer
	pacer   *vsync.Pacer
	decoder *input.Decoder
	watcher *configWatcher
}

// Init configures the terminal per cfg and returns a context whose
// screen buffer the caller populates each frame.
func Init(cfg Config) (*Context, error) {
	term, err := cfg.newBackend()
	if err != nil {
		return nil, err
	}
	return InitWithBackend(cfg, term)
}

// InitWithBackend is Init with an explicit terminal backend, used by
// tests and embedders that construct their own driver.
func InitWithBackend(cfg Config, term backend.Backend) (*Context, error) {
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("initializing backend: %w", err)
	}
	if cfg.Mouse {
		term.EnableMouse()
	}

	w, h := term.Size()
	c := &Context{
		cfg:    cfg,
		term:   term,
		screen: screen.New(w, h),
		io:     ui.NewIO(),
		render: render.New(term),
		pacer:  vsync.New(cfg.ActiveFPS, cfg.IdleFPS, term),
	}
	c.io.DisplayWidth = w
	c.io.DisplayHeight = h

	c.decoder = input.NewDecoder(term, c.io)
	c.decoder.OnResize(func(w, h int) {
		c.screen.Resize(w, h)
	})

	return c, nil
}

// Screen returns the buffer the GUI rasterizes into.
func (c *Context) Screen() *screen.Buffer {
	return c.screen
}

// IO returns the input/output state the GUI reads each frame.
func (c *Context) IO() *ui.IO {
	return c.io
}

// NewFrame drains pending terminal input into the IO state, updates
// the frame delta time, and reports whether any input arrived. The
// result feeds DrawScreen's active flag.
func (c *Context) NewFrame() bool {
	hasInput := c.decoder.NewFrame()
	c.io.DeltaTime = float32(c.pacer.Delta().Seconds())
	return hasInput
}

// DrawScreen flushes the screen buffer's changes to the terminal and
// blocks until the next frame tick. Frames with recent input run at
// the active rate, others decay to the idle rate.
func (c *Context) DrawScreen(active bool) {
	c.render.Draw(c.screen)
	c.pacer.Wait(active)
}

// ProcessEvent exists for API symmetry with other GUI backends and
// always succeeds; event processing happens in NewFrame.
func (c *Context) ProcessEvent() bool {
	return true
}

// Shutdown restores the terminal and releases the session state, in
// reverse order of Init.
func (c *Context) Shutdown() {
	if c.watcher != nil {
		c.watcher.stop()
		c.watcher = nil
	}
	if c.term != nil {
		c.term.DisableMouse()
		c.term.Fini()
		c.term = nil
	}
	c.screen = nil
}
