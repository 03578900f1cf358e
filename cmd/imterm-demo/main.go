// Command imterm-demo runs a small immediate-mode UI that exercises
// the terminal backend: frame pacing, differential redraw, keyboard
// and mouse decoding.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/imterm"
	"github.com/dshills/imterm/screen"
)

const helpText = "Type to echo characters, move the mouse to track its " +
	"position, and scroll the wheel to change the counter. The panel " +
	"redraws at the active rate while you interact and decays to the " +
	"idle rate when you stop. Press q or Ctrl-C to quit."

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		activeFPS  float64
		idleFPS    float64
		mouse      bool
		driver     string
	)

	cmd := &cobra.Command{
		Use:           "imterm-demo",
		Short:         "Interactive demo of the imterm terminal backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("stdout is not a terminal")
			}

			cfg, err := imterm.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				cfg.ActiveFPS = activeFPS
			}
			if cmd.Flags().Changed("idle-fps") {
				cfg.IdleFPS = idleFPS
			}
			if cmd.Flags().Changed("mouse") {
				cfg.Mouse = mouse
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = driver
			}

			return run(cfg, configPath, cmd.Flags().Changed("config"))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "imterm.toml", "path to TOML configuration")
	cmd.Flags().Float64Var(&activeFPS, "fps", 60, "redraw rate while input is active")
	cmd.Flags().Float64Var(&idleFPS, "idle-fps", 3, "redraw rate when idle")
	cmd.Flags().BoolVar(&mouse, "mouse", true, "enable mouse reporting")
	cmd.Flags().StringVar(&driver, "backend", "tcell", "terminal driver (tcell or termbox)")

	return cmd
}

func run(cfg imterm.Config, configPath string, watch bool) error {
	ctx, err := imterm.Init(cfg)
	if err != nil {
		return err
	}
	defer ctx.Shutdown()

	if watch {
		if err := ctx.WatchConfig(configPath); err != nil {
			return err
		}
	}

	var (
		frames int
		wheel  float32
		typed  []rune
	)

	for {
		hasInput := ctx.NewFrame()
		io := ctx.IO()

		if io.KeysDown['q'] || (io.KeyCtrl && io.KeysDown['c']) {
			return nil
		}

		typed = append(typed, io.InputChars...)
		if len(typed) > 32 {
			typed = typed[len(typed)-32:]
		}
		wheel += io.MouseWheel

		frames++
		drawPanel(ctx.Screen(), frames, io.DeltaTime, io.MouseX, io.MouseY,
			io.MouseDown, wheel, string(typed))

		ctx.DrawScreen(hasInput)
	}
}

func drawPanel(s *screen.Buffer, frames int, delta float32, mx, my int,
	buttons [3]bool, wheel float32, typed string) {

	const (
		fg     = 15
		bg     = 0
		border = 14
		dim    = 8
	)

	s.Clear()
	w, _ := s.Size()

	boxW := w - 4
	if boxW > 64 {
		boxW = 64
	}
	if boxW < 20 {
		boxW = w
	}

	lines := []string{
		fmt.Sprintf("Frame %d  (%.1f ms/frame)", frames, delta*1000),
		fmt.Sprintf("Mouse  x=%d y=%d  buttons=%v", mx, my, buttons),
		fmt.Sprintf("Wheel  %.0f", wheel),
		fmt.Sprintf("Typed  %s", typed),
		"",
	}
	lines = append(lines, strings.Split(wordwrap.WrapString(helpText, uint(boxW-4)), "\n")...)

	top, left := 1, 2
	drawBox(s, left, top, boxW, len(lines)+2, border, bg)
	s.SetString(left+2, top, " imterm demo ", border, bg)
	for i, line := range lines {
		color := uint8(fg)
		if i >= 5 {
			color = dim
		}
		s.SetString(left+2, top+1+i, line, color, bg)
	}
}

func drawBox(s *screen.Buffer, x, y, w, h int, fg, bg uint8) {
	for i := 1; i < w-1; i++ {
		s.SetString(x+i, y, "─", fg, bg)
		s.SetString(x+i, y+h-1, "─", fg, bg)
	}
	for j := 1; j < h-1; j++ {
		s.SetString(x, y+j, "│", fg, bg)
		s.SetString(x+w-1, y+j, "│", fg, bg)
	}
	s.SetString(x, y, "┌", fg, bg)
	s.SetString(x+w-1, y, "┐", fg, bg)
	s.SetString(x, y+h-1, "└", fg, bg)
	s.SetString(x+w-1, y+h-1, "┘", fg, bg)
}
