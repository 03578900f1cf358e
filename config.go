package imterm

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/imterm/backend"
)

// Config controls terminal setup and frame pacing.
type Config struct {
	// Mouse enables extended mouse reporting, including the wheel.
	Mouse bool `toml:"mouse"`

	// ActiveFPS is the redraw rate while input is arriving.
	ActiveFPS float64 `toml:"active_fps"`

	// IdleFPS is the redraw rate once input has gone quiet. Clamped
	// to at most ActiveFPS; negative means "same as active".
	IdleFPS float64 `toml:"idle_fps"`

	// Backend selects the terminal driver: "tcell" (default) or
	// "termbox".
	Backend string `toml:"backend"`
}

// DefaultConfig returns the stock configuration: mouse on, 60 FPS
// while active, 3 FPS idle, tcell driver.
func DefaultConfig() Config {
	return Config{
		Mouse:     true,
		ActiveFPS: 60,
		IdleFPS:   3,
		Backend:   "tcell",
	}
}

// LoadConfig reads a TOML configuration file, filling unset fields
// from DefaultConfig. A missing file is not an error and yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case "", "tcell", "termbox":
		return nil
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// newBackend constructs the configured terminal driver.
func (c Config) newBackend() (backend.Backend, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	switch c.Backend {
	case "termbox":
		return backend.NewTermbox(), nil
	default:
		return backend.NewScreen()
	}
}
