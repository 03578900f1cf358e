package imterm

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debouncePeriod coalesces the event bursts editors produce when
// saving a file.
const debouncePeriod = 100 * time.Millisecond

// configWatcher reloads pacing rates when the config file changes.
type configWatcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// WatchConfig watches a TOML config file and applies pacing-rate
// changes live. Mouse and backend changes require a restart and are
// ignored by the reload. The watch stops at Shutdown.
func (c *Context) WatchConfig(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	// Watch the directory: editors replace files on save, which
	// drops a watch registered on the file itself.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return fmt.Errorf("watching config directory: %w", err)
	}

	w := &configWatcher{fw: fw, done: make(chan struct{})}
	c.watcher = w

	go func() {
		var timer *time.Timer
		reload := make(chan struct{}, 1)

		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debouncePeriod, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})

			case <-reload:
				cfg, err := LoadConfig(abs)
				if err != nil {
					continue
				}
				c.pacer.SetRates(cfg.ActiveFPS, cfg.IdleFPS)

			case <-fw.Errors:
				// Watch errors are not fatal; the current rates
				// simply stay in effect.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

func (w *configWatcher) stop() {
	close(w.done)
	w.fw.Close()
}
