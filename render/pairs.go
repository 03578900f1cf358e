package render

import (
	"github.com/dshills/imterm/backend"
	"github.com/dshills/imterm/core"
)

// PairCache maps (foreground, background) combinations to terminal
// color-pair handles. Handles are allocated lazily and never freed:
// terminal pair slots are a process-wide resource, so the cache only
// grows. Terminals cap the slot count at 256; behavior past that
// limit is undefined and accepted.
type PairCache struct {
	handles map[core.Pair]int
	next    int
}

// NewPairCache creates an empty cache. Handle 0 is reserved for the
// terminal default pair, so allocation starts at 1.
func NewPairCache() *PairCache {
	return &PairCache{
		handles: make(map[core.Pair]int),
		next:    1,
	}
}

// Lookup returns the handle for a pair, registering it with the
// terminal on first use.
func (c *PairCache) Lookup(term backend.Backend, p core.Pair) int {
	if id, ok := c.handles[p]; ok {
		return id
	}
	id := c.next
	c.next++
	term.InitPair(id, p.Fg(), p.Bg())
	c.handles[p] = id
	return id
}

// Len returns the number of allocated handles.
func (c *PairCache) Len() int {
	return len(c.handles)
}
