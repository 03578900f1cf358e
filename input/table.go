package input

import (
	"github.com/dshills/imterm/backend"
	"github.com/dshills/imterm/ui"
)

// keyTable maps named terminal keys to the GUI's logical key slots.
// Keys absent here fall through to fallbackCodes or, failing that,
// are dropped. Modifier synthesis (shifted arrows, alt prefixes) is
// carried on the event itself, so the table stays a flat code mapping.
var keyTable = map[backend.Key]ui.Key{
	backend.KeyEscape:    ui.KeyEscape,
	backend.KeyEnter:     ui.KeyEnter,
	backend.KeyTab:       ui.KeyTab,
	backend.KeyBackspace: ui.KeyBackspace,
	backend.KeyDelete:    ui.KeyDelete,
	backend.KeyInsert:    ui.KeyInsert,
	backend.KeyHome:      ui.KeyHome,
	backend.KeyEnd:       ui.KeyEnd,
	backend.KeyPageUp:    ui.KeyPageUp,
	backend.KeyPageDown:  ui.KeyPageDown,
	backend.KeyUp:        ui.KeyUpArrow,
	backend.KeyDown:      ui.KeyDownArrow,
	backend.KeyLeft:      ui.KeyLeftArrow,
	backend.KeyRight:     ui.KeyRightArrow,
}

// Function keys have no logical slot in the GUI key map; they land in
// generic key-down codes using the classic terminal numbering.
var fallbackCodes = map[backend.Key]int{
	backend.KeyF1:  265,
	backend.KeyF2:  266,
	backend.KeyF3:  267,
	backend.KeyF4:  268,
	backend.KeyF5:  269,
	backend.KeyF6:  270,
	backend.KeyF7:  271,
	backend.KeyF8:  272,
	backend.KeyF9:  273,
	backend.KeyF10: 274,
	backend.KeyF11: 275,
	backend.KeyF12: 276,
}
