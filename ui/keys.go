package ui

// Key codes used by the default key map. Special keys use the classic
// terminal key codes so they never collide with printable characters;
// clipboard shortcuts use the control-character codes.
const (
	CodeTab       = 9
	CodeEnter     = 10
	CodeEscape    = 27
	CodeSpace     = 32
	CodeDown      = 258
	CodeUp        = 259
	CodeLeft      = 260
	CodeRight     = 261
	CodeHome      = 262
	CodeBackspace = 263
	CodeDelete    = 330
	CodeInsert    = 331
	CodePageDown  = 338
	CodePageUp    = 339
	CodePadEnter  = 343
	CodeEnd       = 360
)

// DefaultKeyMap returns the key map installed by NewIO.
func DefaultKeyMap() [KeyCount]int {
	var m [KeyCount]int
	m[KeyTab] = CodeTab
	m[KeyLeftArrow] = CodeLeft
	m[KeyRightArrow] = CodeRight
	m[KeyUpArrow] = CodeUp
	m[KeyDownArrow] = CodeDown
	m[KeyPageUp] = CodePageUp
	m[KeyPageDown] = CodePageDown
	m[KeyHome] = CodeHome
	m[KeyEnd] = CodeEnd
	m[KeyInsert] = CodeInsert
	m[KeyDelete] = CodeDelete
	m[KeyBackspace] = CodeBackspace
	m[KeySpace] = CodeSpace
	m[KeyEnter] = CodeEnter
	m[KeyEscape] = CodeEscape
	m[KeyPadEnter] = CodePadEnter
	m[KeyA] = 1
	m[KeyC] = 3
	m[KeyV] = 22
	m[KeyX] = 24
	m[KeyY] = 25
	m[KeyZ] = 26
	return m
}
