package ui

import "testing"

func TestNewIOInstallsDefaultKeyMap(t *testing.T) {
	io := NewIO()
	if io.KeyMap[KeyEnter] != CodeEnter {
		t.Errorf("KeyMap[KeyEnter] = %d, want %d", io.KeyMap[KeyEnter], CodeEnter)
	}
	if io.KeyMap[KeyLeftArrow] != CodeLeft {
		t.Errorf("KeyMap[KeyLeftArrow] = %d, want %d", io.KeyMap[KeyLeftArrow], CodeLeft)
	}
	if io.KeyMap[KeyA] != 1 || io.KeyMap[KeyZ] != 26 {
		t.Error("clipboard slots should map to control-character codes")
	}
}

func TestResetFrameClearsTransients(t *testing.T) {
	io := NewIO()
	io.PressKey(KeyDelete)
	io.KeyCtrl = true
	io.KeyAlt = true
	io.MouseWheel = 2
	io.AddInputCharactersUTF8("abc")

	// Persistent state.
	io.MouseX, io.MouseY = 12, 7
	io.MouseDown[0] = true

	io.ResetFrame()

	if io.IsKeyDown(KeyDelete) {
		t.Error("key-down flags should be cleared")
	}
	if io.KeyCtrl || io.KeyAlt {
		t.Error("modifiers should be cleared")
	}
	if io.MouseWheel != 0 {
		t.Error("wheel delta should be cleared")
	}
	if len(io.InputChars) != 0 {
		t.Error("input characters should be cleared")
	}
	if io.MouseX != 12 || io.MouseY != 7 || !io.MouseDown[0] {
		t.Error("mouse position and button state must persist")
	}
}

func TestSetKeyDownMasksCode(t *testing.T) {
	io := NewIO()
	io.SetKeyDown(MaxKeyCode + 5) // must not panic
	if !io.KeysDown[5] {
		t.Error("out of range codes wrap into the key array")
	}
}

func TestAddInputCharactersUTF8(t *testing.T) {
	io := NewIO()
	io.AddInputCharactersUTF8("hé")
	if len(io.InputChars) != 2 || io.InputChars[1] != 'é' {
		t.Errorf("InputChars = %q", string(io.InputChars))
	}
}
