// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

// Key is a unified key code. Keyboard keys come first, followed by the
// mouse buttons and wheel directions.
type Key uint16

// Keyboard keys.
const (
	KeyUnknown Key = iota

	KeyBackspace
	KeyTab
	KeyReturn
	KeyPause
	KeyEscape
	KeySpace
	KeyQuote
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySemicolon
	KeyEquals
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyBackquote
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyDelete

	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPPeriod
	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter

	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyNumLock
	KeyCapsLock
	KeyScrollLock
	KeyPrint

	// Synthetic mouse keys.
	KeyMouse1
	KeyMouse2
	KeyMouse3
	KeyMouseWheelUp
	KeyMouseWheelDown

	// KeyLast is the size of the key space.
	KeyLast
)

var keyNames = [KeyLast]string{
	KeyUnknown:        "unknown",
	KeyBackspace:      "backspace",
	KeyTab:            "tab",
	KeyReturn:         "return",
	KeyPause:          "pause",
	KeyEscape:         "escape",
	KeySpace:          "space",
	KeyQuote:          "quote",
	KeyComma:          "comma",
	KeyMinus:          "minus",
	KeyPeriod:         "period",
	KeySlash:          "slash",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeySemicolon:      "semicolon",
	KeyEquals:         "equals",
	KeyLeftBracket:    "leftbracket",
	KeyBackslash:      "backslash",
	KeyRightBracket:   "rightbracket",
	KeyBackquote:      "backquote",
	KeyA:              "a",
	KeyB:              "b",
	KeyC:              "c",
	KeyD:              "d",
	KeyE:              "e",
	KeyF:              "f",
	KeyG:              "g",
	KeyH:              "h",
	KeyI:              "i",
	KeyJ:              "j",
	KeyK:              "k",
	KeyL:              "l",
	KeyM:              "m",
	KeyN:              "n",
	KeyO:              "o",
	KeyP:              "p",
	KeyQ:              "q",
	KeyR:              "r",
	KeyS:              "s",
	KeyT:              "t",
	KeyU:              "u",
	KeyV:              "v",
	KeyW:              "w",
	KeyX:              "x",
	KeyY:              "y",
	KeyZ:              "z",
	KeyDelete:         "delete",
	KeyKP0:            "kp0",
	KeyKP1:            "kp1",
	KeyKP2:            "kp2",
	KeyKP3:            "kp3",
	KeyKP4:            "kp4",
	KeyKP5:            "kp5",
	KeyKP6:            "kp6",
	KeyKP7:            "kp7",
	KeyKP8:            "kp8",
	KeyKP9:            "kp9",
	KeyKPPeriod:       "kp_period",
	KeyKPDivide:       "kp_divide",
	KeyKPMultiply:     "kp_multiply",
	KeyKPMinus:        "kp_minus",
	KeyKPPlus:         "kp_plus",
	KeyKPEnter:        "kp_enter",
	KeyUp:             "up",
	KeyDown:           "down",
	KeyRight:          "right",
	KeyLeft:           "left",
	KeyInsert:         "insert",
	KeyHome:           "home",
	KeyEnd:            "end",
	KeyPageUp:         "pageup",
	KeyPageDown:       "pagedown",
	KeyF1:             "f1",
	KeyF2:             "f2",
	KeyF3:             "f3",
	KeyF4:             "f4",
	KeyF5:             "f5",
	KeyF6:             "f6",
	KeyF7:             "f7",
	KeyF8:             "f8",
	KeyF9:             "f9",
	KeyF10:            "f10",
	KeyF11:            "f11",
	KeyF12:            "f12",
	KeyNumLock:        "numlock",
	KeyCapsLock:       "capslock",
	KeyScrollLock:     "scrollock",
	KeyPrint:          "print",
	KeyMouse1:         "mouse1",
	KeyMouse2:         "mouse2",
	KeyMouse3:         "mouse3",
	KeyMouseWheelUp:   "mousewheelup",
	KeyMouseWheelDown: "mousewheeldown",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	return m
}()

// String returns the key name used in bindings, e.g. "a", "kp_enter" or
// "mouse1".
func (k Key) String() string {
	if k < KeyLast {
		return keyNames[k]
	}
	return "unknown"
}

// IsValid reports whether k is a real key.
func (k Key) IsValid() bool {
	return k > KeyUnknown && k < KeyLast
}

// IsMouse reports whether k is one of the synthetic mouse keys.
func (k Key) IsMouse() bool {
	return k >= KeyMouse1 && k < KeyLast
}

// KeyByName returns the key with the given name.
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}
