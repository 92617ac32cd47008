// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

// Table validation errors.
var (
	ErrUnknownKey    = errors.New("input: binding to unknown key")
	ErrDuplicateCode = errors.New("input: raw code bound twice")
	ErrBadCode       = errors.New("input: raw code out of range")
)

// Binding maps one raw device code to a key.
type Binding struct {
	Code uint32
	Key  Key
}

// ControllerBinding maps a controller button to one or more keys.
type ControllerBinding struct {
	Button uint32
	Keys   []Key
}

// KeyboardTable maps keyboard matrix indices (USB HID usage IDs) to keys.
type KeyboardTable []Binding

// MouseTable maps single mouse button bits to keys.
type MouseTable []Binding

// ControllerTable maps single controller button bits to keys.
type ControllerTable []ControllerBinding

// Mouse button bits used by DefaultMouseTable.
const (
	MouseLeft   uint32 = 1 << 0
	MouseRight  uint32 = 1 << 1
	MouseMiddle uint32 = 1 << 2
)

// Controller button bits used by DefaultControllerTable.
const (
	ButtonA uint32 = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonTriggerL
	ButtonTriggerR
)

// DefaultQuitCombo is the controller chord that requests quit.
const DefaultQuitCombo = ButtonStart | ButtonA | ButtonB | ButtonX | ButtonY

// matrixSize is the number of keyboard matrix entries.
const matrixSize = 256

// DefaultKeyboardTable returns the USB HID keyboard usage mapping.
func DefaultKeyboardTable() KeyboardTable {
	t := KeyboardTable{
		{0x27, Key0},
		{0x28, KeyReturn},
		{0x29, KeyEscape},
		{0x2a, KeyBackspace},
		{0x2b, KeyTab},
		{0x2c, KeySpace},
		{0x2d, KeyMinus},
		{0x2e, KeyEquals},
		{0x2f, KeyLeftBracket},
		{0x30, KeyRightBracket},
		{0x31, KeyBackslash},
		{0x33, KeySemicolon},
		{0x34, KeyQuote},
		{0x35, KeyBackquote},
		{0x36, KeyComma},
		{0x37, KeyPeriod},
		{0x38, KeySlash},
		{0x39, KeyCapsLock},
		{0x46, KeyPrint},
		{0x47, KeyScrollLock},
		{0x48, KeyPause},
		{0x49, KeyInsert},
		{0x4a, KeyHome},
		{0x4b, KeyPageUp},
		{0x4c, KeyDelete},
		{0x4d, KeyEnd},
		{0x4e, KeyPageDown},
		{0x4f, KeyRight},
		{0x50, KeyLeft},
		{0x51, KeyDown},
		{0x52, KeyUp},
		{0x53, KeyNumLock},
		{0x54, KeyKPDivide},
		{0x55, KeyKPMultiply},
		{0x56, KeyKPMinus},
		{0x57, KeyKPPlus},
		{0x58, KeyKPEnter},
		{0x62, KeyKP0},
		{0x63, KeyKPPeriod},
	}
	for i := range 26 {
		t = append(t, Binding{Code: 0x04 + uint32(i), Key: KeyA + Key(i)})
	}
	for i := range 9 {
		t = append(t, Binding{Code: 0x1e + uint32(i), Key: Key1 + Key(i)})
		t = append(t, Binding{Code: 0x59 + uint32(i), Key: KeyKP1 + Key(i)})
	}
	for i := range 12 {
		t = append(t, Binding{Code: 0x3a + uint32(i), Key: KeyF1 + Key(i)})
	}
	return t
}

// DefaultMouseTable returns the three-button mouse mapping.
func DefaultMouseTable() MouseTable {
	return MouseTable{
		{MouseLeft, KeyMouse1},
		{MouseRight, KeyMouse2},
		{MouseMiddle, KeyMouse3},
	}
}

// DefaultControllerTable returns a gamepad mapping for menu and movement
// keys.
func DefaultControllerTable() ControllerTable {
	return ControllerTable{
		{ButtonLeft, []Key{KeyA, KeyMinus}},
		{ButtonRight, []Key{KeyD, KeyEquals}},
		{ButtonUp, []Key{KeySpace}},
		{ButtonA, []Key{KeyReturn}},
		{ButtonB, []Key{KeySpace}},
		{ButtonY, []Key{KeyMouse1}},
		{ButtonTriggerL, []Key{KeyMouse2}},
		{ButtonTriggerR, []Key{KeyMouseWheelDown}},
		{ButtonStart, []Key{KeyEscape}},
	}
}

// compiledTables are the validated lookup forms of the tables.
type compiledTables struct {
	keyboard   [matrixSize]Key
	mouse      []Binding
	controller []ControllerBinding
}

func compileTables(kbd KeyboardTable, mouse MouseTable, ctrl ControllerTable) (*compiledTables, error) {
	c := &compiledTables{}

	for _, b := range kbd {
		if b.Code >= matrixSize {
			return nil, fmt.Errorf("%w: keyboard code %#x", ErrBadCode, b.Code)
		}
		if !b.Key.IsValid() {
			return nil, fmt.Errorf("%w: keyboard code %#x -> %d", ErrUnknownKey, b.Code, b.Key)
		}
		if c.keyboard[b.Code] != KeyUnknown {
			return nil, fmt.Errorf("%w: keyboard code %#x", ErrDuplicateCode, b.Code)
		}
		c.keyboard[b.Code] = b.Key
	}

	seen := make(map[uint32]bool)
	for _, b := range mouse {
		if bits.OnesCount32(b.Code) != 1 {
			return nil, fmt.Errorf("%w: mouse button mask %#x", ErrBadCode, b.Code)
		}
		if !b.Key.IsValid() {
			return nil, fmt.Errorf("%w: mouse button %#x -> %d", ErrUnknownKey, b.Code, b.Key)
		}
		if seen[b.Code] {
			return nil, fmt.Errorf("%w: mouse button %#x", ErrDuplicateCode, b.Code)
		}
		seen[b.Code] = true
		c.mouse = append(c.mouse, b)
	}
	slices.SortFunc(c.mouse, func(a, b Binding) int { return cmp.Compare(a.Code, b.Code) })

	clear(seen)
	for _, b := range ctrl {
		if bits.OnesCount32(b.Button) != 1 {
			return nil, fmt.Errorf("%w: controller button mask %#x", ErrBadCode, b.Button)
		}
		if seen[b.Button] {
			return nil, fmt.Errorf("%w: controller button %#x", ErrDuplicateCode, b.Button)
		}
		for _, k := range b.Keys {
			if !k.IsValid() {
				return nil, fmt.Errorf("%w: controller button %#x -> %d", ErrUnknownKey, b.Button, k)
			}
		}
		seen[b.Button] = true
		c.controller = append(c.controller, ControllerBinding{Button: b.Button, Keys: slices.Clone(b.Keys)})
	}
	slices.SortFunc(c.controller, func(a, b ControllerBinding) int { return cmp.Compare(a.Button, b.Button) })

	return c, nil
}
