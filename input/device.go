// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

// KeyboardState is the raw keyboard state of one poll.
type KeyboardState struct {
	// Matrix holds one entry per USB HID usage ID. Nonzero means held.
	Matrix [matrixSize]uint8

	// Chars are the characters typed since the previous poll.
	Chars []rune
}

// MouseState is the raw mouse state of one poll.
type MouseState struct {
	// Buttons is the mask of held buttons.
	Buttons uint32

	// DX and DY are the motion since the previous poll. DZ is the wheel
	// motion: positive scrolls down, negative scrolls up.
	DX, DY, DZ int
}

// ControllerState is the raw game controller state of one poll.
type ControllerState struct {
	Buttons uint32
}

// Snapshot is everything a Poller reports for one frame. A nil device state
// means the device is not connected.
type Snapshot struct {
	Keyboard   *KeyboardState
	Mouse      *MouseState
	Controller *ControllerState

	// Quit is set when the platform asks the application to close.
	Quit bool

	// Resized is set when the window surface changed size.
	Resized bool
}

// Poller reads the platform devices once per frame.
type Poller interface {
	Poll() Snapshot
}

// PollerFunc adapts a function to the Poller interface.
type PollerFunc func() Snapshot

// Poll calls f.
func (f PollerFunc) Poll() Snapshot { return f() }
