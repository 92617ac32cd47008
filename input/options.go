// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "time"

// Window reports whether the application window has input focus.
// *gfx.Graphics implements it.
type Window interface {
	WindowActive() bool
}

type alwaysActive struct{}

func (alwaysActive) WindowActive() bool { return true }

// Option configures a Sampler during creation.
type Option func(*options)

type options struct {
	clock      func() time.Time
	window     Window
	keyboard   KeyboardTable
	mouse      MouseTable
	controller ControllerTable
	quitCombo  uint32
}

func defaultOptions() options {
	return options{
		clock:      time.Now,
		window:     alwaysActive{},
		keyboard:   DefaultKeyboardTable(),
		mouse:      DefaultMouseTable(),
		controller: DefaultControllerTable(),
		quitCombo:  DefaultQuitCombo,
	}
}

// WithClock sets the time source used for double-click detection.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithWindow sets the window whose focus controls the mouse grab.
func WithWindow(w Window) Option {
	return func(o *options) {
		if w != nil {
			o.window = w
		}
	}
}

// WithKeyboardTable replaces the keyboard mapping.
func WithKeyboardTable(t KeyboardTable) Option {
	return func(o *options) { o.keyboard = t }
}

// WithMouseTable replaces the mouse button mapping.
func WithMouseTable(t MouseTable) Option {
	return func(o *options) { o.mouse = t }
}

// WithControllerTable replaces the controller button mapping.
func WithControllerTable(t ControllerTable) Option {
	return func(o *options) { o.controller = t }
}

// WithQuitCombo sets the controller buttons that, held together, make
// Update report quit. Zero disables the combo.
func WithQuitCombo(mask uint32) Option {
	return func(o *options) { o.quitCombo = mask }
}
