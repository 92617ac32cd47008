// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"time"

	"github.com/gogpu/quadgfx"
)

// Flag describes what happened to the key of an Event.
type Flag uint8

// Event flags.
const (
	FlagPress Flag = 1 << iota
	FlagRelease
)

// Event is one entry of the per-frame input queue. Typed characters carry
// Unicode and KeyUnknown. Key edges carry Unicode 0.
type Event struct {
	Unicode rune
	Key     Key
	Flags   Flag
}

// doubleClickTime is the longest gap between two left button releases
// that counts as a double-click.
const doubleClickTime = time.Second / 3

// keyBuffer holds the key state of one logical input frame.
type keyBuffer struct {
	pressed [KeyLast]bool
	presses [KeyLast]int
}

func (b *keyBuffer) reset() {
	clear(b.pressed[:])
	clear(b.presses[:])
}

// Sampler polls the input devices once per frame and turns raw state into
// key edges, press counts and a bounded event queue.
//
// Game logic reads the active buffer. After it has consumed a frame it
// calls MarkDispatched; the next Update retires the active buffer and
// starts a clean one.
//
// Sampler is not safe for concurrent use.
type Sampler struct {
	cfg    quadgfx.Config
	poller Poller
	window Window
	clock  func() time.Time
	tables *compiledTables
	quit   uint32

	active     *keyBuffer
	retired    *keyBuffer
	buffers    [2]keyBuffer
	dispatched bool

	events    []Event
	maxEvents int

	prevMatrix     [matrixSize]uint8
	prevMouse      uint32
	prevController uint32
	last           Snapshot

	lastRelease  time.Time
	releaseDelta time.Duration

	grabbed      bool
	videoRestart bool
}

// New compiles the code tables and returns a sampler reading from poller.
func New(cfg quadgfx.Config, poller Poller, opts ...Option) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tables, err := compileTables(o.keyboard, o.mouse, o.controller)
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		cfg:          cfg,
		poller:       poller,
		window:       o.window,
		clock:        o.clock,
		tables:       tables,
		quit:         o.quitCombo,
		maxEvents:    cfg.InputBufferSize,
		events:       make([]Event, 0, cfg.InputBufferSize),
		releaseDelta: -1,
	}
	s.active = &s.buffers[0]
	s.retired = &s.buffers[1]

	quadgfx.Logger().Info("input: sampler initialized",
		"keyboard_codes", len(o.keyboard),
		"mouse_buttons", len(tables.mouse),
		"controller_buttons", len(tables.controller),
		"buffer", s.maxEvents)
	return s, nil
}

// swap retires the active buffer and clears the new one.
func (s *Sampler) swap() {
	s.active, s.retired = s.retired, s.active
	s.active.reset()
}

// Update samples the devices once. It reports true when the platform or
// the controller quit combo asks the application to close.
func (s *Sampler) Update() bool {
	if s.grabbed && !s.window.WindowActive() {
		s.MouseModeAbsolute()
	}

	if s.dispatched {
		s.swap()
		s.dispatched = false
	}

	snap := s.poller.Poll()
	s.last = snap

	if snap.Mouse != nil {
		s.handleMouse(snap.Mouse)
	}
	if snap.Keyboard != nil {
		s.handleKeyboard(snap.Keyboard)
	}
	quit := snap.Quit
	if snap.Controller != nil {
		s.handleController(snap.Controller)
		if s.quit != 0 && snap.Controller.Buttons&s.quit == s.quit {
			quit = true
		}
	}
	if snap.Resized {
		s.videoRestart = true
	}
	return quit
}

func (s *Sampler) addEvent(unicode rune, key Key, flags Flag) {
	if len(s.events) < s.maxEvents {
		s.events = append(s.events, Event{Unicode: unicode, Key: key, Flags: flags})
	}
}

func (s *Sampler) press(k Key) {
	s.active.presses[k]++
	s.active.pressed[k] = true
	s.addEvent(0, k, FlagPress)
}

func (s *Sampler) release(k Key) {
	s.active.presses[k]++
	s.addEvent(0, k, FlagRelease)
}

func (s *Sampler) handleKeyboard(kbd *KeyboardState) {
	for _, r := range kbd.Chars {
		if r != 0 {
			s.addEvent(r, KeyUnknown, FlagPress)
		}
	}

	for code, state := range kbd.Matrix {
		if state == s.prevMatrix[code] {
			continue
		}
		key := s.tables.keyboard[code]
		if key == KeyUnknown {
			continue
		}
		if state != 0 {
			s.press(key)
		} else {
			s.release(key)
		}
	}
	s.prevMatrix = kbd.Matrix
}

func (s *Sampler) handleMouse(m *MouseState) {
	down := m.Buttons &^ s.prevMouse
	up := s.prevMouse &^ m.Buttons

	for _, b := range s.tables.mouse {
		if m.Buttons&b.Code != 0 {
			s.active.pressed[b.Key] = true
		}
		if down&b.Code != 0 {
			s.press(b.Key)
		}
	}
	for _, b := range s.tables.mouse {
		if up&b.Code == 0 {
			continue
		}
		if b.Code == MouseLeft {
			s.recordLeftRelease()
		}
		s.release(b.Key)
	}

	switch {
	case m.DZ > 0:
		s.press(KeyMouseWheelDown)
	case m.DZ < 0:
		s.press(KeyMouseWheelUp)
	}
	s.prevMouse = m.Buttons
}

func (s *Sampler) recordLeftRelease() {
	now := s.clock()
	if s.lastRelease.IsZero() {
		s.releaseDelta = -1
	} else {
		s.releaseDelta = now.Sub(s.lastRelease)
	}
	s.lastRelease = now
}

func (s *Sampler) handleController(c *ControllerState) {
	down := c.Buttons &^ s.prevController
	up := s.prevController &^ c.Buttons

	for _, b := range s.tables.controller {
		switch {
		case down&b.Button != 0:
			for _, k := range b.Keys {
				s.press(k)
			}
		case up&b.Button != 0:
			for _, k := range b.Keys {
				s.release(k)
			}
		case c.Buttons&b.Button != 0:
			for _, k := range b.Keys {
				s.active.pressed[k] = true
			}
		}
	}
	s.prevController = c.Buttons
}

// MarkDispatched records that game logic consumed the active buffer. The
// next Update swaps buffers.
func (s *Sampler) MarkDispatched() { s.dispatched = true }

// KeyPressed reports whether k was held at any point of the active frame.
func (s *Sampler) KeyPressed(k Key) bool {
	return k < KeyLast && s.active.pressed[k]
}

// KeyPresses returns the number of press and release edges of k in the
// active frame.
func (s *Sampler) KeyPresses(k Key) int {
	if k >= KeyLast {
		return 0
	}
	return s.active.presses[k]
}

// KeyWasPressed reports whether k was held in the retired frame.
func (s *Sampler) KeyWasPressed(k Key) bool {
	return k < KeyLast && s.retired.pressed[k]
}

// KeyDown reports whether k went down in the active frame.
func (s *Sampler) KeyDown(k Key) bool {
	return s.KeyPressed(k) && !s.KeyWasPressed(k)
}

// Events returns the queued events. The slice is valid until the next
// Update or ClearEvents.
func (s *Sampler) Events() []Event { return s.events }

// NumEvents returns the number of queued events.
func (s *Sampler) NumEvents() int { return len(s.events) }

// Event returns the i-th queued event.
func (s *Sampler) Event(i int) Event { return s.events[i] }

// ClearEvents empties the event queue.
func (s *Sampler) ClearEvents() { s.events = s.events[:0] }

// MouseDoubleClick reports whether the last two left button releases were
// less than a third of a second apart. A detected double-click is consumed.
func (s *Sampler) MouseDoubleClick() bool {
	if s.releaseDelta >= 0 && s.releaseDelta < doubleClickTime {
		s.lastRelease = time.Time{}
		s.releaseDelta = -1
		return true
	}
	return false
}

// MouseRelative returns the mouse motion of the last Update scaled by the
// configured sensitivity.
func (s *Sampler) MouseRelative() (x, y float32) {
	m := s.last.Mouse
	if m == nil {
		return 0, 0
	}
	sens := s.cfg.MouseSens
	if s.cfg.Dyncam && s.cfg.DyncamMouseSens != 0 {
		sens = s.cfg.DyncamMouseSens
	}
	f := float32(sens) / 100
	return float32(m.DX) * f, float32(m.DY) * f
}

// MouseModeAbsolute releases the mouse grab.
func (s *Sampler) MouseModeAbsolute() { s.grabbed = false }

// MouseModeRelative grabs the mouse. The grab is released by Update while
// the window has no focus.
func (s *Sampler) MouseModeRelative() { s.grabbed = true }

// MouseGrabbed reports whether the mouse is in relative mode.
func (s *Sampler) MouseGrabbed() bool { return s.grabbed }

// ClearKeyStates zeroes both key buffers.
func (s *Sampler) ClearKeyStates() {
	s.buffers[0].reset()
	s.buffers[1].reset()
}

// VideoRestartNeeded reports, once, that the window surface was resized.
func (s *Sampler) VideoRestartNeeded() bool {
	if s.videoRestart {
		s.videoRestart = false
		return true
	}
	return false
}
