// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"fmt"

	"github.com/gogpu/quadgfx"
)

// ErrScope is the error wrapped by every *ScopeError.
var ErrScope = errors.New("gfx: drawing scope violation")

// Mode is the drawing scope state.
type Mode uint8

const (
	// ModeIdle is outside any scope.
	ModeIdle Mode = iota

	// ModeLines is between LinesBegin and LinesEnd.
	ModeLines

	// ModeQuads is between QuadsBegin and QuadsEnd.
	ModeQuads
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeLines:
		return "lines"
	case ModeQuads:
		return "quads"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ScopeError describes an operation called in the wrong drawing mode.
type ScopeError struct {
	// Op is the operation that was called, e.g. "QuadsEnd".
	Op string

	// Mode is the mode the renderer was in.
	Mode Mode

	// Reason says what the operation required.
	Reason string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("gfx: called %s %s (mode %s)", e.Op, e.Reason, e.Mode)
}

// Unwrap returns ErrScope.
func (e *ScopeError) Unwrap() error { return ErrScope }

// AssertFunc is called with every drawing scope violation.
type AssertFunc func(err *ScopeError)

// PanicOnViolation is the default AssertFunc.
func PanicOnViolation(err *ScopeError) {
	panic(err)
}

// Mode returns the current drawing scope state.
func (g *Graphics) Mode() Mode {
	return g.mode
}

// require reports whether the renderer is in mode want, running the assert
// policy when it is not.
func (g *Graphics) require(op string, want Mode, reason string) bool {
	if g.mode == want {
		return true
	}
	return g.violation(op, reason)
}

// requireScope reports whether a lines or quads scope is open.
func (g *Graphics) requireScope(op string) bool {
	if g.mode != ModeIdle {
		return true
	}
	return g.violation(op, "without begin")
}

func (g *Graphics) violation(op, reason string) bool {
	err := &ScopeError{Op: op, Mode: g.mode, Reason: reason}
	quadgfx.Logger().Error("gfx: drawing scope violation", "op", op, "mode", g.mode.String(), "reason", reason)
	g.assert(err)
	return false
}

// LinesBegin opens a lines scope and resets the corner colors to white.
func (g *Graphics) LinesBegin() {
	if !g.require("LinesBegin", ModeIdle, "twice") {
		return
	}
	g.mode = ModeLines
	g.setColor(1, 1, 1, 1)
}

// LinesEnd flushes pending lines and closes the scope.
func (g *Graphics) LinesEnd() {
	if !g.require("LinesEnd", ModeLines, "without begin") {
		return
	}
	g.batch.Flush()
	g.mode = ModeIdle
}

// QuadsBegin opens a quads scope. The texture subset is reset to the whole
// texture, the rotation to zero and the corner colors to white.
func (g *Graphics) QuadsBegin() {
	if !g.require("QuadsBegin", ModeIdle, "twice") {
		return
	}
	g.mode = ModeQuads
	g.setSubset(0, 0, 1, 1)
	g.rotation = 0
	g.setColor(1, 1, 1, 1)
}

// QuadsEnd flushes pending quads and closes the scope.
func (g *Graphics) QuadsEnd() {
	if !g.require("QuadsEnd", ModeQuads, "without begin") {
		return
	}
	g.batch.Flush()
	g.mode = ModeIdle
}
