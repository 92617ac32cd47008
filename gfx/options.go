// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"io/fs"

	"github.com/gogpu/quadgfx/internal/image"
	"github.com/gogpu/quadgfx/render"
	"github.com/gogpu/quadgfx/storage"
)

// Option configures Graphics during creation.
//
// Example:
//
//	rec := recording.NewRecorder(render.DefaultCapabilities())
//	g, err := gfx.New(cfg, gfx.WithDevice(rec), gfx.WithFS(os.DirFS("data")))
type Option func(*options)

type options struct {
	device  render.Device
	storage storage.Storage
	codec   image.Codec
	host    render.DeviceHandle
	assert  AssertFunc
}

func defaultOptions() options {
	return options{
		device:  &render.NullDevice{},
		storage: storage.NewDirs("."),
		codec:   image.FileCodec{},
		host:    render.NullDeviceHandle{},
		assert:  PanicOnViolation,
	}
}

// WithDevice sets the device vertices and textures are submitted to.
// The default is a render.NullDevice.
func WithDevice(d render.Device) Option {
	return func(o *options) {
		if d != nil {
			o.device = d
		}
	}
}

// WithStorage sets the storage used to resolve texture file names.
// The default searches the working directory.
func WithStorage(s storage.Storage) Option {
	return func(o *options) {
		if s != nil {
			o.storage = s
		}
	}
}

// WithCodec sets the image decoder. It receives the path resolved by the
// storage, so the two must agree on how paths are interpreted.
func WithCodec(c image.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithFS resolves and decodes textures from fsys. It is shorthand for
// WithStorage(storage.FS{FS: fsys}) together with a codec reading the same
// file system.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.storage = storage.FS{FS: fsys}
		o.codec = image.FileCodec{FS: fsys}
	}
}

// WithHost reports the gogpu host the renderer presents through.
func WithHost(h render.DeviceHandle) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithAssert replaces the drawing scope violation policy. If fn returns
// instead of panicking, the call that violated its precondition is skipped.
func WithAssert(fn AssertFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.assert = fn
		}
	}
}
