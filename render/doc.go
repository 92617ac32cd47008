// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the device contract the quad renderer draws through.
//
// The renderer never creates a GPU device. The host application supplies a
// Device that accepts vertex submissions, texture uploads and fixed-function
// state changes. Every call is fire-and-forget: the renderer consumes no
// results except texture ids and the capability report.
//
// # Core Types
//
//   - Vertex: position, texture coordinate and RGBA color of one corner
//   - Topology: triangle list or quad list submission
//   - Device: submission, textures, blend/scissor/projection state, clear, present
//   - Window: optional focus/open queries a Device may also implement
//   - DeviceHandle: the gpucontext host provider, for hosts built on gogpu
//
// # Implementations
//
//   - NullDevice: accepts and discards everything (headless servers, benchmarks)
//   - recording.Recorder: records every call for inspection
package render
