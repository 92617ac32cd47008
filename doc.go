// Package quadgfx is an immediate-mode 2D quad renderer and per-frame input
// sampler for small action game clients.
//
// # Overview
//
// Game and UI code opens a drawing scope, sets color, texture and rotation
// state, emits primitives and closes the scope. Primitives are written into
// a fixed-size vertex batch that is flushed to a render.Device whenever it
// fills up or a scope ends. Textures live in a fixed-size table whose slot 0
// always holds a fallback texture, so failed loads still draw something.
//
// Input is sampled once per tick. Raw keyboard, mouse and controller state
// is translated through declarative code tables into one key space, and
// edges are collected into a double-buffered key state plus a bounded
// event queue.
//
// # Quick Start
//
//	cfg := quadgfx.DefaultConfig()
//	g, err := gfx.New(cfg, gfx.WithDevice(dev))
//	if err != nil {
//	    return err
//	}
//	defer g.Shutdown()
//
//	g.QuadsBegin()
//	g.SetColor(1, 0, 0, 1)
//	g.QuadsDrawTL(gfx.QuadItem{X: 10, Y: 10, Width: 32, Height: 32})
//	g.QuadsEnd()
//	g.Swap()
//
// # Architecture
//
// The module is organized into:
//   - quadgfx: Config (YAML) and the shared slog logger
//   - render: the Device contract, vertices and the null device
//   - gfx: Graphics (batch, builders, texture table, frame state)
//   - input: Key space, code tables and the Sampler
//   - storage: search-path and fs.FS file resolution
//   - recording: a Device that records every call, for tests and tools
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to route diagnostics to any
// slog.Handler.
package quadgfx
