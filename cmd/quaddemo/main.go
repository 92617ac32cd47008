// Command quaddemo drives a few frames of the quadgfx renderer and input
// sampler against a recording device and reports what reached the device.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/quadgfx"
	"github.com/gogpu/quadgfx/gfx"
	"github.com/gogpu/quadgfx/input"
	"github.com/gogpu/quadgfx/recording"
	"github.com/gogpu/quadgfx/render"
	"github.com/gogpu/quadgfx/storage"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		frames     = flag.Int("frames", 8, "number of frames to render")
		data       = flag.String("data", ".", "data directory for textures")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	quadgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := quadgfx.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = quadgfx.LoadConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.Debug = cfg.Debug || *verbose

	rec := recording.NewRecorder(render.DefaultCapabilities())
	g, err := gfx.New(cfg, gfx.WithDevice(rec), gfx.WithStorage(storage.NewDirs(*data)))
	if err != nil {
		log.Fatalf("Failed to init graphics: %v", err)
	}
	defer g.Shutdown()

	in, err := input.New(cfg, scriptedPoller(*frames), input.WithWindow(g))
	if err != nil {
		log.Fatalf("Failed to init input: %v", err)
	}

	font := g.LoadFontAtlas(16)
	sprite := g.LoadTexture("sprite.png", storage.TypeAll, gfx.StoreAuto, 0)

	for frame := range *frames {
		if in.Update() {
			break
		}
		drawFrame(g, frame, font, sprite, in)
		in.ClearEvents()
		in.MarkDispatched()
		g.Swap()
	}

	stats := rec.Stats()
	quadgfx.Logger().Info("quaddemo: done",
		"submits", stats[recording.CmdSubmit],
		"vertices", rec.SubmittedVertices(),
		"uploads", stats[recording.CmdCreateTexture],
		"presents", stats[recording.CmdPresent],
		"textures", g.TextureStats().String())
}

func drawFrame(g *gfx.Graphics, frame int, font, sprite gfx.TextureID, in *input.Sampler) {
	w, h := float32(g.ScreenWidth()), float32(g.ScreenHeight())
	g.MapScreen(0, 0, w, h)
	g.Clear(0.1, 0.1, 0.15)
	g.BlendNormal()

	// Spinning sprite in the middle of the screen.
	g.TextureSet(sprite)
	g.QuadsBegin()
	g.QuadsSetRotation(float32(frame) * math.Pi / 16)
	g.QuadsDraw(gfx.QuadItem{X: w / 2, Y: h / 2, Width: 128, Height: 128})
	g.QuadsEnd()

	// Color ramp along the bottom edge.
	g.TextureSet(gfx.NoTexture)
	g.QuadsBegin()
	g.SetColorVertex(
		gfx.ColorVertex{Index: gfx.CornerTopLeft, R: 1, A: 1},
		gfx.ColorVertex{Index: gfx.CornerTopRight, B: 1, A: 1},
		gfx.ColorVertex{Index: gfx.CornerBottomRight, B: 1, A: 1},
		gfx.ColorVertex{Index: gfx.CornerBottomLeft, R: 1, A: 1},
	)
	g.QuadsDrawTL(gfx.QuadItem{X: 0, Y: h - 32, Width: w, Height: 32})
	g.QuadsEnd()

	g.LinesBegin()
	g.SetColor(1, 1, 1, 1)
	g.LinesDraw(
		gfx.LineItem{X0: 0, Y0: 0, X1: w, Y1: h},
		gfx.LineItem{X0: w, Y0: 0, X1: 0, Y1: h},
	)
	g.LinesEnd()

	g.ClipEnable(8, 8, int(w)-16, 64)
	g.TextureSet(font)
	g.QuadsBegin()
	g.SetColor(1, 1, 0.5, 1)
	g.QuadsText(8, 8, 16, "quadgfx demo\nkeys: "+pressedKeys(in))
	g.QuadsEnd()
	g.ClipDisable()
}

func pressedKeys(in *input.Sampler) string {
	var out string
	for _, ev := range in.Events() {
		if ev.Flags&input.FlagPress == 0 || ev.Key == input.KeyUnknown {
			continue
		}
		if out != "" {
			out += " "
		}
		out += ev.Key.String()
	}
	return out
}

// scriptedPoller types a word, clicks and scrolls over the first frames.
func scriptedPoller(frames int) input.Poller {
	const word = "quad"
	n := 0
	return input.PollerFunc(func() input.Snapshot {
		defer func() { n++ }()
		snap := input.Snapshot{
			Keyboard: &input.KeyboardState{},
			Mouse:    &input.MouseState{DX: 1},
		}
		if n < len(word) {
			r := rune(word[n])
			snap.Keyboard.Chars = []rune{r}
			snap.Keyboard.Matrix[0x04+r-'a'] = 1
		}
		if n%2 == 1 {
			snap.Mouse.Buttons = input.MouseLeft
		}
		if n == frames-1 {
			snap.Mouse.DZ = 1
		}
		return snap
	})
}
