package quadgfx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and the loaders when a field is
// out of range.
var ErrInvalidConfig = errors.New("quadgfx: invalid config")

// Texture quality tiers.
const (
	TextureQualityLow  = 0
	TextureQualityHigh = 1
)

// Default capacities.
const (
	DefaultMaxVertices     = 32 * 1024
	DefaultMaxTextures     = 1024 * 4
	DefaultInputBufferSize = 32
)

// minVertices is the smallest vertex capacity that still fits one
// triangulated quad.
const minVertices = 6

// Config holds every setting the renderer and the input sampler consume.
// Zero values are not meaningful; start from DefaultConfig.
type Config struct {
	// ScreenWidth and ScreenHeight are the backbuffer size in pixels.
	ScreenWidth  int `yaml:"gfx_screen_width"`
	ScreenHeight int `yaml:"gfx_screen_height"`

	// TextureQuality 0 halves every texture larger than 16x16 on load.
	TextureQuality int `yaml:"gfx_texture_quality"`

	// QuadsAsTriangles selects triangle-list submission instead of quads.
	QuadsAsTriangles bool `yaml:"gfx_quads_as_triangles"`

	// MaxVertices is the vertex batch capacity.
	MaxVertices int `yaml:"gfx_max_vertices"`

	// MaxTextures is the texture table size, including the invalid texture.
	MaxTextures int `yaml:"gfx_max_textures"`

	// Stress makes texture loads skip allocation and return the invalid texture.
	Stress bool `yaml:"dbg_stress"`

	// Debug enables per-texture load diagnostics.
	Debug bool `yaml:"debug"`

	MouseSens       int  `yaml:"inp_mousesens"`
	Dyncam          bool `yaml:"cl_dyncam"`
	DyncamMouseSens int  `yaml:"cl_dyncam_mousesens"`

	// InputBufferSize bounds the per-frame input event queue.
	InputBufferSize int `yaml:"inp_buffer_size"`

	// Screenshot toggles. Screen capture is not implemented by this backend;
	// the values are accepted so shared config files keep loading.
	Screenshot    bool `yaml:"cl_screenshot"`
	ScreenshotPNG bool `yaml:"gfx_screenshot_png"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      640,
		ScreenHeight:     480,
		TextureQuality:   TextureQualityHigh,
		QuadsAsTriangles: true,
		MaxVertices:      DefaultMaxVertices,
		MaxTextures:      DefaultMaxTextures,
		MouseSens:        100,
		InputBufferSize:  DefaultInputBufferSize,
		ScreenshotPNG:    true,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TextureQuality != TextureQualityLow && c.TextureQuality != TextureQualityHigh:
		return fmt.Errorf("%w: texture quality %d", ErrInvalidConfig, c.TextureQuality)
	case c.MaxVertices < minVertices:
		return fmt.Errorf("%w: max vertices %d < %d", ErrInvalidConfig, c.MaxVertices, minVertices)
	case c.MaxTextures < 1:
		return fmt.Errorf("%w: max textures %d", ErrInvalidConfig, c.MaxTextures)
	case c.InputBufferSize < 1:
		return fmt.Errorf("%w: input buffer size %d", ErrInvalidConfig, c.InputBufferSize)
	case c.MouseSens < 0 || c.DyncamMouseSens < 0:
		return fmt.Errorf("%w: negative mouse sensitivity", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads YAML from r on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("quadgfx: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig for a file on disk.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("quadgfx: open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
