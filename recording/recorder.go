package recording

import (
	"slices"

	"github.com/gogpu/quadgfx/render"
)

// Recorder is a render.Device and render.Window that captures calls as
// commands. Submitted vertices and uploaded pixels are copied, so the
// caller may reuse its buffers right after each call returns.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	caps     render.DeviceCapabilities
	commands []Command

	lastID   render.TextureID
	live     map[render.TextureID]bool
	bound    render.TextureID
	textured bool
	blend    render.BlendMode

	active bool
	open   bool
}

// NewRecorder creates a Recorder reporting caps. The window starts focused
// and open.
func NewRecorder(caps render.DeviceCapabilities) *Recorder {
	return &Recorder{
		caps:     caps,
		commands: make([]Command, 0, 64),
		live:     make(map[render.TextureID]bool),
		active:   true,
		open:     true,
	}
}

// Capabilities implements render.Device.
func (r *Recorder) Capabilities() render.DeviceCapabilities {
	return r.caps
}

// Submit implements render.Device.
func (r *Recorder) Submit(vertices []render.Vertex, topology render.Topology) {
	r.commands = append(r.commands, SubmitCommand{
		Vertices: slices.Clone(vertices),
		Topology: topology,
		Texture:  r.bound,
		Textured: r.textured,
		Blend:    r.blend,
	})
}

// CreateTexture implements render.Device.
func (r *Recorder) CreateTexture(desc render.TextureDescriptor, pixels []byte) render.TextureID {
	r.lastID++
	r.live[r.lastID] = true
	r.commands = append(r.commands, CreateTextureCommand{
		ID:     r.lastID,
		Desc:   desc,
		Pixels: slices.Clone(pixels),
	})
	return r.lastID
}

// UpdateTexture implements render.Device.
func (r *Recorder) UpdateTexture(id render.TextureID, x, y, w, h int, format render.PixelFormat, pixels []byte) {
	r.commands = append(r.commands, UpdateTextureCommand{
		ID: id, X: x, Y: y, W: w, H: h,
		Format: format,
		Pixels: slices.Clone(pixels),
	})
}

// DeleteTexture implements render.Device.
func (r *Recorder) DeleteTexture(id render.TextureID) {
	delete(r.live, id)
	r.commands = append(r.commands, DeleteTextureCommand{ID: id})
}

// BindTexture implements render.Device.
func (r *Recorder) BindTexture(id render.TextureID) {
	r.bound, r.textured = id, true
	r.commands = append(r.commands, BindTextureCommand{ID: id})
}

// UnbindTexture implements render.Device.
func (r *Recorder) UnbindTexture() {
	r.bound, r.textured = 0, false
	r.commands = append(r.commands, UnbindTextureCommand{})
}

// SetBlend implements render.Device.
func (r *Recorder) SetBlend(mode render.BlendMode) {
	r.blend = mode
	r.commands = append(r.commands, SetBlendCommand{Mode: mode})
}

// SetWrap implements render.Device.
func (r *Recorder) SetWrap(mode render.WrapMode) {
	r.commands = append(r.commands, SetWrapCommand{Mode: mode})
}

// SetScissor implements render.Device.
func (r *Recorder) SetScissor(x, y, w, h int) {
	r.commands = append(r.commands, SetScissorCommand{X: x, Y: y, W: w, H: h})
}

// ClearScissor implements render.Device.
func (r *Recorder) ClearScissor() {
	r.commands = append(r.commands, ClearScissorCommand{})
}

// SetProjection implements render.Device.
func (r *Recorder) SetProjection(left, top, right, bottom float32) {
	r.commands = append(r.commands, SetProjectionCommand{Left: left, Top: top, Right: right, Bottom: bottom})
}

// Clear implements render.Device.
func (r *Recorder) Clear(red, green, blue float32) {
	r.commands = append(r.commands, ClearCommand{R: red, G: green, B: blue})
}

// Present implements render.Device.
func (r *Recorder) Present() {
	r.commands = append(r.commands, PresentCommand{})
}

// Active implements render.Window.
func (r *Recorder) Active() bool { return r.active }

// Open implements render.Window.
func (r *Recorder) Open() bool { return r.open }

// SetActive sets the reported window focus.
func (r *Recorder) SetActive(active bool) { r.active = active }

// SetOpen sets the reported window state.
func (r *Recorder) SetOpen(open bool) { r.open = open }

// Commands returns every recorded command in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Stats returns the number of recorded commands per type.
func (r *Recorder) Stats() map[CommandType]int {
	stats := make(map[CommandType]int)
	for _, c := range r.commands {
		stats[c.Type()]++
	}
	return stats
}

// Submissions returns the recorded vertex batches in order.
func (r *Recorder) Submissions() []SubmitCommand {
	var out []SubmitCommand
	for _, c := range r.commands {
		if s, ok := c.(SubmitCommand); ok {
			out = append(out, s)
		}
	}
	return out
}

// SubmittedVertices returns the total number of vertices submitted.
func (r *Recorder) SubmittedVertices() int {
	n := 0
	for _, s := range r.Submissions() {
		n += len(s.Vertices)
	}
	return n
}

// Uploads returns the recorded texture uploads in order.
func (r *Recorder) Uploads() []CreateTextureCommand {
	var out []CreateTextureCommand
	for _, c := range r.commands {
		if u, ok := c.(CreateTextureCommand); ok {
			out = append(out, u)
		}
	}
	return out
}

// LiveTextures returns the number of created and not yet deleted textures.
func (r *Recorder) LiveTextures() int {
	return len(r.live)
}

// Reset drops the recorded commands. Texture and binding state is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Ensure Recorder implements the device interfaces.
var (
	_ render.Device = (*Recorder)(nil)
	_ render.Window = (*Recorder)(nil)
)
