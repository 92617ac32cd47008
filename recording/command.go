// Package recording provides a render.Device that records every call as a
// typed command instead of drawing.
//
// Recording devices back the renderer's tests and the demo command: after a
// frame, the recorded submissions show exactly which vertices reached the
// device, in which topology, and with which texture and blend state.
//
// # Example
//
//	rec := recording.NewRecorder(render.DefaultCapabilities())
//	g, _ := gfx.New(cfg, gfx.WithDevice(rec))
//	g.QuadsBegin()
//	g.QuadsDrawTL(gfx.QuadItem{X: 0, Y: 0, Width: 32, Height: 32})
//	g.QuadsEnd()
//	for _, s := range rec.Submissions() {
//	    fmt.Println(len(s.Vertices), s.Topology)
//	}
package recording

import "github.com/gogpu/quadgfx/render"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSubmit        CommandType = iota // Draw a vertex batch
	CmdCreateTexture                    // Upload a texture
	CmdUpdateTexture                    // Replace a texture region
	CmdDeleteTexture                    // Release a texture
	CmdBindTexture                      // Select a texture
	CmdUnbindTexture                    // Disable texturing
	CmdSetBlend                         // Change blend mode
	CmdSetWrap                          // Change wrap mode
	CmdSetScissor                       // Enable the scissor rectangle
	CmdClearScissor                     // Disable the scissor rectangle
	CmdSetProjection                    // Map a world rectangle to the viewport
	CmdClear                            // Clear the backbuffer
	CmdPresent                          // Swap buffers
)

var commandTypeNames = [...]string{
	CmdSubmit:        "Submit",
	CmdCreateTexture: "CreateTexture",
	CmdUpdateTexture: "UpdateTexture",
	CmdDeleteTexture: "DeleteTexture",
	CmdBindTexture:   "BindTexture",
	CmdUnbindTexture: "UnbindTexture",
	CmdSetBlend:      "SetBlend",
	CmdSetWrap:       "SetWrap",
	CmdSetScissor:    "SetScissor",
	CmdClearScissor:  "ClearScissor",
	CmdSetProjection: "SetProjection",
	CmdClear:         "Clear",
	CmdPresent:       "Present",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SubmitCommand holds a copy of a submitted vertex batch.
type SubmitCommand struct {
	Vertices []render.Vertex
	Topology render.Topology
	Texture  render.TextureID
	Textured bool
	Blend    render.BlendMode
}

// CreateTextureCommand records a texture upload.
type CreateTextureCommand struct {
	ID     render.TextureID
	Desc   render.TextureDescriptor
	Pixels []byte
}

// UpdateTextureCommand records a partial texture upload.
type UpdateTextureCommand struct {
	ID         render.TextureID
	X, Y, W, H int
	Format     render.PixelFormat
	Pixels     []byte
}

// DeleteTextureCommand records a texture release.
type DeleteTextureCommand struct {
	ID render.TextureID
}

// BindTextureCommand records a texture selection.
type BindTextureCommand struct {
	ID render.TextureID
}

// UnbindTextureCommand records that texturing was disabled.
type UnbindTextureCommand struct{}

// SetBlendCommand records a blend mode change.
type SetBlendCommand struct {
	Mode render.BlendMode
}

// SetWrapCommand records a wrap mode change.
type SetWrapCommand struct {
	Mode render.WrapMode
}

// SetScissorCommand records a scissor rectangle (bottom-left origin).
type SetScissorCommand struct {
	X, Y, W, H int
}

// ClearScissorCommand records that scissoring was disabled.
type ClearScissorCommand struct{}

// SetProjectionCommand records a world-to-viewport mapping.
type SetProjectionCommand struct {
	Left, Top, Right, Bottom float32
}

// ClearCommand records a backbuffer clear.
type ClearCommand struct {
	R, G, B float32
}

// PresentCommand records a buffer swap.
type PresentCommand struct{}

func (SubmitCommand) Type() CommandType        { return CmdSubmit }
func (CreateTextureCommand) Type() CommandType { return CmdCreateTexture }
func (UpdateTextureCommand) Type() CommandType { return CmdUpdateTexture }
func (DeleteTextureCommand) Type() CommandType { return CmdDeleteTexture }
func (BindTextureCommand) Type() CommandType   { return CmdBindTexture }
func (UnbindTextureCommand) Type() CommandType { return CmdUnbindTexture }
func (SetBlendCommand) Type() CommandType      { return CmdSetBlend }
func (SetWrapCommand) Type() CommandType       { return CmdSetWrap }
func (SetScissorCommand) Type() CommandType    { return CmdSetScissor }
func (ClearScissorCommand) Type() CommandType  { return CmdClearScissor }
func (SetProjectionCommand) Type() CommandType { return CmdSetProjection }
func (ClearCommand) Type() CommandType         { return CmdClear }
func (PresentCommand) Type() CommandType       { return CmdPresent }
