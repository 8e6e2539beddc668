package imui

// Frame is the handle for one frame, valid between Context.BeginFrame and
// Context.EndFrame.
type Frame struct {
	ctx *Context
}

// Number returns the frame number, starting at 1.
func (f *Frame) Number() uint64 { return f.ctx.frame }

// Input returns the input state widgets read during this frame.
func (f *Frame) Input() *Input { return f.ctx.input }

// TextLayout returns the cached layout of text in font.
func (f *Frame) TextLayout(font *Font, text string) *TextLayout {
	return f.ctx.text.Layout(font, text)
}

// Context returns the owning context.
func (f *Frame) Context() *Context { return f.ctx }
