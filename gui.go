package imui

import "errors"

// Renderer is the interface for backends that execute draw data.
type Renderer interface {
	Render(d *DrawData) error
	Resize(width, height int)
}

// RenderSurface ends s, resizes r to the surface size and hands it the draw
// data. The draw data is rendered even when the frame had an allocation
// failure; both errors are returned.
func RenderSurface(s *Surface, r Renderer) error {
	d, buildErr := s.End()
	r.Resize(int(d.Size.X), int(d.Size.Y))
	renderErr := r.Render(d)
	return errors.Join(buildErr, renderErr)
}
