// Package snapshot rasterises a laid-out scene to an image without opening
// a window.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/scene"
	"github.com/OpticalFlyer/strata/theme"
)

// textInset is the gap between a row's left edge and its label.
const textInset = 4

type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render paints the scene as last arranged. Rows are clipped to the
// viewer's bounds.
func (r *Renderer) Render(ecm *ecs.Manager, sc *scene.Scene, th *theme.Theme) {
	dc := r.context
	dc.SetColor(theme.Color(th.Background))
	dc.Clear()

	viewer := scene.Absolute(ecm, sc.Viewer)
	if viewer.Width <= 0 || viewer.Height <= 0 {
		return
	}

	dc.SetColor(theme.Color(th.Viewport))
	dc.DrawRectangle(viewer.X, viewer.Y, viewer.Width, viewer.Height)
	dc.Fill()

	dc.Push()
	dc.DrawRectangle(viewer.X, viewer.Y, viewer.Width, viewer.Height)
	dc.Clip()

	content := scene.Absolute(ecm, sc.Content)
	dc.SetColor(theme.Color(th.Content))
	dc.DrawRectangle(content.X, content.Y, content.Width, content.Height)
	dc.Fill()

	for i, row := range sc.Rows {
		b := scene.Absolute(ecm, row)
		if !overlaps(b, viewer) {
			continue
		}
		fill := th.Row
		if i%2 == 1 {
			fill = th.RowAlt
		}
		dc.SetColor(theme.Color(fill))
		dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		dc.Fill()

		dc.SetColor(theme.Color(th.Text))
		dc.DrawStringAnchored(scene.Label(ecm, row), b.X+textInset, b.Y+b.Height/2, 0, 0.5)
	}
	dc.Pop()
	dc.ResetClip()

	dc.SetColor(theme.Color(th.Border))
	dc.SetLineWidth(1)
	dc.DrawRectangle(viewer.X+0.5, viewer.Y+0.5, viewer.Width-1, viewer.Height-1)
	dc.Stroke()
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.context.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding snapshot failed: %w", err)
	}
	return nil
}

func (r *Renderer) SavePNG(filename string) error {
	if err := r.context.SavePNG(filename); err != nil {
		return fmt.Errorf("saving snapshot %s failed: %w", filename, err)
	}
	return nil
}

func overlaps(a, b layout.Rectangle) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
