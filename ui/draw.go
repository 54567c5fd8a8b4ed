package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/scene"
	"github.com/OpticalFlyer/strata/theme"
)

// labelInset is the gap between a row's edges and its label.
const labelInset = 4

// drawScene draws the viewer and its rows with origin as the host's top-left
// corner. Everything inside the viewer is clipped to it.
func drawScene(screen *ebiten.Image, origin layout.Point, ecm *ecs.Manager, sc *scene.Scene, th *theme.Theme) {
	viewer := translate(scene.Absolute(ecm, sc.Viewer), origin)
	if viewer.Width <= 0 || viewer.Height <= 0 {
		return
	}
	fillRect(screen, viewer, theme.Color(th.Viewport))

	clip, ok := screen.SubImage(pixelRect(viewer)).(*ebiten.Image)
	if !ok || clip.Bounds().Empty() {
		return
	}

	fillRect(clip, translate(scene.Absolute(ecm, sc.Content), origin), theme.Color(th.Content))

	for i, row := range sc.Rows {
		b := translate(scene.Absolute(ecm, row), origin)
		if !overlaps(b, viewer) {
			continue
		}
		fill := th.Row
		if i%2 == 1 {
			fill = th.RowAlt
		}
		fillRect(clip, b, theme.Color(fill))
		ebitenutil.DebugPrintAt(clip, scene.Label(ecm, row), int(b.X)+labelInset, int(b.Y)+labelInset/2)
	}

	vector.StrokeRect(screen, float32(viewer.X), float32(viewer.Y), float32(viewer.Width), float32(viewer.Height),
		1, theme.Color(th.Border), false)
}

func fillRect(dst *ebiten.Image, r layout.Rectangle, c color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func translate(r layout.Rectangle, by layout.Point) layout.Rectangle {
	r.X += by.X
	r.Y += by.Y
	return r
}

// pixelRect rounds r outwards to whole pixels.
func pixelRect(r layout.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

func overlaps(a, b layout.Rectangle) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
