// Package scene assembles the entity tree shown by the viewer: a host box
// the size of the window, a scroll viewer inside it and a vertical stack of
// rows as the viewer's content.
package scene

import (
	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/source"
)

// Scene is a built tree and the layouts registered for it.
type Scene struct {
	Host    ecs.Entity
	Viewer  ecs.Entity
	Content ecs.Entity
	Rows    []ecs.Entity
	Layouts layout.Registry
}

// Build creates the scene entities in ecm.
func Build(ecm *ecs.Manager, cfg config.Config, rows []source.Row) *Scene {
	store := ecm.Store()
	tree := ecm.Tree()
	sc := &Scene{Layouts: make(layout.Registry)}

	sc.Host = ecm.CreateEntity()
	ecs.Set(store, sc.Host, layout.ConstraintKey, layout.Constraint{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	})
	sc.Layouts[sc.Host] = layout.NewFixedSizeLayout()

	sc.Viewer = ecm.CreateEntity()
	ecs.Set(store, sc.Viewer, layout.ConstraintKey, layout.Constraint{
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
	})
	ecs.Set(store, sc.Viewer, layout.MarginKey, layout.Thickness{Left: cfg.Viewer.X, Top: cfg.Viewer.Y})
	ecs.Set(store, sc.Viewer, layout.ScrollViewerModeKey, cfg.Viewer.Mode())
	ecs.Set(store, sc.Viewer, layout.ScrollOffsetKey, layout.Point{})
	ecs.Set(store, sc.Viewer, layout.DeltaKey, layout.Point{})
	ecs.Set(store, sc.Viewer, layout.BoundsKey, layout.Rectangle{})
	setStart(store, sc.Viewer)
	tree.AppendChild(sc.Host, sc.Viewer)
	sc.Layouts[sc.Viewer] = layout.NewScrollLayout()

	sc.Content = ecm.CreateEntity()
	ecs.Set(store, sc.Content, layout.OrientationKey, layout.Vertical)
	ecs.Set(store, sc.Content, layout.BoundsKey, layout.Rectangle{})
	setStart(store, sc.Content)
	tree.AppendChild(sc.Viewer, sc.Content)
	sc.Layouts[sc.Content] = layout.NewStackLayout()

	gap := cfg.Content.RowGap / 2
	for _, r := range rows {
		row := ecm.CreateEntity()
		ecs.Set(store, row, layout.ConstraintKey, layout.Constraint{
			MinWidth:  cfg.Content.RowWidth,
			MinHeight: cfg.Content.RowHeight,
		})
		ecs.Set(store, row, layout.MarginKey, layout.Thickness{Top: gap, Bottom: gap})
		ecs.Set(store, row, layout.BoundsKey, layout.Rectangle{})
		ecs.Set(store, row, layout.TextKey, r.Label)
		tree.AppendChild(sc.Content, row)
		sc.Layouts[row] = layout.NewFixedSizeLayout()
		sc.Rows = append(sc.Rows, row)
	}

	return sc
}

func setStart(s *ecs.Store, e ecs.Entity) {
	ecs.Set(s, e, layout.HorizontalAlignmentKey, layout.AlignStart)
	ecs.Set(s, e, layout.VerticalAlignmentKey, layout.AlignStart)
}

// Resize sets the host to the window size.
func (sc *Scene) Resize(ecm *ecs.Manager, width, height float64) {
	if c, ok := ecs.TryMut[layout.Constraint](ecm.Store(), sc.Host, layout.ConstraintKey); ok {
		c.Width, c.Height = width, height
	}
}

// SetViewportSize resizes the scroll viewer. The viewer keeps its margin
// inside the host; callers that move it translate at draw time.
func (sc *Scene) SetViewportSize(ecm *ecs.Manager, width, height float64) {
	if c, ok := ecs.TryMut[layout.Constraint](ecm.Store(), sc.Viewer, layout.ConstraintKey); ok {
		c.Width, c.Height = width, height
	}
}

// Absolute returns the bounds of e in window coordinates by adding the
// bounds of its ancestors.
func Absolute(ecm *ecs.Manager, e ecs.Entity) layout.Rectangle {
	store := ecm.Store()
	r := layout.Bounds(store, e)
	for p, ok := ecm.Tree().Parent(e); ok; p, ok = ecm.Tree().Parent(p) {
		b := layout.Bounds(store, p)
		r.X += b.X
		r.Y += b.Y
	}
	return r
}

// Label returns the text of e.
func Label(ecm *ecs.Manager, e ecs.Entity) string {
	return ecs.Component[string](ecm.Store(), e, layout.TextKey)
}
