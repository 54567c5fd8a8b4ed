package layout

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/theme"
)

// viewerFixture is a scroll viewer with one fixed-size content child.
type viewerFixture struct {
	ecm      *ecs.Manager
	layouts  Registry
	viewer   ecs.Entity
	content  ecs.Entity
	scroll   *ScrollLayout
	viewport Size
	ctx      *Context
	logs     *bytes.Buffer
	th       *theme.Theme
}

func newViewerFixture(t *testing.T, mode ScrollViewerMode, viewport, content Size) *viewerFixture {
	t.Helper()

	ecm := ecs.NewManager()
	s := ecm.Store()

	viewer := ecm.CreateEntity()
	ecs.Set(s, viewer, ConstraintKey, Constraint{Width: viewport.Width, Height: viewport.Height})
	ecs.Set(s, viewer, HorizontalAlignmentKey, AlignStart)
	ecs.Set(s, viewer, VerticalAlignmentKey, AlignStart)
	ecs.Set(s, viewer, ScrollViewerModeKey, mode)
	ecs.Set(s, viewer, ScrollOffsetKey, Point{})
	ecs.Set(s, viewer, DeltaKey, Point{})

	child := ecm.CreateEntity()
	ecm.Tree().AppendChild(viewer, child)
	ecs.Set(s, child, ConstraintKey, Constraint{Width: content.Width, Height: content.Height})
	ecs.Set(s, child, HorizontalAlignmentKey, AlignStart)
	ecs.Set(s, child, VerticalAlignmentKey, AlignStart)
	ecs.Set(s, child, BoundsKey, Rectangle{})

	scroll := NewScrollLayout()
	var buf bytes.Buffer
	th := theme.Default()

	return &viewerFixture{
		ecm:      ecm,
		layouts:  Registry{viewer: scroll, child: NewFixedSizeLayout()},
		viewer:   viewer,
		content:  child,
		scroll:   scroll,
		viewport: viewport,
		ctx:      NewContext(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})),
		logs:     &buf,
		th:       &th,
	}
}

func (f *viewerFixture) measure() DirtySize {
	return f.scroll.Measure(f.ctx, f.viewer, f.ecm, f.layouts, f.th)
}

func (f *viewerFixture) arrange() Size {
	return f.scroll.Arrange(f.ctx, f.viewport, f.viewer, f.ecm, f.layouts, f.th)
}

// frame runs one measure/arrange pass over the viewer.
func (f *viewerFixture) frame() Size {
	f.measure()
	return f.arrange()
}

func (f *viewerFixture) offset() Point {
	return ScrollOffset(f.ecm.Store(), f.viewer)
}

func (f *viewerFixture) bounds() Rectangle {
	return Bounds(f.ecm.Store(), f.content)
}

func (f *viewerFixture) setDelta(x, y float64) {
	SetDelta(f.ecm.Store(), f.viewer, Point{X: x, Y: y})
}

func (f *viewerFixture) setContentSize(w, h float64) {
	p, _ := ecs.TryMut[Constraint](f.ecm.Store(), f.content, ConstraintKey)
	p.Width, p.Height = w, h
}

// spyLayout records how often it was visited.
type spyLayout struct {
	size     Size
	dirty    bool
	measured int
	arranged int
}

func (s *spyLayout) Measure(*Context, ecs.Entity, *ecs.Manager, Registry, *theme.Theme) DirtySize {
	s.measured++
	var d DirtySize
	d.SetSize(s.size.Width, s.size.Height)
	d.SetDirty(s.dirty)
	return d
}

func (s *spyLayout) Arrange(*Context, Size, ecs.Entity, *ecs.Manager, Registry, *theme.Theme) Size {
	s.arranged++
	return s.size
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
