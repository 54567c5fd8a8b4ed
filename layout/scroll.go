package layout

import (
	"math"

	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/theme"
)

const (
	// epsilon is the float64 machine epsilon. Offsets closer than this are
	// treated as unchanged.
	epsilon = 0x1p-52

	// dragFactor amplifies the raw drag delta on auto-scrolling axes.
	dragFactor = 1.5
)

var _ Layout = (*ScrollLayout)(nil)

// ScrollLayout lays out a single content child inside a viewport and offsets
// it according to the entity's scroll_viewer_mode.
//
// Content is offered an unbounded extent on every scrolling axis, so it
// reports its natural size. The offset is read from scroll_offset, updated
// from this frame's delta (auto axes) or from the change in content size
// (custom axes), clamped so content never leaves the viewport, and written
// back to scroll_offset.
//
// The offset and previous content size are kept per viewer, not per child:
// the viewer expects exactly one content child. Further children are still
// placed but share that bookkeeping.
type ScrollLayout struct {
	oldChildSize Size
	desiredSize  DirtySize
	size         Size
	oldOffset    Point
	oldAlignment [2]Alignment
	warned       bool
}

func NewScrollLayout() *ScrollLayout {
	return &ScrollLayout{}
}

func (l *ScrollLayout) Measure(ctx *Context, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) DirtySize {
	store := ecm.Store()

	if visibility(store, entity) == Collapsed {
		l.desiredSize.SetSize(0, 0)
		return l.desiredSize
	}

	h, v := alignments(store, entity)
	if h != l.oldAlignment[0] || v != l.oldAlignment[1] {
		l.oldAlignment = [2]Alignment{h, v}
		l.desiredSize.SetDirty(true)
	}

	c := constraint(store, entity)
	if c.Width > 0 {
		l.desiredSize.SetWidth(c.Width)
	}
	if c.Height > 0 {
		l.desiredSize.SetHeight(c.Height)
	}

	for _, child := range ecm.Tree().Children(entity) {
		childLayout, ok := layouts[child]
		if !ok {
			continue
		}
		if childLayout.Measure(ctx, child, ecm, layouts, th).Dirty() {
			l.desiredSize.SetDirty(true)
		}
	}

	off := ScrollOffset(store, entity)
	if math.Abs(l.oldOffset.X-off.X) > epsilon || math.Abs(l.oldOffset.Y-off.Y) > epsilon {
		l.oldOffset = off
		l.desiredSize.SetDirty(true)
	}

	// A drag on an auto axis must reach Arrange even when nothing else moved.
	mode := ecs.Component[ScrollViewerMode](store, entity, ScrollViewerModeKey)
	delta := ecs.Component[Point](store, entity, DeltaKey)
	if (mode.Horizontal == ScrollAuto && math.Abs(delta.X) > epsilon) ||
		(mode.Vertical == ScrollAuto && math.Abs(delta.Y) > epsilon) {
		l.desiredSize.SetDirty(true)
	}

	return l.desiredSize
}

func (l *ScrollLayout) Arrange(ctx *Context, parentSize Size, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) Size {
	store := ecm.Store()

	if visibility(store, entity) == Collapsed {
		l.desiredSize.SetSize(0, 0)
		l.size = Size{}
		return l.size
	}

	if !l.desiredSize.Dirty() {
		return l.size
	}

	h, v := alignments(store, entity)
	m := margin(store, entity)
	size := constraint(store, entity).Perform(Size{
		Width:  h.AlignMeasure(parentSize.Width, l.desiredSize.Width(), m.Left, m.Right),
		Height: v.AlignMeasure(parentSize.Height, l.desiredSize.Height(), m.Top, m.Bottom),
	})

	mode := ecs.Component[ScrollViewerMode](store, entity, ScrollViewerModeKey)
	available := size
	if mode.Horizontal.Scrolls() {
		available.Width = Unbounded
	}
	if mode.Vertical.Scrolls() {
		available.Height = Unbounded
	}

	offset := ScrollOffset(store, entity)
	delta := ecs.Component[Point](store, entity, DeltaKey)
	oldChildSize := l.oldChildSize

	children := ecm.Tree().Children(entity)
	if len(children) > 1 && !l.warned {
		ctx.logger().Warn("scroll viewer shares one offset between several children",
			"entity", entity, "children", len(children))
		l.warned = true
	}

	for _, child := range children {
		childSize := oldChildSize
		if childLayout, ok := layouts[child]; ok {
			childSize = childLayout.Arrange(ctx, available, child, ecm, layouts, th)
		}

		offset.X = scrollAxis(mode.Horizontal, offset.X, delta.X, size.Width, childSize.Width, oldChildSize.Width)
		offset.Y = scrollAxis(mode.Vertical, offset.Y, delta.Y, size.Height, childSize.Height, oldChildSize.Height)

		if b, ok := ecs.TryMut[Rectangle](store, child, BoundsKey); ok {
			ch, cv := alignments(store, child)
			cm := margin(store, child)
			b.Width = childSize.Width
			b.Height = childSize.Height
			b.X = placeAxis(mode.Horizontal, offset.X, size.Width, childSize.Width, ch, cm.Left, cm.Right)
			b.Y = placeAxis(mode.Vertical, offset.Y, size.Height, childSize.Height, cv, cm.Top, cm.Bottom)
		}

		SetScrollOffset(store, entity, offset)
		l.oldChildSize = childSize
	}

	if offset != l.oldOffset {
		ctx.logger().Debug("scroll offset", "entity", entity, "x", offset.X, "y", offset.Y)
	}

	l.size = size
	l.desiredSize.SetDirty(false)
	return size
}

// scrollAxis returns the new offset of one axis. viewport is the viewer's
// extent, child the content's extent and oldChild the content's extent in
// the previous arrange.
func scrollAxis(mode ScrollMode, offset, delta, viewport, child, oldChild float64) float64 {
	switch mode {
	case ScrollCustom:
		if child <= viewport {
			return 0
		}
		// Keep the same distance to the trailing edge when content grows.
		// The viewport-child floor is intentional: content never scrolls past
		// its trailing edge, even on the first overflowing frame.
		return clamp(offset+oldChild-child, viewport-child, 0)
	case ScrollAuto:
		return max(min(math.FMA(delta, dragFactor, offset), 0), viewport-child)
	default:
		return offset
	}
}

// placeAxis returns the child's leading coordinate on one axis.
func placeAxis(mode ScrollMode, offset, viewport, child float64, a Alignment, marginStart, marginEnd float64) float64 {
	if !mode.Scrolls() {
		return a.AlignPosition(viewport, child, marginStart, marginEnd)
	}
	if child <= viewport {
		return 0
	}
	return offset
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
