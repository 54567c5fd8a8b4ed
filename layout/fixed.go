package layout

import (
	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/theme"
)

var _ Layout = (*FixedSizeLayout)(nil)

// FixedSizeLayout sizes an entity from its constraint alone: Width and
// Height when set, MinWidth and MinHeight otherwise. Children are arranged
// inside that box by their own alignment and margin.
type FixedSizeLayout struct {
	desiredSize  DirtySize
	size         Size
	oldParent    Size
	oldAlignment [2]Alignment
}

func NewFixedSizeLayout() *FixedSizeLayout {
	return &FixedSizeLayout{}
}

func (l *FixedSizeLayout) Measure(ctx *Context, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) DirtySize {
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
	w, ht := c.Width, c.Height
	if w <= 0 {
		w = c.MinWidth
	}
	if ht <= 0 {
		ht = c.MinHeight
	}
	l.desiredSize.SetSize(w, ht)

	for _, child := range ecm.Tree().Children(entity) {
		if childLayout, ok := layouts[child]; ok {
			if childLayout.Measure(ctx, child, ecm, layouts, th).Dirty() {
				l.desiredSize.SetDirty(true)
			}
		}
	}

	return l.desiredSize
}

func (l *FixedSizeLayout) Arrange(ctx *Context, parentSize Size, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) Size {
	store := ecm.Store()

	if visibility(store, entity) == Collapsed {
		l.desiredSize.SetSize(0, 0)
		l.size = Size{}
		return l.size
	}

	if !l.desiredSize.Dirty() && parentSize == l.oldParent {
		return l.size
	}

	h, v := alignments(store, entity)
	m := margin(store, entity)
	size := constraint(store, entity).Perform(Size{
		Width:  h.AlignMeasure(parentSize.Width, l.desiredSize.Width(), m.Left, m.Right),
		Height: v.AlignMeasure(parentSize.Height, l.desiredSize.Height(), m.Top, m.Bottom),
	})

	for _, child := range ecm.Tree().Children(entity) {
		childLayout, ok := layouts[child]
		if !ok {
			continue
		}
		childSize := childLayout.Arrange(ctx, size, child, ecm, layouts, th)

		if b, ok := ecs.TryMut[Rectangle](store, child, BoundsKey); ok {
			ch, cv := alignments(store, child)
			cm := margin(store, child)
			*b = Rectangle{
				X:      ch.AlignPosition(size.Width, childSize.Width, cm.Left, cm.Right),
				Y:      cv.AlignPosition(size.Height, childSize.Height, cm.Top, cm.Bottom),
				Width:  childSize.Width,
				Height: childSize.Height,
			}
		}
	}

	l.oldParent = parentSize
	l.size = size
	l.desiredSize.SetDirty(false)
	return size
}
