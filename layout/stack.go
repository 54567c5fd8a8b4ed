package layout

import (
	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/theme"
)

var _ Layout = (*StackLayout)(nil)

// StackLayout places its children one after another along the entity's
// orientation. Its desired size is the sum of the children's desired extents
// on that axis and the largest extent across it, unless the constraint says
// otherwise.
type StackLayout struct {
	desiredSize    DirtySize
	size           Size
	oldParent      Size
	oldAlignment   [2]Alignment
	oldOrientation Orientation
	childDesired   map[ecs.Entity]Size
}

func NewStackLayout() *StackLayout {
	return &StackLayout{
		childDesired: make(map[ecs.Entity]Size),
	}
}

func (l *StackLayout) Measure(ctx *Context, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) DirtySize {
	store := ecm.Store()

	if visibility(store, entity) == Collapsed {
		l.desiredSize.SetSize(0, 0)
		return l.desiredSize
	}

	h, v := alignments(store, entity)
	orientation := ecs.Component[Orientation](store, entity, OrientationKey)
	if h != l.oldAlignment[0] || v != l.oldAlignment[1] || orientation != l.oldOrientation {
		l.oldAlignment = [2]Alignment{h, v}
		l.oldOrientation = orientation
		l.desiredSize.SetDirty(true)
	}

	if l.childDesired == nil {
		l.childDesired = make(map[ecs.Entity]Size)
	}
	clear(l.childDesired)

	var along, across float64
	for _, child := range ecm.Tree().Children(entity) {
		childLayout, ok := layouts[child]
		if !ok {
			continue
		}
		ds := childLayout.Measure(ctx, child, ecm, layouts, th)
		if ds.Dirty() {
			l.desiredSize.SetDirty(true)
		}
		l.childDesired[child] = ds.Size()

		cm := margin(store, child)
		w := ds.Width() + cm.Left + cm.Right
		ht := ds.Height() + cm.Top + cm.Bottom
		if orientation == Vertical {
			along += ht
			across = max(across, w)
		} else {
			along += w
			across = max(across, ht)
		}
	}

	desired := Size{Width: across, Height: along}
	if orientation == Horizontal {
		desired = Size{Width: along, Height: across}
	}

	c := constraint(store, entity)
	if c.Width > 0 {
		desired.Width = c.Width
	}
	if c.Height > 0 {
		desired.Height = c.Height
	}
	l.desiredSize.SetSize(desired.Width, desired.Height)

	return l.desiredSize
}

func (l *StackLayout) Arrange(ctx *Context, parentSize Size, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) Size {
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

	orientation := ecs.Component[Orientation](store, entity, OrientationKey)
	var cursor float64
	for _, child := range ecm.Tree().Children(entity) {
		childLayout, ok := layouts[child]
		if !ok {
			continue
		}
		desired := l.childDesired[child]
		cm := margin(store, child)
		ch, cv := alignments(store, child)

		// Each child gets its desired extent along the stack and the full
		// stack extent across it.
		slot := Size{Width: size.Width, Height: desired.Height + cm.Top + cm.Bottom}
		if orientation == Horizontal {
			slot = Size{Width: desired.Width + cm.Left + cm.Right, Height: size.Height}
		}
		childSize := childLayout.Arrange(ctx, slot, child, ecm, layouts, th)

		var r Rectangle
		r.Width, r.Height = childSize.Width, childSize.Height
		if orientation == Vertical {
			r.X = ch.AlignPosition(size.Width, childSize.Width, cm.Left, cm.Right)
			r.Y = cursor + cm.Top
			cursor += childSize.Height + cm.Top + cm.Bottom
		} else {
			r.X = cursor + cm.Left
			r.Y = cv.AlignPosition(size.Height, childSize.Height, cm.Top, cm.Bottom)
			cursor += childSize.Width + cm.Left + cm.Right
		}

		if b, ok := ecs.TryMut[Rectangle](store, child, BoundsKey); ok {
			*b = r
		}
	}

	l.oldParent = parentSize
	l.size = size
	l.desiredSize.SetDirty(false)
	return size
}
