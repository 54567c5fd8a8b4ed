package layout

import "github.com/OpticalFlyer/strata/ecs"

// Component slot names read and written by the layouts.
const (
	VisibilityKey          = "visibility"
	HorizontalAlignmentKey = "horizontal_alignment"
	VerticalAlignmentKey   = "vertical_alignment"
	ConstraintKey          = "constraint"
	MarginKey              = "margin"
	ScrollViewerModeKey    = "scroll_viewer_mode"
	ScrollOffsetKey        = "scroll_offset"
	DeltaKey               = "delta"
	BoundsKey              = "bounds"
	OrientationKey         = "orientation"
	// TextKey holds a label for renderers; layouts never read it.
	TextKey = "text"
)

func visibility(s *ecs.Store, e ecs.Entity) Visibility {
	return ecs.Component[Visibility](s, e, VisibilityKey)
}

func alignments(s *ecs.Store, e ecs.Entity) (h, v Alignment) {
	return ecs.Component[Alignment](s, e, HorizontalAlignmentKey),
		ecs.Component[Alignment](s, e, VerticalAlignmentKey)
}

func constraint(s *ecs.Store, e ecs.Entity) Constraint {
	return ecs.Component[Constraint](s, e, ConstraintKey)
}

func margin(s *ecs.Store, e ecs.Entity) Thickness {
	return ecs.Component[Thickness](s, e, MarginKey)
}

// Bounds returns the placed box of e, or a zero Rectangle if it has none.
func Bounds(s *ecs.Store, e ecs.Entity) Rectangle {
	return ecs.Component[Rectangle](s, e, BoundsKey)
}

// ScrollOffset returns the persisted scroll offset of e.
func ScrollOffset(s *ecs.Store, e ecs.Entity) Point {
	return ecs.Component[Point](s, e, ScrollOffsetKey)
}

// SetDelta records this frame's drag input for e. It is skipped when e has
// no delta component.
func SetDelta(s *ecs.Store, e ecs.Entity, d Point) {
	if p, ok := ecs.TryMut[Point](s, e, DeltaKey); ok {
		*p = d
	}
}

// SetScrollOffset overwrites the persisted offset of e, as a scrollbar does
// for a custom-mode axis. It is skipped when e has no scroll_offset.
func SetScrollOffset(s *ecs.Store, e ecs.Entity, off Point) {
	if p, ok := ecs.TryMut[Point](s, e, ScrollOffsetKey); ok {
		*p = off
	}
}
