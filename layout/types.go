package layout

import (
	"fmt"
	"math"
)

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Unbounded is offered on a scroll-managed axis so content reports its full
// natural extent.
const Unbounded = math.MaxFloat64

// Point is a 2D float pair. It backs both the persisted scroll offset and the
// per-frame drag delta.
type Point struct {
	X, Y float64
}

// Rectangle is the final placed box of an entity, relative to its parent.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

func (r Rectangle) Size() Size { return Size{r.Width, r.Height} }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Thickness is a margin around a box.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns a Thickness with v on every side.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Constraint overrides and bounds an entity's size. Width and Height
// override the measured size when positive; a non-positive maximum means
// unbounded.
type Constraint struct {
	Width, Height       float64
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Perform applies the override and the min/max bounds to size.
func (c Constraint) Perform(size Size) Size {
	w, h := size.Width, size.Height
	if c.Width > 0 {
		w = c.Width
	}
	if c.Height > 0 {
		h = c.Height
	}
	return Size{
		Width:  constrain(w, c.MinWidth, c.MaxWidth),
		Height: constrain(h, c.MinHeight, c.MaxHeight),
	}
}

func constrain(v, lo, hi float64) float64 {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Visibility is the display state of an entity.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
	// Collapsed entities take no space and their children are not laid out.
	Collapsed
)

var visibilityNames = []string{"visible", "hidden", "collapsed"}

func (v Visibility) String() string { return enumName(visibilityNames, int(v)) }

func (v Visibility) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Visibility) UnmarshalText(b []byte) error {
	return parseEnum("visibility", visibilityNames, b, (*int)(v))
}

// Alignment places a box inside the space offered on one axis. The zero
// value stretches.
type Alignment int

const (
	AlignStretch Alignment = iota
	AlignStart
	AlignCenter
	AlignEnd
)

var alignmentNames = []string{"stretch", "start", "center", "end"}

func (a Alignment) String() string { return enumName(alignmentNames, int(a)) }

func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Alignment) UnmarshalText(b []byte) error {
	return parseEnum("alignment", alignmentNames, b, (*int)(a))
}

// AlignMeasure returns the extent a box takes on this axis: all of the
// available space minus margins when stretching, its measured extent
// otherwise.
func (a Alignment) AlignMeasure(available, measure, marginStart, marginEnd float64) float64 {
	if a == AlignStretch {
		return available - marginStart - marginEnd
	}
	return measure
}

// AlignPosition returns the leading coordinate of a box of extent measure.
func (a Alignment) AlignPosition(available, measure, marginStart, marginEnd float64) float64 {
	switch a {
	case AlignCenter:
		return marginStart + (available-marginStart-marginEnd-measure)/2
	case AlignEnd:
		return available - measure - marginEnd
	default:
		return marginStart
	}
}

// ScrollMode is the scrolling policy of one axis.
type ScrollMode int

const (
	// ScrollDisabled never offsets content; it is clipped to the viewport.
	ScrollDisabled ScrollMode = iota
	// ScrollAuto offsets content by the accumulated drag delta.
	ScrollAuto
	// ScrollCustom keeps an externally driven offset (a scrollbar) consistent
	// with the content size.
	ScrollCustom
)

var scrollModeNames = []string{"disabled", "auto", "custom"}

func (m ScrollMode) String() string { return enumName(scrollModeNames, int(m)) }

func (m ScrollMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *ScrollMode) UnmarshalText(b []byte) error {
	return parseEnum("scroll mode", scrollModeNames, b, (*int)(m))
}

// Scrolls reports whether the layout manages the offset on this axis.
func (m ScrollMode) Scrolls() bool {
	return m == ScrollAuto || m == ScrollCustom
}

// ScrollViewerMode holds the scroll policy of both axes.
type ScrollViewerMode struct {
	Horizontal ScrollMode `toml:"horizontal"`
	Vertical   ScrollMode `toml:"vertical"`
}

// Orientation is the stacking direction of a StackLayout.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

var orientationNames = []string{"vertical", "horizontal"}

func (o Orientation) String() string { return enumName(orientationNames, int(o)) }

func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Orientation) UnmarshalText(b []byte) error {
	return parseEnum("orientation", orientationNames, b, (*int)(o))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, b []byte, dst *int) error {
	for i, n := range names {
		if n == string(b) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, b)
}
