package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/theme"
)

const (
	scrollbarSize = 10.0
	minThumb      = 16.0
)

var _ Widget = (*Scrollbar)(nil)

// Scrollbar shows and edits the offset of one viewer axis. Dragging the
// thumb, or pressing the track, sets the offset directly.
type Scrollbar struct {
	Orientation layout.Orientation

	track    layout.Rectangle
	viewport float64
	content  float64
	offset   float64

	pressed  bool
	dragging bool
	grab     float64
}

func NewScrollbar(o layout.Orientation) *Scrollbar {
	return &Scrollbar{Orientation: o}
}

// Sync sets the track in screen coordinates and the extents the thumb
// represents.
func (s *Scrollbar) Sync(track layout.Rectangle, viewport, content, offset float64) {
	s.track = track
	s.viewport = viewport
	s.content = content
	if !s.dragging {
		s.offset = offset
	}
}

// Visible reports whether the content overflows the viewport.
func (s *Scrollbar) Visible() bool {
	return s.content > s.viewport && s.length() > 0
}

// Dragging reports whether the thumb is held.
func (s *Scrollbar) Dragging() bool {
	return s.dragging
}

// Offset returns the offset the thumb currently selects.
func (s *Scrollbar) Offset() float64 {
	return s.offset
}

func (s *Scrollbar) Bounds() layout.Rectangle {
	return s.track
}

// Thumb returns the thumb rectangle in screen coordinates.
func (s *Scrollbar) Thumb() layout.Rectangle {
	size := s.thumbLength()
	pos := s.start() + s.fraction()*(s.length()-size)
	if s.Orientation == layout.Horizontal {
		return layout.Rectangle{X: pos, Y: s.track.Y, Width: size, Height: s.track.Height}
	}
	return layout.Rectangle{X: s.track.X, Y: pos, Width: s.track.Width, Height: size}
}

func (s *Scrollbar) Update(in Input) error {
	if !in.Pressed {
		s.pressed = false
		s.dragging = false
		return nil
	}

	pointer := in.Y
	if s.Orientation == layout.Horizontal {
		pointer = in.X
	}

	if !s.pressed {
		s.pressed = true
		if s.Visible() && s.track.Contains(in.X, in.Y) {
			s.dragging = true
			thumb := s.Thumb()
			thumbStart := thumb.Y
			if s.Orientation == layout.Horizontal {
				thumbStart = thumb.X
			}
			s.grab = pointer - thumbStart
			if !thumb.Contains(in.X, in.Y) {
				// A press on the track centres the thumb under the pointer.
				s.grab = s.thumbLength() / 2
			}
		}
	}

	if s.dragging {
		s.offset = s.offsetAt(pointer - s.grab)
	}
	return nil
}

func (s *Scrollbar) Draw(screen *ebiten.Image, th *theme.Theme) {
	if !s.Visible() {
		return
	}
	t := s.track
	vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height),
		theme.Color(th.Track), false)
	thumb := s.Thumb()
	vector.DrawFilledRect(screen, float32(thumb.X), float32(thumb.Y), float32(thumb.Width), float32(thumb.Height),
		theme.Color(th.Thumb), true)
}

func (s *Scrollbar) start() float64 {
	if s.Orientation == layout.Horizontal {
		return s.track.X
	}
	return s.track.Y
}

func (s *Scrollbar) length() float64 {
	if s.Orientation == layout.Horizontal {
		return s.track.Width
	}
	return s.track.Height
}

func (s *Scrollbar) thumbLength() float64 {
	if s.content <= 0 {
		return s.length()
	}
	return min(max(minThumb, s.length()*s.viewport/s.content), s.length())
}

// fraction is how far the content is scrolled, 0 at the leading edge and 1
// at the trailing edge.
func (s *Scrollbar) fraction() float64 {
	overflow := s.content - s.viewport
	if overflow <= 0 {
		return 0
	}
	return clamp01(-s.offset / overflow)
}

func (s *Scrollbar) offsetAt(thumbStart float64) float64 {
	travel := s.length() - s.thumbLength()
	overflow := s.content - s.viewport
	if travel <= 0 || overflow <= 0 {
		return 0
	}
	return -clamp01((thumbStart-s.start())/travel) * overflow
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
