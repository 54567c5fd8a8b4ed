// Package ui runs the layout engine inside an ebiten window: it hosts the
// scroll viewer in a panel, feeds pointer and keyboard input to it as a
// scroll delta and draws the arranged boxes.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/theme"
)

// Widget is an element the controller updates and draws itself, outside the
// layout pass.
type Widget interface {
	Update(in Input) error
	Draw(screen *ebiten.Image, th *theme.Theme)
	Bounds() layout.Rectangle
}
