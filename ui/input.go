package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/strata/layout"
)

const (
	// wheelStep is the distance one wheel notch scrolls.
	wheelStep = 24.0
	// keyStep is the distance an arrow key scrolls per tick.
	keyStep = 8.0
)

// Touch is one active touch point.
type Touch struct {
	ID   ebiten.TouchID
	X, Y float64
}

// Input is the state of the pointer and keyboard for one tick. Widgets read
// it instead of polling ebiten so they can be driven from tests.
type Input struct {
	X, Y    float64
	Pressed bool
	WheelX  float64
	WheelY  float64
	Touches []Touch
	// Arrows is the arrow-key direction, each axis in -1..1.
	Arrows      layout.Point
	ToggleDebug bool
}

// PollInput reads the current input state from ebiten.
func PollInput() Input {
	x, y := ebiten.CursorPosition()
	in := Input{
		X:           float64(x),
		Y:           float64(y),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
	in.WheelX, in.WheelY = ebiten.Wheel()

	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		in.Touches = append(in.Touches, Touch{ID: id, X: float64(tx), Y: float64(ty)})
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Arrows.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Arrows.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Arrows.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Arrows.Y++
	}
	return in
}

// Dragger turns mouse drags, single-finger touch drags, the wheel and the
// arrow keys into a per-tick scroll delta for one viewer.
type Dragger struct {
	pressed  bool
	dragging bool
	lastX    float64
	lastY    float64

	lastTouch map[ebiten.TouchID]layout.Point
}

// Step returns this tick's delta. Drags only start with a press inside
// area; the wheel only scrolls while the cursor is over it.
func (d *Dragger) Step(in Input, area layout.Rectangle) layout.Point {
	var delta layout.Point

	if in.Pressed {
		if !d.pressed && area.Contains(in.X, in.Y) {
			d.dragging = true
			d.lastX, d.lastY = in.X, in.Y
		}
		d.pressed = true
		if d.dragging {
			delta.X += in.X - d.lastX
			delta.Y += in.Y - d.lastY
			d.lastX, d.lastY = in.X, in.Y
		}
	} else {
		d.pressed = false
		d.dragging = false
	}

	delta = add(delta, d.touch(in.Touches, area))

	if area.Contains(in.X, in.Y) {
		delta.X += in.WheelX * wheelStep
		delta.Y += in.WheelY * wheelStep
	}

	// Arrow keys move the view, so the content moves the other way.
	delta.X -= in.Arrows.X * keyStep
	delta.Y -= in.Arrows.Y * keyStep

	return delta
}

// Dragging reports whether a mouse drag is in progress.
func (d *Dragger) Dragging() bool {
	return d.dragging
}

func (d *Dragger) touch(touches []Touch, area layout.Rectangle) layout.Point {
	if d.lastTouch == nil {
		d.lastTouch = make(map[ebiten.TouchID]layout.Point)
	}

	// Forget touches that ended.
	for id := range d.lastTouch {
		if !containsTouch(touches, id) {
			delete(d.lastTouch, id)
		}
	}

	var delta layout.Point
	if len(touches) != 1 {
		// Multi-touch gestures do not scroll; remember where they are so a
		// finger lifting does not jump.
		for _, t := range touches {
			d.lastTouch[t.ID] = layout.Point{X: t.X, Y: t.Y}
		}
		return delta
	}

	t := touches[0]
	if last, ok := d.lastTouch[t.ID]; ok {
		delta = layout.Point{X: t.X - last.X, Y: t.Y - last.Y}
		d.lastTouch[t.ID] = layout.Point{X: t.X, Y: t.Y}
	} else if area.Contains(t.X, t.Y) {
		d.lastTouch[t.ID] = layout.Point{X: t.X, Y: t.Y}
	}
	return delta
}

func containsTouch(touches []Touch, id ebiten.TouchID) bool {
	for _, t := range touches {
		if t.ID == id {
			return true
		}
	}
	return false
}

func add(a, b layout.Point) layout.Point {
	return layout.Point{X: a.X + b.X, Y: a.Y + b.Y}
}
