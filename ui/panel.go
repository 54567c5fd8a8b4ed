package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/theme"
)

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	minPanelWidth  = 100.0
	minPanelHeight = 60.0
)

type resizeEdge int

const (
	resizeNone resizeEdge = iota
	resizeLeft
	resizeRight
	resizeTop
	resizeBottom
	resizeTopLeft
	resizeTopRight
	resizeBottomLeft
	resizeBottomRight
)

var _ Widget = (*Panel)(nil)

// Panel is a movable, resizable window that hosts the scene below its title
// bar.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string

	isDragging  bool
	isResizing  bool
	wasPressed  bool
	edge        resizeEdge
	dragStartX  float64
	dragStartY  float64
	startX      float64
	startY      float64
	startWidth  float64
	startHeight float64

	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:            x,
		Y:            y,
		Width:        max(width, minPanelWidth),
		Height:       max(height, minPanelHeight),
		Title:        title,
		windowWidth:  800,
		windowHeight: 600,
	}
}

// Bounds returns the whole panel including the title bar.
func (p *Panel) Bounds() layout.Rectangle {
	return layout.Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Content returns the area below the title bar.
func (p *Panel) Content() layout.Rectangle {
	return layout.Rectangle{
		X:      p.X,
		Y:      p.Y + titleBarHeight,
		Width:  p.Width,
		Height: p.Height - titleBarHeight,
	}
}

// Interacting reports whether the panel is being moved or resized.
func (p *Panel) Interacting() bool {
	return p.isDragging || p.isResizing
}

// UpdateWindowSize keeps the title bar reachable after the window shrinks.
func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	p.X = max(min(p.X, float64(width)-minPanelWidth), 0)
	p.Y = max(min(p.Y, float64(height)-titleBarHeight), 0)
}

func (p *Panel) Update(in Input) error {
	if !in.Pressed {
		p.isDragging = false
		p.isResizing = false
		p.wasPressed = false
		return nil
	}

	if !p.wasPressed {
		p.wasPressed = true
		p.dragStartX, p.dragStartY = in.X, in.Y
		p.startX, p.startY = p.X, p.Y
		p.startWidth, p.startHeight = p.Width, p.Height

		if edge := p.edgeAt(in.X, in.Y); edge != resizeNone {
			p.isResizing = true
			p.edge = edge
		} else if p.inTitleBar(in.X, in.Y) {
			p.isDragging = true
		}
	}

	dx := in.X - p.dragStartX
	dy := in.Y - p.dragStartY

	switch {
	case p.isDragging:
		p.X = p.startX + dx
		p.Y = p.startY + dy
	case p.isResizing:
		p.resize(dx, dy)
	}
	return nil
}

func (p *Panel) resize(dx, dy float64) {
	left := p.edge == resizeLeft || p.edge == resizeTopLeft || p.edge == resizeBottomLeft
	right := p.edge == resizeRight || p.edge == resizeTopRight || p.edge == resizeBottomRight
	top := p.edge == resizeTop || p.edge == resizeTopLeft || p.edge == resizeTopRight
	bottom := p.edge == resizeBottom || p.edge == resizeBottomLeft || p.edge == resizeBottomRight

	if right {
		p.Width = max(minPanelWidth, p.startWidth+dx)
	}
	if left {
		p.Width = max(minPanelWidth, p.startWidth-dx)
		p.X = p.startX + p.startWidth - p.Width
	}
	if bottom {
		p.Height = max(minPanelHeight, p.startHeight+dy)
	}
	if top {
		p.Height = max(minPanelHeight, p.startHeight-dy)
		p.Y = p.startY + p.startHeight - p.Height
	}
}

func (p *Panel) edgeAt(x, y float64) resizeEdge {
	near := func(v, edge float64) bool { return v >= edge-resizeArea && v <= edge+resizeArea }
	inX := x >= p.X-resizeArea && x <= p.X+p.Width+resizeArea
	inY := y >= p.Y-resizeArea && y <= p.Y+p.Height+resizeArea

	left := inY && near(x, p.X)
	right := inY && near(x, p.X+p.Width)
	top := inX && near(y, p.Y)
	bottom := inX && near(y, p.Y+p.Height)

	switch {
	case left && top:
		return resizeTopLeft
	case right && top:
		return resizeTopRight
	case left && bottom:
		return resizeBottomLeft
	case right && bottom:
		return resizeBottomRight
	case left:
		return resizeLeft
	case right:
		return resizeRight
	case top:
		return resizeTop
	case bottom:
		return resizeBottom
	}
	return resizeNone
}

func (p *Panel) inTitleBar(x, y float64) bool {
	return x >= p.X && x <= p.X+p.Width &&
		y >= p.Y && y <= p.Y+titleBarHeight
}

// CursorShape returns the cursor to show with the pointer at (x, y).
func (p *Panel) CursorShape(x, y float64) ebiten.CursorShapeType {
	edge := p.edge
	if !p.isResizing {
		edge = p.edgeAt(x, y)
	}
	switch edge {
	case resizeLeft, resizeRight:
		return ebiten.CursorShapeEWResize
	case resizeTop, resizeBottom:
		return ebiten.CursorShapeNSResize
	case resizeTopLeft, resizeBottomRight:
		return ebiten.CursorShapeNWSEResize
	case resizeTopRight, resizeBottomLeft:
		return ebiten.CursorShapeNESWResize
	}
	if p.isDragging || p.inTitleBar(x, y) {
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

func (p *Panel) Draw(screen *ebiten.Image, th *theme.Theme) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		theme.Color(th.Panel), true)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(titleBarHeight),
		theme.Color(th.TitleBar), true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X)+4, int(p.Y)+2)
}
