package ui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/scene"
	"github.com/OpticalFlyer/strata/theme"
)

// Controller drives one scene: each tick it turns input into a scroll delta,
// runs the layout pass and draws the result inside the host panel.
type Controller struct {
	logger *log.Logger
	ecm    *ecs.Manager
	scene  *scene.Scene
	theme  theme.Theme
	ctx    *layout.Context

	panel   *Panel
	bars    [2]*Scrollbar
	dragger Dragger
	debug   bool
}

func NewController(logger *log.Logger, ecm *ecs.Manager, sc *scene.Scene, th theme.Theme, panel *Panel) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		logger: logger,
		ecm:    ecm,
		scene:  sc,
		theme:  th,
		ctx:    layout.NewContext(logger),
		panel:  panel,
		bars: [2]*Scrollbar{
			NewScrollbar(layout.Horizontal),
			NewScrollbar(layout.Vertical),
		},
	}
}

// Update polls ebiten and advances one tick.
func (c *Controller) Update() error {
	in := PollInput()
	ebiten.SetCursorShape(c.panel.CursorShape(in.X, in.Y))
	return c.Step(in)
}

// Step advances one tick with the given input.
func (c *Controller) Step(in Input) error {
	store := c.ecm.Store()
	viewer := c.scene.Viewer

	if in.ToggleDebug {
		c.debug = !c.debug
		c.logger.Debug("debug overlay", "enabled", c.debug)
	}

	if err := c.panel.Update(in); err != nil {
		return err
	}
	host := c.panel.Content()
	c.scene.Resize(c.ecm, host.Width, host.Height)

	mode := ecs.Component[layout.ScrollViewerMode](store, viewer, layout.ScrollViewerModeKey)
	m := ecs.Component[layout.Thickness](store, viewer, layout.MarginKey)
	w := host.Width - m.Left*2
	h := host.Height - m.Top*2
	if mode.Vertical.Scrolls() {
		w -= scrollbarSize
	}
	if mode.Horizontal.Scrolls() {
		h -= scrollbarSize
	}
	c.scene.SetViewportSize(c.ecm, max(w, 0), max(h, 0))

	offset := layout.ScrollOffset(store, viewer)
	barsHeld := false
	for i, bar := range c.bars {
		if err := bar.Update(in); err != nil {
			return err
		}
		if !bar.Dragging() {
			continue
		}
		barsHeld = true
		if i == 0 {
			offset.X = bar.Offset()
		} else {
			offset.Y = bar.Offset()
		}
	}
	if barsHeld {
		layout.SetScrollOffset(store, viewer, offset)
	}

	delta := c.dragger.Step(in, c.viewerRect())
	if c.panel.Interacting() || barsHeld {
		delta = layout.Point{}
	}
	layout.SetDelta(store, viewer, delta)

	layout.Run(c.ctx, c.scene.Host, c.ecm, c.scene.Layouts, &c.theme, layout.Size{Width: host.Width, Height: host.Height})
	c.syncBars(mode)
	return nil
}

func (c *Controller) syncBars(mode layout.ScrollViewerMode) {
	store := c.ecm.Store()
	v := c.viewerRect()
	content := layout.Bounds(store, c.scene.Content)
	off := layout.ScrollOffset(store, c.scene.Viewer)

	var hContent, vContent float64
	if mode.Horizontal.Scrolls() {
		hContent = content.Width
	}
	if mode.Vertical.Scrolls() {
		vContent = content.Height
	}
	c.bars[0].Sync(layout.Rectangle{X: v.X, Y: v.Y + v.Height, Width: v.Width, Height: scrollbarSize},
		v.Width, hContent, off.X)
	c.bars[1].Sync(layout.Rectangle{X: v.X + v.Width, Y: v.Y, Width: scrollbarSize, Height: v.Height},
		v.Height, vContent, off.Y)
}

// viewerRect returns the viewer's last arranged bounds on screen.
func (c *Controller) viewerRect() layout.Rectangle {
	return translate(scene.Absolute(c.ecm, c.scene.Viewer), c.origin())
}

func (c *Controller) origin() layout.Point {
	host := c.panel.Content()
	return layout.Point{X: host.X, Y: host.Y}
}

// Draw draws the panel, the scene and the scrollbars.
func (c *Controller) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Color(c.theme.Background))
	c.panel.Draw(screen, &c.theme)
	drawScene(screen, c.origin(), c.ecm, c.scene, &c.theme)
	for _, bar := range c.bars {
		bar.Draw(screen, &c.theme)
	}
	if c.debug {
		c.ShowDebugInfo(screen)
	}
}

// UpdateWindowSize keeps the panel inside a resized window.
func (c *Controller) UpdateWindowSize(width, height int) {
	c.panel.UpdateWindowSize(width, height)
}

// ShowDebugInfo draws frame rate and scroll state.
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	off := layout.ScrollOffset(c.ecm.Store(), c.scene.Viewer)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nFrame: %d\nOffset: %.1f, %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), c.ctx.Frame, off.X, off.Y))
}

// IsInteractingWithUI reports whether the pointer is busy with the panel, a
// scrollbar or a content drag.
func (c *Controller) IsInteractingWithUI() bool {
	return c.panel.Interacting() || c.dragger.Dragging() ||
		c.bars[0].Dragging() || c.bars[1].Dragging()
}

// PanelFor returns a host panel large enough for the viewer to start at its
// configured size.
func PanelFor(v config.Viewer, title string) *Panel {
	w := v.Width + v.X*2
	h := v.Height + v.Y*2 + titleBarHeight
	if v.Vertical.Scrolls() {
		w += scrollbarSize
	}
	if v.Horizontal.Scrolls() {
		h += scrollbarSize
	}
	return NewPanel(20, 20, w, h, title)
}
