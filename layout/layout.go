// Package layout converts a tree of entities and their components into
// placed boxes. Every entity that is laid out independently has a Layout
// registered for it; a frame is one Measure pass followed by one Arrange
// pass from the root.
package layout

import (
	"github.com/charmbracelet/log"

	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/theme"
)

// Layout is implemented by every layout strategy.
type Layout interface {
	// Measure computes the desired size of entity and reports whether it
	// must be arranged again. Children are measured through layouts.
	Measure(ctx *Context, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) DirtySize

	// Arrange sizes entity within parentSize, writes the bounds of its
	// children and returns its own size.
	Arrange(ctx *Context, parentSize Size, entity ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme) Size
}

// Registry maps an entity to the strategy responsible for it. Entities
// without an entry are not laid out on their own.
type Registry map[ecs.Entity]Layout

// Context is the per-pass render context.
type Context struct {
	Logger *log.Logger
	// Frame counts completed passes.
	Frame uint64
}

// NewContext returns a context logging to l, or to the default logger when
// l is nil.
func NewContext(l *log.Logger) *Context {
	return &Context{Logger: l}
}

func (c *Context) logger() *log.Logger {
	if c == nil || c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// Run performs one frame: it measures and arranges the tree rooted at root
// within window. It returns the root's size and whether the pass found the
// tree dirty. A root without a registered layout yields a zero size.
func Run(ctx *Context, root ecs.Entity, ecm *ecs.Manager, layouts Registry, th *theme.Theme, window Size) (Size, bool) {
	if ctx == nil {
		ctx = NewContext(nil)
	}

	l, ok := layouts[root]
	if !ok {
		ctx.logger().Debug("root has no layout", "entity", root)
		return Size{}, false
	}

	desired := l.Measure(ctx, root, ecm, layouts, th)
	size := l.Arrange(ctx, window, root, ecm, layouts, th)

	ctx.logger().Debug("layout pass",
		"frame", ctx.Frame,
		"dirty", desired.Dirty(),
		"width", size.Width,
		"height", size.Height)
	ctx.Frame++

	return size, desired.Dirty()
}
