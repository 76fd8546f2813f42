// Package panel owns the per-panel interaction state machine: drag and
// resize gestures, pinning, follow-selection, and committed geometry.
// Every open panel has its own Controller; panels never share mutable
// state, cross-panel effects go through the z-order registry.
package panel

import (
	"filedeck/internal/geometry"
)

// Engine defaults; the UI shell overrides these through config for
// cell-scale coordinates.
const (
	DefaultMinWidth  = 200
	DefaultMinHeight = 150
	DefaultMargin    = 20
)

// Handle identifies which edge or corner drives a resize.
type Handle int

const (
	HandleNorth Handle = iota
	HandleNorthEast
	HandleEast
	HandleSouthEast
	HandleSouth
	HandleSouthWest
	HandleWest
	HandleNorthWest
)

// Fronter receives stacking requests. *zorder.Registry satisfies it.
type Fronter interface {
	BringToFront(id string)
}

// Saver persists committed geometry. Implementations must not block the
// caller; failures are the saver's problem, never the controller's.
type Saver interface {
	Save(id string, snap Snapshot)
}

// Snapshot is the persistable slice of a panel's state. Z-index and
// transient gesture flags are deliberately absent; they are recomputed
// at load time.
type Snapshot struct {
	Position geometry.Point `json:"position"`
	Size     geometry.Size  `json:"size"`
	Pinned   bool           `json:"pinned"`
}

// ViewportFunc reports the current viewport dimensions. It is queried
// fresh on every clamp so window resizes mid-gesture are respected.
type ViewportFunc func() geometry.Size

// gesture is the tagged variant for the per-panel state machine.
// Idle, Dragging, and Resizing are mutually exclusive by construction.
type gesture interface {
	gestureState()
}

type idle struct{}

type dragging struct {
	offset geometry.Point // pointer-to-panel offset recorded at BeginDrag
	raised bool           // bring-to-front requested (first update only)
}

type resizing struct {
	handle  Handle
	start   geometry.Rect  // committed rect at BeginResize
	pointer geometry.Point // pointer position at BeginResize
}

func (idle) gestureState()     {}
func (dragging) gestureState() {}
func (resizing) gestureState() {}

// Controller drives one floating panel.
type Controller struct {
	id      string
	rect    geometry.Rect
	pinned  bool
	follow  bool
	minSize geometry.Size
	margin  int

	viewport ViewportFunc
	fronter  Fronter
	saver    Saver

	gesture gesture
}

// Options configures a new Controller. Zero values fall back to the
// engine defaults.
type Options struct {
	Position geometry.Point
	Size     geometry.Size
	Pinned   bool
	MinSize  geometry.Size
	Margin   int
	Viewport ViewportFunc
	Fronter  Fronter
	Saver    Saver
}

// New creates a controller for the panel identified by id.
func New(id string, opts Options) *Controller {
	min := opts.MinSize
	if min.Width <= 0 {
		min.Width = DefaultMinWidth
	}
	if min.Height <= 0 {
		min.Height = DefaultMinHeight
	}
	margin := opts.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}
	size := geometry.ClampSize(opts.Size, min)
	c := &Controller{
		id:       id,
		rect:     geometry.Rect{Point: opts.Position, Size: size},
		pinned:   opts.Pinned,
		minSize:  min,
		margin:   margin,
		viewport: opts.Viewport,
		fronter:  opts.Fronter,
		saver:    opts.Saver,
		gesture:  idle{},
	}
	c.rect.Point = geometry.ClampPosition(c.rect.Point, c.rect.Size, c.viewportSize(), c.margin)
	return c
}

// ID returns the panel's stable identifier.
func (c *Controller) ID() string { return c.id }

// Rect returns the committed geometry.
func (c *Controller) Rect() geometry.Rect { return c.rect }

// Position returns the committed top-left position.
func (c *Controller) Position() geometry.Point { return c.rect.Point }

// Size returns the committed size.
func (c *Controller) Size() geometry.Size { return c.rect.Size }

// Pinned reports whether the panel is pinned.
func (c *Controller) Pinned() bool { return c.pinned }

// FollowSelection reports whether the panel tracks the selection anchor.
func (c *Controller) FollowSelection() bool { return c.follow }

// IsDragging reports an active drag gesture.
func (c *Controller) IsDragging() bool {
	_, ok := c.gesture.(dragging)
	return ok
}

// IsResizing reports an active resize gesture.
func (c *Controller) IsResizing() bool {
	_, ok := c.gesture.(resizing)
	return ok
}

// BeginDrag starts a drag gesture, recording the pointer-to-panel
// offset. No-op while pinned or when a gesture is already active.
func (c *Controller) BeginDrag(pointer geometry.Point) {
	if c.pinned {
		return
	}
	if _, ok := c.gesture.(idle); !ok {
		return
	}
	c.gesture = dragging{offset: pointer.Sub(c.rect.Point)}
}

// UpdateDrag moves the panel to pointer minus the recorded offset,
// clamped so at least the visibility margin stays inside the viewport.
// The first update of a drag (not every move) raises the panel.
func (c *Controller) UpdateDrag(pointer geometry.Point) {
	g, ok := c.gesture.(dragging)
	if !ok {
		return
	}
	if !g.raised {
		if c.fronter != nil {
			c.fronter.BringToFront(c.id)
		}
		g.raised = true
		c.gesture = g
	}
	c.rect.Point = geometry.ClampPosition(pointer.Sub(g.offset), c.rect.Size, c.viewportSize(), c.margin)
}

// EndDrag commits the position and requests a persistence save. No-op
// when not dragging.
func (c *Controller) EndDrag() {
	if _, ok := c.gesture.(dragging); !ok {
		return
	}
	c.gesture = idle{}
	c.save()
}

// BeginResize starts a resize gesture driven by the given handle. Same
// preconditions as BeginDrag: pinned panels and busy panels ignore it.
func (c *Controller) BeginResize(handle Handle, pointer geometry.Point) {
	if c.pinned {
		return
	}
	if _, ok := c.gesture.(idle); !ok {
		return
	}
	c.gesture = resizing{handle: handle, start: c.rect, pointer: pointer}
}

// UpdateResize recomputes the rect from the gesture's start rect and the
// pointer delta. Width and height never drop below the minimums; handles
// on the left/top edge shift the position so the opposite edge stays
// fixed, including when the minimum clamp kicks in.
func (c *Controller) UpdateResize(pointer geometry.Point) {
	g, ok := c.gesture.(resizing)
	if !ok {
		return
	}
	d := pointer.Sub(g.pointer)
	r := g.start

	switch g.handle {
	case HandleEast, HandleNorthEast, HandleSouthEast:
		r.Width = g.start.Width + d.X
	case HandleWest, HandleNorthWest, HandleSouthWest:
		r.Width = g.start.Width - d.X
	}
	switch g.handle {
	case HandleSouth, HandleSouthEast, HandleSouthWest:
		r.Height = g.start.Height + d.Y
	case HandleNorth, HandleNorthEast, HandleNorthWest:
		r.Height = g.start.Height - d.Y
	}
	r.Size = geometry.ClampSize(r.Size, c.minSize)

	// Left/top handles anchor the opposite edge.
	switch g.handle {
	case HandleWest, HandleNorthWest, HandleSouthWest:
		r.X = g.start.X + g.start.Width - r.Width
	}
	switch g.handle {
	case HandleNorth, HandleNorthWest, HandleNorthEast:
		r.Y = g.start.Y + g.start.Height - r.Height
	}

	r.Point = geometry.ClampPosition(r.Point, r.Size, c.viewportSize(), c.margin)
	c.rect = r
}

// EndResize commits the rect and requests a persistence save. No-op when
// not resizing.
func (c *Controller) EndResize() {
	if _, ok := c.gesture.(resizing); !ok {
		return
	}
	c.gesture = idle{}
	c.save()
}

// Interrupt resolves any in-flight gesture through its normal end
// transition. The UI calls this on pointer-leave-window and teardown so
// transient gesture state is released on every exit path.
func (c *Controller) Interrupt() {
	switch c.gesture.(type) {
	case dragging:
		c.EndDrag()
	case resizing:
		c.EndResize()
	}
}

// TogglePin flips the pinned flag. Pinning cancels any active gesture
// and turns follow-selection off; the new flag is persisted.
func (c *Controller) TogglePin() {
	c.pinned = !c.pinned
	if c.pinned {
		c.gesture = idle{}
		c.follow = false
	}
	c.save()
}

// ToggleFollowSelection flips follow mode. Silently ignored while pinned.
func (c *Controller) ToggleFollowSelection() {
	if c.pinned {
		return
	}
	c.follow = !c.follow
}

// SetPosition moves the panel directly, bypassing the drag machine. The
// position is clamped like any other. Ignored while a drag is active;
// the gesture is the last writer for position.
func (c *Controller) SetPosition(pos geometry.Point) {
	if c.IsDragging() {
		return
	}
	c.rect.Point = geometry.ClampPosition(pos, c.rect.Size, c.viewportSize(), c.margin)
}

// Snapshot returns the persistable slice of the panel's state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Position: c.rect.Point, Size: c.rect.Size, Pinned: c.pinned}
}

func (c *Controller) save() {
	if c.saver != nil {
		c.saver.Save(c.id, c.Snapshot())
	}
}

func (c *Controller) viewportSize() geometry.Size {
	if c.viewport != nil {
		return c.viewport()
	}
	// No viewport wired (tests, headless): treat as unbounded.
	return geometry.Size{Width: 1 << 20, Height: 1 << 20}
}
