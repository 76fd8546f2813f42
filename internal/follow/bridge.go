// Package follow connects an external selection signal to the panels
// that opted into tracking it. Position updates go through the panel
// controller's public mutator so clamping and gesture priority apply.
package follow

import (
	"filedeck/internal/geometry"
)

// Default anchor-to-panel offsets. The panel's top-left lands just right
// of and below the selection anchor; the mapping is a fixed translation,
// so panel position is monotonic in anchor movement.
const (
	DefaultOffsetX = 24
	DefaultOffsetY = 16
)

// Selection is the externally reported current item: its identity and
// on-screen anchor.
type Selection struct {
	ID     string
	Anchor geometry.Point
}

// Source is the selection boundary: Subscribe registers a listener and
// returns its unsubscribe function. Listeners receive the selection and
// ok=false for an explicit empty selection.
type Source interface {
	Subscribe(fn func(sel Selection, ok bool)) (unsubscribe func())
}

// Mover is the slice of the panel controller the bridge needs.
type Mover interface {
	FollowSelection() bool
	Pinned() bool
	SetPosition(pos geometry.Point)
}

// Bridge repositions following panels on every selection change.
type Bridge struct {
	offset geometry.Point
	panels map[string]Mover
	unsub  func()
}

// NewBridge creates a bridge applying the given anchor offset. A zero
// offset falls back to the defaults.
func NewBridge(offset geometry.Point) *Bridge {
	if offset == (geometry.Point{}) {
		offset = geometry.Point{X: DefaultOffsetX, Y: DefaultOffsetY}
	}
	return &Bridge{offset: offset, panels: make(map[string]Mover)}
}

// Attach registers a panel with the bridge.
func (b *Bridge) Attach(id string, m Mover) {
	b.panels[id] = m
}

// Detach removes a panel from the bridge.
func (b *Bridge) Detach(id string) {
	delete(b.panels, id)
}

// Start subscribes the bridge to the selection source. Calling Start
// again replaces the previous subscription.
func (b *Bridge) Start(src Source) {
	b.Close()
	b.unsub = src.Subscribe(b.OnSelection)
}

// Close unsubscribes from the selection source.
func (b *Bridge) Close() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}

// OnSelection repositions every attached panel that has follow enabled
// and is not pinned. An empty selection (ok=false) leaves panels at
// their last position; there is no retraction to a default.
func (b *Bridge) OnSelection(sel Selection, ok bool) {
	if !ok {
		return
	}
	target := sel.Anchor.Add(b.offset)
	for _, m := range b.panels {
		if m.FollowSelection() && !m.Pinned() {
			m.SetPosition(target)
		}
	}
}

// Signal is a minimal in-process Source for hosts that publish their own
// selection changes.
type Signal struct {
	nextID    int
	listeners map[int]func(Selection, bool)
}

// NewSignal creates an empty signal.
func NewSignal() *Signal {
	return &Signal{listeners: make(map[int]func(Selection, bool))}
}

// Subscribe implements Source.
func (s *Signal) Subscribe(fn func(Selection, bool)) func() {
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Publish delivers the selection to all listeners. Pass ok=false for an
// explicit empty selection.
func (s *Signal) Publish(sel Selection, ok bool) {
	for _, fn := range s.listeners {
		fn(sel, ok)
	}
}
