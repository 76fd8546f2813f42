// Package sections implements the drag-and-drop state machine for
// reordering the sidebar's linear list of collapsible sections.
package sections

// NoDrag marks draggedIndex when no drag is in progress.
const NoDrag = -1

// Controller tracks transient drag state over an ordered list of section
// ids. It relies on the host UI's native drag-event sequencing rather
// than pointer-offset math. In controlled mode the caller owns the
// authoritative order and the controller holds only the transient fields.
type Controller struct {
	order        []string
	draggedIndex int
	dragOverID   string

	// OnReorder is invoked after a successful drop with the source and
	// destination indexes. Optional.
	OnReorder func(from, to int)

	// controlled is true when the caller owns the order; the controller
	// then never splices its own copy.
	controlled bool
}

// NewController creates a controller owning a copy of the initial order.
func NewController(initial []string) *Controller {
	order := make([]string, len(initial))
	copy(order, initial)
	return &Controller{order: order, draggedIndex: NoDrag}
}

// NewControlledController creates a controller that holds only transient
// drag state; the caller keeps the authoritative order and reacts to
// OnReorder.
func NewControlledController(onReorder func(from, to int)) *Controller {
	return &Controller{draggedIndex: NoDrag, OnReorder: onReorder, controlled: true}
}

// Order returns the current order. Callers must not mutate the result.
func (c *Controller) Order() []string {
	return c.order
}

// DraggedIndex returns the index being dragged, or NoDrag.
func (c *Controller) DraggedIndex() int {
	return c.draggedIndex
}

// DragOverID returns the id currently under the pointer, or "".
func (c *Controller) DragOverID() string {
	return c.dragOverID
}

// OnDragStart records the index whose section is being dragged. Indexes
// outside the order are ignored in uncontrolled mode.
func (c *Controller) OnDragStart(index int) {
	if !c.controlled && (index < 0 || index >= len(c.order)) {
		return
	}
	if c.controlled && index < 0 {
		return
	}
	c.draggedIndex = index
}

// OnDragOver records the section currently under the pointer. Repeated
// events over the same target do not churn state, and the call is a
// no-op when no drag is in progress.
func (c *Controller) OnDragOver(targetID string) {
	if c.draggedIndex == NoDrag {
		return
	}
	if targetID == c.dragOverID {
		return
	}
	c.dragOverID = targetID
}

// OnDrop commits the reorder: the dragged id is removed and reinserted
// at targetIndex, shifting intervening sections by one (list splice, not
// swap). Dropping a section on itself is a no-op reorder. Transient drag
// fields are always cleared, whether or not a move occurred.
func (c *Controller) OnDrop(targetIndex int) {
	from := c.draggedIndex
	c.clearDrag()
	if from == NoDrag || targetIndex == from {
		return
	}
	if !c.controlled {
		if targetIndex < 0 || targetIndex >= len(c.order) {
			return
		}
		id := c.order[from]
		c.order = append(c.order[:from], c.order[from+1:]...)
		c.order = append(c.order[:targetIndex], append([]string{id}, c.order[targetIndex:]...)...)
	}
	if c.OnReorder != nil {
		c.OnReorder(from, targetIndex)
	}
}

// OnDragEnd unconditionally clears transient drag state. This is the
// cancellation path: a section dragged off-list and released leaves the
// order unchanged.
func (c *Controller) OnDragEnd() {
	c.clearDrag()
}

func (c *Controller) clearDrag() {
	c.draggedIndex = NoDrag
	c.dragOverID = ""
}
