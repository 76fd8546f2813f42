package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"filedeck/internal/geometry"
	"filedeck/internal/panel"
)

// gestureKind tags which panel operation the pointer is driving.
type gestureKind int

const (
	gestureDrag gestureKind = iota
	gestureResize
)

// panelGesture records which panel captured the pointer and how.
type panelGesture struct {
	id   string
	kind gestureKind
}

// sectionDrag tracks an in-flight sidebar section drag.
type sectionDrag struct {
	active     bool
	startIndex int
	startRow   int
	moved      bool
}

// routeMouse translates pointer events into engine operations: floating
// panels get first claim (topmost wins), then the sidebar, then the file
// list. Release always resolves gestures, including cancellations.
func (m *AppModel) routeMouse(msg tea.MouseMsg) tea.Cmd {
	pt := geometry.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.handlePress(pt)
		}
	case tea.MouseActionMotion:
		m.handleMotion(pt)
	case tea.MouseActionRelease:
		m.handleRelease(pt)
	}
	return nil
}

func (m *AppModel) handlePress(pt geometry.Point) {
	// Topmost panel under the pointer wins.
	ids := m.registry.IDsByZ()
	for i := len(ids) - 1; i >= 0; i-- {
		pv, ok := m.panels[ids[i]]
		if !ok || !pv.Ctrl.Rect().Contains(pt.X, pt.Y) {
			continue
		}
		m.pressPanel(pv, pt)
		return
	}

	if pt.X < m.sidebar.Width() {
		m.pressSidebar(pt)
		return
	}

	m.files.ClickRow(pt.Y - filesTop)
}

// pressPanel starts the gesture matching the pressed zone: border cells
// resize, the title row drags, interior clicks only raise.
func (m *AppModel) pressPanel(pv *PanelView, pt geometry.Point) {
	ctrl := pv.Ctrl
	if h, ok := resizeHandleAt(ctrl.Rect(), pt); ok {
		ctrl.BeginResize(h, pt)
		if ctrl.IsResizing() {
			m.gesture = &panelGesture{id: ctrl.ID(), kind: gestureResize}
			return
		}
		// Pinned panel: fall through to a plain raise.
	} else if pt.Y == ctrl.Rect().Y {
		ctrl.BeginDrag(pt)
		if ctrl.IsDragging() {
			m.gesture = &panelGesture{id: ctrl.ID(), kind: gestureDrag}
			return
		}
	}
	m.registry.BringToFront(ctrl.ID())
}

func (m *AppModel) pressSidebar(pt geometry.Point) {
	row, ok := m.sidebar.RowAt(pt.Y)
	if !ok {
		return
	}
	switch row.Kind {
	case rowHeader:
		m.sidebar.SetActive(row.SectionIndex)
		m.sidebar.Reorder.OnDragStart(row.SectionIndex)
		m.sideDrag = sectionDrag{active: true, startIndex: row.SectionIndex, startRow: pt.Y}
	case rowItem:
		m.files.Load(row.Item.Path)
	}
}

func (m *AppModel) handleMotion(pt geometry.Point) {
	if m.gesture != nil {
		pv, ok := m.panels[m.gesture.id]
		if !ok {
			m.gesture = nil
			return
		}
		switch m.gesture.kind {
		case gestureDrag:
			pv.Ctrl.UpdateDrag(pt)
		case gestureResize:
			pv.Ctrl.UpdateResize(pt)
		}
		return
	}
	if m.sideDrag.active {
		if pt.Y != m.sideDrag.startRow {
			m.sideDrag.moved = true
		}
		if row, ok := m.sidebar.RowAt(pt.Y); ok && row.Kind == rowHeader {
			m.sidebar.Reorder.OnDragOver(row.SectionID)
		}
	}
}

func (m *AppModel) handleRelease(pt geometry.Point) {
	if m.gesture != nil {
		if pv, ok := m.panels[m.gesture.id]; ok {
			switch m.gesture.kind {
			case gestureDrag:
				pv.Ctrl.EndDrag()
			case gestureResize:
				pv.Ctrl.EndResize()
			}
		}
		m.gesture = nil
		return
	}
	if m.sideDrag.active {
		drag := m.sideDrag
		m.sideDrag = sectionDrag{}
		row, ok := m.sidebar.RowAt(pt.Y)
		switch {
		case ok && row.Kind == rowHeader && drag.moved:
			m.sidebar.Reorder.OnDrop(row.SectionIndex)
		case ok && row.Kind == rowHeader && row.SectionIndex == drag.startIndex:
			m.sidebar.Reorder.OnDragEnd()
			m.sidebar.ToggleCollapse(row.SectionID)
		default:
			// Released off-list: cancel, order unchanged.
			m.sidebar.Reorder.OnDragEnd()
		}
	}
}

// interruptGestures resolves all transient interaction state. Called
// when the terminal loses focus and on shutdown so no gesture is ever
// left dangling.
func (m *AppModel) interruptGestures() {
	for _, pv := range m.panels {
		pv.Ctrl.Interrupt()
	}
	m.gesture = nil
	if m.sideDrag.active {
		m.sidebar.Reorder.OnDragEnd()
		m.sideDrag = sectionDrag{}
	}
}

// resizeHandleAt maps a border cell to its resize handle. The top row is
// reserved for dragging except at the corners.
func resizeHandleAt(r geometry.Rect, pt geometry.Point) (panel.Handle, bool) {
	rx := pt.X - r.X
	ry := pt.Y - r.Y
	left := rx == 0
	right := rx == r.Width-1
	top := ry == 0
	bottom := ry == r.Height-1
	switch {
	case top && left:
		return panel.HandleNorthWest, true
	case top && right:
		return panel.HandleNorthEast, true
	case bottom && left:
		return panel.HandleSouthWest, true
	case bottom && right:
		return panel.HandleSouthEast, true
	case left:
		return panel.HandleWest, true
	case right:
		return panel.HandleEast, true
	case bottom:
		return panel.HandleSouth, true
	}
	return 0, false
}
