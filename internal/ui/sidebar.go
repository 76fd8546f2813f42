package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"filedeck/internal/sections"
)

// SidebarItem is one clickable entry inside a section.
type SidebarItem struct {
	Label string
	Path  string
}

// Section is a collapsible group of sidebar items.
type Section struct {
	ID        string
	Title     string
	Items     []SidebarItem
	Collapsed bool
}

// rowKind distinguishes what a sidebar screen row maps back to.
type rowKind int

const (
	rowHeader rowKind = iota
	rowItem
)

// SidebarRow maps a screen row (relative to the sidebar top) back to the
// section or item rendered there. Used by mouse routing.
type SidebarRow struct {
	Kind         rowKind
	SectionIndex int
	SectionID    string
	Item         *SidebarItem
}

// SidebarView renders the ordered, collapsible sections and holds the
// drag-and-drop reorder state machine for them.
type SidebarView struct {
	byID    map[string]*Section
	Reorder *sections.Controller
	width   int
	active  int // section most recently touched; keyboard reorder target
}

// NewSidebarView creates a sidebar with the given sections in display order.
func NewSidebarView(secs []Section) *SidebarView {
	byID := make(map[string]*Section, len(secs))
	order := make([]string, 0, len(secs))
	for i := range secs {
		s := secs[i]
		byID[s.ID] = &s
		order = append(order, s.ID)
	}
	v := &SidebarView{
		byID:    byID,
		Reorder: sections.NewController(order),
		width:   24,
	}
	v.Reorder.OnReorder = func(from, to int) { v.active = to }
	return v
}

// SetWidth sets the rendered column width.
func (v *SidebarView) SetWidth(w int) {
	if w > 0 {
		v.width = w
	}
}

// Width returns the rendered column width.
func (v *SidebarView) Width() int { return v.width }

// Rows returns the current screen-row mapping, top to bottom.
func (v *SidebarView) Rows() []SidebarRow {
	var rows []SidebarRow
	for i, id := range v.Reorder.Order() {
		sec := v.byID[id]
		rows = append(rows, SidebarRow{Kind: rowHeader, SectionIndex: i, SectionID: id})
		if sec.Collapsed {
			continue
		}
		for j := range sec.Items {
			rows = append(rows, SidebarRow{Kind: rowItem, SectionIndex: i, SectionID: id, Item: &sec.Items[j]})
		}
	}
	return rows
}

// RowAt resolves a sidebar-relative row, if it maps to anything.
func (v *SidebarView) RowAt(row int) (SidebarRow, bool) {
	rows := v.Rows()
	if row < 0 || row >= len(rows) {
		return SidebarRow{}, false
	}
	return rows[row], true
}

// ToggleCollapse flips a section's collapsed state and marks it active.
func (v *SidebarView) ToggleCollapse(id string) {
	if sec, ok := v.byID[id]; ok {
		sec.Collapsed = !sec.Collapsed
		for i, oid := range v.Reorder.Order() {
			if oid == id {
				v.active = i
			}
		}
	}
}

// SetActive records the section the user last touched.
func (v *SidebarView) SetActive(index int) {
	if index >= 0 && index < len(v.Reorder.Order()) {
		v.active = index
	}
}

// MoveActive reorders the active section by delta positions using the
// same state machine the mouse path drives.
func (v *SidebarView) MoveActive(delta int) {
	target := v.active + delta
	if target < 0 || target >= len(v.Reorder.Order()) {
		return
	}
	v.Reorder.OnDragStart(v.active)
	v.Reorder.OnDrop(target)
	v.active = target
}

// View renders the sidebar column.
func (v *SidebarView) View() string {
	var b strings.Builder
	dragging := v.Reorder.DraggedIndex()
	over := v.Reorder.DragOverID()
	for i, id := range v.Reorder.Order() {
		sec := v.byID[id]
		marker := "▾"
		if sec.Collapsed {
			marker = "▸"
		}
		header := marker + " " + sec.Title
		style := Styles.Section
		switch {
		case i == dragging:
			style = Styles.Muted
		case over == id && dragging != sections.NoDrag:
			style = Styles.DragTarget
		}
		b.WriteString(ansi.Truncate(style.Render(header), v.width, "…") + "\n")
		if sec.Collapsed {
			continue
		}
		for _, item := range sec.Items {
			b.WriteString(ansi.Truncate(Styles.Normal.Render("  "+item.Label), v.width, "…") + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
