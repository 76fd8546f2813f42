package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSections() []Section {
	return []Section{
		{ID: "places", Title: "Places", Items: []SidebarItem{
			{Label: "Home", Path: "/home"},
			{Label: "Root", Path: "/"},
		}},
		{ID: "bookmarks", Title: "Bookmarks", Items: []SidebarItem{
			{Label: "Docs", Path: "/docs"},
		}},
		{ID: "tags", Title: "Tags", Collapsed: true, Items: []SidebarItem{
			{Label: "red", Path: "/tags/red"},
		}},
	}
}

func TestRowsSkipCollapsedItems(t *testing.T) {
	v := NewSidebarView(testSections())
	rows := v.Rows()

	// places header + 2 items, bookmarks header + 1 item, tags header only.
	assert.Len(t, rows, 6)
	assert.Equal(t, rowHeader, rows[0].Kind)
	assert.Equal(t, "Home", rows[1].Item.Label)
	assert.Equal(t, rowHeader, rows[3].Kind)
	assert.Equal(t, "tags", rows[5].SectionID)
}

func TestRowAtBounds(t *testing.T) {
	v := NewSidebarView(testSections())

	row, ok := v.RowAt(4)
	assert.True(t, ok)
	assert.Equal(t, "Docs", row.Item.Label)

	_, ok = v.RowAt(6)
	assert.False(t, ok)
	_, ok = v.RowAt(-1)
	assert.False(t, ok)
}

func TestToggleCollapseCompactsRows(t *testing.T) {
	v := NewSidebarView(testSections())
	v.ToggleCollapse("places")
	assert.Len(t, v.Rows(), 4)

	v.ToggleCollapse("tags")
	assert.Len(t, v.Rows(), 5)
}

func TestMoveActiveReordersByKeyboard(t *testing.T) {
	v := NewSidebarView(testSections())
	v.SetActive(0)

	v.MoveActive(1)
	assert.Equal(t, []string{"bookmarks", "places", "tags"}, v.Reorder.Order())

	// The moved section stays active, so a second move keeps going down.
	v.MoveActive(1)
	assert.Equal(t, []string{"bookmarks", "tags", "places"}, v.Reorder.Order())

	// Moving past the end is ignored.
	v.MoveActive(1)
	assert.Equal(t, []string{"bookmarks", "tags", "places"}, v.Reorder.Order())
}

func TestViewMarksCollapsedSections(t *testing.T) {
	v := NewSidebarView(testSections())
	out := v.View()
	assert.Contains(t, out, "▾ Places")
	assert.Contains(t, out, "▸ Tags")
	assert.NotContains(t, out, "red")
}
