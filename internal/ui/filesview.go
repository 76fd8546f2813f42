package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"

	"filedeck/internal/files"
	"filedeck/internal/follow"
	"filedeck/internal/geometry"
)

// fileItem implements list.Item for a directory entry.
type fileItem struct {
	files.Entry
}

func (f fileItem) FilterValue() string { return f.Name }
func (f fileItem) Title() string {
	if f.IsDir {
		return f.Name + "/"
	}
	return fmt.Sprintf("%s  %s", f.Name, files.HumanSize(f.Size))
}
func (f fileItem) Description() string { return "" }

// headerRows is the space above the first list row (title + hint + blank).
const headerRows = 3

// FilesView lists the current directory. Every cursor move publishes the
// selected entry and its on-screen anchor to the selection signal, which
// the follow bridge consumes.
type FilesView struct {
	list    list.Model
	dir     string
	entries []files.Entry
	signal  *follow.Signal
	origin  geometry.Point // top-left of this view on screen
	lastIdx int
}

// Ensure FilesView implements View.
var _ View = (*FilesView)(nil)

// NewFilesView creates a file list rooted at dir, publishing selection
// changes to signal.
func NewFilesView(dir string, signal *follow.Signal) *FilesView {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = Styles.Selected
	delegate.Styles.SelectedDesc = Styles.Selected
	delegate.Styles.NormalTitle = Styles.Muted
	delegate.Styles.NormalDesc = Styles.Muted

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &FilesView{list: l, signal: signal, lastIdx: -1}
	v.Load(dir)
	return v
}

// Dir returns the directory currently listed.
func (v *FilesView) Dir() string { return v.dir }

// SelectedEntry returns the entry under the cursor, if any.
func (v *FilesView) SelectedEntry() (files.Entry, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.entries) {
		return files.Entry{}, false
	}
	return v.entries[idx], true
}

// Load replaces the listing with dir's entries. Unreadable directories
// leave the previous listing in place.
func (v *FilesView) Load(dir string) {
	entries, err := files.List(dir)
	if err != nil {
		return
	}
	v.dir = dir
	v.entries = entries
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = fileItem{Entry: e}
	}
	v.list.SetItems(items)
	v.list.ResetSelected()
	v.lastIdx = -1
	v.publishSelection()
}

// SetOrigin records where this view sits on screen, for anchor math.
func (v *FilesView) SetOrigin(x, y int) {
	v.origin = geometry.Point{X: x, Y: y}
}

// SetSize resizes the embedded list.
func (v *FilesView) SetSize(w, h int) {
	v.list.SetWidth(w)
	v.list.SetHeight(h - headerRows)
}

// ClickRow selects the entry rendered at the given view-relative row.
func (v *FilesView) ClickRow(row int) {
	idx := v.list.Paginator.Page*v.list.Paginator.PerPage + (row - headerRows)
	if idx < 0 || idx >= len(v.entries) {
		return
	}
	v.list.Select(idx)
	v.publishSelection()
}

// Enter descends into the selected directory; on a file it is a no-op
// (file activation goes through the app's operation layer).
func (v *FilesView) Enter() {
	if e, ok := v.SelectedEntry(); ok && e.IsDir {
		v.Load(e.Path)
	}
}

// Up ascends to the parent directory.
func (v *FilesView) Up() {
	parent := filepath.Dir(v.dir)
	if parent != v.dir {
		v.Load(parent)
	}
}

// Init implements View.
func (v *FilesView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *FilesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			v.Enter()
			return v, nil
		case "backspace", "h":
			v.Up()
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	v.publishSelection()
	return v, cmd
}

// View implements View.
func (v *FilesView) View() string {
	header := Styles.Title.Render(v.dir) + "\n" +
		Styles.Hint.Render("enter: open  backspace: up  SPC: commands") + "\n\n"
	return header + v.list.View()
}

// publishSelection emits the current selection (or an explicit none) when
// the cursor moved since the last publish.
func (v *FilesView) publishSelection() {
	if v.signal == nil {
		return
	}
	idx := v.list.Index()
	if idx == v.lastIdx {
		return
	}
	v.lastIdx = idx
	e, ok := v.SelectedEntry()
	if !ok {
		v.signal.Publish(follow.Selection{}, false)
		return
	}
	v.signal.Publish(follow.Selection{ID: e.Path, Anchor: v.anchorFor(idx)}, true)
}

// anchorFor computes the on-screen position of the row for index idx.
func (v *FilesView) anchorFor(idx int) geometry.Point {
	visible := idx - v.list.Paginator.Page*v.list.Paginator.PerPage
	return geometry.Point{
		X: v.origin.X,
		Y: v.origin.Y + headerRows + visible,
	}
}
