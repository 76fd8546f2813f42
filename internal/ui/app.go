package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"filedeck/internal/config"
	"filedeck/internal/files"
	"filedeck/internal/follow"
	"filedeck/internal/geometry"
	"filedeck/internal/layoutstore"
	"filedeck/internal/panel"
	"filedeck/internal/zorder"
)

// Well-known floating panel ids. Stable ids are what ties a panel to its
// persisted geometry across runs.
const (
	PanelPreview = "preview"
	PanelInfo    = "info"
)

// filesTop is the screen row where the file view begins.
const filesTop = 0

// TogglePanelMsg opens or closes a floating panel.
type TogglePanelMsg struct {
	ID string
}

// TogglePinMsg pins/unpins the topmost panel.
type TogglePinMsg struct{}

// ToggleFollowMsg flips follow-selection on the topmost panel.
type ToggleFollowMsg struct{}

// MoveSectionMsg reorders the active sidebar section by Delta positions.
type MoveSectionMsg struct {
	Delta int
}

// AppModel is the root model: file list plus sidebar as the base layer,
// floating panels composited on top in z-order.
type AppModel struct {
	Config     *config.Config
	Store      *layoutstore.Store
	KeyHandler *KeyHandler

	registry *zorder.Registry
	bridge   *follow.Bridge
	signal   *follow.Signal
	files    *FilesView
	sidebar  *SidebarView
	panels   map[string]*PanelView
	saved    map[string]panel.Snapshot

	width  int
	height int

	gesture  *panelGesture
	sideDrag sectionDrag
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. The store may be nil
// (nothing is persisted then, e.g. in tests).
func NewAppModel(cfg *config.Config, store *layoutstore.Store) *AppModel {
	signal := follow.NewSignal()
	bridge := follow.NewBridge(geometry.Point{X: cfg.FollowOffsetX, Y: cfg.FollowOffsetY})
	bridge.Start(signal)

	startDir := cfg.StartDir
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "/"
		}
	}

	saved := make(map[string]panel.Snapshot)
	if store != nil {
		saved = store.Load()
	}

	reg := NewKeybindRegistry()
	m := &AppModel{
		Config:     cfg,
		Store:      store,
		KeyHandler: NewKeyHandler(reg),
		registry:   zorder.NewRegistry(),
		bridge:     bridge,
		signal:     signal,
		files:      NewFilesView(startDir, signal),
		sidebar:    NewSidebarView(defaultSections()),
		panels:     make(map[string]*PanelView),
		saved:      saved,
		width:      80,
		height:     24,
	}

	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC p v", toggleCmd(PanelPreview), "Preview panel")
	reg.BindWithDesc("SPC p i", toggleCmd(PanelInfo), "Info panel")
	reg.BindWithDesc("SPC p p", func() tea.Msg { return TogglePinMsg{} }, "Pin panel")
	reg.BindWithDesc("SPC p f", func() tea.Msg { return ToggleFollowMsg{} }, "Follow selection")
	reg.BindWithDesc("SPC s j", func() tea.Msg { return MoveSectionMsg{Delta: 1} }, "Section down")
	reg.BindWithDesc("SPC s k", func() tea.Msg { return MoveSectionMsg{Delta: -1} }, "Section up")

	return m
}

func toggleCmd(id string) tea.Cmd {
	return func() tea.Msg { return TogglePanelMsg{ID: id} }
}

// defaultSections builds the initial sidebar content.
func defaultSections() []Section {
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "/"
	}
	return []Section{
		{ID: "places", Title: "Places", Items: []SidebarItem{
			{Label: "Home", Path: home},
			{Label: "Root", Path: "/"},
			{Label: "Tmp", Path: os.TempDir()},
		}},
		{ID: "bookmarks", Title: "Bookmarks", Items: []SidebarItem{
			{Label: "Documents", Path: home + "/Documents"},
			{Label: "Downloads", Path: home + "/Downloads"},
		}},
		{ID: "devices", Title: "Devices", Items: []SidebarItem{
			{Label: "mnt", Path: "/mnt"},
			{Label: "media", Path: "/media"},
		}},
		{ID: "tags", Title: "Tags", Collapsed: true},
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.files.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.files.SetOrigin(a.sidebar.Width()+1, filesTop)
		a.files.SetSize(msg.Width-a.sidebar.Width()-1, msg.Height)
		return a, nil
	case tea.BlurMsg:
		// Terminal lost focus: the pointer is gone, resolve everything.
		a.interruptGestures()
		return a, nil
	case tea.MouseMsg:
		return a, a.routeMouse(msg)
	case TogglePanelMsg:
		a.togglePanel(msg.ID)
		return a, nil
	case TogglePinMsg:
		if pv := a.topPanel(); pv != nil {
			pv.Ctrl.TogglePin()
		}
		return a, nil
	case ToggleFollowMsg:
		if pv := a.topPanel(); pv != nil {
			pv.Ctrl.ToggleFollowSelection()
		}
		return a, nil
	case MoveSectionMsg:
		a.sidebar.MoveActive(msg.Delta)
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	v, cmd := a.files.Update(msg)
	if fv, ok := v.(*FilesView); ok {
		a.files = fv
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	sidebarCol := lipgloss.NewStyle().
		Width(a.sidebar.Width()).
		Height(a.height).
		Render(a.sidebar.View())
	base := lipgloss.JoinHorizontal(lipgloss.Top, sidebarCol, " ", a.files.View())

	ids := a.registry.IDsByZ()
	for i, id := range ids {
		pv, ok := a.panels[id]
		if !ok {
			continue
		}
		pos := pv.Ctrl.Position()
		base = Composite(base, pv.Render(i == len(ids)-1), pos.X, pos.Y)
	}

	if a.KeyHandler.LeaderWaiting {
		// Overlay on the bottom rows so the frame height never changes.
		if help := RenderKeybindHelp(a.KeyHandler); help != "" {
			rows := strings.Count(help, "\n") + 1
			base = Composite(base, help, 0, a.height-rows)
		}
	}
	return base
}

// togglePanel opens the panel if closed, closes it if open.
func (m *AppModel) togglePanel(id string) {
	if _, ok := m.panels[id]; ok {
		m.closePanel(id)
		return
	}
	m.openPanel(id)
}

// openPanel restores the panel's persisted geometry when available,
// otherwise places it with defaults, and registers it on top.
func (m *AppModel) openPanel(id string) {
	snap, restored := m.saved[id]
	if !restored {
		snap = m.defaultSnapshot(id)
	}

	var saver panel.Saver
	if m.Store != nil {
		saver = m.Store
	}
	ctrl := panel.New(id, panel.Options{
		Position: snap.Position,
		Size:     snap.Size,
		Pinned:   snap.Pinned,
		MinSize:  geometry.Size{Width: m.Config.PanelMinWidth, Height: m.Config.PanelMinHeight},
		Margin:   m.Config.VisibleMargin,
		Viewport: m.viewportSize,
		Fronter:  m.registry,
		Saver:    saver,
	})
	m.registry.Register(id)
	m.bridge.Attach(id, ctrl)
	m.panels[id] = &PanelView{
		Ctrl:    ctrl,
		Title:   panelTitle(id),
		Content: m.panelContent(id),
	}
}

// closePanel resolves any gesture, persists the final geometry, and
// releases the z-order slot.
func (m *AppModel) closePanel(id string) {
	pv, ok := m.panels[id]
	if !ok {
		return
	}
	pv.Ctrl.Interrupt()
	if m.Store != nil {
		m.Store.Save(id, pv.Ctrl.Snapshot())
	}
	m.registry.Unregister(id)
	m.bridge.Detach(id)
	delete(m.panels, id)
	if m.gesture != nil && m.gesture.id == id {
		m.gesture = nil
	}
}

// topPanel returns the view of the topmost open panel, or nil.
func (m *AppModel) topPanel() *PanelView {
	ids := m.registry.IDsByZ()
	for i := len(ids) - 1; i >= 0; i-- {
		if pv, ok := m.panels[ids[i]]; ok {
			return pv
		}
	}
	return nil
}

// Shutdown resolves gestures and persists every open panel's geometry.
func (m *AppModel) Shutdown() {
	m.interruptGestures()
	if m.Store == nil {
		return
	}
	layout := make(map[string]panel.Snapshot, len(m.panels))
	for id, pv := range m.panels {
		layout[id] = pv.Ctrl.Snapshot()
	}
	m.Store.SaveLayout(layout)
	m.Store.Flush()
}

func (m *AppModel) viewportSize() geometry.Size {
	return geometry.Size{Width: m.width, Height: m.height}
}

// defaultSnapshot picks the initial geometry for a panel opened for the
// first time, cascaded toward the right edge.
func (m *AppModel) defaultSnapshot(id string) panel.Snapshot {
	switch id {
	case PanelInfo:
		return panel.Snapshot{
			Position: geometry.Point{X: m.width - 40, Y: m.height - 12},
			Size:     geometry.Size{Width: 36, Height: 9},
		}
	default:
		return panel.Snapshot{
			Position: geometry.Point{X: m.width - 52, Y: 2},
			Size:     geometry.Size{Width: 48, Height: 14},
		}
	}
}

func panelTitle(id string) string {
	switch id {
	case PanelPreview:
		return "Preview"
	case PanelInfo:
		return "Info"
	}
	return id
}

// panelContent returns the render callback for a panel id.
func (m *AppModel) panelContent(id string) func(w, h int) string {
	switch id {
	case PanelInfo:
		return m.renderInfo
	default:
		return m.renderPreview
	}
}

func (m *AppModel) renderInfo(w, h int) string {
	e, ok := m.files.SelectedEntry()
	if !ok {
		return Styles.Muted.Render("nothing selected")
	}
	kind := "file"
	if e.IsDir {
		kind = "directory"
	}
	lines := []string{
		Styles.Normal.Render(e.Name),
		Styles.Muted.Render(kind),
		Styles.Muted.Render(files.HumanSize(e.Size)),
		Styles.Muted.Render(e.ModTime.Format("2006-01-02 15:04")),
		Styles.Dim.Render(e.Path),
	}
	return strings.Join(lines, "\n")
}

func (m *AppModel) renderPreview(w, h int) string {
	e, ok := m.files.SelectedEntry()
	if !ok {
		return Styles.Muted.Render("nothing selected")
	}
	if e.IsDir {
		return Styles.Muted.Render(fmt.Sprintf("directory: %s", e.Name))
	}
	head := files.Head(e.Path, h)
	if len(head) == 0 {
		return Styles.Muted.Render("(empty or unreadable)")
	}
	return strings.Join(head, "\n")
}
