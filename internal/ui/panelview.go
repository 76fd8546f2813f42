package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"filedeck/internal/panel"
)

// PanelView renders one floating panel from its controller's committed
// geometry. Content comes from a callback so panels always show current
// app state without holding copies of it.
type PanelView struct {
	Ctrl    *panel.Controller
	Title   string
	Content func(width, height int) string
}

// Render draws the panel at its current size. The topmost panel gets the
// highlighted border.
func (p *PanelView) Render(topmost bool) string {
	size := p.Ctrl.Size()
	innerW := size.Width - 2
	innerH := size.Height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title := p.Title
	var flags []string
	if p.Ctrl.Pinned() {
		flags = append(flags, Styles.Pinned.Render("pin"))
	}
	if p.Ctrl.FollowSelection() {
		flags = append(flags, Styles.Muted.Render("follow"))
	}
	bar := Styles.PanelTitle.Render(title)
	if len(flags) > 0 {
		bar += " " + strings.Join(flags, " ")
	}
	bar = ansi.Truncate(bar, innerW, "…")

	body := ""
	if p.Content != nil {
		body = p.Content(innerW, innerH-1)
	}
	lines := make([]string, 0, innerH)
	lines = append(lines, bar)
	for _, l := range strings.Split(body, "\n") {
		if len(lines) == innerH {
			break
		}
		lines = append(lines, ansi.Truncate(l, innerW, "…"))
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	border := Styles.PanelBorder
	if topmost {
		border = Styles.PanelFront
	}
	return border.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}
