package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// keyMsg builds a tea.KeyMsg from its display string.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLookupNormalizesSpace(t *testing.T) {
	r := NewKeybindRegistry()
	r.Bind("SPC p v", func() tea.Msg { return nil })

	assert.NotNil(t, r.Lookup("SPC p v"))
	assert.NotNil(t, r.Lookup("space p v"))
	assert.Nil(t, r.Lookup("SPC p x"))
}

func TestHasPrefix(t *testing.T) {
	r := NewKeybindRegistry()
	r.Bind("SPC p v", func() tea.Msg { return nil })

	assert.True(t, r.HasPrefix("SPC"))
	assert.True(t, r.HasPrefix("SPC p"))
	assert.False(t, r.HasPrefix("SPC p v"))
	assert.False(t, r.HasPrefix("SPC s"))
}

func TestHandleLeaderSequence(t *testing.T) {
	r := NewKeybindRegistry()
	r.Bind("SPC p v", func() tea.Msg { return TogglePanelMsg{ID: PanelPreview} })
	h := NewKeyHandler(r)

	consumed, cmd := h.Handle(keyMsg(" "))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(keyMsg("p"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(keyMsg("v"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
	assert.False(t, h.LeaderWaiting)
	assert.Equal(t, TogglePanelMsg{ID: PanelPreview}, cmd())
}

func TestEscCancelsLeader(t *testing.T) {
	r := NewKeybindRegistry()
	r.Bind("SPC q", tea.Quit)
	h := NewKeyHandler(r)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	// Esc outside leader mode passes through.
	consumed, _ = h.Handle(keyMsg("esc"))
	assert.False(t, consumed)
}

func TestUnboundSequenceExitsLeader(t *testing.T) {
	r := NewKeybindRegistry()
	r.Bind("SPC p v", func() tea.Msg { return nil })
	h := NewKeyHandler(r)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestSingleKeyBinding(t *testing.T) {
	r := NewKeybindRegistry()
	r.Bind("q", tea.Quit)
	h := NewKeyHandler(r)

	consumed, cmd := h.Handle(keyMsg("q"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)

	consumed, cmd = h.Handle(keyMsg("x"))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

func TestLeaderHints(t *testing.T) {
	r := NewKeybindRegistry()
	r.BindWithDesc("SPC q", tea.Quit, "Quit")
	r.BindWithDesc("SPC p v", func() tea.Msg { return nil }, "Preview panel")

	hints := r.LeaderHints("")
	assert.Equal(t, "Quit", hints["q"])
	assert.Equal(t, "Panel", hints["p"])

	sub := r.LeaderHints("SPC p")
	assert.Equal(t, "Preview panel", sub["v"])
}
