package layoutstore

import (
	"fmt"
	"os"
	"testing"

	"filedeck/internal/geometry"
	"filedeck/internal/panel"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	os.Setenv(StateDirEnv, dir)
	t.Cleanup(func() { os.Unsetenv(StateDirEnv) })

	s, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	snap := panel.Snapshot{
		Position: geometry.Point{X: 40, Y: 12},
		Size:     geometry.Size{Width: 48, Height: 14},
		Pinned:   true,
	}
	s.Save("preview", snap)
	s.Flush()

	layout := s.Load()
	got, ok := layout["preview"]
	if !ok {
		t.Fatal("expected preview entry after save")
	}
	if got != snap {
		t.Errorf("loaded %+v, want %+v", got, snap)
	}
}

func TestLastWriteWins(t *testing.T) {
	s := newTestStore(t)
	s.Save("info", panel.Snapshot{Position: geometry.Point{X: 1, Y: 1}})
	s.Flush()
	s.Save("info", panel.Snapshot{Position: geometry.Point{X: 9, Y: 9}})
	s.Flush()

	got := s.Load()["info"]
	if got.Position != (geometry.Point{X: 9, Y: 9}) {
		t.Errorf("expected latest save to win, got %+v", got.Position)
	}
}

func TestLastWriteWinsWithoutInterveningFlush(t *testing.T) {
	s := newTestStore(t)
	old := panel.Snapshot{Position: geometry.Point{X: 1, Y: 1}}
	newer := panel.Snapshot{Position: geometry.Point{X: 9, Y: 9}, Pinned: true}

	// Back-to-back saves race their goroutines to the disk; call order
	// must still decide the outcome. Repeat to shake out schedulings.
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("p%d", i)
		s.Save(id, old)
		s.Save(id, newer)
	}
	s.Flush()

	layout := s.Load()
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("p%d", i)
		if got := layout[id]; got != newer {
			t.Fatalf("stale snapshot won for %s: got %+v, want %+v", id, got, newer)
		}
	}
}

func TestDeleteAfterSaveLeavesNoEntry(t *testing.T) {
	s := newTestStore(t)
	s.Save("preview", panel.Snapshot{Position: geometry.Point{X: 3, Y: 3}})
	s.Delete("preview")
	s.Flush()

	if _, ok := s.Load()["preview"]; ok {
		t.Error("delete issued after save must win")
	}
}

func TestLoadEmptyStoreFallsBackToNothing(t *testing.T) {
	s := newTestStore(t)
	layout := s.Load()
	if len(layout) != 0 {
		t.Errorf("expected empty layout, got %d entries", len(layout))
	}
}

func TestSaveLayoutPersistsAllEntries(t *testing.T) {
	s := newTestStore(t)
	s.SaveLayout(map[string]panel.Snapshot{
		"preview": {Position: geometry.Point{X: 2, Y: 3}},
		"info":    {Position: geometry.Point{X: 4, Y: 5}},
	})
	s.Flush()

	layout := s.Load()
	if len(layout) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(layout))
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	s := newTestStore(t)
	s.Save("preview", panel.Snapshot{})
	s.Flush()
	s.Delete("preview")
	s.Flush()

	if _, ok := s.Load()["preview"]; ok {
		t.Error("expected entry gone after delete")
	}
}

func TestLoadSkipsCorruptEntries(t *testing.T) {
	s := newTestStore(t)
	s.Save("good", panel.Snapshot{Position: geometry.Point{X: 7, Y: 7}})
	s.Flush()
	if err := s.d.Write("bad", []byte("{not json")); err != nil {
		t.Fatalf("write corrupt entry: %v", err)
	}

	layout := s.Load()
	if _, ok := layout["good"]; !ok {
		t.Error("good entry should survive a corrupt neighbor")
	}
	if _, ok := layout["bad"]; ok {
		t.Error("corrupt entry should be skipped, not decoded")
	}
}
