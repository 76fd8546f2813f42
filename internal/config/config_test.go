package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PanelMinWidth != 24 || cfg.PanelMinHeight != 6 {
		t.Errorf("min size = %dx%d, want 24x6", cfg.PanelMinWidth, cfg.PanelMinHeight)
	}
	if cfg.VisibleMargin != 2 {
		t.Errorf("VisibleMargin = %d, want 2", cfg.VisibleMargin)
	}
	if cfg.FollowOffsetX != 2 || cfg.FollowOffsetY != 1 {
		t.Errorf("follow offset = (%d,%d), want (2,1)", cfg.FollowOffsetX, cfg.FollowOffsetY)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FILEDECK_PANEL_MIN_WIDTH", "30")
	t.Setenv("FILEDECK_START_DIR", "/srv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PanelMinWidth != 30 {
		t.Errorf("PanelMinWidth = %d, want 30", cfg.PanelMinWidth)
	}
	if cfg.StartDir != "/srv" {
		t.Errorf("StartDir = %q, want /srv", cfg.StartDir)
	}
}

func TestConfigFileFromOverridePath(t *testing.T) {
	dir := t.TempDir()
	content := "panel_min_width: 40\nvisible_margin: 3\n"
	if err := os.WriteFile(filepath.Join(dir, ".filedeck.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, t.TempDir())
	t.Setenv("FILEDECK_CONFIG_PATH", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PanelMinWidth != 40 {
		t.Errorf("PanelMinWidth = %d, want 40", cfg.PanelMinWidth)
	}
	if cfg.VisibleMargin != 3 {
		t.Errorf("VisibleMargin = %d, want 3", cfg.VisibleMargin)
	}
	// Untouched keys keep their defaults.
	if cfg.PanelMinHeight != 6 {
		t.Errorf("PanelMinHeight = %d, want 6", cfg.PanelMinHeight)
	}
}
