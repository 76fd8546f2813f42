package files

import (
	"os"
	"path/filepath"
	"testing"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListDirectoriesFirstThenByName(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "b.txt"), "x")
	mustWrite(t, filepath.Join(dir, "a.txt"), "x")
	if err := os.Mkdir(filepath.Join(dir, "zdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	want := []string{"zdir", "a.txt", "b.txt"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
	if !entries[0].IsDir {
		t.Error("zdir should be marked a directory")
	}
	if entries[1].Size != 1 {
		t.Errorf("a.txt size = %d, want 1", entries[1].Size)
	}
}

func TestListMissingDirFails(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestHeadLimitsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	mustWrite(t, path, "one\ntwo\nthree\nfour\n")

	lines := Head(path, 2)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("Head = %v", lines)
	}
}

func TestHeadMissingFileIsEmpty(t *testing.T) {
	if lines := Head(filepath.Join(t.TempDir(), "nope"), 5); lines != nil {
		t.Errorf("expected nil for missing file, got %v", lines)
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, c := range cases {
		if got := HumanSize(c.n); got != c.want {
			t.Errorf("HumanSize(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
