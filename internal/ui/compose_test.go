package ui

import "testing"

func TestCompositeReplacesCoveredCells(t *testing.T) {
	base := "abcdef\nghijkl\nmnopqr"
	got := Composite(base, "XX\nYY", 2, 1)
	want := "abcdef\nghXXkl\nmnYYqr"
	if got != want {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}

func TestCompositePadsShortBaseLines(t *testing.T) {
	got := Composite("ab\ncd", "XX", 4, 0)
	want := "ab  XX\ncd"
	if got != want {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}

func TestCompositeClipsNegativeX(t *testing.T) {
	got := Composite("abcdef", "XYZ", -1, 0)
	want := "YZcdef"
	if got != want {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}

func TestCompositeSkipsRowsAboveViewport(t *testing.T) {
	got := Composite("abc", "XX\nYY", 0, -1)
	want := "YYc"
	if got != want {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}

func TestCompositeExtendsBaseDownward(t *testing.T) {
	got := Composite("abc", "XX", 0, 2)
	want := "abc\n\nXX"
	if got != want {
		t.Errorf("Composite = %q, want %q", got, want)
	}
}
