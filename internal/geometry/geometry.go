// Package geometry provides pure position/size math for the panel engine:
// clamping rects to viewport bounds and overlap tests. It holds no state;
// callers pass the current viewport on every call so mid-gesture window
// resizes are always reflected.
package geometry

// Point is a position in viewport coordinates (top-left origin).
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect combines a top-left position with a size.
type Rect struct {
	Point
	Size
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns p shifted by -d.
func (p Point) Sub(d Point) Point {
	return Point{X: p.X - d.X, Y: p.Y - d.Y}
}

// ClampPosition returns the nearest position to pos that keeps at least
// margin units of a size-sized panel inside the viewport on every edge.
// The panel may hang mostly off-screen, but never disappear entirely.
// For viewports smaller than margin the result degrades to pinning the
// panel's top-left inside the viewport; clamping never fails.
func ClampPosition(pos Point, size Size, viewport Size, margin int) Point {
	minX := margin - size.Width
	maxX := viewport.Width - margin
	minY := margin - size.Height
	maxY := viewport.Height - margin
	if maxX < minX {
		// Degenerate viewport: collapse the range rather than error.
		minX, maxX = 0, max(0, viewport.Width-1)
	}
	if maxY < minY {
		minY, maxY = 0, max(0, viewport.Height-1)
	}
	return Point{
		X: clamp(pos.X, minX, maxX),
		Y: clamp(pos.Y, minY, maxY),
	}
}

// ClampSize returns size raised to at least min in both dimensions.
func ClampSize(size Size, min Size) Size {
	return Size{
		Width:  max(size.Width, min.Width),
		Height: max(size.Height, min.Height),
	}
}

// ClampRect applies ClampSize then ClampPosition, so a resized rect both
// respects minimums and stays visible.
func ClampRect(r Rect, min Size, viewport Size, margin int) Rect {
	r.Size = ClampSize(r.Size, min)
	r.Point = ClampPosition(r.Point, r.Size, viewport, margin)
	return r
}

// Overlap reports whether two rects share any area.
func Overlap(a, b Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
