// Package physics provides rectangle geometry and the hit predicates used for collisions.
package physics

// Rect is an axis-aligned rectangle in field pixels.
// A zero width or height is valid (projectiles are one pixel wide lines).
type Rect struct {
	TopLeftX     int
	TopLeftY     int
	BottomRightX int
	BottomRightY int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{
		TopLeftX:     x,
		TopLeftY:     y,
		BottomRightX: x + width,
		BottomRightY: y + height,
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.BottomRightX - r.TopLeftX
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.BottomRightY - r.TopLeftY
}

// Center returns the rectangle's midpoint, rounded toward the top-left.
func (r Rect) Center() (x, y int) {
	return (r.TopLeftX + r.BottomRightX) / 2, (r.TopLeftY + r.BottomRightY) / 2
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{
		TopLeftX:     r.TopLeftX + dx,
		TopLeftY:     r.TopLeftY + dy,
		BottomRightX: r.BottomRightX + dx,
		BottomRightY: r.BottomRightY + dy,
	}
}

// Intersects reports whether a lies strictly inside b horizontally while
// the vertical spans overlap. All comparisons are strict, so touching
// edges never count.
func Intersects(a, b Rect) bool {
	return a.TopLeftX > b.TopLeftX &&
		a.BottomRightX < b.BottomRightX &&
		a.TopLeftY < b.BottomRightY &&
		a.BottomRightY > b.TopLeftY
}

// HitFromBelow is the test used against targets hit by rising fire and
// against barrier bases: the impactor's top edge must sit strictly inside
// the target's vertical span.
func HitFromBelow(in, target Rect) bool {
	return Intersects(in, target) && in.TopLeftY > target.TopLeftY
}

// HitFromAbove is the ship's test against falling fire: the impactor
// must straddle the target's top edge.
func HitFromAbove(in, target Rect) bool {
	return Intersects(in, target) && in.TopLeftY < target.TopLeftY
}

// Shields reports whether an existing damage zone absorbs an impact.
// The zone must contain the impactor's horizontal span and either sit
// between the impactor's edges from above or cover its top edge.
//
// The first vertical clause can never hold for a well-formed zone; it is
// kept so the absorption rule stays exactly as the game has always played.
func Shields(zone, in Rect) bool {
	if !(zone.TopLeftX < in.TopLeftX && zone.BottomRightX > in.BottomRightX) {
		return false
	}
	below := zone.TopLeftY > in.BottomRightY && zone.BottomRightY < in.BottomRightY
	above := zone.TopLeftY < in.TopLeftY && zone.BottomRightY > in.TopLeftY
	return below || above
}
