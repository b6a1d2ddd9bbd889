// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are overlapping. Touching circles do not collide.
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided    bool
	Normal      Vector2D
	Distance    float64
	Penetration float64
}

// CheckCollision performs detailed collision detection between two circles.
// Normal points from a towards b and is the zero vector when the centres coincide.
func CheckCollision(a, b Circle) CollisionResult {
	offset := b.Center.Sub(a.Center)
	distance := offset.Length()

	if distance >= a.Radius+b.Radius {
		return CollisionResult{Collided: false, Distance: distance}
	}

	return CollisionResult{
		Collided:    true,
		Normal:      offset.Normalize(),
		Distance:    distance,
		Penetration: a.Radius + b.Radius - distance,
	}
}

// Rect represents an axis-aligned rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Min returns the bottom-left corner
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the top-right corner
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// Contains reports whether point lies inside the rectangle (min edges inclusive).
func (r Rect) Contains(point Vector2D) bool {
	min, max := r.Min(), r.Max()
	return point.X >= min.X &&
		point.X < max.X &&
		point.Y >= min.Y &&
		point.Y < max.Y
}

// Overlaps reports whether two rectangles strictly overlap; shared edges do not count.
func (r Rect) Overlaps(other Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := other.Min(), other.Max()
	return rMax.X > oMin.X &&
		rMin.X < oMax.X &&
		rMax.Y > oMin.Y &&
		rMin.Y < oMax.Y
}

// Bounds returns the axis-aligned bounding box of the circle
func (c Circle) Bounds() Rect {
	return Rect{Center: c.Center, Width: c.Radius * 2, Height: c.Radius * 2}
}
