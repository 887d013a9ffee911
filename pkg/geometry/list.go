package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// List is an aggregate shape that finds the nearest hit across its members
type List struct {
	Shapes []core.Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...core.Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...core.Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit performs a linear scan over the members, shrinking the upper bound to the
// closest hit found so far (closest-hit semantics, not first-hit)
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
