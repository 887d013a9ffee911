package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() core.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// PathTracingIntegrator estimates light transport by recursively following
// scattered rays up to a bounce limit
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, random *rand.Rand) core.Vec3 {
	return pt.rayColorRecursive(ray, scene, random, pt.maxDepth)
}

// rayColorRecursive returns the color for a given ray, bounded by depth
func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, scene Scene, random *rand.Rand, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	// Check for intersections; tMin 0.001 suppresses shadow acne from
	// floating-point error at the scattering origin
	hit, isHit := scene.GetWorld().Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray, scene)
	}

	// Try to scatter the ray
	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	// Recursive light-transport estimate: attenuation ⊙ incoming light
	incomingLight := pt.rayColorRecursive(scatter.Scattered, scene, random, depth-1)
	return scatter.Attenuation.MultiplyVec(incomingLight)
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	// Get colors from the scene
	topColor, bottomColor := scene.GetBackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
