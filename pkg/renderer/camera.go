package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains the parameters a camera is derived from
type CameraConfig struct {
	Center        core.Vec3 // Look-from point
	LookAt        core.Vec3 // Look-at point
	Up            core.Vec3 // World-up vector
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focus plane (0 = auto from Center/LookAt)
}

// Camera maps pixel coordinates to world-space rays through a thin-lens model
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
	width, height   int
}

// NewCamera derives a camera from its configuration.
// The configuration is a precondition: Center must differ from LookAt and Up
// must not be parallel to the view direction, or the basis degenerates.
func NewCamera(config CameraConfig) *Camera {
	height := int(float64(config.Width) / config.AspectRatio)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		// Auto-focus on the look-at point
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Orthonormal basis: w points backwards, u right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	// Viewport basis vectors scaled by the focus distance so that lens
	// jitter pivots around points on the focus plane
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		width:           config.Width,
		height:          height,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GetRay generates a ray for pixel (i, j) with sub-pixel jitter, where j
// counts scanlines up from the bottom of the image. With a non-zero aperture
// the ray origin is additionally jittered across the lens disk.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	s := (float64(i) + random.Float64()) / float64(c.width)
	t := (float64(j) + random.Float64()) / float64(c.height)
	return c.rayAt(s, t, random)
}

// rayAt generates a ray for normalized image coordinates (s, t) in [0,1]
func (c *Camera) rayAt(s, t float64, random *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the camera's forward viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
