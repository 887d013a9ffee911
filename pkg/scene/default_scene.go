package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: three spheres on a large ground
// sphere, with a hollow glass sphere on the left realized by nesting a
// negative-radius inner shell
func NewDefaultScene(width int) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         width,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 0.0, // Auto-focus on the look-at point
	}

	s := NewScene(cameraConfig)

	// Create materials
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	// Ground is a very large sphere below the scene
	ground := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)
	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)

	// Hollow glass sphere: the negative-radius inner shell flips its normal,
	// so the air gap refracts correctly
	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass)

	sphereRight := geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	s.World.Add(ground, sphereCenter, hollowGlassOuter, hollowGlassInner, sphereRight)

	return s
}
