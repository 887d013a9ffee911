package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene is the ownership root for a render: the camera, the world geometry,
// the background gradient endpoints and the sampling configuration. It is
// built once and read-only for the duration of a render.
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.List
	TopColor       core.Vec3 // Background gradient at the zenith
	BottomColor    core.Vec3 // Background gradient at the horizon
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
}

// NewScene creates an empty scene with the given camera configuration and
// the default white-to-sky-blue background
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		World:          geometry.NewList(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Sky blue
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White
		SamplingConfig: renderer.DefaultSamplingConfig(),
		CameraConfig:   cameraConfig,
	}
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the scene's aggregate geometry
func (s *Scene) GetWorld() core.Shape {
	return s.World
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
