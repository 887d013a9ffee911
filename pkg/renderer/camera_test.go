package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestCamera_GetCameraForward(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        45.0,
	}
	camera := NewCamera(config)

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)

	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCamera_Dimensions(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float64
		expectedHeight int
	}{
		{"16:9", 400, 16.0 / 9.0, 225},
		{"square", 300, 1.0, 300},
		{"3:2", 1200, 3.0 / 2.0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(CameraConfig{
				Center:      core.NewVec3(0, 0, 0),
				LookAt:      core.NewVec3(0, 0, -1),
				Up:          core.NewVec3(0, 1, 0),
				Width:       tt.width,
				AspectRatio: tt.aspectRatio,
				VFov:        90.0,
			})
			if camera.Width() != tt.width {
				t.Errorf("Expected width %d, got %d", tt.width, camera.Width())
			}
			if camera.Height() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.Height())
			}
		})
	}
}

func TestCamera_PinholeRaysShareOrigin(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	camera := NewCamera(CameraConfig{
		Center:      center,
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        45.0,
		Aperture:    0.0, // Pinhole
	})
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		ray := camera.GetRay(random.Intn(100), random.Intn(100), random)
		if !ray.Origin.Equals(center) {
			t.Fatalf("Pinhole ray origin %v differs from camera center %v", ray.Origin, center)
		}
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	focusDistance := 5.0
	camera := NewCamera(CameraConfig{
		Center:        center,
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         100,
		AspectRatio:   1.0,
		VFov:          45.0,
		Aperture:      0.5,
		FocusDistance: focusDistance,
	})
	random := rand.New(rand.NewSource(42))

	lensRadius := 0.25
	jittered := false
	for i := 0; i < 50; i++ {
		ray := camera.GetRay(50, 50, random)
		offset := ray.Origin.Subtract(center)
		if offset.Length() > lensRadius+1e-9 {
			t.Fatalf("Lens offset %v exceeds lens radius %f", offset, lensRadius)
		}
		if offset.Length() > 1e-9 {
			jittered = true
		}
		// Lens samples stay on the u,v plane (z = 0 for this orientation)
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Lens offset %v left the lens plane", offset)
		}
	}

	if !jittered {
		t.Error("Aperture produced no origin jitter")
	}
}

func TestCamera_FieldOfViewGeometry(t *testing.T) {
	// Square image, 90° vertical fov, focus distance 1: the viewport spans
	// [-1,1]×[-1,1] on the plane z=-1
	camera := NewCamera(CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         10,
		AspectRatio:   1.0,
		VFov:          90.0,
		FocusDistance: 1.0,
	})
	random := rand.New(rand.NewSource(42))

	pixelSpan := 2.0 / 10.0
	for i := 0; i < 20; i++ {
		ray := camera.GetRay(0, 0, random) // Bottom-left pixel
		d := ray.Direction

		if math.Abs(d.Z-(-1)) > 1e-9 {
			t.Fatalf("Expected direction z=-1, got %v", d.Z)
		}
		if d.X < -1 || d.X > -1+pixelSpan {
			t.Fatalf("Direction x=%v outside bottom-left pixel span", d.X)
		}
		if d.Y < -1 || d.Y > -1+pixelSpan {
			t.Fatalf("Direction y=%v outside bottom-left pixel span", d.Y)
		}
	}
}

func TestCamera_AutoFocusDistance(t *testing.T) {
	// FocusDistance 0 focuses on the look-at point; rays through the image
	// center must pass near it even with a wide aperture
	lookAt := core.NewVec3(0, 0, -4)
	camera := NewCamera(CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		Width:         101,
		AspectRatio:   1.0,
		VFov:          60.0,
		Aperture:      1.0,
		FocusDistance: 0.0,
	})
	random := rand.New(rand.NewSource(42))

	// Center pixel rays converge on the focus plane regardless of lens jitter
	for i := 0; i < 20; i++ {
		ray := camera.GetRay(50, 50, random)
		tPlane := (lookAt.Z - ray.Origin.Z) / ray.Direction.Z
		atFocus := ray.At(tPlane)

		// Within the center pixel's footprint on the focus plane
		if atFocus.Subtract(lookAt).Length() > 0.1 {
			t.Fatalf("Center ray misses the focus point: %v", atFocus)
		}
	}
}
