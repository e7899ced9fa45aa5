package component

import "image/color"

// Camera is an orthographic view centered on its transform.
type Camera struct {
	// OrthoSize is the visible half height in world units.
	OrthoSize float64
	// Smoothness is the follow lerp factor per frame; zero pins the camera.
	Smoothness float64
	Follow     bool
	ClearColor color.NRGBA

	// HalfWidth and HalfHeight are the visible half extents in world units.
	HalfWidth  float64
	HalfHeight float64
}

var CameraComponent = NewComponent[Camera]()
