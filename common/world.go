package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is ebiten's update rate.
	TPS = 60
	// FixedStep is the physics step in seconds.
	FixedStep = 0.02
	// MaxFixedSteps bounds catch-up after a stall.
	MaxFixedSteps = 5

	// PixelsPerUnit converts tuning values written in world units into the
	// pixel space the physics and renderer work in.
	PixelsPerUnit = 100.0

	// Gravity in world units per second squared, y up.
	Gravity = -9.81
)

// UnitsToPixels scales a world-unit length to pixels.
func UnitsToPixels(u float64) float64 {
	return u * PixelsPerUnit
}

// PixelsToUnits scales a pixel length to world units.
func PixelsToUnits(p float64) float64 {
	return p / PixelsPerUnit
}

// WorldToScreen maps a y-up world point (pixels, origin at the camera) to
// y-down screen coordinates.
func WorldToScreen(x, y, camX, camY, zoom float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	sx := (x-camX)*zoom + BaseWidth/2
	sy := BaseHeight/2 - (y-camY)*zoom
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(sx, sy, camX, camY, zoom float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	x := (sx-BaseWidth/2)/zoom + camX
	y := (BaseHeight/2-sy)/zoom + camY
	return x, y
}
