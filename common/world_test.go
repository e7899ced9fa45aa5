package common

import "testing"

func TestScreenWorldRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		sx, sy     float64
		camX, camY float64
		zoom       float64
	}{
		{"origin", 0, 0, 0, 0, 1},
		{"corner", BaseWidth, BaseHeight, 0, 0, 1},
		{"zoomed_offset", 300, 200, 120, -40, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := ScreenToWorld(tc.sx, tc.sy, tc.camX, tc.camY, tc.zoom)
			sx, sy := WorldToScreen(x, y, tc.camX, tc.camY, tc.zoom)
			if sx != tc.sx || sy != tc.sy {
				t.Fatalf("round trip (%v,%v) -> (%v,%v)", tc.sx, tc.sy, sx, sy)
			}
		})
	}
}

func TestScreenCornerIsHalfExtent(t *testing.T) {
	// the top-right screen corner is (+halfW, +halfH) with the camera at the origin
	x, y := ScreenToWorld(BaseWidth, 0, 0, 0, 1)
	if x != BaseWidth/2 || y != BaseHeight/2 {
		t.Fatalf("corner = (%v, %v)", x, y)
	}
	if PixelsToUnits(x) != 6.4 || PixelsToUnits(y) != 3.6 {
		t.Fatalf("half extents in units = (%v, %v)", PixelsToUnits(x), PixelsToUnits(y))
	}
}
