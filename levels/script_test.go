package levels

import (
	"errors"
	"strings"
	"testing"
)

type fakeHost struct {
	halfW, halfH float64
	floors       []string
	spawns       []Point
	prefabs      []string
	floorErr     error
}

func (h *fakeHost) Bounds() (float64, float64) { return h.halfW, h.halfH }

func (h *fakeHost) Floor(prefab string, lines int) (int, error) {
	if h.floorErr != nil {
		return 0, h.floorErr
	}
	h.floors = append(h.floors, prefab)
	return len(FloorPositions(h.halfW, h.halfH, TilePitch, lines)), nil
}

func (h *fakeHost) Spawn(prefab string, x, y float64) error {
	h.prefabs = append(h.prefabs, prefab)
	h.spawns = append(h.spawns, Point{X: x, Y: y})
	return nil
}

func TestRunFirstLevel(t *testing.T) {
	host := &fakeHost{halfW: 6.4, halfH: 3.6}
	if err := RunScript("first_level", host); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if len(host.floors) != 1 || host.floors[0] != "floor_stone.yaml" {
		t.Fatalf("unexpected floors %v", host.floors)
	}
	if len(host.prefabs) != 1 || host.prefabs[0] != "mario.yaml" {
		t.Fatalf("unexpected spawns %v", host.prefabs)
	}
	// Mario starts above the two floor rows
	if y := host.spawns[0].Y; y <= -3.6+TilePitch {
		t.Fatalf("mario spawned inside the floor at y=%v", y)
	}
}

func TestRunScriptErrors(t *testing.T) {
	boom := errors.New("missing prefab")

	tests := []struct {
		name    string
		src     string
		host    *fakeHost
		wantErr error
		wantMsg string
	}{
		{
			name:    "host_error_unwraps",
			src:     `build := func(e) { e.floor("nope.yaml", 2) }`,
			host:    &fakeHost{halfW: 1, halfH: 1, floorErr: boom},
			wantErr: boom,
		},
		{
			name:    "no_build",
			src:     `x := 1`,
			host:    &fakeHost{},
			wantMsg: "compile",
		},
		{
			name:    "bad_argument",
			src:     `build := func(e) { e.spawn("mario.yaml", "left", 0) }`,
			host:    &fakeHost{},
			wantMsg: "run",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Run(tc.name, []byte(tc.src), tc.host)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if tc.wantMsg != "" && !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestRunScriptUnknown(t *testing.T) {
	if err := RunScript("does_not_exist", &fakeHost{}); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := map[string]string{
		"first_level":                      "scripts/first_level.tengo",
		"first_level.tengo":                "scripts/first_level.tengo",
		"levels/scripts/first_level.tengo": "scripts/first_level.tengo",
	}
	for in, want := range tests {
		if got := cleanScriptPath(in); got != want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
