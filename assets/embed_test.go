package assets

import (
	"testing"
)

func TestDecodeEmbeddedImages(t *testing.T) {
	tests := []struct {
		path string
		w, h int
	}{
		{path: "mario-Sheet.png", w: 96, h: 192},
		{path: "assets/floor_stone.png", w: 32, h: 32},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			img, err := DecodeImage(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			b := img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	b, err := LoadFile("jump.wav")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) < 44 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		t.Fatal("jump.wav is not a RIFF/WAVE file")
	}
	if _, err := LoadFile("missing.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"":                           "",
		"jump.wav":                   "jump.wav",
		"assets/jump.wav":            "jump.wav",
		"/home/dev/smb/assets/a.png": "a.png",
		"/tmp/b.png":                 "b.png",
	}
	for in, want := range tests {
		if got := cleanAssetPath(in); got != want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}
