package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/smb/assets"
)

var (
	mu     sync.Mutex
	images = map[string]*ebiten.Image{}
)

// LoadImage loads an image from assets or the filesystem and caches it by
// key, so every floor tile shares one texture.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	mu.Lock()
	defer mu.Unlock()
	if img := images[key]; img != nil {
		return img, nil
	}
	src, err := decodeFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	images[key] = img
	return img, nil
}

// FrameRect is the pixel rectangle of one frame on a grid sheet.
func FrameRect(col, row, w, h int) image.Rectangle {
	return image.Rect(col*w, row*h, (col+1)*w, (row+1)*h)
}

func decodeFromAssetsOrFS(path string) (image.Image, error) {
	if img, err := assets.DecodeImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return im, nil
			}
		}
	}
	return nil, fmt.Errorf("render: failed to load image %s", path)
}
