// Package assets is the presentation-boundary sprite cache (out of
// scope per the core spec's non-goals; specified only at the interface
// level). It generalizes the teacher's internal/assets/model_manager.go
// (an id-keyed cache with lazy Load and an explicit Cleanup) from
// raylib 3D models to 2D ebiten images decoded from a PNG atlas, the
// renderer this module actually carries in its dependency stack.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Atlas caches decoded sprite images by id, loading each lazily from
// assets/sprites/<id>.png and keeping it resident until Cleanup.
type Atlas struct {
	dir    string
	images map[string]*ebiten.Image
}

// NewAtlas creates an atlas rooted at dir (conventionally "assets/sprites").
func NewAtlas(dir string) *Atlas {
	return &Atlas{dir: dir, images: make(map[string]*ebiten.Image)}
}

// Sprite returns the decoded image for id, loading and caching it on
// first use.
func (a *Atlas) Sprite(id string) (*ebiten.Image, error) {
	if img, ok := a.images[id]; ok {
		return img, nil
	}

	path := filepath.Join(a.dir, fmt.Sprintf("%s.png", id))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open sprite %q: %w", id, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("assets: decode sprite %q: %w", id, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	a.images[id] = img
	log.Info("loaded sprite", "id", id, "path", path)
	return img, nil
}

// Cleanup releases every cached sprite, mirroring the teacher's explicit
// unload-everything shutdown hook.
func (a *Atlas) Cleanup() {
	for id, img := range a.images {
		img.Deallocate()
		delete(a.images, id)
	}
}

// UIFont returns the fixed-width bitmap face used for HUD text (gold,
// wave counters, analytics overlay) — no font file to ship, so it is
// built in, the way golang.org/x/image/font/basicfont is meant to be used.
func UIFont() font.Face {
	return basicfont.Face7x13
}
