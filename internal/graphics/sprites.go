package graphics

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager loads PNG sprites from one image directory and caches them.
// Missing or unreadable files are replaced by flat placeholder images.
type SpriteManager struct {
	imageDir string
	size     int
	sprites  map[string]*ebiten.Image
	missing  map[string]bool
}

func NewSpriteManager(imageDir string, size int) *SpriteManager {
	return &SpriteManager{
		imageDir: imageDir,
		size:     size,
		sprites:  make(map[string]*ebiten.Image),
		missing:  make(map[string]bool),
	}
}

// GetSprite returns the named sprite, loading it on first use
func (sm *SpriteManager) GetSprite(name string) *ebiten.Image {
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}

	img, err := LoadImage(filepath.Join(sm.imageDir, name+".png"))
	if err != nil {
		sm.missing[name] = true
		img = sm.createPlaceholder(name)
	}
	sm.sprites[name] = img
	return img
}

// IsPlaceholder reports whether name fell back to a placeholder
func (sm *SpriteManager) IsPlaceholder(name string) bool {
	return sm.missing[name]
}

// LoadImage decodes a PNG file into an ebiten image
func LoadImage(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func (sm *SpriteManager) createPlaceholder(name string) *ebiten.Image {
	img := ebiten.NewImage(sm.size, sm.size)
	img.Fill(PlaceholderColor(name))
	return img
}

// PlaceholderColor picks a stable color per sprite name
func PlaceholderColor(name string) color.RGBA {
	hasher := fnv.New32a()
	hasher.Write([]byte(name))
	h := hasher.Sum32()
	return color.RGBA{
		R: 64 + uint8(h&0x7f),
		G: 64 + uint8((h>>8)&0x7f),
		B: 64 + uint8((h>>16)&0x7f),
		A: 255,
	}
}
