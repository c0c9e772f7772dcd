package game

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// AssetState is the lifecycle of one named asset.
type AssetState uint8

const (
	AssetNotRequested AssetState = iota
	AssetLoading
	AssetReady
	AssetFailed
)

func (s AssetState) String() string {
	switch s {
	case AssetLoading:
		return "loading"
	case AssetReady:
		return "ready"
	case AssetFailed:
		return "failed"
	default:
		return "not-requested"
	}
}

type assetResult struct {
	key string
	img image.Image
	err error
}

// AssetStore loads named images in the background and exposes only a state
// query and the decoded image. Loads are fire-and-forget: callers check
// Ready at render time and substitute a placeholder until then. All state
// mutation happens on the frame goroutine via Drain.
type AssetStore struct {
	states  map[string]AssetState
	images  map[string]image.Image
	results chan assetResult
}

func NewAssetStore() *AssetStore {
	return &AssetStore{
		states:  make(map[string]AssetState),
		images:  make(map[string]image.Image),
		results: make(chan assetResult, 16),
	}
}

// Request starts loading path under key. Repeated requests for a key that
// is already loading or resolved are no-ops.
func (s *AssetStore) Request(key, path string) {
	if s.states[key] != AssetNotRequested {
		return
	}
	s.states[key] = AssetLoading
	go func() {
		img, err := loadPNG(path)
		s.results <- assetResult{key: key, img: img, err: err}
	}()
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Drain applies any completed loads. Called once per frame; never blocks.
func (s *AssetStore) Drain() {
	for {
		select {
		case r := <-s.results:
			s.apply(r)
		default:
			return
		}
	}
}

func (s *AssetStore) apply(r assetResult) {
	if r.err != nil {
		s.states[r.key] = AssetFailed
		return
	}
	s.images[r.key] = r.img
	s.states[r.key] = AssetReady
}

// State returns the lifecycle state for a key.
func (s *AssetStore) State(key string) AssetState { return s.states[key] }

// Ready reports whether the image for key is available.
func (s *AssetStore) Ready(key string) bool { return s.states[key] == AssetReady }

// Image returns the decoded image for key, or nil if not Ready.
func (s *AssetStore) Image(key string) image.Image { return s.images[key] }

// placeholderTile builds a stand-in diamond tile so the world renders with
// no art files on disk.
func placeholderTile(fill, edge color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileWidth, tileHeight))
	for y := 0; y < tileHeight; y++ {
		for x := 0; x < tileWidth; x++ {
			dx := (float64(x) + 0.5 - halfTileW) / halfTileW
			dy := (float64(y) + 0.5 - halfTileH) / halfTileH
			d := math.Abs(dx) + math.Abs(dy)
			switch {
			case d > 1:
				// outside the diamond: transparent
			case d > 0.92:
				img.SetRGBA(x, y, edge)
			default:
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// placeholderActor builds a stand-in sprite: a simple two-tone figure the
// size of the real actor art.
func placeholderActor() *image.RGBA {
	const w, h = 40, 56
	body := color.RGBA{R: 208, G: 176, B: 96, A: 255}
	trim := color.RGBA{R: 120, G: 92, B: 48, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - w/2) / (w / 2)
			dy := (float64(y) + 0.5 - h/2) / (h / 2)
			d := dx*dx + dy*dy
			switch {
			case d > 1:
			case d > 0.8:
				img.SetRGBA(x, y, trim)
			default:
				img.SetRGBA(x, y, body)
			}
		}
	}
	return img
}
