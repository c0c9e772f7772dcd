package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxFrameDT caps the per-frame elapsed time so a stalled or backgrounded
// window cannot produce a huge position jump. Negative dt (clock weirdness)
// is dropped entirely.
const maxFrameDT = 0.05

// clampDT sanitises wall-clock elapsed time at the frame boundary.
func clampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDT {
		return maxFrameDT
	}
	return dt
}

// Asset keys and the files they load from. Missing files are fine: the
// store reports Failed and rendering stays on the procedural placeholders.
const (
	assetTileGrass = "tile/grass"
	assetTileDirt  = "tile/dirt"
	assetActor     = "actor"
)

// Config holds the startup choices. Tuning constants that never vary at
// runtime live next to the code they tune instead.
type Config struct {
	Mode       MotionMode
	StepSpeed  float64 // grid step speed, tiles per second
	FreeSpeed  float64 // free motion speed, tiles per second
	SnapSpeed  float64 // cosmetic snap speed, tiles per second
	SnapMinDur float64 // snap duration band, seconds
	SnapMaxDur float64
	WindowW    int
	WindowH    int
	AssetDir   string
}

func DefaultConfig() Config {
	return Config{
		Mode:       ModeHeldStep,
		StepSpeed:  4,
		FreeSpeed:  5,
		SnapSpeed:  6,
		SnapMinDur: 0.05,
		SnapMaxDur: 0.25,
		WindowW:    1280,
		WindowH:    720,
		AssetDir:   "assets",
	}
}

// Game owns all runtime state and implements ebiten.Game. One Update then
// one Draw per frame; nothing else mutates the actor or camera.
type Game struct {
	cfg    Config
	actor  *Actor
	cam    Camera
	assets *AssetStore

	vw, vh int // viewport in logical pixels, from Layout
	last   time.Time

	showHUD    bool
	hudFace    *hudText
	flash      string
	flashLeft  float64
	tilesDrawn int

	// GPU-side images built lazily from store images or placeholders.
	// The FromStore flags let a late-arriving asset replace its placeholder.
	tileImgs       [groundTypeCount]*ebiten.Image
	tileFromStore  [groundTypeCount]bool
	actorImg       *ebiten.Image
	actorFromStore bool
}

func New(cfg Config) *Game {
	actor := NewActor(cfg)
	g := &Game{
		cfg:     cfg,
		actor:   actor,
		cam:     NewCamera(Project(actor.Logical())),
		assets:  NewAssetStore(),
		vw:      cfg.WindowW,
		vh:      cfg.WindowH,
		last:    time.Now(),
		showHUD: true,
		hudFace: newHUDText(),
	}
	g.assets.Request(assetTileGrass, cfg.AssetDir+"/tile_grass.png")
	g.assets.Request(assetTileDirt, cfg.AssetDir+"/tile_dirt.png")
	g.assets.Request(assetActor, cfg.AssetDir+"/actor.png")
	return g
}

// Update advances one frame: input, then movement, then camera.
func (g *Game) Update() error {
	now := time.Now()
	dt := clampDT(now.Sub(g.last).Seconds())
	g.last = now

	g.assets.Drain()
	g.handleToggles()
	feedInput(g.actor)

	g.actor.Update(dt)
	g.cam.Follow(Project(g.actor.Logical()), float64(g.vw), float64(g.vh))

	if g.flashLeft > 0 {
		g.flashLeft -= dt
		if g.flashLeft <= 0 {
			g.flash = ""
		}
	}
	return nil
}

// handleToggles processes the edge-triggered utility keys.
func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		next := (g.actor.Mode() + 1) % motionModeCount
		g.actor.SetMode(next)
		g.showFlash("mode: " + next.String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.copyStateReport(); err != nil {
			log.Printf("copy report: %v", err)
			g.showFlash("report copy failed")
		} else {
			g.showFlash("report copied to clipboard")
		}
	}
}

func (g *Game) showFlash(msg string) {
	g.flash = msg
	g.flashLeft = 2.5
}

// Layout reports the current window size back as the logical viewport, so
// resizing the window resizes the world view one-to-one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.vw, g.vh = outsideWidth, outsideHeight
	}
	return g.vw, g.vh
}
