package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBinding maps one physical key to a logical direction. WASD and the
// arrow keys both drive the actor.
type keyBinding struct {
	key ebiten.Key
	dir Direction
}

var keyBindings = []keyBinding{
	{ebiten.KeyW, DirUp},
	{ebiten.KeyArrowUp, DirUp},
	{ebiten.KeyS, DirDown},
	{ebiten.KeyArrowDown, DirDown},
	{ebiten.KeyA, DirLeft},
	{ebiten.KeyArrowLeft, DirLeft},
	{ebiten.KeyD, DirRight},
	{ebiten.KeyArrowRight, DirRight},
}

// feedInput translates this frame's key edges into movement intents.
// inpututil reports raw press/release edges, so OS auto-repeat never
// produces extra tap-mode steps. Unbound keys are ignored.
//
// The held set is tracked in every mode, so cycling into a held-key mode
// mid-press starts from an accurate key state. Each physical key counts
// separately: releasing W keeps ArrowUp held.
func feedInput(a *Actor) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			a.Press(b.dir)
			a.EnqueueStep(b.dir) // no-op outside tap mode
		}
		if inpututil.IsKeyJustReleased(b.key) {
			a.Release(b.dir)
		}
	}
}
