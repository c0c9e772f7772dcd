package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// stateReport builds a plain-text snapshot of the whole runtime state,
// suitable for pasting into a bug report.
func (g *Game) stateReport() string {
	ai, aj := g.actor.GridPos()
	pos := g.actor.Logical()
	disp := g.actor.Displayed()
	sp := Project(pos)
	dzW, dzH := DeadzoneSize(float64(g.vw), float64(g.vh))
	iMin, jMin, iMax, jMax := TileRange(g.cam.Offset, float64(g.vw), float64(g.vh))

	var b strings.Builder
	fmt.Fprintf(&b, "--- isowalk state report ---\n")
	fmt.Fprintf(&b, "mode=%s viewport=%dx%d\n", g.actor.Mode(), g.vw, g.vh)
	fmt.Fprintf(&b, "actor: tile=(%d,%d) pos=(%.3f,%.3f) drawn=(%.3f,%.3f) facing=%s stepping=%v queue=%d\n",
		ai, aj, pos.I, pos.J, disp.I, disp.J, g.actor.Facing(), g.actor.Stepping(), g.actor.QueueLen())
	fmt.Fprintf(&b, "screen: actor=(%.1f,%.1f) camera=(%.1f,%.1f) deadzone=%.0fx%.0f\n",
		sp.X, sp.Y, g.cam.Offset.X, g.cam.Offset.Y, dzW, dzH)
	fmt.Fprintf(&b, "tiles: range=[%d..%d]x[%d..%d] drawn=%d\n", iMin, iMax, jMin, jMax, g.tilesDrawn)
	for _, key := range []string{assetTileGrass, assetTileDirt, assetActor} {
		fmt.Fprintf(&b, "asset %-10s %s\n", key, g.assets.State(key))
	}
	return b.String()
}

// copyStateReport puts the snapshot on the system clipboard.
func (g *Game) copyStateReport() error {
	return clipboard.WriteAll(g.stateReport())
}
