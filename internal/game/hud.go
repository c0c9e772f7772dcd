package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

const hudFontSize = 14

// hudText wraps the HUD typeface. The face source is built once from the
// bundled Go Mono TTF, so the HUD needs no font files on disk.
type hudText struct {
	face *text.GoTextFace
}

func newHUDText() *hudText {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		// The embedded TTF is a compile-time constant; failing to parse it
		// is a build defect, not a runtime condition.
		log.Printf("hud font: %v", err)
		return &hudText{}
	}
	return &hudText{face: &text.GoTextFace{Source: src, Size: hudFontSize}}
}

func (h *hudText) draw(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	if h.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, h.face, op)
}

// drawHUD renders the state readout in the top-left corner. Toggled with H.
func (g *Game) drawHUD(screen *ebiten.Image) {
	ai, aj := g.actor.GridPos()
	pos := g.actor.Logical()
	disp := g.actor.Displayed()
	dzW, dzH := DeadzoneSize(float64(g.vw), float64(g.vh))

	lines := []string{
		fmt.Sprintf("mode   %s  (M cycles, H hud, R report)", g.actor.Mode()),
		fmt.Sprintf("tile   (%d,%d)  facing %s", ai, aj, g.actor.Facing()),
		fmt.Sprintf("pos    (%.2f,%.2f)  drawn (%.2f,%.2f)", pos.I, pos.J, disp.I, disp.J),
		fmt.Sprintf("camera (%.0f,%.0f)  deadzone %.0fx%.0f", g.cam.Offset.X, g.cam.Offset.Y, dzW, dzH),
		fmt.Sprintf("tiles  %d drawn  queue %d  fps %.0f", g.tilesDrawn, g.actor.QueueLen(), ebiten.ActualFPS()),
	}
	fg := color.RGBA{R: 210, G: 220, B: 200, A: 255}
	y := 10.0
	for _, ln := range lines {
		g.hudFace.draw(screen, ln, 10, y, fg)
		y += hudFontSize + 4
	}
}
