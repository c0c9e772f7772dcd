package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 18, B: 14, A: 255})

	vw := float64(g.vw)
	vh := float64(g.vh)
	off := g.cam.Offset

	g.tilesDrawn = VisibleTiles(off, vw, vh, func(td TileDraw) {
		img := g.tileImage(td.Ground)
		bw := img.Bounds().Dx()
		bh := img.Bounds().Dy()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(tileWidth/float64(bw), tileHeight/float64(bh))
		op.GeoM.Translate(td.Pos.X-off.X+vw/2-halfTileW, td.Pos.Y-off.Y+vh/2-halfTileH)
		screen.DrawImage(img, &op)
	})

	g.drawActor(screen, vw, vh)

	if g.showHUD {
		g.drawHUD(screen)
	}
	g.drawDeadzone(screen, vw, vh)
	if g.flash != "" {
		ebitenutil.DebugPrintAt(screen, g.flash, 8, g.vh-20)
	}
}

func (g *Game) drawActor(screen *ebiten.Image, vw, vh float64) {
	off := g.cam.Offset
	p := Project(g.actor.Displayed())
	sx := p.X - off.X + vw/2
	sy := p.Y - off.Y + vh/2

	img := g.actorImage()
	if img == nil {
		// Asset layer completely unavailable: degrade to a marker.
		vector.FillCircle(screen, float32(sx), float32(sy), 12,
			color.RGBA{R: 208, G: 176, B: 96, A: 255}, true)
		return
	}

	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	bob := 0.0
	if g.actor.AnimFrame() == 1 {
		bob = 2
	}
	var op ebiten.DrawImageOptions
	// Left-hand facings mirror the sprite.
	if f := g.actor.Facing(); f == DirLeft || f == DirDown {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	// Feet anchored slightly below the tile centre.
	op.GeoM.Translate(sx-w/2, sy-h+bob+halfTileH/2)
	screen.DrawImage(img, &op)
}

// drawDeadzone outlines the camera deadzone when the HUD is visible.
func (g *Game) drawDeadzone(screen *ebiten.Image, vw, vh float64) {
	if !g.showHUD {
		return
	}
	dzW, dzH := DeadzoneSize(vw, vh)
	x := float32(vw/2 - dzW/2)
	y := float32(vh/2 - dzH/2)
	vector.StrokeRect(screen, x, y, float32(dzW), float32(dzH), 1,
		color.RGBA{R: 70, G: 100, B: 70, A: 90}, false)
}

// tileImage returns the GPU image for a ground type: the loaded asset once
// Ready, a procedural placeholder until then.
func (g *Game) tileImage(gr GroundType) *ebiten.Image {
	key := assetTileGrass
	if gr == GroundDirt {
		key = assetTileDirt
	}
	if g.assets.Ready(key) && !g.tileFromStore[gr] {
		g.tileImgs[gr] = ebiten.NewImageFromImage(g.assets.Image(key))
		g.tileFromStore[gr] = true
	}
	if g.tileImgs[gr] == nil {
		g.tileImgs[gr] = ebiten.NewImageFromImage(placeholderTile(groundFill(gr), groundEdge(gr)))
	}
	return g.tileImgs[gr]
}

func (g *Game) actorImage() *ebiten.Image {
	if g.assets.Ready(assetActor) && !g.actorFromStore {
		g.actorImg = ebiten.NewImageFromImage(g.assets.Image(assetActor))
		g.actorFromStore = true
	}
	if g.actorImg == nil {
		g.actorImg = ebiten.NewImageFromImage(placeholderActor())
	}
	return g.actorImg
}
