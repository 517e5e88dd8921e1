package sketch

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS and the shape count in the top-left corner.
// The text is re-rendered about every half second.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func (o *fpsOverlay) update(dt float64, shapes int) {
	if o.img == nil {
		// 100x48 fits three DebugPrint lines.
		o.img = ebiten.NewImage(100, 48)
		o.since = 0.5
	}
	o.since += dt
	if o.since < 0.5 {
		return
	}
	o.since = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nShapes: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), shapes))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
