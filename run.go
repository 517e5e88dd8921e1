package sketch

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the window outside the canvas area.
	ClearColor Color
	// ShowFPS overlays FPS/TPS and the shape count in the top-left corner.
	ShowFPS bool
	// Update, if set, runs after Canvas.Update each tick. A non-nil error
	// stops the game loop.
	Update func() error
}

type game struct {
	canvas *Canvas
	cfg    RunConfig
	fps    fpsOverlay
}

func (g *game) Update() error {
	g.canvas.Update()
	if g.cfg.ShowFPS {
		g.fps.update(1/float64(ebiten.TPS()), len(g.canvas.shapes))
	}
	if g.cfg.Update != nil {
		return g.cfg.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.canvas.Draw(screen)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs the canvas until the window is closed or
// RunConfig.Update returns an error. When storage is configured the drawing
// is saved once more on exit.
func Run(c *Canvas, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = c.cfg.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = c.cfg.Height
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = Color{0.9, 0.9, 0.9, 1}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	runErr := ebiten.RunGame(&game{canvas: c, cfg: cfg})
	if c.cfg.Storage != nil {
		if err := c.Save(); err != nil && runErr == nil {
			runErr = err
		}
	}
	return runErr
}

var _ ebiten.Game = (*game)(nil)
