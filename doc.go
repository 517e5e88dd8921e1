// Package sketch is the interactive shape-manipulation engine of a small
// vector drawing app, built on [Ebitengine].
//
// A [Canvas] owns rectangles, lines and ellipses, a [Viewport] that maps
// screen pixels to canvas units, and at most one active [GestureSession].
// Pressing on a movable shape opens a session; moving the pointer moves the
// shape, or resizes it when the press landed in one of the 10x10 corner
// zones of a rectangle; releasing the pointer or leaving the canvas ends it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	c := sketch.NewCanvas(sketch.DefaultConfig())
//	c.Create(sketch.KindRect)
//	sketch.Run(c, sketch.RunConfig{Title: "Sketch"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Canvas.Update] and [Canvas.Draw] directly:
//
//	type Game struct{ canvas *sketch.Canvas }
//
//	func (g *Game) Update() error         { g.canvas.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.canvas.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return 900, 600 }
//
// # Pointer entry points
//
// Hosts that do not use Ebitengine input can drive the engine directly with
// [Canvas.OnPointerDown], [Canvas.OnPointerMove], [Canvas.OnPointerUp] and
// [Canvas.OnPointerLeave]. Screen positions are converted with
// x = (clientX - originX) / scaleX, and likewise for y.
//
// # Gestures
//
// [Classify] tests the corner zones in the order top-left, top-right,
// bottom-left, bottom-right; the first zone containing the pointer wins.
// A move places the shape's anchor at the pointer. A resize sets the size to
// the session-start size plus the pointer displacement. [Config.Resize] and
// [Config.PreserveGrabOffset] select the alternative behaviors.
//
// # Persistence and export
//
// [Canvas.Save] and [Canvas.Restore] round-trip the drawing through a
// [Storage] as SVG, and an autosave runs every [Config.AutosaveInterval].
// [Canvas.Export] writes SVG (via [svgo]) or PNG (via [rasterx]).
//
// # Testing
//
// [Canvas.InjectPress], [Canvas.InjectDrag] and friends queue synthetic input
// for the next Update. [LoadTestScript] runs a JSON sequence of such steps.
//
// Gesture events can be forwarded to an ECS through [EntityStore]; a
// [Donburi] adapter lives in sketch/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [svgo]: https://github.com/ajstarks/svgo
// [rasterx]: https://github.com/srwiley/rasterx
// [Donburi]: https://github.com/yohamta/donburi
package sketch
