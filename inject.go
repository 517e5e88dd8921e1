package sketch

// syntheticKind selects what an injected event does.
type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticLeave
	syntheticKey
)

// syntheticEvent represents a single injected input event. Screen coordinates
// are used and converted through the viewport, identical to real mouse input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	key              rune
}

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next Update.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move at the given screen coordinates with the
// button held down. Use it between InjectPress and InjectRelease to drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectHover queues a pointer move with no button held.
func (c *Canvas) InjectHover(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectLeave queues the pointer leaving the canvas.
func (c *Canvas) InjectLeave() {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectKey queues a typed character.
func (c *Canvas) InjectKey(r rune) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: syntheticKey, key: r})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, a move to (toX, toY) and a release there. The sequence
// consumes frames+1 frames. Minimum frames is 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectMove(toX, toY)
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer or OnKeyPress. Returns true if an event was consumed
// (real input is skipped for that frame).
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		c.OnKeyPress(evt.key)
	case syntheticLeave:
		c.processPointer(c.pointer.lastX, c.pointer.lastY, c.pointer.down, false, 0)
	default:
		c.processPointer(evt.screenX, evt.screenY, evt.pressed, true, 0)
	}
	return true
}
