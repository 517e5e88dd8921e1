package sketch

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug mode. When enabled, gesture
// transitions, ignored events and registry warnings are printed to stderr.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug output (stderr by default). A nil writer
// drops it.
func (c *Canvas) SetDebugOutput(w io.Writer) {
	c.debugOut = w
}

// debugf prints a "[sketch]"-prefixed line when debug mode is on.
func (c *Canvas) debugf(format string, args ...any) {
	if !c.debug || c.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[sketch] "+format+"\n", args...)
}

// debugMaxShapes is the shape count above which debug mode warns.
const debugMaxShapes = 1000

func debugCheckShapeCount(c *Canvas) {
	if len(c.shapes) > debugMaxShapes {
		c.debugf("warning: canvas has %d shapes (threshold %d)", len(c.shapes), debugMaxShapes)
	}
}
