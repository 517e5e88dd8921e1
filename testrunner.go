package sketch

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	Color  string  `json:"color,omitempty"`
	Key    string  `json:"key,omitempty"`
	Path   string  `json:"path,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// knownActions lists the actions a script may use.
var knownActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true, "leave": true,
	"drag": true, "key": true, "create": true, "color": true,
	"save": true, "export": true, "wait": true,
}

// TestRunner sequences injected input, shape creation and exports across
// frames for automated testing. Attach to a Canvas via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Canvas via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the canvas. The runner's step method
// is called from Canvas.Update before input processing each frame.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Errors returns the errors raised by save and export steps.
func (r *TestRunner) Errors() []error {
	return r.errs
}

// step advances the test runner by one frame. Called from Canvas.Update.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone(c)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		c.InjectPress(st.X, st.Y)
	case "move":
		c.InjectMove(st.X, st.Y)
	case "hover":
		c.InjectHover(st.X, st.Y)
	case "release":
		c.InjectRelease(st.X, st.Y)
	case "leave":
		c.InjectLeave()
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		for _, k := range st.Key {
			c.InjectKey(k)
		}
	case "create":
		c.Create(parseKind(st.Kind))
	case "color":
		if col, err := ParseColor(st.Color); err != nil {
			r.errs = append(r.errs, err)
		} else {
			c.SetColor(col)
		}
	case "save":
		if err := c.Save(); err != nil {
			r.errs = append(r.errs, err)
		}
	case "export":
		if err := exportFile(c, st.Path); err != nil {
			r.errs = append(r.errs, err)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	r.checkDone(c)
}

// checkDone marks the runner finished once every step ran and nothing is
// left pending.
func (r *TestRunner) checkDone(c *Canvas) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}

// parseKind maps "rect", "line" and "ellipse" to a ShapeKind. Unknown names
// create rectangles.
func parseKind(name string) ShapeKind {
	switch name {
	case "line":
		return KindLine
	case "ellipse":
		return KindEllipse
	default:
		return KindRect
	}
}

// exportFile writes the drawing to path, choosing SVG or PNG by extension.
func exportFile(c *Canvas, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := c.Export(f, format); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
