package sketch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "create", "kind": "rect"},
			{"action": "drag", "fromX": 5, "fromY": 5, "toX": 15, "toY": 20, "frames": 2},
			{"action": "wait", "frames": 3},
			{"action": "export", "path": "out.svg"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "create" || runner.steps[0].Kind != "rect" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.Action != "drag" || st.FromX != 5 || st.ToY != 20 || st.Frames != 2 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Path != "out.svg" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func runScript(t *testing.T, c *Canvas, script string) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)
	for i := 0; i < 100 && !runner.Done(); i++ {
		c.tick(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	return runner
}

func TestRunnerDragResizes(t *testing.T) {
	c := newTestCanvas()
	runner := runScript(t, c, `{"steps": [
		{"action": "color", "color": "green"},
		{"action": "create", "kind": "rect"},
		{"action": "drag", "fromX": 5, "fromY": 5, "toX": 15, "toY": 20, "frames": 2}
	]}`)
	if errs := runner.Errors(); len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	shapes := c.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("len(Shapes()) = %d, want 1", len(shapes))
	}
	want := RectGeometry{X: 0, Y: 0, Width: 210, Height: 215}
	if got := rectOf(t, shapes[0]); got != want {
		t.Errorf("geometry = %+v, want %+v", got, want)
	}
	if shapes[0].Fill.Hex() != "#008000" {
		t.Errorf("fill = %s, want #008000", shapes[0].Fill.Hex())
	}
}

func TestRunnerHoverDelete(t *testing.T) {
	c := newTestCanvas()
	runScript(t, c, `{"steps": [
		{"action": "create", "kind": "ellipse"},
		{"action": "create", "kind": "line"},
		{"action": "hover", "x": 100, "y": 20},
		{"action": "key", "key": "d"}
	]}`)
	shapes := c.Shapes()
	if len(shapes) != 1 || shapes[0].Kind() != KindLine {
		t.Errorf("expected only the line to remain, got %d shapes", len(shapes))
	}
}

func TestRunnerWait(t *testing.T) {
	c := newTestCanvas()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)
	frames := 0
	for !runner.Done() && frames < 10 {
		c.tick(1.0 / 60)
		frames++
	}
	if frames != 3 {
		t.Errorf("wait consumed %d frames, want 3", frames)
	}
}

func TestRunnerExportAndSave(t *testing.T) {
	dir := t.TempDir()
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store})
	svgPath := filepath.Join(dir, "out.svg")
	pngPath := filepath.Join(dir, "out.png")
	runner := runScript(t, c, `{"steps": [
		{"action": "create", "kind": "rect"},
		{"action": "save"},
		{"action": "export", "path": "`+filepath.ToSlash(svgPath)+`"},
		{"action": "export", "path": "`+filepath.ToSlash(pngPath)+`"},
		{"action": "export", "path": "`+filepath.ToSlash(filepath.Join(dir, "out.gif"))+`"}
	]}`)
	if errs := runner.Errors(); len(errs) != 1 {
		t.Errorf("errors = %v, want one for the gif export", errs)
	}
	if store.Saves != 1 {
		t.Errorf("Saves = %d, want 1", store.Saves)
	}
	for _, p := range []string{svgPath, pngPath} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", p, err)
		}
	}
}

func TestRunnerErrors(t *testing.T) {
	c := newTestCanvas()
	runner := runScript(t, c, `{"steps": [
		{"action": "save"},
		{"action": "color", "color": "mauve"}
	]}`)
	if n := len(runner.Errors()); n != 2 {
		t.Errorf("len(Errors()) = %d, want 2", n)
	}
}
