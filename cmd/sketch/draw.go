package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/sketch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDrawCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Open the drawing editor",
		Long: `Open the drawing editor.

Keys: r rectangle, l line, e ellipse, c clear, d delete the shape under
the pointer, s export SVG, p export PNG, 1-9 pick a palette color.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(v)
		},
	}
	f := cmd.Flags()
	f.String("title", "Sketch", "window title")
	f.Bool("fps", false, "show the FPS overlay")
	f.String("script", "", "JSON test script to run against the editor")
	_ = v.BindPFlags(f)
	return cmd
}

func runDraw(v *viper.Viper) error {
	c, err := openCanvas(v, false)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(v.GetString("file"), filepath.Ext(v.GetString("file")))
	c.OnKey(func(r rune) {
		if err := toolKey(c, r, base); err != nil {
			log.Print(err)
		}
	})

	if path := v.GetString("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := sketch.LoadTestScript(data)
		if err != nil {
			return err
		}
		c.SetTestRunner(runner)
	}

	return sketch.Run(c, sketch.RunConfig{
		Title:   v.GetString("title"),
		ShowFPS: v.GetBool("fps"),
	})
}

// toolKey implements the editor toolbar on the keyboard. Exports are written
// next to the drawing file as <base>.svg and <base>.png.
func toolKey(c *sketch.Canvas, r rune, base string) error {
	switch {
	case r == 'r':
		c.Create(sketch.KindRect)
	case r == 'l':
		c.Create(sketch.KindLine)
	case r == 'e':
		c.Create(sketch.KindEllipse)
	case r == 'c':
		c.Clear()
	case r == 's':
		return exportTo(c, base+"-export.svg", sketch.FormatSVG)
	case r == 'p':
		return exportTo(c, base+"-export.png", sketch.FormatPNG)
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(sketch.Palette) {
			c.SetColor(sketch.Palette[i].Color)
		}
	}
	return nil
}
