package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/phanxgames/sketch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the stored drawing to SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(v)
		},
	}
	f := cmd.Flags()
	f.String("format", "", "output format: svg or png (default from --out extension)")
	f.String("out", "", "output file")
	_ = cmd.MarkFlagRequired("out")
	_ = v.BindPFlags(f)
	return cmd
}

func runExport(v *viper.Viper) error {
	out := v.GetString("out")
	if out == "" {
		return errors.New("export: --out is required")
	}
	var (
		format sketch.Format
		err    error
	)
	if name := v.GetString("format"); name != "" {
		format, err = sketch.ParseFormat(name)
	} else {
		format, err = sketch.FormatFromPath(out)
	}
	if err != nil {
		return err
	}

	c, err := openCanvas(v, true)
	if err != nil {
		return err
	}
	return exportTo(c, out, format)
}

// exportTo writes the drawing to path in format f.
func exportTo(c *sketch.Canvas, path string, f sketch.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := c.Export(file, f); err != nil {
		file.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
