package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phanxgames/sketch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd wires the subcommands and binds every persistent flag to viper.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "sketch",
		Short:         "Draw rectangles, lines and ellipses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./sketch.yaml)")
	pf.String("file", "drawing.svg", "drawing file used for save, restore and autosave")
	pf.Int("width", sketch.DefaultWidth, "drawing width in canvas units")
	pf.Int("height", sketch.DefaultHeight, "drawing height in canvas units")
	pf.Float64("handle-size", sketch.DefaultHandleSize, "side of the corner resize zones in pixels")
	pf.String("resize", "grow", "resize arithmetic: grow or anchored")
	pf.Bool("preserve-offset", false, "keep the grab offset while moving shapes")
	pf.Duration("autosave", 10*time.Second, "autosave interval, 0 to disable")
	pf.Bool("debug", false, "print gesture and persistence events to stderr")
	_ = v.BindPFlags(pf)

	root.AddCommand(newDrawCmd(v), newExportCmd(v))
	return root
}

// loadConfig reads sketch.yaml (or --config) and SKETCH_ environment
// variables. A missing default config file is not an error.
func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix("SKETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sketch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// canvasConfig maps the bound settings onto a sketch.Config.
func canvasConfig(v *viper.Viper) (sketch.Config, error) {
	cfg := sketch.DefaultConfig()
	cfg.Width = v.GetInt("width")
	cfg.Height = v.GetInt("height")
	cfg.HandleSize = v.GetFloat64("handle-size")
	cfg.PreserveGrabOffset = v.GetBool("preserve-offset")
	cfg.AutosaveInterval = v.GetDuration("autosave")
	cfg.Storage = sketch.FileStorage{Path: v.GetString("file")}

	switch mode := strings.ToLower(v.GetString("resize")); mode {
	case "grow", "":
		cfg.Resize = sketch.ResizeGrow
	case "anchored":
		cfg.Resize = sketch.ResizeAnchored
	default:
		return cfg, fmt.Errorf("unknown resize mode %q (want grow or anchored)", mode)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid drawing size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// openCanvas builds a canvas from the settings and restores the drawing file.
func openCanvas(v *viper.Viper, headless bool) (*sketch.Canvas, error) {
	cfg, err := canvasConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.Headless = headless
	if headless {
		cfg.AutosaveInterval = 0
	}
	c := sketch.NewCanvas(cfg)
	c.SetDebugMode(v.GetBool("debug"))
	if err := c.Restore(); err != nil {
		return nil, err
	}
	return c, nil
}
