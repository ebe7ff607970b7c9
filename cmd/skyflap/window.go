package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/games/flappy"
	"github.com/vovakirdan/skyflap/internal/platform/gfx"
)

var (
	flagWidth  float64
	flagHeight float64
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window.

Sprites are read from --assets as PNG files named after the classic
sprite sheet (background-night.png, redbird-upflap.png, pipe-red.png,
pipe-red-rotated.png, base.png). Missing files are drawn as flat
placeholders.

Controls:
  Space/Click/Touch  - Flap (restart after game over)
  P                  - Pause
  Q/Esc              - Quit

Examples:
  skyflap window
  skyflap window --assets ./assets --scale 1.5
  skyflap window --width 540 --height 960`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagWidth, "width", 0, "Viewport width in pixels (0 = from config)")
	windowCmd.Flags().Float64Var(&flagHeight, "height", 0, "Viewport height in pixels (0 = from config)")
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite PNGs")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the viewport")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	rt := core.DefaultConfig()
	rt.ViewportW = cfg.Viewport.Width
	rt.ViewportH = cfg.Viewport.Height
	rt.Seed = flagSeed
	if flagWidth > 0 {
		rt.ViewportW = flagWidth
	}
	if flagHeight > 0 {
		rt.ViewportH = flagHeight
	}

	opts := gfx.Options{AssetsDir: flagAssets, Scale: flagScale}
	if runErr := gfx.Run(flappy.New(cfg), rt, opts, logger); runErr != nil {
		logger.Error("window failed", "error", runErr)
		closeLog()
		os.Exit(1)
	}
}
