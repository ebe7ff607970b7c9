// skyflap is a Flappy Bird clone that runs in the terminal or in a window.
//
// Usage:
//
//	skyflap play             - Play in the terminal
//	skyflap window           - Play in a desktop window
//	skyflap config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to a custom flappy.yaml
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Append logs to a file
//
// SKYFLAP_CONFIG, SKYFLAP_LOG_LEVEL and SKYFLAP_SEED, from the environment or
// a .env file in the working directory, provide defaults for the flags.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyflap",
	Short: "skyflap - tap to fly between the pipes",
	Long: `skyflap is a Flappy Bird clone. Tap to flap, fly through the gaps
between the pipes and score a point for every pair you pass.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  skyflap play
  skyflap play --seed 42 --fps 30
  skyflap window --assets ./assets --scale 1.5
  skyflap config --defaults > ~/.skyflap/flappy.yaml`,
	PersistentPreRun: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv loads .env and fills flags the user did not set from the
// environment.
func applyEnv(cmd *cobra.Command, _ []string) {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("config") {
		flagConfig = config.EnvOr(config.EnvConfigPath, flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvOr(config.EnvLogLevel, flagLogLevel)
	}
	if !flags.Changed("seed") {
		if v := config.EnvOr(config.EnvSeed, ""); v != "" {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid %s %q: %v\n", config.EnvSeed, v, err)
				os.Exit(1)
			}
			flagSeed = seed
		}
	}
}

// newLogger builds the application logger. Output goes to --log-file when
// set, otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyflap",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game configuration or exits.
func loadConfig(logger *log.Logger) config.FlappyConfig {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logger != nil {
		logger.Debug("config loaded", "path", flagConfig, "gravity", cfg.Physics.Gravity, "base_cycle_ms", cfg.Obstacles.BaseCycleMs)
	}
	return cfg
}
