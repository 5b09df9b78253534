// pipes is a terminal screensaver that draws wandering box-drawing pipes.
//
// Usage:
//
//	pipes                  - Run the screensaver
//	pipes styles           - List line styles
//	pipes stats            - Show session history
//	pipes config           - Print the effective configuration as YAML
//
// Global flags:
//
//	-s, --style <name>          - Line style: normal, bold, double
//	-t, --turn-chance <pct>     - Percent chance a pipe turns each frame
//	-f, --fps <rate>            - Frames per second
//	-c, --clear-threshold <n>   - Pipes drawn before the screen is wiped
//	-k, --clear-on-key          - Non-quit keys clear instead of exit
//	-n, --pipes <n>             - Pipes in flight at once
//	--seed <value>              - RNG seed for reproducible runs
//	--config <path>             - Config YAML
//	--db <path>                 - Session history database (default: ~/.pipes/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/config"
	// Import the engine to register its line styles
	_ "github.com/vovakirdan/tui-pipes/internal/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	// Global flags
	flagStyle          string
	flagTurnChance     int
	flagFPS            int
	flagClearThreshold int
	flagClearOnKey     bool
	flagPipes          int
	flagSeed           int64
	flagConfig         string
	flagDBPath         string
	flagLogFile        string
	flagDebug          bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Terminal pipes screensaver",
	Long: `pipes draws line segments that wander across the terminal, turning at
random and leaving a trail of box-drawing characters, until you quit.

Controls:
  Q/Esc/Ctrl+C  - Quit
  Ctrl+S        - Save a screenshot to ~/.pipes/screenshots
  Any other key - Quit, or clear the screen with --clear-on-key

Available commands:
  styles   - Show the line styles
  stats    - View session history
  config   - Print the effective configuration

Examples:
  pipes
  pipes -s double -n 3
  pipes --fps 30 --turn-chance 15 --clear-threshold 20
  pipes -k --seed 42
  pipes --config ./my-pipes.yaml`,
	Args: cobra.NoArgs,
	Run:  runPipes,
}

func init() {
	defaults := config.Default()

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagStyle, "style", "s", string(defaults.Style), "Line style: normal, bold, double")
	pf.IntVarP(&flagTurnChance, "turn-chance", "t", defaults.TurnChance, "Percent chance (0-100) a pipe turns each frame")
	pf.IntVarP(&flagFPS, "fps", "f", defaults.FrameRate, "Frames per second")
	pf.IntVarP(&flagClearThreshold, "clear-threshold", "c", defaults.ClearThreshold, "Pipes drawn before the screen is wiped")
	pf.BoolVarP(&flagClearOnKey, "clear-on-key", "k", defaults.ClearOnKeypress, "Non-quit keys clear the screen instead of exiting")
	pf.IntVarP(&flagPipes, "pipes", "n", defaults.Pipes, "Pipes in flight at once")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDBPath, "db", "~/.pipes/history.db", "Path to session history database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the screensaver runs")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		cfg.Style = config.Style(flagStyle)
	}
	if flags.Changed("turn-chance") {
		cfg.TurnChance = flagTurnChance
	}
	if flags.Changed("fps") {
		cfg.FrameRate = flagFPS
	}
	if flags.Changed("clear-threshold") {
		cfg.ClearThreshold = flagClearThreshold
	}
	if flags.Changed("clear-on-key") {
		cfg.ClearOnKeypress = flagClearOnKey
	}
	if flags.Changed("pipes") {
		cfg.Pipes = flagPipes
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPipes(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first pipe spawns on the right edges
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open session history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - the screensaver still works
		store = nil
	}

	runLogger, closeLog, err := newRunLogger()
	if err != nil {
		logger.Warn("could not open log file", "error", err)
	}
	defer closeLog()

	// Run the screensaver
	result, runErr := tui.Run(cfg, tui.Options{
		Width:  width,
		Height: height,
		Logger: runLogger,
	})

	if runErr == nil && store != nil {
		_, saveErr := store.SaveSession(storage.Session{
			Style:     string(cfg.Style),
			FrameRate: cfg.FrameRate,
			Pipes:     cfg.Pipes,
			Frames:    result.Stats.Frames,
			Spawned:   result.Stats.Spawned,
			Retired:   result.Stats.Retired,
			Clears:    result.Stats.Clears,
			Duration:  result.Duration,
		})
		if saveErr != nil {
			logger.Warn("could not save session", "error", saveErr)
		}
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running screensaver: %v\n", runErr)
		os.Exit(1)
	}

	logger.Debug("session finished",
		"frames", result.Stats.Frames,
		"spawned", result.Stats.Spawned,
		"clears", result.Stats.Clears,
		"duration", result.Duration,
	)
}
