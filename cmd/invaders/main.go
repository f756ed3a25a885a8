// invaders is a terminal Space Invaders with local and SSH play.
//
// Usage:
//
//	invaders list                - List available variants
//	invaders play [variant]      - Play a variant (default: invaders)
//	invaders menu                - Start menu to pick a variant interactively
//	invaders serve               - Start SSH server for remote play
//	invaders scores [variant]    - Show best runs for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write logs to a file (default: discarded)
//	--hold <dur>    - Movement key hold window (default: 180ms)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders" // registers the variants
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagHold    time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A terminal Space Invaders. Clear the formation before it reaches
you, dodge the enemy fire, and keep an eye on the clock.

Available commands:
  list     - Show available variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  invaders play
  invaders play invaders_classic --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders scores invaders`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a movement key stays held after its last key repeat")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// variantArg returns the variant named on the command line, or the
// default arcade variant.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.InvadersID
}

// openLogger returns a logger writing to --log. Without the flag, logs are
// discarded so they never draw over the alternate screen.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
