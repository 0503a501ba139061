// frogger is a terminal Frogger: hop across the road, ride lily pads over
// the river, and cross as many times as you can.
//
// Usage:
//
//	frogger list              - List available modes
//	frogger play [mode]       - Play a mode (default: frogger)
//	frogger menu              - Start menu to pick modes interactively
//	frogger serve             - Start SSH server for remote play
//	frogger scores [mode]     - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/frogger.db)
//	--config <path>       - Use a custom frogger.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road and the river in your terminal",
	Long: `Frogger is a terminal crossing game. Hop the frog past the cars,
ride the lily pads over the water and reach the top of the board.
Every crossing scores a point and builds a new board.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  frogger play
  frogger play frogger_rush --difficulty hard
  frogger menu
  frogger serve --ssh :2222
  frogger scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/frogger.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom frogger.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (serve logs to stderr by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyGameFlags validates the game flags and hands them to the game package,
// so a bad config is reported before the alt screen takes over.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadFrogger(flagConfig); err != nil {
			return err
		}
	}

	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)
	return nil
}
