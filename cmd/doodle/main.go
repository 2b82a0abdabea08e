// doodle is a terminal Doodle Jump: bounce up an endless tower of platforms,
// dodge monsters and grab power-ups.
//
// Usage:
//
//	doodle list              - List available variants
//	doodle play [variant]    - Play a variant (default: doodle)
//	doodle menu              - Start menu to pick a variant interactively
//	doodle serve             - Start SSH server for remote play
//	doodle sim               - Run headless autopilot games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle Jump in your terminal",
	Long: `A terminal rendition of Doodle Jump. Steer left and right, bounce off
platforms and climb as high as you can.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  sim      - Run headless games with the autopilot

Examples:
  doodle play
  doodle play doodle_classic
  doodle menu --difficulty hard
  doodle serve --ssh :2222
  doodle sim --runs 20 --seed 42`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		doodle.SetConfigPath(flagConfig)
		doodle.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
