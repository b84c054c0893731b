// shadowmario is a side-scrolling platformer: run to the flag, collect coins
// and power-ups, dodge enemies and beat the boss in level 3.
//
// Usage:
//
//	shadowmario                 - Play the game
//	shadowmario scores [level]  - Show high scores
//	shadowmario levels          - Inspect the configured level files
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shadowmario/prefabs"
	"github.com/milk9111/shadowmario/storage"
	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagLang        string
	flagDBPath      string
	flagSeed        int64
	flagDebug       bool
	flagBaseMonitor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shadowmario",
	Short: "Shadow Mario - a small side-scrolling platformer",
	Long: `Shadow Mario: run toward the flag, collect coins and power-ups,
avoid enemies and defeat the boss in level 3.

Keys:
  1, 2, 3   start a level
  LEFT/RIGHT  run
  UP        jump
  S         throw a fireball (level 3)
  P         pause
  SPACE     back to the title screen after a win or loss
  ESC       quit`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config (default: ./prefabs/app.yaml or the built-in one)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "en", "Message catalogue language")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shadowmario/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and config hot reload")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVarP(&flagBaseMonitor, "monitor", "m", false, "Use base monitor instead of primary (for multi-monitor setups)")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setupLogging() {
	log.SetReportTimestamp(true)
	log.SetPrefix("shadowmario")
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
}

func loadSpec() *prefabs.GameSpec {
	spec, err := prefabs.LoadGameSpec(flagConfig, flagLang)
	if err != nil {
		log.Fatal("invalid game config", "err", err)
	}
	return spec
}

func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("random source", "seed", seed)
	return rand.New(rand.NewSource(seed))
}

func runGame(cmd *cobra.Command, args []string) error {
	spec := loadSpec()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game, err := NewGame(spec, newRand(), store)
	if err != nil {
		log.Fatal("could not start game", "err", err)
	}
	defer game.Close()

	if flagBaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Messages.Title)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
