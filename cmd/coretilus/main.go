// coretilus plays the classic mistyped-command animations in the terminal.
//
// Usage:
//
//	coretilus list                 - List available scenes
//	coretilus play <scene> [args]  - Play a scene by id
//	coretilus menu                 - Pick scenes interactively
//	coretilus sl|mr|gb|pc|dog|gti  - Play one scene with its own flags
//
// Global flags:
//
//	--tick <ms>       - Tick budget in milliseconds
//	--ttl <ticks>     - End every run after this many ticks
//	--config <path>   - Custom config YAML
//	--speed <preset>  - slow, normal or fast
//	--seed <value>    - RNG seed for reproducible placement
//	--backend <name>  - raw (default) or tea
//	--debug, --log    - Write a debug log to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/coretilus/internal/scenes/dog"
	_ "github.com/vovakirdan/coretilus/internal/scenes/gb"
	_ "github.com/vovakirdan/coretilus/internal/scenes/gti"
	_ "github.com/vovakirdan/coretilus/internal/scenes/mr"
	_ "github.com/vovakirdan/coretilus/internal/scenes/pc"
	_ "github.com/vovakirdan/coretilus/internal/scenes/sl"

	"github.com/vovakirdan/coretilus/internal/registry"
)

const (
	backendRaw = "raw"
	backendTea = "tea"
)

var (
	// Global flags
	flagTick    int
	flagTTL     int
	flagConfig  string
	flagSpeed   string
	flagDebug   bool
	flagLog     string
	flagSeed    int64
	flagBackend string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coretilus",
	Short: "coretilus - ASCII animations for mistyped commands",
	Long: `coretilus plays small ASCII animations in your terminal: the steam
locomotive you get for typing "sl" instead of "ls", and friends.

Available commands:
  list     - Show all available scenes
  play     - Play a scene by id
  menu     - Interactive scene picker

Examples:
  coretilus sl -a
  coretilus mr -r
  coretilus play dog debian.org
  coretilus gti push --backend tea`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick budget in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagTTL, "ttl", 0, "End runs after this many ticks (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level (to ~/.coretilus/coretilus.log unless --log is set)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to the log file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendRaw, "Rendering backend: raw or tea")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	for _, info := range registry.List() {
		rootCmd.AddCommand(sceneCmd(info))
	}
}
