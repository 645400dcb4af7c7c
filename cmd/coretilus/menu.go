package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes from an interactive menu",
	Long: `Start coretilus in interactive menu mode.

Pick a scene, toggle its flags and type its arguments. After the scene
ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Tab          - Move between scenes, flags and arguments
  Space        - Toggle the highlighted flag
  Enter        - Play
  Q/Esc        - Quit

Examples:
  coretilus menu
  coretilus menu --backend tea --speed slow`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		for {
			if cmd.Context().Err() != nil {
				return nil
			}

			size := terminalSize(core.NewSize(s.cfg.Engine.FallbackWidth, s.cfg.Engine.FallbackHeight))
			choice, err := tui.RunMenu(size.W, size.H)
			if err != nil {
				return err
			}
			if choice.Quit {
				return nil
			}

			if err := s.play(cmd.Context(), choice.SceneID, choice.Args); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				s.logger.Error("scene failed", "scene", choice.SceneID, "err", err)
			}
		}
	})
}
