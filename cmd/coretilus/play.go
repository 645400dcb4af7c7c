package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/platform/term"
	"github.com/vovakirdan/coretilus/internal/platform/tui"
	"github.com/vovakirdan/coretilus/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <scene> [args...]",
	Short: "Play a scene",
	Long: `Start the specified scene. Everything after the scene id is passed
to the scene, so global flags must come first.

Controls:
  Ctrl+C  - Stop the animation
  Ctrl+S  - Save a screenshot (tea backend)

Examples:
  coretilus play sl -aF
  coretilus --backend tea play mr -r
  coretilus play gti commit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().SetInterspersed(false)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(args[0]) {
		return fmt.Errorf("unknown scene %q, run 'coretilus list' to see available scenes", args[0])
	}
	return withSession(func(s *session) error {
		return s.play(cmd.Context(), args[0], args[1:])
	})
}

// sceneCmd builds the dedicated command of a scene, with its flags as
// real command-line flags.
func sceneCmd(info registry.Info) *cobra.Command {
	cmd := &cobra.Command{
		Use:   strings.TrimSpace(info.ID + " " + info.Usage),
		Short: info.Summary,
		Long:  fmt.Sprintf("%s: %s.", info.Title, info.Summary),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := sceneArgs(cmd, info, args)
			return withSession(func(s *session) error {
				return s.play(cmd.Context(), info.ID, raw)
			})
		},
	}
	for _, f := range info.Flags {
		cmd.Flags().BoolP(f.Long, f.Short, false, f.Usage)
	}
	return cmd
}

// sceneArgs turns the parsed flags of a scene command back into raw scene
// arguments.
func sceneArgs(cmd *cobra.Command, info registry.Info, args []string) []string {
	var raw []string
	for _, f := range info.Flags {
		if on, err := cmd.Flags().GetBool(f.Long); err == nil && on {
			raw = append(raw, "--"+f.Long)
		}
	}
	return append(raw, args...)
}

func withSession(fn func(*session) error) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// play builds and runs a scene, building it again for as long as the scene
// asks to retry.
func (s *session) play(ctx context.Context, id string, rawArgs []string) error {
	scene, err := registry.Get(id)
	if err != nil {
		return err
	}
	flags, args := registry.ParseArgs(rawArgs, scene.Flags)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for attempt := 1; ; attempt++ {
		b, err := scene.Build(registry.Params{
			Flags:    flags,
			Args:     args,
			Terminal: terminalSize(core.NewSize(s.cfg.Engine.FallbackWidth, s.cfg.Engine.FallbackHeight)),
			Seed:     seed,
			Config:   s.cfg.Scenes,
		})
		if err != nil {
			return fmt.Errorf("build %s: %w", id, err)
		}

		result, err := s.run(ctx, id, b)
		if err != nil {
			return err
		}
		s.logger.Info("scene finished", "scene", id, "reason", result.Reason, "ticks", result.Ticks, "attempt", attempt)

		if !shouldRetry(result, b) {
			return nil
		}
		seed++
	}
}

// shouldRetry reports whether a finished run asks to be played again. Runs
// the user ended never retry.
func shouldRetry(result engine.Result, b *registry.Build) bool {
	switch result.Reason {
	case engine.ReasonInterrupted, engine.ReasonCancelled, engine.ReasonNone:
		return false
	}
	return b.Retry != nil && b.Retry()
}

// run plays one build on the selected backend.
func (s *session) run(ctx context.Context, id string, b *registry.Build) (engine.Result, error) {
	e := engine.New(s.cfg.EngineOptions(), b.World, b.Collisions, engine.WithLogger(s.logger))

	if flagBackend == backendTea {
		return tui.Run(ctx, id, e, tui.ScreenStyle(s.cfg.UI.Color), s.logger)
	}

	t, err := term.Open(s.logger)
	if err != nil {
		return engine.Result{}, err
	}
	result, err := e.Run(ctx, t, t, t)
	if cerr := t.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return result, err
}
