package main

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/coretilus/internal/config"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/registry"
)

func TestScenesHaveCommands(t *testing.T) {
	for _, id := range []string{"sl", "mr", "gb", "pc", "dog", "gti"} {
		cmd, _, err := rootCmd.Find([]string{id})
		if err != nil || cmd.Name() != id {
			t.Errorf("no command for scene %q: %v", id, err)
		}
	}
}

func TestSceneArgs(t *testing.T) {
	tests := []struct {
		scene    string
		argv     []string
		args     []string
		expected []string
	}{
		{"sl", []string{"-a", "-F"}, nil, []string{"--accident", "--fly"}},
		{"sl", []string{"-aFlc"}, nil, []string{"--accident", "--fly", "--logo", "--c51"}},
		{"mr", []string{"--recursive"}, nil, []string{"--recursive"}},
		{"dog", nil, []string{"debian.org"}, []string{"debian.org"}},
		{"gti", nil, []string{"push"}, []string{"push"}},
	}

	for _, tc := range tests {
		t.Run(tc.scene+" "+strings.Join(tc.argv, " "), func(t *testing.T) {
			scene, err := registry.Get(tc.scene)
			if err != nil {
				t.Fatal(err)
			}
			info := registry.Info{ID: scene.ID, Usage: scene.Usage, Flags: scene.Flags}
			cmd := sceneCmd(info)
			if err := cmd.ParseFlags(tc.argv); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}
			if got := sceneArgs(cmd, info, tc.args); !slices.Equal(got, tc.expected) {
				t.Errorf("sceneArgs() = %q, expected %q", got, tc.expected)
			}

			// The scene sees the same flags the command parsed
			flags, _ := registry.ParseArgs(sceneArgs(cmd, info, tc.args), scene.Flags)
			for _, f := range scene.Flags {
				on, _ := cmd.Flags().GetBool(f.Long)
				if flags[f.Long] != on {
					t.Errorf("flag %s: scene sees %v, command parsed %v", f.Long, flags[f.Long], on)
				}
			}
		})
	}
}

func TestShouldRetry(t *testing.T) {
	yes := &registry.Build{Retry: func() bool { return true }}
	no := &registry.Build{Retry: func() bool { return false }}
	unset := &registry.Build{}

	tests := []struct {
		name     string
		reason   engine.Reason
		build    *registry.Build
		expected bool
	}{
		{"completed crash", engine.ReasonCompleted, yes, true},
		{"expired crash", engine.ReasonExpired, yes, true},
		{"landed", engine.ReasonCompleted, no, false},
		{"no retry", engine.ReasonCompleted, unset, false},
		{"interrupted", engine.ReasonInterrupted, yes, false},
		{"cancelled", engine.ReasonCancelled, yes, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldRetry(engine.Result{Reason: tc.reason}, tc.build); got != tc.expected {
				t.Errorf("shouldRetry() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	out := formatList(registry.List())
	for _, part := range []string{"sl", "mr", "--recursive", "[domain]", "coretilus play"} {
		if !strings.Contains(out, part) {
			t.Errorf("list output lacks %q:\n%s", part, out)
		}
	}
	if got := formatList(nil); got != "No scenes available.\n" {
		t.Errorf("empty list = %q", got)
	}
}

func TestLogPath(t *testing.T) {
	defer func() { flagLog, flagDebug = "", false }()

	flagLog, flagDebug = "", false
	if got := logPath(); got != "" {
		t.Errorf("default log path = %q, expected discard", got)
	}

	flagDebug = true
	if dir := config.Dir(); dir != "" {
		if got := logPath(); got != filepath.Join(dir, "coretilus.log") {
			t.Errorf("debug log path = %q", got)
		}
	}

	flagLog = "/tmp/x.log"
	if got := logPath(); got != "/tmp/x.log" {
		t.Errorf("explicit log path = %q", got)
	}
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "coretilus.log")
	logger, closer, err := openLog(path, true)
	if err != nil {
		t.Fatalf("openLog() error = %v", err)
	}
	logger.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}
