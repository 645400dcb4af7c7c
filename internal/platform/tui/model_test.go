package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coretilus/internal/anim"
	"github.com/vovakirdan/coretilus/internal/core"
	"github.com/vovakirdan/coretilus/internal/engine"
	"github.com/vovakirdan/coretilus/internal/motion"
)

func newTestModel(t *testing.T, objs ...*engine.Object) Model {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.TickDuration = time.Millisecond
	cfg.FallbackSize = core.NewSize(20, 10)
	m, err := NewModel("test", engine.New(cfg, engine.NewWorld(objs...), nil), nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelRunsToCompletion(t *testing.T) {
	blink := engine.NewObject(1, "blink", 0).
		SetAnimation(anim.TickBased(anim.NewFrames("*", "+"), 0, 1, 0, true)).
		SetMovement(motion.Stationary(core.PosAt(1, 1), 3))
	m := newTestModel(t, blink)

	var cmd tea.Cmd
	for i := 0; i < 10 && !m.finished; i++ {
		m, cmd = update(t, m, TickMsg(time.Now()))
	}
	if !m.finished {
		t.Fatal("model never finished")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("finished model did not quit")
	}
	if r := m.Result(); r.Reason != engine.ReasonCompleted || r.Ticks != 4 {
		t.Errorf("Result() = %+v", r)
	}
	if m.View() != "" {
		t.Error("finished model still renders")
	}
}

func TestModelForwardsKeys(t *testing.T) {
	stopped := false
	o := engine.NewObject(1, "stopper", 0).
		SetAnimation(anim.TickBased(anim.NewFrames("x"), 0, 1, 0, true)).
		SetMovement(motion.Stationary(core.PosAt(0, 0), 0)).
		OnKey(core.RuneKey('q'), func(ctx *engine.Context, _ engine.ObjectID) {
			stopped = true
			ctx.Stop()
		})
	m := newTestModel(t, o)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if m.finished {
		t.Fatal("unbound key finished the run")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !stopped || !m.finished || cmd == nil {
		t.Fatalf("stopped=%v finished=%v", stopped, m.finished)
	}
	if m.Result().Reason != engine.ReasonStopped {
		t.Errorf("reason = %v", m.Result().Reason)
	}
}

func TestModelInterrupt(t *testing.T) {
	o := engine.NewObject(1, "spin", 0).
		SetAnimation(anim.TickBased(anim.NewFrames("|", "-"), 0, 1, 0, true)).
		SetMovement(motion.Stationary(core.PosAt(0, 0), 0))
	m := newTestModel(t, o)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.finished || m.Result().Reason != engine.ReasonInterrupted {
		t.Errorf("finished=%v reason=%v", m.finished, m.Result().Reason)
	}
}

func TestModelResize(t *testing.T) {
	o := engine.NewObject(1, "dot", 0).
		SetAnimation(anim.TickBased(anim.NewFrames("."), 0, 1, 0, true)).
		SetMovement(motion.Stationary(core.Pos(core.RightIn, core.TopIn), 0))
	m := newTestModel(t, o)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = update(t, m, TickMsg(time.Now()))

	if got := m.engine.Screen().Size(); got != core.NewSize(40, 12) {
		t.Fatalf("screen size = %v", got)
	}
	if r := m.engine.Screen().At(39, 11); r != '.' {
		t.Errorf("dot at top right = %q", r)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.Blit(1, 0, []string{"ab"})

	if got := RenderScreen(s, ScreenStyle("")); got != s.String() {
		t.Errorf("plain render = %q, expected %q", got, s.String())
	}

	styled := RenderScreen(s, ScreenStyle("10"))
	if !strings.Contains(styled, "ab") || strings.Count(styled, "\n") != 1 {
		t.Errorf("styled render = %q", styled)
	}
}
