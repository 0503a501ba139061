package frogger

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// useDefaultConfig points the game at a copy of the built-in defaults so
// tests don't pick up a user's config file.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	useDefaultConfig(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// drownNextTick sets up a board where the actor sinks on the next tick.
func drownNextTick(g *Game) {
	s := g.session
	s.layout = Layout{
		Lanes:     []Lane{waterLane(200)},
		Platforms: []Platform{pad(300, 200, 0, 0)},
		Obstacles: []Obstacle{car(0, 400, 3)},
	}
	s.placeActor(100, 200)
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"frogger", "frogger_rush"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}

	g, err := registry.Create("frogger_rush")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "frogger_rush" || g.Title() != "Frogger (Rush)" {
		t.Errorf("rush mode = %q / %q", g.ID(), g.Title())
	}
	if _, ok := g.(registry.Finisher); !ok {
		t.Error("frogger should report unfinished runs")
	}
}

func TestDeterminism(t *testing.T) {
	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	script := []core.Action{core.ActionUp, core.ActionNone, core.ActionLeft, core.ActionNone, core.ActionUp, core.ActionRight}
	for tick := 0; tick < 600; tick++ {
		in := frame()
		if tick%10 == 0 {
			if act := script[(tick/10)%len(script)]; act != core.ActionNone {
				in.Set(act)
			}
		}
		a.Step(in)
		b.Step(in)

		if tick%60 == 0 && !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", tick, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := newTestGame(t, 1)
	b := newTestGame(t, 2)

	if reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("different seeds should produce different boards")
	}
}

func TestFatalOutcomeRaisesAlert(t *testing.T) {
	g := newTestGame(t, 3)
	g.session.score, g.session.highScore, g.session.level = 2, 2, 3
	drownNextTick(g)

	res := g.Step(frame())
	if len(res.Events) != 1 {
		t.Fatalf("events = %+v, expected one run over", res.Events)
	}
	ev := res.Events[0]
	if ev.Kind != core.EventRunOver || ev.Reason != "drowned" || ev.Score != 2 || ev.Level != 3 {
		t.Errorf("event = %+v", ev)
	}
	if res.State.Score != 0 || res.State.HighScore != 2 || res.State.Level != 1 {
		t.Errorf("state after reset = %+v", res.State)
	}

	frozen := g.Snapshot()
	if !frozen.AlertShown {
		t.Fatal("alert should be shown after a fatal outcome")
	}

	// The board doesn't move while the alert is up
	g.Step(frame())
	after := g.Snapshot()
	if !reflect.DeepEqual(frozen.ObstacleX, after.ObstacleX) || !reflect.DeepEqual(frozen.PlatformX, after.PlatformX) {
		t.Error("entities moved while the alert was shown")
	}

	// Pause is ignored during the alert
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should be ignored while the alert is shown")
	}

	// A hop dismisses the alert without moving the actor
	g.Step(frame(core.ActionUp))
	snap := g.Snapshot()
	if snap.AlertShown {
		t.Error("a key should dismiss the alert")
	}
	if snap.ActorY != 560 {
		t.Errorf("dismissing hop moved the actor to y=%v", snap.ActorY)
	}
}

func TestAlertExpires(t *testing.T) {
	g := newTestGame(t, 4)
	drownNextTick(g)
	g.Step(frame())

	for i := 0; i < g.cfg.Render.AlertTicks; i++ {
		g.Step(frame())
	}
	if g.Snapshot().AlertShown {
		t.Errorf("alert still shown after %d ticks", g.cfg.Render.AlertTicks)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t, 5)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot()

	g.Step(frame(core.ActionUp))
	after := g.Snapshot()
	if !reflect.DeepEqual(before.ObstacleX, after.ObstacleX) || before.ActorY != after.ActorY {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestWinEmitsEvent(t *testing.T) {
	g := newTestGame(t, 6)
	g.session.layout = Layout{}
	g.session.placeActor(210, 40)

	res := g.Step(frame(core.ActionUp))
	if len(res.Events) != 1 {
		t.Fatalf("events = %+v", res.Events)
	}
	if ev := res.Events[0]; ev.Kind != core.EventWin || ev.Score != 1 || ev.Level != 2 {
		t.Errorf("event = %+v", ev)
	}
	if res.State.Score != 1 || res.State.Level != 2 {
		t.Errorf("state = %+v", res.State)
	}
}

func TestRestartEndsRun(t *testing.T) {
	g := newTestGame(t, 7)

	// Nothing to report for an empty run
	if res := g.Step(frame(core.ActionRestart)); len(res.Events) != 0 {
		t.Errorf("restart of empty run produced %+v", res.Events)
	}

	forceWin(t, g.session)
	forceWin(t, g.session)
	res := g.Step(frame(core.ActionRestart))
	if len(res.Events) != 1 || res.Events[0].Reason != "restart" || res.Events[0].Score != 2 {
		t.Fatalf("events = %+v", res.Events)
	}
	if res.State.Score != 0 || res.State.Level != 1 || res.State.HighScore != 2 {
		t.Errorf("state = %+v", res.State)
	}
}

func TestFinish(t *testing.T) {
	g := newTestGame(t, 8)

	if events := g.Finish("quit"); len(events) != 0 {
		t.Errorf("Finish() on empty run = %+v", events)
	}

	forceWin(t, g.session)
	events := g.Finish("quit")
	if len(events) != 1 || events[0].Kind != core.EventRunOver || events[0].Reason != "quit" || events[0].Score != 1 {
		t.Errorf("Finish() = %+v", events)
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	g := newTestGame(t, 9)
	forceWin(t, g.session)
	forceWin(t, g.session)

	g.Reset(core.RuntimeConfig{Seed: 10})
	st := g.State()
	if st.HighScore != 2 || st.Score != 0 || st.Level != 1 {
		t.Errorf("state after reset = %+v", st)
	}
}

func TestRushModeSpeedsUp(t *testing.T) {
	useDefaultConfig(t)

	classic, rush := New(), NewRush()
	classic.Reset(core.RuntimeConfig{Seed: 11})
	rush.Reset(core.RuntimeConfig{Seed: 11})

	for i := 0; i < 20; i++ {
		forceWin(t, classic.session)
		forceWin(t, rush.session)
	}
	if rush.State().Level != 21 {
		t.Fatalf("level = %d, expected 21", rush.State().Level)
	}

	for _, p := range classic.session.Layout().Platforms {
		if s := math.Abs(p.VX); s >= 4 {
			t.Errorf("classic platform speed %v should not scale", p.VX)
		}
	}
	for _, p := range rush.session.Layout().Platforms {
		if s := math.Abs(p.VX); s < 4 || s >= 8 {
			t.Errorf("rush platform speed %v out of [4,8) at level 21", p.VX)
		}
	}
}

func TestBadConfigFallsBack(t *testing.T) {
	useDefaultConfig(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 12})

	if g.ConfigError() == nil {
		t.Error("missing config file should be reported")
	}
	if n := len(g.session.Layout().Platforms); n != 4 {
		t.Errorf("fallback layout has %d platforms", n)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 13)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Frogger") || !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Level: 1") {
		t.Errorf("HUD = %q", hud)
	}

	// Start position is board row 14, columns 21-24, board starts at column 17
	if row := screen.Row(hudHeight + 14); !strings.Contains(row, "<@@>") {
		t.Errorf("frog not drawn at start: %q", row)
	}
	if got := screen.Get(38, hudHeight+14); got != '<' {
		t.Errorf("frog starts at column %q, expected '<' at 38", got)
	}

	for _, y := range g.session.Layout().WaterRows() {
		if row := screen.Row(hudHeight + int(y)/40); !strings.ContainsRune(row, WaterChar) {
			t.Errorf("water lane at y=%v not drawn: %q", y, row)
		}
	}
}

func TestRenderCarFacing(t *testing.T) {
	g := newTestGame(t, 14)
	g.session.layout = Layout{Obstacles: []Obstacle{car(100, 400, 3), car(200, 440, -3)}}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Car at x=100 covers board columns 10-17
	if got := screen.Get(17+17, hudHeight+10); got != CarFrontR {
		t.Errorf("right-moving car nose = %q", got)
	}
	if got := screen.Get(17+10, hudHeight+10); got != CarBodyChar {
		t.Errorf("right-moving car tail = %q", got)
	}
	// Car at x=200 covers board columns 20-27
	if got := screen.Get(17+20, hudHeight+11); got != CarFrontL {
		t.Errorf("left-moving car nose = %q", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		w, h  int
		want  []string
	}{
		{
			name:  "too small",
			setup: func(*Game) {},
			w:     30, h: 10,
			want: []string{"Window too small"},
		},
		{
			name: "game over",
			setup: func(g *Game) {
				drownNextTick(g)
				g.Step(frame())
			},
			w: 80, h: 24,
			want: []string{"GAME OVER", OutcomeDrowned.Message()},
		},
		{
			name:  "paused",
			setup: func(g *Game) { g.Step(frame(core.ActionPause)) },
			w:     80, h: 24,
			want: []string{"PAUSED"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 15)
			tc.setup(g)
			screen := core.NewScreen(tc.w, tc.h)
			g.Render(screen)

			out := screen.String()
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("screen missing %q:\n%s", w, out)
				}
			}
		})
	}
}
