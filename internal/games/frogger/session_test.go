package frogger

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// newTestSession returns a session on the default config and a pointer
// to the reasons it has alerted so far.
func newTestSession(t *testing.T, seed int64) (*Session, *[]string) {
	t.Helper()
	var alerts []string
	s := NewSession(config.DefaultFroggerConfig(), rand.New(rand.NewSource(seed)), AlerterFunc(func(reason string) {
		alerts = append(alerts, reason)
	}))
	return s, &alerts
}

func waterLane(y float64) Lane {
	return Lane{Bounds: core.NewRectF(0, y, 460, 40)}
}

func pad(x, y, vx float64, lane int) Platform {
	return Platform{Bounds: core.NewRectF(x, y, 80, 40), VX: vx, Lane: lane}
}

func car(x, y, vx float64) Obstacle {
	return Obstacle{Bounds: core.NewRectF(x, y, 72, 40), VX: vx}
}

func (s *Session) placeActor(x, y float64) {
	s.actor.Bounds.X, s.actor.Bounds.Y = x, y
}

// forceWin puts the actor on the goal row of an empty board and ticks.
func forceWin(t *testing.T, s *Session) {
	t.Helper()
	s.layout = Layout{}
	s.placeActor(210, 0)
	if got := s.Tick(); got != OutcomeWin {
		t.Fatalf("forced win gave %v", got)
	}
}

// forceCollision parks a car on the actor and ticks.
func forceCollision(t *testing.T, s *Session) {
	t.Helper()
	s.layout = Layout{Obstacles: []Obstacle{car(200, 400, 0)}}
	s.placeActor(210, 400)
	if got := s.Tick(); got != OutcomeCollision {
		t.Fatalf("forced collision gave %v", got)
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s, _ := newTestSession(t, 1)

	if s.Score() != 0 || s.Level() != 1 || s.HighScore() != 0 {
		t.Errorf("score=%d level=%d high=%d, expected 0/1/0", s.Score(), s.Level(), s.HighScore())
	}
	if x, y := s.StartPosition(); x != 210 || y != 560 {
		t.Errorf("start position = (%v, %v), expected (210, 560)", x, y)
	}
	a := s.Actor()
	if a.Bounds.X != 210 || a.Bounds.Y != 560 || a.DX != 40 || a.DY != 40 {
		t.Errorf("actor = %+v", a)
	}
	if s.State() != Grounded {
		t.Errorf("state = %v, expected grounded", s.State())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s, _ := newTestSession(t, 2)
	forceWin(t, s)

	for i := 0; i < 2; i++ {
		s.Reset()
		if s.Score() != 0 || s.Level() != 1 {
			t.Errorf("reset %d: score=%d level=%d", i, s.Score(), s.Level())
		}
		if n := len(s.Layout().Platforms); n != 4 {
			t.Errorf("reset %d: %d platforms", i, n)
		}
		if n := len(s.Layout().Obstacles); n != 8 {
			t.Errorf("reset %d: %d obstacles", i, n)
		}
		if a := s.Actor(); a.Bounds.X != 210 || a.Bounds.Y != 560 {
			t.Errorf("reset %d: actor at (%v, %v)", i, a.Bounds.X, a.Bounds.Y)
		}
		if s.HighScore() != 1 {
			t.Errorf("reset %d: high score %d should survive", i, s.HighScore())
		}
	}
}

func TestCollisionResetsRun(t *testing.T) {
	s, alerts := newTestSession(t, 3)
	s.score, s.highScore, s.level = 3, 3, 4

	s.layout = Layout{Obstacles: []Obstacle{car(150, 560, 0)}}
	s.placeActor(180, 560)

	if got := s.Tick(); got != OutcomeCollision {
		t.Fatalf("Tick() = %v, expected collision", got)
	}
	if len(*alerts) != 1 || (*alerts)[0] != "collision" {
		t.Errorf("alerts = %v, expected [collision]", *alerts)
	}
	if s.Score() != 0 || s.Level() != 1 || s.HighScore() != 3 {
		t.Errorf("score=%d level=%d high=%d, expected 0/1/3", s.Score(), s.Level(), s.HighScore())
	}
	if a := s.Actor(); a.Bounds.X != 210 || a.Bounds.Y != 560 {
		t.Errorf("actor not back at start: (%v, %v)", a.Bounds.X, a.Bounds.Y)
	}
}

func TestTouchingCarIsNotCollision(t *testing.T) {
	s, alerts := newTestSession(t, 4)
	s.layout = Layout{Obstacles: []Obstacle{car(138, 560, 0)}}
	s.placeActor(210, 560)

	if got := s.Tick(); got != OutcomeNone {
		t.Errorf("Tick() = %v, edge contact must not collide", got)
	}
	if len(*alerts) != 0 {
		t.Errorf("unexpected alerts %v", *alerts)
	}
}

func TestDrownedWithoutPlatform(t *testing.T) {
	s, alerts := newTestSession(t, 5)
	s.score, s.highScore = 2, 5

	s.layout = Layout{
		Lanes:     []Lane{waterLane(200)},
		Platforms: []Platform{pad(300, 200, 0, 0)},
	}
	s.placeActor(100, 200)

	if got := s.Tick(); got != OutcomeDrowned {
		t.Fatalf("Tick() = %v, expected drowned", got)
	}
	if len(*alerts) != 1 || (*alerts)[0] != "drowned" {
		t.Errorf("alerts = %v, expected [drowned]", *alerts)
	}
	if s.Score() != 0 || s.HighScore() != 5 {
		t.Errorf("score=%d high=%d, expected 0/5", s.Score(), s.HighScore())
	}
}

func TestRidingCarriesActor(t *testing.T) {
	s, alerts := newTestSession(t, 6)
	s.layout = Layout{
		Lanes:     []Lane{waterLane(200)},
		Platforms: []Platform{pad(100, 200, 3, 0)},
	}
	s.placeActor(110, 200)
	s.ride = RideOn(0)

	for i := 0; i < 5; i++ {
		if got := s.Tick(); got != OutcomeNone {
			t.Fatalf("tick %d: %v", i, got)
		}
	}

	if x := s.Actor().Bounds.X; x != 125 {
		t.Errorf("actor x = %v, expected 125 after riding 5 ticks at +3", x)
	}
	if s.State() != OnPlatform {
		t.Errorf("state = %v, expected on_platform", s.State())
	}
	if len(*alerts) != 0 {
		t.Errorf("unexpected alerts %v", *alerts)
	}
}

func TestLandingOnPlatformStartsRide(t *testing.T) {
	s, _ := newTestSession(t, 7)
	s.layout = Layout{
		Lanes:     []Lane{waterLane(200)},
		Platforms: []Platform{pad(100, 200, 3, 0)},
	}
	s.placeActor(110, 240)

	if !s.HandleInput(DirUp) {
		t.Fatal("hop into the lane was rejected")
	}
	s.Tick()

	// Not carried on the tick it lands
	if x := s.Actor().Bounds.X; x != 110 {
		t.Errorf("actor x = %v, expected 110", x)
	}
	if i, ok := s.Ride().Platform(); !ok || i != 0 {
		t.Errorf("ride = (%d, %v), expected platform 0", i, ok)
	}
}

func TestLeavingWaterClearsRide(t *testing.T) {
	s, _ := newTestSession(t, 8)
	s.layout = Layout{
		Lanes:     []Lane{waterLane(200)},
		Platforms: []Platform{pad(100, 200, 0, 0)},
	}
	s.placeActor(110, 200)
	s.Tick()
	if s.State() != OnPlatform {
		t.Fatalf("state = %v, expected on_platform", s.State())
	}

	s.HandleInput(DirDown)
	s.Tick()
	if s.State() != Grounded {
		t.Errorf("state = %v after hopping to grass, expected grounded", s.State())
	}
}

func TestPlatformTieBreak(t *testing.T) {
	tests := []struct {
		name      string
		platforms []Platform
		want      int
	}{
		{
			name:      "larger overlap wins",
			platforms: []Platform{pad(40, 200, 0, 0), pad(110, 200, 0, 0)},
			want:      1,
		},
		{
			name:      "equal overlap goes to lowest index",
			platforms: []Platform{pad(80, 200, 0, 0), pad(90, 200, 0, 0)},
			want:      0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t, 9)
			s.layout = Layout{Lanes: []Lane{waterLane(200)}, Platforms: tc.platforms}
			s.placeActor(100, 200)

			if got := s.Tick(); got != OutcomeNone {
				t.Fatalf("Tick() = %v", got)
			}
			if i, ok := s.Ride().Platform(); !ok || i != tc.want {
				t.Errorf("ride = (%d, %v), expected platform %d", i, ok, tc.want)
			}
		})
	}
}

func TestCarriedOffBoard(t *testing.T) {
	s, alerts := newTestSession(t, 10)
	s.layout = Layout{
		Lanes:     []Lane{waterLane(200)},
		Platforms: []Platform{pad(-30, 200, -4, 0)},
	}
	s.placeActor(2, 200)
	s.ride = RideOn(0)

	if got := s.Tick(); got != OutcomeOutOfBounds {
		t.Fatalf("Tick() = %v, expected out of bounds", got)
	}
	if len(*alerts) != 1 || (*alerts)[0] != "out of bounds" {
		t.Errorf("alerts = %v", *alerts)
	}
}

func TestReachingGoalWins(t *testing.T) {
	s, alerts := newTestSession(t, 11)
	s.layout = Layout{}
	s.placeActor(210, 40)

	if !s.HandleInput(DirUp) {
		t.Fatal("hop to the goal row was rejected")
	}
	if got := s.Tick(); got != OutcomeWin {
		t.Fatalf("Tick() = %v, expected win", got)
	}

	if s.Score() != 1 || s.Level() != 2 || s.HighScore() != 1 {
		t.Errorf("score=%d level=%d high=%d, expected 1/2/1", s.Score(), s.Level(), s.HighScore())
	}
	if n := len(s.Layout().Platforms); n != 4 {
		t.Errorf("new layout has %d platforms", n)
	}
	if a := s.Actor(); a.Bounds.X != 210 || a.Bounds.Y != 560 {
		t.Errorf("actor at (%v, %v), expected start", a.Bounds.X, a.Bounds.Y)
	}
	if s.State() != Grounded {
		t.Error("ride should be cleared by a win")
	}
	if len(*alerts) != 0 {
		t.Errorf("a win must not alert, got %v", *alerts)
	}
}

func TestHandleInputStaysOnCanvas(t *testing.T) {
	s, _ := newTestSession(t, 12)

	if s.HandleInput(DirDown) {
		t.Error("hop below the canvas was accepted")
	}

	for s.HandleInput(DirLeft) {
	}
	if x := s.Actor().Bounds.X; x != 10 {
		t.Errorf("leftmost x = %v, expected 10", x)
	}

	for s.HandleInput(DirRight) {
	}
	if x := s.Actor().Bounds.X; x != 410 {
		t.Errorf("rightmost x = %v, expected 410", x)
	}

	if !s.HandleInput(DirUp) || s.Actor().Bounds.Y != 520 {
		t.Errorf("hop up failed, y = %v", s.Actor().Bounds.Y)
	}
	if s.HandleInput(Direction(42)) {
		t.Error("unknown direction should be ignored")
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	s, _ := newTestSession(t, 13)

	steps := []bool{true, true, false, true, false, false, true, true, true, false}
	want := []int{1, 2, 2, 2, 2, 2, 2, 2, 3, 3}
	for i, win := range steps {
		if win {
			forceWin(t, s)
		} else {
			forceCollision(t, s)
		}
		if s.HighScore() != want[i] {
			t.Errorf("step %d: high score %d, expected %d", i, s.HighScore(), want[i])
		}
		if s.HighScore() < s.Score() {
			t.Errorf("step %d: high score %d below score %d", i, s.HighScore(), s.Score())
		}
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	s, _ := newTestSession(t, 14)
	rng := rand.New(rand.NewSource(99))
	prevHigh := 0

	for tick := 0; tick < 5000; tick++ {
		if rng.Intn(4) == 0 {
			s.HandleInput(Direction(rng.Intn(4)))
		}
		s.Tick()

		if s.HighScore() < prevHigh {
			t.Fatalf("tick %d: high score dropped from %d to %d", tick, prevHigh, s.HighScore())
		}
		prevHigh = s.HighScore()

		layout := s.Layout()
		if len(layout.Platforms) != 4 || len(layout.Obstacles) != 8 {
			t.Fatalf("tick %d: %d platforms, %d obstacles", tick, len(layout.Platforms), len(layout.Obstacles))
		}
		if a := s.Actor(); !a.Bounds.Within(460, 600) {
			t.Fatalf("tick %d: actor left the canvas without reset: %+v", tick, a.Bounds)
		}
		if i, ok := s.Ride().Platform(); ok && i >= len(layout.Platforms) {
			t.Fatalf("tick %d: ride on missing platform %d", tick, i)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionPause, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			got, ok := DirectionFor(tc.action)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Errorf("DirectionFor(%v) = (%v, %v), expected (%v, %v)", tc.action, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestOutcomeStrings(t *testing.T) {
	if OutcomeCollision.String() != "collision" || OutcomeDrowned.String() != "drowned" || OutcomeOutOfBounds.String() != "out of bounds" {
		t.Error("fatal reasons changed")
	}
	if OutcomeWin.Fatal() || OutcomeNone.Fatal() || !OutcomeDrowned.Fatal() {
		t.Error("Fatal() misclassifies outcomes")
	}
}
