package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Direction is a single hop requested by the player.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Actor is the frog.
type Actor struct {
	Bounds core.RectF
	DX, DY float64 // Hop distance per input on each axis
}

// Alerter receives a human-readable reason for every fatal outcome,
// just before the session resets.
type Alerter interface {
	Alert(reason string)
}

// AlerterFunc adapts a function to the Alerter interface.
type AlerterFunc func(reason string)

// Alert calls f(reason).
func (f AlerterFunc) Alert(reason string) {
	f(reason)
}

// Session holds everything that changes while playing: score, high score,
// level, the current layout, the actor and the platform it rides.
// It is owned by a single goroutine.
type Session struct {
	cfg        config.FroggerConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	alerter    Alerter

	score     int
	highScore int
	level     int
	layout    Layout
	actor     Actor
	ride      Ride
}

// NewSession creates a session and generates its first layout.
// A nil alerter discards fatal notifications.
func NewSession(cfg config.FroggerConfig, rng *rand.Rand, alerter Alerter) *Session {
	if alerter == nil {
		alerter = AlerterFunc(func(string) {})
	}
	s := &Session{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		alerter:    alerter,
	}
	s.actor = Actor{
		Bounds: core.NewRectF(0, 0, cfg.Actor.Width, cfg.Actor.Height),
		DX:     cfg.Actor.Step,
		DY:     cfg.Actor.Step,
	}
	s.Reset()
	return s
}

// Reset starts a new run: score 0, level 1, a fresh layout and the actor
// back at the start. The high score survives.
func (s *Session) Reset() {
	s.score = 0
	s.level = 1
	s.regenerate()
	s.resetActor()
}

// Tick runs one simulation step: entities move, rules are evaluated and
// the session reacts to the outcome.
func (s *Session) Tick() Outcome {
	s.layout.Advance(s.cfg.Canvas.Width)

	outcome := evaluate(s)
	if outcome.Fatal() {
		s.alerter.Alert(outcome.String())
		s.Reset()
	}
	return outcome
}

// HandleInput hops the actor one step in the given direction if the
// resulting box stays on the canvas. Other moves are ignored.
// Returns whether the actor moved.
func (s *Session) HandleInput(dir Direction) bool {
	var dx, dy float64
	switch dir {
	case DirUp:
		dy = -s.actor.DY
	case DirDown:
		dy = s.actor.DY
	case DirLeft:
		dx = -s.actor.DX
	case DirRight:
		dx = s.actor.DX
	default:
		return false
	}

	next := s.actor.Bounds.Translate(dx, dy)
	if !next.Within(s.cfg.Canvas.Width, s.cfg.Canvas.Height) {
		return false
	}
	s.actor.Bounds = next
	return true
}

// win scores a crossing and moves on to the next level.
func (s *Session) win() {
	s.score++
	s.highScore = max(s.highScore, s.score)
	s.level++
	s.regenerate()
	s.resetActor()
}

func (s *Session) regenerate() {
	s.layout = GenerateLayout(s.cfg, s.rng, s.difficulty.SpeedFactor(s.level))
	// Platform indices from the old layout are meaningless now
	s.ride = NoRide
}

// resetActor puts the actor at the bottom-center of the canvas.
func (s *Session) resetActor() {
	s.actor.Bounds.X, s.actor.Bounds.Y = s.StartPosition()
	s.ride = NoRide
}

// StartPosition returns where the actor stands after a reset or win.
func (s *Session) StartPosition() (x, y float64) {
	return (s.cfg.Canvas.Width - s.actor.Bounds.W) / 2, s.cfg.Canvas.Height - s.actor.Bounds.H
}

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score of this session.
func (s *Session) HighScore() int { return s.highScore }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Layout returns the current layout. Callers must not modify it.
func (s *Session) Layout() Layout { return s.layout }

// Actor returns the actor.
func (s *Session) Actor() Actor { return s.actor }

// Ride returns the platform currently carrying the actor.
func (s *Session) Ride() Ride { return s.ride }

// State returns the actor's relation to the board.
func (s *Session) State() BoardState {
	if _, ok := s.ride.Platform(); ok {
		return OnPlatform
	}
	return Grounded
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FroggerConfig { return s.cfg }

// carryHighScore seeds the high score from a previous session of the same process.
func (s *Session) carryHighScore(hs int) {
	s.highScore = max(s.highScore, hs)
}
