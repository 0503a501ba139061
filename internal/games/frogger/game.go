// Package frogger implements a Frogger-style crossing game.
// The player hops a frog across car lanes and rides lily pads over water
// lanes to reach the top of the board; every crossing builds a new board.
package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Mode selects how the game scales with level.
type Mode string

const (
	// ModeClassic uses the difficulty settings exactly as configured.
	ModeClassic Mode = "classic"
	// ModeRush always speeds traffic up as levels are cleared.
	ModeRush Mode = "rush"
)

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path ("" searches the default locations).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the loaded config.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

// LoadConfig loads the configuration the game will use, including preset and mode.
func LoadConfig(mode Mode) (config.FroggerConfig, error) {
	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		return config.DefaultFroggerConfig(), err
	}
	config.ApplyFroggerPreset(&cfg, difficultyPreset)
	if mode == ModeRush {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Progression.Type = "level"
	}
	return cfg, nil
}

// Game adapts a Session to the arcade platform: pause, alert banner,
// rendering and events.
type Game struct {
	mode      Mode
	cfg       config.FroggerConfig
	configErr error
	session   *Session

	tick       uint64
	paused     bool
	alert      Outcome // Last fatal outcome, shown while alertTicks > 0
	alertTicks int
	events     []core.Event
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewRush creates a rush mode game.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

func init() {
	registry.Register("frogger", func() registry.Game {
		return New()
	})
	registry.Register("frogger_rush", func() registry.Game {
		return NewRush()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return "frogger_rush"
	}
	return "frogger"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Frogger (Rush)"
	}
	return "Frogger"
}

// Reset (re)starts the game with a new seed. The session high score
// is carried over when the game is reset in place.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, g.configErr = LoadConfig(g.mode)

	highScore := 0
	if g.session != nil {
		highScore = g.session.HighScore()
	}

	g.session = NewSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)), g)
	g.session.carryHighScore(highScore)

	g.tick = 0
	g.paused = false
	g.alert = OutcomeNone
	g.alertTicks = 0
	g.events = nil
}

// ConfigError returns the error from loading the config at the last Reset, if any.
// The game falls back to the built-in defaults in that case.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Alert implements Alerter. It is called by the session before a fatal reset,
// while score and level still hold the finished run's values.
func (g *Game) Alert(reason string) {
	outcome := outcomeFromReason(reason)
	g.alert = outcome
	g.alertTicks = g.cfg.Render.AlertTicks
	g.events = append(g.events, core.Event{
		Kind:   core.EventRunOver,
		Reason: reason,
		Score:  g.session.Score(),
		Level:  g.session.Level(),
	})
}

func outcomeFromReason(reason string) Outcome {
	for _, o := range []Outcome{OutcomeCollision, OutcomeDrowned, OutcomeOutOfBounds} {
		if o.String() == reason {
			return o
		}
	}
	return OutcomeNone
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.endRun("restart")
		g.session.Reset()
		g.paused = false
		g.alertTicks = 0
		return g.result()
	}

	if in.Has(core.ActionPause) && g.alertTicks == 0 {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// The board stays frozen while the alert is up; a key dismisses it
	if g.alertTicks > 0 {
		if in.Has(core.ActionConfirm) || len(in.Moves()) > 0 {
			g.alertTicks = 0
		} else {
			g.alertTicks--
		}
		return g.result()
	}

	for _, a := range in.Moves() {
		if dir, ok := DirectionFor(a); ok {
			g.session.HandleInput(dir)
		}
	}

	before := g.session.Score()
	if g.session.Tick() == OutcomeWin {
		g.events = append(g.events, core.Event{
			Kind:  core.EventWin,
			Score: before + 1,
			Level: g.session.Level(),
		})
	}

	return g.result()
}

// Finish reports the current run as over, e.g. when the player quits.
// Runs without points produce no event.
func (g *Game) Finish(reason string) []core.Event {
	g.endRun(reason)
	return g.drainEvents()
}

func (g *Game) endRun(reason string) {
	if g.session == nil || g.session.Score() == 0 {
		return
	}
	g.events = append(g.events, core.Event{
		Kind:   core.EventRunOver,
		Reason: reason,
		Score:  g.session.Score(),
		Level:  g.session.Level(),
	})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.drainEvents()}
}

func (g *Game) drainEvents() []core.Event {
	events := g.events
	g.events = nil
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Level:     g.session.Level(),
		Paused:    g.paused,
	}
}

// Session exposes the underlying session, mainly for tests and tools.
func (g *Game) Session() *Session {
	return g.session
}
