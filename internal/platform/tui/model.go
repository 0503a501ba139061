package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// configErrorer is implemented by games that load a config file on Reset.
type configErrorer interface {
	ConfigError() error
}

// GameModel is the Bubble Tea model that runs one game.
// It drives fixed ticks, maps keys to actions, and logs and persists the
// events the game reports.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	tickGen    uint64 // Ticks from older loops are dropped
	standalone bool // Quit instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. A nil store disables persistence and
// a nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = NewDiscardLogger()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		tickGen:    nextTickGen(),
	}
}

// NewDiscardLogger returns a logger that writes nowhere.
func NewDiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ce, ok := m.game.(configErrorer); ok && ce.ConfigError() != nil {
		m.logger.Warn("using default config", "error", ce.ConfigError())
	}
	m.logger.Info("game started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board is laid out in canvas pixels, so a resize only
		// changes how it is drawn; the run continues.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finish("quit")
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if !m.gameState.Paused {
			return m, nil
		}
		m.finish("back")
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordEvents(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// recordEvents logs game events and saves finished runs.
func (m GameModel) recordEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventWin:
			m.logger.Info("crossed", "score", ev.Score, "level", ev.Level)

		case core.EventRunOver:
			m.logger.Info("run over", "reason", ev.Reason, "score", ev.Score, "level", ev.Level)
			if m.store == nil || ev.Score == 0 {
				continue
			}
			if _, err := m.store.SaveRun(m.game.ID(), ev.Score, ev.Level, ev.Reason); err != nil {
				// Best-effort save, play continues regardless
				m.logger.Error("cannot save run", "error", err)
			}
		}
	}
}

// finish records the unfinished run, if the game reports one.
func (m GameModel) finish(reason string) {
	if f, ok := m.game.(registry.Finisher); ok {
		m.recordEvents(f.Finish(reason))
	}
}

// saveScreenshot saves the current screen as plain text.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
