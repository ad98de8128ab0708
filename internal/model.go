// Package internal provides the core application model and state management for Sweep's TUI.
//
// This package implements the Bubble Tea model pattern for the interactive
// terminal user interface. The model handles:
//   - Routing user commands (start/stop/reset/toggle) to the timer engine
//   - The once-per-second engine tick driver, carried as a self-re-arming
//     tea.Tick chain tagged with the engine's driver generation
//   - The frame-rate animation driver, live only while the ring is mid-tween
//   - Screen transitions (timer, about) and theme cycling
//
// The main Model struct contains all UI state and implements the tea.Model
// interface for integration with the Bubble Tea framework.
package internal

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"sweep/internal/anim"
	"sweep/internal/engine"
)

// frameInterval is the redraw period while the ring animation is in flight.
const frameInterval = 33 * time.Millisecond

// engineTickMsg advances the timer engine by one second. It carries the
// driver generation it was scheduled under; the engine rejects it if a mode
// change has since cancelled that driver.
type engineTickMsg struct {
	gen uint64
}

// frameMsg triggers a redraw while the ring animation eases toward its
// target. The chain stops re-arming once the tween settles.
type frameMsg time.Time

// screen represents the different UI screens available in the application.
type screen int

const (
	screenTimer screen = iota // Stopwatch ring and controls
	screenAbout               // About/help information screen
)

// Model represents the complete application state for the Sweep TUI.
// It implements the tea.Model interface and contains all data needed to
// render screens and handle user interactions.
type Model struct {
	// Core collaborators
	engine   *engine.Engine
	animator *anim.Animator

	// Screen and navigation state
	screen screen

	// Theme and configuration
	cfg       Config
	configDir string
	theme     Theme
	message   string

	// Linear seconds readout, rebuilt when the active palette changes
	bar        progress.Model
	barPalette string

	// Frame driver state: true while a frameMsg chain is live
	frameLive bool

	// Display dimensions
	width  int
	height int

	// Clock indirection for deterministic tests
	now func() time.Time
}

// InitialModel creates and returns a new Model instance from loaded
// preferences. configDir is where toggled preferences are written back;
// empty disables persistence.
func InitialModel(cfg Config, configDir string) Model {
	theme, err := ThemeByName(cfg.Theme)
	if err != nil {
		theme, _ = ThemeByName(DefaultTheme)
	}

	eng := engine.New()
	if cfg.AutoRestart {
		eng.ToggleAutoRestart()
	}

	animator := anim.New(theme.Palettes, theme.Alert)
	animator.SetTweenDuration(time.Duration(cfg.TweenMillis) * time.Millisecond)
	animator.Observe(0, false, time.Now())

	m := Model{
		engine:    eng,
		animator:  animator,
		screen:    screenTimer,
		cfg:       cfg,
		configDir: configDir,
		theme:     theme,
		width:     100,
		height:    30,
		now:       time.Now,
	}
	m.rebuildBar()
	return m
}

// Init implements tea.Model.Init() and returns any initial commands.
// The timer waits for a start command, so there is nothing to schedule yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// engineTick schedules the next one-second tick under the given driver
// generation.
func engineTick(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return engineTickMsg{gen: gen}
	})
}

// frameTick schedules the next animation redraw.
func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.Update() and handles all incoming messages.
// This is the central message router that processes user input, engine
// ticks, animation frames, and screen transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case engineTickMsg:
		if !m.engine.Tick(msg.gen) {
			// Stale driver: a mode change already cancelled this chain.
			return m, nil
		}
		cmds := m.observe()
		if m.engine.Active() {
			// Re-arm under the current generation. After an
			// auto-restart this hands the chain to the new driver.
			cmds = append(cmds, engineTick(m.engine.Generation()))
		}
		return m, tea.Batch(cmds...)

	case frameMsg:
		if m.animator.Animating(m.now()) {
			return m, frameTick()
		}
		// Render the settled frame, then stop the chain.
		m.frameLive = false
		return m, nil

	case tea.KeyMsg:
		// Any key leaves the about screen.
		if m.screen == screenAbout {
			m.screen = screenTimer
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case " ", "enter":
			prev := m.engine.Generation()
			if m.engine.IsRunning() {
				m.engine.Stop()
			} else {
				m.engine.Start()
			}
			cmds := m.observe()
			// Arm a chain only for a driver this command created. A
			// no-op command (start while counting down) leaves the
			// generation alone and the live chain keeps driving.
			if m.engine.Active() && m.engine.Generation() != prev {
				cmds = append(cmds, engineTick(m.engine.Generation()))
			}
			return m, tea.Batch(cmds...)

		case "r":
			m.engine.Reset()
			return m, tea.Batch(m.observe()...)

		case "a":
			m.engine.ToggleAutoRestart()
			m.cfg.AutoRestart = m.engine.IsAutoRestart()
			m.persistPreferences()
			return m, nil

		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.cfg.Theme = m.theme.Name
			m.animator = anim.New(m.theme.Palettes, m.theme.Alert)
			m.animator.SetTweenDuration(time.Duration(m.cfg.TweenMillis) * time.Millisecond)
			m.animator.Observe(m.engine.Count(), m.engine.IsCountingDown(), m.now())
			m.rebuildBar()
			m.persistPreferences()
			return m, nil

		case "?":
			m.screen = screenAbout
			return m, nil
		}
	}

	return m, nil
}

// observe feeds the engine's state to the animator and returns the commands
// needed to keep the frame driver alive while the ring settles. The linear
// bar is rebuilt when the palette shifts (minute cycling or alert).
func (m *Model) observe() []tea.Cmd {
	m.animator.Observe(m.engine.Count(), m.engine.IsCountingDown(), m.now())
	m.rebuildBar()

	var cmds []tea.Cmd
	if m.animator.Animating(m.now()) && !m.frameLive {
		m.frameLive = true
		cmds = append(cmds, frameTick())
	}
	return cmds
}

// rebuildBar reconstructs the gradient progress bar when the active palette
// changes. The bar is rendered statically with ViewAs, so rebuilding costs
// nothing mid-animation.
func (m *Model) rebuildBar() {
	pal := m.animator.Colors()
	key := pal.Start + pal.End
	if key == m.barPalette && m.bar.Width != 0 {
		return
	}
	m.bar = progress.New(
		progress.WithScaledGradient(pal.Start, pal.End),
		progress.WithoutPercentage(),
		progress.WithWidth(36),
	)
	m.barPalette = key
}

// persistPreferences writes the toggled preference back to disk. Failures
// surface as a status message rather than interrupting the timer.
func (m *Model) persistPreferences() {
	if m.configDir == "" {
		return
	}
	if err := SaveConfig(m.configDir, m.cfg); err != nil {
		m.message = err.Error()
		return
	}
	m.message = ""
}

// View implements tea.Model.View() and renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case screenAbout:
		return m.renderAbout()
	default:
		return m.renderTimer()
	}
}
