package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/tavrel/runline/internal/config"
	"github.com/tavrel/runline/internal/core"
	"github.com/tavrel/runline/internal/game"
)

// volumeStep is how much one keypress moves the volume slider.
const volumeStep = 0.1

// Main menu entries, top to bottom.
const (
	menuItemPlay = iota
	menuItemSettings
	menuItemQuit
	menuItemCount
)

// Settings entries, top to bottom.
const (
	settingItemVolume = iota
	settingItemReset
	settingItemBack
	settingItemCount
)

// Model is the Bubble Tea model driving the whole runner: it feeds wall-clock
// ticks and key events into the state machine and renders its snapshots.
type Model struct {
	machine  *game.Machine
	stepper  *core.Stepper
	renderer *WorldRenderer
	screen   *core.Screen
	keys     *KeyMapper
	volume   progress.Model

	cfg      *config.Config
	runtime  core.RuntimeConfig
	snap     game.Snapshot
	cursor   int // Main menu cursor
	setting  int // Settings cursor
	frame    int // Tick counter, drives sprite animation
	quitting bool
}

// NewModel creates the top-level model. A zero seed picks a time-based one.
func NewModel(cfg *config.Config, rt core.RuntimeConfig, gw game.Gateway, rec game.Recorder, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	machine := game.NewMachine(cfg, gw, rec, logger, rt.Seed)
	step := time.Second / time.Duration(rt.TickRate)

	slider := progress.New(progress.WithDefaultGradient())
	slider.Width = 30
	slider.ShowPercentage = false

	return Model{
		machine:  machine,
		stepper:  core.NewStepper(step),
		renderer: NewWorldRenderer(cfg),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     NewKeyMapper(),
		volume:   slider,
		cfg:      cfg,
		runtime:  rt,
		snap:     machine.Snapshot(time.Now()),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if m.stepper.Advance(now) {
			m.machine.Tick(now)
			m.frame++
		}
		m.snap = m.machine.Snapshot(now)
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey routes keyboard input according to the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch m.snap.Mode {
	case game.ModePlaying:
		ev, quit := m.keys.MapPlayingKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.machine.HandleEvent(ev, now)

	case game.ModeEnded:
		ev, quit := m.keys.MapEndedKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.machine.HandleEvent(ev, now)

	case game.ModeMainMenu:
		return m.handleMenuKey(msg, now)

	case game.ModeSettings:
		return m.handleSettingsKey(msg, now)
	}

	m.snap = m.machine.Snapshot(now)
	return m, nil
}

// handleMenuKey drives the main menu cursor and selection.
func (m Model) handleMenuKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < menuItemCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case menuItemPlay:
			m.machine.HandleEvent(game.Event{Kind: game.EventPlay}, now)
		case menuItemSettings:
			m.setting = 0
			m.machine.HandleEvent(game.Event{Kind: game.EventSettings}, now)
		case menuItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	m.snap = m.machine.Snapshot(now)
	return m, nil
}

// handleSettingsKey drives the settings cursor, the volume slider, and the
// high-score reset confirmation.
func (m Model) handleSettingsKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.MapKeyToMenuAction(msg)

	if m.snap.ResetConfirm {
		switch action {
		case MenuActionYes, MenuActionSelect:
			m.machine.HandleEvent(game.Event{Kind: game.EventConfirmYes}, now)
		case MenuActionNo, MenuActionBack:
			m.machine.HandleEvent(game.Event{Kind: game.EventConfirmNo}, now)
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
		m.snap = m.machine.Snapshot(now)
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.setting > 0 {
			m.setting--
		}
	case MenuActionDown:
		if m.setting < settingItemCount-1 {
			m.setting++
		}
	case MenuActionLeft:
		if m.setting == settingItemVolume {
			m.machine.HandleEvent(game.SetVolume(m.snap.Volume-volumeStep), now)
		}
	case MenuActionRight:
		if m.setting == settingItemVolume {
			m.machine.HandleEvent(game.SetVolume(m.snap.Volume+volumeStep), now)
		}
	case MenuActionSelect:
		switch m.setting {
		case settingItemReset:
			m.machine.HandleEvent(game.Event{Kind: game.EventResetHighScore}, now)
		case settingItemBack:
			m.machine.HandleEvent(game.Event{Kind: game.EventBack}, now)
		}
	case MenuActionBack:
		m.machine.HandleEvent(game.Event{Kind: game.EventBack}, now)
	}

	m.snap = m.machine.Snapshot(now)
	return m, nil
}

// View renders the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.snap.Mode {
	case game.ModeMainMenu:
		return m.viewMainMenu()
	case game.ModeSettings:
		return m.viewSettings()
	case game.ModePlaying:
		m.renderer.Draw(m.screen, m.snap, m.frame)
		return RenderScreen(m.screen)
	case game.ModeEnded:
		m.renderer.Draw(m.screen, m.snap, m.frame)
		m.renderer.DrawEndedOverlay(m.screen, m.snap)
		return RenderScreen(m.screen)
	}
	return ""
}

// viewMainMenu renders the title screen.
func (m Model) viewMainMenu() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuTitle.Render("R U N L I N E"), m.runtime.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuHint.Render(fmt.Sprintf("Best distance: %d", m.snap.HighScore)), m.runtime.ScreenW))
	b.WriteString("\n\n")

	items := []string{"Play", "Settings", "Quit"}
	for i, item := range items {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+item), m.runtime.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := theme.MenuHint.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit")
	b.WriteString(centerText(controls, m.runtime.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// viewSettings renders the settings screen, including the reset confirmation.
func (m Model) viewSettings() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuTitle.Render("S E T T I N G S"), m.runtime.ScreenW))
	b.WriteString("\n\n")

	if m.snap.ResetConfirm {
		b.WriteString(centerText(theme.ConfirmWarning.Render("Reset high score?"), m.runtime.ScreenW))
		b.WriteString("\n\n")
		b.WriteString(centerText(theme.SettingLabel.Render(fmt.Sprintf("Current best: %d", m.snap.HighScore)), m.runtime.ScreenW))
		b.WriteString("\n\n")
		b.WriteString(centerText(theme.MenuHint.Render("Y: Yes, wipe it  |  N/Esc: Keep it"), m.runtime.ScreenW))
		b.WriteString("\n")
		return b.String()
	}

	rows := []string{
		fmt.Sprintf("Volume  %s  %3.0f%%", m.volume.ViewAs(m.snap.Volume), m.snap.Volume*100),
		"Reset high score",
		"Back",
	}
	for i, row := range rows {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.setting {
			cursor = "> "
			style = theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+row), m.runtime.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := theme.MenuHint.Render("Left/Right: Volume  |  Enter: Select  |  Esc: Back")
	b.WriteString(centerText(controls, m.runtime.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg *config.Config, rt core.RuntimeConfig, gw game.Gateway, rec game.Recorder, logger *log.Logger) error {
	model := NewModel(cfg, rt, gw, rec, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
