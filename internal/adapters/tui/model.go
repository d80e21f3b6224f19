// Package tui is the interactive calculator. It drives an application.Engine
// from key presses and draws it with the display renderer.
package tui

import (
	"github.com/bnema/pocketcalc/internal/adapters/render/display"
	"github.com/bnema/pocketcalc/internal/application"
	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/bnema/pocketcalc/internal/expr"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	panelWidth    = 28
	historyHeight = 6
)

// SettingsChangedMsg carries settings reloaded while the program runs.
type SettingsChangedMsg struct {
	Settings domain.Settings
}

type Model struct {
	engine      *application.Engine
	keys        keyMap
	help        help.Model
	history     viewport.Model
	showHistory bool
	settings    domain.Settings
	width       int
	quitting    bool
}

func NewModel(engine *application.Engine, settings domain.Settings) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		engine:   engine,
		keys:     defaultKeyMap(),
		help:     h,
		history:  viewport.New(panelWidth, historyHeight),
		settings: settings,
		width:    panelWidth,
	}
	m.refreshHistory()
	return m
}

// NewProgram wraps the model in a full-screen bubbletea program.
func NewProgram(engine *application.Engine, settings domain.Settings, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(NewModel(engine, settings), opts...)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width, panelWidth), 2*panelWidth)
		m.help.Width = msg.Width
		m.history.Width = m.width
		return m, nil
	case SettingsChangedMsg:
		m.settings = msg.Settings
		m.engine.SetFormatter(expr.NewFormatter(msg.Settings.Display))
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		m.refreshHistory()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if action, ok := m.actionFor(msg); ok {
		// the only failure is an unknown action, which actionFor never returns
		_ = m.engine.Apply(action)
		m.refreshHistory()
		return m, nil
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) actionFor(msg tea.KeyMsg) (application.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Equals):
		return application.Action{Kind: application.ActionEquals}, true
	case key.Matches(msg, m.keys.Backspace):
		return application.Action{Kind: application.ActionBackspace}, true
	case key.Matches(msg, m.keys.Clear):
		return application.Action{Kind: application.ActionClear}, true
	case key.Matches(msg, m.keys.Percent):
		return application.Action{Kind: application.ActionPercent}, true
	case key.Matches(msg, m.keys.Negate):
		return application.Action{Kind: application.ActionToggleSign}, true
	case key.Matches(msg, m.keys.MemoryAdd):
		return application.Action{Kind: application.ActionMemoryAdd}, true
	case key.Matches(msg, m.keys.MemorySubtract):
		return application.Action{Kind: application.ActionMemorySubtract}, true
	case key.Matches(msg, m.keys.MemoryClear):
		return application.Action{Kind: application.ActionMemoryClear}, true
	case key.Matches(msg, m.keys.MemoryRecall):
		if !m.engine.IsMemoryStored() {
			return application.Action{}, false
		}
		return application.Action{Kind: application.ActionMemoryRecall}, true
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return application.Action{}, false
	}
	action, err := application.ParseAction(string(msg.Runes))
	if err != nil {
		return application.Action{}, false
	}
	switch action.Kind {
	case application.ActionDigit, application.ActionOperator:
		return action, true
	default:
		return application.Action{}, false
	}
}

func (m *Model) refreshHistory() {
	m.history.SetContent(display.HistoryList(m.engine.History(), m.renderOptions()))
	m.history.GotoBottom()
}

func (m Model) renderOptions() display.RenderOptions {
	return display.RenderOptions{
		Width:       m.width,
		ShowHistory: m.showHistory,
		ShowKeypad:  !m.showHistory,
		AccentColor: m.settings.UI.AccentColor,
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	opts := m.renderOptions()
	snapshot := m.engine.Snapshot()

	parts := []string{display.Screen(snapshot, opts)}
	if m.showHistory {
		parts = append(parts, m.history.View())
	} else {
		parts = append(parts, display.Keypad(snapshot.MemoryStored, opts))
	}
	if m.settings.UI.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
