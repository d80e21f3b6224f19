package display

import (
	"strings"

	"github.com/bnema/pocketcalc/internal/application"
	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 28
	keyWidth     = 6
)

// KeypadRows is the button layout, top to bottom. Every label is accepted by
// application.ParseAction.
var KeypadRows = [][]string{
	{"M+", "M-", "MC", "MR"},
	{"AC", "+/-", "%", "÷"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"⌫", "0", ".", "="},
}

type RenderOptions struct {
	Width       int
	ShowHistory bool
	ShowKeypad  bool
	AccentColor string
}

// Panel renders the screen followed by either the history list or the keypad.
func Panel(snapshot application.Snapshot, opts RenderOptions) string {
	s := newStyles(opts.AccentColor)
	parts := []string{renderScreen(snapshot, opts, s)}

	switch {
	case opts.ShowHistory:
		parts = append(parts, renderHistory(snapshot.History, s))
	case opts.ShowKeypad:
		parts = append(parts, renderKeypad(snapshot.MemoryStored, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func Screen(snapshot application.Snapshot, opts RenderOptions) string {
	return renderScreen(snapshot, opts, newStyles(opts.AccentColor))
}

func Keypad(memoryStored bool, opts RenderOptions) string {
	return renderKeypad(memoryStored, newStyles(opts.AccentColor))
}

func HistoryList(history []domain.HistoryEntry, opts RenderOptions) string {
	return renderHistory(history, newStyles(opts.AccentColor))
}

func renderScreen(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	value := s.value.Render(snapshot.Display)
	if snapshot.Display == application.DisplayError {
		value = s.errorValue.Render(snapshot.Display)
	}

	memory := s.indicatorOff.Render(" ")
	if snapshot.MemoryStored {
		memory = s.indicator.Render("M")
	}
	pending := " "
	if snapshot.PendingOperator != "" {
		pending = snapshot.PendingOperator
	}
	status := lipgloss.JoinHorizontal(lipgloss.Top, memory, " ", s.indicator.Render(pending))

	// border and padding take four columns
	return s.screen.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Right, status, value))
}

func renderKeypad(memoryStored bool, s styles) string {
	rows := make([]string, 0, len(KeypadRows))
	for _, row := range KeypadRows {
		keys := make([]string, 0, len(row))
		for _, label := range row {
			keys = append(keys, keyStyle(label, memoryStored, s).Width(keyWidth).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func keyStyle(label string, memoryStored bool, s styles) lipgloss.Style {
	switch {
	case label == "MR" && !memoryStored:
		return s.disabledKey
	case strings.HasPrefix(label, "M"):
		return s.memoryKey
	case label == "=" || strings.ContainsAny(label, "+-*÷") && label != "+/-":
		return s.operatorKey
	case label == "AC" || label == "+/-" || label == "%" || label == "⌫":
		return s.functionKey
	default:
		return s.digitKey
	}
}

func renderHistory(history []domain.HistoryEntry, s styles) string {
	lines := []string{s.historyTitle.Render("History")}
	if len(history) == 0 {
		lines = append(lines, s.empty.Render("No calculations yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range history {
		lines = append(lines, s.historyItem.Render(entry.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
