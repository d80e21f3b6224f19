package display

import (
	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	screen       lipgloss.Style
	value        lipgloss.Style
	errorValue   lipgloss.Style
	indicator    lipgloss.Style
	indicatorOff lipgloss.Style
	digitKey     lipgloss.Style
	operatorKey  lipgloss.Style
	functionKey  lipgloss.Style
	memoryKey    lipgloss.Style
	disabledKey  lipgloss.Style
	historyTitle lipgloss.Style
	historyItem  lipgloss.Style
	empty        lipgloss.Style
}

func newStyles(accent string) styles {
	if accent == "" {
		accent = domain.DefaultAccentColor
	}
	accentColor := lipgloss.Color(accent)

	return styles{
		screen:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1).Align(lipgloss.Right),
		value:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		errorValue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		indicator:    lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		indicatorOff: lipgloss.NewStyle().Faint(true),
		digitKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Center),
		operatorKey:  lipgloss.NewStyle().Bold(true).Foreground(accentColor).Align(lipgloss.Center),
		functionKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Align(lipgloss.Center),
		memoryKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Align(lipgloss.Center),
		disabledKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Align(lipgloss.Center),
		historyTitle: lipgloss.NewStyle().Bold(true),
		historyItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(1),
		empty:        lipgloss.NewStyle().Faint(true),
	}
}
