package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the runner.
type Theme struct {
	// Menu styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style

	// HUD styles
	HUDScore    lipgloss.Style
	HUDControls lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
	OverlayMuted  lipgloss.Style

	// Settings styles
	SettingLabel   lipgloss.Style
	ConfirmWarning lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		HUDScore:    lipgloss.NewStyle().Bold(true),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		OverlayTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		OverlayMuted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		SettingLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ConfirmWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// theme is the process-wide theme instance.
var theme = DefaultTheme()
