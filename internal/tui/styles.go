package tui

import "github.com/charmbracelet/lipgloss"

// ColorScheme holds all adaptive color definitions for the TUI
type ColorScheme struct {
	// Title bar
	Title  lipgloss.AdaptiveColor
	DBInfo lipgloss.AdaptiveColor

	// Input prompt
	Prompt lipgloss.AdaptiveColor

	// Candidate list
	Normal     lipgloss.AdaptiveColor
	Selected   lipgloss.AdaptiveColor
	SelectedBg lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor // For matched query text
	Detail     lipgloss.AdaptiveColor // Word class and gender notes

	// Counts and indicators
	Count       lipgloss.AdaptiveColor
	Cursor      lipgloss.AdaptiveColor
	StatusError lipgloss.AdaptiveColor
	StatusIdle  lipgloss.AdaptiveColor

	// Help text
	Help lipgloss.AdaptiveColor
}

// NewColorScheme creates a new color scheme with adaptive colors for terminal theme
func NewColorScheme() *ColorScheme {
	return &ColorScheme{
		// Title: bright cyan for dark, darker blue for light
		Title: lipgloss.AdaptiveColor{
			Light: "#0066CC",
			Dark:  "#5AD4E6",
		},

		// Database info: muted for both
		DBInfo: lipgloss.AdaptiveColor{
			Light: "#666666",
			Dark:  "#6967A3",
		},

		Prompt: lipgloss.AdaptiveColor{
			Light: "#D97706",
			Dark:  "#FC9867",
		},

		// Normal text: dark on light, light on dark
		Normal: lipgloss.AdaptiveColor{
			Light: "#1A1A1A",
			Dark:  "#F7F1FF",
		},

		// Selected item text: ensure contrast
		Selected: lipgloss.AdaptiveColor{
			Light: "#000000",
			Dark:  "#E4E4E4",
		},

		SelectedBg: lipgloss.AdaptiveColor{
			Light: "#E0E0E0",
			Dark:  "#303030",
		},

		// Matched query text: yellow/orange
		Highlight: lipgloss.AdaptiveColor{
			Light: "#D97706",
			Dark:  "#FCE566",
		},

		// Word class and gender notes: muted
		Detail: lipgloss.AdaptiveColor{
			Light: "#737373",
			Dark:  "#999999",
		},

		Count: lipgloss.AdaptiveColor{
			Light: "#666666",
			Dark:  "#6967A3",
		},

		Cursor: lipgloss.AdaptiveColor{
			Light: "#E6704E",
			Dark:  "#E6704E",
		},

		StatusError: lipgloss.AdaptiveColor{
			Light: "#DC2626",
			Dark:  "#FC618D",
		},

		StatusIdle: lipgloss.AdaptiveColor{
			Light: "#737373",
			Dark:  "#666666",
		},

		Help: lipgloss.AdaptiveColor{
			Light: "#737373",
			Dark:  "#666666",
		},
	}
}

// GetStyles returns pre-configured lipgloss styles using the color scheme
func (cs *ColorScheme) GetStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(cs.Title),

		DBInfo: lipgloss.NewStyle().
			Foreground(cs.DBInfo),

		Prompt: lipgloss.NewStyle().
			Foreground(cs.Prompt),

		Normal: lipgloss.NewStyle().
			Foreground(cs.Normal),

		Selected: lipgloss.NewStyle().
			Foreground(cs.Selected).
			Background(cs.SelectedBg),

		Highlight: lipgloss.NewStyle().
			Foreground(cs.Highlight).
			Bold(true),

		Detail: lipgloss.NewStyle().
			Foreground(cs.Detail).
			Italic(true),

		Count: lipgloss.NewStyle().
			Foreground(cs.Count),

		Cursor: lipgloss.NewStyle().
			Foreground(cs.Cursor).
			Bold(true),

		StatusError: lipgloss.NewStyle().
			Foreground(cs.StatusError),

		StatusIdle: lipgloss.NewStyle().
			Foreground(cs.StatusIdle),

		Help: lipgloss.NewStyle().
			Foreground(cs.Help),
	}
}

// Styles holds pre-configured lipgloss styles
type Styles struct {
	Title       lipgloss.Style
	DBInfo      lipgloss.Style
	Prompt      lipgloss.Style
	Normal      lipgloss.Style
	Selected    lipgloss.Style
	Highlight   lipgloss.Style
	Detail      lipgloss.Style
	Count       lipgloss.Style
	Cursor      lipgloss.Style
	StatusError lipgloss.Style
	StatusIdle  lipgloss.Style
	Help        lipgloss.Style
}
