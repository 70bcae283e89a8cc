package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Accent blue
	accentBlue = lipgloss.Color("#2196F3")
	// Success green
	successGreen = lipgloss.Color("#00C853")
	// Warning yellow
	warningYellow = lipgloss.Color("#FFC107")
	// Muted gray
	mutedGray = lipgloss.Color("#9E9E9E")
)

// Style definitions
var (
	// Title style - bold with blue accent
	titleStyle = lipgloss.NewStyle().
			Foreground(accentBlue).
			Bold(true)

	// Section header style
	sectionStyle = lipgloss.NewStyle().
			Foreground(accentBlue)

	// Success style
	successStyle = lipgloss.NewStyle().
			Foreground(successGreen).
			Bold(true)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(warningYellow).
			Bold(true)

	// Muted text style
	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	// Input prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6704E"))
)

// printTitle prints a styled section title with separator
func printTitle(text string) {
	fmt.Println(titleStyle.Render(text))
	fmt.Println()
}

// printSection prints a styled section line
func printSection(text string) {
	fmt.Println(sectionStyle.Render(text))
}

// printSuccess prints a success message
func printSuccess(text string) {
	fmt.Println(successStyle.Render("✓ " + text))
}

// printWarning prints a warning message
func printWarning(text string) {
	fmt.Println(warningStyle.Render("⚠ " + text))
}

// printMuted prints muted text
func printMuted(text string) {
	fmt.Println(mutedStyle.Render(text))
}

// printPrompt prints an input prompt on same line
func printPrompt(text string) {
	fmt.Print(promptStyle.Render(text))
}
