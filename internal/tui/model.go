// Package tui implements the interactive browse mode: type-ahead lemma
// search with a navigable candidate list.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjursen/ordsok/internal/search"
)

// Suggester produces candidates for a partial query. The search engine
// implements it; tests use scripted fakes.
type Suggester interface {
	Suggest(term string, limit int) ([]search.Candidate, error)
}

// Model represents the TUI state
type Model struct {
	textInput   textinput.Model
	styles      Styles
	colorScheme *ColorScheme
	suggester   Suggester
	candidates  []search.Candidate // Current type-ahead results
	selected    *search.Candidate  // Set when user presses enter
	dbName      string             // Dictionary file name for the header
	version     string
	searchErr   error
	limit       int // Maximum candidates requested per keystroke
	cursor      int
	width       int
	height      int
	quitting    bool
	showHelp    bool
}

// New creates a browse model over the given suggester. The initial
// query, when non-empty, is searched immediately.
func New(suggester Suggester, initialQuery, dbPath, version string, limit int) Model {
	colorScheme := NewColorScheme()
	styles := colorScheme.GetStyles()

	ti := textinput.New()
	ti.Placeholder = "Search the dictionary..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 50
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt

	if initialQuery != "" {
		ti.SetValue(initialQuery)
	}

	m := Model{
		textInput:   ti,
		styles:      styles,
		colorScheme: colorScheme,
		suggester:   suggester,
		dbName:      filepath.Base(dbPath),
		version:     version,
		limit:       limit,
	}
	m.filter()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if len(m.candidates) > 0 && m.cursor < len(m.candidates) {
				chosen := m.candidates[m.cursor]
				m.selected = &chosen
			}
			m.quitting = true
			return m, tea.Quit

		case "?":
			m.showHelp = !m.showHelp

		case "down", "ctrl+n":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
			}

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		default:
			m.textInput, cmd = m.textInput.Update(msg)
			m.filter()
			m.cursor = 0 // Reset cursor when query changes
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, cmd
}

// filter refreshes the candidate list from the current input
func (m *Model) filter() {
	term := strings.TrimSpace(m.textInput.Value())
	if term == "" {
		m.candidates = nil
		m.searchErr = nil
		return
	}

	cands, err := m.suggester.Suggest(term, m.limit)
	if err != nil {
		m.searchErr = err
		m.candidates = nil
		return
	}
	m.searchErr = nil
	m.candidates = cands
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	var statusIndicator string
	if m.searchErr != nil {
		statusIndicator = m.styles.StatusError.Render("●")
	} else {
		statusIndicator = m.styles.StatusIdle.Render("○")
	}

	titleLeft := fmt.Sprintf("%s %s",
		m.styles.Title.Render("ordsok"),
		m.styles.DBInfo.Render(m.version))

	countText := fmt.Sprintf("%d matches", len(m.candidates))
	titleRight := fmt.Sprintf("%s %s %s %s",
		m.styles.Count.Render(countText),
		m.styles.DBInfo.Render("["+m.dbName+"]"),
		m.styles.Help.Render("[?] Help"),
		statusIndicator)

	leftWidth := lipgloss.Width(titleLeft)
	rightWidth := lipgloss.Width(titleRight)
	spacing := " "
	if m.width > leftWidth+rightWidth {
		spacing = strings.Repeat(" ", m.width-leftWidth-rightWidth)
	}

	b.WriteString(titleLeft)
	b.WriteString(spacing)
	b.WriteString(titleRight)
	b.WriteString("\n")

	if m.width > 0 {
		b.WriteString(m.styles.Help.Render(strings.Repeat("─", m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	usedLines := 6 // Title, separator, blank, input, two blanks
	if m.showHelp {
		usedLines += 3
	}
	maxVisible := m.height - usedLines - 1
	if maxVisible < 1 {
		maxVisible = 1
	}

	// Keep the cursor row inside the viewport
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	query := strings.TrimSpace(m.textInput.Value())
	for i := start; i < len(m.candidates) && i-start < maxVisible; i++ {
		cand := m.candidates[i]

		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("▌"))
		} else {
			b.WriteString(" ")
		}

		line := " " + m.renderCandidate(cand, query, i == m.cursor)
		if i == m.cursor && m.width > 2 {
			b.WriteString(m.styles.Selected.Width(m.width - 2).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.searchErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.StatusError.Render("search failed: " + m.searchErr.Error()))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("↑/↓: navigate • enter: select • esc: quit • ?: toggle help"))
	}

	return b.String()
}

// renderCandidate formats one list row: the lemma with the query match
// highlighted, followed by the muted class and gender note
func (m Model) renderCandidate(cand search.Candidate, query string, isSelected bool) string {
	lemma := cand.Entry.Lemma
	if cand.Expression != nil {
		lemma = cand.Expression.Phrase
	}

	var b strings.Builder
	b.WriteString(m.renderHighlighted(lemma, query, isSelected))

	detail := cand.Summary()
	if rest := strings.TrimPrefix(detail, lemma); rest != detail && rest != "" {
		b.WriteString(m.styles.Detail.Render(rest))
	}
	return b.String()
}

// renderHighlighted emphasizes the first case-insensitive occurrence of
// the query within the text
func (m Model) renderHighlighted(text, query string, isSelected bool) string {
	base := m.styles.Normal
	if isSelected {
		base = lipgloss.NewStyle()
	}
	if query == "" {
		return base.Render(text)
	}

	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return base.Render(text)
	}
	end := idx + len(query)
	return base.Render(text[:idx]) + m.styles.Highlight.Render(text[idx:end]) + base.Render(text[end:])
}

// Selected returns the chosen candidate, or nil when the user quit
// without selecting
func (m Model) Selected() *search.Candidate {
	return m.selected
}
