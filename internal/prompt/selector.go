package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjursen/ordsok/internal/search"
)

var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Selector runs the disambiguation menu over a KeyReader and an output
// writer. It implements the search engine's selection hook.
type Selector struct {
	keys     KeyReader
	out      io.Writer
	pageSize int
}

// NewSelector creates a selector with the given page size (0 = default)
func NewSelector(keys KeyReader, out io.Writer, pageSize int) *Selector {
	return &Selector{keys: keys, out: out, pageSize: pageSize}
}

// Select shows the paged menu and blocks until the user picks a
// candidate or dismisses it. Dismissal is reported as
// search.ErrSelectionCancelled.
func (s *Selector) Select(cands []search.Candidate) (int, error) {
	items := make([]string, len(cands))
	for i, c := range cands {
		items[i] = c.Summary()
	}

	sess := NewSession(items, s.pageSize)
	for sess.Status() == StatusActive {
		s.renderPage(sess, len(items))

		key, err := s.keys.ReadKey()
		if err != nil {
			return 0, err
		}
		sess.Feed(key)
	}

	if sess.Status() == StatusCancelled {
		return 0, search.ErrSelectionCancelled
	}
	return sess.Choice(), nil
}

func (s *Selector) renderPage(sess *Session, total int) {
	fmt.Fprintf(s.out, "%d matches:\n", total)
	for _, item := range sess.Page() {
		fmt.Fprintf(s.out, "  %s  %s\n", keyStyle.Render(string(item.Key)+")"), item.Label)
	}

	hint := "press a letter to select, any other key to cancel"
	if sess.HasMore() {
		hint = "press a letter to select, space for more, any other key to cancel"
	}
	fmt.Fprintln(s.out, footerStyle.Render(hint))
}
