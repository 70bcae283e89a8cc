// Package render prints dictionary entries for the terminal with
// lipgloss styling and optional query-term highlighting.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjursen/ordsok/internal/dict"
)

var (
	headwordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3")).
			Bold(true)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9E9E9E"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3")).
			Bold(true)

	exampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9E9E9E")).
			Italic(true)

	crossRefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00C853"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107")).
			Bold(true)
)

// Options narrows and decorates the rendered output
type Options struct {
	Highlight       string // Term to emphasize wherever it occurs
	OnlyEtymology   bool
	OnlyInflections bool
	OnlyExamples    bool
}

// Renderer writes formatted entries to a single output
type Renderer struct {
	out  io.Writer
	opts Options
}

// New creates a renderer writing to out
func New(out io.Writer, opts Options) *Renderer {
	return &Renderer{out: out, opts: opts}
}

// Entry prints one dictionary entry. The Only* options reduce the
// output to the headword plus the requested section.
func (r *Renderer) Entry(e dict.Entry) {
	fmt.Fprintf(r.out, "%s %s\n", headwordStyle.Render(e.Lemma), classStyle.Render(r.classNote(e)))

	switch {
	case r.opts.OnlyEtymology:
		r.etymology(e)
	case r.opts.OnlyInflections:
		r.inflections(e)
	case r.opts.OnlyExamples:
		r.examplesOnly(e)
	default:
		r.etymology(e)
		r.definitions(e.Definitions)
		r.inflections(e)
		r.expressions(e.Expressions)
	}
	fmt.Fprintln(r.out)
}

// Listing prints an enumerated candidate list, one summary per line
func (r *Renderer) Listing(items []string) {
	for i, item := range items {
		fmt.Fprintf(r.out, "%3d. %s\n", i+1, r.highlightIn(item))
	}
}

func (r *Renderer) classNote(e dict.Entry) string {
	note := e.Class.Label()
	if e.Class == dict.Noun && e.Gender != dict.NoGender {
		note += " (" + e.Gender.Name() + ")"
	}
	return note
}

func (r *Renderer) etymology(e dict.Entry) {
	if e.Etymology == "" {
		return
	}
	fmt.Fprintf(r.out, "  %s %s\n", classStyle.Render("etym:"), r.highlightIn(e.Etymology))
}

func (r *Renderer) definitions(defs []dict.Definition) {
	for i, d := range defs {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, r.highlightIn(d.Content))
		r.examples(d.Examples, "     ")
		for j, sub := range d.Subs {
			fmt.Fprintf(r.out, "     %c) %s\n", 'a'+j, r.highlightIn(sub.Content))
			r.examples(sub.Examples, "        ")
		}
	}
}

func (r *Renderer) examples(exs []dict.Example, indent string) {
	for _, ex := range exs {
		line := ex.Quote
		if ex.Explanation != "" {
			line += " — " + ex.Explanation
		}
		fmt.Fprintf(r.out, "%s%s\n", indent, exampleStyle.Render(r.highlightIn(line)))
	}
}

// examplesOnly walks every definition level and prints just the quotes
func (r *Renderer) examplesOnly(e dict.Entry) {
	var walk func(defs []dict.Definition)
	walk = func(defs []dict.Definition) {
		for _, d := range defs {
			r.examples(d.Examples, "  ")
			walk(d.Subs)
		}
	}
	walk(e.Definitions)
	for _, expr := range e.Expressions {
		walk(expr.Definitions)
	}
}

func (r *Renderer) inflections(e dict.Entry) {
	if len(e.Inflections) == 0 {
		return
	}
	fmt.Fprintf(r.out, "  %s\n", sectionStyle.Render("Inflections"))

	forms := make([]string, 0, len(e.Inflections))
	for form := range e.Inflections {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	for _, form := range forms {
		fmt.Fprintf(r.out, "    %-14s %s\n", form+":", e.Inflections[form])
	}
}

func (r *Renderer) expressions(exprs []dict.Expression) {
	if len(exprs) == 0 {
		return
	}
	fmt.Fprintf(r.out, "  %s\n", sectionStyle.Render("Expressions"))
	for _, expr := range exprs {
		fmt.Fprintf(r.out, "    %s", r.highlightIn(expr.Phrase))
		if expr.CrossRef != "" {
			fmt.Fprintf(r.out, " %s", crossRefStyle.Render("→ "+expr.CrossRef))
		}
		fmt.Fprintln(r.out)
		for _, d := range expr.Definitions {
			fmt.Fprintf(r.out, "      %s\n", r.highlightIn(d.Content))
			r.examples(d.Examples, "      ")
		}
	}
}

// highlightIn emphasizes every case-insensitive occurrence of the
// highlight term in s
func (r *Renderer) highlightIn(s string) string {
	term := r.opts.Highlight
	if term == "" {
		return s
	}
	lower := strings.ToLower(s)
	lowerTerm := strings.ToLower(term)

	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(lower[i:], lowerTerm)
		if idx < 0 {
			b.WriteString(s[i:])
			break
		}
		start := i + idx
		end := start + len(lowerTerm)
		b.WriteString(s[i:start])
		b.WriteString(highlightStyle.Render(s[start:end]))
		i = end
	}
	return b.String()
}
