package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sjursen/ordsok/internal/config"
	"github.com/sjursen/ordsok/internal/dict"
	"github.com/sjursen/ordsok/internal/logger"
	"github.com/sjursen/ordsok/internal/prompt"
	"github.com/sjursen/ordsok/internal/render"
	"github.com/sjursen/ordsok/internal/search"
	"github.com/sjursen/ordsok/internal/store"
	"github.com/sjursen/ordsok/internal/tui"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	verbose    bool // Flag to enable verbose logging
	fuzzyMode  bool // Force fuzzy matching
	anywhere   bool // Force substring matching
	exprMode   bool // Search fixed expressions instead of lemmas
	nounOnly   bool
	verbOnly   bool
	adjOnly    bool
	advOnly    bool
	threshold  float64 // Fuzzy similarity cutoff override
	limit      int     // Result limit override
	pageSize   int     // Menu page size override
	noFallback bool    // Disable the exact -> fuzzy -> prefix chain
	listOnly   bool    // Print all candidates instead of prompting
	onlyEtym   bool
	onlyInfl   bool
	onlyExmp   bool
	showStats  bool   // Print corpus statistics and exit
	dbPath     string // Dictionary database override
)

var rootCmd = &cobra.Command{
	Use:   "ordsok [flags] [query...]",
	Short: "Norwegian dictionary lookup with fuzzy matching",
	Long: `ordsok searches a local dictionary database by headword, with
automatic fallback from exact to fuzzy to prefix matching and a
single-keystroke menu when a query is ambiguous.

Query syntax:
  hus        exact headword match (falls back to fuzzy, then prefix)
  hus@       headwords starting with "hus"
  @hus       headwords containing "hus"
  %hus       full-text search across definitions and examples

ASCII digraphs are understood: "gaar" also tries "går", "broed"
also tries "brød", "vaere" also tries "være".

Examples:
  ordsok hus             # Look up "hus"
  ordsok -f hsu          # Fuzzy search for a misspelling
  ordsok --verb huse     # Only verb entries
  ordsok -x "til fots"   # Search fixed expressions
  ordsok --list hus@     # Print every "hus..." headword
  ordsok                 # Interactive browse mode

Configuration lives at ~/.config/ordsok/config.yaml; run
'ordsok config' to set it up.`,
	RunE:                       runLookup,
	Args:                       cobra.ArbitraryArgs,
	SuggestionsMinimumDistance: 2,
}

// modeOverride maps the mode flags to an explicit search mode.
// At most one may be set; zero means detect from query syntax.
func modeOverride(fuzzy, anywhere, expr bool) (search.Mode, error) {
	set := 0
	mode := search.ModeAuto
	if fuzzy {
		set++
		mode = search.ModeFuzzy
	}
	if anywhere {
		set++
		mode = search.ModeAnywhere
	}
	if expr {
		set++
		mode = search.ModeExpression
	}
	if set > 1 {
		return search.ModeAuto, errors.New("at most one of --fuzzy, --anywhere, --expr may be given")
	}
	return mode, nil
}

// classFilter maps the word-class flags to a filter value. At most one
// may be set; zero flags means no filtering.
func classFilter(noun, verb, adj, adv bool) (dict.WordClass, error) {
	set := 0
	class := dict.Unknown
	if noun {
		set++
		class = dict.Noun
	}
	if verb {
		set++
		class = dict.Verb
	}
	if adj {
		set++
		class = dict.Adjective
	}
	if adv {
		set++
		class = dict.Adverb
	}
	if set > 1 {
		return dict.Unknown, errors.New("at most one of --noun, --verb, --adj, --adv may be given")
	}
	return class, nil
}

// stripMarkers removes query syntax markers, leaving the bare term for
// output highlighting
func stripMarkers(query string) string {
	return strings.Trim(strings.TrimSpace(query), "@%")
}

// runLookup handles the default lookup behavior
func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if threshold != 0 {
		cfg.Search.Threshold = threshold
	}
	if limit != 0 {
		cfg.Search.Limit = limit
	}
	if pageSize != 0 {
		cfg.Search.PageSize = pageSize
	}

	mode, err := modeOverride(fuzzyMode, anywhere, exprMode)
	if err != nil {
		return err
	}
	class, err := classFilter(nounOnly, verbOnly, adjOnly, advOnly)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to open dictionary at %s", cfg.Database.Path)
		logger.Info("Run 'ordsok config' to point at a dictionary database.")
		return fmt.Errorf("store error: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Debug("Failed to close store: %v", err)
		}
	}()

	if showStats {
		return printStats(st)
	}

	engine := search.New(
		st,
		search.NewNormalizer(cfg.Search.ReplacementTable()),
		search.Defaults{
			Threshold: cfg.Search.Threshold,
			Limit:     cfg.Search.Limit,
			PageSize:  cfg.Search.PageSize,
		},
		prompt.NewSelector(prompt.NewTerminalKeyReader(), os.Stdout, cfg.Search.PageSize),
	)

	// Join all args to support multi-word queries: "ordsok til fots"
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return runInteractive(engine, cfg)
	}

	interactive := cfg.UI.Interactive && !listOnly && term.IsTerminal(int(os.Stdin.Fd()))
	opts := search.Options{
		ModeOverride: mode,
		WordClass:    class,
		Limit:        cfg.Search.Limit,
		Threshold:    cfg.Search.Threshold,
		Fallback:     cfg.Search.Fallback && !noFallback,
		Interactive:  interactive,
		PageSize:     cfg.Search.PageSize,
	}

	outcome, err := engine.Resolve(query, opts)
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case search.KindEmpty:
		printWarning(fmt.Sprintf("no matches for %q", query))
		return nil

	case search.KindCancelled:
		printMuted("selection cancelled")
		return nil

	case search.KindListed:
		logger.Debug("listing %d candidates from %s search", len(outcome.Candidates), outcome.Mode)
		items := make([]string, len(outcome.Candidates))
		for i, c := range outcome.Candidates {
			items[i] = c.Summary()
		}
		newRenderer(query, outcome.Mode).Listing(items)
		return nil

	default:
		logger.Debug("resolved %q via %s search", query, outcome.Mode)
		newRenderer(query, outcome.Mode).Entry(outcome.Candidate.Entry)
		return nil
	}
}

// newRenderer builds an entry renderer for the current display flags.
// Full-text results highlight the search term inside the entry body.
func newRenderer(query string, mode search.Mode) *render.Renderer {
	opts := render.Options{
		OnlyEtymology:   onlyEtym,
		OnlyInflections: onlyInfl,
		OnlyExamples:    onlyExmp,
	}
	if mode == search.ModeFullText || mode == search.ModeExpression {
		opts.Highlight = stripMarkers(query)
	}
	return render.New(os.Stdout, opts)
}

// runInteractive launches the browse TUI and renders the chosen entry
func runInteractive(engine *search.Engine, cfg *config.Config) error {
	m := tui.New(engine, "", cfg.Database.Path, version, cfg.Search.Limit)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if model, ok := finalModel.(tui.Model); ok {
		if chosen := model.Selected(); chosen != nil {
			newRenderer("", chosen.Mode).Entry(chosen.Entry)
		}
	}
	return nil
}

// printStats prints corpus counts from the open store
func printStats(st *store.Store) error {
	stats, err := st.Stats()
	if err != nil {
		return fmt.Errorf("reading statistics: %w", err)
	}

	printTitle("Dictionary statistics")
	printSection(fmt.Sprintf("%-14s %d", "entries:", stats.Entries))
	for _, class := range []dict.WordClass{dict.Noun, dict.Verb, dict.Adjective, dict.Adverb, dict.Other} {
		if n, ok := stats.ByClass[class]; ok && n > 0 {
			printMuted(fmt.Sprintf("  %-12s %d", strings.ToLower(string(class))+":", n))
		}
	}
	printSection(fmt.Sprintf("%-14s %d", "definitions:", stats.Definitions))
	printSection(fmt.Sprintf("%-14s %d", "examples:", stats.Examples))
	printSection(fmt.Sprintf("%-14s %d", "expressions:", stats.Expressions))
	printMuted(fmt.Sprintf("\ndatabase: %s", st.Path()))
	return nil
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVarP(&fuzzyMode, "fuzzy", "f", false, "force fuzzy matching")
	rootCmd.Flags().BoolVarP(&anywhere, "anywhere", "a", false, "match the term anywhere in the headword")
	rootCmd.Flags().BoolVarP(&exprMode, "expr", "x", false, "search fixed expressions")
	rootCmd.Flags().BoolVar(&nounOnly, "noun", false, "only noun entries")
	rootCmd.Flags().BoolVar(&verbOnly, "verb", false, "only verb entries")
	rootCmd.Flags().BoolVar(&adjOnly, "adj", false, "only adjective entries")
	rootCmd.Flags().BoolVar(&advOnly, "adv", false, "only adverb entries")
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "fuzzy similarity cutoff between 0 and 1")
	rootCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum candidates shown")
	rootCmd.Flags().IntVar(&pageSize, "page-size", 0, "disambiguation menu page size")
	rootCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "disable exact -> fuzzy -> prefix fallback")
	rootCmd.Flags().BoolVarP(&listOnly, "list", "l", false, "print all candidates instead of prompting")
	rootCmd.Flags().BoolVarP(&onlyEtym, "only-etymology", "e", false, "show only the etymology")
	rootCmd.Flags().BoolVarP(&onlyInfl, "only-inflections", "i", false, "show only the inflection table")
	rootCmd.Flags().BoolVar(&onlyExmp, "only-examples", false, "show only example sentences")
	rootCmd.Flags().BoolVarP(&showStats, "stats", "s", false, "print corpus statistics")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "dictionary database path (overrides config)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		logger.Debug("Verbose mode enabled")
	}
}

func main() {
	// Enable interspersed flags (flags can appear anywhere in the command line)
	rootCmd.Flags().SetInterspersed(true)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
