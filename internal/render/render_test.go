package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sjursen/ordsok/internal/dict"
)

func fullEntry() dict.Entry {
	return dict.Entry{
		ID:     1,
		Lemma:  "hus",
		Class:  dict.Noun,
		Gender: dict.Neuter,
		Definitions: []dict.Definition{
			{
				Content:  "bygning med vegger og tak",
				Examples: []dict.Example{{Quote: "et gammelt hus", Explanation: "om bolig"}},
				Subs: []dict.Definition{
					{Content: "bolig, heim"},
				},
			},
			{Content: "husstand, familie"},
		},
		Etymology: "norrønt hús",
		Inflections: map[string]string{
			"entall":           "hus",
			"flertall":         "hus",
			"bestemt flertall": "husa",
		},
		Expressions: []dict.Expression{
			{
				Phrase:      "fullt hus",
				CrossRef:    "full",
				Definitions: []dict.Definition{{Content: "utsolgt forestilling"}},
			},
		},
	}
}

func renderToString(e dict.Entry, opts Options) string {
	var buf bytes.Buffer
	New(&buf, opts).Entry(e)
	return buf.String()
}

func TestEntryFull(t *testing.T) {
	out := renderToString(fullEntry(), Options{})

	for _, want := range []string{
		"hus",
		"[noun]",
		"intetkjønn",
		"norrønt hús",
		"1. bygning med vegger og tak",
		"et gammelt hus — om bolig",
		"a) bolig, heim",
		"2. husstand, familie",
		"Inflections",
		"bestemt flertall:",
		"Expressions",
		"fullt hus",
		"→ full",
		"utsolgt forestilling",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEntryOnlyEtymology(t *testing.T) {
	out := renderToString(fullEntry(), Options{OnlyEtymology: true})

	if !strings.Contains(out, "norrønt hús") {
		t.Errorf("output missing etymology:\n%s", out)
	}
	for _, skip := range []string{"bygning", "Inflections", "Expressions"} {
		if strings.Contains(out, skip) {
			t.Errorf("etymology-only output contains %q:\n%s", skip, out)
		}
	}
}

func TestEntryOnlyInflections(t *testing.T) {
	out := renderToString(fullEntry(), Options{OnlyInflections: true})

	if !strings.Contains(out, "Inflections") {
		t.Errorf("output missing inflection table:\n%s", out)
	}
	if strings.Contains(out, "bygning") {
		t.Errorf("inflections-only output contains a definition:\n%s", out)
	}
}

func TestEntryOnlyExamples(t *testing.T) {
	out := renderToString(fullEntry(), Options{OnlyExamples: true})

	if !strings.Contains(out, "et gammelt hus") {
		t.Errorf("output missing example:\n%s", out)
	}
	for _, skip := range []string{"bygning", "norrønt", "Inflections"} {
		if strings.Contains(out, skip) {
			t.Errorf("examples-only output contains %q:\n%s", skip, out)
		}
	}
}

func TestEntryInflectionsSorted(t *testing.T) {
	out := renderToString(fullEntry(), Options{})

	first := strings.Index(out, "bestemt flertall:")
	second := strings.Index(out, "entall:")
	third := strings.Index(out, "flertall:")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing inflection rows:\n%s", out)
	}
	// "flertall:" also occurs inside "bestemt flertall:"; find its own row
	third = strings.Index(out[second:], "flertall:") + second
	if !(first < second && second < third) {
		t.Errorf("inflection rows not sorted: positions %d %d %d\n%s", first, second, third, out)
	}
}

func TestEntryWithoutOptionalParts(t *testing.T) {
	e := dict.Entry{
		ID:          2,
		Lemma:       "gå",
		Class:       dict.Verb,
		Definitions: []dict.Definition{{Content: "bevege seg til fots"}},
	}
	out := renderToString(e, Options{})

	for _, skip := range []string{"etym:", "Inflections", "Expressions", "("} {
		if strings.Contains(out, skip) {
			t.Errorf("output contains %q for an entry without that part:\n%s", skip, out)
		}
	}
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Highlight: "hus"})

	got := r.highlightIn("et gammelt Hus ved huset")
	// The matched text survives with original casing, wrapped or not
	if !strings.Contains(got, "Hus") {
		t.Errorf("highlight dropped original casing: %q", got)
	}
	if !strings.Contains(got, "gammelt") {
		t.Errorf("highlight dropped surrounding text: %q", got)
	}

	plain := New(&buf, Options{}).highlightIn("et hus")
	if plain != "et hus" {
		t.Errorf("empty highlight changed text: %q", plain)
	}
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{}).Listing([]string{"hus [noun] (intetkjønn)", "huse [verb]"})

	out := buf.String()
	if !strings.Contains(out, "  1. hus [noun] (intetkjønn)") {
		t.Errorf("listing missing first item:\n%s", out)
	}
	if !strings.Contains(out, "  2. huse [verb]") {
		t.Errorf("listing missing second item:\n%s", out)
	}
}
