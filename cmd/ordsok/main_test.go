package main

import (
	"testing"

	"github.com/sjursen/ordsok/internal/dict"
	"github.com/sjursen/ordsok/internal/search"
)

func TestModeOverride(t *testing.T) {
	tests := []struct {
		name     string
		fuzzy    bool
		anywhere bool
		expr     bool
		want     search.Mode
		wantErr  bool
	}{
		{
			name: "no flags means auto",
			want: search.ModeAuto,
		},
		{
			name:  "fuzzy flag",
			fuzzy: true,
			want:  search.ModeFuzzy,
		},
		{
			name:     "anywhere flag",
			anywhere: true,
			want:     search.ModeAnywhere,
		},
		{
			name: "expression flag",
			expr: true,
			want: search.ModeExpression,
		},
		{
			name:     "two flags conflict",
			fuzzy:    true,
			anywhere: true,
			wantErr:  true,
		},
		{
			name:     "all flags conflict",
			fuzzy:    true,
			anywhere: true,
			expr:     true,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := modeOverride(tt.fuzzy, tt.anywhere, tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("modeOverride() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassFilter(t *testing.T) {
	tests := []struct {
		name    string
		noun    bool
		verb    bool
		adj     bool
		adv     bool
		want    dict.WordClass
		wantErr bool
	}{
		{
			name: "no flags means no filter",
			want: dict.Unknown,
		},
		{
			name: "noun flag",
			noun: true,
			want: dict.Noun,
		},
		{
			name: "verb flag",
			verb: true,
			want: dict.Verb,
		},
		{
			name: "adjective flag",
			adj:  true,
			want: dict.Adjective,
		},
		{
			name: "adverb flag",
			adv:  true,
			want: dict.Adverb,
		},
		{
			name:    "two flags conflict",
			noun:    true,
			verb:    true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classFilter(tt.noun, tt.verb, tt.adj, tt.adv)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("classFilter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripMarkers(t *testing.T) {
	tests := []struct {
		query    string
		expected string
	}{
		{"hus", "hus"},
		{"hus@", "hus"},
		{"@hus", "hus"},
		{"%hus", "hus"},
		{"%@hus", "hus"},
		{"  %hus  ", "hus"},
		{"til fots", "til fots"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result := stripMarkers(tt.query)
			if result != tt.expected {
				t.Errorf("stripMarkers(%q) = %q, want %q", tt.query, result, tt.expected)
			}
		})
	}
}

func TestExpandWizardPath(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	tests := []struct {
		path     string
		expected string
	}{
		{"~/data/ordbok.db", "/home/test/data/ordbok.db"},
		{"~", "/home/test"},
		{"/abs/ordbok.db", "/abs/ordbok.db"},
		{"relative.db", "relative.db"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result := expandWizardPath(tt.path)
			if result != tt.expected {
				t.Errorf("expandWizardPath(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}
