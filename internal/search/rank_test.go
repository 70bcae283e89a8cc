package search

import (
	"testing"

	"github.com/sjursen/ordsok/internal/dict"
)

func rankInput() []Candidate {
	return []Candidate{
		{Entry: dict.Entry{ID: 1, Lemma: "ake", Class: dict.Verb}, Score: 0.5},
		{Entry: dict.Entry{ID: 2, Lemma: "bok", Class: dict.Noun}, Score: 0.9},
		{Entry: dict.Entry{ID: 3, Lemma: "car", Class: dict.Noun}, Score: 0.5},
		{Entry: dict.Entry{ID: 4, Lemma: "dag", Class: dict.Noun}, Score: 0.7},
	}
}

func TestRankOrdersByScore(t *testing.T) {
	ranked := Rank(rankInput(), dict.Unknown, 0)

	wantIDs := []int64{2, 4, 1, 3}
	if len(ranked) != len(wantIDs) {
		t.Fatalf("got %d candidates, want %d", len(ranked), len(wantIDs))
	}
	for i, id := range wantIDs {
		if ranked[i].Entry.ID != id {
			t.Errorf("position %d: got entry %d, want %d", i, ranked[i].Entry.ID, id)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	// ake (ID 1) precedes car (ID 3) in the input; equal scores must
	// preserve that order
	ranked := Rank(rankInput(), dict.Unknown, 0)
	var tied []int64
	for _, c := range ranked {
		if c.Score == 0.5 {
			tied = append(tied, c.Entry.ID)
		}
	}
	if len(tied) != 2 || tied[0] != 1 || tied[1] != 3 {
		t.Errorf("tied candidates = %v, want [1 3]", tied)
	}
}

func TestRankWordClassFilter(t *testing.T) {
	ranked := Rank(rankInput(), dict.Noun, 0)
	if len(ranked) != 3 {
		t.Fatalf("got %d candidates, want 3 nouns", len(ranked))
	}
	for _, c := range ranked {
		if c.Entry.Class != dict.Noun {
			t.Errorf("entry %d has class %v, want noun", c.Entry.ID, c.Entry.Class)
		}
	}
}

func TestRankLimit(t *testing.T) {
	ranked := Rank(rankInput(), dict.Unknown, 2)
	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	if ranked[0].Entry.ID != 2 || ranked[1].Entry.ID != 4 {
		t.Errorf("top two = [%d %d], want [2 4]", ranked[0].Entry.ID, ranked[1].Entry.ID)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := rankInput()
	Rank(input, dict.Unknown, 0)
	if input[0].Entry.ID != 1 || input[3].Entry.ID != 4 {
		t.Error("Rank reordered its input slice")
	}
}

func TestRankDeterministic(t *testing.T) {
	a := Rank(rankInput(), dict.Unknown, 0)
	b := Rank(rankInput(), dict.Unknown, 0)
	for i := range a {
		if a[i].Entry.ID != b[i].Entry.ID {
			t.Fatalf("run 1 position %d = %d, run 2 = %d", i, a[i].Entry.ID, b[i].Entry.ID)
		}
	}
}
