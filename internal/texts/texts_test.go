package texts

import (
	"math/rand"
	"testing"

	"github.com/dzherb/typedrill/internal/model"
)

func poolContains(pool []string, text string) bool {
	for _, entry := range pool {
		if entry == text {
			return true
		}
	}
	return false
}

func TestSelectReturnsPoolMember(t *testing.T) {
	s := NewWithRand(rand.New(rand.NewSource(1)))
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		for i := 0; i < 10; i++ {
			text := s.Select(d, "")
			if !poolContains(Pool(d), text) {
				t.Fatalf("selected text not in %s pool: %q", d, text)
			}
		}
	}
}

func TestSelectCustomTextTrims(t *testing.T) {
	s := NewWithRand(rand.New(rand.NewSource(1)))
	got := s.Select(model.DifficultyCustom, "  hello world  \n")
	if got != "hello world" {
		t.Fatalf("expected trimmed custom text, got %q", got)
	}
}

func TestSelectBlankCustomFallsBack(t *testing.T) {
	s := NewWithRand(rand.New(rand.NewSource(1)))
	got := s.Select(model.DifficultyCustom, "   ")
	if !poolContains(Pool(model.DifficultyMedium), got) {
		t.Fatalf("expected medium-pool fallback, got %q", got)
	}
}

func TestSelectUnknownDifficultyFallsBack(t *testing.T) {
	s := NewWithRand(rand.New(rand.NewSource(1)))
	got := s.Select(model.Difficulty("nightmare"), "")
	if !poolContains(Pool(model.DifficultyMedium), got) {
		t.Fatalf("expected medium-pool fallback, got %q", got)
	}
}

func TestSelectDeterministicWithSeed(t *testing.T) {
	first := NewWithRand(rand.New(rand.NewSource(42)))
	second := NewWithRand(rand.New(rand.NewSource(42)))
	for i := 0; i < 5; i++ {
		a := first.Select(model.DifficultyHard, "")
		b := second.Select(model.DifficultyHard, "")
		if a != b {
			t.Fatalf("expected deterministic selection with equal seeds: %q vs %q", a, b)
		}
	}
}
