// Package texts selects practice text for a session.
package texts

import (
	"math/rand"
	"strings"
	"time"

	"github.com/dzherb/typedrill/internal/model"
)

// Selector picks practice texts from the difficulty pools.
type Selector struct {
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time.
func New() *Selector {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Selector using the provided entropy source, so
// callers can make selection deterministic.
func NewWithRand(rnd *rand.Rand) *Selector {
	return &Selector{rnd: rnd}
}

// Select returns the practice text for a difficulty. A custom difficulty
// with non-blank custom text returns that text trimmed; otherwise one entry
// of the difficulty's pool is picked uniformly at random, falling back to
// the medium pool for unknown difficulties and blank custom text.
func (s *Selector) Select(difficulty model.Difficulty, customText string) string {
	if difficulty == model.DifficultyCustom {
		if trimmed := strings.TrimSpace(customText); trimmed != "" {
			return trimmed
		}
	}
	pool := Pool(difficulty)
	return pool[s.rnd.Intn(len(pool))]
}
