package texts

import "github.com/dzherb/typedrill/internal/model"

// Sample pools keyed by difficulty. Easy favors short common words, medium
// mixes everyday prose, hard adds punctuation-heavy and technical sentences.
var pools = map[model.Difficulty][]string{
	model.DifficultyEasy: {
		"the cat sat on the mat and the dog lay by the door",
		"we can see the sun rise over the hill every day",
		"she put the red book on the top of the old desk",
		"he ran down the road to get the last bus home",
	},
	model.DifficultyMedium: {
		"The quick brown fox jumps over the lazy dog while the farmer watches from the gate.",
		"Practice does not make perfect, but it makes permanent, so practice the right habits.",
		"A steady rhythm matters more than raw speed when you are learning to type well.",
		"Every morning the baker carried fresh bread across the square before the town woke up.",
	},
	model.DifficultyHard: {
		"Amazingly few discotheques provide jukeboxes; quirky DJs vex them with waltzing zombies!",
		"The API returned HTTP 503 (Service Unavailable); retrying with exponential back-off: 2s, 4s, 8s...",
		"\"Brevity,\" she quipped, \"is the soul of wit\" -- yet her memos ran to twelve pages, footnotes included.",
		"Xylophones, quartz clocks & fjord-view kayaks: the auction's inventory baffled every appraiser present.",
	},
}

// Pool returns the sample texts for a difficulty. Unrecognized difficulties
// (including custom, which has no pool) fall back to the medium pool.
func Pool(difficulty model.Difficulty) []string {
	if pool, ok := pools[difficulty]; ok {
		return pool
	}
	return pools[model.DifficultyMedium]
}
