// Package stats contains typing statistics calculations and reporting.
package stats

import (
	"math"

	"github.com/dzherb/typedrill/internal/model"
)

// charsPerWord is the canonical five-characters-per-word convention.
const charsPerWord = 5.0

// Compute derives a snapshot from the typed buffer, the target text, the
// elapsed time, and the WPM samples collected so far. Degenerate inputs
// (zero elapsed time, empty buffer) yield zeros rather than NaN.
func Compute(typedText, sourceText string, elapsedSeconds float64, samples []model.WPMSample) model.StatsSnapshot {
	typed := []rune(typedText)
	source := []rune(sourceText)

	correct := 0
	for i, r := range typed {
		if i < len(source) && r == source[i] {
			correct++
		}
	}
	total := len(typed)
	incorrect := total - correct

	accuracy := 0.0
	if total > 0 {
		accuracy = round2(float64(correct) / float64(total) * 100)
	}

	rawWPM := 0
	errorsPerMinute := 0.0
	if elapsedSeconds > 0 {
		minutes := elapsedSeconds / 60
		rawWPM = int(math.Round(float64(total) / charsPerWord / minutes))
		errorsPerMinute = float64(incorrect) / minutes
	}
	netWPM := int(math.Round(float64(rawWPM) - errorsPerMinute))
	if netWPM < 0 {
		netWPM = 0
	}

	return model.StatsSnapshot{
		NetWPM:          netWPM,
		RawWPM:          rawWPM,
		AccuracyPercent: accuracy,
		CorrectChars:    correct,
		IncorrectChars:  incorrect,
		TotalTypedChars: total,
		ElapsedSeconds:  elapsedSeconds,
		Consistency:     Consistency(samples),
	}
}

// Consistency scores the variability of the sampled WPM values: 100 minus
// twice the population standard deviation, clamped to [0, 100]. Fewer than
// two samples score a full 100.
func Consistency(samples []model.WPMSample) int {
	if len(samples) < 2 {
		return 100
	}
	mean := 0.0
	for _, s := range samples {
		mean += float64(s.WPM)
	}
	mean /= float64(len(samples))

	variance := 0.0
	for _, s := range samples {
		d := float64(s.WPM) - mean
		variance += d * d
	}
	variance /= float64(len(samples))

	score := math.Round(100 - 2*math.Sqrt(variance))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

// InstantWPM is the gross WPM for a buffer length at a point in time.
func InstantWPM(typedLen int, elapsedSeconds float64) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	return int(math.Round(float64(typedLen) / charsPerWord / (elapsedSeconds / 60)))
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
