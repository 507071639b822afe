package stats

import (
	"math"
	"strings"

	"github.com/dzherb/typedrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline of the sampled WPM values,
// truncated to the most recent maxWidth samples when the series is longer.
func Sparkline(samples []model.WPMSample, maxWidth int) string {
	if len(samples) == 0 {
		return ""
	}
	if maxWidth > 0 && len(samples) > maxWidth {
		samples = samples[len(samples)-maxWidth:]
	}
	minVal := samples[0].WPM
	maxVal := samples[0].WPM
	for _, s := range samples[1:] {
		if s.WPM < minVal {
			minVal = s.WPM
		}
		if s.WPM > maxVal {
			maxVal = s.WPM
		}
	}
	if minVal == maxVal {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(samples))
	}
	var b strings.Builder
	for _, s := range samples {
		pos := float64(s.WPM-minVal) / float64(maxVal-minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
