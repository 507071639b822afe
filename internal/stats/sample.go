package stats

import (
	"math"

	"github.com/dzherb/typedrill/internal/model"
)

// MaybeSample appends an instantaneous gross-WPM sample when the elapsed
// time has crossed into a new even second. At most one sample is recorded
// per two-second window; off-cadence updates return the list unchanged.
func MaybeSample(samples []model.WPMSample, elapsedSeconds float64, typedLen int) []model.WPMSample {
	second := int(math.Floor(elapsedSeconds))
	if second <= 0 || second%2 != 0 {
		return samples
	}
	if len(samples) > 0 && samples[len(samples)-1].Seconds == second {
		return samples
	}
	return append(samples, model.WPMSample{
		Seconds: second,
		WPM:     InstantWPM(typedLen, elapsedSeconds),
	})
}
