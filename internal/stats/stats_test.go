package stats

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dzherb/typedrill/internal/model"
)

func TestComputeCharacterScoring(t *testing.T) {
	snap := Compute("abx", "abc", 60, nil)
	if snap.CorrectChars != 2 {
		t.Fatalf("expected 2 correct chars, got %d", snap.CorrectChars)
	}
	if snap.IncorrectChars != 1 {
		t.Fatalf("expected 1 incorrect char, got %d", snap.IncorrectChars)
	}
	if snap.AccuracyPercent != 66.67 {
		t.Fatalf("expected accuracy 66.67, got %v", snap.AccuracyPercent)
	}
}

func TestComputeWordConvention(t *testing.T) {
	typed := strings.Repeat("a", 25)
	snap := Compute(typed, typed, 30, nil)
	if snap.RawWPM != 10 {
		t.Fatalf("expected raw 10 WPM for 25 chars in 30s, got %d", snap.RawWPM)
	}
	if snap.NetWPM != 10 {
		t.Fatalf("expected net 10 WPM with no errors, got %d", snap.NetWPM)
	}
}

func TestComputeCharCountInvariant(t *testing.T) {
	cases := []struct{ typed, source string }{
		{"", ""},
		{"abc", "abc"},
		{"abx", "abc"},
		{"abcdef", "abc"},
		{"a", "entire sentence"},
	}
	for _, tc := range cases {
		snap := Compute(tc.typed, tc.source, 10, nil)
		if snap.CorrectChars+snap.IncorrectChars != snap.TotalTypedChars {
			t.Fatalf("invariant broken for typed %q source %q: %d + %d != %d",
				tc.typed, tc.source, snap.CorrectChars, snap.IncorrectChars, snap.TotalTypedChars)
		}
		if snap.AccuracyPercent < 0 || snap.AccuracyPercent > 100 {
			t.Fatalf("accuracy out of range for typed %q: %v", tc.typed, snap.AccuracyPercent)
		}
	}
}

func TestComputeTypedPastEndCountsIncorrect(t *testing.T) {
	snap := Compute("abcd", "ab", 10, nil)
	if snap.CorrectChars != 2 || snap.IncorrectChars != 2 {
		t.Fatalf("expected 2 correct / 2 incorrect, got %d / %d", snap.CorrectChars, snap.IncorrectChars)
	}
}

func TestComputeEmptyInput(t *testing.T) {
	snap := Compute("", "target", 10, nil)
	if snap.AccuracyPercent != 0 {
		t.Fatalf("expected accuracy 0 for empty input, got %v", snap.AccuracyPercent)
	}
	if snap.RawWPM != 0 || snap.NetWPM != 0 {
		t.Fatalf("expected zero WPM for empty input, got raw %d net %d", snap.RawWPM, snap.NetWPM)
	}
}

func TestComputeZeroElapsed(t *testing.T) {
	snap := Compute("abc", "abc", 0, nil)
	if snap.RawWPM != 0 || snap.NetWPM != 0 {
		t.Fatalf("expected zero WPM at zero elapsed, got raw %d net %d", snap.RawWPM, snap.NetWPM)
	}
	if snap.AccuracyPercent != 100 {
		t.Fatalf("expected accuracy 100 for exact match, got %v", snap.AccuracyPercent)
	}
}

func TestComputeNetFloorsAtZero(t *testing.T) {
	// Every char wrong in a short burst: the error penalty exceeds raw WPM.
	snap := Compute("zzzzz", "abcde", 5, nil)
	if snap.NetWPM != 0 {
		t.Fatalf("expected net WPM floored at 0, got %d", snap.NetWPM)
	}
}

func TestComputeIdempotent(t *testing.T) {
	samples := []model.WPMSample{{Seconds: 2, WPM: 40}, {Seconds: 4, WPM: 44}}
	first := Compute("abx", "abc", 12.5, samples)
	second := Compute("abx", "abc", 12.5, samples)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical snapshots, got %+v vs %+v", first, second)
	}
}

func TestConsistencyFewSamples(t *testing.T) {
	if got := Consistency(nil); got != 100 {
		t.Fatalf("expected 100 with no samples, got %d", got)
	}
	if got := Consistency([]model.WPMSample{{Seconds: 2, WPM: 50}}); got != 100 {
		t.Fatalf("expected 100 with one sample, got %d", got)
	}
}

func TestConsistencyUniformSamples(t *testing.T) {
	samples := []model.WPMSample{{Seconds: 2, WPM: 60}, {Seconds: 4, WPM: 60}, {Seconds: 6, WPM: 60}}
	if got := Consistency(samples); got != 100 {
		t.Fatalf("expected 100 for uniform samples, got %d", got)
	}
}

func TestConsistencySpread(t *testing.T) {
	// Mean 20, population stddev 10: score 100 - 20 = 80.
	samples := []model.WPMSample{{Seconds: 2, WPM: 10}, {Seconds: 4, WPM: 30}}
	if got := Consistency(samples); got != 80 {
		t.Fatalf("expected 80, got %d", got)
	}
}

func TestConsistencyClampsToZero(t *testing.T) {
	samples := []model.WPMSample{{Seconds: 2, WPM: 0}, {Seconds: 4, WPM: 200}}
	if got := Consistency(samples); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}
