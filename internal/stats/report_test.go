package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dzherb/typedrill/internal/model"
)

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil, 80); err != nil {
		t.Fatalf("render history: %v", err)
	}
	if !strings.Contains(buf.String(), "No completed sessions.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestRenderHistoryTableAndSparkline(t *testing.T) {
	results := []model.SessionResult{
		{
			Stats: model.StatsSnapshot{
				NetWPM:          62,
				RawWPM:          70,
				AccuracyPercent: 96.55,
				TotalTypedChars: 140,
				Consistency:     84,
			},
			CompletedAt: time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC),
			Mode:        model.ModeFixedQuote,
			Difficulty:  model.DifficultyMedium,
			Samples:     []model.WPMSample{{Seconds: 2, WPM: 50}, {Seconds: 4, WPM: 70}},
		},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, results, 80); err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Session History", "09:30:15", "quote", "medium", "62", "96.55%", "84%", "WPM "} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"a", "bb"}
	rows := [][]string{{"xx", "1"}}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a   bb" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "xx   1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestSparklineShape(t *testing.T) {
	flat := []model.WPMSample{{Seconds: 2, WPM: 40}, {Seconds: 4, WPM: 40}}
	if got := Sparkline(flat, 0); got != "++" {
		t.Fatalf("expected flat sparkline %q, got %q", "++", got)
	}
	ramp := []model.WPMSample{{Seconds: 2, WPM: 0}, {Seconds: 4, WPM: 100}}
	if got := Sparkline(ramp, 0); got != " @" {
		t.Fatalf("expected ramp sparkline %q, got %q", " @", got)
	}
}

func TestSparklineTruncates(t *testing.T) {
	samples := make([]model.WPMSample, 10)
	for i := range samples {
		samples[i] = model.WPMSample{Seconds: (i + 1) * 2, WPM: 40 + i}
	}
	got := Sparkline(samples, 4)
	if len(got) != 4 {
		t.Fatalf("expected sparkline truncated to 4 chars, got %d (%q)", len(got), got)
	}
}
