// Package engine implements the typing session state machine.
package engine

import (
	"strings"
	"time"

	"github.com/dzherb/typedrill/internal/model"
	"github.com/dzherb/typedrill/internal/stats"
	"github.com/dzherb/typedrill/internal/texts"
)

// HistoryLimit caps the number of retained session results.
const HistoryLimit = 20

// Clock supplies the current time; injectable for tests.
type Clock func() time.Time

// Engine drives typing sessions and retains a bounded history of completed
// results, newest first. All methods run synchronously on the caller's
// goroutine; the UI shell owns keystroke capture and tick scheduling.
type Engine struct {
	clock      Clock
	selector   *texts.Selector
	history    []model.SessionResult
	generation uint64
}

// New constructs an engine. A nil clock uses time.Now and a nil selector
// uses a time-seeded one.
func New(clock Clock, selector *texts.Selector) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if selector == nil {
		selector = texts.New()
	}
	return &Engine{clock: clock, selector: selector}
}

// Start begins a session: selects the source text, resets the typed buffer
// and WPM samples, and records the start time. For a custom difficulty the
// config's SourceText is treated as the supplied custom text; otherwise it
// is replaced by a pool selection. Valid from Idle and Completed ("try
// again"); other phases are returned unchanged.
func (e *Engine) Start(cfg model.SessionConfig) (model.SessionConfig, model.SessionState) {
	cfg.SourceText = e.selector.Select(cfg.Difficulty, cfg.SourceText)
	e.generation++
	now := e.clock()
	return cfg, model.SessionState{
		Phase:      model.PhaseActive,
		StartedAt:  now,
		LastTick:   now,
		Generation: e.generation,
	}
}

// Pause freezes an active session. The tick stream for the old generation
// becomes stale immediately.
func (e *Engine) Pause(st model.SessionState) model.SessionState {
	if st.Phase != model.PhaseActive {
		return st
	}
	e.generation++
	st.Phase = model.PhasePaused
	return st
}

// Resume reactivates a paused session under a fresh generation. StartedAt
// is kept, so paused wall-clock time still counts toward elapsed time.
func (e *Engine) Resume(st model.SessionState) model.SessionState {
	if st.Phase != model.PhasePaused {
		return st
	}
	e.generation++
	st.Phase = model.PhaseActive
	st.Generation = e.generation
	return st
}

// Reset clears all session state back to Idle.
func (e *Engine) Reset(model.SessionState) model.SessionState {
	e.generation++
	return model.SessionState{Phase: model.PhaseIdle, Generation: e.generation}
}

// ApplyInput replaces the typed buffer with the full current input, records
// a WPM sample when due, recomputes statistics, and evaluates completion.
// On completion the final result is appended to the history and returned;
// otherwise the result is nil. Input outside the Active phase is ignored.
func (e *Engine) ApplyInput(st model.SessionState, cfg model.SessionConfig, fullInput string, now time.Time) (model.SessionState, model.StatsSnapshot, *model.SessionResult) {
	if st.Phase != model.PhaseActive {
		return st, stats.Compute(st.TypedText, cfg.SourceText, Elapsed(st, st.LastTick), st.Samples), nil
	}

	st.TypedText = fullInput
	st.LastTick = now
	elapsed := Elapsed(st, now)
	st.Samples = stats.MaybeSample(st.Samples, elapsed, len([]rune(fullInput)))
	snap := stats.Compute(st.TypedText, cfg.SourceText, elapsed, st.Samples)

	if !completed(st, cfg, elapsed) {
		return st, snap, nil
	}

	st.Phase = model.PhaseCompleted
	e.generation++
	result := model.SessionResult{
		Stats:       snap,
		CompletedAt: now,
		Mode:        cfg.Mode,
		Difficulty:  cfg.Difficulty,
		TextLength:  len([]rune(cfg.SourceText)),
		Samples:     append([]model.WPMSample(nil), st.Samples...),
	}
	e.history = append([]model.SessionResult{result}, e.history...)
	if len(e.history) > HistoryLimit {
		e.history = e.history[:HistoryLimit]
	}
	return st, snap, &result
}

// Tick re-evaluates the session with an unchanged buffer. Timed sessions
// complete here when the target duration elapses between keystrokes.
func (e *Engine) Tick(st model.SessionState, cfg model.SessionConfig, now time.Time) (model.SessionState, model.StatsSnapshot, *model.SessionResult) {
	return e.ApplyInput(st, cfg, st.TypedText, now)
}

// History returns the retained results, newest first.
func (e *Engine) History() []model.SessionResult {
	out := make([]model.SessionResult, len(e.history))
	copy(out, e.history)
	return out
}

// Generation identifies the current activation. Tick callbacks carrying an
// older generation must be dropped by the shell.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Elapsed reports wall-clock seconds since the session started. Paused time
// is not excluded, matching the visible timer behavior.
func Elapsed(st model.SessionState, now time.Time) float64 {
	if st.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(st.StartedAt).Seconds()
}

func completed(st model.SessionState, cfg model.SessionConfig, elapsedSeconds float64) bool {
	switch cfg.Mode {
	case model.ModeFixedQuote:
		return len([]rune(st.TypedText)) == len([]rune(cfg.SourceText))
	case model.ModeTimed:
		return elapsedSeconds >= float64(cfg.TargetSeconds)
	case model.ModeWordCount:
		// Literal split on a single space: consecutive spaces yield empty
		// tokens that still count.
		return len(strings.Split(st.TypedText, " ")) >= cfg.TargetWordCount
	default:
		return false
	}
}
