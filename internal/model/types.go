// Package model defines shared data structures.
package model

import "time"

// Mode selects how a session completes.
type Mode string

// Session modes.
const (
	ModeFixedQuote Mode = "quote"
	ModeTimed      Mode = "timed"
	ModeWordCount  Mode = "words"
)

// Difficulty selects a practice-text pool.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyCustom Difficulty = "custom"
)

// Phase is the lifecycle state of a session.
type Phase int

// Session phases.
const (
	PhaseIdle Phase = iota
	PhaseActive
	PhasePaused
	PhaseCompleted
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// SessionConfig is the immutable per-session configuration.
type SessionConfig struct {
	Mode            Mode
	Difficulty      Difficulty
	TargetSeconds   int    // used iff Mode == ModeTimed
	TargetWordCount int    // used iff Mode == ModeWordCount
	SourceText      string // selected or supplied before the session starts
}

// WPMSample is one periodic gross-WPM observation.
type WPMSample struct {
	Seconds int // floor of elapsed seconds at sample time
	WPM     int
}

// SessionState is the mutable session state, written only by the engine.
type SessionState struct {
	Phase      Phase
	StartedAt  time.Time
	LastTick   time.Time
	TypedText  string
	Samples    []WPMSample
	Generation uint64 // session generation; stale ticks compare against it
}

// StatsSnapshot holds statistics derived from a session state. It is
// recomputed on every update and never stored independently.
type StatsSnapshot struct {
	NetWPM          int
	RawWPM          int
	AccuracyPercent float64
	CorrectChars    int
	IncorrectChars  int
	TotalTypedChars int
	ElapsedSeconds  float64
	Consistency     int
}

// SessionResult is the immutable record of a completed session. Samples is
// a frozen copy of the session's WPM series for result rendering.
type SessionResult struct {
	Stats       StatsSnapshot
	CompletedAt time.Time
	Mode        Mode
	Difficulty  Difficulty
	TextLength  int
	Samples     []WPMSample
}
