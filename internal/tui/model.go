// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dzherb/typedrill/internal/engine"
	"github.com/dzherb/typedrill/internal/model"
)

// tickInterval is the cadence of session re-evaluation while typing is active.
const tickInterval = 100 * time.Millisecond

// tickMsg carries the engine generation it was scheduled under; ticks from
// an ended or paused activation are dropped.
type tickMsg struct {
	generation uint64
	at         time.Time
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Copy().Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// Model implements the Bubble Tea typing UI around the session engine.
type Model struct {
	eng  *engine.Engine
	base model.SessionConfig // configured template; SourceText holds custom text
	cfg  model.SessionConfig // active session config with the selected text

	state      model.SessionState
	snap       model.StatsSnapshot
	lastResult *model.SessionResult

	input []rune

	width  int
	height int
}

// NewModel constructs a typing TUI model in the Idle phase.
func NewModel(eng *engine.Engine, cfg model.SessionConfig) *Model {
	return &Model{
		eng:   eng,
		base:  cfg,
		cfg:   cfg,
		state: model.SessionState{Phase: model.PhaseIdle},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		case tea.KeyEsc:
			return m.handlePauseToggle()
		case tea.KeyCtrlR:
			m.resetSession()
			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			m.handleBackspace()
			return m, nil
		case tea.KeySpace:
			m.handleRunes([]rune{' '})
			return m, nil
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.eng.Generation() || m.state.Phase != model.PhaseActive {
		return m, nil
	}
	var result *model.SessionResult
	m.state, m.snap, result = m.eng.Tick(m.state, m.cfg, msg.at)
	if result != nil {
		m.lastResult = result
		return m, nil
	}
	return m, m.scheduleTick()
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.state.Phase {
	case model.PhaseIdle, model.PhaseCompleted:
		return m, m.startSession()
	case model.PhasePaused:
		return m.handlePauseToggle()
	default:
		return m, nil
	}
}

func (m *Model) handlePauseToggle() (tea.Model, tea.Cmd) {
	switch m.state.Phase {
	case model.PhaseActive:
		m.state = m.eng.Pause(m.state)
		return m, nil
	case model.PhasePaused:
		m.state = m.eng.Resume(m.state)
		return m, m.scheduleTick()
	default:
		return m, nil
	}
}

func (m *Model) startSession() tea.Cmd {
	m.cfg, m.state = m.eng.Start(m.base)
	m.input = nil
	m.snap = model.StatsSnapshot{Consistency: 100}
	m.lastResult = nil
	return m.scheduleTick()
}

func (m *Model) resetSession() {
	m.state = m.eng.Reset(m.state)
	m.cfg = m.base
	m.input = nil
	m.snap = model.StatsSnapshot{}
	m.lastResult = nil
}

func (m *Model) scheduleTick() tea.Cmd {
	generation := m.eng.Generation()
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

func (m *Model) handleBackspace() {
	if m.state.Phase != model.PhaseActive || len(m.input) == 0 {
		return
	}
	m.input = m.input[:len(m.input)-1]
	m.applyBuffer()
}

func (m *Model) handleRunes(runes []rune) {
	if m.state.Phase != model.PhaseActive {
		return
	}
	m.input = append(m.input, runes...)
	m.applyBuffer()
}

func (m *Model) applyBuffer() {
	var result *model.SessionResult
	m.state, m.snap, result = m.eng.ApplyInput(m.state, m.cfg, string(m.input), time.Now())
	if result != nil {
		m.lastResult = result
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.state.Phase {
	case model.PhaseIdle:
		content = m.renderIdle()
	case model.PhaseCompleted:
		content = m.renderCompleted()
	default:
		content = m.renderTyping()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderIdle() string {
	lines := []string{
		titleStyle.Render("typedrill"),
		"",
		footerStyle.Render(m.describeSession()),
		"",
		pendingStyle.Render("press enter to start · ctrl+c to quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTyping() string {
	targetRunes := []rune(m.cfg.SourceText)
	cursorIndex := -1
	if len(m.input) < len(targetRunes) {
		cursorIndex = len(m.input)
	}
	styledRunes := buildStyledRunes(targetRunes, m.input, cursorIndex)
	if m.width == 0 {
		return renderStyledRunes(styledRunes)
	}

	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.state.Phase == model.PhasePaused {
		notice := noticeStyle.Render("paused — enter or esc to resume")
		content = lipgloss.JoinVertical(lipgloss.Center, notice, "", content)
	}
	return content
}

func (m *Model) describeSession() string {
	switch m.base.Mode {
	case model.ModeTimed:
		return fmt.Sprintf("timed · %ds · %s", m.base.TargetSeconds, m.base.Difficulty)
	case model.ModeWordCount:
		return fmt.Sprintf("words · %d · %s", m.base.TargetWordCount, m.base.Difficulty)
	default:
		return fmt.Sprintf("quote · %s", m.base.Difficulty)
	}
}

func (m *Model) renderFooter() string {
	switch m.state.Phase {
	case model.PhaseIdle:
		return footerStyle.Render(m.describeSession())
	case model.PhaseCompleted:
		return footerStyle.Render("enter try again · ctrl+r reset · ctrl+c quit")
	}
	segments := []string{
		fmt.Sprintf("%d wpm", m.snap.NetWPM),
		fmt.Sprintf("acc %.2f%%", m.snap.AccuracyPercent),
		fmt.Sprintf("con %d%%", m.snap.Consistency),
		fmt.Sprintf("%.1fs", m.snap.ElapsedSeconds),
		m.renderProgress(),
	}
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

func (m *Model) renderProgress() string {
	switch m.cfg.Mode {
	case model.ModeTimed:
		remaining := float64(m.cfg.TargetSeconds) - m.snap.ElapsedSeconds
		if remaining < 0 {
			remaining = 0
		}
		return fmt.Sprintf("%.0fs left", remaining)
	case model.ModeWordCount:
		words := 0
		if len(m.input) > 0 {
			words = len(strings.Split(string(m.input), " "))
		}
		return fmt.Sprintf("%d/%d words", words, m.cfg.TargetWordCount)
	default:
		target := len([]rune(m.cfg.SourceText))
		progress := 0
		if target > 0 {
			progress = len(m.input) * 100 / target
		}
		return fmt.Sprintf("%d%%", progress)
	}
}
