// Package tui shows a live status bar while a replay is running. The
// replayed lines themselves are printed into the terminal scrollback
// above the bar, so they stay visible after the program exits.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nahir31/pester-replay/results"
)

// CaseMsg reports one rendered case so the status bar can keep live
// counts.
type CaseMsg struct {
	Outcome results.Outcome
}

// DoneMsg signals that the replay goroutine has finished.
type DoneMsg struct{}

// Model is the bubbletea model for the replay status bar.
type Model struct {
	passed       int
	failed       int
	skipped      int
	inconclusive int

	width     int
	startTime time.Time
	finished  bool
	spinner   spinner.Model

	passStyle    lipgloss.Style
	failStyle    lipgloss.Style
	skipStyle    lipgloss.Style
	neutralStyle lipgloss.Style
}

// NewModel creates a status bar model.
func NewModel() *Model {
	s := spinner.New()
	s.Spinner = spinner.Jump

	return &Model{
		width:        80,
		startTime:    time.Now(),
		spinner:      s,
		passStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		failStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		skipStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		neutralStyle: lipgloss.NewStyle(),
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CaseMsg:
		switch msg.Outcome {
		case results.Passed:
			m.passed++
		case results.Failed:
			m.failed++
		case results.Skipped:
			m.skipped++
		default:
			m.inconclusive++
		}

	case DoneMsg:
		m.finished = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.finished = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the status bar. Once the replay finishes the bar
// disappears; the replayed lines above it remain in the scrollback.
func (m *Model) View() string {
	if m.finished {
		return ""
	}

	prefix := m.passStyle.Render(m.spinner.View())
	if m.failed > 0 {
		prefix = m.failStyle.Render(m.spinner.View())
	}

	counts := fmt.Sprintf("%s  %s  %s  %s",
		m.passStyle.Render(fmt.Sprintf("[+] %d", m.passed)),
		m.failStyle.Render(fmt.Sprintf("[-] %d", m.failed)),
		m.skipStyle.Render(fmt.Sprintf("[!] %d", m.skipped)),
		m.neutralStyle.Render(fmt.Sprintf("[?] %d", m.inconclusive)))

	elapsed := formatElapsedTime(time.Since(m.startTime).Seconds())

	return fmt.Sprintf("%s Replaying  %s  %s", prefix, counts, elapsed)
}

// HasFailures returns true if any replayed case failed.
func (m *Model) HasFailures() bool {
	return m.failed > 0
}

// Total returns the number of cases counted so far.
func (m *Model) Total() int {
	return m.passed + m.failed + m.skipped + m.inconclusive
}

// formatElapsedTime formats wall time for the status bar.
// Format: X.Xs for <60s, X.Xm for >=60s.
func formatElapsedTime(seconds float64) string {
	if seconds < 0.05 {
		return "0.0s"
	}
	if seconds >= 60 {
		return fmt.Sprintf("%.1fm", seconds/60)
	}
	return fmt.Sprintf("%.1fs", seconds)
}
