package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nahir31/pester-replay/results"
)

// Styles holds the lipgloss styles the renderer draws with. One style
// per outcome, plus the muted style for timings and the header style
// for titles and the summary heading.
type Styles struct {
	Pass         lipgloss.Style
	Fail         lipgloss.Style
	Skip         lipgloss.Style
	Inconclusive lipgloss.Style
	Muted        lipgloss.Style
	Header       lipgloss.Style
}

// ColorStyles returns the default color scheme.
func ColorStyles() Styles {
	return Styles{
		Pass:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Fail:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		Skip:         lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Inconclusive: lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
	}
}

// PlainStyles returns styles that pass text through unchanged, for
// -notty mode and redirected output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Pass:         plain,
		Fail:         plain,
		Skip:         plain,
		Inconclusive: plain,
		Muted:        plain,
		Header:       plain,
	}
}

// ForOutcome returns the style for a case with the given outcome.
func (s Styles) ForOutcome(o results.Outcome) lipgloss.Style {
	switch o {
	case results.Passed:
		return s.Pass
	case results.Failed:
		return s.Fail
	case results.Skipped:
		return s.Skip
	default:
		return s.Inconclusive
	}
}

// Marker returns the status marker shown in front of a case line.
func Marker(o results.Outcome) string {
	switch o {
	case results.Passed:
		return "[+]"
	case results.Failed:
		return "[-]"
	case results.Skipped:
		return "[!]"
	default:
		return "[?]"
	}
}
