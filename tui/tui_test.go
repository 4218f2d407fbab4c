package tui

import (
	"strings"
	"testing"
	"time"

	teatest "github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahir31/pester-replay/results"
)

// TestStatusBarWithTeatest drives the status bar through a real
// bubbletea program: cases arrive, the counters update, and DoneMsg
// shuts the program down.
func TestStatusBarWithTeatest(t *testing.T) {
	m := NewModel()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Send(CaseMsg{Outcome: results.Passed})
	tm.Send(CaseMsg{Outcome: results.Failed})

	teatest.WaitFor(
		t,
		tm.Output(),
		func(bts []byte) bool {
			output := string(bts)
			return strings.Contains(output, "[+] 1") && strings.Contains(output, "[-] 1")
		},
		teatest.WithDuration(3*time.Second),
		teatest.WithCheckInterval(50*time.Millisecond),
	)

	tm.Send(DoneMsg{})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok)
	assert.True(t, final.HasFailures())
	assert.Equal(t, 2, final.Total())
}
