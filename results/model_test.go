package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		result string
		want   Outcome
	}{
		{"Success", Passed},
		{"Failure", Failed},
		{"Ignored", Skipped},
		{"Inconclusive", Inconclusive},
		{"NotRunnable", Inconclusive},
		{"", Inconclusive},
		{"success", Inconclusive}, // case-sensitive on purpose
	}

	for _, tt := range tests {
		t.Run(tt.result, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.result))
		})
	}
}

func TestTally_Record(t *testing.T) {
	tally := NewTally()
	tally.Record(Passed)
	tally.Record(Passed)
	tally.Record(Failed)
	tally.Record(Skipped)
	tally.Record(Inconclusive)

	assert.Equal(t, 2, tally.Passed)
	assert.Equal(t, 1, tally.Failed)
	assert.Equal(t, 1, tally.Skipped)
	assert.Equal(t, 0, tally.Pending)
	assert.Equal(t, 1, tally.Inconclusive)
	assert.Equal(t, 5, tally.Total())
}

func TestTally_HasFailures(t *testing.T) {
	tally := NewTally()
	assert.False(t, tally.HasFailures())

	tally.Record(Passed)
	assert.False(t, tally.HasFailures())

	tally.Record(Failed)
	assert.True(t, tally.HasFailures())
}
