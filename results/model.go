// Package results classifies recorded case outcomes and accumulates
// them into the counts reported at the end of a replay.
package results

// Outcome is the classification of a single recorded case.
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Skipped
	Inconclusive
)

// Classify maps the result string recorded for a case to its outcome.
// Unknown strings classify as Inconclusive rather than failing; result
// files from newer framework versions may carry values this tool has
// never seen.
func Classify(result string) Outcome {
	switch result {
	case "Success":
		return Passed
	case "Failure":
		return Failed
	case "Ignored":
		return Skipped
	default:
		return Inconclusive
	}
}

// Tally accumulates outcome counts over one replayed report. Pending
// exists for summary symmetry with the original framework's output and
// stays zero; recorded files only ever hold executed cases.
type Tally struct {
	Passed       int
	Failed       int
	Skipped      int
	Pending      int
	Inconclusive int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{}
}

// Record counts one case outcome.
func (t *Tally) Record(o Outcome) {
	switch o {
	case Passed:
		t.Passed++
	case Failed:
		t.Failed++
	case Skipped:
		t.Skipped++
	default:
		t.Inconclusive++
	}
}

// Total returns the number of cases recorded.
func (t *Tally) Total() int {
	return t.Passed + t.Failed + t.Skipped + t.Pending + t.Inconclusive
}

// HasFailures reports whether any recorded case failed.
func (t *Tally) HasFailures() bool {
	return t.Failed > 0
}
