// Package replay paces rendered output using the timings recorded in a
// result file, so a replay takes roughly as long as the original run.
package replay

import "time"

// Pacer converts recorded case durations into real pauses. The rate
// scales every pause: 0 disables pacing, 1.0 replays at the original
// speed, 0.5 replays at double speed.
type Pacer struct {
	rate  float64
	sleep func(time.Duration)
}

// NewPacer creates a pacer with the given rate. Rates are validated at
// the flag layer; a non-positive rate here simply never pauses.
func NewPacer(rate float64) *Pacer {
	return &Pacer{
		rate:  rate,
		sleep: time.Sleep,
	}
}

// Pause blocks for the rate-scaled equivalent of the recorded duration,
// given in seconds. Non-positive durations return immediately.
func (p *Pacer) Pause(seconds float64) {
	if p.rate <= 0 || seconds <= 0 {
		return
	}
	p.sleep(time.Duration(seconds * p.rate * float64(time.Second)))
}
