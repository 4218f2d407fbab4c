// Package format renders recorded timing values for display.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// Duration formats a recorded elapsed time, given in seconds, for
// display next to a case or at the end of a run.
//
// Times under one second render as whole milliseconds ("500ms").
// Everything else renders as seconds rounded to two decimal places,
// with trailing zeros dropped ("2s", "1.5s", "1.37s").
//
// With fullWords set, the seconds form spells the unit out instead:
// " second" when the rounded value is at most one, " seconds" above
// that. The plural test runs against the rounded value, so 1.004
// rounds to 1 and stays singular.
//
// Parameters:
//   - seconds: Elapsed time in seconds
//   - fullWords: Spell out the unit in the seconds form
//
// Returns:
//   - Formatted duration string
func Duration(seconds float64, fullWords bool) string {
	if seconds < 1 {
		return fmt.Sprintf("%dms", int(seconds*1000))
	}

	rounded := math.Round(seconds*100) / 100
	value := strconv.FormatFloat(rounded, 'f', -1, 64)

	if !fullWords {
		return value + "s"
	}
	if rounded > 1 {
		return value + " seconds"
	}
	return value + " second"
}
