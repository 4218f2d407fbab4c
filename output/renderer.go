// Package output re-renders a parsed report as console output, in the
// shape the original test run printed to its own console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nahir31/pester-replay/output/format"
	"github.com/nahir31/pester-replay/parser"
	"github.com/nahir31/pester-replay/replay"
	"github.com/nahir31/pester-replay/results"
)

// dividerWidth is the length of the closing separator line.
const dividerWidth = 80

// Renderer replays a parsed report as styled console output: a title,
// the suite tree with one line per case, and a closing summary block.
type Renderer struct {
	writer io.Writer
	styles Styles
	pacer  *replay.Pacer
	onCase func(results.Outcome)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyles sets the styles the renderer draws with.
func WithStyles(s Styles) Option {
	return func(r *Renderer) { r.styles = s }
}

// WithPacer makes the renderer pause before each case line for the
// case's recorded duration, scaled by the pacer's rate.
func WithPacer(p *replay.Pacer) Option {
	return func(r *Renderer) { r.pacer = p }
}

// WithCaseHook registers fn to be called once per rendered case, after
// any pacing pause and before the case line is written.
func WithCaseHook(fn func(results.Outcome)) Option {
	return func(r *Renderer) { r.onCase = fn }
}

// NewRenderer creates a renderer writing to w. Colors are on unless
// overridden with WithStyles.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		writer: w,
		styles: ColorStyles(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderReport replays one report and returns the outcome tally for it.
// Each call starts from a fresh tally.
func (r *Renderer) RenderReport(report *parser.Report) *results.Tally {
	tally := results.NewTally()
	top := report.TopSuite()

	fmt.Fprintln(r.writer, r.styles.Header.Render(fmt.Sprintf("Executing script %s (REPLAY)", top.Name)))
	fmt.Fprintln(r.writer)

	for i := range top.Suites {
		r.renderSuite(&top.Suites[i], false, tally)
	}

	r.renderSummary(report, top, tally)
	return tally
}

// renderSuite renders one suite: its header, then either its nested
// suites or its cases. A suite holding nested suites gets a blank line
// after the header and another after the last nested suite.
func (r *Renderer) renderSuite(suite *parser.Suite, nested bool, tally *results.Tally) {
	header := "Context " + suite.Name
	if nested {
		header = "  Describing " + suite.Name
	}
	fmt.Fprintln(r.writer, r.styles.Pass.Render(header))

	if len(suite.Suites) > 0 {
		fmt.Fprintln(r.writer)
		for i := range suite.Suites {
			r.renderSuite(&suite.Suites[i], true, tally)
		}
		fmt.Fprintln(r.writer)
		return
	}

	r.renderCases(suite.Cases, tally)
}

// renderCases renders a leaf suite's cases as one batch; the batch owns
// the trailing blank line.
func (r *Renderer) renderCases(cases []parser.Case, tally *results.Tally) {
	for i := range cases {
		r.renderCase(&cases[i], tally)
	}
	fmt.Fprintln(r.writer)
}

func (r *Renderer) renderCase(c *parser.Case, tally *results.Tally) {
	outcome := results.Classify(c.Result)

	if r.pacer != nil {
		r.pacer.Pause(c.Time)
	}
	tally.Record(outcome)
	if r.onCase != nil {
		r.onCase(outcome)
	}

	style := r.styles.ForOutcome(outcome)
	fmt.Fprintln(r.writer,
		style.Render(fmt.Sprintf("    %s %s ", Marker(outcome), c.Description))+
			r.styles.Muted.Render(format.Duration(c.Time, false)))

	if outcome == results.Failed {
		r.renderFailure(c, style)
	}
}

// renderFailure writes the recorded failure message under the case
// line, one indented line per message line. Cases without a recorded
// message render nothing extra.
func (r *Renderer) renderFailure(c *parser.Case, style lipgloss.Style) {
	if c.Failure == nil || c.Failure.Message == "" {
		return
	}
	for _, line := range strings.Split(c.Failure.Message, "\n") {
		fmt.Fprintln(r.writer, style.Render("    "+line))
	}
}

// renderSummary writes the closing block: the original run timestamp,
// the outcome counts, the total elapsed time, and a divider.
func (r *Renderer) renderSummary(report *parser.Report, top *parser.Suite, tally *results.Tally) {
	fmt.Fprintln(r.writer, r.styles.Muted.Render(fmt.Sprintf("Test Original Time: %s %s", report.Date, report.Time)))
	fmt.Fprintln(r.writer, r.styles.Header.Render("Summary:"))

	counts := []string{
		r.styles.Pass.Render(fmt.Sprintf("Passed: %d", tally.Passed)),
		r.styles.Fail.Render(fmt.Sprintf("Failed: %d", tally.Failed)),
		r.styles.Skip.Render(fmt.Sprintf("Skipped: %d", tally.Skipped)),
		r.styles.Inconclusive.Render(fmt.Sprintf("Pending: %d, Inconclusive: %d", tally.Pending, tally.Inconclusive)),
	}
	fmt.Fprintln(r.writer, strings.Join(counts, ", "))

	fmt.Fprintf(r.writer, "Tests completed in %s\n", format.Duration(top.Time, true))
	fmt.Fprintln(r.writer, strings.Repeat("-", dividerWidth))
}
