package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nahir31/pester-replay/output"
	"github.com/nahir31/pester-replay/parser"
	"github.com/nahir31/pester-replay/replay"
	"github.com/nahir31/pester-replay/results"
	"github.com/nahir31/pester-replay/tui"
)

func main() {
	// Parse command-line flags
	infile := flag.String("f", "", "Read the result file at this path (same as the positional argument)")
	replayFlag := flag.Bool("replay", false, "Pace the output with the timings recorded in the result file")
	rate := flag.Float64("rate", 1.0, "Replay rate multiplier (0=instant, 1=original speed, 0.5=2x speed)")
	useTUI := flag.Bool("tui", false, "Show a live status bar while replaying")
	notty := flag.Bool("notty", false, "Don't use colors or the TUI, output plain text to stdout")
	flag.Parse()

	// Validate flag combinations
	if *rate < 0 {
		fmt.Fprintf(os.Stderr, "Error: -rate must be >= 0\n")
		os.Exit(1)
	}
	if *useTUI && *notty {
		fmt.Fprintf(os.Stderr, "Error: -tui cannot be combined with -notty\n")
		os.Exit(1)
	}
	if *infile != "" && flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: pass the result file either with -f or as an argument, not both\n")
		os.Exit(1)
	}
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: too many arguments\n")
		os.Exit(1)
	}

	pattern := *infile
	if pattern == "" {
		pattern = flag.Arg(0)
	}

	reports, err := loadReports(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	styles := output.PlainStyles()
	if !*notty && isatty.IsTerminal(os.Stdout.Fd()) {
		styles = output.ColorStyles()
	}

	var pacer *replay.Pacer
	if *replayFlag {
		pacer = replay.NewPacer(*rate)
	}

	tuiMode := *useTUI
	if tuiMode && !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintf(os.Stderr, "Warning: stdout is not a terminal, ignoring -tui\n")
		tuiMode = false
	}

	var exitCode int
	if tuiMode {
		exitCode = runTUI(reports, styles, pacer)
	} else {
		renderer := output.NewRenderer(os.Stdout, output.WithStyles(styles), output.WithPacer(pacer))
		for _, report := range reports {
			if renderer.RenderReport(report).HasFailures() {
				exitCode = 1
			}
		}
	}

	os.Exit(exitCode)
}

// loadReports parses every result file named by pattern, or stdin when
// no pattern is given and input is piped in. All files are parsed up
// front, so a bad file is reported before anything renders.
func loadReports(pattern string) ([]*parser.Report, error) {
	if pattern == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, fmt.Errorf("no result file given; pass a path or pipe a result file to stdin")
		}
		report, err := parser.Parse(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []*parser.Report{report}, nil
	}

	paths, err := resolvePaths(pattern)
	if err != nil {
		return nil, err
	}

	reports := make([]*parser.Report, 0, len(paths))
	for _, path := range paths {
		report, err := parser.Load(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// resolvePaths expands pattern into the result files to replay. An
// existing path, or any pattern without glob metacharacters, is taken
// literally; everything else goes through doublestar.
func resolvePaths(pattern string) ([]string, error) {
	if _, err := os.Stat(pattern); err == nil || !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad result file pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no result file matches %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// runTUI replays through a bubbletea program. Rendered lines go into
// the terminal scrollback via Println; the model shows live counters
// below them.
func runTUI(reports []*parser.Report, styles output.Styles, pacer *replay.Pacer) int {
	m := tui.NewModel()
	p := tea.NewProgram(m)

	go func() {
		lines := tui.NewLineWriter(func(line string) { p.Println(line) })
		renderer := output.NewRenderer(lines,
			output.WithStyles(styles),
			output.WithPacer(pacer),
			output.WithCaseHook(func(o results.Outcome) { p.Send(tui.CaseMsg{Outcome: o}) }))
		for _, report := range reports {
			renderer.RenderReport(report)
		}
		lines.Flush()
		p.Send(tui.DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	if model, ok := finalModel.(*tui.Model); ok && model.HasFailures() {
		return 1
	}
	return 0
}
