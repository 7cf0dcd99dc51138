package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/slipway-ci/slipway/pipeline"
)

// IsTTY reports whether stdout is an interactive terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderRunSummary renders the styled stage-by-stage summary of a finished
// run. Use RenderPlainSummary when stdout is not a terminal.
func RenderRunSummary(run *pipeline.Run, styles *StyleSet) string {
	var b strings.Builder
	b.WriteString("\n")

	for _, o := range run.Outcomes {
		line := fmt.Sprintf("  %s %s %s",
			outcomeMark(styles, o),
			styles.PrimaryTxt.Render(fmt.Sprintf("%-20s", o.Stage)),
			styles.DimTxt.Render(formatDuration(o.Duration)),
		)
		if o.Reason != "" {
			line += "  " + styles.SecondaryTxt.Render(o.Reason)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n  " + styles.BorderedBox.Render(summaryBox(run, styles)) + "\n")
	return b.String()
}

func summaryBox(run *pipeline.Run, styles *StyleSet) string {
	status := run.FinalStatus()
	statusStyle := styles.SuccessTxt
	if status == pipeline.StatusFailure {
		statusStyle = styles.ErrorTxt
	}

	rows := [][2]string{
		{"Status", string(status)},
		{"Project", run.Project},
		{"Version", run.Params.ReleaseVersion},
		{"Environment", string(run.Params.Environment)},
	}
	if run.Image != nil {
		rows = append(rows, [2]string{"Image", run.Image.Ref})
	}
	if run.ReportURL != "" {
		rows = append(rows, [2]string{"Report", run.ReportURL})
	}
	rows = append(rows, [2]string{"Elapsed", formatDuration(run.Elapsed())})

	var content strings.Builder
	for i, row := range rows {
		value := styles.SummaryValue.Render(row[1])
		if row[0] == "Status" {
			value = statusStyle.Bold(true).Render(row[1])
		}
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(styles.SummaryKey.Render(row[0]) + "  " + value)
	}
	return content.String()
}

// RenderPlainSummary renders the run summary without styling, for logs and
// piped output.
func RenderPlainSummary(run *pipeline.Run) string {
	var b strings.Builder

	for _, o := range run.Outcomes {
		fmt.Fprintf(&b, "%-20s %-13s %s", o.Stage, string(o.Result), formatDuration(o.Duration))
		if o.Reason != "" {
			fmt.Fprintf(&b, "  %s", o.Reason)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "status: %s\n", run.FinalStatus())
	if run.Image != nil {
		fmt.Fprintf(&b, "image: %s\n", run.Image.Ref)
	}
	if run.ReportURL != "" {
		fmt.Fprintf(&b, "report: %s\n", run.ReportURL)
	}
	return b.String()
}

func outcomeMark(styles *StyleSet, o pipeline.StageOutcome) string {
	switch o.Result {
	case pipeline.StageSuccess:
		return styles.SuccessTxt.Render("✓")
	case pipeline.StageSoftFailure:
		return styles.WarningTxt.Render("!")
	default:
		return styles.ErrorTxt.Render("✗")
	}
}

// formatDuration trims sub-display noise from durations.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(time.Second / 10).String()
	default:
		return d.Round(time.Second).String()
	}
}
