// Package report renders triage findings for the user: a styled table on
// stdout or line-oriented structured records appended to a log file.
package report

import (
	"fmt"
	"io"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/zerr"
)

var tableHeaders = []string{"Target", "Failure", "Walltime", "Memory", "Node", "Restart"}

// TableReporter implements ports.Reporter as a styled table.
type TableReporter struct {
	w io.Writer
}

// NewTableReporter creates a table reporter writing to w.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

// Emit renders one row per finding. Walltime and memory cells show
// used / requested so over- and under-allocation is visible at a glance.
func (r *TableReporter) Emit(findings []domain.Finding) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(style.Iris)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Inherit(headerStyle)
			}
			return cellStyle
		}).
		Headers(tableHeaders...)

	for _, f := range findings {
		t.Row(tableRow(f)...)
	}

	if _, err := fmt.Fprintln(r.w, t.String()); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	return nil
}

func tableRow(f domain.Finding) []string {
	failure := f.Kind.String()
	if f.ParseErr != nil {
		failure = lipgloss.NewStyle().Foreground(style.Yellow).Render("unparseable")
	}

	walltime, memory, node := notAvailable, notAvailable, notAvailable
	if f.Record != nil {
		walltime = fmt.Sprintf("%s / %s", f.Record.Elapsed, f.Record.Timelimit)
		memory = fmt.Sprintf("%s / %s", f.Record.MaxRSS, f.Record.ReqMem)
		if f.Record.NodeList != "" {
			node = f.Record.NodeList
		}
	}

	return []string{
		f.Target.String(),
		failure,
		walltime,
		memory,
		node,
		restartCell(f.Decision),
	}
}

// restartCell summarizes the restart decision: the icon plus the scaled
// resource when one was computed.
func restartCell(d *domain.RestartDecision) string {
	check := lipgloss.NewStyle().Foreground(style.Green).Render(style.Check)
	cross := lipgloss.NewStyle().Foreground(style.Red).Render(style.Cross)

	switch {
	case d == nil:
		return style.Dash
	case !d.Eligible:
		return cross
	case d.Resources == nil:
		return check
	case d.Kind == domain.FailureTimeout:
		return fmt.Sprintf("%s %s", check, d.Resources.Walltime)
	case d.Kind == domain.FailureOutOfMemory:
		return fmt.Sprintf("%s %s", check, d.Resources.Memory)
	default:
		return check
	}
}
