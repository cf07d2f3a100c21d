package syncer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// Report prints the outcome summary for one sync run.
func Report(w io.Writer, ctx *Context) {
	fmt.Fprintln(w, titleStyle.Render("upstream sync"))

	switch ctx.Status {
	case StatusUpToDate:
		fmt.Fprintln(w, okStyle.Render("already up to date with "+ctx.UpstreamRef))
		return
	case StatusCancelled:
		fmt.Fprintln(w, warnStyle.Render("cancelled by operator, nothing merged"))
		return
	case StatusClean:
		fmt.Fprintln(w, okStyle.Render("merged cleanly"))
	case StatusResolved:
		fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("merged, %d conflicts auto-resolved", len(ctx.Resolved))))
	case StatusManual:
		fmt.Fprintln(w, failStyle.Render(fmt.Sprintf("merge left open: %d resolved, %d need manual resolution", len(ctx.Resolved), len(ctx.Manual))))
		for _, path := range ctx.Manual {
			fmt.Fprintln(w, failStyle.Render("  manual: "+path))
		}
	}

	for _, path := range ctx.Resolved {
		fmt.Fprintln(w, detailStyle.Render("  resolved: "+path))
	}
	if ctx.RangeStart != "" && ctx.RangeEnd != "" {
		fmt.Fprintln(w, detailStyle.Render(fmt.Sprintf("  merged %s..%s (%d commits)", ctx.RangeStart, ctx.RangeEnd, ctx.Pending)))
	}
}
