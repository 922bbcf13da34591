package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hupe1980/kcluster"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// renderSummary prints one line per cluster, tagged with the cluster's color.
func renderSummary(w io.Writer, res *kcluster.Result, members bool) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s run %s", res.Policy, res.RunID)))

	status := "converged"
	switch {
	case res.Stopped:
		status = "stopped"
	case res.StopReason != nil:
		status = res.StopReason.Error()
	case !res.Converged:
		status = "not converged"
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d iterations, %d clusters, %s, %s",
		res.Iterations, len(res.Clusters), status, res.Duration.Round(time.Microsecond))))

	for _, c := range res.Clusters {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex())).Render("●")
		fmt.Fprintf(w, "%s %2d  centroid=%s  members=%d\n", swatch, c.Index, c.Centroid, c.Len())
		if members {
			for _, p := range c.Members {
				fmt.Fprintf(w, "      %s\n", p)
			}
		}
	}
}
