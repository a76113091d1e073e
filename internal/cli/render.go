package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/padlab/taskpad/internal/task"
)

var (
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AF5F5F"))
	soonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D7AF5F"))
)

// renderTasks writes the task table with display-time deadline flags.
func renderTasks(out io.Writer, views []task.View) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDEADLINE")

	for _, v := range views {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", v.ID, v.Title, v.Priority, v.Status, formatDeadline(v))
	}

	return w.Flush()
}

func formatDeadline(v task.View) string {
	if v.Deadline == nil {
		return "-"
	}

	s := v.Deadline.Format(task.DateLayout)
	switch v.Flag {
	case task.FlagOverdue:
		return s + " " + overdueStyle.Render("["+v.Flag.String()+"]")
	case task.FlagSoon:
		return s + " " + soonStyle.Render("["+v.Flag.String()+"]")
	default:
		return s
	}
}

// renderStats writes the statistics summary. Status percentages are
// rounded independently and may not sum to exactly 100.
func renderStats(out io.Writer, stats task.Stats) error {
	if stats.Total == 0 {
		_, err := fmt.Fprintln(out, "No tasks.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total tasks:\t%d\n", stats.Total)

	fmt.Fprintln(w, "\nBy status:")
	for _, sc := range stats.ByStatus {
		fmt.Fprintf(w, "  %s\t%d (%d%%)\n", sc.Status, sc.Count, sc.Percent)
	}

	fmt.Fprintln(w, "\nBy priority:")
	for _, pc := range stats.ByPriority {
		fmt.Fprintf(w, "  priority %d\t%d\n", pc.Priority, pc.Count)
	}

	if len(stats.Overdue) > 0 {
		fmt.Fprintf(w, "\nOverdue tasks:\t%d\n", len(stats.Overdue))
		for _, t := range stats.Overdue {
			fmt.Fprintf(w, "  - %s\t\n", t.Title)
		}
	}

	return w.Flush()
}
