package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/padlab/taskpad/internal/task"
)

// statsModel is the read-only statistics screen.
type statsModel struct {
	stats task.Stats
}

func newStatsModel(store *task.Store) statsModel {
	return statsModel{stats: store.Statistics()}
}

// Update returns to the list on any key press except quit.
func (m statsModel) Update(msg tea.Msg) (statsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		return m, func() tea.Msg { return goToListMsg{} }
	}
}

// View renders the statistics screen.
func (m statsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n")

	if m.stats.Total == 0 {
		b.WriteString(subtleStyle.Render("No tasks."))
		b.WriteString("\n\n")
		b.WriteString(statusBarStyle.Render("any key back • q quit"))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total tasks: %d\n\n", m.stats.Total)

	b.WriteString("By status:\n")
	for _, sc := range m.stats.ByStatus {
		fmt.Fprintf(&b, "  %-12s %d (%d%%)\n", sc.Status, sc.Count, sc.Percent)
	}

	b.WriteString("\nBy priority:\n")
	for _, pc := range m.stats.ByPriority {
		fmt.Fprintf(&b, "  priority %d   %d\n", pc.Priority, pc.Count)
	}

	if len(m.stats.Overdue) > 0 {
		b.WriteString("\n")
		b.WriteString(overdueStyle.Render(fmt.Sprintf("Overdue tasks: %d", len(m.stats.Overdue))))
		b.WriteString("\n")
		for _, t := range m.stats.Overdue {
			fmt.Fprintf(&b, "  - %s\n", t.Title)
		}
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("any key back • q quit"))
	b.WriteString("\n")

	return b.String()
}
