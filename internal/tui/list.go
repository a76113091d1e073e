package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/padlab/taskpad/internal/task"
)

// listModel is the task list screen: navigation, status filtering,
// sorting and quick mutations.
type listModel struct {
	store *task.Store

	views        []task.View
	cursor       int
	statusFilter int // 0 = all, otherwise index+1 into task.Statuses
	sortKey      task.SortKey

	notice string
	errMsg string
}

func newListModel(store *task.Store) listModel {
	m := listModel{store: store}
	m.refresh()
	return m
}

// reload refreshes the table after returning from another view.
func (m listModel) reload(notice string) listModel {
	m.notice = notice
	m.errMsg = ""
	m.refresh()
	return m
}

func (m *listModel) refresh() {
	var opts task.ListOptions
	if m.statusFilter > 0 {
		status := task.Statuses[m.statusFilter-1]
		opts.Status = &status
	}
	opts.Sort = m.sortKey

	m.views = m.store.List(opts)
	if m.cursor >= len(m.views) {
		m.cursor = len(m.views) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles key input for the list screen.
func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.notice = ""
	m.errMsg = ""

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.views)-1 {
			m.cursor++
		}

	case "a":
		return m, func() tea.Msg { return goToAddMsg{} }

	case "t":
		return m, func() tea.Msg { return goToStatsMsg{} }

	case "s":
		m.statusFilter = (m.statusFilter + 1) % (len(task.Statuses) + 1)
		m.refresh()

	case "o":
		switch m.sortKey {
		case task.SortNone:
			m.sortKey = task.SortDeadline
		case task.SortDeadline:
			m.sortKey = task.SortPriority
		default:
			m.sortKey = task.SortNone
		}
		m.refresh()

	case "d":
		if len(m.views) == 0 {
			break
		}
		t, err := m.store.UpdateStatus(m.views[m.cursor].ID, task.StatusDone)
		if err != nil {
			m.errMsg = err.Error()
			break
		}
		m.notice = fmt.Sprintf("Task %d marked done", t.ID)
		m.refresh()

	case "x":
		if len(m.views) == 0 {
			break
		}
		t, err := m.store.Delete(m.views[m.cursor].ID)
		if err != nil {
			m.errMsg = err.Error()
			break
		}
		m.notice = fmt.Sprintf("Task %d deleted", t.ID)
		m.refresh()
	}

	return m, nil
}

// View renders the list screen.
func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Taskpad"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("filter: %s  sort: %s", m.filterLabel(), m.sortLabel())))
	b.WriteString("\n\n")

	if len(m.views) == 0 {
		b.WriteString(subtleStyle.Render("No tasks."))
		b.WriteString("\n")
	}

	for i, v := range m.views {
		line := fmt.Sprintf("%3d  %-30s  p%d  %-11s  %s", v.ID, truncate(v.Title, 30), v.Priority, v.Status, m.deadlineCell(v))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(successStyle.Render(m.notice))
		b.WriteString("\n")
	}

	help := []string{
		"a add", "d done", "x delete", "s filter", "o sort", "t stats", "q quit",
	}
	b.WriteString(statusBarStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")

	return b.String()
}

func (m listModel) deadlineCell(v task.View) string {
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

func (m listModel) filterLabel() string {
	if m.statusFilter == 0 {
		return "all"
	}
	return string(task.Statuses[m.statusFilter-1])
}

func (m listModel) sortLabel() string {
	switch m.sortKey {
	case task.SortDeadline:
		return "deadline"
	case task.SortPriority:
		return "priority"
	default:
		return "none"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
