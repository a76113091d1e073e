package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/padlab/taskpad/internal/task"
)

const (
	fieldTitle = iota
	fieldPriority
	fieldDeadline
	fieldCount
)

// addModel is the new-task form: title, priority and optional
// deadline.
type addModel struct {
	store  *task.Store
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
}

func newAddModel(store *task.Store) addModel {
	m := addModel{store: store}

	title := textinput.New()
	title.Placeholder = "Task title"
	title.Focus()
	m.inputs[fieldTitle] = title

	priority := textinput.New()
	priority.Placeholder = "3"
	priority.CharLimit = 1
	m.inputs[fieldPriority] = priority

	deadline := textinput.New()
	deadline.Placeholder = "YYYY-MM-DD (optional)"
	m.inputs[fieldDeadline] = deadline

	return m
}

// Init implements tea.Model.
func (m addModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the add form.
func (m addModel) Update(msg tea.Msg) (addModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, func() tea.Msg { return goToListMsg{} }

		case "tab", "down":
			return m.setFocus(m.focus + 1), nil

		case "shift+tab", "up":
			return m.setFocus(m.focus - 1), nil

		case "enter":
			if m.focus < fieldCount-1 {
				return m.setFocus(m.focus + 1), nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m addModel) setFocus(focus int) addModel {
	if focus < 0 {
		focus = fieldCount - 1
	}
	if focus >= fieldCount {
		focus = 0
	}

	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = focus
	return m
}

func (m addModel) submit() (addModel, tea.Cmd) {
	priority := 3
	if raw := strings.TrimSpace(m.inputs[fieldPriority].Value()); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			m.errMsg = "priority must be a number between 1 and 5"
			return m, nil
		}
		priority = p
	}

	deadline, err := task.ParseDeadline(m.inputs[fieldDeadline].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	t, err := m.store.Add(m.inputs[fieldTitle].Value(), priority, deadline)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	notice := fmt.Sprintf("Task %d added: %q", t.ID, t.Title)
	return m, func() tea.Msg { return goToListMsg{notice: notice} }
}

// View renders the add form.
func (m addModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New task"))
	b.WriteString("\n")

	labels := [fieldCount]string{"Title", "Priority (1-5)", "Deadline"}
	for i := range m.inputs {
		b.WriteString(subtleStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(statusBarStyle.Render("enter next/save • tab switch field • esc cancel"))
	b.WriteString("\n")

	return b.String()
}
