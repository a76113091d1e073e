// Package tui implements the interactive mode started when taskpad
// runs without arguments. It works on the same store as the CLI
// commands and persists after every mutation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/padlab/taskpad/internal/config"
	"github.com/padlab/taskpad/internal/storage"
	"github.com/padlab/taskpad/internal/task"
)

// view represents the different screens in the TUI.
type view int

const (
	viewList view = iota
	viewAdd
	viewStats
)

// View transition messages.

type goToListMsg struct {
	notice string // optional one-line confirmation shown in the status bar
}

type goToAddMsg struct{}

type goToStatsMsg struct{}

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView view
	store       *task.Store

	list  listModel
	add   addModel
	stats statsModel

	width  int
	height int
}

// Run starts the TUI application.
func Run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	store, err := task.Open(storage.NewFile(cfg.File))
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(store), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(store *task.Store) Model {
	return Model{
		currentView: viewList,
		store:       store,
		list:        newListModel(store),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case goToListMsg:
		m.currentView = viewList
		m.list = m.list.reload(msg.notice)
		return m, nil

	case goToAddMsg:
		m.currentView = viewAdd
		m.add = newAddModel(m.store)
		return m, m.add.Init()

	case goToStatsMsg:
		m.currentView = viewStats
		m.stats = newStatsModel(m.store)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case viewAdd:
		m.add, cmd = m.add.Update(msg)
	case viewStats:
		m.stats, cmd = m.stats.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case viewAdd:
		return m.add.View()
	case viewStats:
		return m.stats.View()
	default:
		return m.list.View()
	}
}
