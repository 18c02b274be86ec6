// Package hub is the interactive couch screen: the tile list the TV shows
// once the coordinator reaches Ready.
package hub

import (
	"context"

	"github.com/adupuis1/CouchSuite/internal/application"
	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Backend is the slice of the coordinator the hub drives.
type Backend interface {
	State() application.State
	Catalog() domain.Catalog
	RefreshCatalog(ctx context.Context) (application.CatalogResult, error)
	Launch(ctx context.Context, id domain.EntryID) (application.LaunchResult, error)
}

type refreshDoneMsg struct {
	result application.CatalogResult
	err    error
}

type launchDoneMsg struct {
	result application.LaunchResult
	err    error
}

type model struct {
	ctx     context.Context
	backend Backend
	styles  styles

	entries  []domain.Entry
	cursor   int
	offline  bool
	username string
	host     string

	busy    bool
	busyFor string
	spinner spinner.Model
	status  string
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)
}

func newModel(ctx context.Context, backend Backend) model {
	state := backend.State()
	return model{
		ctx:      ctx,
		backend:  backend,
		styles:   newStyles(),
		entries:  backend.Catalog().Entries(),
		offline:  state.Offline,
		username: state.Username,
		host:     state.Host,
		spinner:  newSpinner(),
		busy:     true,
		busyFor:  "refreshing catalog",
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.backend.RefreshCatalog(m.ctx)
		return refreshDoneMsg{result: result, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshDoneMsg:
		m.busy = false
		m.busyFor = ""
		if msg.err != nil {
			m.status = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.entries = msg.result.Catalog.Entries()
		m.offline = msg.result.Offline
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		m.status = ""
		if msg.result.FromCache {
			m.status = "showing last known catalog"
		}
		return m, nil
	case launchDoneMsg:
		m.busy = false
		m.busyFor = ""
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = "streaming " + msg.result.Entry.DisplayName + " from " + msg.result.Host
		return m, nil
	default:
		return m, nil
	}
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.busyFor = "refreshing catalog"
		return m, m.refreshCmd()
	case "enter":
		if m.busy || len(m.entries) == 0 {
			return m, nil
		}
		entry := m.entries[m.cursor]
		if !entry.Playable() {
			m.status = entry.DisplayName + " is not playable: " + playabilityReason(entry)
			return m, nil
		}
		m.busy = true
		m.busyFor = "launching " + entry.DisplayName
		id := entry.ID
		return m, func() tea.Msg {
			result, err := m.backend.Launch(m.ctx, id)
			return launchDoneMsg{result: result, err: err}
		}
	default:
		return m, nil
	}
}

func (m model) View() string {
	return renderView(m)
}

// Run drives the hub until the player quits.
func Run(ctx context.Context, backend Backend) error {
	p := tea.NewProgram(
		newModel(ctx, backend),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
