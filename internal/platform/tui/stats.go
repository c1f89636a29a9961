package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkarpenko/tui-slide/internal/storage"
)

// maxSessions is the number of sessions loaded into the stats view.
const maxSessions = 50

// StatsKeyMap defines the key bindings for the session stats screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings for the stats screen.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the session stats screen.
type StatsModel struct {
	stats    storage.Stats
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	quitting bool
}

// NewStatsModel creates a stats model from recorded sessions.
func NewStatsModel(stats storage.Stats, sessions []storage.SessionEntry, height int) StatsModel {
	columns := []table.Column{
		{Title: "Board", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Duration", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, table.Row{
			fmt.Sprintf("%dx%d", s.BoardWidth, s.BoardHeight),
			fmt.Sprintf("%d", s.Moves),
			fmt.Sprintf("%ds", s.DurationSecs),
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := maxInt(3, minInt(len(rows)+1, height-6))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	return StatsModel{
		stats: stats,
		table: t,
		help:  help.New(),
		keys:  DefaultStatsKeyMap(),
	}
}

// Init implements tea.Model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Play sessions")
	summary := fmt.Sprintf("%d sessions, %d moves total, %.1f moves avg",
		m.stats.Sessions, m.stats.TotalMoves, m.stats.AvgMoves)

	return "\n " + title + "\n " + summary + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunStats shows the interactive session stats screen.
func RunStats(store *storage.Store, height int) error {
	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	sessions, err := store.RecentSessions(maxSessions)
	if err != nil {
		return err
	}

	model := NewStatsModel(stats, sessions, height)
	_, err = tea.NewProgram(model).Run()
	return err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
