package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarpenko/tui-slide/internal/puzzle"
	"github.com/vkarpenko/tui-slide/internal/storage"
)

// Model is the Bubble Tea model running the puzzle. It owns the single
// action stream: key presses and timer ticks are translated to puzzle
// actions and folded into the game state one at a time, so the renderer
// only ever sees a complete snapshot.
type Model struct {
	game     puzzle.Model
	screen   *Screen
	store    *storage.Store
	keys     KeyMap
	help     help.Model
	tickRate int

	width    int
	height   int
	tooSmall bool
	quitting bool

	started time.Time
	saved   bool // Whether the session has been recorded
}

// NewModel creates a new Bubble Tea model for the given puzzle state.
func NewModel(game puzzle.Model, store *storage.Store, tickRate, screenW, screenH int) Model {
	m := Model{
		game:     game,
		screen:   NewScreen(screenW, maxInt(1, screenH-1)),
		store:    store,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
		width:    screenW,
		height:   screenH,
		started:  time.Now(),
	}
	m.checkScreenSize()
	return m
}

// Init starts the animation tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey translates key presses to puzzle actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	if action != puzzle.ActionNone {
		m.game = puzzle.Reduce(m.game, action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, maxInt(1, msg.Height-1))
	m.help.Width = msg.Width
	m.checkScreenSize()
	return m, nil
}

// handleTick advances the slide animation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game = puzzle.Reduce(m.game, puzzle.ActionTick)
	return m, tickCmd(m.tickRate)
}

// checkScreenSize checks whether the board plus HUD fits the terminal.
func (m *Model) checkScreenSize() {
	boardW, boardH := BoardSize(m.game)
	m.tooSmall = m.width < boardW+2 || m.height < boardH+4
}

// saveSession records the finished session, best-effort, exactly once.
func (m *Model) saveSession() {
	if m.saved || m.store == nil || m.game.Moves == 0 {
		return
	}
	duration := int(time.Since(m.started).Seconds())
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(m.game.Width, m.game.Height, m.game.Moves, duration)
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		return fmt.Sprintf("\n  Window too small for a %dx%d board.\n  Resize the terminal or pick a smaller board.\n\n  q to quit\n",
			m.game.Width, m.game.Height)
	}

	m.screen.Clear()

	boardW, boardH := BoardSize(m.game)
	originX := maxInt(0, (m.screen.Width()-boardW)/2)
	originY := maxInt(0, (m.screen.Height()-1-boardH)/2) + 1

	hud := fmt.Sprintf("slide %dx%d  moves: %d", m.game.Width, m.game.Height, m.game.Moves)
	m.screen.SetString(originX, originY-1, hud, ColorHUD)

	DrawModel(m.screen, m.game, originX, originY)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given puzzle state.
func Run(game puzzle.Model, store *storage.Store, tickRate, screenW, screenH int) error {
	model := NewModel(game, store, tickRate, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
