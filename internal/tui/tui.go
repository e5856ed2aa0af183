package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Abbastouqi/Dr-Mario-Game/internal/control"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/game"
	"github.com/Abbastouqi/Dr-Mario-Game/internal/render"
)

// DropMsg is an idle tick delivered by the drop timer.
type DropMsg struct{}

// Model is the Bubble Tea model for an interactive game
type Model struct {
	ctrl   *control.Controller
	logger *log.Logger

	// UI components
	board        *render.Styled
	formatter    *game.EventFormatter
	keys         keyMap
	help         help.Model
	logViewport  viewport.Model
	commandInput textinput.Model

	// State
	gameLog      []string
	inputFocused bool
	quitting     bool

	// Dimensions
	width       int
	height      int
	initialized bool
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger.WithPrefix("tui")
		}
	}
}

// WithRenderer draws the board for out using theme.
func WithRenderer(out io.Writer, theme string) Option {
	return func(m *Model) { m.board = render.NewStyled(out, theme) }
}

// NewModel creates a model driving ctrl. It subscribes to the game's event
// bus for the game log.
func NewModel(ctrl *control.Controller, opts ...Option) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "F R B, A, B, <, >, v 3 2 r, Q"
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusedBorder).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		ctrl:         ctrl,
		logger:       log.New(io.Discard),
		formatter:    game.NewEventFormatter(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		logViewport:  vp,
		commandInput: ti,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.board == nil {
		m.board = render.NewStyled(os.Stdout, render.ThemeDefault)
	}

	ctrl.State().EventBus().Subscribe(game.EventSubscriberFunc(m.onEvent))
	return m
}

// State returns the game being played
func (m *Model) State() *game.GameState {
	return m.ctrl.State()
}

// Log returns the game log entries
func (m *Model) Log() []string {
	return m.gameLog
}

// Init spawns the first faller when auto-spawn is on
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start()
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case DropMsg:
		m.ctrl.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		if m.inputFocused {
			return m, m.updateInput(msg)
		}
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.inputFocused = true
		return m.commandInput.Focus()
	case key.Matches(msg, m.keys.Pause):
		m.ctrl.TogglePause()
	case key.Matches(msg, m.keys.ScrollUp):
		m.logViewport.HalfPageUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.logViewport.HalfPageDown()
	case key.Matches(msg, m.keys.Left):
		m.ctrl.Do(control.MoveLeft)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.Do(control.MoveRight)
	case key.Matches(msg, m.keys.RotateCW):
		m.ctrl.Do(control.RotateClockwise)
	case key.Matches(msg, m.keys.RotateCCW):
		m.ctrl.Do(control.RotateCounterClockwise)
	case key.Matches(msg, m.keys.Drop):
		m.ctrl.Do(control.Drop)
	case key.Matches(msg, m.keys.Spawn):
		m.ctrl.Do(control.Spawn)
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab:
		m.inputFocused = false
		m.commandInput.Blur()
		return nil
	case tea.KeyEnter:
		line := strings.TrimSpace(m.commandInput.Value())
		m.commandInput.SetValue("")
		if !m.submit(line) {
			m.quitting = true
			return tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		return nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return cmd
}

// submit runs one protocol line and reports whether play continues.
func (m *Model) submit(line string) bool {
	m.AddLogEntry(CommandStyle.Render("> " + line))
	err := m.ctrl.Submit(line)
	switch {
	case errors.Is(err, control.ErrQuit):
		return false
	case err != nil:
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
	}
	return true
}

func (m *Model) onEvent(event game.GameEvent) {
	line := m.formatter.Format(event)
	switch event.(type) {
	case game.GameOverEvent:
		line = ErrorStyle.Render(line)
	case game.LevelClearedEvent:
		line = SuccessStyle.Render(line)
	case game.MatchesClearedEvent:
		line = WarningStyle.Render(line)
	}
	m.AddLogEntry(line)
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	// Only call GotoBottom if viewport has valid dimensions
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	boardPane := paneStyle(!m.inputFocused).Render(m.renderBoard())
	boardWidth := lipgloss.Width(boardPane)

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)
	inputPane := paneStyle(m.inputFocused).
		Width(max(m.width-2, 1)).
		Render(inputContent)

	logWidth := max(m.width-boardWidth-2, 1)
	logHeight := max(m.height-inputHeight-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	logPane := paneStyle(false).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, logPane)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, inputPane)
}

func (m *Model) renderBoard() string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(" DR. MARIO "))
	content.WriteString("\n")
	content.WriteString(m.board.Field(m.State()))

	if status := m.board.Status(m.State()); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}
	if m.ctrl.Paused() {
		content.WriteString("\n")
		content.WriteString(WarningStyle.Render("PAUSED"))
	}
	return content.String()
}

func (m *Model) renderInputPane() string {
	var content strings.Builder
	content.WriteString(m.commandInput.View())
	content.WriteString("\n")
	if m.inputFocused {
		content.WriteString(InfoStyle.Render("Enter to run • Tab back to board • Esc to quit"))
	} else {
		content.WriteString(m.help.View(m.keys))
	}
	if f, ok := m.State().Faller(); ok {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Capsule %c%c at %s", f.Primary.Color.Letter(), f.Secondary.Color.Letter(), f.Primary.Pos)))
	}
	return content.String()
}
