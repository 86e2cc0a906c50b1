package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var boardKeys = boardKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev semester")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next semester")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "approve")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Quit}
}

// boardLoadedMsg carries a freshly built board.
type boardLoadedMsg struct {
	board *app.BoardView
	err   error
}

// toggledMsg reports the result of flipping one approval.
type toggledMsg struct {
	id       string
	approved bool
	err      error
}

// boardModel is the interactive semester board: move between courses and
// flip approvals, with lock state updating live.
type boardModel struct {
	app   *App
	ctx   context.Context
	board *app.BoardView

	sem int
	row int

	width  int
	status string
	err    error
}

func newBoardModel(ctx context.Context, a *App) *boardModel {
	return &boardModel{app: a, ctx: ctx}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	progress := m.app.Progress
	ctx := m.ctx
	return func() tea.Msg {
		board, err := progress.Board(ctx)
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m *boardModel) toggle(id string) tea.Cmd {
	progress := m.app.Progress
	ctx := m.ctx
	return func() tea.Msg {
		approved, err := progress.Toggle(ctx, id)
		return toggledMsg{id: id, approved: approved, err: err}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.board = msg.board
		m.clampCursor()
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		if msg.approved {
			m.status = formatter.StyleGreen.Render("✓ " + msg.id + " aprobado")
		} else {
			m.status = formatter.Dim("○ " + msg.id + " sin aprobar")
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, boardKeys.Quit):
		return m, tea.Quit
	case m.board == nil || len(m.board.Semesters) == 0:
		return m, nil
	case key.Matches(msg, boardKeys.Up):
		m.row--
	case key.Matches(msg, boardKeys.Down):
		m.row++
	case key.Matches(msg, boardKeys.Left):
		m.sem--
	case key.Matches(msg, boardKeys.Right):
		m.sem++
	case key.Matches(msg, boardKeys.Toggle):
		if c, ok := m.current(); ok {
			return m, m.toggle(c.ID)
		}
	}
	m.clampCursor()
	return m, nil
}

func (m *boardModel) clampCursor() {
	if m.board == nil || len(m.board.Semesters) == 0 {
		m.sem, m.row = 0, 0
		return
	}
	m.sem = min(max(m.sem, 0), len(m.board.Semesters)-1)
	courses := m.board.Semesters[m.sem].Courses
	m.row = min(max(m.row, 0), max(len(courses)-1, 0))
}

func (m *boardModel) current() (app.BoardCourse, bool) {
	if m.board == nil || m.sem >= len(m.board.Semesters) {
		return app.BoardCourse{}, false
	}
	courses := m.board.Semesters[m.sem].Courses
	if m.row >= len(courses) {
		return app.BoardCourse{}, false
	}
	return courses[m.row], true
}

func (m *boardModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.board == nil {
		return formatter.Dim("Cargando malla…") + "\n"
	}

	opts := formatter.BoardOptions{}
	if m.width > 0 {
		opts.Columns = max(m.width/34, 1)
	}
	if c, ok := m.current(); ok {
		opts.Cursor = c.ID
	}

	var b strings.Builder
	b.WriteString(formatter.FormatBoard(m.board, opts))
	b.WriteString("\n")
	if c, ok := m.current(); ok {
		b.WriteString(fmt.Sprintf("%s %s  %s", formatter.Bold(c.ID), c.DisplayName, formatter.StateLabel(c.Approved, c.Locked)))
		if len(c.Missing) > 0 {
			b.WriteString(formatter.Dim("  faltan: " + strings.Join(c.Missing, ", ")))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(renderHelp(boardKeys.ShortHelp()))
	return b.String()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · ")) + "\n"
}
