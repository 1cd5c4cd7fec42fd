package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/worldofbits/internal/storage"
)

// maxWins is how many wins the board loads.
const maxWins = 100

// WinsSource lists recorded wins, newest first.
type WinsSource interface {
	RecentWins(limit int) ([]storage.WinEntry, error)
}

// WinsKeyMap defines the key bindings for the wins board.
type WinsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WinsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WinsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultWinsKeyMap returns default key bindings.
func DefaultWinsKeyMap() WinsKeyMap {
	return WinsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WinsModel is the Bubble Tea model for the wins board.
type WinsModel struct {
	wins     []storage.WinEntry
	err      error
	table    table.Model
	help     help.Model
	keys     WinsKeyMap
	width    int
	height   int
	quitting bool
}

// NewWinsModel creates a wins board showing the latest wins of src.
func NewWinsModel(src WinsSource, width, height int) WinsModel {
	m := WinsModel{
		keys:   DefaultWinsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if src != nil {
		m.wins, m.err = src.RecentWins(maxWins)
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *WinsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 16},
		{Title: "Moves", Width: 7},
		{Title: "Left", Width: 6},
		{Title: "Date", Width: 14},
	}

	// Give spare width to the player column
	if spare := m.width - 4 - 57; spare > 0 {
		columns[1].Width += min(spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the loaded wins.
func (m *WinsModel) updateTableRows() {
	m.table.SetRows(WinRows(m.wins))
	m.table.GotoTop()
}

// WinRows formats wins as table rows.
func WinRows(wins []storage.WinEntry) []table.Row {
	rows := make([]table.Row, len(wins))
	for i, w := range wins {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			strings.TrimPrefix(w.Slot, "ssh:"),
			fmt.Sprintf("%d", w.Moves),
			fmt.Sprintf("%d", w.TokensLeft),
			w.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the wins board.
func (m WinsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the wins board.
func (m WinsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the wins board.
func (m WinsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("WORLD OF BITS - WINS", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m WinsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot load wins:\n" + m.err.Error())
	case len(m.wins) == 0:
		return emptyStyle.Render("Nobody has made 2048 yet.\nGo pick up some bits!")
	}
	return m.table.View()
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunWinsBoard runs the wins board until the user quits.
func RunWinsBoard(src WinsSource, width, height int) error {
	p := tea.NewProgram(
		NewWinsModel(src, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
