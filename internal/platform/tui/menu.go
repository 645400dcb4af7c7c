package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coretilus/internal/registry"
)

// Menu layout constants
const (
	sidebarWidth  = 22 // Width of the scene list
	flagRowsShown = 6  // Height of the flag table
)

// menuFocus is the part of the menu receiving navigation keys.
type menuFocus int

const (
	focusScenes menuFocus = iota
	focusFlags
	focusArgs
)

// MenuKeyMap defines the key bindings for the scene picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Focus  key.Binding
	Toggle key.Binding
	Run    key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Toggle, k.Run, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Toggle, k.Run, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "flags/args"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle flag"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	scenes   []registry.Info
	cursor   int
	enabled  []map[string]bool // Toggled flags per scene, by long name
	focus    menuFocus
	flags    table.Model
	args     textinput.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	chosen   bool
}

// NewMenuModel lists every registered scene.
func NewMenuModel(width, height int) MenuModel {
	scenes := registry.List()
	enabled := make([]map[string]bool, len(scenes))
	for i := range enabled {
		enabled[i] = map[string]bool{}
	}

	in := textinput.New()
	in.Prompt = "args> "
	in.CharLimit = 128

	m := MenuModel{
		scenes:  scenes,
		enabled: enabled,
		args:    in,
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		width:   width,
		height:  height,
	}
	m.flags = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the flag table.
func (m *MenuModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "On", Width: 3},
			{Title: "Flag", Width: 16},
			{Title: "Effect", Width: 32},
		}),
		table.WithHeight(flagRowsShown),
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

// updateTableRows shows the flags of the highlighted scene.
func (m *MenuModel) updateTableRows() {
	if len(m.scenes) == 0 {
		m.flags.SetRows(nil)
		return
	}
	sc := m.scenes[m.cursor]
	rows := make([]table.Row, len(sc.Flags))
	for i, f := range sc.Flags {
		on := " "
		if m.enabled[m.cursor][f.Long] {
			on = "x"
		}
		name := "--" + f.Long
		if f.Short != "" {
			name = fmt.Sprintf("-%s, --%s", f.Short, f.Long)
		}
		rows[i] = table.Row{on, name, f.Usage}
	}
	m.flags.SetRows(rows)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusArgs {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyTab, tea.KeyEsc, tea.KeyCtrlC:
		default:
			var cmd tea.Cmd
			m.args, cmd = m.args.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.focus == focusArgs && msg.Type == tea.KeyEsc {
			m.setFocus(focusScenes)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Run):
		if len(m.scenes) > 0 {
			m.chosen = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Focus):
		m.setFocus(m.nextFocus())

	case key.Matches(msg, m.keys.Up):
		m.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.move(1)

	case key.Matches(msg, m.keys.Toggle):
		if m.focus == focusFlags {
			m.toggle()
		}
	}

	return m, nil
}

// nextFocus skips parts the highlighted scene does not have.
func (m MenuModel) nextFocus() menuFocus {
	if len(m.scenes) == 0 {
		return focusScenes
	}
	sc := m.scenes[m.cursor]
	for f := m.focus + 1; f <= focusArgs; f++ {
		if f == focusFlags && len(sc.Flags) > 0 {
			return f
		}
		if f == focusArgs && sc.Usage != "" {
			return f
		}
	}
	return focusScenes
}

func (m *MenuModel) setFocus(f menuFocus) {
	m.focus = f
	if f == focusFlags {
		m.flags.Focus()
	} else {
		m.flags.Blur()
	}
	if f == focusArgs {
		m.args.Focus()
	} else {
		m.args.Blur()
	}
}

func (m *MenuModel) move(delta int) {
	switch m.focus {
	case focusScenes:
		if len(m.scenes) == 0 {
			return
		}
		m.cursor = (m.cursor + delta + len(m.scenes)) % len(m.scenes)
		m.args.SetValue("")
		m.updateTableRows()
		m.flags.GotoTop()
	case focusFlags:
		if delta < 0 {
			m.flags.MoveUp(1)
		} else {
			m.flags.MoveDown(1)
		}
	}
}

func (m *MenuModel) toggle() {
	sc := m.scenes[m.cursor]
	row := m.flags.Cursor()
	if row < 0 || row >= len(sc.Flags) {
		return
	}
	long := sc.Flags[row].Long
	m.enabled[m.cursor][long] = !m.enabled[m.cursor][long]
	m.updateTableRows()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("C O R E T I L U S", m.width)))
	b.WriteString("\n\n")

	if len(m.scenes) == 0 {
		b.WriteString("No scenes registered.\n")
		return b.String()
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderDetails()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the scene list.
func (m MenuModel) renderSidebar() string {
	border := lipgloss.Color("240")
	if m.focus == focusScenes {
		border = lipgloss.Color("57")
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(sidebarWidth).
		Padding(0, 1)

	var list strings.Builder
	list.WriteString("Scenes\n")
	list.WriteString(strings.Repeat("-", sidebarWidth-4))
	list.WriteString("\n")

	for i, sc := range m.scenes {
		cursor := "  "
		line := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			line = line.Bold(true).Foreground(lipgloss.Color("229"))
		}
		list.WriteString(line.Render(fmt.Sprintf("%s%-4s %s", cursor, sc.ID, truncate(sc.Title, sidebarWidth-11))))
		list.WriteString("\n")
	}

	return style.Render(list.String())
}

// renderDetails renders the summary, flags and argument input of the
// highlighted scene.
func (m MenuModel) renderDetails() string {
	sc := m.scenes[m.cursor]
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(sc.Title))
	b.WriteString("\n")
	b.WriteString(sc.Summary)
	b.WriteString("\n\n")

	if len(sc.Flags) > 0 {
		b.WriteString(m.flags.View())
	} else {
		b.WriteString(dim.Render("No flags."))
	}
	b.WriteString("\n\n")

	if sc.Usage != "" {
		b.WriteString(dim.Render("usage: " + sc.ID + " " + sc.Usage))
		b.WriteString("\n")
		b.WriteString(m.args.View())
	}

	return style.Render(b.String())
}

// Selection returns the chosen scene and its arguments.
func (m MenuModel) Selection() MenuResult {
	if !m.chosen || len(m.scenes) == 0 {
		return MenuResult{Quit: true}
	}
	sc := m.scenes[m.cursor]
	var args []string
	for _, f := range sc.Flags {
		if m.enabled[m.cursor][f.Long] {
			args = append(args, "--"+f.Long)
		}
	}
	args = append(args, strings.Fields(m.args.Value())...)
	return MenuResult{SceneID: sc.ID, Args: args}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID string
	Args    []string // Raw scene arguments, flags as "--long"
	Quit    bool
}

// RunMenu runs the scene picker and returns the selection.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Selection(), nil
}
