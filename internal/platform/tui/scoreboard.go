package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores      = 100 // Max scores to load
	maxRecent      = 50  // Max maze results to load
	tableMinHeight = 3
)

// scoreView is one tab of the scoreboard.
type scoreView int

const (
	viewScores scoreView = iota
	viewMazes
	viewRecent
	viewCount
)

func (v scoreView) String() string {
	switch v {
	case viewScores:
		return "High scores"
	case viewMazes:
		return "Mazes"
	case viewRecent:
		return "Recent"
	}
	return ""
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID    string
	view      scoreView
	store     *storage.Store
	rows      []table.Row
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // user pressed back, not quit
}

// NewScoreboardModel creates a scoreboard for gameID.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		gameID: gameID,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) columns() []table.Column {
	switch m.view {
	case viewMazes:
		return []table.Column{
			{Title: "Maze", Width: 16},
			{Title: "Played", Width: 8},
			{Title: "Solved", Width: 8},
			{Title: "Best", Width: 8},
		}
	case viewRecent:
		return []table.Column{
			{Title: "Maze", Width: 16},
			{Title: "Result", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}
}

// createTable builds the table for the current view.
func (m ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, tableMinHeight)), // header, tabs and help
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

// load fetches the rows of the current view and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.loadErr = m.fetch()
	m.table = m.createTable()
}

func (m ScoreboardModel) fetch() ([]table.Row, error) {
	if m.store == nil {
		return nil, nil
	}

	var rows []table.Row
	switch m.view {
	case viewScores:
		scores, err := m.store.TopScores(m.gameID, maxScores)
		if err != nil {
			return nil, err
		}
		for i, s := range scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}

	case viewMazes:
		stats, err := m.store.MazeStatsFor(m.gameID)
		if err != nil {
			return nil, err
		}
		for _, st := range stats {
			best := "-"
			if st.Solved > 0 {
				best = formatSeconds(st.BestSeconds)
			}
			rows = append(rows, table.Row{
				mazeLabel(st.Maze),
				fmt.Sprintf("%d", st.Played),
				fmt.Sprintf("%d", st.Solved),
				best,
			})
		}

	case viewRecent:
		results, err := m.store.RecentMazeResults(m.gameID, maxRecent)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			outcome := "failed"
			if r.Solved {
				outcome = "solved"
			}
			rows = append(rows, table.Row{
				mazeLabel(r.Maze),
				outcome,
				formatSeconds(r.Seconds),
				fmt.Sprintf("%d", r.Score),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	return rows, nil
}

// mazeLabel shortens maze file paths to their base name.
func mazeLabel(name string) string {
	if strings.ContainsAny(name, `/\`) {
		return strings.TrimSuffix(filepath.Base(name), ".txt")
	}
	return name
}

func formatSeconds(s float64) string {
	total := int(s)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("BOOM - "+strings.ToUpper(m.view.String())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	for _, line := range strings.Split(boxStyle.Render(m.renderTableContent()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	inactive := dimStyle.Padding(0, 1)

	tabs := make([]string, viewCount)
	for v := range viewCount {
		if v == m.view {
			tabs[v] = active.Render(v.String())
		} else {
			tabs[v] = inactive.Render(v.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or a placeholder.
func (m ScoreboardModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return empty.Render("Cannot read scores:\n" + m.loadErr.Error())
	case len(m.rows) == 0 && m.view == viewScores:
		return empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	case len(m.rows) == 0:
		return empty.Render("No mazes played yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
