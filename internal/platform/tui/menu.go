package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boom/internal/config"
	"github.com/vovakirdan/tui-boom/internal/core"
	"github.com/vovakirdan/tui-boom/internal/games/boom"
	"github.com/vovakirdan/tui-boom/internal/storage"
)

// menuItem is one row of the main menu.
type menuItem int

const (
	itemPlay menuItem = iota
	itemPlayers
	itemLevel
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

var difficultyCycle = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the boom start menu.
type MenuModel struct {
	cursor    menuItem
	width     int
	height    int
	levels    []string
	options   boom.Options
	highScore int
	config    core.RuntimeConfig
	keys      MenuKeyMap
	help      help.Model
	quitting  bool
	play      bool
	scores    bool
}

// NewMenuModel creates the start menu. levels names the mazes a game can
// start from; opts holds the initial choices.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, levels []string, opts boom.Options) MenuModel {
	m := MenuModel{
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		levels:  levels,
		options: opts,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
	if m.options.StartLevel < 1 || m.options.StartLevel > len(levels) {
		m.options.StartLevel = 1
	}
	if store != nil {
		if hs, err := store.HighScore(boom.ID); err == nil {
			m.highScore = hs
		}
	}
	m.help.Width = cfg.ScreenW
	return m
}

// LevelNames lists the mazes of the configured level list.
func LevelNames(cfg config.BoomConfig) []string {
	names := make([]string, len(cfg.Levels))
	for i, l := range cfg.Levels {
		names[i] = l.Maze
	}
	return names
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount

	case MenuActionLeft:
		m.change(-1)

	case MenuActionRight:
		m.change(1)

	case MenuActionScoreboard:
		m.scores = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			m.play = true
			return m, tea.Quit
		case itemScores:
			m.scores = true
			return m, tea.Quit
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.change(1)
		}
	}
	return m, nil
}

// change cycles the option under the cursor.
func (m *MenuModel) change(delta int) {
	switch m.cursor {
	case itemPlayers:
		m.options.TwoPlayers = !m.options.TwoPlayers
	case itemLevel:
		if n := len(m.levels); n > 0 {
			m.options.StartLevel = (m.options.StartLevel-1+delta+n)%n + 1
		}
	case itemDifficulty:
		i := 0
		for j, p := range difficultyCycle {
			if p == m.options.Difficulty {
				i = j
			}
		}
		n := len(difficultyCycle)
		m.options.Difficulty = difficultyCycle[(i+delta+n)%n]
	}
}

func (m MenuModel) label(item menuItem) string {
	switch item {
	case itemPlay:
		return "Play"
	case itemPlayers:
		if m.options.TwoPlayers {
			return "Players: < 2 >"
		}
		return "Players: < 1 >"
	case itemLevel:
		name := "-"
		if i := m.options.StartLevel - 1; i >= 0 && i < len(m.levels) {
			name = m.levels[i]
		}
		return fmt.Sprintf("Start level: < %d %s >", m.options.StartLevel, name)
	case itemDifficulty:
		d := string(m.options.Difficulty)
		if d == "" {
			d = "config"
		}
		return fmt.Sprintf("Difficulty: < %s >", d)
	case itemScores:
		return "High scores"
	case itemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B O O M"), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("high score %07d", m.highScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i := range itemCount {
		line := "  " + m.label(i)
		if i == m.cursor {
			line = cursorStyle.Render("> " + m.label(i))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Options returns the choices made so far.
func (m MenuModel) Options() boom.Options {
	return m.options
}

// WantsPlay returns true if the user started a game.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scores
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring its printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Options         boom.Options
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, levels []string, opts boom.Options) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, levels, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Options: opts}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Options: opts, Quit: true}, nil
	}

	return MenuResult{
		Options:         m.Options(),
		Config:          m.Config(),
		Play:            m.WantsPlay(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting() || (!m.WantsPlay() && !m.WantsScoreboard()),
	}, nil
}
