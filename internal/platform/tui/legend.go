package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// Legend layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show variant sidebar
	sidebarWidth       = 26 // Width of variant sidebar
)

// LegendKeyMap defines the key bindings for the legend screen.
type LegendKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LegendKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LegendKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultLegendKeyMap returns default key bindings.
func DefaultLegendKeyMap() LegendKeyMap {
	return LegendKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
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

// LegendModel shows what each glyph means in a variant and how often it
// appears under the variant's configuration.
type LegendModel struct {
	games       []registry.GameInfo
	cursor      int
	configPath  string
	table       table.Model
	help        help.Model
	keys        LegendKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewLegendModel creates a new legend model. configPath is the custom
// config passed on the command line, if any.
func NewLegendModel(configPath string, width, height int) LegendModel {
	h := help.New()
	h.Width = width

	m := LegendModel{
		games:       registry.List(),
		configPath:  configPath,
		keys:        DefaultLegendKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *LegendModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Entity", Width: 10},
		{Title: "Chance", Width: 7},
		{Title: "Effect", Width: 30},
	}

	tableWidth := m.width - 8
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4
	}
	if effect := tableWidth - 26; effect > 30 {
		columns[3].Width = min(effect, 44)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// loadRows fills the table for the selected variant.
func (m *LegendModel) loadRows() {
	if len(m.games) == 0 {
		m.table.SetRows(nil)
		return
	}

	id := m.games[m.cursor].ID
	cfg, err := config.LoadDoodle(m.configPath, id)
	if err != nil {
		cfg = config.DefaultFor(id)
	}
	m.table.SetRows(legendRows(cfg))
	m.table.GotoTop()
}

// legendRows lists every entity a configuration can produce.
func legendRows(cfg config.DoodleConfig) []table.Row {
	w := cfg.Platforms.Weights
	total := w.Total()
	share := func(weight float64) string {
		if total <= 0 {
			return "-"
		}
		return percent(weight / total)
	}

	var rows []table.Row
	add := func(glyph rune, name, chance, effect string) {
		rows = append(rows, table.Row{string(glyph), name, chance, effect})
	}

	if w.Normal > 0 {
		add(doodle.PlatformChar, "Platform", share(w.Normal), fmt.Sprintf("jump %.0f", -cfg.Player.JumpForce))
	}
	if w.Breakable > 0 {
		add(doodle.BreakableChar, "Breakable", share(w.Breakable), "jump once, then it breaks")
	}
	if w.Moving > 0 {
		add(doodle.MovingChar, "Moving", share(w.Moving), fmt.Sprintf("slides sideways at %.1f", cfg.Platforms.MoveSpeed))
	}
	if w.Bouncy > 0 {
		add(doodle.BouncyChar, "Bouncy", share(w.Bouncy), fmt.Sprintf("jump x%.1f", cfg.Platforms.BounceStrength))
	}

	if chance := cfg.Monsters.SpawnChance; chance > 0 {
		add(doodle.MonsterChar, "Monster", percent(chance), "ends the run unless shielded")
	}

	if chance := cfg.PowerUps.SpawnChance; chance > 0 {
		shield := time.Duration(cfg.PowerUps.ShieldDurationMS) * time.Millisecond
		jetpack := time.Duration(cfg.PowerUps.JetpackDurationMS) * time.Millisecond
		add(doodle.ShieldChar, "Shield", percent(chance/2), fmt.Sprintf("monster immunity for %s", shield))
		add(doodle.JetpackChar, "Jetpack", percent(chance/2), fmt.Sprintf("jumps x%.1f for %s", cfg.Physics.JetpackMultiplier, jetpack))
	}

	return rows
}

func percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// Init initializes the legend model.
func (m LegendModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the legend.
func (m LegendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.games) > 0 {
				m.cursor = (m.cursor + 1) % len(m.games)
				m.loadRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.games) > 0 {
				m.cursor = (m.cursor - 1 + len(m.games)) % len(m.games)
				m.loadRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the legend.
func (m LegendModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "LEGEND"
	if len(m.games) > 0 {
		title = fmt.Sprintf("LEGEND - %s", m.games[m.cursor].Title)
	}
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableView := boxStyle.Render(m.table.View())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(boxStyle), "  ", tableView))
	} else {
		b.WriteString(tableView)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the variant list.
func (m LegendModel) renderSidebar(box lipgloss.Style) string {
	var sb strings.Builder
	sb.WriteString("Variants\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, g := range m.games {
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + g.Title))
		} else {
			sb.WriteString("  " + g.Title)
		}
		sb.WriteString("\n")
	}
	return box.Width(sidebarWidth).Render(sb.String())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LegendModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LegendModel) IsQuitting() bool {
	return m.quitting
}

// RunLegend runs the legend screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunLegend(configPath string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLegendModel(configPath, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LegendModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
