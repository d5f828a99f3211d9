// ABOUTME: Bubble Tea result viewer with report, enhanced-prompt, and pattern tabs
// ABOUTME: Read-only pager; the pipeline has already run before the TUI starts

package interactive

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/promptiq-go/internal/mode/print"
	"github.com/mauromedda/promptiq-go/internal/optimizer"
)

// tab indexes into tabTitles.
type tab int

const (
	tabReport tab = iota
	tabEnhanced
	tabPatterns
)

var tabTitles = []string{"Report", "Enhanced", "Patterns"}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model for browsing one optimization result.
type Model struct {
	res optimizer.Result

	active        tab
	offset        int // scroll offset within the active tab
	width, height int

	enhanced *mdCache
}

// New builds a viewer model for res.
func New(res optimizer.Result) Model {
	return Model{
		res:      res,
		enhanced: newMDCache(res.Enhanced),
		width:    80,
		height:   24,
	}
}

// Run blocks until the user quits the viewer.
func Run(res optimizer.Result) error {
	_, err := tea.NewProgram(New(res), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % tab(len(tabTitles))
			m.offset = 0
		case "shift+tab", "left", "h":
			m.active = (m.active + tab(len(tabTitles)) - 1) % tab(len(tabTitles))
			m.offset = 0
		case "down", "j":
			m.offset++
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "g":
			m.offset = 0
		}
	}
	return m, nil
}

func (m Model) View() string {
	body := m.clipped(m.content())
	return m.tabBar() + "\n\n" + body + "\n" +
		helpStyle.Render("tab/←→ switch · j/k scroll · q quit")
}

// content returns the full (unclipped) text of the active tab.
func (m Model) content() string {
	switch m.active {
	case tabEnhanced:
		return m.enhanced.at(m.width - 2)
	case tabPatterns:
		return m.patternsView()
	default:
		var sb strings.Builder
		// Same report the non-interactive path prints, always verbose here.
		_ = print.Run(&sb, m.res, print.Config{Format: "text", Verbose: true, Color: true})
		return sb.String()
	}
}

// clipped windows text to the viewport, honoring the scroll offset.
func (m Model) clipped(text string) string {
	lines := strings.Split(text, "\n")
	visible := m.height - 4 // tab bar, spacing, help line
	if visible < 1 {
		visible = 1
	}

	offset := m.offset
	if max := len(lines) - visible; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}

	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func (m Model) tabBar() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.active {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = inactiveTabStyle.Render(title)
		}
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) patternsView() string {
	if len(m.res.AppliedPatterns) == 0 && len(m.res.Skipped) == 0 {
		return "No patterns applied."
	}

	var sb strings.Builder
	for _, p := range m.res.AppliedPatterns {
		fmt.Fprintf(&sb, "%s (%s impact)\n  %s\n\n", p.Name, p.Impact, p.Description)
	}
	for _, note := range m.res.Skipped {
		fmt.Fprintf(&sb, "skipped: %s\n", note)
	}
	return strings.TrimRight(sb.String(), "\n")
}
