package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Heart rate zones"},
		{"2", "Pace calculator"},
		{"3", "Race plan"},
		{"4", "VDOT"},
		{"5", "Weight"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Forms", []keyHelp{
		{"e / enter", "Start editing"},
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"enter", "Calculate or save"},
		{"esc", "Stop editing (screen keys work again)"},
	}))

	sections = append(sections, m.renderSection("Screens", []keyHelp{
		{"m", "Pace: switch between solving pace, time and distance"},
		{"u", "Pace, Plan, VDOT: show km or miles"},
		{"d", "Pace, Plan, VDOT: cycle standard race distances"},
		{"s", "Heart rate: edit max/resting HR, source, formula, age, method and zone percents"},
		{"z", "Heart rate: reset zone percents to 50-60 / 60-70 / 70-80 / 80-90 / 90-100"},
		{"c", "Heart rate: drop edited settings and use the config file"},
		{"p", "Weight: cycle 30 / 90 / 365 day period"},
		{"x", "Weight: delete the entry on the date in the form"},
		{"r", "Reload"},
	}))

	sections = append(sections, m.renderTermsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTermsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Terms"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"Karvonen", "Zones as a share of heart rate reserve (max - resting) added to resting HR."},
		{"VDOT", "Daniels' running fitness score derived from a race result."},
		{"E / M / T / I / R", "Easy, Marathon, Threshold, Interval and Repetition training paces."},
		{"Trend", "Slope across the period's weigh-ins; under 0.01 kg per entry is stable."},
	}

	for _, term := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(term.name))
		lines = append(lines, "  "+helpDescStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
