package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcalc/internal/pace"
	"fitcalc/internal/service"
)

const (
	vdotFieldDistance = iota
	vdotFieldTime
)

// VDOTModel is the VDOT screen model: race in, zones and predictions out
type VDOTModel struct {
	queryService *service.QueryService
	units        Units
	form         form
	preset       racePreset
	data         *service.VDOTData
	loading      bool
	err          error
	viewport     viewport.Model
	ready        bool
}

// NewVDOTModel creates a new VDOT model
func NewVDOTModel(qs *service.QueryService, units Units, width, height int) VDOTModel {
	m := VDOTModel{
		queryService: qs,
		units:        units,
		preset:       newRacePreset(0).startAt("5K"),
		loading:      true,
		form: newForm(
			field{label: "Race distance (m)", value: "5000"},
			field{label: "Race time", placeholder: "0:20:00"},
		),
	}
	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, vdotViewportHeight(height))
		m.ready = true
	}
	return m
}

// Init loads the last saved race
func (m VDOTModel) Init() tea.Cmd {
	return m.loadLastRace
}

type vdotLoadedMsg struct {
	data *service.VDOTData
	err  error
}

func (m VDOTModel) loadLastRace() tea.Msg {
	data, err := m.queryService.LastRace()
	return vdotLoadedMsg{data: data, err: err}
}

// Editing reports whether keys are going to the form
func (m VDOTModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m VDOTModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vdotLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.data != nil {
			m.form.setValue(vdotFieldDistance, strconv.FormatFloat(m.data.Race.DistanceM, 'f', -1, 64))
			m.form.setValue(vdotFieldTime, pace.FormatTime(m.data.Race.TimeSec))
		}
		m.refresh()

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vdotViewportHeight(msg.Height))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vdotViewportHeight(msg.Height)
		}
		m.refresh()

	case tea.KeyMsg:
		if m.form.editing {
			cmd, submitted := m.form.update(msg)
			if submitted {
				m.calculate()
			}
			return m, cmd
		}
		switch msg.String() {
		case "e", "enter":
			return m, m.form.startEditing()
		case "d":
			m.form.setValue(vdotFieldDistance, meters(m.preset.next()))
			return m, nil
		case "u":
			m.units = m.units.Toggle()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *VDOTModel) calculate() {
	distanceM, err := strconv.ParseFloat(m.form.value(vdotFieldDistance), 64)
	if err != nil {
		m.data, m.err = nil, fmt.Errorf("distance must be a number of meters")
		m.refresh()
		return
	}
	timeSec, err := pace.ParseTime(m.form.value(vdotFieldTime))
	if err != nil {
		m.data, m.err = nil, err
		m.refresh()
		return
	}

	m.data, m.err = m.queryService.VDOT(distanceM, timeSec)
	m.refresh()
}

func (m *VDOTModel) refresh() {
	if m.ready {
		m.viewport.SetContent(m.renderResults())
		m.viewport.GotoTop()
	}
}

// View renders the VDOT screen
func (m VDOTModel) View() string {
	if m.loading {
		return "\n  Loading last race..."
	}

	title := cardTitleStyle.Render("Race Result")
	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render("Error: " + m.err.Error())
	case m.data != nil:
		status = RenderMetric("VDOT", fmt.Sprintf("%.1f", m.data.VDOT), m.data.Label)
	default:
		status = trendFlatStyle.Render("Enter a recent race to get training paces")
	}
	top := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.form.view(), "", status))

	parts := []string{top}
	if m.ready && m.data != nil {
		parts = append(parts, m.viewport.View())
	}
	parts = append(parts, m.form.hint("e: edit  d: next race distance  u: km/mi  j/k: scroll"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m VDOTModel) renderResults() string {
	if m.data == nil {
		return ""
	}

	var lines []string
	lines = append(lines, sectionStyle.Render("Training Paces"))
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("  %-3s %-12s %-16s %s", "", "Zone", "Pace", "Reps")))
	for _, z := range m.data.Zones {
		paceText := m.units.FormatPace(z.PaceSecPerKm)
		if z.Range != nil {
			paceText = pace.FormatPace(z.Range.FastSecPerKm*m.units.Unit().LengthKm()) + "-" + m.units.FormatPace(z.Range.SlowSecPerKm)
		}
		var reps []string
		for _, r := range z.RepTimes {
			reps = append(reps, r.Distance+" "+r.Time)
		}
		lines = append(lines, fmt.Sprintf("  %-3s %-12s %-16s %s", z.ID, z.Name, paceText, strings.Join(reps, "  ")))
	}

	lines = append(lines, "", sectionStyle.Render("Race Predictions"))
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("  %-15s %-10s %s", "Race", "Time", "Pace")))
	for _, p := range m.data.Predictions {
		paceText := "--"
		if perKm := p.PacePerKm(); !math.IsNaN(perKm) {
			paceText = m.units.FormatPace(perKm)
		}
		lines = append(lines, fmt.Sprintf("  %-15s %-10s %s", p.Label, p.Time(), paceText))
	}

	return strings.Join(lines, "\n")
}

func vdotViewportHeight(height int) int {
	h := height - 16
	if h < 3 {
		h = 3
	}
	return h
}
