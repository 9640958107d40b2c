package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcalc/internal/pace"
	"fitcalc/internal/service"
	"fitcalc/internal/vdot"
)

// planSegments is how many legs the plan form offers
const planSegments = 4

// planFieldRace is the race distance input; legs follow in km/pace pairs
const planFieldRace = 0

// restKeyword in a distance field marks the leg that covers the rest of the race
const restKeyword = "rest"

// errBlankPlan is shown when every leg of the form is empty
var errBlankPlan = errors.New("enter at least one segment")

// PlanModel is the multi-segment race plan screen model
type PlanModel struct {
	queryService *service.QueryService
	units        Units
	preset       racePreset
	form         form
	data         *service.PlanData
	err          error
}

// NewPlanModel creates a new race plan model
func NewPlanModel(qs *service.QueryService, units Units) PlanModel {
	fields := []field{{label: "Race (km)", placeholder: "42.195"}}
	for i := 1; i <= planSegments; i++ {
		fields = append(fields,
			field{label: fmt.Sprintf("Leg %d km", i), placeholder: "10 or rest"},
			field{label: fmt.Sprintf("Leg %d pace", i), placeholder: "5:00"},
		)
	}
	return PlanModel{
		queryService: qs,
		units:        units,
		preset:       newRacePreset(vdot.Distance5K),
		form:         newForm(fields...),
	}
}

// Init initializes the plan screen
func (m PlanModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to the form
func (m PlanModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.form.editing {
		cmd, submitted := m.form.update(keyMsg)
		if submitted {
			m.calculate()
		}
		return m, cmd
	}

	switch keyMsg.String() {
	case "e", "enter":
		return m, m.form.startEditing()
	case "d":
		m.form.setValue(planFieldRace, kilometres(m.preset.next()))
	case "u":
		m.units = m.units.Toggle()
	}
	return m, nil
}

func (m *PlanModel) calculate() {
	segments, err := m.segments()
	if err != nil {
		m.data, m.err = nil, err
		return
	}
	m.data, m.err = m.queryService.RacePlan(parseKm(m.form.value(planFieldRace)), segments)
}

// segments reads the legs that have anything typed in them
func (m PlanModel) segments() ([]pace.Segment, error) {
	var segments []pace.Segment
	for i := 0; i < planSegments; i++ {
		distText := m.form.value(1 + 2*i)
		paceText := m.form.value(2 + 2*i)
		if distText == "" && paceText == "" {
			continue
		}

		label := fmt.Sprintf("Leg %d", i+1)
		seg := pace.Segment{Label: label}

		if strings.EqualFold(distText, restKeyword) {
			seg.IsRest = true
		} else {
			seg.DistanceKm = parseKm(distText)
		}

		p, err := pace.ParsePace(paceText)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		seg.PaceSecPerKm = p

		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return nil, errBlankPlan
	}
	return segments, nil
}

// View renders the plan screen
func (m PlanModel) View() string {
	title := cardTitleStyle.Render("Race Plan")
	left := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.form.view()))

	var right string
	switch {
	case m.err != nil:
		right = cardStyle.Render(errorStyle.Render("Error: " + m.err.Error()))
	case m.data != nil:
		right = m.renderTotals()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		m.form.hint(`e: edit  d: race distance  u: km/mi  type "rest" as a leg distance to fill the remaining race`),
	)
}

func (m PlanModel) renderTotals() string {
	title := cardTitleStyle.Render("Plan Totals")

	lines := []string{title}
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("%-8s %-12s %-10s %s", "Leg", "Distance", "Pace", "Time")))
	for _, seg := range m.data.Segments {
		label := seg.Label
		if seg.IsRest {
			label += "*"
		}
		lines = append(lines, fmt.Sprintf("%-8s %-12s %-10s %s",
			label,
			m.units.FormatDistance(seg.DistanceKm),
			m.units.FormatPace(seg.PaceSecPerKm),
			pace.FormatTime(seg.DistanceKm*seg.PaceSecPerKm),
		))
	}

	lines = append(lines, "",
		RenderMetric("Total distance", m.units.FormatDistance(m.data.Totals.TotalDistanceKm), ""),
		RenderMetric("Finish time", m.data.Time, ""),
		RenderMetric("Average pace", m.data.AvgPace+"/km", m.units.FormatPace(m.data.Totals.AvgPaceSecPerKm)),
	)
	return cardStyle.Render(strings.Join(lines, "\n"))
}
