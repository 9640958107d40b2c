package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fitcalc/internal/service"
	"fitcalc/internal/weight"
)

const (
	weightFieldDate = iota
	weightFieldKg
	weightFieldTarget
)

// clearKeyword in the target field removes the saved target
const clearKeyword = "clear"

// WeightModel is the weight trend screen model
type WeightModel struct {
	queryService *service.QueryService
	period       int
	form         form
	data         *service.WeightData
	loading      bool
	err          error
	status       string
	now          func() time.Time
}

// NewWeightModel creates a new weight model
func NewWeightModel(qs *service.QueryService, periodDays int) WeightModel {
	m := WeightModel{
		queryService: qs,
		period:       weight.NormalizePeriod(periodDays),
		loading:      true,
		now:          time.Now,
	}
	m.form = newForm(
		field{label: "Date", value: m.now().Format(weight.DateLayout)},
		field{label: "Weight (kg)", placeholder: "80.5"},
		field{label: "Target (kg)", placeholder: "75 or clear"},
	)
	return m
}

// Init initializes the weight screen
func (m WeightModel) Init() tea.Cmd {
	return m.loadWeights
}

type weightLoadedMsg struct {
	data *service.WeightData
	err  error
}

func (m WeightModel) loadWeights() tea.Msg {
	data, err := m.queryService.Weight(m.period, m.now())
	return weightLoadedMsg{data: data, err: err}
}

// Editing reports whether keys are going to the form
func (m WeightModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m WeightModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weightLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data

	case tea.KeyMsg:
		if m.form.editing {
			cmd, submitted := m.form.update(msg)
			if submitted {
				if err := m.save(); err != nil {
					m.status = errorStyle.Render("Error: " + err.Error())
					return m, cmd
				}
				return m, tea.Batch(cmd, m.loadWeights)
			}
			return m, cmd
		}
		switch msg.String() {
		case "e", "enter":
			return m, m.form.startEditing()
		case "p":
			m.period = weight.NextPeriod(m.period)
			return m, m.loadWeights
		case "x":
			if err := m.deleteEntry(); err != nil {
				m.status = errorStyle.Render("Error: " + err.Error())
				return m, nil
			}
			return m, m.loadWeights
		case "r":
			m.loading = true
			return m, m.loadWeights
		}
	}
	return m, nil
}

// save writes whatever the form holds: a weigh-in, a target, or both
func (m *WeightModel) save() error {
	date, err := weight.ParseDate(m.form.value(weightFieldDate))
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	var saved []string
	if kgText := m.form.value(weightFieldKg); kgText != "" {
		kg, err := strconv.ParseFloat(kgText, 64)
		if err != nil {
			return fmt.Errorf("weight %q is not a number", kgText)
		}
		if err := m.queryService.AddWeight(date, kg); err != nil {
			return err
		}
		m.form.setValue(weightFieldKg, "")
		saved = append(saved, fmt.Sprintf("%.1f kg on %s", kg, date.Format(weight.DateLayout)))
	}

	if targetText := m.form.value(weightFieldTarget); targetText != "" {
		var target *float64
		if !strings.EqualFold(targetText, clearKeyword) {
			kg, err := strconv.ParseFloat(targetText, 64)
			if err != nil {
				return fmt.Errorf("target %q is not a number", targetText)
			}
			target = &kg
		}
		if err := m.queryService.SetTargetWeight(target); err != nil {
			return err
		}
		m.form.setValue(weightFieldTarget, "")
		saved = append(saved, "target")
	}

	if len(saved) == 0 {
		return errors.New("nothing to save")
	}
	m.status = successStyle.Render("Saved " + strings.Join(saved, " and "))
	return nil
}

func (m *WeightModel) deleteEntry() error {
	date, err := weight.ParseDate(m.form.value(weightFieldDate))
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if err := m.queryService.DeleteWeight(date); err != nil {
		return err
	}
	m.status = successStyle.Render("Deleted " + date.Format(weight.DateLayout))
	return nil
}

// View renders the weight screen
func (m WeightModel) View() string {
	if m.loading {
		return "\n  Loading weight log..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.renderStats(), "  ", m.renderForm())
	parts := []string{top, m.renderChart()}
	if m.status != "" {
		parts = append(parts, "  "+m.status)
	}
	parts = append(parts, m.form.hint("e: add weigh-in / set target  p: period  x: delete entry on date  r: refresh"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m WeightModel) renderStats() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Last %d Days", m.data.PeriodDays))
	stats := m.data.Stats

	if !stats.HasData() {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			"No weigh-ins in this period.",
			trendFlatStyle.Render("Press e to add one or run fitcalc -import file.csv"),
		))
	}

	lines := []string{
		title,
		RenderMetric("Current", kg(stats.Current), trendArrow(stats.Trend)),
		RenderMetric("Average", kg(stats.Avg), ""),
		RenderMetric("Range", kg(stats.Min)+" - "+kg(stats.Max), ""),
	}
	if m.data.TargetKg != nil {
		lines = append(lines, RenderMetric("Target", kg(m.data.TargetKg), signedKg(stats.DeltaFromTarget)))
	}
	if m.data.LastWeighIn != "" {
		lines = append(lines, RenderMetric("Last weigh-in", m.data.LastWeighIn, ""))
	}
	lines = append(lines, RenderMetric("Log", m.data.EntryCount, ""))
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m WeightModel) renderForm() string {
	title := cardTitleStyle.Render("Log")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.form.view()))
}

func (m WeightModel) renderChart() string {
	title := cardTitleStyle.Render("Weight Trend")

	if len(m.data.Samples) < 2 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Need at least two weigh-ins to draw a chart"))
	}

	values := make([]float64, 0, len(m.data.Samples))
	for _, s := range m.data.Samples {
		values = append(values, s.WeightKg)
	}
	if len(values) > service.ChartMaxPoints {
		values = values[len(values)-service.ChartMaxPoints:]
	}

	opts := []asciigraph.Option{
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	}
	if m.data.TargetKg != nil {
		opts = append(opts, asciigraph.LowerBound(*m.data.TargetKg))
	}

	graph := asciigraph.Plot(values, opts...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func kg(v *float64) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.1f kg", *v)
}

func signedKg(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%+.1f kg", *v)
}

func trendArrow(t weight.Trend) string {
	switch t {
	case weight.TrendRising:
		return "↑ rising"
	case weight.TrendFalling:
		return "↓ falling"
	case weight.TrendStable:
		return "stable"
	default:
		return ""
	}
}
