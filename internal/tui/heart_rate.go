package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcalc/internal/config"
	"fitcalc/internal/hrzone"
	"fitcalc/internal/service"
)

// Settings form field order; zone percents follow hrFieldZone1 in zone order
const (
	hrFieldMax = iota
	hrFieldResting
	hrFieldSource
	hrFieldFormula
	hrFieldAge
	hrFieldMethod
	hrFieldZone1
)

// HeartRateModel is the heart rate zones screen model
type HeartRateModel struct {
	queryService *service.QueryService
	data         *service.HeartRateData
	settings     form
	lookup       form
	lookupZone   int
	looked       bool
	status       string
	loading      bool
	err          error
}

// NewHeartRateModel creates a new heart rate model
func NewHeartRateModel(qs *service.QueryService) HeartRateModel {
	fields := []field{
		{label: "Max HR (bpm)", placeholder: "185"},
		{label: "Resting HR (bpm)", placeholder: "55"},
		{label: "Max HR source", placeholder: "manual"},
		{label: "Formula", placeholder: "tanaka"},
		{label: "Age", placeholder: "35"},
		{label: "Zone method", placeholder: "karvonen"},
	}
	for i := 1; i <= hrzone.ZoneCount; i++ {
		fields = append(fields, field{label: fmt.Sprintf("Zone %d %%", i), placeholder: "50-60"})
	}

	return HeartRateModel{
		queryService: qs,
		settings:     newForm(fields...),
		lookup:       newForm(field{label: "Heart rate (bpm)", placeholder: "150"}),
		loading:      true,
	}
}

// Init initializes the heart rate screen
func (m HeartRateModel) Init() tea.Cmd {
	return m.loadZones
}

type zonesLoadedMsg struct {
	data *service.HeartRateData
	err  error
}

func (m HeartRateModel) loadZones() tea.Msg {
	data, err := m.queryService.HeartRate()
	return zonesLoadedMsg{data: data, err: err}
}

// Editing reports whether keys are going to the settings form or the bpm lookup
func (m HeartRateModel) Editing() bool {
	return m.settings.editing || m.lookup.editing
}

// Update handles messages
func (m HeartRateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case zonesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data

	case tea.KeyMsg:
		if m.settings.editing {
			cmd, submitted := m.settings.update(msg)
			if submitted {
				if err := m.saveSettings(); err != nil {
					m.status = errorStyle.Render("Error: " + err.Error())
					return m, cmd
				}
				m.settings.stopEditing()
				m.status = successStyle.Render("Saved heart rate settings")
				return m, tea.Batch(cmd, m.loadZones)
			}
			return m, cmd
		}
		if m.lookup.editing {
			cmd, submitted := m.lookup.update(msg)
			if submitted {
				m.lookupZone = m.findZone()
				m.looked = true
			}
			return m, cmd
		}
		switch msg.String() {
		case "e", "enter":
			return m, m.lookup.startEditing()
		case "s":
			if m.data == nil {
				return m, nil
			}
			m.fillSettings(m.data.Settings)
			m.status = ""
			return m, m.settings.startEditing()
		case "z":
			if m.data == nil {
				return m, nil
			}
			a := m.data.Settings
			a.ZonePercents = hrzone.DefaultPercents()
			if err := m.queryService.SaveHeartRateSettings(a); err != nil {
				m.status = errorStyle.Render("Error: " + err.Error())
				return m, nil
			}
			m.status = successStyle.Render("Zone percents reset to defaults")
			return m, m.loadZones
		case "c":
			if err := m.queryService.ClearHeartRateSettings(); err != nil {
				m.status = errorStyle.Render("Error: " + err.Error())
				return m, nil
			}
			m.status = successStyle.Render("Using the config file settings")
			return m, m.loadZones
		case "r":
			m.loading = true
			return m, m.loadZones
		}
	}
	return m, nil
}

// fillSettings copies a into the settings form
func (m *HeartRateModel) fillSettings(a config.AthleteConfig) {
	m.settings.setValue(hrFieldMax, strconv.FormatFloat(a.MaxHR, 'f', -1, 64))
	m.settings.setValue(hrFieldResting, strconv.FormatFloat(a.RestingHR, 'f', -1, 64))
	m.settings.setValue(hrFieldSource, a.HRSource)
	m.settings.setValue(hrFieldFormula, a.HRFormula)
	m.settings.setValue(hrFieldAge, strconv.Itoa(a.Age))
	m.settings.setValue(hrFieldMethod, a.ZoneMethod)
	for i, p := range a.ZonePercents {
		m.settings.setValue(hrFieldZone1+i, fmt.Sprintf("%d-%d", p.Min, p.Max))
	}
}

// readSettings parses the settings form. Range checks are left to the service.
func (m HeartRateModel) readSettings() (config.AthleteConfig, error) {
	var a config.AthleteConfig
	var err error

	if a.MaxHR, err = strconv.ParseFloat(m.settings.value(hrFieldMax), 64); err != nil {
		return a, fmt.Errorf("max HR %q is not a number", m.settings.value(hrFieldMax))
	}
	if a.RestingHR, err = strconv.ParseFloat(m.settings.value(hrFieldResting), 64); err != nil {
		return a, fmt.Errorf("resting HR %q is not a number", m.settings.value(hrFieldResting))
	}
	a.HRSource = strings.ToLower(m.settings.value(hrFieldSource))
	a.HRFormula = strings.ToLower(m.settings.value(hrFieldFormula))
	if ageText := m.settings.value(hrFieldAge); ageText != "" {
		if a.Age, err = strconv.Atoi(ageText); err != nil {
			return a, fmt.Errorf("age %q is not a whole number", ageText)
		}
	}
	a.ZoneMethod = strings.ToLower(m.settings.value(hrFieldMethod))

	for i := range a.ZonePercents {
		p, err := parsePercentRange(m.settings.value(hrFieldZone1 + i))
		if err != nil {
			return a, fmt.Errorf("zone %d: %w", i+1, err)
		}
		a.ZonePercents[i] = p
	}
	return a, nil
}

func (m *HeartRateModel) saveSettings() error {
	a, err := m.readSettings()
	if err != nil {
		return err
	}
	return m.queryService.SaveHeartRateSettings(a)
}

// parsePercentRange reads "min-max" as whole percents, e.g. "50-60"
func parsePercentRange(s string) (hrzone.Percent, error) {
	minText, maxText, ok := strings.Cut(s, "-")
	if !ok {
		return hrzone.Percent{}, fmt.Errorf("%q is not min-max", s)
	}
	lo, errLo := strconv.Atoi(strings.TrimSpace(minText))
	hi, errHi := strconv.Atoi(strings.TrimSpace(maxText))
	if errLo != nil || errHi != nil {
		return hrzone.Percent{}, fmt.Errorf("%q is not min-max", s)
	}
	return hrzone.Percent{Min: lo, Max: hi}, nil
}

// findZone returns the zone for the typed bpm, or 0 when it is outside every zone
func (m HeartRateModel) findZone() int {
	if m.data == nil {
		return 0
	}
	bpm, err := strconv.Atoi(m.lookup.value(0))
	if err != nil {
		return -1
	}

	var zones [hrzone.ZoneCount]hrzone.Zone
	for i, row := range m.data.Zones {
		zones[i] = hrzone.Zone{ID: row.ID, MinBpm: row.MinBpm, MaxBpm: row.MaxBpm}
	}
	return hrzone.ZoneFor(bpm, zones)
}

// View renders the heart rate screen
func (m HeartRateModel) View() string {
	if m.loading {
		return "\n  Loading heart rate zones..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v\n  Check the athlete section of your config file.", m.err))
	}

	if m.settings.editing {
		title := cardTitleStyle.Render("Edit Heart Rate Settings")
		return lipgloss.JoinVertical(lipgloss.Left,
			cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.settings.view())),
			"  "+m.status,
			statusStyle.Render("  tab/arrows: next field  enter: save  esc: cancel"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSettings(),
		m.renderZones(),
		m.renderLookup(),
		"  "+m.status,
		m.lookup.hint("e: look up a heart rate  s: edit settings  z: default zones  c: use config file  r: reload"),
	)
}

func (m HeartRateModel) renderSettings() string {
	title := cardTitleStyle.Render("Athlete")

	source := "manual"
	if m.data.Source == hrzone.SourceFormula {
		source = "formula (" + string(m.data.Formula) + ")"
	}
	method := "% of max HR"
	if m.data.Method == hrzone.MethodKarvonen {
		method = "Karvonen (% of reserve)"
	}

	lines := []string{
		title,
		RenderMetric("Max HR", fmt.Sprintf("%.0f bpm", m.data.MaxHR), source),
		RenderMetric("Resting HR", fmt.Sprintf("%.0f bpm", m.data.RestingHR), ""),
		RenderMetric("Zone method", method, ""),
	}
	if m.data.Saved {
		lines = append(lines, statusStyle.Render("Edited in app; c reverts to the config file"))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m HeartRateModel) renderZones() string {
	title := cardTitleStyle.Render("Training Zones")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-6s %-10s %-10s %s", "Zone", "Name", "Percent", "BPM"))
	lines := []string{title, header}

	for _, z := range m.data.Zones {
		line := fmt.Sprintf("%-6s %-10s %-10s %d - %d",
			fmt.Sprintf("Z%d", z.ID),
			z.Name,
			fmt.Sprintf("%d-%d%%", z.Percent.Min, z.Percent.Max),
			z.MinBpm, z.MaxBpm,
		)
		lines = append(lines, zoneStyle(z.ID).Render(line))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m HeartRateModel) renderLookup() string {
	result := ""
	switch {
	case m.lookupZone > 0:
		result = zoneStyle(m.lookupZone).Render(fmt.Sprintf("Zone %d - %s", m.lookupZone, hrzone.ZoneName(m.lookupZone)))
	case m.lookupZone < 0:
		result = errorStyle.Render("Enter a whole number of beats per minute")
	case m.looked:
		result = trendFlatStyle.Render("Outside all zones")
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", m.lookup.view(), "  "+result)
}
