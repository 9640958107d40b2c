package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitcalc/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenHeartRate Screen = iota
	ScreenPace
	ScreenPlan
	ScreenVDOT
	ScreenWeight
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	heartRate HeartRateModel
	pace      PaceModel
	plan      PlanModel
	vdot      VDOTModel
	weight    WeightModel
	help      HelpModel

	queryService *service.QueryService

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(queryService *service.QueryService) *App {
	cfg := queryService.Config()
	units := NewUnits(cfg.Display)

	return &App{
		screen:       ScreenHeartRate,
		queryService: queryService,
		heartRate:    NewHeartRateModel(queryService),
		pace:         NewPaceModel(queryService, units, 0, 0),
		plan:         NewPlanModel(queryService, units),
		vdot:         NewVDOTModel(queryService, units, 0, 0),
		weight:       NewWeightModel(queryService, cfg.Weight.PeriodDays),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.heartRate.Init(), a.vdot.Init(), a.weight.Init())
}

// editing reports whether the current screen has a form taking keystrokes
func (a *App) editing() bool {
	switch a.screen {
	case ScreenHeartRate:
		return a.heartRate.Editing()
	case ScreenPace:
		return a.pace.Editing()
	case ScreenPlan:
		return a.plan.Editing()
	case ScreenVDOT:
		return a.vdot.Editing()
	case ScreenWeight:
		return a.weight.Editing()
	}
	return false
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keybindings (unless a form is being edited)
		if !a.editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenHeartRate
				return a, nil
			case "2":
				a.screen = ScreenPace
				return a, nil
			case "3":
				a.screen = ScreenPlan
				return a, nil
			case "4":
				a.screen = ScreenVDOT
				return a, nil
			case "5":
				a.screen = ScreenWeight
				return a, a.weight.Init()
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.broadcast(msg)

	// Load results go to their screen even when another one is showing
	case zonesLoadedMsg:
		return a, a.updateScreen(ScreenHeartRate, msg)
	case vdotLoadedMsg:
		return a, a.updateScreen(ScreenVDOT, msg)
	case weightLoadedMsg:
		return a, a.updateScreen(ScreenWeight, msg)
	}

	return a, a.updateScreen(a.screen, msg)
}

// broadcast sends msg to every screen
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range []Screen{ScreenHeartRate, ScreenPace, ScreenPlan, ScreenVDOT, ScreenWeight} {
		cmds = append(cmds, a.updateScreen(s, msg))
	}
	return tea.Batch(cmds...)
}

// updateScreen delegates msg to one screen model
func (a *App) updateScreen(screen Screen, msg tea.Msg) tea.Cmd {
	var m tea.Model
	var cmd tea.Cmd

	switch screen {
	case ScreenHeartRate:
		m, cmd = a.heartRate.Update(msg)
		a.heartRate = m.(HeartRateModel)
	case ScreenPace:
		m, cmd = a.pace.Update(msg)
		a.pace = m.(PaceModel)
	case ScreenPlan:
		m, cmd = a.plan.Update(msg)
		a.plan = m.(PlanModel)
	case ScreenVDOT:
		m, cmd = a.vdot.Update(msg)
		a.vdot = m.(VDOTModel)
	case ScreenWeight:
		m, cmd = a.weight.Update(msg)
		a.weight = m.(WeightModel)
	case ScreenHelp:
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenHeartRate:
		content = a.heartRate.View()
	case ScreenPace:
		content = a.pace.View()
	case ScreenPlan:
		content = a.plan.View()
	case ScreenVDOT:
		content = a.vdot.View()
	case ScreenWeight:
		content = a.weight.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("fitcalc - Running Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Heart Rate", ScreenHeartRate},
		{"2", "Pace", ScreenPace},
		{"3", "Plan", ScreenPlan},
		{"4", "VDOT", ScreenVDOT},
		{"5", "Weight", ScreenWeight},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
