package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field describes one text input on a form
type field struct {
	label       string
	placeholder string
	value       string
}

// form is a column of labelled text inputs. While editing, keys go to the
// focused input and the app's global shortcuts are suspended.
type form struct {
	labels  []string
	inputs  []textinput.Model
	focus   int
	editing bool
}

func newForm(fields ...field) form {
	f := form{}
	for _, fd := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 16
		ti.Width = 16
		ti.SetValue(fd.value)
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// startEditing focuses the current input
func (f *form) startEditing() tea.Cmd {
	f.editing = true
	return f.inputs[f.focus].Focus()
}

// stopEditing blurs every input
func (f *form) stopEditing() {
	f.editing = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update routes a key to the form. submitted reports that enter was pressed.
func (f *form) update(msg tea.KeyMsg) (cmd tea.Cmd, submitted bool) {
	switch msg.String() {
	case "esc":
		f.stopEditing()
		return nil, false
	case "enter":
		return nil, true
	case "tab", "down":
		return f.move(1), false
	case "shift+tab", "up":
		return f.move(-1), false
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}

func (f form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f form) view() string {
	var lines []string
	for i, in := range f.inputs {
		label := metricLabelStyle.Render(f.labels[i])
		if f.editing && i == f.focus {
			label = navActiveStyle.Width(20).Render("> " + f.labels[i])
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, label, in.View()))
	}
	return strings.Join(lines, "\n")
}

// hint is the key reminder shown under a form
func (f form) hint(idle string) string {
	if f.editing {
		return statusStyle.Render("  tab/arrows: next field  enter: calculate  esc: done")
	}
	return statusStyle.Render("  " + idle)
}
