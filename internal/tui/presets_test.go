package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"fitcalc/internal/config"
	"fitcalc/internal/vdot"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRacePresetCycle(t *testing.T) {
	p := newRacePreset(vdot.Distance5K)

	want := []string{"5", "10", "21.0975", "42.195", "5"}
	for i, w := range want {
		if got := kilometres(p.next()); got != w {
			t.Errorf("press %d = %q, want %q", i+1, got, w)
		}
	}

	all := newRacePreset(0).startAt("5K")
	if got := meters(all.next()); got != "10000" {
		t.Errorf("after 5K = %q, want 10000", got)
	}
}

func TestPaceDistancePreset(t *testing.T) {
	m := NewPaceModel(nil, NewUnits(config.DisplayConfig{SplitUnit: "km"}), 0, 0)

	model, _ := m.Update(keyPress("d"))
	m = model.(PaceModel)
	if got := m.form.value(paceFieldDistance); got != "5" {
		t.Errorf("distance after d = %q, want 5", got)
	}

	model, _ = m.Update(keyPress("d"))
	m = model.(PaceModel)
	if got := m.form.value(paceFieldDistance); got != "10" {
		t.Errorf("distance after d d = %q, want 10", got)
	}
}

func TestPlanRacePreset(t *testing.T) {
	m := NewPlanModel(nil, NewUnits(config.DisplayConfig{SplitUnit: "km"}))

	for i := 0; i < 4; i++ {
		model, _ := m.Update(keyPress("d"))
		m = model.(PlanModel)
	}
	if got := m.form.value(planFieldRace); got != "42.195" {
		t.Errorf("race after four presses = %q, want 42.195", got)
	}
}
