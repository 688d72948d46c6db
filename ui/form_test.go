package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	digitalavator "github.com/CMouse123456/DigitalAvator"
)

func TestParamClampsAtRangeEnds(t *testing.T) {
	p := param{label: "Contrast", value: 2.9, min: 0.5, max: 3.0, step: 0.1}

	p.increase()
	if p.value != 3.0 {
		t.Errorf("Expected 3.0, got %v", p.value)
	}
	p.increase()
	if p.value != 3.0 {
		t.Errorf("Increase past max should clamp at 3.0, got %v", p.value)
	}

	for i := 0; i < 100; i++ {
		p.decrease()
	}
	if p.value != 0.5 {
		t.Errorf("Decrease past min should clamp at 0.5, got %v", p.value)
	}
}

func TestParamDisplay(t *testing.T) {
	intParam := param{value: 200, integer: true}
	if got := intParam.display(); got != "200" {
		t.Errorf("Expected \"200\", got %q", got)
	}
	floatParam := param{value: 1.2}
	if got := floatParam.display(); got != "1.2" {
		t.Errorf("Expected \"1.2\", got %q", got)
	}
}

func TestGenerateDisabledWhileBusy(t *testing.T) {
	m := New(DefaultStyles())
	m.cursor = rowGenerate
	m.busy = true

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Enter while busy must not dispatch another worker")
	}
	if !updated.(Model).busy {
		t.Error("Model should stay busy until the worker reports back")
	}
}

func TestDoneMsgReenablesTrigger(t *testing.T) {
	m := New(DefaultStyles())
	m.busy = true

	updated, _ := m.Update(doneMsg{err: errors.New("boom")})
	got := updated.(Model)
	if got.busy {
		t.Error("Failure should re-enable the generate trigger")
	}
	if !got.failed {
		t.Error("Failure should mark the status as an error")
	}

	m = got
	m.busy = true
	updated, _ = m.Update(doneMsg{result: &digitalavator.Result{
		Lines: []string{"abc"},
	}})
	got = updated.(Model)
	if got.busy || got.failed {
		t.Error("Success should clear both busy and failed")
	}
}

func TestToggleRows(t *testing.T) {
	m := New(DefaultStyles())
	m.cursor = rowSaveText

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := updated.(Model)
	if got.toggles[1] {
		t.Error("Space should flip the save-text toggle off")
	}
	if !got.toggles[0] || !got.toggles[2] {
		t.Error("Other toggles must be untouched")
	}
}

func TestCursorWraps(t *testing.T) {
	m := New(DefaultStyles())
	m.cursor = 0

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := updated.(Model); got.cursor != rowCount-1 {
		t.Errorf("Cursor should wrap to last row, got %d", got.cursor)
	}
}
