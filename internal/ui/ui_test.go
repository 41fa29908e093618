package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/config"
	"tasklist/internal/todo"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *todo.List) {
	t.Helper()
	list := todo.New()
	return New(list, config.Default()), list
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("expected ui.Model, got %T", next)
		}
	}
	return m
}

func TestNew_StartsWithZeroCounts(t *testing.T) {
	m, _ := newTestModel(t)
	if m.counts != (todo.Counts{}) {
		t.Errorf("expected zero counts, got %+v", m.counts)
	}
	if !strings.Contains(m.View(), "All: 0  Done: 0  Undone: 0") {
		t.Errorf("expected counts line in view:\n%s", m.View())
	}
}

func TestAddFlow(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("Buy milk"), enter)

	if list.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", list.Len())
	}
	if got := list.Tasks()[0].Text; got != "Buy milk" {
		t.Errorf("expected text %q, got %q", "Buy milk", got)
	}
	if m.counts != (todo.Counts{All: 1, Done: 0, Undone: 1}) {
		t.Errorf("unexpected counts %+v", m.counts)
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
	if !m.input.Focused() || m.mode != modeAdd {
		t.Error("expected add field to keep focus")
	}
	if len(m.rows) != 1 || m.rows[0].Text != "Buy milk" {
		t.Errorf("expected row patched into view, got %+v", m.rows)
	}
}

func TestAddFlow_BlankShowsAlert(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("   "), enter)

	if list.Len() != 0 {
		t.Fatalf("expected no task, got %d", list.Len())
	}
	if m.alert != msgEmptyInput {
		t.Errorf("expected alert %q, got %q", msgEmptyInput, m.alert)
	}
	if m.input.Value() != "   " {
		t.Errorf("expected input retained, got %q", m.input.Value())
	}
	if !strings.Contains(m.View(), msgEmptyInput) {
		t.Error("expected alert rendered in view")
	}

	// The modal swallows keys until dismissed.
	m = send(t, m, runes("x"))
	if m.alert == "" {
		t.Fatal("expected alert to stay up")
	}
	if m.input.Value() != "   " {
		t.Errorf("expected key swallowed, got %q", m.input.Value())
	}
	m = send(t, m, enter)
	if m.alert != "" {
		t.Errorf("expected alert dismissed, got %q", m.alert)
	}
	if list.Len() != 0 {
		t.Error("expected dismissal not to add a task")
	}
}

func TestAddFlow_CancelClearsInput(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("half"), esc)
	if m.mode != modeList {
		t.Errorf("expected list mode, got %v", m.mode)
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
	if list.Len() != 0 {
		t.Error("expected nothing added")
	}
}

func TestToggleFlow(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, esc, space)

	if !list.Tasks()[0].Completed {
		t.Fatal("expected task completed")
	}
	if m.counts != (todo.Counts{All: 1, Done: 1, Undone: 0}) {
		t.Errorf("unexpected counts %+v", m.counts)
	}
	if !strings.Contains(m.View(), "[x]") {
		t.Error("expected checked box in view")
	}

	m = send(t, m, space)
	if list.Tasks()[0].Completed {
		t.Fatal("expected task incomplete again")
	}
	if m.counts != (todo.Counts{All: 1, Done: 0, Undone: 1}) {
		t.Errorf("unexpected counts %+v", m.counts)
	}
}

func TestToggleFlow_StaleRowShowsNotFound(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, esc)

	// Remove the task behind the view's back so the row is stale.
	_ = list.Delete(list.Tasks()[0].ID)
	m = send(t, m, space)

	if m.alert != msgNotFound {
		t.Errorf("expected alert %q, got %q", msgNotFound, m.alert)
	}
}

func TestEditFlow(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, esc, space)
	id := list.Tasks()[0].ID
	before := m.counts

	m = send(t, m, runes("e"))
	if m.mode != modeEdit || m.editing != id {
		t.Fatalf("expected edit mode on %s, got mode %v editing %q", id, m.mode, m.editing)
	}
	if list.Mode(id) != todo.Editing {
		t.Fatal("expected row editing")
	}
	if got := m.edits[id].Value(); got != "A" {
		t.Errorf("expected field prefilled with %q, got %q", "A", got)
	}
	if m.rows[0].Action != todo.ActionSave {
		t.Errorf("expected save control, got %v", m.rows[0].Action)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("B"), enter)

	task, _ := list.Get(id)
	if task.Text != "B" {
		t.Errorf("expected text B, got %q", task.Text)
	}
	if list.Mode(id) != todo.Display || m.mode != modeList {
		t.Error("expected row and model back in display/list mode")
	}
	if _, ok := m.edits[id]; ok {
		t.Error("expected edit field removed")
	}
	if m.rows[0].Action != todo.ActionEdit {
		t.Errorf("expected edit control, got %v", m.rows[0].Action)
	}
	if m.counts != before {
		t.Errorf("expected counts unchanged %+v, got %+v", before, m.counts)
	}
}

func TestEditFlow_BlankCommitStaysEditing(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, esc, runes("e"))
	id := list.Tasks()[0].ID

	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, enter)

	if m.alert != msgEmptyInput {
		t.Errorf("expected alert %q, got %q", msgEmptyInput, m.alert)
	}
	task, _ := list.Get(id)
	if task.Text != "A" {
		t.Errorf("expected text unchanged, got %q", task.Text)
	}
	if list.Mode(id) != todo.Editing {
		t.Error("expected row to remain editing")
	}
	m = send(t, m, enter)
	if m.mode != modeEdit {
		t.Errorf("expected to stay in edit mode after dismissing, got %v", m.mode)
	}
}

func TestEditFlow_LeaveRowEditing(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, runes("B"), enter, esc)
	first := list.Tasks()[0].ID
	second := list.Tasks()[1].ID

	// Start editing the second row, step out, then edit the first as well.
	m = send(t, m, runes("e"), esc, runes("k"), runes("e"))
	if list.Mode(first) != todo.Editing || list.Mode(second) != todo.Editing {
		t.Fatal("expected both rows editing at once")
	}
	if m.edits[second].Focused() {
		t.Error("expected only the active row focused")
	}

	// Pressing edit on an editing row saves it.
	m = send(t, m, runes("!"), esc, runes("j"), runes("e"))
	if list.Mode(second) != todo.Display {
		t.Errorf("expected second row saved, got %v", list.Mode(second))
	}
	if list.Mode(first) != todo.Editing {
		t.Error("expected first row still editing")
	}

	// Enter on an editing row refocuses its field.
	m = send(t, m, runes("k"), enter)
	if m.mode != modeEdit || m.editing != first {
		t.Errorf("expected focus back on first row, got mode %v editing %q", m.mode, m.editing)
	}
	m = send(t, m, enter)
	task, _ := list.Get(first)
	if task.Text != "A!" {
		t.Errorf("expected text A!, got %q", task.Text)
	}
}

func TestDeleteFlow(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, runes("B"), enter, esc)

	m = send(t, m, runes("d"))
	if !m.confirmDel {
		t.Fatal("expected delete confirmation")
	}
	m = send(t, m, runes("n"))
	if list.Len() != 2 {
		t.Fatalf("expected cancel to keep tasks, got %d", list.Len())
	}

	m = send(t, m, runes("d"), runes("y"))
	if list.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", list.Len())
	}
	if list.Tasks()[0].Text != "A" {
		t.Errorf("expected B deleted, got %+v", list.Tasks())
	}
	if m.counts != (todo.Counts{All: 1, Done: 0, Undone: 1}) {
		t.Errorf("unexpected counts %+v", m.counts)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}
}

func TestFilter(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("a"), runes("A"), enter, runes("B"), enter, esc, space)

	m = send(t, m, runes("f"))
	if m.filter != "done" {
		t.Fatalf("expected done filter, got %q", m.filter)
	}
	rows := m.visibleRows()
	if len(rows) != 1 || rows[0].Text != "B" {
		t.Errorf("expected only B visible, got %+v", rows)
	}
	if m.counts != (todo.Counts{All: 2, Done: 1, Undone: 1}) {
		t.Errorf("expected counts over the whole list, got %+v", m.counts)
	}

	m = send(t, m, runes("f"))
	rows = m.visibleRows()
	if m.filter != "undone" || len(rows) != 1 || rows[0].Text != "A" {
		t.Errorf("expected only A visible under undone, got %q %+v", m.filter, rows)
	}

	m = send(t, m, runes("f"))
	if m.filter != "all" || len(m.visibleRows()) != 2 {
		t.Errorf("expected all rows, got %q", m.filter)
	}
}

func TestNew_DefaultFilterFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultFilter = "Undone"
	m := New(todo.New(), cfg)
	if m.filter != "undone" {
		t.Errorf("expected undone, got %q", m.filter)
	}
	cfg.DefaultFilter = "bogus"
	if m := New(todo.New(), cfg); m.filter != "all" {
		t.Errorf("expected fallback to all, got %q", m.filter)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestQuitKeyIsTextInAddMode(t *testing.T) {
	m, list := newTestModel(t)
	m = send(t, m, runes("a"), runes("q"), enter)
	if list.Len() != 1 || list.Tasks()[0].Text != "q" {
		t.Errorf("expected task q, got %+v", list.Tasks())
	}
}

func TestView_EmptyList(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(m.View(), "No tasks yet") {
		t.Errorf("expected empty hint in view:\n%s", m.View())
	}
}
