package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/config"
	"tasklist/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

var filters = []string{"all", "done", "undone"}

const (
	msgEmptyInput = "Please enter a task"
	msgNotFound   = "Task not found"
)

type Model struct {
	list       *todo.List
	cfg        config.Config
	keys       keyMap
	help       help.Model
	styles     styles
	rows       []todo.RowView
	counts     todo.Counts
	cursor     int
	mode       mode
	input      textinput.Model
	edits      map[todo.TaskID]textinput.Model
	editing    todo.TaskID
	status     string
	alert      string
	filter     string
	confirmDel bool
	pendingDel *todo.RowView
}

func Run(list *todo.List, cfg config.Config) error {
	program := tea.NewProgram(New(list, cfg))
	_, err := program.Run()
	return err
}

func New(list *todo.List, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		list:   list,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		styles: newStyles(),
		input:  ti,
		edits:  map[todo.TaskID]textinput.Model{},
		mode:   modeList,
		filter: strings.ToLower(cfg.DefaultFilter),
		status: fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to edit.",
			keyLabel(cfg.Keys.Add), keyLabel(cfg.Keys.Toggle), keyLabel(cfg.Keys.Edit)),
	}
	if !validFilter(m.filter) {
		m.filter = "all"
	}
	m.patch()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.alert != "" {
			return m.updateAlert(msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.help.Width = msg.Width
	}
	return m, nil
}

// patch syncs the rows and counts the view draws with the list.
func (m *Model) patch() {
	m.rows = m.list.Rows()
	m.counts = m.list.Counts()
	m.cursor = clampCursor(m.cursor, len(m.visibleRows()))
}

func (m *Model) fail(err error) {
	switch {
	case errors.Is(err, todo.ErrEmptyInput):
		m.alert = msgEmptyInput
	case errors.Is(err, todo.ErrNotFound):
		m.alert = msgNotFound
	default:
		m.alert = err.Error()
	}
	m.status = err.Error()
	log.Printf("%v", err)
}

func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.alert = ""
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		id, err := m.list.Add(m.input.Value())
		if err != nil {
			m.fail(err)
			return m, nil
		}
		log.Printf("added %s", id)
		m.patch()
		m.cursor = m.rowIndex(id)
		m.status = "Added task"
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// The row keeps its draft and stays editing; only focus moves.
		m.blurEdit()
		m.mode = modeList
		m.status = "Row left in editing; press " + keyLabel(m.cfg.Keys.Edit) + " on it to save"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.activate(m.editing)
	default:
		in, ok := m.edits[m.editing]
		if !ok {
			m.mode = modeList
			return m, nil
		}
		var cmd tea.Cmd
		in, cmd = in.Update(msg)
		m.edits[m.editing] = in
		if err := m.list.SetDraft(m.editing, in.Value()); err != nil {
			m.fail(err)
		}
		m.patch()
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleRows()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(rows))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(rows))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.status = "Add mode: type a title and press Enter"
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.patch()
		m.status = "Showing " + m.filter
	case key.Matches(msg, m.keys.Toggle):
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[m.cursor]
		if err := m.list.Toggle(row.ID); err != nil {
			m.fail(err)
			return m, nil
		}
		log.Printf("toggled %s", row.ID)
		m.patch()
		m.status = "Toggled task"
	case key.Matches(msg, m.keys.Edit):
		if len(rows) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.activate(rows[m.cursor].ID)
	case key.Matches(msg, m.keys.Delete):
		if len(rows) == 0 {
			return m, nil
		}
		r := rows[m.cursor]
		m.confirmDel = true
		m.pendingDel = &r
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", r.Text)
	case key.Matches(msg, m.keys.Detail):
		if len(rows) == 0 {
			m.status = "No tasks"
			return m, nil
		}
		r := rows[m.cursor]
		if r.Mode == todo.Editing {
			return m.focusEdit(r.ID)
		}
		m.status = fmt.Sprintf("Task %s • %s • %s", r.ID, r.Text, humanDone(r.Completed))
	}
	return m, nil
}

// activate presses the row's edit/save control.
func (m Model) activate(id todo.TaskID) (tea.Model, tea.Cmd) {
	wasEditing := m.list.Mode(id) == todo.Editing
	if err := m.list.Activate(id); err != nil {
		m.fail(err)
		m.patch()
		return m, nil
	}
	if wasEditing {
		delete(m.edits, id)
		if m.editing == id {
			m.editing = ""
		}
		m.mode = modeList
		m.patch()
		m.cursor = m.rowIndex(id)
		m.status = "Saved task"
		log.Printf("saved %s", id)
		return m, nil
	}

	ti := textinput.New()
	ti.CharLimit = m.input.CharLimit
	ti.Width = m.input.Width
	ti.SetValue(m.list.Draft(id))
	m.edits[id] = ti
	m.patch()
	log.Printf("editing %s", id)
	return m.focusEdit(id)
}

func (m Model) focusEdit(id todo.TaskID) (tea.Model, tea.Cmd) {
	in, ok := m.edits[id]
	if !ok {
		return m, nil
	}
	m.blurEdit()
	cmd := in.Focus()
	m.edits[id] = in
	m.editing = id
	m.mode = modeEdit
	m.status = "Editing: enter to save, esc to leave"
	return m, cmd
}

func (m *Model) blurEdit() {
	in, ok := m.edits[m.editing]
	if !ok {
		return
	}
	in.Blur()
	m.edits[m.editing] = in
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		id := m.pendingDel.ID
		m.confirmDel = false
		m.pendingDel = nil
		if err := m.list.Delete(id); err != nil {
			m.fail(err)
			return m, nil
		}
		delete(m.edits, id)
		if m.editing == id {
			m.editing = ""
		}
		log.Printf("deleted %s", id)
		m.patch()
		m.status = "Deleted task"
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Tasks"))
	if m.filter != "all" {
		b.WriteString(" (" + m.filter + ")")
	}
	b.WriteString("\n\n")

	rows := m.visibleRows()
	if len(m.rows) == 0 {
		b.WriteString(fmt.Sprintf("No tasks yet. Press '%s' to add one.\n", keyLabel(m.cfg.Keys.Add)))
	} else if len(rows) == 0 {
		b.WriteString("No " + m.filter + " tasks.\n")
	} else {
		for i, r := range rows {
			b.WriteString(m.renderRow(i, r))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.counts.Render(renderCounts(m.counts)))
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString("\nAdd Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.alert.Render(m.alert + "\n\n[enter] OK"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderRow(i int, r todo.RowView) string {
	cursor := " "
	if m.cursor == i && m.mode == modeList {
		cursor = ">"
	}

	checkbox := "[ ]"
	if r.Completed {
		checkbox = "[x]"
	}

	text := r.Text
	switch {
	case r.Mode == todo.Editing:
		if in, ok := m.edits[r.ID]; ok && in.Focused() {
			text = in.View()
		} else {
			text = "✎ " + r.Draft
		}
	case r.Completed:
		text = m.styles.done.Render(text)
	}

	actions := m.styles.button.Render("["+r.Action.String()+"]") + " " + m.styles.button.Render("[delete]")
	return fmt.Sprintf("%s %s %s  %s", cursor, checkbox, text, actions)
}

func renderCounts(c todo.Counts) string {
	return fmt.Sprintf("All: %d  Done: %d  Undone: %d", c.All, c.Done, c.Undone)
}

func (m Model) visibleRows() []todo.RowView {
	if m.filter == "all" || m.filter == "" {
		return m.rows
	}
	out := make([]todo.RowView, 0, len(m.rows))
	for _, r := range m.rows {
		if r.Completed == (m.filter == "done") {
			out = append(out, r)
		}
	}
	return out
}

// rowIndex returns the visible index of id, or the current cursor if hidden.
func (m Model) rowIndex(id todo.TaskID) int {
	for i, r := range m.visibleRows() {
		if r.ID == id {
			return i
		}
	}
	return m.cursor
}

func nextFilter(f string) string {
	for i, v := range filters {
		if v == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return filters[0]
}

func validFilter(f string) bool {
	for _, v := range filters {
		if v == f {
			return true
		}
	}
	return false
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}
