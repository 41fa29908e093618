package todo

import (
	"fmt"
	"strings"
)

// List owns the tasks of one session and the view state of their rows.
// It is not safe for concurrent use; callers dispatch events one at a time.
type List struct {
	tasks  []Task
	rows   map[TaskID]*rowState
	issued map[TaskID]struct{}
	newID  IDFunc
	seq    int
}

type Option func(*List)

func WithIDFunc(fn IDFunc) Option {
	return func(l *List) {
		if fn != nil {
			l.newID = fn
		}
	}
}

func New(opts ...Option) *List {
	l := &List{
		rows:   map[TaskID]*rowState{},
		issued: map[TaskID]struct{}{},
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List) Add(raw string) (TaskID, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", &ValidationError{Op: "add"}
	}
	id := l.nextID()
	l.tasks = append(l.tasks, Task{ID: id, Text: text})
	l.rows[id] = &rowState{mode: Display}
	return id, nil
}

// nextID never hands out an id twice, even for ids whose task was deleted.
func (l *List) nextID() TaskID {
	id := l.newID()
	for {
		if _, taken := l.issued[id]; !taken && id != "" {
			break
		}
		l.seq++
		id = TaskID(fmt.Sprintf("%s-%d", id, l.seq))
	}
	l.issued[id] = struct{}{}
	return id
}

func (l *List) Toggle(id TaskID) error {
	i := l.index(id)
	if i < 0 {
		return &LookupError{Op: "toggle", ID: id}
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return nil
}

// BeginEdit switches a row to editing with the current text as its draft.
// A row that is already editing keeps its draft.
func (l *List) BeginEdit(id TaskID) error {
	i := l.index(id)
	if i < 0 {
		return &LookupError{Op: "edit", ID: id}
	}
	st := l.row(id)
	if st.mode == Editing {
		return nil
	}
	st.mode = Editing
	st.draft = l.tasks[i].Text
	return nil
}

func (l *List) SetDraft(id TaskID, text string) error {
	if l.index(id) < 0 || l.row(id).mode != Editing {
		return &LookupError{Op: "draft", ID: id}
	}
	l.row(id).draft = text
	return nil
}

// Commit saves the draft of an editing row. An empty draft leaves the row
// editing with the draft untouched.
func (l *List) Commit(id TaskID) error {
	i := l.index(id)
	if i < 0 || l.row(id).mode != Editing {
		return &LookupError{Op: "save", ID: id}
	}
	st := l.row(id)
	text := strings.TrimSpace(st.draft)
	if text == "" {
		return &ValidationError{Op: "save"}
	}
	l.tasks[i].Text = text
	st.mode = Display
	st.draft = ""
	return nil
}

// Activate runs the row's edit/save control according to its mode.
func (l *List) Activate(id TaskID) error {
	if l.Mode(id) == Editing {
		return l.Commit(id)
	}
	return l.BeginEdit(id)
}

func (l *List) Delete(id TaskID) error {
	i := l.index(id)
	if i < 0 {
		return &LookupError{Op: "delete", ID: id}
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	delete(l.rows, id)
	return nil
}

func (l *List) Counts() Counts {
	return Recount(l.tasks)
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Get(id TaskID) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Mode reports Display for unknown ids.
func (l *List) Mode(id TaskID) RowMode {
	if st, ok := l.rows[id]; ok {
		return st.mode
	}
	return Display
}

func (l *List) Draft(id TaskID) string {
	if st, ok := l.rows[id]; ok {
		return st.draft
	}
	return ""
}

func (l *List) Rows() []RowView {
	views := make([]RowView, 0, len(l.tasks))
	for _, t := range l.tasks {
		st := l.row(t.ID)
		views = append(views, RenderRow(t, st.mode, st.draft))
	}
	return views
}

func (l *List) index(id TaskID) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *List) row(id TaskID) *rowState {
	st, ok := l.rows[id]
	if !ok {
		st = &rowState{mode: Display}
		l.rows[id] = st
	}
	return st
}
