package todo

type RowMode int

const (
	Display RowMode = iota
	Editing
)

func (m RowMode) String() string {
	if m == Editing {
		return "editing"
	}
	return "display"
}

// Action is the label of a row's edit/save control.
type Action int

const (
	ActionEdit Action = iota
	ActionSave
)

func (a Action) String() string {
	if a == ActionSave {
		return "save"
	}
	return "edit"
}

type RowView struct {
	ID        TaskID
	Text      string
	Completed bool
	Mode      RowMode
	Draft     string
	Action    Action
}

type rowState struct {
	mode  RowMode
	draft string
}

// RenderRow maps a task and its row state to the data a view draws.
func RenderRow(t Task, mode RowMode, draft string) RowView {
	v := RowView{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Mode:      mode,
		Action:    ActionEdit,
	}
	if mode == Editing {
		v.Draft = draft
		v.Action = ActionSave
	}
	return v
}
