package todo

import (
	"github.com/google/uuid"
)

type TaskID string

type Task struct {
	ID        TaskID
	Text      string
	Completed bool
}

type Counts struct {
	All    int
	Done   int
	Undone int
}

// IDFunc produces candidate ids for new tasks.
type IDFunc func() TaskID

// NewID derives an id from a UUIDv7, which orders by time and carries a
// monotonic sequence for ids minted within the same millisecond.
func NewID() TaskID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return TaskID("todo-id-" + id.String())
}

// Recount is a pure function over tasks.
func Recount(tasks []Task) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Done++
		}
	}
	c.Undone = c.All - c.Done
	return c
}
