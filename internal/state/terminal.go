package state

import "github.com/jask/charon/internal/models"

// TerminalState is the task history for the active ghost plus the command line.
type TerminalState struct {
	Tasks []models.Task
	// Cursor is nil iff Tasks is empty. It clamps, it never wraps.
	Cursor      *int
	InputBuffer string
	// ActiveGhostID is a lookup key into the dashboard roster, not an owner.
	ActiveGhostID *string
}

// SetTasks replaces the history. A longer list scrolls to the newest entry.
func (t *TerminalState) SetTasks(tasks []models.Task) {
	grew := len(tasks) > len(t.Tasks)
	t.Tasks = tasks
	if grew {
		t.ScrollToBottom()
		return
	}
	t.Cursor = clampCursor(t.Cursor, len(tasks))
}

func (t *TerminalState) ScrollDown() {
	if len(t.Tasks) == 0 {
		return
	}
	i := 0
	if t.Cursor != nil {
		i = *t.Cursor
		if i < len(t.Tasks)-1 {
			i++
		}
	}
	t.Cursor = &i
}

func (t *TerminalState) ScrollUp() {
	if len(t.Tasks) == 0 {
		return
	}
	i := 0
	if t.Cursor != nil && *t.Cursor > 0 {
		i = *t.Cursor - 1
	}
	t.Cursor = &i
}

func (t *TerminalState) ScrollToBottom() {
	if len(t.Tasks) == 0 {
		t.Cursor = nil
		return
	}
	i := len(t.Tasks) - 1
	t.Cursor = &i
}

// SetActiveGhost records id as the ghost the terminal talks to.
func (t *TerminalState) SetActiveGhost(id string) {
	t.ActiveGhostID = &id
}
