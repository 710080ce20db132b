package state

import "github.com/jask/charon/internal/models"

// DashboardState is the ghost roster and its selection cursor.
type DashboardState struct {
	Ghosts []models.Ghost
	// Cursor is nil iff Ghosts is empty.
	Cursor *int
}

// SetGhosts replaces the roster wholesale and keeps the cursor valid.
func (d *DashboardState) SetGhosts(ghosts []models.Ghost) {
	d.Ghosts = ghosts
	d.Cursor = clampCursor(d.Cursor, len(ghosts))
}

// SelectNext moves the cursor down, wrapping to the top.
func (d *DashboardState) SelectNext() {
	if len(d.Ghosts) == 0 {
		return
	}
	i := 0
	if d.Cursor != nil && *d.Cursor < len(d.Ghosts)-1 {
		i = *d.Cursor + 1
	}
	d.Select(i)
}

// SelectPrev moves the cursor up, wrapping to the bottom.
func (d *DashboardState) SelectPrev() {
	if len(d.Ghosts) == 0 {
		return
	}
	i := len(d.Ghosts) - 1
	if d.Cursor == nil {
		i = 0
	} else if *d.Cursor > 0 {
		i = *d.Cursor - 1
	}
	d.Select(i)
}

// Select points the cursor at i. Out of range indexes are ignored.
func (d *DashboardState) Select(i int) {
	if i < 0 || i >= len(d.Ghosts) {
		return
	}
	d.Cursor = &i
}

// Selected returns the ghost under the cursor.
func (d *DashboardState) Selected() (models.Ghost, bool) {
	if d.Cursor == nil || *d.Cursor >= len(d.Ghosts) {
		return models.Ghost{}, false
	}
	return d.Ghosts[*d.Cursor], true
}

// SelectedID returns the id under the cursor, or "" if nothing is selected.
func (d *DashboardState) SelectedID() string {
	g, ok := d.Selected()
	if !ok {
		return ""
	}
	return g.ID
}

// Lookup finds a ghost by id.
func (d *DashboardState) Lookup(id string) (models.Ghost, bool) {
	for _, g := range d.Ghosts {
		if g.ID == id {
			return g, true
		}
	}
	return models.Ghost{}, false
}

// clampCursor keeps a cursor inside [0, n-1], seeding it at 0 when a list
// becomes non-empty and clearing it when the list empties.
func clampCursor(cur *int, n int) *int {
	if n == 0 {
		return nil
	}
	i := 0
	if cur != nil {
		i = *cur
	}
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return &i
}
