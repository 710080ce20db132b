package core

import (
	"fmt"
	"unicode"

	"github.com/jask/charon/internal/state"
)

func handleNavUp(app *state.AppState) {
	if app.ShowActionMenu {
		return
	}
	switch app.CurrentScreen {
	case state.ScreenDashboard:
		app.Dashboard.SelectPrev()
	case state.ScreenTerminal:
		app.Terminal.ScrollUp()
	case state.ScreenConfig:
		app.Config.PrevField()
	case state.ScreenBuilder:
		app.Builder.PrevField()
	}
}

func handleNavDown(app *state.AppState) {
	if app.ShowActionMenu {
		return
	}
	switch app.CurrentScreen {
	case state.ScreenDashboard:
		app.Dashboard.SelectNext()
	case state.ScreenTerminal:
		app.Terminal.ScrollDown()
	case state.ScreenConfig:
		app.Config.NextField()
	case state.ScreenBuilder:
		app.Builder.NextField()
	}
}

func handleEnter(app *state.AppState) Command {
	if app.ShowActionMenu {
		return confirmKill(app)
	}

	switch app.CurrentScreen {
	case state.ScreenDashboard:
		g, ok := app.Dashboard.Selected()
		if !ok {
			return nil
		}
		app.SwitchScreen(state.ScreenTerminal)
		app.Terminal.SetActiveGhost(g.ID)
		app.StatusMessage = fmt.Sprintf("Viewing tasks for %s", g.ID)
		return FetchTasks{GhostID: g.ID}

	case state.ScreenTerminal:
		return submitTask(app)

	case state.ScreenConfig:
		if app.Config.SelectedField == state.ConfigSubmit {
			return submitConfig(app)
		}
		app.Config.NextField()
		return nil

	case state.ScreenBuilder:
		b := &app.Builder
		switch {
		case b.SelectedField == state.FieldSubmit:
			return startBuild(app)
		case b.SelectedField == state.FieldCategorySelect:
			b.NextCategory()
		case b.SelectedField.IsText():
			b.NextField()
		default:
			b.Toggle()
		}
		return nil
	}
	return nil
}

func submitTask(app *state.AppState) Command {
	id := app.ActiveGhostID()
	if id == "" || isBlank(app.Terminal.InputBuffer) {
		return nil
	}
	line := app.Terminal.InputBuffer
	app.Terminal.InputBuffer = ""

	req := ParseTaskInput(line)
	app.StatusMessage = fmt.Sprintf("Sending %s to %s...", req.Command, id)
	if verb, ok := SuggestVerb(line); ok {
		app.StatusMessage += fmt.Sprintf(" (did you mean %s?)", verb)
	}
	return SendTask{GhostID: id, Request: req}
}

func handleEsc(app *state.AppState) {
	if app.ShowActionMenu || app.ShowHelp {
		app.ShowActionMenu = false
		app.ShowHelp = false
		return
	}
	if app.CurrentScreen == state.ScreenTerminal {
		app.SwitchScreen(state.ScreenDashboard)
	}
}

func handleBackspace(app *state.AppState) {
	if buf := focusedBuffer(app); buf != nil {
		*buf = dropLastRune(*buf)
	}
}

// focusedBuffer returns the text field that currently receives typing, or nil.
func focusedBuffer(app *state.AppState) *string {
	if app.ShowActionMenu {
		return nil
	}
	switch app.CurrentScreen {
	case state.ScreenTerminal:
		return &app.Terminal.InputBuffer
	case state.ScreenConfig:
		return app.Config.FocusedInput()
	case state.ScreenBuilder:
		return app.Builder.FocusedInput()
	default:
		return nil
	}
}

// acceptsText reports whether c is consumed as typing rather than as a
// shortcut on the current focus.
func acceptsText(app *state.AppState, c rune) bool {
	if focusedBuffer(app) == nil {
		return false
	}
	// Builder port swallows non-digits in typeRune instead of treating them
	// as shortcuts.
	if app.CurrentScreen == state.ScreenConfig {
		return unicode.IsDigit(c)
	}
	return true
}

func handleChar(app *state.AppState, c rune) Command {
	if acceptsText(app, c) {
		typeRune(app, c)
		return nil
	}

	switch c {
	case 'q':
		return QuitProgram{}
	case 'h':
		app.ShowHelp = !app.ShowHelp
		return nil
	case 'r':
		app.StatusMessage = "Refreshing ghosts..."
		return FetchGhosts{}
	}

	switch app.CurrentScreen {
	case state.ScreenDashboard:
		if c == 'x' {
			openActionMenu(app)
		}
	case state.ScreenBuilder:
		switch c {
		case 't':
			app.Builder.ToggleCategory()
		case ']':
			app.Builder.NextCategory()
		case '[':
			app.Builder.PrevCategory()
		}
	}
	return nil
}

func typeRune(app *state.AppState, c rune) {
	buf := focusedBuffer(app)
	if buf == nil {
		return
	}
	if app.CurrentScreen == state.ScreenBuilder && app.Builder.SelectedField == state.FieldPort && !unicode.IsDigit(c) {
		return
	}
	*buf += string(c)
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
