package core

import (
	"fmt"

	"github.com/jask/charon/internal/state"
)

func receiveGhosts(app *state.AppState, a ReceiveGhosts) Command {
	if a.Result.Failed() {
		app.StatusMessage = fmt.Sprintf("Error fetching ghosts: %s", a.Result.Err)
		return nil
	}
	app.Dashboard.SetGhosts(a.Result.Value)
	app.StatusMessage = fmt.Sprintf("Updated: %d ghosts online", len(app.Dashboard.Ghosts))
	return nil
}

// receiveTasks applies whatever arrives. Responses are not correlated with
// the request that produced them, so a late reply for a previously active
// ghost replaces the current history.
func receiveTasks(app *state.AppState, a ReceiveTasks) Command {
	if a.Result.Failed() {
		app.StatusMessage = fmt.Sprintf("Error fetching tasks: %s", a.Result.Err)
		return nil
	}
	app.Terminal.SetTasks(a.Result.Value)
	return nil
}

func receiveTaskSend(app *state.AppState, a ReceiveTaskSendResult) Command {
	if a.Result.Failed() {
		app.StatusMessage = fmt.Sprintf("Error: %s", a.Result.Err)
		return nil
	}
	app.StatusMessage = fmt.Sprintf("Task send: %s", a.Result.Value)
	if id := app.ActiveGhostID(); id != "" {
		return FetchTasks{GhostID: id}
	}
	return nil
}

func receiveConfigUpdate(app *state.AppState, a ReceiveConfigUpdateResult) Command {
	if a.Result.Failed() {
		app.StatusMessage = fmt.Sprintf("Error: %s", a.Result.Err)
		return nil
	}
	app.StatusMessage = fmt.Sprintf("Config updated: %s", a.Result.Value)
	return nil
}

func receiveKill(app *state.AppState, a ReceiveKillResult) Command {
	if a.Result.Failed() {
		app.StatusMessage = fmt.Sprintf("Error: %s", a.Result.Err)
		return nil
	}
	app.StatusMessage = fmt.Sprintf("Kill result: %s", a.Result.Value)
	return FetchGhosts{}
}

func receiveBuild(app *state.AppState, a ReceiveBuildResult) Command {
	if a.Result.Failed() {
		app.Builder.BuildStatusMsg = state.BuildFailed
		app.StatusMessage = fmt.Sprintf("Error: %s", a.Result.Err)
		return nil
	}
	app.Builder.BuildStatusMsg = state.BuildSucceeded
	app.StatusMessage = fmt.Sprintf("Build success: %s", a.Result.Value)
	return nil
}
