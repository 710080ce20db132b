package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/charon/internal/core"
)

// dispatch turns a reducer command into a tea.Cmd. bubbletea runs each one on
// its own goroutine and delivers the returned Receive* action back through
// Update, in completion order.
func (m *Model) dispatch(cmd core.Command) tea.Cmd {
	if cmd == nil {
		return nil
	}
	m.logCommand(cmd)

	ctx := m.ctx
	switch c := cmd.(type) {
	case core.QuitProgram:
		return tea.Quit
	case core.FetchGhosts:
		return func() tea.Msg {
			ghosts, err := m.api.FetchGhosts(ctx)
			return core.ReceiveGhosts{Result: result(ghosts, err)}
		}
	case core.FetchTasks:
		return func() tea.Msg {
			tasks, err := m.api.FetchTasks(ctx, c.GhostID)
			return core.ReceiveTasks{Result: result(tasks, err)}
		}
	case core.SendTask:
		return func() tea.Msg {
			msg, err := m.api.SendTask(ctx, c.GhostID, c.Request)
			return core.ReceiveTaskSendResult{Result: result(msg, err)}
		}
	case core.UpdateGhostConfig:
		return func() tea.Msg {
			msg, err := m.api.UpdateConfig(ctx, c.GhostID, c.Config)
			return core.ReceiveConfigUpdateResult{Result: result(msg, err)}
		}
	case core.KillGhost:
		return func() tea.Msg {
			msg, err := m.api.KillGhost(ctx, c.GhostID)
			return core.ReceiveKillResult{Result: result(msg, err)}
		}
	case core.BuildPayload:
		return func() tea.Msg {
			msg, err := m.builder.Build(ctx, c.Options)
			return core.ReceiveBuildResult{Result: result(msg, err)}
		}
	}
	m.log.Error().Str("command", cmd.Kind()).Msg("no handler for command")
	return nil
}

func (m *Model) logCommand(cmd core.Command) {
	var ev *zerolog.Event
	switch cmd.(type) {
	case core.FetchGhosts, core.FetchTasks:
		// these fire on every timer; keep them out of info logs
		ev = m.log.Debug()
	default:
		ev = m.log.Info()
	}
	switch c := cmd.(type) {
	case core.FetchTasks:
		ev = ev.Str("ghost", c.GhostID)
	case core.SendTask:
		ev = ev.Str("ghost", c.GhostID).Str("verb", c.Request.Command)
	case core.UpdateGhostConfig:
		ev = ev.Str("ghost", c.GhostID).Int64("sleep", c.Config.SleepInterval).Int16("jitter", c.Config.JitterPercent)
	case core.KillGhost:
		ev = ev.Str("ghost", c.GhostID)
	case core.BuildPayload:
		ev = ev.Str("target", c.Options.TargetURL).Int("port", c.Options.TargetPort)
	}
	ev.Str("command", cmd.Kind()).Msg("dispatch")
}

func result[T any](v T, err error) core.Result[T] {
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "unknown error"
		}
		return core.Fail[T](msg)
	}
	return core.Ok(v)
}

// failure reports the error text of a failed Receive* action.
func failure(a core.Action) (string, bool) {
	switch r := a.(type) {
	case core.ReceiveGhosts:
		return r.Result.Err, r.Result.Failed()
	case core.ReceiveTasks:
		return r.Result.Err, r.Result.Failed()
	case core.ReceiveTaskSendResult:
		return r.Result.Err, r.Result.Failed()
	case core.ReceiveConfigUpdateResult:
		return r.Result.Err, r.Result.Failed()
	case core.ReceiveKillResult:
		return r.Result.Err, r.Result.Failed()
	case core.ReceiveBuildResult:
		return r.Result.Err, r.Result.Failed()
	}
	return "", false
}

func resultName(a core.Action) string {
	switch a.(type) {
	case core.ReceiveGhosts:
		return "ghosts"
	case core.ReceiveTasks:
		return "tasks"
	case core.ReceiveTaskSendResult:
		return "task_send"
	case core.ReceiveConfigUpdateResult:
		return "config_update"
	case core.ReceiveKillResult:
		return "kill"
	case core.ReceiveBuildResult:
		return "build"
	}
	return "unknown"
}
