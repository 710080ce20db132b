package core

import "github.com/jask/charon/internal/models"

// Action is an input or result event fed to Update. The set is closed.
type Action interface {
	isAction()
}

// Result carries a collaborator outcome into the reducer. A non-empty Err is
// the failure case; no typed error crosses this boundary.
type Result[T any] struct {
	Value T
	Err   string
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Fail[T any](msg string) Result[T] { return Result[T]{Err: msg} }

func (r Result[T]) Failed() bool { return r.Err != "" }

// lifecycle
type (
	Tick   struct{}
	Quit   struct{}
	Resize struct{ Width, Height int }
)

// global navigation
type (
	NextTab    struct{}
	PrevTab    struct{}
	ToggleHelp struct{}
)

// raw input
type (
	Enter     struct{}
	Esc       struct{}
	Backspace struct{}
	Up        struct{}
	Down      struct{}
	Left      struct{}
	Right     struct{}
	Char      struct{ Rune rune }
)

// screen triggers
type (
	OpenActionMenu      struct{}
	ConfirmKillGhost    struct{}
	SubmitGhostConfig   struct{}
	ToggleBuilderSwitch struct{}
	StartBuild          struct{}
	AutoRefresh         struct{}
)

// results
type (
	ReceiveGhosts             struct{ Result Result[[]models.Ghost] }
	ReceiveTasks              struct{ Result Result[[]models.Task] }
	ReceiveTaskSendResult     struct{ Result Result[string] }
	ReceiveConfigUpdateResult struct{ Result Result[string] }
	ReceiveKillResult         struct{ Result Result[string] }
	ReceiveBuildResult        struct{ Result Result[string] }
)

func (Tick) isAction()                      {}
func (Quit) isAction()                      {}
func (Resize) isAction()                    {}
func (NextTab) isAction()                   {}
func (PrevTab) isAction()                   {}
func (ToggleHelp) isAction()                {}
func (Enter) isAction()                     {}
func (Esc) isAction()                       {}
func (Backspace) isAction()                 {}
func (Up) isAction()                        {}
func (Down) isAction()                      {}
func (Left) isAction()                      {}
func (Right) isAction()                     {}
func (Char) isAction()                      {}
func (OpenActionMenu) isAction()            {}
func (ConfirmKillGhost) isAction()          {}
func (SubmitGhostConfig) isAction()         {}
func (ToggleBuilderSwitch) isAction()       {}
func (StartBuild) isAction()                {}
func (AutoRefresh) isAction()               {}
func (ReceiveGhosts) isAction()             {}
func (ReceiveTasks) isAction()              {}
func (ReceiveTaskSendResult) isAction()     {}
func (ReceiveConfigUpdateResult) isAction() {}
func (ReceiveKillResult) isAction()         {}
func (ReceiveBuildResult) isAction()        {}
