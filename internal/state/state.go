package state

import "github.com/jask/charon/internal/models"

// Screen identifies one of the four top-level views.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenTerminal
	ScreenConfig
	ScreenBuilder
)

// Screens lists every screen in tab order.
var Screens = []Screen{ScreenDashboard, ScreenTerminal, ScreenConfig, ScreenBuilder}

func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "DASHBOARD"
	case ScreenTerminal:
		return "TERMINAL"
	case ScreenConfig:
		return "CONFIG"
	case ScreenBuilder:
		return "BUILDER"
	default:
		return "UNKNOWN"
	}
}

// Next returns the screen to the right, wrapping around.
func (s Screen) Next() Screen {
	switch s {
	case ScreenDashboard:
		return ScreenTerminal
	case ScreenTerminal:
		return ScreenConfig
	case ScreenConfig:
		return ScreenBuilder
	default:
		return ScreenDashboard
	}
}

// Prev returns the screen to the left, wrapping around.
func (s Screen) Prev() Screen {
	switch s {
	case ScreenDashboard:
		return ScreenBuilder
	case ScreenTerminal:
		return ScreenDashboard
	case ScreenConfig:
		return ScreenTerminal
	default:
		return ScreenConfig
	}
}

const DefaultStatus = "READY - press 'h' for help"

// AppState is the whole console state. It is owned by exactly one loop and
// mutated only through the reducer.
type AppState struct {
	CurrentScreen Screen

	Dashboard DashboardState
	Terminal  TerminalState
	Config    ConfigState
	Builder   BuilderState

	ShowHelp       bool
	ShowActionMenu bool
	StatusMessage  string

	// TickCount counts Tick actions. Every RefreshEvery ticks the open
	// terminal reloads its history; zero disables that.
	TickCount    uint64
	RefreshEvery uint64
}

// DefaultRefreshEvery is the tick interval between terminal reloads.
const DefaultRefreshEvery = 10

// New returns the startup state: empty rosters and default form values.
func New() *AppState {
	return &AppState{
		CurrentScreen: ScreenDashboard,
		Config:        NewConfigState(),
		Builder:       NewBuilderState(),
		StatusMessage: DefaultStatus,
		RefreshEvery:  DefaultRefreshEvery,
	}
}

func (a *AppState) NextTab() {
	a.switchScreen(a.CurrentScreen.Next())
}

func (a *AppState) PrevTab() {
	a.switchScreen(a.CurrentScreen.Prev())
}

// SwitchScreen moves to s. The action menu only exists on the dashboard, so
// leaving it closes the menu.
func (a *AppState) SwitchScreen(s Screen) {
	a.switchScreen(s)
}

func (a *AppState) switchScreen(s Screen) {
	a.CurrentScreen = s
	if s != ScreenDashboard {
		a.ShowActionMenu = false
	}
}

// ActiveGhost resolves the terminal's active ghost id against the current
// roster. ok is false when no ghost is active or the id has left the roster.
func (a *AppState) ActiveGhost() (g models.Ghost, ok bool) {
	if a.Terminal.ActiveGhostID == nil {
		return models.Ghost{}, false
	}
	return a.Dashboard.Lookup(*a.Terminal.ActiveGhostID)
}

// ActiveGhostID returns the raw lookup key, or "" when none is set.
func (a *AppState) ActiveGhostID() string {
	if a.Terminal.ActiveGhostID == nil {
		return ""
	}
	return *a.Terminal.ActiveGhostID
}
