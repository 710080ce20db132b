// Package tui is the executor: it owns the AppState, feeds it actions from
// the keyboard, timers and collaborators, and runs the commands the reducer
// asks for.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/charon/internal/config"
	"github.com/jask/charon/internal/core"
	"github.com/jask/charon/internal/models"
	"github.com/jask/charon/internal/state"
)

// API is the control server as the console sees it.
type API interface {
	FetchGhosts(ctx context.Context) ([]models.Ghost, error)
	FetchTasks(ctx context.Context, ghostID string) ([]models.Task, error)
	SendTask(ctx context.Context, ghostID string, req models.TaskRequest) (string, error)
	UpdateConfig(ctx context.Context, ghostID string, cfg models.GhostConfigUpdate) (string, error)
	KillGhost(ctx context.Context, ghostID string) (string, error)
}

// Builder produces a payload and reports where it landed.
type Builder interface {
	Build(ctx context.Context, opts core.BuildOptions) (string, error)
}

type tickMsg time.Time

type refreshMsg time.Time

// Model is the bubbletea model. It is the only writer of its AppState.
type Model struct {
	ctx     context.Context
	app     *state.AppState
	api     API
	builder Builder
	cfg     config.UIConfig
	log     zerolog.Logger
	now     func() time.Time

	keys keyMap
	help help.Model

	width  int
	height int
}

// New wires the executor. Zero timer settings fall back to the defaults.
func New(ctx context.Context, cfg config.UIConfig, api API, builder Builder, log zerolog.Logger) *Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 250 * time.Millisecond
	}
	if cfg.RefreshRate <= 0 {
		cfg.RefreshRate = 5 * time.Second
	}
	if cfg.LivenessTimeout <= 0 {
		cfg.LivenessTimeout = 30 * time.Second
	}

	app := state.New()
	app.RefreshEvery = cfg.TaskRefreshTicks

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Styles.FullSeparator = helpSepStyle

	return &Model{
		ctx:     ctx,
		app:     app,
		api:     api,
		builder: builder,
		cfg:     cfg,
		log:     log.With().Str("component", "tui").Logger(),
		now:     time.Now,
		keys:    newKeyMap(),
		help:    h,
	}
}

// State exposes the aggregate for inspection. Callers must not mutate it.
func (m *Model) State() *state.AppState { return m.app }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.dispatch(core.FetchGhosts{}), m.tick(), m.refresh())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// footer padding
		m.help.Width = max(0, msg.Width-4)
		return m, m.apply(core.Resize{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, a := range m.keys.translate(msg) {
			cmds = append(cmds, m.apply(a))
		}
		return m, batch(cmds...)
	case tickMsg:
		return m, batch(m.apply(core.Tick{}), m.tick())
	case refreshMsg:
		return m, batch(m.apply(core.AutoRefresh{}), m.refresh())
	case core.Action:
		return m, m.apply(msg)
	}
	return m, nil
}

// apply runs one action through the reducer and starts whatever it asks for.
func (m *Model) apply(a core.Action) tea.Cmd {
	if errText, failed := failure(a); failed {
		m.log.Warn().Str("result", resultName(a)).Str("error", errText).Msg("collaborator failed")
	}
	return m.dispatch(core.Update(m.app, a))
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) refresh() tea.Cmd {
	return tea.Tick(m.cfg.RefreshRate, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

// batch drops nil commands and avoids wrapping a lone command.
func batch(cmds ...tea.Cmd) tea.Cmd {
	out := cmds[:0]
	for _, c := range cmds {
		if c != nil {
			out = append(out, c)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return tea.Batch(out...)
	}
}
