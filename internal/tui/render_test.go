package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/charon/internal/core"
	"github.com/jask/charon/internal/state"
)

func sizedModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel(sampleAPI(), &fakeBuilder{})
	m.Update(tea.WindowSizeMsg{Width: 110, Height: 32})
	send(t, m, core.AutoRefresh{})
	return m
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestDashboardView(t *testing.T) {
	m := sizedModel(t)
	out := plainView(m)

	require.Contains(t, out, "CHARON")
	require.Contains(t, out, "DASHBOARD")
	require.Contains(t, out, "web-01")
	require.Contains(t, out, "ACTIVE")
	require.Contains(t, out, "5s ago")
	require.Contains(t, out, "DEAD")
	require.Contains(t, out, "100s ago")
	require.Contains(t, out, "> g1")
	require.Contains(t, out, "Updated: 2 ghosts online")
}

func TestEmptyDashboardView(t *testing.T) {
	m := newTestModel(&fakeAPI{}, &fakeBuilder{})
	out := plainView(m)
	require.Contains(t, out, "No ghosts connected")
	require.Contains(t, out, state.DefaultStatus)
}

func TestTerminalView(t *testing.T) {
	m := sizedModel(t)
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(keyRunes("whoami"))

	out := plainView(m)
	require.Contains(t, out, "TERMINAL :: web-01 (g1)")
	require.Contains(t, out, "ghost@web-01> EXEC id")
	require.Contains(t, out, "uid=0(root)")
	require.Contains(t, out, "[PENDING...]")
	require.Contains(t, out, "ghost@web-01> whoami")
}

func TestTerminalViewStaleGhost(t *testing.T) {
	m := sizedModel(t)
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(core.ReceiveGhosts{Result: core.Ok(sampleAPI().ghosts[1:])})

	out := plainView(m)
	require.Contains(t, out, "g1 (offline)")
	require.Contains(t, out, "ghost@g1>")
}

func TestConfigView(t *testing.T) {
	m := sizedModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	out := plainView(m)
	require.Contains(t, out, "Target  g1 (web-01)")
	require.Contains(t, out, "> Sleep interval (s)")
	require.Contains(t, out, "[ SUBMIT ]")
}

func TestBuilderViewHidesDisabledFields(t *testing.T) {
	m := sizedModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, state.ScreenBuilder, m.State().CurrentScreen)

	out := plainView(m)
	require.Contains(t, out, "Target URL")
	require.Contains(t, out, "[127.0.0.1]")
	require.Contains(t, out, "Build status  IDLE")

	m.Update(keyRunes("]"))
	require.Contains(t, plainView(m), "Run-control entry")

	m.Update(keyRunes("t"))
	out = plainView(m)
	require.NotContains(t, out, "Run-control entry")
	require.Contains(t, out, "Enable persistence")
	require.Contains(t, out, "press t to enable")
}

func TestOverlays(t *testing.T) {
	m := sizedModel(t)

	m.Update(keyRunes("h"))
	require.Contains(t, plainView(m), "KEYS")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m.Update(keyRunes("x"))
	out := plainView(m)
	require.Contains(t, out, "ACTIONS :: g1")
	require.Contains(t, out, "KILL SWITCH")
}

func TestErrorStatusStyled(t *testing.T) {
	require.True(t, isErrorStatus("Error fetching ghosts: boom"))
	require.True(t, isErrorStatus("Error: 500"))
	require.False(t, isErrorStatus("Updated: 3 ghosts online"))
}

func TestViewFitsHeight(t *testing.T) {
	m := sizedModel(t)
	lines := strings.Split(m.View(), "\n")
	require.LessOrEqual(t, len(lines), 32)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		cursor, n, size int
		start, end      int
	}{
		{0, 5, 0, 0, 5},
		{0, 5, 10, 0, 5},
		{0, 10, 3, 0, 3},
		{9, 10, 3, 7, 10},
		{5, 10, 3, 3, 6},
		{-1, 10, 4, 6, 10},
	}
	for _, tt := range tests {
		s, e := window(tt.cursor, tt.n, tt.size)
		if s != tt.start || e != tt.end {
			t.Fatalf("window(%d, %d, %d) = %d, %d; want %d, %d", tt.cursor, tt.n, tt.size, s, e, tt.start, tt.end)
		}
	}
}
