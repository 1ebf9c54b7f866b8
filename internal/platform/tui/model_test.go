package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	seeds  []int64
	dts    []float64
	inputs []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(seed int64) {
	g.seeds = append(g.seeds, seed)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(dtMs float64, in core.InputFrame) core.StepResult {
	g.dts = append(g.dts, dtMs)
	g.inputs = append(g.inputs, in.Clone())
	for _, a := range in.Events {
		if a == core.ActionQuit {
			g.state.GameOver = true
			g.state.EndReason = core.EndQuit
		}
	}
	g.state.Frame++
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	m := NewModel(g, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7},
		ScreenshotDir: t.TempDir(),
	})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlap},
		{"w", runes("w"), core.ActionFlap},
		{"p", runes("p"), core.ActionPause},
		{"q", runes("q"), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"r", runes("r"), core.ActionRestart},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"x", runes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestKeyMapperMouse(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	assert.Equal(t, core.ActionFlap, km.MapMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
	assert.Equal(t, core.ActionNone, km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	assert.Equal(t, core.ActionNone, km.MapMouse(tea.MouseMsg{Action: tea.MouseActionMotion}))
}

func TestKeyMapperFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runes("q"), &frame)
	km.MapKeyToFrame(runes("x"), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)

	assert.Equal(t, []core.Action{core.ActionQuit, core.ActionFlap}, frame.Events, "unmapped keys are dropped")
}

func TestModelInit(t *testing.T) {
	_, g := newTestModel(t)
	assert.Equal(t, []int64{7}, g.seeds)
}

func TestModelTickFeedsOrderedInput(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	start := time.Now()
	m, cmd := update(t, m, TickMsg(start))
	assert.NotNil(t, cmd)
	require.Len(t, g.inputs, 1)
	assert.Equal(t, []core.Action{core.ActionPause, core.ActionFlap, core.ActionFlap}, g.inputs[0].Events)
	assert.InDelta(t, 1000.0/60, g.dts[0], 1e-9, "first tick reports the nominal interval")

	_, _ = update(t, m, TickMsg(start.Add(40*time.Millisecond)))
	require.Len(t, g.inputs, 2)
	assert.Empty(t, g.inputs[1].Events, "input is cleared after each tick")
	assert.InDelta(t, 40.0, g.dts[1], 1e-9, "later ticks report wall time")
}

func TestModelQuitThroughSession(t *testing.T) {
	m, g := newTestModel(t)

	m, cmd := update(t, m, runes("q"))
	assert.False(t, isQuit(cmd), "quit goes through the session first")

	m, cmd = update(t, m, TickMsg(time.Now()))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, core.EndQuit, g.state.EndReason)
	assert.Empty(t, m.View())
}

func TestModelForceQuit(t *testing.T) {
	m, g := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, g.dts)
}

func TestModelGameOverKeys(t *testing.T) {
	m, g := newTestModel(t)
	g.state = core.GameState{GameOver: true, EndReason: core.EndCollision}
	m, _ = update(t, m, TickMsg(time.Now()))
	require.True(t, m.gameState.GameOver)
	steps := len(g.dts)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Nil(t, cmd)
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Len(t, g.dts, steps, "an ended session is not stepped")

	m, _ = update(t, m, runes("r"))
	assert.Len(t, g.seeds, 2)
	assert.False(t, m.gameState.GameOver)

	g.state.GameOver = true
	m.gameState.GameOver = true
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height())
	assert.Len(t, g.seeds, 1)
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "fake")
	assert.Contains(t, view, "flap")
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "fake_"))

	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "fake"))
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 1, "cd")

	out := RenderScreen(s)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
}
