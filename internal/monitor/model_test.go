package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rmon/internal/layout"
	"github.com/rileyhilliard/rmon/internal/logger"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollector struct {
	mu    sync.Mutex
	snap  metrics.Snapshot
	calls int
}

func (c *fakeCollector) Collect(ctx context.Context) metrics.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.snap
}

func (c *fakeCollector) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func fixedSize(b layout.Bounds) SizeFunc {
	return func() (layout.Bounds, error) { return b, nil }
}

func newTestModel(size SizeFunc) (Model, *fakeCollector, *logger.BufferLogger) {
	c := &fakeCollector{snap: testSnapshot()}
	log := logger.NewBufferLogger()
	return NewModel(context.Background(), c, size, time.Second, log), c, log
}

// step feeds msg to m and returns the updated model and command.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return updated, cmd
}

func phaseLog(log *logger.BufferLogger) []string {
	var phases []string
	for _, m := range log.Messages {
		if len(m.Message) > 6 && m.Message[:6] == "phase " {
			phases = append(phases, m.Message[6:])
		}
	}
	return phases
}

func TestNewModel(t *testing.T) {
	m, _, _ := newTestModel(fixedSize(fullSize))

	assert.Equal(t, PhaseIdle, m.Phase())
	assert.False(t, m.Quitting())
	assert.Empty(t, m.View())
	assert.Equal(t, time.Second, m.interval)
}

func TestModel_InitTicksImmediately(t *testing.T) {
	m, _, _ := newTestModel(fixedSize(fullSize))

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.IsType(t, tickMsg{}, cmd())
}

func TestModel_TickSamplesAndRenders(t *testing.T) {
	m, c, log := newTestModel(fixedSize(fullSize))

	m, cmd := step(t, m, tickMsg(time.Now()))
	assert.Equal(t, PhaseSampling, m.Phase())
	require.NotNil(t, cmd)
	assert.Equal(t, 0, c.Calls(), "sampling runs off the update loop")

	msg := cmd()
	require.IsType(t, snapshotMsg{}, msg)
	assert.Equal(t, 1, c.Calls())

	m, cmd = step(t, m, msg)
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, Compose(testSnapshot(), fullSize).String(), m.View())
	assert.Equal(t, fullSize, m.Bounds())

	assert.Equal(t, []string{"sizing", "sampling", "layout", "rendering", "idle"}, phaseLog(log))
}

func TestModel_TooSmallSkipsSampling(t *testing.T) {
	small := layout.Bounds{Rows: 10, Cols: 40}
	m, c, log := newTestModel(fixedSize(small))

	m, cmd := step(t, m, tickMsg(time.Now()))

	assert.Equal(t, PhaseIdle, m.Phase())
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, 0, c.Calls())
	assert.Equal(t, ComposeNotice(small).String(), m.View())
	assert.Equal(t, []string{"sizing", "too-small", "idle"}, phaseLog(log))
}

func TestModel_ResizeBetweenTicks(t *testing.T) {
	size := fullSize
	m, _, _ := newTestModel(func() (layout.Bounds, error) { return size, nil })

	m, cmd := step(t, m, tickMsg(time.Now()))
	m, _ = step(t, m, cmd())
	assert.Equal(t, fullSize, m.Bounds())

	size = layout.Bounds{Rows: 30, Cols: 80}
	m, cmd = step(t, m, tickMsg(time.Now()))
	m, _ = step(t, m, cmd())

	assert.Equal(t, size, m.Bounds())
	assert.Equal(t, Compose(testSnapshot(), size).String(), m.View())
}

func TestModel_WindowSizeFallback(t *testing.T) {
	m, _, log := newTestModel(func() (layout.Bounds, error) {
		return layout.Bounds{}, errors.New("inappropriate ioctl for device")
	})

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, cmd := step(t, m, tickMsg(time.Now()))

	assert.Equal(t, layout.Bounds{Rows: 40, Cols: 100}, m.Bounds())
	assert.Equal(t, PhaseSampling, m.Phase())
	assert.NotNil(t, cmd)
	assert.True(t, log.Contains("inappropriate ioctl"))
}

func TestModel_NilSizeFuncUsesWindowSize(t *testing.T) {
	m, _, _ := newTestModel(nil)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	m, _ = step(t, m, tickMsg(time.Now()))

	assert.Equal(t, layout.Bounds{Rows: 10, Cols: 30}, m.Bounds())
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestModel_LogsDroppedCells(t *testing.T) {
	m, c, log := newTestModel(fixedSize(Floor))
	c.snap.Host = metrics.Ok(metrics.Host{Name: "a-very-long-hostname-that-overflows", Address: "10.0.0.2"})

	m, cmd := step(t, m, tickMsg(time.Now()))
	_, _ = step(t, m, cmd())

	assert.True(t, log.Contains("dropped"))
}

func TestModel_IgnoresMessagesAfterQuit(t *testing.T) {
	m, c, _ := newTestModel(fixedSize(fullSize))

	m, cmd := step(t, m, tickMsg(time.Now()))
	sample := cmd
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	m, cmd = step(t, m, sample())
	assert.Nil(t, cmd)
	assert.Equal(t, PhaseTerminated, m.Phase())

	m, cmd = step(t, m, tickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, c.Calls())
	assert.Empty(t, m.View())
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseSizing, "sizing"},
		{PhaseTooSmall, "too-small"},
		{PhaseSampling, "sampling"},
		{PhaseLayout, "layout"},
		{PhaseRendering, "rendering"},
		{PhaseIdle, "idle"},
		{PhaseTerminated, "terminated"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.phase.String())
		})
	}
}
