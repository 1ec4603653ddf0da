package monitor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rmon/internal/layout"
	"github.com/rileyhilliard/rmon/internal/logger"
	"github.com/rileyhilliard/rmon/internal/metrics"
)

// Phase is the step of the display loop the model is in.
type Phase int

const (
	PhaseSizing Phase = iota
	PhaseTooSmall
	PhaseSampling
	PhaseLayout
	PhaseRendering
	PhaseIdle
	PhaseTerminated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSizing:
		return "sizing"
	case PhaseTooSmall:
		return "too-small"
	case PhaseSampling:
		return "sampling"
	case PhaseLayout:
		return "layout"
	case PhaseRendering:
		return "rendering"
	case PhaseIdle:
		return "idle"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Collector produces one snapshot per call. *sampler.Sampler satisfies it.
type Collector interface {
	Collect(ctx context.Context) metrics.Snapshot
}

// SizeFunc reads the current terminal size.
type SizeFunc func() (layout.Bounds, error)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx       context.Context
	collector Collector
	size      SizeFunc
	interval  time.Duration
	keys      KeyMap
	log       logger.Logger

	bounds    layout.Bounds // last size seen
	winBounds layout.Bounds // last WindowSizeMsg
	phase     Phase
	frame     string
	ticks     int
	quitting  bool
}

// tickMsg starts one pass of the display loop.
type tickMsg time.Time

// snapshotMsg carries the sampler's result for the current tick.
type snapshotMsg struct {
	snap metrics.Snapshot
}

// NewModel creates a dashboard model. A nil size func relies on
// WindowSizeMsg alone.
func NewModel(ctx context.Context, collector Collector, size SizeFunc, interval time.Duration, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	return Model{
		ctx:       ctx,
		collector: collector,
		size:      size,
		interval:  interval,
		keys:      DefaultKeyMap(),
		log:       log,
		phase:     PhaseIdle,
	}
}

// Init runs the first tick immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.winBounds = layout.Bounds{Rows: msg.Height, Cols: msg.Width}

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.ticks++
		m.setPhase(PhaseSizing)
		m.bounds = m.pollSize()
		if !m.bounds.Covers(Floor) {
			m.setPhase(PhaseTooSmall)
			m.frame = ComposeNotice(m.bounds).String()
			m.setPhase(PhaseIdle)
			return m, m.tickCmd()
		}
		m.setPhase(PhaseSampling)
		return m, m.sampleCmd()

	case snapshotMsg:
		if m.quitting {
			return m, nil
		}
		m.setPhase(PhaseLayout)
		placed := Place(msg.snap, m.bounds)
		m.setPhase(PhaseRendering)
		frame := placed.Draw()
		if frame.Dropped > 0 {
			m.log.Debug("tick %d: dropped %d cells outside their regions", m.ticks, frame.Dropped)
		}
		// Bubble Tea paints View in one write right after Update returns.
		m.frame = frame.String()
		m.setPhase(PhaseIdle)
		return m, m.tickCmd()
	}

	return m, nil
}

// View returns the last composed frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// Phase returns the current loop phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Bounds returns the terminal size used for the current frame.
func (m Model) Bounds() layout.Bounds {
	return m.bounds
}

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setPhase(p Phase) {
	m.phase = p
	m.log.Debug("phase %s", p)
}

// pollSize reads the size fresh, falling back to the last WindowSizeMsg.
func (m Model) pollSize() layout.Bounds {
	if m.size != nil {
		b, err := m.size()
		if err == nil {
			return b
		}
		m.log.Debug("terminal size: %v", err)
	}
	return m.winBounds
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd collects one snapshot off the update loop.
func (m Model) sampleCmd() tea.Cmd {
	ctx, collector := m.ctx, m.collector
	return func() tea.Msg {
		return snapshotMsg{snap: collector.Collect(ctx)}
	}
}
