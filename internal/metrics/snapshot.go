package metrics

import (
	"time"

	"github.com/rileyhilliard/rmon/internal/gpio"
)

// Snapshot holds one reading per registered source for a single tick.
// It is built by the sampler, handed to the renderer by value and dropped
// after the frame is drawn.
type Snapshot struct {
	Taken time.Time

	CPU       Reading[[]float64] // per-core utilisation, percent
	Load      Reading[LoadAvg]
	Memory    Reading[Memory]
	Disk      Reading[Disk]
	Network   Reading[Network]
	Processes Reading[int]
	Uptime    Reading[time.Duration]

	Temperature Reading[float64] // degrees Celsius
	Frequency   Reading[int]     // MHz
	Voltage     Reading[string]  // e.g. "0.8500V"
	Mesh        Reading[bool]
	Host        Reading[Host]

	Devices Reading[[]string] // I2C addresses in scan order, "0x1a" form
	Pins    Reading[PinLevels]
}

// LoadAvg is the 1, 5 and 15 minute load average.
type LoadAvg struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// Memory is virtual memory usage.
type Memory struct {
	UsedBytes  uint64
	TotalBytes uint64
	Percent    float64
}

// Disk is usage of one mounted filesystem.
type Disk struct {
	Path       string
	UsedBytes  uint64
	FreeBytes  uint64
	TotalBytes uint64
	Percent    float64
}

// Network is the aggregate I/O counters across all interfaces.
type Network struct {
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// Host identifies the machine. Address holds a placeholder when the
// hostname could not be resolved.
type Host struct {
	Name     string
	Address  string
	Resolved bool
}

// PinLevels maps a GPIO line number to the level read from it this tick.
type PinLevels map[int]Reading[gpio.Level]

// Level returns the reading for line. Lines that were never polled are
// reported unavailable.
func (p PinLevels) Level(line int) Reading[gpio.Level] {
	if r, ok := p[line]; ok {
		return r
	}
	return Unavailablef[gpio.Level]("GPIO%d not polled", line)
}
