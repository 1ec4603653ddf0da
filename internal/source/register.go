package source

import (
	"time"

	"github.com/rileyhilliard/rmon/internal/exec"
	"github.com/rileyhilliard/rmon/internal/gpio"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/sampler"
	"github.com/spf13/afero"
)

// System holds the handles and settings readers need.
type System struct {
	Fs            afero.Fs
	Runner        exec.Runner
	Pins          gpio.Reader
	Lines         []int
	Interfaces    InterfaceLister
	Hostname      func() (string, error)
	Resolver      Resolver
	Now           func() time.Time
	ThermalPath   string
	FrequencyPath string
	DiskPath      string
	MeshInterface string
	I2CBus        int
}

// RegisterAll registers one reader per Snapshot field with s.
func RegisterAll(s *sampler.Sampler, sys System) {
	sampler.Register(s, "cpu", CPU(), func(snap *metrics.Snapshot, r metrics.Reading[[]float64]) { snap.CPU = r })
	sampler.Register(s, "load", Load(), func(snap *metrics.Snapshot, r metrics.Reading[metrics.LoadAvg]) { snap.Load = r })
	sampler.Register(s, "memory", Memory(), func(snap *metrics.Snapshot, r metrics.Reading[metrics.Memory]) { snap.Memory = r })
	sampler.Register(s, "disk", Disk(sys.DiskPath), func(snap *metrics.Snapshot, r metrics.Reading[metrics.Disk]) { snap.Disk = r })
	sampler.Register(s, "network", Network(), func(snap *metrics.Snapshot, r metrics.Reading[metrics.Network]) { snap.Network = r })
	sampler.Register(s, "processes", Processes(), func(snap *metrics.Snapshot, r metrics.Reading[int]) { snap.Processes = r })
	sampler.Register(s, "uptime", Uptime(sys.Now), func(snap *metrics.Snapshot, r metrics.Reading[time.Duration]) { snap.Uptime = r })

	sampler.Register(s, "thermal", Thermal(sys.Fs, sys.ThermalPath), func(snap *metrics.Snapshot, r metrics.Reading[float64]) { snap.Temperature = r })
	sampler.Register(s, "frequency", Frequency(sys.Fs, sys.FrequencyPath), func(snap *metrics.Snapshot, r metrics.Reading[int]) { snap.Frequency = r })
	sampler.Register(s, "voltage", Voltage(sys.Runner), func(snap *metrics.Snapshot, r metrics.Reading[string]) { snap.Voltage = r })
	sampler.Register(s, "mesh", Mesh(sys.Interfaces, sys.MeshInterface), func(snap *metrics.Snapshot, r metrics.Reading[bool]) { snap.Mesh = r })
	sampler.Register(s, "host", Identity(sys.Hostname, sys.Resolver), func(snap *metrics.Snapshot, r metrics.Reading[metrics.Host]) { snap.Host = r })

	sampler.Register(s, "i2c", Devices(sys.Runner, sys.I2CBus), func(snap *metrics.Snapshot, r metrics.Reading[[]string]) { snap.Devices = r })
	sampler.Register(s, "gpio", Pins(sys.Pins, sys.Lines), func(snap *metrics.Snapshot, r metrics.Reading[metrics.PinLevels]) { snap.Pins = r })
}
