package config

import (
	"time"

	"github.com/rileyhilliard/rmon/internal/exec"
	"github.com/rileyhilliard/rmon/internal/sampler"
	"github.com/rileyhilliard/rmon/internal/source"
)

// EnvPrefix is prepended to every setting name to form its environment
// variable, e.g. RMON_INTERVAL.
const EnvPrefix = "RMON"

// Config holds the runtime settings of the dashboard. Every field can be set
// from the environment; there is no config file.
type Config struct {
	// Interval is the time between ticks.
	Interval time.Duration `mapstructure:"interval"`

	// CommandTimeout bounds one external command (vcgencmd, i2cdetect).
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	// ReaderTimeout bounds one source reader within a tick.
	ReaderTimeout time.Duration `mapstructure:"reader_timeout"`

	// I2CBus is the bus number passed to i2cdetect.
	I2CBus int `mapstructure:"i2c_bus"`

	// ThermalPath is the pseudo-file holding the SoC temperature in
	// millidegrees Celsius.
	ThermalPath string `mapstructure:"thermal_path"`

	// FrequencyPath is the pseudo-file holding the CPU0 clock in kHz.
	FrequencyPath string `mapstructure:"frequency_path"`

	// DiskPath is the mount point whose usage is shown.
	DiskPath string `mapstructure:"disk_path"`

	// MeshInterface is the interface whose presence means the node has
	// joined the mesh.
	MeshInterface string `mapstructure:"mesh_interface"`

	// DebugLog, when set, receives log output while the dashboard owns the
	// terminal.
	DebugLog string `mapstructure:"debug_log"`
}

// Defaults for each setting. Those owned by a reader or runner come from
// that package.
const (
	DefaultInterval       = time.Second
	DefaultCommandTimeout = exec.DefaultTimeout
	DefaultReaderTimeout  = sampler.DefaultTimeout
	DefaultI2CBus         = source.DefaultI2CBus
	DefaultThermalPath    = source.DefaultThermalPath
	DefaultFrequencyPath  = source.DefaultFrequencyPath
	DefaultDiskPath       = "/"
	DefaultMeshInterface  = source.DefaultMeshInterface
)

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config {
	return &Config{
		Interval:       DefaultInterval,
		CommandTimeout: DefaultCommandTimeout,
		ReaderTimeout:  DefaultReaderTimeout,
		I2CBus:         DefaultI2CBus,
		ThermalPath:    DefaultThermalPath,
		FrequencyPath:  DefaultFrequencyPath,
		DiskPath:       DefaultDiskPath,
		MeshInterface:  DefaultMeshInterface,
	}
}
