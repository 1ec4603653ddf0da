package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rileyhilliard/rmon/internal/errors"
)

const (
	// MinInterval keeps the dashboard from spinning on the sensors.
	MinInterval = 100 * time.Millisecond
	// maxInterfaceName is IFNAMSIZ minus the terminating NUL.
	maxInterfaceName = 15
)

// Validate checks cfg and returns a structured error for the first problem.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short", cfg.Interval),
			fmt.Sprintf("Set %s_INTERVAL to at least %s.", EnvPrefix, MinInterval))
	}

	if cfg.CommandTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Command timeout must be positive, got %s", cfg.CommandTimeout),
			fmt.Sprintf("Set %s_COMMAND_TIMEOUT to a duration like 2s.", EnvPrefix))
	}

	if cfg.ReaderTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Reader timeout must be positive, got %s", cfg.ReaderTimeout),
			fmt.Sprintf("Set %s_READER_TIMEOUT to a duration like 3s.", EnvPrefix))
	}

	if cfg.I2CBus < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("I2C bus %d doesn't exist", cfg.I2CBus),
			fmt.Sprintf("Set %s_I2C_BUS to a bus number from 'i2cdetect -l', usually 1.", EnvPrefix))
	}

	paths := []struct {
		name  string
		value string
	}{
		{"THERMAL_PATH", cfg.ThermalPath},
		{"FREQUENCY_PATH", cfg.FrequencyPath},
		{"DISK_PATH", cfg.DiskPath},
	}
	for _, p := range paths {
		if !filepath.IsAbs(p.value) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s_%s must be an absolute path, got %q", EnvPrefix, p.name, p.value),
				"Use a path starting with /.")
		}
	}

	if err := validateInterfaceName(cfg.MeshInterface); err != nil {
		return err
	}

	return nil
}

func validateInterfaceName(name string) error {
	if name == "" {
		return errors.New(errors.ErrConfig,
			"Mesh interface name is empty",
			fmt.Sprintf("Set %s_MESH_INTERFACE to an interface name like bat0.", EnvPrefix))
	}
	if len(name) > maxInterfaceName || strings.ContainsAny(name, " \t/:") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%q isn't a valid interface name", name),
			"Interface names are at most 15 characters with no spaces, slashes or colons.")
	}
	return nil
}
