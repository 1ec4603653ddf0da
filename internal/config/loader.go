// Package config loads rmon's settings from RMON_* environment variables.
package config

import (
	"github.com/rileyhilliard/rmon/internal/errors"
	"github.com/spf13/viper"
)

// Load reads settings from the environment, applies defaults and validates
// the result.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't parse rmon settings",
			"Check the RMON_* environment variables. Durations look like 500ms or 2s.")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can find it on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("interval", d.Interval)
	v.SetDefault("command_timeout", d.CommandTimeout)
	v.SetDefault("reader_timeout", d.ReaderTimeout)
	v.SetDefault("i2c_bus", d.I2CBus)
	v.SetDefault("thermal_path", d.ThermalPath)
	v.SetDefault("frequency_path", d.FrequencyPath)
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("mesh_interface", d.MeshInterface)
	v.SetDefault("debug_log", d.DebugLog)
}
