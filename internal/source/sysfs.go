package source

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/source/parsers"
	"github.com/spf13/afero"
)

// Well-known pseudo-files on Raspberry Pi OS.
const (
	DefaultThermalPath   = "/sys/class/thermal/thermal_zone0/temp"
	DefaultFrequencyPath = "/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"
)

// Thermal reads the SoC temperature in degrees Celsius from a file holding
// millidegrees.
func Thermal(fs afero.Fs, path string) metrics.Reader[float64] {
	return func(ctx context.Context) metrics.Reading[float64] {
		milli, err := readInt(ctx, fs, path)
		if err != nil {
			return metrics.Unavailable[float64](err)
		}
		return metrics.Ok(float64(milli) / 1000)
	}
}

// Frequency reads the current CPU0 clock in MHz from a file holding kHz.
func Frequency(fs afero.Fs, path string) metrics.Reader[int] {
	return func(ctx context.Context) metrics.Reading[int] {
		khz, err := readInt(ctx, fs, path)
		if err != nil {
			return metrics.Unavailable[int](err)
		}
		return metrics.Ok(int(khz / 1000))
	}
}

// readInt reads a single-integer pseudo-file, giving up when ctx expires.
func readInt(ctx context.Context, fs afero.Fs, path string) (int64, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := afero.ReadFile(fs, path)
		ch <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("read %s: %w", path, ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return 0, r.err
		}
		v, err := parsers.ParseSysfsInt(string(r.data))
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	}
}
