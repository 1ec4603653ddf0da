package source

import (
	"context"
	"strconv"

	"github.com/rileyhilliard/rmon/internal/exec"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/source/parsers"
)

// DefaultI2CBus is the user-facing I2C bus on the 40-pin header.
const DefaultI2CBus = 1

// Voltage reports the core voltage from `vcgencmd measure_volts`.
func Voltage(r exec.Runner) metrics.Reader[string] {
	return func(ctx context.Context) metrics.Reading[string] {
		out, err := r.Output(ctx, "vcgencmd", "measure_volts")
		if err != nil {
			return metrics.Unavailable[string](err)
		}
		v, err := parsers.ParseVoltage(string(out))
		return metrics.From(v, err)
	}
}

// Devices scans an I2C bus with `i2cdetect -y <bus>`. A failed scan is
// reported as a single unavailable reading, never a partial list.
func Devices(r exec.Runner, bus int) metrics.Reader[[]string] {
	return func(ctx context.Context) metrics.Reading[[]string] {
		out, err := r.Output(ctx, "i2cdetect", "-y", strconv.Itoa(bus))
		if err != nil {
			return metrics.Unavailable[[]string](err)
		}
		addrs, err := parsers.ParseI2CDetect(string(out))
		if err != nil {
			return metrics.Unavailable[[]string](err)
		}
		if addrs == nil {
			addrs = []string{}
		}
		return metrics.Ok(addrs)
	}
}
