package source

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmon/internal/gpio"
	"github.com/rileyhilliard/rmon/internal/metrics"
)

// Pins reads every line through r. Each line is read on its own: a failing
// pin is unavailable while the rest are still read.
func Pins(r gpio.Reader, lines []int) metrics.Reader[metrics.PinLevels] {
	return func(ctx context.Context) metrics.Reading[metrics.PinLevels] {
		if r == nil {
			return metrics.Unavailablef[metrics.PinLevels]("no pin bank")
		}
		levels := make(metrics.PinLevels, len(lines))
		for _, line := range lines {
			if err := ctx.Err(); err != nil {
				levels[line] = metrics.Unavailable[gpio.Level](err)
				continue
			}
			levels[line] = readPin(r, line)
		}
		return metrics.Ok(levels)
	}
}

func readPin(r gpio.Reader, line int) (out metrics.Reading[gpio.Level]) {
	defer func() {
		if p := recover(); p != nil {
			out = metrics.Unavailablef[gpio.Level]("GPIO%d: panic: %v", line, p)
		}
	}()
	lvl, err := r.Read(line)
	if err != nil {
		return metrics.Unavailable[gpio.Level](fmt.Errorf("GPIO%d: %w", line, err))
	}
	return metrics.Ok(lvl)
}
