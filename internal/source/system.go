package source

import (
	"context"
	"time"

	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	pshost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// CPU reports per-core utilisation since the previous call.
func CPU() metrics.Reader[[]float64] {
	return func(ctx context.Context) metrics.Reading[[]float64] {
		percents, err := cpu.PercentWithContext(ctx, 0, true)
		if err != nil {
			return metrics.Unavailable[[]float64](err)
		}
		if len(percents) == 0 {
			return metrics.Unavailablef[[]float64]("no CPU cores reported")
		}
		return metrics.Ok(percents)
	}
}

// Load reports the load average.
func Load() metrics.Reader[metrics.LoadAvg] {
	return func(ctx context.Context) metrics.Reading[metrics.LoadAvg] {
		avg, err := load.AvgWithContext(ctx)
		if err != nil {
			return metrics.Unavailable[metrics.LoadAvg](err)
		}
		return metrics.Ok(metrics.LoadAvg{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15})
	}
}

// Memory reports virtual memory usage.
func Memory() metrics.Reader[metrics.Memory] {
	return func(ctx context.Context) metrics.Reading[metrics.Memory] {
		vm, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			return metrics.Unavailable[metrics.Memory](err)
		}
		return metrics.Ok(metrics.Memory{
			UsedBytes:  vm.Used,
			TotalBytes: vm.Total,
			Percent:    vm.UsedPercent,
		})
	}
}

// Disk reports usage of the filesystem mounted at path.
func Disk(path string) metrics.Reader[metrics.Disk] {
	return func(ctx context.Context) metrics.Reading[metrics.Disk] {
		u, err := disk.UsageWithContext(ctx, path)
		if err != nil {
			return metrics.Unavailable[metrics.Disk](err)
		}
		return metrics.Ok(metrics.Disk{
			Path:       path,
			UsedBytes:  u.Used,
			FreeBytes:  u.Free,
			TotalBytes: u.Total,
			Percent:    u.UsedPercent,
		})
	}
}

// Network reports I/O counters summed over all interfaces.
func Network() metrics.Reader[metrics.Network] {
	return func(ctx context.Context) metrics.Reading[metrics.Network] {
		counters, err := psnet.IOCountersWithContext(ctx, false)
		if err != nil {
			return metrics.Unavailable[metrics.Network](err)
		}
		if len(counters) == 0 {
			return metrics.Unavailablef[metrics.Network]("no network counters reported")
		}
		c := counters[0]
		return metrics.Ok(metrics.Network{
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
		})
	}
}

// Processes reports the number of running processes.
func Processes() metrics.Reader[int] {
	return func(ctx context.Context) metrics.Reading[int] {
		pids, err := process.PidsWithContext(ctx)
		if err != nil {
			return metrics.Unavailable[int](err)
		}
		return metrics.Ok(len(pids))
	}
}

// Uptime reports time since boot, derived from the boot-time primitive.
func Uptime(now func() time.Time) metrics.Reader[time.Duration] {
	return func(ctx context.Context) metrics.Reading[time.Duration] {
		boot, err := pshost.BootTimeWithContext(ctx)
		if err != nil {
			return metrics.Unavailable[time.Duration](err)
		}
		up := now().Sub(time.Unix(int64(boot), 0))
		if up < 0 {
			return metrics.Unavailablef[time.Duration]("boot time %d is in the future", boot)
		}
		return metrics.Ok(up.Truncate(time.Second))
	}
}
