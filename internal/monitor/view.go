package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/rmon/internal/canvas"
	"github.com/rileyhilliard/rmon/internal/gpio"
	"github.com/rileyhilliard/rmon/internal/layout"
	"github.com/rileyhilliard/rmon/internal/metrics"
	"github.com/rileyhilliard/rmon/internal/ui"
	"github.com/rileyhilliard/rmon/internal/widget"
)

// Widget ids.
const (
	idLogo      = "logo"
	idTitle     = "title"
	idCPU       = "cpu"
	idMem       = "mem"
	idDisk      = "disk"
	idNet       = "net"
	idSys       = "sys"
	idSeparator = "separator"
	idDevices   = "i2c"
	idPins      = "pins"
)

// Geometry of the dashboard.
const (
	// BarHeight is the height of every vertical gauge.
	BarHeight    = 10
	barWidth     = 2
	coreStep     = barWidth + 1
	columnHeight = 14
	indent       = 2
)

// Floor is the smallest terminal that gets the full dashboard.
var Floor = layout.Bounds{Rows: 24, Cols: 60}

var columns = []struct {
	id    string
	title string
}{
	{idCPU, "CPU"},
	{idMem, "MEM"},
	{idDisk, "DISK"},
	{idNet, "NET"},
	{idSys, "SYS"},
}

// Frame is one composed screen.
type Frame struct {
	Canvas *canvas.Canvas
	// Dropped counts cells that fell outside their region or the canvas.
	Dropped int
}

// String returns the styled frame.
func (f Frame) String() string {
	return f.Canvas.Render()
}

// DashboardSpec returns the layout for one tick. The device box and pin map
// size themselves from this tick's data.
func DashboardSpec(box widget.BoxList, pins widget.PinMap) layout.Spec {
	ids := make([]string, len(columns))
	for i, c := range columns {
		ids[i] = c.id
	}
	return layout.Spec{
		Floor: Floor,
		Header: []layout.Block{
			{ID: idLogo, X: indent, Height: len(widget.Logo), Gap: 1},
			{ID: idTitle, X: indent, Height: 1, Gap: 1},
		},
		Columns: layout.Columns{IDs: ids, Height: columnHeight, Gap: 1},
		Stack: []layout.Block{
			{ID: idSeparator, Height: 1},
			{ID: idDevices, X: indent, Width: box.Width(), Height: box.Height(), MinHeight: widget.BoxChrome + 1},
			{ID: idPins, X: indent, Width: pins.Width(), Height: pins.Height(), MinHeight: 2},
		},
	}
}

// composer draws widgets and totals the cells their pens dropped.
type composer struct {
	c       *canvas.Canvas
	dropped int
}

func (k *composer) draw(r layout.Region, w widget.Widget) {
	if r.Empty() {
		return
	}
	p := k.c.Pen(r)
	w.Draw(p)
	k.dropped += p.Dropped()
}

// Placement is one tick's snapshot with every widget region computed.
type Placement struct {
	snap    metrics.Snapshot
	bounds  layout.Bounds
	box     widget.BoxList
	pins    widget.PinMap
	regions layout.Regions
}

// Place computes the regions for snap on a canvas of size b. The device box
// and pin map size themselves from snap.
func Place(snap metrics.Snapshot, b layout.Bounds) Placement {
	box := deviceBox(snap.Devices)
	pins := pinMap(snap.Pins)
	return Placement{
		snap:    snap,
		bounds:  b,
		box:     box,
		pins:    pins,
		regions: layout.Compute(b, DashboardSpec(box, pins)),
	}
}

// Regions returns the computed regions by widget id.
func (pl Placement) Regions() layout.Regions {
	return pl.regions
}

// Compose lays out and draws snap on a canvas of size b. The result depends
// only on its inputs.
func Compose(snap metrics.Snapshot, b layout.Bounds) Frame {
	return Place(snap, b).Draw()
}

// Draw renders every widget into its region on a fresh canvas.
func (pl Placement) Draw() Frame {
	snap, b, regions := pl.snap, pl.bounds, pl.regions
	box, pins := pl.box, pl.pins

	k := &composer{c: canvas.New(b)}
	if r := regions[layout.Notice]; !r.Empty() {
		k.draw(r, widget.Notice{Size: b, Floor: Floor})
		return Frame{Canvas: k.c, Dropped: k.dropped}
	}

	k.draw(regions[idLogo], widget.Banner{Lines: widget.Logo, Style: logoStyle})
	k.draw(regions[idTitle], widget.Banner{Lines: []string{Title}, Style: titleStyle})

	for _, col := range columns {
		r := regions[col.id]
		frame := widget.Column{Title: col.title}
		k.draw(r, frame)
		inner := frame.Inner(r)
		if inner.Empty() {
			continue
		}
		switch col.id {
		case idCPU:
			k.cpu(inner, snap.CPU)
		case idMem:
			k.memory(inner, snap.Memory)
		case idDisk:
			k.draw(inner, diskPanel(snap.Disk))
		case idNet:
			k.draw(inner, netPanel(snap.Network))
		case idSys:
			k.draw(inner, SysPanel(snap))
		}
	}

	k.draw(regions[idSeparator], widget.Rule{})
	k.draw(regions[idDevices], box)
	k.draw(regions[idPins], pins)
	return Frame{Canvas: k.c, Dropped: k.dropped}
}

// ComposeNotice draws only the "too small" notice.
func ComposeNotice(b layout.Bounds) Frame {
	k := &composer{c: canvas.New(b)}
	k.draw(layout.Region{Width: b.Cols, Height: b.Rows}, widget.Notice{Size: b, Floor: Floor})
	return Frame{Canvas: k.c, Dropped: k.dropped}
}

// cpu draws a label and gauge per core, as many as fit.
func (k *composer) cpu(inner layout.Region, r metrics.Reading[[]float64]) {
	cores, ok := r.Get()
	if !ok {
		return
	}
	for i, usage := range cores {
		x := i * coreStep
		if x+barWidth > inner.Width {
			break
		}
		label := fmt.Sprintf("%02d", min(max(int(usage), 0), 99))
		k.draw(inner.Sub(x, 0, barWidth, 1), widget.Banner{Lines: []string{label}, Style: coreStyle(usage)})
		k.draw(inner.Sub(x, 1, barWidth, BarHeight), widget.Gauge{Percent: usage})
	}
}

// memory draws the usage percentage, a gauge and the byte counts.
func (k *composer) memory(inner layout.Region, r metrics.Reading[metrics.Memory]) {
	mem, ok := r.Get()
	if !ok {
		return
	}
	k.draw(inner.Sub(0, 0, inner.Width, 1), widget.Banner{
		Lines: []string{fmt.Sprintf("%5.1f%%", mem.Percent)},
		Style: memStyle,
	})
	k.draw(inner.Sub(0, 1, barWidth, BarHeight), widget.Gauge{Percent: mem.Percent})
	k.draw(inner.Sub(0, 1+BarHeight, inner.Width, 2), widget.TextPanel{Fields: []widget.Field{
		{Label: "Used", Value: metrics.Ok(humanize.IBytes(mem.UsedBytes)), Style: memStyle},
		{Label: "Total", Value: metrics.Ok(humanize.IBytes(mem.TotalBytes)), Style: memStyle},
	}})
}

func diskPanel(r metrics.Reading[metrics.Disk]) widget.TextPanel {
	return widget.TextPanel{Fields: []widget.Field{
		{Label: "Used", Value: metrics.Map(r, func(d metrics.Disk) string { return humanize.IBytes(d.UsedBytes) }), Style: diskStyle},
		{Label: "Free", Value: metrics.Map(r, func(d metrics.Disk) string { return humanize.IBytes(d.FreeBytes) }), Style: diskStyle},
		{Value: metrics.Map(r, func(d metrics.Disk) string { return fmt.Sprintf("%.1f%% used", d.Percent) }), Style: diskStyle},
		{Label: "Mount", Value: metrics.Map(r, func(d metrics.Disk) string { return d.Path }), Style: diskStyle},
	}}
}

func netPanel(r metrics.Reading[metrics.Network]) widget.TextPanel {
	return widget.TextPanel{Fields: []widget.Field{
		{Label: "Sent", Value: metrics.Map(r, func(n metrics.Network) string { return humanize.IBytes(n.BytesSent) }), Style: netStyle},
		{Label: "Recv", Value: metrics.Map(r, func(n metrics.Network) string { return humanize.IBytes(n.BytesRecv) }), Style: netStyle},
		{Label: "Tx pk", Value: metrics.Map(r, func(n metrics.Network) string { return humanize.Comma(int64(n.PacketsSent)) }), Style: netStyle},
		{Label: "Rx pk", Value: metrics.Map(r, func(n metrics.Network) string { return humanize.Comma(int64(n.PacketsRecv)) }), Style: netStyle},
	}}
}

// SysPanel lists the board sensors and host identity. Lines whose source
// is unavailable are left out.
func SysPanel(snap metrics.Snapshot) widget.TextPanel {
	return widget.TextPanel{Fields: []widget.Field{
		{Label: "Temp", Value: metrics.Map(snap.Temperature, func(c float64) string { return fmt.Sprintf("%.1f °C", c) }), Style: sysStyle},
		{Label: "Freq", Value: metrics.Map(snap.Frequency, func(mhz int) string { return fmt.Sprintf("%d MHz", mhz) }), Style: sysStyle},
		{Label: "Volt", Value: snap.Voltage, Style: sysStyle},
		{Label: "Mesh", Value: metrics.Map(snap.Mesh, meshText), Style: sysStyle},
		{Label: "Host", Value: metrics.Map(snap.Host, func(h metrics.Host) string { return h.Name }), Style: sysStyle},
		{Label: "IP", Value: metrics.Map(snap.Host, func(h metrics.Host) string { return h.Address }), Style: sysStyle},
		{Label: "Up", Value: metrics.Map(snap.Uptime, formatUptime), Style: sysStyle},
		{Label: "Load", Value: metrics.Map(snap.Load, func(l metrics.LoadAvg) string {
			return fmt.Sprintf("%.2f %.2f %.2f", l.Load1, l.Load5, l.Load15)
		}), Style: sysStyle},
		{Label: "Procs", Value: metrics.Map(snap.Processes, func(n int) string { return humanize.Comma(int64(n)) }), Style: sysStyle},
	}}
}

func meshText(joined bool) string {
	if joined {
		return ui.SymbolSuccess + " YES"
	}
	return ui.SymbolPending + " NO"
}

// formatUptime renders d as "3d 4h 5m", dropping leading zero units.
func formatUptime(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	mins := int(d/time.Minute) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", mins))
	return strings.Join(parts, " ")
}

func deviceBox(r metrics.Reading[[]string]) widget.BoxList {
	count := "?"
	if devices, ok := r.Get(); ok {
		count = fmt.Sprint(len(devices))
	}
	return widget.BoxList{Title: fmt.Sprintf("%s: %s", DeviceName, count), Items: r}
}

func pinMap(r metrics.Reading[metrics.PinLevels]) widget.PinMap {
	return widget.PinMap{Title: PinTitle, Header: gpio.Header40, Levels: r}
}
