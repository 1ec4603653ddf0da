// Package gpio describes the physical GPIO header and reads pin levels
// through periph.io.
package gpio

import "fmt"

// Level is the digital level read from a GPIO line.
type Level int

const (
	Low Level = iota
	High
)

// String renders the level the way the pin map shows it.
func (l Level) String() string {
	if l == High {
		return "ON"
	}
	return "OFF"
}

// Kind tells a polled pin apart from a fixed label.
type Kind int

const (
	KindLabel Kind = iota // power rail, ground, ID EEPROM pins; never read
	KindPin               // a GPIO line that is read every tick
)

// Entry is one physical connector position.
type Entry struct {
	kind  Kind
	label string
	line  int
}

// Label returns an entry that is always rendered as text.
func Label(text string) Entry {
	return Entry{kind: KindLabel, label: text}
}

// Pin returns an entry for GPIO line n.
func Pin(n int) Entry {
	return Entry{kind: KindPin, line: n}
}

// IsPin reports whether the entry is a polled GPIO line.
func (e Entry) IsPin() bool { return e.kind == KindPin }

// Line returns the GPIO line number, or -1 for labels.
func (e Entry) Line() int {
	if e.kind != KindPin {
		return -1
	}
	return e.line
}

// Name is the text shown next to the physical pin number.
func (e Entry) Name() string {
	if e.kind == KindPin {
		return fmt.Sprintf("GPIO%d", e.line)
	}
	return e.label
}

// Row is one pair of physical pins: odd on the left, even on the right.
type Row struct {
	Left  Entry
	Right Entry
}

// Header is the ordered list of connector rows.
type Header []Row

// Physical returns the physical pin numbers of row i.
func (h Header) Physical(i int) (left, right int) {
	return 2*i + 1, 2*i + 2
}

// Lines returns every GPIO line in the header in physical order, once each.
func (h Header) Lines() []int {
	seen := make(map[int]bool)
	var lines []int
	add := func(e Entry) {
		if !e.IsPin() || seen[e.line] {
			return
		}
		seen[e.line] = true
		lines = append(lines, e.line)
	}
	for _, r := range h {
		add(r.Left)
		add(r.Right)
	}
	return lines
}

// Header40 is the 40-pin Raspberry Pi header (models B+ and later).
var Header40 = Header{
	{Label("3V3"), Label("5V")},
	{Pin(2), Label("5V")},
	{Pin(3), Label("GND")},
	{Pin(4), Pin(14)},
	{Label("GND"), Pin(15)},
	{Pin(17), Pin(18)},
	{Pin(27), Label("GND")},
	{Pin(22), Pin(23)},
	{Label("3V3"), Pin(24)},
	{Pin(10), Label("GND")},
	{Pin(9), Pin(25)},
	{Pin(11), Pin(8)},
	{Label("GND"), Pin(7)},
	{Label("ID_SD"), Label("ID_SC")},
	{Pin(5), Label("GND")},
	{Pin(6), Pin(12)},
	{Pin(13), Label("GND")},
	{Pin(19), Pin(16)},
	{Pin(26), Pin(20)},
	{Label("GND"), Pin(21)},
}

// ReservedLines are configured for the I2C bus and are not claimed as inputs.
var ReservedLines = []int{2, 3}
