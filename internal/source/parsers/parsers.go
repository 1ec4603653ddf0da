// Package parsers turns the text produced by sysfs files and hardware
// utilities into typed values.
package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParseSysfsInt parses a pseudo-file holding a single integer, such as
// /sys/class/thermal/thermal_zone0/temp.
func ParseSysfsInt(data string) (int64, error) {
	s := strings.TrimSpace(data)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return v, nil
}

// ParseVoltage extracts the value from `vcgencmd measure_volts` output,
// which is a single "volt=0.8500V" line.
func ParseVoltage(output string) (string, error) {
	line := strings.TrimSpace(output)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", fmt.Errorf("no key=value pair in %q", line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", fmt.Errorf("incomplete key=value pair in %q", line)
	}
	return value, nil
}

// i2cdetect prints each row as "NN:" followed by 16 cells of three columns
// (" xx"), so cell c of a row starts at byte i2cCellStart+3*c.
const (
	i2cCellStart = 4
	i2cCellWidth = 3
	i2cColumns   = 16
)

// ParseI2CDetect parses the grid printed by `i2cdetect -y <bus>` and returns
// the addresses that answered, in scan order, as "0x1a" strings.
// "--" marks an empty address and "UU" an address claimed by a kernel
// driver, which counts as present.
func ParseI2CDetect(output string) ([]string, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	var found []string
	seen := make(map[string]bool)
	rows := 0

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		// Address rows look like "10: -- -- 1a ...". The header row has no colon.
		if len(line) < 3 || line[2] != ':' {
			continue
		}
		base, err := strconv.ParseUint(line[:2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid row label %q", line[:3])
		}
		rows++

		for c := 0; c < i2cColumns; c++ {
			start := i2cCellStart + c*i2cCellWidth
			if start >= len(line) {
				break
			}
			end := start + 2
			if end > len(line) {
				end = len(line)
			}
			cell := strings.TrimSpace(line[start:end])

			switch cell {
			case "", "--":
				continue
			case "UU":
			default:
				if _, err := strconv.ParseUint(cell, 16, 8); err != nil {
					return nil, fmt.Errorf("unexpected cell %q in row %02x", cell, base)
				}
			}

			addr := fmt.Sprintf("0x%02x", base+uint64(c))
			if !seen[addr] {
				seen[addr] = true
				found = append(found, addr)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning i2cdetect output: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("no address rows in i2cdetect output")
	}

	return found, nil
}
