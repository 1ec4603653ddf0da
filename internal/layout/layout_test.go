package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboard mirrors the shape the monitor uses: logo, title, five columns,
// then a separator, a device box and a pin table.
func dashboard(boxHeight, tableHeight int) Spec {
	return Spec{
		Floor: Bounds{Rows: 24, Cols: 60},
		Header: []Block{
			{ID: "logo", X: 2, Height: 5, Gap: 1},
			{ID: "title", Height: 1, Gap: 1},
		},
		Columns: Columns{
			IDs:    []string{"cpu", "mem", "disk", "net", "sys"},
			Height: 14,
			Gap:    1,
		},
		Stack: []Block{
			{ID: "separator", Height: 1},
			{ID: "i2c", X: 2, Width: 30, Height: boxHeight, MinHeight: 3},
			{ID: "pins", Height: tableHeight, MinHeight: 2},
		},
	}
}

func TestRegion_Geometry(t *testing.T) {
	r := Region{X: 2, Y: 3, Width: 4, Height: 2}

	assert.False(t, r.Empty())
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))

	assert.True(t, r.Within(Bounds{Rows: 5, Cols: 6}))
	assert.False(t, r.Within(Bounds{Rows: 4, Cols: 6}))

	assert.True(t, r.Overlaps(Region{X: 5, Y: 4, Width: 3, Height: 3}))
	assert.False(t, r.Overlaps(Region{X: 6, Y: 3, Width: 3, Height: 3}))
	assert.False(t, r.Overlaps(Region{X: 2, Y: 3}))

	assert.True(t, Region{}.Empty())
	assert.True(t, Region{X: 100, Y: 100}.Within(Bounds{}))
}

func TestRegion_Sub(t *testing.T) {
	parent := Region{X: 10, Y: 5, Width: 8, Height: 4}

	tests := []struct {
		name       string
		x, y, w, h int
		want       Region
	}{
		{"inside", 1, 1, 2, 2, Region{X: 11, Y: 6, Width: 2, Height: 2}},
		{"clipped right and bottom", 6, 2, 5, 5, Region{X: 16, Y: 7, Width: 2, Height: 2}},
		{"clipped left", -2, 0, 4, 1, Region{X: 10, Y: 5, Width: 2, Height: 1}},
		{"past the edge", 8, 0, 2, 2, Region{}},
		{"zero size", 0, 0, 0, 3, Region{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parent.Sub(tt.x, tt.y, tt.w, tt.h)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Overlaps(Region{X: 0, Y: 0, Width: 10, Height: 100}))
		})
	}

	assert.Equal(t, Region{}, Region{}.Sub(0, 0, 5, 5))
}

func TestCompute_FullSize(t *testing.T) {
	regions := Compute(Bounds{Rows: 50, Cols: 100}, dashboard(4, 21))

	assert.Equal(t, Region{X: 2, Y: 0, Width: 98, Height: 5}, regions["logo"])
	assert.Equal(t, Region{X: 0, Y: 6, Width: 100, Height: 1}, regions["title"])

	for i, id := range []string{"cpu", "mem", "disk", "net", "sys"} {
		assert.Equal(t, Region{X: i * 20, Y: 8, Width: 20, Height: 14}, regions[id], id)
	}

	assert.Equal(t, Region{X: 0, Y: 23, Width: 100, Height: 1}, regions["separator"])
	assert.Equal(t, Region{X: 2, Y: 24, Width: 30, Height: 4}, regions["i2c"])
	assert.Equal(t, Region{X: 0, Y: 28, Width: 100, Height: 21}, regions["pins"])
	assert.True(t, regions[Notice].Empty())
}

func TestCompute_ColumnRemainderUnused(t *testing.T) {
	regions := Compute(Bounds{Rows: 50, Cols: 83}, dashboard(3, 21))

	assert.Equal(t, 16, regions["cpu"].Width)
	last := regions["sys"]
	assert.Equal(t, 64, last.X)
	assert.Equal(t, 80, last.X+last.Width)
}

func TestCompute_FeedsHeightForward(t *testing.T) {
	small := Compute(Bounds{Rows: 60, Cols: 80}, dashboard(3, 21))
	large := Compute(Bounds{Rows: 60, Cols: 80}, dashboard(10, 21))

	assert.Equal(t, 27, small["pins"].Y)
	assert.Equal(t, 34, large["pins"].Y)
	assert.Equal(t, small["i2c"].Y+small["i2c"].Height, small["pins"].Y)
	assert.Equal(t, large["i2c"].Y+large["i2c"].Height, large["pins"].Y)
}

func TestCompute_ClipsAndSkips(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		wantI2C  Region
		wantPins Region
	}{
		{
			name:     "table clipped",
			rows:     35,
			wantI2C:  Region{X: 2, Y: 24, Width: 30, Height: 4},
			wantPins: Region{X: 0, Y: 28, Width: 80, Height: 7},
		},
		{
			name:     "table below min height",
			rows:     29,
			wantI2C:  Region{X: 2, Y: 24, Width: 30, Height: 4},
			wantPins: Region{},
		},
		{
			name:     "box clipped",
			rows:     27,
			wantI2C:  Region{X: 2, Y: 24, Width: 30, Height: 3},
			wantPins: Region{},
		},
		{
			name:     "box skipped",
			rows:     25,
			wantI2C:  Region{},
			wantPins: Region{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Compute(Bounds{Rows: tt.rows, Cols: 80}, dashboard(4, 21))
			assert.Equal(t, tt.wantI2C, regions["i2c"])
			assert.Equal(t, tt.wantPins, regions["pins"])
		})
	}
}

func TestCompute_BelowFloor(t *testing.T) {
	sizes := []Bounds{
		{Rows: 23, Cols: 100},
		{Rows: 50, Cols: 59},
		{Rows: 10, Cols: 20},
		{Rows: 1, Cols: 1},
	}

	for _, b := range sizes {
		t.Run(fmt.Sprintf("%dx%d", b.Rows, b.Cols), func(t *testing.T) {
			spec := dashboard(4, 21)
			regions := Compute(b, spec)

			assert.Equal(t, Region{Width: b.Cols, Height: b.Rows}, regions[Notice])

			nonEmpty := 0
			for _, id := range spec.IDs() {
				if !regions[id].Empty() {
					nonEmpty++
				}
			}
			assert.Equal(t, 1, nonEmpty)
		})
	}
}

func TestCompute_ZeroCanvas(t *testing.T) {
	regions := Compute(Bounds{}, dashboard(4, 21))
	for id, r := range regions {
		assert.True(t, r.Empty(), id)
	}
}

func TestCompute_AllIDsPresent(t *testing.T) {
	spec := dashboard(4, 21)
	for _, b := range []Bounds{{Rows: 5, Cols: 5}, {Rows: 40, Cols: 90}} {
		regions := Compute(b, spec)
		for _, id := range spec.IDs() {
			_, ok := regions[id]
			assert.True(t, ok, "%s missing at %v", id, b)
		}
	}
}

func TestCompute_NoOverlapAndContained(t *testing.T) {
	for rows := 24; rows <= 70; rows++ {
		for cols := 60; cols <= 160; cols += 7 {
			for _, boxHeight := range []int{3, 5, 10} {
				b := Bounds{Rows: rows, Cols: cols}
				spec := dashboard(boxHeight, 21)
				regions := Compute(b, spec)
				ids := spec.IDs()

				for i, a := range ids {
					ra := regions[a]
					require.True(t, ra.Within(b), "%s=%+v escapes %v", a, ra, b)
					for _, c := range ids[i+1:] {
						require.False(t, ra.Overlaps(regions[c]),
							"%s=%+v overlaps %s=%+v at %v", a, ra, c, regions[c], b)
					}
				}
				require.True(t, regions[Notice].Empty())
			}
		}
	}
}

func TestCompute_WideBlockClippedToCanvas(t *testing.T) {
	spec := Spec{
		Floor: Bounds{Rows: 1, Cols: 1},
		Stack: []Block{{ID: "wide", X: 5, Width: 200, Height: 2}},
	}
	regions := Compute(Bounds{Rows: 10, Cols: 40}, spec)
	assert.Equal(t, Region{X: 5, Y: 0, Width: 35, Height: 2}, regions["wide"])
}

func TestCompute_OffsetPastEdge(t *testing.T) {
	spec := Spec{
		Stack: []Block{{ID: "late", X: 50, Height: 2}},
	}
	regions := Compute(Bounds{Rows: 10, Cols: 40}, spec)
	assert.True(t, regions["late"].Empty())
}

func TestSpec_IDs(t *testing.T) {
	ids := dashboard(3, 21).IDs()
	assert.Equal(t, []string{
		"logo", "title",
		"cpu", "mem", "disk", "net", "sys",
		"separator", "i2c", "pins",
		Notice,
	}, ids)
}
