// Package layout assigns a rectangle of the terminal to every widget for one
// tick.
//
// The layout is top to bottom: header blocks, one row of equal-width
// columns, then stacked blocks whose heights are supplied per tick from
// their content. Each block's full height moves the cursor for the next
// block, so variable-height content never overlaps what sits below it.
// Blocks that run off the bottom are clipped, or skipped when fewer than
// their minimum rows remain.
package layout

// Notice is the id of the region used for the "terminal too small" notice.
const Notice = "notice"

// Bounds is the size of the terminal canvas in cells.
type Bounds struct {
	Rows int
	Cols int
}

// Covers reports whether b is at least as large as floor in both dimensions.
func (b Bounds) Covers(floor Bounds) bool {
	return b.Rows >= floor.Rows && b.Cols >= floor.Cols
}

// Region is a rectangle assigned to one widget. A zero-area region means
// the widget is skipped this tick.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether r has no area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Within reports whether r lies entirely inside b. Empty regions are always
// within.
func (r Region) Within(b Bounds) bool {
	if r.Empty() {
		return true
	}
	return r.X >= 0 && r.Y >= 0 && r.X+r.Width <= b.Cols && r.Y+r.Height <= b.Rows
}

// Overlaps reports whether r and o share at least one cell.
func (r Region) Overlaps(o Region) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Sub returns the rectangle at (x, y) relative to r, of size w by h, clipped
// to r. The result is empty when nothing of it lies inside r.
func (r Region) Sub(x, y, w, h int) Region {
	if r.Empty() {
		return Region{}
	}
	x0, y0 := max(r.X+x, r.X), max(r.Y+y, r.Y)
	x1, y1 := min(r.X+x+w, r.X+r.Width), min(r.Y+y+h, r.Y+r.Height)
	if x1 <= x0 || y1 <= y0 {
		return Region{}
	}
	return Region{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Block is a full-row slot in the vertical stack.
type Block struct {
	ID string
	// X is the left offset of the block.
	X int
	// Width of the block; zero fills the row to the right edge.
	Width int
	// Height the block wants. It is fed forward even when clipped.
	Height int
	// MinHeight is the fewest rows worth drawing; zero means one.
	MinHeight int
	// Gap is the number of blank rows after the block.
	Gap int
}

// Columns is a row of equal-width groups. The width of each is Cols/len(IDs)
// and the remainder is unused.
type Columns struct {
	IDs    []string
	Height int
	Gap    int
}

// Spec describes the widgets to place.
type Spec struct {
	// Floor is the smallest canvas that gets a real layout.
	Floor   Bounds
	Header  []Block
	Columns Columns
	Stack   []Block
}

// IDs returns every widget id in the spec, in placement order, followed by
// Notice.
func (s Spec) IDs() []string {
	ids := make([]string, 0, len(s.Header)+len(s.Columns.IDs)+len(s.Stack)+1)
	for _, b := range s.Header {
		ids = append(ids, b.ID)
	}
	ids = append(ids, s.Columns.IDs...)
	for _, b := range s.Stack {
		ids = append(ids, b.ID)
	}
	return append(ids, Notice)
}

// Regions maps widget ids to their rectangles. Ids not present read as the
// zero Region.
type Regions map[string]Region

// Compute places every widget in spec on a canvas of size b.
func Compute(b Bounds, spec Spec) Regions {
	regions := make(Regions, len(spec.Header)+len(spec.Columns.IDs)+len(spec.Stack)+1)
	for _, id := range spec.IDs() {
		regions[id] = Region{}
	}

	if !b.Covers(spec.Floor) {
		if b.Rows > 0 && b.Cols > 0 {
			regions[Notice] = Region{Width: b.Cols, Height: b.Rows}
		}
		return regions
	}

	y := 0
	for _, blk := range spec.Header {
		regions[blk.ID] = place(b, blk, y)
		y += blk.Height + blk.Gap
	}

	if n := len(spec.Columns.IDs); n > 0 {
		colWidth := b.Cols / n
		h := clip(b, y, spec.Columns.Height, 1)
		for i, id := range spec.Columns.IDs {
			if h == 0 || colWidth == 0 {
				continue
			}
			regions[id] = Region{X: i * colWidth, Y: y, Width: colWidth, Height: h}
		}
		y += spec.Columns.Height + spec.Columns.Gap
	}

	for _, blk := range spec.Stack {
		regions[blk.ID] = place(b, blk, y)
		y += blk.Height + blk.Gap
	}
	return regions
}

// place positions blk at row y, clipped to b.
func place(b Bounds, blk Block, y int) Region {
	if blk.X < 0 || blk.X >= b.Cols {
		return Region{}
	}
	width := blk.Width
	if width <= 0 || blk.X+width > b.Cols {
		width = b.Cols - blk.X
	}
	h := clip(b, y, blk.Height, blk.MinHeight)
	if h == 0 {
		return Region{}
	}
	return Region{X: blk.X, Y: y, Width: width, Height: h}
}

// clip returns how many of want rows starting at y fit on the canvas, or
// zero when fewer than minRows fit.
func clip(b Bounds, y, want, minRows int) int {
	if minRows <= 0 {
		minRows = 1
	}
	if want <= 0 || y < 0 {
		return 0
	}
	h := want
	if remain := b.Rows - y; h > remain {
		h = remain
	}
	if h < minRows {
		return 0
	}
	return h
}
