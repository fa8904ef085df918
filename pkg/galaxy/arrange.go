package galaxy

// Frame defaults.
const (
	DefaultHeight  = 320.0
	DefaultPadding = 15.0

	// headingHeight is the space kept free above the grid for a caption.
	headingHeight    = 60.0
	DefaultTopMargin = DefaultPadding + headingHeight
)

// Frame is the container the grid is packed into.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Padding separates elements within a row, rows from each other and the
	// grid from the container's left and right edges.
	Padding float64 `json:"padding"`

	// TopMargin is the smallest allowed y for the first row. The grid is
	// centered vertically but never starts above it.
	TopMargin float64 `json:"top_margin"`
}

// NewFrame returns a frame of the given size with default padding and top
// margin. A non-positive height selects DefaultHeight.
func NewFrame(width, height float64) Frame {
	if height <= 0 {
		height = DefaultHeight
	}
	return Frame{
		Width:     width,
		Height:    height,
		Padding:   DefaultPadding,
		TopMargin: DefaultTopMargin,
	}
}

// Arrange packs elements into rows and moves each one to the center of its
// cell. Elements keep their order: they fill rows left to right, a new row
// starts when the next element would cross Width minus Padding, and a row
// always takes at least one element so an oversized element gets a row of
// its own. Rows are centered horizontally, and the block of rows is centered
// vertically but never placed above TopMargin.
//
// Arrange returns the rows it produced, top to bottom.
func Arrange(elements []Placeable, f Frame) []Row {
	if len(elements) == 0 {
		return nil
	}

	groups := splitRows(elements, f)

	totalHeight := -f.Padding
	for _, g := range groups {
		totalHeight += rowHeight(g) + f.Padding
	}

	startY := max((f.Height-totalHeight)/2, f.TopMargin)

	rows := make([]Row, 0, len(groups))
	y := startY
	for _, g := range groups {
		h := rowHeight(g)
		w := rowWidth(g, f.Padding)

		row := Row{Y: y, Height: h, Width: w, Elements: make([]string, 0, len(g))}
		x := (f.Width - w) / 2
		for _, el := range g {
			size := el.Footprint()
			el.Place(x+size.Width/2, y+h/2)
			row.Elements = append(row.Elements, el.ElementID())
			x += size.Width + f.Padding
		}
		rows = append(rows, row)
		y += h + f.Padding
	}
	return rows
}

// splitRows buckets elements greedily into rows.
func splitRows(elements []Placeable, f Frame) [][]Placeable {
	var (
		rows    [][]Placeable
		current []Placeable
		width   float64
	)
	limit := f.Width - f.Padding
	for _, el := range elements {
		w := el.Footprint().Width
		if len(current) > 0 && width+w+f.Padding > limit {
			rows = append(rows, current)
			current = nil
			width = 0
		}
		current = append(current, el)
		width += w + f.Padding
	}
	return append(rows, current)
}

func rowHeight(row []Placeable) float64 {
	var h float64
	for _, el := range row {
		h = max(h, el.Footprint().Height)
	}
	return h
}

// rowWidth is the span from the first cell's left edge to the last cell's
// right edge.
func rowWidth(row []Placeable, padding float64) float64 {
	w := -padding
	for _, el := range row {
		w += el.Footprint().Width + padding
	}
	return w
}
