package galaxy

// Generate builds and arranges the scene for total stars in a container of
// width × height pixels, using default padding and top margin. A non-positive
// height selects DefaultHeight.
func Generate(total int, width, height float64) Layout {
	return GenerateFrame(total, NewFrame(width, height))
}

// GenerateFrame builds and arranges the scene for total stars in f.
//
// A total of zero (or less) returns an empty layout without running the
// builder or the arranger.
func GenerateFrame(total int, f Frame) Layout {
	if total <= 0 {
		return Layout{
			Width:        f.Width,
			Height:       f.Height,
			Padding:      f.Padding,
			TopMargin:    f.TopMargin,
			Galaxies:     []Galaxy{},
			LargeSystems: []System{},
			SmallSystems: []System{},
			Stars:        []Star{},
		}
	}

	l := Build(CalculateStructure(total))
	l.Width, l.Height = f.Width, f.Height
	l.Padding, l.TopMargin = f.Padding, f.TopMargin
	l.Rows = Arrange(l.Elements(), f)
	return l
}
