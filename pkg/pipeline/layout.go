package pipeline

import (
	"github.com/plinyoo/starfield/pkg/galaxy"
)

// GenerateLayout validates the layout options and arranges the scene.
func GenerateLayout(opts Options) (galaxy.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return galaxy.Layout{}, err
	}
	l := galaxy.GenerateFrame(opts.Stars, opts.Frame())

	opts.Logger.Debug("arranged scene",
		"galaxies", l.Structure.Galaxies,
		"large_systems", l.Structure.LargeSystems,
		"small_systems", l.Structure.SmallSystems,
		"stars", l.Structure.Stars,
		"rows", len(l.Rows))
	return l, nil
}
