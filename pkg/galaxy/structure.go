package galaxy

// Tier sizes of the decomposition.
const (
	StarsPerGalaxy      = 100
	StarsPerLargeSystem = 10
	StarsPerSmallSystem = 5
)

// Structure is the tier decomposition of a star count.
type Structure struct {
	Galaxies     int `json:"galaxies"`
	LargeSystems int `json:"large_systems"`
	SmallSystems int `json:"small_systems"`
	Stars        int `json:"stars"`
}

// CalculateStructure decomposes total greedily into galaxies, large systems,
// small systems and single stars. Each tier takes as many stars as it can,
// so LargeSystems is in [0,9], SmallSystems in {0,1} and Stars in [0,4].
//
// Negative totals are outside the contract and yield the zero Structure.
func CalculateStructure(total int) Structure {
	if total <= 0 {
		return Structure{}
	}
	rem := total

	galaxies := rem / StarsPerGalaxy
	rem %= StarsPerGalaxy

	large := rem / StarsPerLargeSystem
	rem %= StarsPerLargeSystem

	small := rem / StarsPerSmallSystem
	rem %= StarsPerSmallSystem

	return Structure{
		Galaxies:     galaxies,
		LargeSystems: large,
		SmallSystems: small,
		Stars:        rem,
	}
}

// Total reconstructs the star count the structure was computed from.
func (s Structure) Total() int {
	return s.Galaxies*StarsPerGalaxy +
		s.LargeSystems*StarsPerLargeSystem +
		s.SmallSystems*StarsPerSmallSystem +
		s.Stars
}

// Elements returns the number of top-level entities the structure packs.
func (s Structure) Elements() int {
	return s.Galaxies + s.LargeSystems + s.SmallSystems + s.Stars
}

// IsZero reports whether the structure holds nothing.
func (s Structure) IsZero() bool { return s == Structure{} }
