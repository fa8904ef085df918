package galaxy

import "fmt"

// Orbit radii per system tier.
const (
	LargeOrbitRadius = 28.0
	SmallOrbitRadius = 18.0
)

// Planet counts per system tier. A sun plus its planets equals the stars
// the tier stands for.
const (
	LargePlanets = StarsPerLargeSystem - 1
	SmallPlanets = StarsPerSmallSystem - 1
)

var (
	galaxyFootprint      = Size{Width: 100, Height: 100}
	largeSystemFootprint = Size{Width: 70, Height: 70}
	smallSystemFootprint = Size{Width: 50, Height: 50}
	starFootprint        = Size{Width: 15, Height: 15}
)

// Tier visuals.
const (
	largeSunRadius    = 7.0
	largeSunColor     = "#FFD700"
	largePlanetRadius = 2.5
	smallSunRadius    = 5.0
	smallSunColor     = "#FFA500"
	smallPlanetRadius = 2.0
	planetColor       = "white"
	starRadius        = 2.0
	starColor         = "white"
)

// Build instantiates the entities of s with deterministic identifiers. All
// positions are left at the origin; call Arrange to place them.
func Build(s Structure) Layout {
	l := Layout{
		Structure:    s,
		Galaxies:     make([]Galaxy, s.Galaxies),
		LargeSystems: make([]System, s.LargeSystems),
		SmallSystems: make([]System, s.SmallSystems),
		Stars:        make([]Star, s.Stars),
	}
	for i := range l.Galaxies {
		l.Galaxies[i] = Galaxy{ID: fmt.Sprintf("g%d", i)}
	}
	for i := range l.LargeSystems {
		l.LargeSystems[i] = newSystem(fmt.Sprintf("lss%d", i), SystemLarge)
	}
	for i := range l.SmallSystems {
		l.SmallSystems[i] = newSystem(fmt.Sprintf("sss%d", i), SystemSmall)
	}
	for i := range l.Stars {
		l.Stars[i] = Star{ID: fmt.Sprintf("star%d", i), R: starRadius, Color: starColor}
	}
	return l
}

func newSystem(id string, size SystemSize) System {
	sunR, sunColor, planetR, planets := smallSunRadius, smallSunColor, smallPlanetRadius, SmallPlanets
	if size == SystemLarge {
		sunR, sunColor, planetR, planets = largeSunRadius, largeSunColor, largePlanetRadius, LargePlanets
	}

	sys := System{
		ID:      id,
		Sun:     Star{ID: id + "-sun", R: sunR, Color: sunColor},
		Planets: make([]Star, planets),
		Size:    size,
	}
	for p := range sys.Planets {
		sys.Planets[p] = Star{ID: fmt.Sprintf("%s-p%d", id, p), R: planetR, Color: planetColor}
	}
	return sys
}
