package galaxy

import "math"

// Size is the width and height of an element's cell in the grid.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placeable is anything the grid arranger can position. Footprint reports
// the cell the element occupies; Place receives the center of that cell.
type Placeable interface {
	ElementID() string
	Footprint() Size
	Place(x, y float64)
}

// =============================================================================
// Star
// =============================================================================

// Star is a single drawable point: an individual star, a sun or a planet.
type Star struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Color string  `json:"color"`
}

// ElementID returns the star identifier.
func (s *Star) ElementID() string { return s.ID }

// Footprint returns the cell size of a single star.
func (s *Star) Footprint() Size { return starFootprint }

// Place moves the star to (x, y).
func (s *Star) Place(x, y float64) { s.X, s.Y = x, y }

// =============================================================================
// System
// =============================================================================

// SystemSize selects the visual tier of a solar system.
type SystemSize string

const (
	SystemSmall SystemSize = "small"
	SystemLarge SystemSize = "large"
)

// System is a solar system: a sun with planets evenly spaced on one orbit.
// X and Y are the system center and always equal the sun position once placed.
type System struct {
	ID      string     `json:"id"`
	Sun     Star       `json:"sun"`
	Planets []Star     `json:"planets"`
	Size    SystemSize `json:"size"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
}

// ElementID returns the system identifier.
func (s *System) ElementID() string { return s.ID }

// Footprint returns the cell size for the system's tier.
func (s *System) Footprint() Size {
	if s.Size == SystemLarge {
		return largeSystemFootprint
	}
	return smallSystemFootprint
}

// OrbitRadius is the distance between the sun and each planet.
func (s *System) OrbitRadius() float64 {
	if s.Size == SystemLarge {
		return LargeOrbitRadius
	}
	return SmallOrbitRadius
}

// Place centers the system on (x, y), moves the sun there and lays the
// planets out on the orbit.
func (s *System) Place(x, y float64) {
	s.X, s.Y = x, y
	s.Sun.X, s.Sun.Y = x, y
	positionPlanets(s.Sun, s.Planets, s.OrbitRadius())
}

// positionPlanets spreads planets evenly on a circle around sun, starting
// at angle 0 and going clockwise in screen coordinates.
func positionPlanets(sun Star, planets []Star, orbit float64) {
	if len(planets) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(planets))
	for i := range planets {
		angle := step * float64(i)
		planets[i].X = sun.X + orbit*math.Cos(angle)
		planets[i].Y = sun.Y + orbit*math.Sin(angle)
	}
}

// =============================================================================
// Galaxy
// =============================================================================

// Galaxy is an opaque block standing for a hundred stars.
type Galaxy struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// ElementID returns the galaxy identifier.
func (g *Galaxy) ElementID() string { return g.ID }

// Footprint returns the galaxy cell size.
func (g *Galaxy) Footprint() Size { return galaxyFootprint }

// Place moves the galaxy to (x, y).
func (g *Galaxy) Place(x, y float64) { g.X, g.Y = x, y }

// =============================================================================
// Layout
// =============================================================================

// Layout is a complete scene: every entity of a star count with its position,
// plus the frame it was arranged in.
type Layout struct {
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	Padding      float64   `json:"padding"`
	TopMargin    float64   `json:"top_margin"` // band above the grid reserved for a caption
	Structure    Structure `json:"structure"`
	Galaxies     []Galaxy  `json:"galaxies"`
	LargeSystems []System  `json:"large_systems"`
	SmallSystems []System  `json:"small_systems"`
	Stars        []Star    `json:"stars"`
	Rows         []Row     `json:"rows,omitempty"`
}

// Row is one packed line of the grid.
type Row struct {
	Y        float64  `json:"y"`      // top edge
	Height   float64  `json:"height"` // tallest element in the row
	Width    float64  `json:"width"`  // occupied width, without outer padding
	Elements []string `json:"elements"`
}

// Elements returns pointers to the top-level entities in packing order:
// galaxies, large systems, small systems, then single stars. Planets and
// suns are not included; they move with their system.
func (l *Layout) Elements() []Placeable {
	out := make([]Placeable, 0, len(l.Galaxies)+len(l.LargeSystems)+len(l.SmallSystems)+len(l.Stars))
	for i := range l.Galaxies {
		out = append(out, &l.Galaxies[i])
	}
	for i := range l.LargeSystems {
		out = append(out, &l.LargeSystems[i])
	}
	for i := range l.SmallSystems {
		out = append(out, &l.SmallSystems[i])
	}
	for i := range l.Stars {
		out = append(out, &l.Stars[i])
	}
	return out
}

// IsEmpty reports whether the layout holds no entities.
func (l *Layout) IsEmpty() bool {
	return len(l.Galaxies) == 0 && len(l.LargeSystems) == 0 &&
		len(l.SmallSystems) == 0 && len(l.Stars) == 0
}

// UnitCount counts the stars the scene stands for: a hundred per galaxy,
// the sun and planets of every system, and every single star. For a layout
// produced by Generate it equals the input count.
func (l *Layout) UnitCount() int {
	n := len(l.Galaxies)*StarsPerGalaxy + len(l.Stars)
	for _, s := range l.LargeSystems {
		n += 1 + len(s.Planets)
	}
	for _, s := range l.SmallSystems {
		n += 1 + len(s.Planets)
	}
	return n
}
