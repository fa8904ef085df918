// Package galaxy turns a star count into a positioned scene of galaxies,
// solar systems and single stars.
//
// # Overview
//
// A count is decomposed like a mixed-radix number: every 100 stars become a
// galaxy, every remaining 10 a large solar system, every remaining 5 a small
// solar system, and whatever is left (0-4) is drawn as single stars. The
// resulting entities are packed into centered rows that fit a container of
// a given width, biggest first.
//
//	l := galaxy.Generate(237, 800, 320)
//	// l.Structure == galaxy.Structure{Galaxies: 2, LargeSystems: 3, SmallSystems: 1, Stars: 2}
//	for _, sys := range l.LargeSystems {
//	    fmt.Println(sys.ID, sys.X, sys.Y, len(sys.Planets))
//	}
//
// # Coordinates
//
// All stored coordinates are element centers in container pixels, with the
// origin in the top-left corner and y growing downwards (SVG convention).
// A system's sun always shares the system's center; its planets sit on a
// circle around it, the first one at angle 0.
//
// # Determinism
//
// Generation is a pure function of its arguments: identifiers follow fixed
// patterns ("g0", "lss0", "lss0-sun", "lss0-p3", "sss0", "star1") and no
// randomness or clock is involved, so identical inputs produce identical
// layouts. This makes layouts safe to cache by their inputs.
//
// # Preconditions
//
// Star counts must be non-negative and frame dimensions finite. The package
// does not validate; negative counts produce an empty layout. Use
// [github.com/plinyoo/starfield/pkg/errors.ValidateStarCount] at the edges.
package galaxy
