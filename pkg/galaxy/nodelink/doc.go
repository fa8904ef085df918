// Package nodelink draws a scene as a hierarchy diagram instead of a grid.
//
// [ToDOT] emits Graphviz DOT with a root "scene" node, one node per galaxy,
// system and single star, and an edge from each sun to its planets. Graphviz
// positions the nodes; [RenderSVG] runs it in-process through go-graphviz.
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Large scenes produce wide diagrams. Collapse planets with
// Options.CollapsePlanets to keep one node per system.
package nodelink
