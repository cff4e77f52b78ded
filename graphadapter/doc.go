// Package graphadapter bridges package core's Graph — the teacher
// container this module keeps and adapts — to the negcycle.Digraph and
// parametric contracts the algorithmic core consumes.
//
// FromCoreGraph exposes a *core.Graph as a negcycle.Digraph[string,
// *core.Edge] using Graph.OutEdges, the deterministic, non-mirrored
// iteration primitive added to package core for this purpose. SetDefault
// is the loader-side convenience spec §6/§9 calls for: it mutates a graph
// in place to fill any edge missing a named attribute, and is explicitly
// not part of the algorithmic core.
package graphadapter
