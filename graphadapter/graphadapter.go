package graphadapter

import (
	"fmt"
	"iter"

	log "github.com/sirupsen/logrus"

	"github.com/ratiograph/digraphx/core"
	"github.com/ratiograph/digraphx/negcycle"
)

// coreDigraph adapts a *core.Graph to negcycle.Digraph[string, *core.Edge].
type coreDigraph struct {
	g *core.Graph
}

// FromCoreGraph wraps g as a negcycle.Digraph. The returned value shares
// g's storage; mutating g while a solve over it is in progress is
// undefined, matching spec §5's shared-resource rule for the graph.
func FromCoreGraph(g *core.Graph) negcycle.Digraph[string, *core.Edge] {
	return &coreDigraph{g: g}
}

// Nodes yields every vertex ID in the graph, sorted — core.Graph.Vertices
// is already deterministic, so this is a direct pass-through.
func (d *coreDigraph) Nodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range d.g.Vertices() {
			if !yield(id) {
				return
			}
		}
	}
}

// Out yields (destination, edge) pairs for every edge leaving n, via
// Graph.OutEdges — strictly e.From == n, sorted by Edge.ID, with no
// undirected-mirror duplication.
func (d *coreDigraph) Out(n string) iter.Seq2[string, *core.Edge] {
	return func(yield func(string, *core.Edge) bool) {
		edges, err := d.g.OutEdges(n)
		if err != nil {
			return
		}
		for _, e := range edges {
			if !yield(e.To, e) {
				return
			}
		}
	}
}

// RequireDirectable returns an error if g's construction-time policy makes
// directed traversal impossible. Out() reports each edge only from its From
// side (Graph.OutEdges never mirrors an undirected edge back toward its
// source), so on a graph that is undirected by default and disallows
// per-edge overrides FromCoreGraph would silently hand the Finder every
// undirected edge as a one-way From->To edge. Checks g.Directed() and g.MixedEdges() directly
// because either policy alone is sufficient: a mixed graph may still carry
// individually-directed edges even with a false default.
func RequireDirectable(g *core.Graph) error {
	if g.Directed() || g.MixedEdges() {
		return nil
	}

	return fmt.Errorf("graphadapter: graph is undirected by default and does not allow per-edge overrides; build with core.WithDirected(true) or core.NewMixedGraph")
}

// Describe logs a structured snapshot of g's policy flags and catalog
// sizes, for diagnosing why a solve produced an unexpected result (e.g. an
// empty cycle because the graph allows loops but the input never set one,
// or a Weighted()==false graph whose Weight field a caller assumed was
// live). Queries each policy flag individually rather than through
// Stats() alone, since Stats() is a convenience aggregate over the same
// per-flag getters a caller might otherwise gate behavior on directly.
func Describe(g *core.Graph) *core.GraphStats {
	log.WithFields(log.Fields{
		"directed_default": g.Directed(),
		"weighted":         g.Weighted(),
		"allows_loops":     g.Looped(),
		"allows_multi":     g.Multigraph(),
		"mixed_mode":       g.MixedEdges(),
	}).Debug("graphadapter: graph policy")

	stats := g.Stats()
	log.WithFields(log.Fields{
		"vertices":   stats.VertexCount,
		"edges":      stats.EdgeCount,
		"directed":   stats.DirectedEdgeCount,
		"undirected": stats.UndirectedEdgeCount,
	}).Debug("graphadapter: graph catalog sizes")

	return stats
}

// SetDefault fills any edge of g missing the named attribute with value.
// It is the convenience routine spec §9 describes as "loader-side", not
// part of the algorithmic core: it mutates the graph and has no return
// value, matching core.Graph's own direct-mutation methods.
func SetDefault(g *core.Graph, attribute string, value float64) {
	for _, e := range g.Edges() {
		if _, ok := e.Attr(attribute); ok {
			continue
		}
		e.SetAttr(attribute, value)
		log.WithFields(log.Fields{
			"edge":      e.ID,
			"attribute": attribute,
			"value":     value,
		}).Debug("graphadapter: filled missing edge attribute with default")
	}
}
