package negcycle

import "iter"

// Digraph is the contract the finder needs from a graph container: an
// iteration order over nodes, and for each node an iteration order over
// its (destination, edge) out-pairs. Both orders must be deterministic
// across calls within one solve — the spec's §6 graph contract.
type Digraph[N comparable, E any] interface {
	// Nodes yields every node of the graph, in a deterministic order.
	Nodes() iter.Seq[N]

	// Out yields, for node n, every (destination, edge) pair for edges
	// leaving n, in a deterministic order.
	Out(n N) iter.Seq2[N, E]
}

// policyEntry records, for a relaxed target node, the edge that most
// recently improved it and the predecessor it came from.
type policyEntry[N any, E any] struct {
	Pred N
	Edge E
}
