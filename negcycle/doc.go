// Package negcycle implements a negative-cycle finder built from
// Bellman-Ford-style edge relaxation layered with "colour by seed"
// policy-graph cycle detection — the L1 layer of Howard's method.
//
// Finder is generic over a node type N (comparable, used as a map key), an
// opaque edge handle E, and an edge-weight domain D satisfying
// numeric.Ring[D]. It consumes a graph only through the small Digraph
// interface, so any container — package core's Graph via package
// graphadapter, or a hand-rolled adjacency list in a test — can supply one.
//
// Finder.Howard returns a Go 1.23 iter.Seq[[]E]: a lazy, pull-based stream
// of negative cycles. Consumers range over it and may stop at any time;
// the finder observes that as cancellation and stops relaxing. Its policy
// map stays on the Finder until the next Howard/HowardQueue call replaces it.
package negcycle
