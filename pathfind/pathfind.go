// Package pathfind implements a single label-setting shortest-path search
// over an abstract node/edge graph. The search is parameterized by a
// pluggable virtual-weight policy: the plain policy yields Dijkstra's
// algorithm, a hop-biased policy prefers paths with fewer edges, and a
// heuristic-guided policy yields an A*-style informed search. New policies
// can be added without touching the search loop.
package pathfind

// Node is a graph node. Identity is the ID key: two nodes returning the same
// ID are the same node to the search, regardless of instance.
type Node interface {
	ID() string
	// Edges enumerates the edges incident to this node.
	Edges() []Edge
}

// Edge is a bidirectional weighted connection between two nodes.
type Edge interface {
	Weight() float64
	// Other returns the node on the opposite end from origin, or an error
	// when origin is not an endpoint.
	Other(origin Node) (Node, error)
}

// Heuristic estimates the remaining cost from a node to the search target.
// For the guided policy to remain optimal the heuristic must never
// overestimate the true remaining cost; the engine does not verify this.
type Heuristic func(from, target Node) float64

// Policy computes the frontier priority of reaching neighbor over edge e from
// a node whose current label cost is originCost. The priority only orders the
// frontier; reported path totals always come from true edge weights.
type Policy func(originCost float64, e Edge, neighbor, target Node) float64

// Plain is the Dijkstra policy: origin cost plus edge weight.
func Plain() Policy {
	return func(originCost float64, e Edge, _, _ Node) float64 {
		return originCost + e.Weight()
	}
}

// DefaultHopBias is the per-edge bias of the hop-biased policy.
const DefaultHopBias float64 = 5

// HopBiased adds a fixed bias per traversed edge, so that among paths of
// equal true weight the search settles on the one with fewer edges.
func HopBiased(bias float64) Policy {
	return func(originCost float64, e Edge, _, _ Node) float64 {
		return originCost + e.Weight() + bias
	}
}

// Guided adds a heuristic estimate from the neighbor to the target, steering
// the frontier toward the target first.
func Guided(h Heuristic) Policy {
	return func(originCost float64, e Edge, neighbor, target Node) float64 {
		return originCost + e.Weight() + h(neighbor, target)
	}
}

// Reporter receives progress of a long-running computation, one Increment per
// unit of work. Implementations live outside this package; a nil Reporter is
// always accepted.
type Reporter interface {
	Start(total int)
	Increment()
}

// Begin starts the reporter. A failing reporter must never abort the
// computation it reports on, so panics are swallowed.
func Begin(r Reporter, total int) {
	if r == nil {
		return
	}
	defer func() { _ = recover() }()
	r.Start(total)
}

// Tick increments the reporter, swallowing panics like Begin.
func Tick(r Reporter) {
	if r == nil {
		return
	}
	defer func() { _ = recover() }()
	r.Increment()
}
