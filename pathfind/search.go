package pathfind

import (
	"container/heap"
	"errors"
	"math"
)

// ErrNoPath is returned when the frontier is exhausted without reaching the
// target, so callers can distinguish "unreachable" from "zero cost".
var ErrNoPath = errors.New("no path between start and target")

// label is the per-search state of one node: the lowest virtual cost it has
// been reached at so far, and the edge that discovered it. Labels live in a
// per-search side table keyed by node ID and are discarded when the search
// returns, so consecutive searches over the same node set are independent.
type label struct {
	cost float64
	via  Edge
	from Node
}

// Graph owns an unordered collection of nodes and runs shortest-path
// searches over them. Searches are synchronous and single-threaded; run
// concurrent searches on separate Graph values over the same nodes if needed,
// since all mutable search state is per-invocation.
type Graph struct {
	nodes  []Node
	policy Policy
}

// Option configures a Graph.
type Option func(*Graph)

// WithPolicy sets the virtual-weight policy. The default is Plain.
func WithPolicy(p Policy) Option {
	return func(g *Graph) { g.policy = p }
}

// New returns a graph over the given nodes.
func New(nodes []Node, opts ...Option) *Graph {
	g := &Graph{nodes: nodes, policy: Plain()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Nodes returns the graph's node collection.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// ShortestPath finds the lowest-cost path from start to target. It returns
// the total true weight along the path, the edges traversed in order, and the
// nodes visited in order (start first, target last). The progress reporter,
// which may be nil, is ticked once per finalized node.
func (g *Graph) ShortestPath(start, target Node, progress Reporter) (float64, []Edge, []Node, error) {
	labels := make(map[string]*label, len(g.nodes))
	finalized := make(map[string]bool, len(g.nodes))

	pq := make(priorityQueue, 0, len(g.nodes))
	for _, n := range g.nodes {
		l := &label{cost: math.Inf(1)}
		if n.ID() == start.ID() {
			l.cost = 0
		}
		labels[n.ID()] = l
		pq = append(pq, &queueItem{node: n, priority: l.cost, index: len(pq)})
	}
	heap.Init(&pq)
	Begin(progress, len(g.nodes))

	for pq.Len() > 0 {
		node := heap.Pop(&pq).(*queueItem).node
		if node.ID() == target.ID() {
			return g.reconstruct(labels, start, target)
		}
		if finalized[node.ID()] {
			continue // stale frontier entry
		}
		nodeLabel := labels[node.ID()]
		if math.IsInf(nodeLabel.cost, 1) {
			break // only unreachable nodes left
		}
		for _, e := range node.Edges() {
			neighbor, err := e.Other(node)
			if err != nil {
				return 0, nil, nil, err
			}
			if finalized[neighbor.ID()] {
				continue
			}
			neighborLabel, known := labels[neighbor.ID()]
			if !known {
				continue // edge leads outside this graph
			}
			candidate := g.policy(nodeLabel.cost, e, neighbor, target)
			if candidate < neighborLabel.cost {
				neighborLabel.cost, neighborLabel.via, neighborLabel.from = candidate, e, node
				heap.Push(&pq, &queueItem{node: neighbor, priority: candidate})
			}
		}
		finalized[node.ID()] = true
		Tick(progress)
	}
	return 0, nil, nil, ErrNoPath
}

// reconstruct follows the discoverer back-pointers from target to start and
// reverses the result. The total is re-accumulated from true edge weights so
// that policy biases never pollute the reported cost.
func (g *Graph) reconstruct(labels map[string]*label, start, target Node) (float64, []Edge, []Node, error) {
	if target.ID() == start.ID() {
		return 0, nil, []Node{target}, nil
	}
	var total float64
	var edges []Edge
	nodes := []Node{target}
	node := target
	for node.ID() != start.ID() {
		l := labels[node.ID()]
		if l == nil || l.via == nil {
			return 0, nil, nil, ErrNoPath
		}
		total += l.via.Weight()
		edges = append(edges, l.via)
		node = l.from
		nodes = append(nodes, node)
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return total, edges, nodes, nil
}
