package otp

import (
	"testing"

	"github.com/gonum/floats"

	"github.com/m-jeu/orbital-transfer-pathfinder/pathfind"
)

// End to end: lattice generation, maneuver computation and search working
// together over a small Kerbin-like system.
func TestPlanTransfer(t *testing.T) {
	star, err := NewCentralBody("star", 1.7565459e28, 261600000, 0, 1.1723328e18)
	if err != nil {
		t.Fatal(err)
	}
	body, err := NewCentralBodyInOrbit("planet", 5.2915158e22, 600000, 70000, 3.5316000e12,
		mustTestOrbit(t, star, Elements{A: 13599840256}, 0))
	if err != nil {
		t.Fatal(err)
	}

	radii := body.CandidateRadii(3, nil)
	if len(radii) < 2 {
		t.Fatalf("the lattice needs at least two radii to be interesting, got %v", radii)
	}
	start := mustTestOrbit(t, body, Elements{A: float64(radii[0])}, 0)
	target := mustTestOrbit(t, body, Elements{A: float64(radii[len(radii)-1])}, 60)

	collection := NewOrbitCollection(body, DefaultVariants())
	collection.AddOrbit(start)
	collection.AddOrbit(target)
	if err := collection.GenerateOrbits(3, nil, 60); err != nil {
		t.Fatal(err)
	}
	collection.ComputeAllManeuvers(nil)

	graph := pathfind.New(collection.Nodes(),
		pathfind.WithPolicy(pathfind.HopBiased(pathfind.DefaultHopBias)))
	total, edges, nodes, err := graph.ShortestPath(start, target, nil)
	if err != nil {
		t.Fatal(err)
	}

	if total <= 0 {
		t.Fatalf("a transfer between different orbits costs propellant, total = %f", total)
	}
	if len(edges) == 0 || len(nodes) != len(edges)+1 {
		t.Fatalf("malformed plan: %d edges, %d nodes", len(edges), len(nodes))
	}
	if nodes[0] != pathfind.Node(start) || nodes[len(nodes)-1] != pathfind.Node(target) {
		t.Fatal("the plan must run from the start orbit to the target orbit")
	}
	sum := 0.0
	for _, e := range edges {
		if e.Weight() <= 0 {
			t.Fatal("every maneuver burns propellant")
		}
		sum += e.Weight()
	}
	if !floats.EqualWithinAbs(sum, total, 1e-9) {
		t.Fatalf("the reported total must be the sum of the edge weights: %f vs %f", sum, total)
	}

	// The guided search trades optimality for speed but must still produce a
	// valid plan between the same endpoints.
	guided := pathfind.New(collection.Nodes(),
		pathfind.WithPolicy(pathfind.Guided(TransferHeuristic)))
	guidedTotal, _, guidedNodes, err := guided.ShortestPath(start, target, nil)
	if err != nil {
		t.Fatal(err)
	}
	if guidedTotal <= 0 || guidedNodes[len(guidedNodes)-1] != pathfind.Node(target) {
		t.Fatalf("the guided plan must still reach the target, total = %f", guidedTotal)
	}
}
