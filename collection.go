package otp

import (
	"sort"

	"github.com/m-jeu/orbital-transfer-pathfinder/pathfind"
)

// OrbitCollection is an indexed container of orbits around one central body.
// It generates a dense lattice of candidate orbits and derives every feasible
// maneuver between members sharing an apsis radius.
type OrbitCollection struct {
	Body *CentralBody

	// variants are the burn rules to attempt between each orbit pair, in
	// priority order.
	variants []Variant

	orbits []*Orbit
	byKey  map[string]*Orbit

	// apsisIdx buckets orbits by each of their apsis radii; inclinationIdx
	// buckets them by inclination. Every member orbit appears under both of
	// its apsis buckets and under its inclination bucket.
	apsisIdx       map[int][]*Orbit
	inclinationIdx map[int][]*Orbit
}

// NewOrbitCollection returns an empty collection around body that will
// connect orbits with the given maneuver variants.
func NewOrbitCollection(body *CentralBody, variants []Variant) *OrbitCollection {
	return &OrbitCollection{
		Body:           body,
		variants:       variants,
		byKey:          make(map[string]*Orbit),
		apsisIdx:       make(map[int][]*Orbit),
		inclinationIdx: make(map[int][]*Orbit),
	}
}

// AddOrbit inserts o into the member list and both indexes. An orbit
// structurally equal to an existing member is dropped, keeping the first
// instance, so a caller-supplied orbit stays the instance in the graph even
// when generation re-creates it.
func (oc *OrbitCollection) AddOrbit(o *Orbit) {
	if _, seen := oc.byKey[o.ID()]; seen {
		return
	}
	oc.byKey[o.ID()] = o
	oc.orbits = append(oc.orbits, o)
	for _, apsis := range o.Apsides() {
		oc.apsisIdx[apsis] = append(oc.apsisIdx[apsis], o)
	}
	oc.inclinationIdx[o.Inclination()] = append(oc.inclinationIdx[o.Inclination()], o)
}

// Orbits returns the member orbits in insertion order.
func (oc *OrbitCollection) Orbits() []*Orbit {
	return oc.orbits
}

// OrbitsAtApsis returns the members with an apsis at radius r (m).
func (oc *OrbitCollection) OrbitsAtApsis(r int) []*Orbit {
	return oc.apsisIdx[r]
}

// OrbitsAtInclination returns the members at the given inclination.
func (oc *OrbitCollection) OrbitsAtInclination(i int) []*Orbit {
	return oc.inclinationIdx[i]
}

// Nodes returns the member orbits as pathfinding nodes.
func (oc *OrbitCollection) Nodes() []pathfind.Node {
	nodes := make([]pathfind.Node, len(oc.orbits))
	for i, o := range oc.orbits {
		nodes[i] = o
	}
	return nodes
}

// GenerateOrbits adds a candidate orbit for every unordered pair of candidate
// radii (a radius paired with itself gives a circular orbit) at every
// inclination from 0 through 180 in steps of inclinationStep. The radius
// lattice comes from CentralBody.CandidateRadii; consult it for the perBand
// and bounds semantics. This is the quadratic step that dominates time and
// memory.
func (oc *OrbitCollection) GenerateOrbits(perBand int, bounds []int, inclinationStep int) error {
	if inclinationStep < 1 {
		inclinationStep = 1
	}
	radii := oc.Body.CandidateRadii(perBand, bounds)
	for i := 0; i <= 180; i += inclinationStep {
		if err := oc.generateAtInclination(radii, i); err != nil {
			return err
		}
	}
	return nil
}

// generateAtInclination pairs the ascending radius list as perigee <= apogee,
// which visits every unordered pair exactly once.
func (oc *OrbitCollection) generateAtInclination(radii []int, inclination int) error {
	for pi := 0; pi < len(radii); pi++ {
		for ai := pi; ai < len(radii); ai++ {
			o, err := NewOrbit(oc.Body, Elements{Apogee: radii[ai], Perigee: radii[pi]}, inclination)
			if err != nil {
				return err
			}
			oc.AddOrbit(o)
		}
	}
	return nil
}

// ComputeAllManeuvers tries, for every unordered orbit pair sharing an apsis
// bucket, each maneuver variant in priority order and constructs the first
// feasible one. At most one maneuver is created per pair per bucket; a pair
// sharing two radii gets one maneuver from each bucket, which is intended —
// the two burns are physically distinct and the search keeps the cheaper.
// The maneuvers register themselves on their orbits, so there is no return
// value. The progress reporter, which may be nil, is ticked once per bucket.
func (oc *OrbitCollection) ComputeAllManeuvers(progress pathfind.Reporter) {
	// Bucket order must not depend on map iteration order.
	radii := make([]int, 0, len(oc.apsisIdx))
	for r := range oc.apsisIdx {
		radii = append(radii, r)
	}
	sort.Ints(radii)

	pathfind.Begin(progress, len(radii))
	for _, r := range radii {
		bucket := oc.apsisIdx[r]
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				for _, v := range oc.variants {
					if v.Feasible(bucket[i], bucket[j]) {
						NewManeuver(v, bucket[i], bucket[j], r)
						break
					}
				}
			}
		}
		pathfind.Tick(progress)
	}
}
