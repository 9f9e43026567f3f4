package otp

import (
	"errors"
	"fmt"
	"math"

	"github.com/m-jeu/orbital-transfer-pathfinder/pathfind"
)

// ErrUnknownOrigin is returned by Maneuver.Other when the passed orbit is
// neither endpoint. This is a caller logic error and is never corrected
// silently.
var ErrUnknownOrigin = errors.New("origin orbit is not an endpoint of this maneuver")

// ManeuverKind identifies the burn rule a maneuver was built from.
type ManeuverKind int

const (
	// RadialBurn is a plain pro- or retrograde burn at a shared apsis.
	RadialBurn ManeuverKind = iota
	// PlaneChange is a pure inclination change between orbits with
	// identical apsides.
	PlaneChange
	// CombinedBurn folds a plane change and a radial burn into one pass at
	// a shared apsis.
	CombinedBurn
)

// String implements the Stringer interface.
func (k ManeuverKind) String() string {
	switch k {
	case RadialBurn:
		return "pro/retrograde burn"
	case PlaneChange:
		return "inclination change"
	case CombinedBurn:
		return "pro/retrograde burn with inclination change"
	default:
		return "unknown maneuver"
	}
}

// Maneuver is a bidirectional single-burn connection between two orbits,
// performed at the radius where the orbits intersect. Created once during
// collection construction and never mutated.
type Maneuver struct {
	orbit1, orbit2 *Orbit
	// Δv is the propellant cost proxy in m/s.
	Δv   float64
	kind ManeuverKind
}

// Variant couples the feasibility predicate of one burn rule with its cost
// rule. Variants are evaluated in an explicit priority order, not through
// polymorphic dispatch: the first feasible variant wins.
type Variant struct {
	Kind     ManeuverKind
	Feasible func(o1, o2 *Orbit) bool
	cost     func(o1, o2 *Orbit, r int) float64
}

// NewManeuver builds a maneuver of the given variant at shared radius r (m)
// and registers it on both orbits. The caller must have checked feasibility.
func NewManeuver(v Variant, o1, o2 *Orbit, r int) *Maneuver {
	m := &Maneuver{orbit1: o1, orbit2: o2, Δv: v.cost(o1, o2, r), kind: v.Kind}
	o1.maneuvers = append(o1.maneuvers, m)
	o2.maneuvers = append(o2.maneuvers, m)
	return m
}

// Kind returns the burn rule this maneuver was built from.
func (m *Maneuver) Kind() ManeuverKind {
	return m.kind
}

// Orbits returns both endpoints.
func (m *Maneuver) Orbits() (*Orbit, *Orbit) {
	return m.orbit1, m.orbit2
}

// Weight returns the Δv cost as the pathfinding edge weight.
func (m *Maneuver) Weight() float64 {
	return m.Δv
}

// Other returns the orbit on the opposite end of the maneuver from origin.
// Endpoints are matched structurally, so any orbit equal to an endpoint is
// accepted as that endpoint.
func (m *Maneuver) Other(origin pathfind.Node) (pathfind.Node, error) {
	switch origin.ID() {
	case m.orbit1.ID():
		return m.orbit2, nil
	case m.orbit2.ID():
		return m.orbit1, nil
	}
	return nil, fmt.Errorf("%w: %s between %s and %s asked about %s", ErrUnknownOrigin, m, m.orbit1, m.orbit2, origin)
}

// Equals determines equality based on the unordered orbit pair.
func (m *Maneuver) Equals(other *Maneuver) bool {
	return (m.orbit1.Equals(other.orbit1) && m.orbit2.Equals(other.orbit2)) ||
		(m.orbit1.Equals(other.orbit2) && m.orbit2.Equals(other.orbit1))
}

// String implements the Stringer interface.
func (m *Maneuver) String() string {
	return fmt.Sprintf("%s of %.1fm/s", m.kind, m.Δv)
}

// planeChangeCost is the law-of-cosines combination of both orbits' speeds at
// the shared radius with their inclination difference. Shared by the plane
// change and combined variants.
func planeChangeCost(o1, o2 *Orbit, r int) float64 {
	Δi := o1.Inclination() - o2.Inclination()
	if Δi < 0 {
		Δi = -Δi
	}
	return cosineRule(o1.VAt(float64(r)), o2.VAt(float64(r)), Δi)
}

// RadialBurnVariant is feasible between distinct orbits that share their
// inclination and at least one apsis radius.
var RadialBurnVariant = Variant{
	Kind: RadialBurn,
	Feasible: func(o1, o2 *Orbit) bool {
		if o1.Equals(o2) || o1.Inclination() != o2.Inclination() {
			return false
		}
		return len(o1.sharedApsides(o2)) >= 1
	},
	cost: func(o1, o2 *Orbit, r int) float64 {
		return math.Abs(o1.VAt(float64(r)) - o2.VAt(float64(r)))
	},
}

// PlaneChangeVariant is feasible between orbits with identical apsides sets
// and differing inclinations.
var PlaneChangeVariant = Variant{
	Kind: PlaneChange,
	Feasible: func(o1, o2 *Orbit) bool {
		return o1.apsidesEqual(o2) && o1.Inclination() != o2.Inclination()
	},
	cost: planeChangeCost,
}

// CombinedBurnVariant is feasible between orbits with differing inclinations
// that share at least one apsis radius, a strict superset of the plane change
// rule without the identical-apsides requirement.
var CombinedBurnVariant = Variant{
	Kind: CombinedBurn,
	Feasible: func(o1, o2 *Orbit) bool {
		if o1.Inclination() == o2.Inclination() {
			return false
		}
		return len(o1.sharedApsides(o2)) >= 1
	},
	cost: planeChangeCost,
}

// DefaultVariants returns all burn rules in their priority order: the radial
// burn before the pure plane change before the combined burn.
func DefaultVariants() []Variant {
	return []Variant{RadialBurnVariant, PlaneChangeVariant, CombinedBurnVariant}
}
