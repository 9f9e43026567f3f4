package otp

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/m-jeu/orbital-transfer-pathfinder/pathfind"
)

// ErrKeplerElements is returned when an Orbit is constructed without exactly
// one complete Kepler parameter pair.
var ErrKeplerElements = errors.New("orbit requires either semi-major axis with eccentricity, or apogee with perigee")

// Elements carries one complete Kepler parameter pair for NewOrbit: either A
// (m) with E, or Apogee with Perigee (m, from the body centre). A zero value
// marks the pair as unset.
type Elements struct {
	A       float64
	E       float64
	Apogee  int
	Perigee int
}

// Orbit is an elliptical orbit around a CentralBody. Identity is structural:
// two orbits with the same apsides and inclination are the same orbit, no
// matter the body or the instance.
type Orbit struct {
	Body *CentralBody

	a           float64 // semi-major axis, m
	e           float64 // eccentricity, 0 <= e < 1
	apogee      int     // m, from the body centre, >= perigee
	perigee     int     // m, from the body centre
	inclination int     // degrees, 0..180

	// maneuvers are attached by NewManeuver during collection construction.
	maneuvers []*Maneuver
}

// NewOrbit returns the orbit described by exactly one complete parameter pair
// of els. Apogee and perigee are swapped when passed in the wrong order.
func NewOrbit(body *CentralBody, els Elements, inclination int) (*Orbit, error) {
	o := &Orbit{Body: body, inclination: inclination}
	hasAE := els.A != 0
	hasApsides := els.Apogee != 0 || els.Perigee != 0
	switch {
	case hasAE && !hasApsides:
		if els.A < 0 || els.E < 0 || els.E >= 1 {
			return nil, fmt.Errorf("%w: a=%g e=%g", ErrKeplerElements, els.A, els.E)
		}
		o.a, o.e = els.A, els.E
		o.apogee = int(math.Round(els.A * (1 + els.E)))
		o.perigee = int(math.Round(els.A * (1 - els.E)))
	case hasApsides && !hasAE:
		apo, per := els.Apogee, els.Perigee
		if per > apo {
			apo, per = per, apo
		}
		if per <= 0 {
			return nil, fmt.Errorf("%w: apo=%d per=%d", ErrKeplerElements, els.Apogee, els.Perigee)
		}
		o.apogee, o.perigee = apo, per
		o.a = avg(float64(apo), float64(per))
		o.e = 1 - 2/((float64(apo)/float64(per))+1)
	default:
		return nil, ErrKeplerElements
	}
	return o, nil
}

// SemiMajorAxis returns a in m.
func (o *Orbit) SemiMajorAxis() float64 {
	return o.a
}

// Eccentricity returns e.
func (o *Orbit) Eccentricity() float64 {
	return o.e
}

// Apogee returns the farthest distance from the body centre in m.
func (o *Orbit) Apogee() int {
	return o.apogee
}

// Perigee returns the closest distance from the body centre in m.
func (o *Orbit) Perigee() int {
	return o.perigee
}

// Inclination returns the orbital plane tilt in degrees.
func (o *Orbit) Inclination() int {
	return o.inclination
}

// Apsides returns the orbit's apsis radii in ascending order. A circular
// orbit has a single apsis.
func (o *Orbit) Apsides() []int {
	if o.apogee == o.perigee {
		return []int{o.perigee}
	}
	return []int{o.perigee, o.apogee}
}

// sharedApsides returns the radii at which both orbits have an apsis.
func (o *Orbit) sharedApsides(other *Orbit) []int {
	var shared []int
	for _, r := range o.Apsides() {
		if r == other.apogee || r == other.perigee {
			shared = append(shared, r)
		}
	}
	return shared
}

// apsidesEqual reports whether both orbits have the exact same apsides set.
func (o *Orbit) apsidesEqual(other *Orbit) bool {
	return o.apogee == other.apogee && o.perigee == other.perigee
}

// VAt returns the orbital speed in m/s at radius r (m) via the vis-viva
// equation. r must lie between perigee and apogee; VAt panics when the
// vis-viva term goes negative since a NaN speed would silently corrupt every
// downstream cost comparison.
func (o *Orbit) VAt(r float64) float64 {
	term := 2/r - 1/o.a
	if term < 0 {
		panic(fmt.Errorf("vis-viva: radius %gm outside orbit %s", r, o))
	}
	return math.Sqrt(o.Body.GM() * term)
}

// Equals determines equality based on apsides and inclination.
func (o *Orbit) Equals(other *Orbit) bool {
	return o.apsidesEqual(other) && o.inclination == other.inclination
}

// ID returns the orbit's structural identity key for pathfinding.
func (o *Orbit) ID() string {
	return strconv.Itoa(o.apogee) + "|" + strconv.Itoa(o.perigee) + "|" + strconv.Itoa(o.inclination)
}

// Edges returns all maneuvers attached to this orbit.
func (o *Orbit) Edges() []pathfind.Edge {
	edges := make([]pathfind.Edge, len(o.maneuvers))
	for i, m := range o.maneuvers {
		edges[i] = m
	}
	return edges
}

// Maneuvers returns all maneuvers attached to this orbit.
func (o *Orbit) Maneuvers() []*Maneuver {
	return o.maneuvers
}

// String implements the Stringer interface.
func (o *Orbit) String() string {
	return fmt.Sprintf("(Orbit: a=%dm p=%dm i=%d°)", o.apogee, o.perigee, o.inclination)
}

// TransferHeuristic estimates the remaining transfer cost between two orbits
// as a weighted combination of inclination difference and apsis distance, for
// use with the guided search policy. No admissibility guarantee is made; an
// overestimating heuristic trades optimality for speed.
func TransferHeuristic(from, target pathfind.Node) float64 {
	a, b := from.(*Orbit), target.(*Orbit)
	return math.Abs(float64(a.inclination-b.inclination)) +
		math.Abs(float64(a.apogee-b.apogee))/10000 +
		math.Abs(float64(a.perigee-b.perigee))/10000
}
