package otp

import (
	"fmt"
	"math"
)

// GravitationalConstant is G in kg^-1 m^3 s^-2, per JPL.
const GravitationalConstant = 6.67430e-11

// CentralBody is a massive body around which another object can orbit. The
// orbiting object is assumed to be light enough that its pull on the body can
// be ignored. Immutable after construction.
type CentralBody struct {
	Name   string
	Mass   float64 // kg
	Radius int     // m
	// MinOrbitR is the lowest viable orbit radius from the body centre, in m,
	// accounting for terrain and atmosphere.
	MinOrbitR int
	// MaxOrbitR estimates the highest viable orbit radius in m, derived from
	// the hill sphere. Zero when the body is not itself in a known orbit.
	MaxOrbitR int
	// Orbit is the orbit this body itself is in, nil for e.g. a lone star.
	Orbit *Orbit

	μ           float64 // m^3 s^-2
	hillSphereR float64
}

// NewCentralBody returns a body with the given mass (kg), radius (m) and
// lowest viable orbit altitude above the surface (m). A zero μ is derived as
// mass times the gravitational constant; pass the known value when available
// since μ is usually known to greater precision than G or the mass.
func NewCentralBody(name string, mass float64, radius, surfaceClearance int, μ float64) (*CentralBody, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("central body %s: non-positive mass %g", name, mass)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("central body %s: non-positive radius %d", name, radius)
	}
	if μ == 0 {
		μ = mass * GravitationalConstant
	}
	return &CentralBody{Name: name, Mass: mass, Radius: radius, MinOrbitR: radius + surfaceClearance, μ: μ}, nil
}

// NewCentralBodyInOrbit returns a body that is itself in an orbit, which
// bounds its viable orbit radii from above via the hill sphere.
func NewCentralBodyInOrbit(name string, mass float64, radius, surfaceClearance int, μ float64, orbit *Orbit) (*CentralBody, error) {
	c, err := NewCentralBody(name, mass, radius, surfaceClearance, μ)
	if err != nil {
		return nil, err
	}
	if orbit != nil {
		c.Orbit = orbit
		c.hillSphereR = hillSphere(orbit, mass)
		c.MaxOrbitR = int(math.Round(c.hillSphereR / 3))
	}
	return c, nil
}

// hillSphere approximates the radius within which a body of mass ownMass on
// the given orbit dominates its parent's gravity.
func hillSphere(orbit *Orbit, ownMass float64) float64 {
	return orbit.SemiMajorAxis() * (1 - orbit.Eccentricity()) *
		math.Cbrt(ownMass/(3*orbit.Body.Mass))
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c *CentralBody) GM() float64 {
	return c.μ
}

// HillSphereR returns the hill sphere radius in m, zero when unknown.
func (c *CentralBody) HillSphereR() float64 {
	return c.hillSphereR
}

// AddRadius adds the body's radius to an altitude, converting a distance
// measured from the surface to one measured from the centre.
func (c *CentralBody) AddRadius(altitude int) int {
	return altitude + c.Radius
}

// CandidateRadii returns the ordered radii at which candidate orbits should
// be generated. The boundary list is bracketed by MinOrbitR and, when known,
// MaxOrbitR, and each consecutive pair of boundaries is filled with perBand
// radii at step Δ/perBand. The step truncates toward the lower bound; that is
// a deliberate, reproducible policy. Duplicates at band boundaries are
// tolerated by the callers.
func (c *CentralBody) CandidateRadii(perBand int, bounds []int) []int {
	if perBand < 1 {
		return nil
	}
	limits := make([]int, 0, len(bounds)+2)
	limits = append(limits, c.MinOrbitR)
	limits = append(limits, bounds...)
	if c.MaxOrbitR > 0 {
		limits = append(limits, c.MaxOrbitR)
	}
	var radii []int
	for i := 0; i+1 < len(limits); i++ {
		lo, hi := limits[i], limits[i+1]
		step := (hi - lo) / perBand
		if step < 1 {
			step = 1 // keep a degenerate band from stalling
		}
		for r := lo; r < hi; r += step {
			radii = append(radii, r)
		}
	}
	return radii
}

// String implements the Stringer interface.
func (c *CentralBody) String() string {
	return c.Name + " body"
}
