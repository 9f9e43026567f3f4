package otp

import (
	"testing"

	"github.com/gonum/floats"
)

// testEarth returns a fresh Earth-like body so tests never share maneuver
// state through the package-level catalog.
func testEarth(t *testing.T) *CentralBody {
	t.Helper()
	earth, err := NewCentralBody("Earth", 5.972e24, 6371000, 200000, 3.986004418e14)
	if err != nil {
		t.Fatalf("could not build test body: %s", err)
	}
	return earth
}

func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}

func TestNewCentralBody(t *testing.T) {
	withμ, err := NewCentralBody("test", 1000000, 10000, 1000, 123.45)
	if err != nil {
		t.Fatal(err)
	}
	if withμ.GM() != 123.45 {
		t.Fatal("a provided μ should be used verbatim")
	}
	if withμ.MinOrbitR != 11000 {
		t.Fatalf("radius plus surface clearance should give MinOrbitR, got %d", withμ.MinOrbitR)
	}
	if withμ.MaxOrbitR != 0 {
		t.Fatal("a body without an orbit has no known maximum viable orbit radius")
	}

	withoutμ, err := NewCentralBody("test", 1000000, 10000, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(withoutμ.GM(), 6.6743e-5, 1e-9) {
		t.Fatalf("an absent μ should derive as mass·G, got %g", withoutμ.GM())
	}

	if _, err = NewCentralBody("broken", 0, 10000, 0, 0); err == nil {
		t.Fatal("a non-positive mass must be rejected")
	}
	if _, err = NewCentralBody("broken", 1000, -1, 0, 0); err == nil {
		t.Fatal("a non-positive radius must be rejected")
	}
}

func TestAddRadius(t *testing.T) {
	body, err := NewCentralBody("test", 1000000, 10000, 1000, 123.45)
	if err != nil {
		t.Fatal(err)
	}
	if body.AddRadius(1) != 10001 {
		t.Fatal("AddRadius should add the body's radius to an altitude")
	}
}

func TestHillSphere(t *testing.T) {
	parent, err := NewCentralBody("parent", 1000000000, 1000, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	parentOrbit, err := NewOrbit(parent, Elements{A: 1000000, E: 0.1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body, err := NewCentralBodyInOrbit("moonlet", 1000, 100, 0, 0, parentOrbit)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(body.HillSphereR(), 6240.251469, 1e-3) {
		t.Fatalf("hill sphere radius = %f", body.HillSphereR())
	}
	if body.MaxOrbitR != 2080 {
		t.Fatalf("MaxOrbitR should be the hill sphere radius over 3, got %d", body.MaxOrbitR)
	}
}

func TestCandidateRadii(t *testing.T) {
	parent, err := NewCentralBody("parent", 1000000000, 1000, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	parentOrbit, err := NewOrbit(parent, Elements{A: 1000000, E: 0.1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	body, err := NewCentralBodyInOrbit("moonlet", 1000, 100, 0, 0, parentOrbit)
	if err != nil {
		t.Fatal(err)
	}

	radii := body.CandidateRadii(25, nil)
	if d := len(radii) - 25; d < -1 || d > 1 {
		t.Fatalf("a single band should yield roughly perBand radii, got %d", len(radii))
	}
	if radii[0] != body.MinOrbitR {
		t.Fatalf("radii should start at MinOrbitR, got %d", radii[0])
	}
	for i := 0; i+2 < len(radii); i++ {
		if radii[i+1]-radii[i] != radii[i+2]-radii[i+1] {
			t.Fatalf("radii within a band should be evenly spaced: %v", radii[i:i+3])
		}
	}
	for i := 0; i+1 < len(radii); i++ {
		if radii[i+1] < radii[i] {
			t.Fatal("radii must be in ascending order")
		}
	}
	if last := radii[len(radii)-1]; last >= body.MaxOrbitR {
		t.Fatalf("radii must stay below MaxOrbitR, got %d", last)
	}

	twoBands := body.CandidateRadii(10, []int{1200})
	if len(twoBands) < 20 {
		t.Fatalf("two bands of 10 should yield at least 20 radii, got %d", len(twoBands))
	}
	found := false
	for _, r := range twoBands {
		if r == 1200 {
			found = true
		}
	}
	if !found {
		t.Fatal("an explicit boundary should itself appear as a radius")
	}

	if body.CandidateRadii(0, nil) != nil {
		t.Fatal("a non-positive perBand yields no radii")
	}
}

func TestCandidateRadiiWithoutUpperBound(t *testing.T) {
	body, err := NewCentralBody("lone", 1000000, 10000, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if radii := body.CandidateRadii(10, nil); radii != nil {
		t.Fatalf("a body without MaxOrbitR and without bounds has no bands, got %v", radii)
	}
	radii := body.CandidateRadii(10, []int{20000})
	if len(radii) != 10 {
		t.Fatalf("expected exactly 10 radii in [10000, 20000), got %d", len(radii))
	}
}
