package otp

import (
	"testing"

	"github.com/gonum/floats"
)

func TestCatalogBodies(t *testing.T) {
	if Earth.MaxOrbitR <= 0 {
		t.Fatal("Earth orbits the Sun and must have a maximum viable orbit radius")
	}
	if Earth.MaxOrbitR >= int(Earth.HillSphereR()) {
		t.Fatal("the maximum viable orbit radius sits well inside the hill sphere")
	}
	if Sun.MaxOrbitR != 0 {
		t.Fatal("the Sun orbits nothing we model")
	}
	if Kerbin.Orbit == nil || Kerbin.Orbit.Body != Kerbol {
		t.Fatal("Kerbin orbits Kerbol")
	}
	if Moon.GM() >= Earth.GM() {
		t.Fatal("catalog constants are off")
	}
}

func TestCatalogOrbits(t *testing.T) {
	if !floats.EqualWithinAbs(GEO.SemiMajorAxis(), 42164000, 1) {
		t.Fatalf("GEO a = %f", GEO.SemiMajorAxis())
	}
	if GEO.Inclination() != 0 {
		t.Fatal("GEO is equatorial")
	}
	if ISS.Inclination() != 52 {
		t.Fatalf("ISS inclination = %d", ISS.Inclination())
	}
	if KSCParking.Perigee() != Earth.AddRadius(200000) {
		t.Fatal("the KSC parking orbit sits at 200km altitude")
	}
}

func TestCentralBodyFromString(t *testing.T) {
	for _, name := range []string{"Earth", "earth", "EARTH"} {
		body, err := CentralBodyFromString(name)
		if err != nil || body != Earth {
			t.Fatalf("lookup of %q failed: %v", name, err)
		}
	}
	if _, err := CentralBodyFromString("Vulcan"); err == nil {
		t.Fatal("an unknown body must be an error")
	}
}

func TestKnownOrbitFromString(t *testing.T) {
	orbit, err := KnownOrbitFromString("GEO")
	if err != nil || orbit != GEO {
		t.Fatalf("lookup of GEO failed: %v", err)
	}
	orbit, err = KnownOrbitFromString("ksc_parking")
	if err != nil || orbit != KSCParking {
		t.Fatalf("lookup of ksc_parking failed: %v", err)
	}
	if _, err = KnownOrbitFromString("molniya"); err == nil {
		t.Fatal("an unknown orbit must be an error")
	}
}
