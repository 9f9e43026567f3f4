package otp

import (
	"fmt"
	"strings"
)

// Known bodies and orbits so that consumers don't have to look up the
// constants themselves. Masses in kg, radii in m, μ in m^3 s^-2; the μ values
// are the published ones, which are known to greater precision than G times
// the mass.

func mustBody(c *CentralBody, err error) *CentralBody {
	if err != nil {
		panic(err)
	}
	return c
}

func mustOrbit(body *CentralBody, els Elements, inclination int) *Orbit {
	o, err := NewOrbit(body, els, inclination)
	if err != nil {
		panic(err)
	}
	return o
}

// Sun is our closest star.
var Sun = mustBody(NewCentralBody("Sun", 1.989e30, 696349999, 0, 1.32712440018e20))

// Earth is home.
var Earth = mustBody(NewCentralBodyInOrbit("Earth", 5.9736e24, 6371000, 160000, 3.986004418e14,
	mustOrbit(Sun, Elements{A: 149598023000, E: 0.0167086}, 7)))

// Moon is the only one we have.
var Moon = mustBody(NewCentralBodyInOrbit("Moon", 7.34767309e22, 1737400, 0, 4.9048695e12,
	mustOrbit(Earth, Elements{Apogee: 405400000, Perigee: 363228900}, 5)))

// Kerbol is the star of the fictional Kerbal Space Program system.
var Kerbol = mustBody(NewCentralBody("Kerbol", 1.7565459e28, 261600000, 0, 1.1723328e18))

// Kerbin is home, for Kerbals.
var Kerbin = mustBody(NewCentralBodyInOrbit("Kerbin", 5.2915158e22, 600000, 70000, 3.5316000e12,
	mustOrbit(Kerbol, Elements{Apogee: 13599840256, Perigee: 13599840256}, 0)))

// Mun is Kerbin's Moon.
var Mun = mustBody(NewCentralBodyInOrbit("Mun", 9.7599066e20, 200000, 0, 6.5138398e10,
	mustOrbit(Kerbin, Elements{A: 12000000}, 0)))

// Minmus is the mint-colored one.
var Minmus = mustBody(NewCentralBodyInOrbit("Minmus", 2.6457580e19, 60000, 0, 1.7658000e9,
	mustOrbit(Kerbin, Elements{A: 47000000}, 6)))

// Well-known orbits around Earth, based on estimates.
var (
	// ISS is the station's orbit.
	ISS = mustOrbit(Earth, Elements{Apogee: Earth.AddRadius(422000), Perigee: Earth.AddRadius(418000)}, 52)
	// GEO is the geostationary orbit.
	GEO = mustOrbit(Earth, Elements{A: 42164000}, 0)
	// KSCParking is the standard parking orbit out of Kennedy Space Center.
	KSCParking = mustOrbit(Earth, Elements{A: float64(Earth.AddRadius(200000))}, 28)
	// BaikonurParking is the standard parking orbit out of Baikonur.
	BaikonurParking = mustOrbit(Earth, Elements{A: float64(Earth.AddRadius(200000))}, 49)
	// EquatorialLEO is a low equatorial orbit.
	EquatorialLEO = mustOrbit(Earth, Elements{A: float64(Earth.AddRadius(200000))}, 0)
	// SunSynchronous is a low sun-synchronous orbit.
	SunSynchronous = mustOrbit(Earth, Elements{A: float64(Earth.AddRadius(274000))}, 97)
)

// CentralBodyFromString returns the known body with the given name.
func CentralBodyFromString(name string) (*CentralBody, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "kerbol":
		return Kerbol, nil
	case "kerbin":
		return Kerbin, nil
	case "mun":
		return Mun, nil
	case "minmus":
		return Minmus, nil
	default:
		return nil, fmt.Errorf("undefined body '%s'", name)
	}
}

// KnownOrbitFromString returns the known orbit with the given name.
func KnownOrbitFromString(name string) (*Orbit, error) {
	switch strings.ToLower(name) {
	case "iss":
		return ISS, nil
	case "geo":
		return GEO, nil
	case "ksc_parking":
		return KSCParking, nil
	case "baikonur_parking":
		return BaikonurParking, nil
	case "leo_equatorial":
		return EquatorialLEO, nil
	case "sun_synchronous":
		return SunSynchronous, nil
	default:
		return nil, fmt.Errorf("undefined orbit '%s'", name)
	}
}
