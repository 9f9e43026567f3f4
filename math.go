package otp

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

const deg2rad = math.Pi / 180

// avg returns the arithmetic mean of the provided numbers.
func avg(nums ...float64) float64 {
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums))
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// cosineRule returns the magnitude of the velocity change between a speed v1
// and a speed v2 whose directions differ by angleDif degrees. This is the law
// of cosines, computed as the norm of the velocity triangle's closing vector.
func cosineRule(v1, v2 float64, angleDif int) float64 {
	sinΔ, cosΔ := math.Sincos(Deg2rad(float64(angleDif)))
	from := mat64.NewVector(2, []float64{v1, 0})
	to := mat64.NewVector(2, []float64{v2 * cosΔ, v2 * sinΔ})
	Δv := mat64.NewVector(2, nil)
	Δv.SubVec(to, from)
	return mat64.Norm(Δv, 2)
}
