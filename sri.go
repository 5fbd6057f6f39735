package topo

import "math"

const deg2rad = math.Pi / 180.

// SolarZenith approximates the noon solar zenith angle (radians) at a
// latitude given the solar declination, both in degrees.
func SolarZenith(latDeg, declDeg float64) float64 {
	return math.Abs(latDeg-declDeg) * deg2rad
}

// SRI computes the relative potential incoming solar radiation on a sloped
// surface, bounded [-1,1]: 1 faces the sun square-on, negative faces away.
// Aspect is undefined on flat ground; any substitute works there since
// sin(slope)=0 eliminates the aspect term.
func SRI(slopeDeg, aspectDeg, latDeg float64, sg SolarGeom) float64 {
	if math.IsNaN(slopeDeg) || math.IsNaN(latDeg) {
		return math.NaN()
	}
	if math.IsNaN(aspectDeg) {
		aspectDeg = 0.
	}
	zen := SolarZenith(latDeg, sg.Decl)
	slp := slopeDeg * deg2rad
	return math.Cos(zen)*math.Cos(slp) + math.Sin(zen)*math.Sin(slp)*math.Cos((aspectDeg-sg.Azim)*deg2rad)
}
