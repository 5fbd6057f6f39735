package topo

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// fixed solar position: summer solstice, local solar noon at the reference
// site (64.73N 150.00W). one pair shared by the whole run; the per-site
// quantity is latitude (see SRI).
const (
	defaultDecl = 23.44  // solar declination [deg]
	defaultAzim = 136.52 // solar azimuth [deg cw from north]
)

type SolarGeom struct {
	Decl float64 // solar declination [deg]
	Azim float64 // solar azimuth [deg cw from north]
}

func NewSolarGeom() SolarGeom { return SolarGeom{Decl: defaultDecl, Azim: defaultAzim} }

// NewSolarGeomFromTime derives the declination/azimuth pair for an arbitrary
// instant and reference coordinate from the apparent solar position.
func NewSolarGeomFromTime(t time.Time, latDeg, lngDeg float64) SolarGeom {
	jd := julian.TimeToJD(t.UTC())

	// apparent RA/Dec of the sun, rotated to an earth-fixed unit vector
	ra, dec := solar.ApparentEquatorial(jd)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()
	gmst := sidereal.Apparent0UT(jd)
	cg, sg := gmst.Angle().Cos(), gmst.Angle().Sin()
	xe := x*cg + y*sg
	ye := -x*sg + y*cg
	ze := z

	// project onto the local east/north plane at the reference coordinate
	sp, cp := math.Sincos(latDeg * deg2rad)
	sl, cl := math.Sincos(lngDeg * deg2rad)
	se := -xe*sl + ye*cl
	sn := -xe*sp*cl - ye*sp*sl + ze*cp
	azm := math.Atan2(se, sn) / deg2rad
	if azm < 0. {
		azm += 360.
	}

	return SolarGeom{
		Decl: math.Asin(dec.Sin()) / deg2rad,
		Azim: azm,
	}
}
