package topo

import (
	"math"

	"github.com/ArcticWebb/AlaskaPermafrostThawDatabase-TopographyData/dem"
	"github.com/maseology/mmaths"
)

// Attribute carries one site's derived values through the pipeline stages.
// Every field past the geometry starts missing (NaN) and is filled by its
// stage; a NaN surviving to output marks the value missing, never zero.
type Attribute struct {
	Name              string
	Lat, Lng          float64
	Elev, Slope, Asp  float64 // sampled at the site's cell
	MeanElev, RelElev float64 // neighbourhood mean; elevation less the mean
	Sri               float64 // relative potential incoming solar radiation [-1,1]
}

func newAttribute(sts *Sites, i int) Attribute {
	nan := math.NaN()
	return Attribute{
		Name: sts.Names[i],
		Lat:  sts.Lat[i],
		Lng:  sts.Lng[i],
		Elev: nan, Slope: nan, Asp: nan,
		MeanElev: nan, RelElev: nan, Sri: nan,
	}
}

// sampleable reports whether the site resolved to any terrain value at all.
// Sites off the raster (or on a NoData cell) keep every stage-filled field
// missing and are counted in the run report.
func (a *Attribute) sampleable() bool {
	return !math.IsNaN(a.Elev) || !math.IsNaN(a.Slope) || !math.IsNaN(a.Asp)
}

// flat: gradient vanished, aspect undefined
func (a *Attribute) flat() bool { return a.Slope == 0. && math.IsNaN(a.Asp) }

func (a Attribute) sample(strc *Structure, e, n float64) Attribute {
	a.Elev = strc.Z.ValueAt(e, n)
	a.Slope = strc.Slp.ValueAt(e, n)
	a.Asp = strc.Asp.ValueAt(e, n)
	return a
}

func (a Attribute) relativeElev(z *dem.Raster, e, n, radius float64) Attribute {
	a.MeanElev = z.MeanInDisk(e, n, radius)
	a.RelElev = a.Elev - a.MeanElev // NaN mean keeps this missing
	return a
}

func (a Attribute) solarIndex(sg SolarGeom) Attribute {
	a.Sri = SRI(a.Slope, a.Asp, a.Lat, sg)
	return a
}

// evalSite runs the three stages for one site. Unsampleable sites skip the
// later stages but still return a (mostly missing) record.
func evalSite(strc *Structure, sts *Sites, p *Params, i int) Attribute {
	a := newAttribute(sts, i)
	e, n := sts.E[i], sts.N[i]
	a = a.sample(strc, e, n)
	if !a.sampleable() {
		return a
	}
	a = a.relativeElev(strc.Z, e, n, p.Radius)
	a = a.solarIndex(p.Solar)
	return a
}

// Report tallies how the run went; every input site lands in exactly one of
// processed/unsampleable, with noneighbourhood and flat as sub-tallies of
// processed sites.
type Report struct {
	Nsites, Nprocessed, Nunsampleable int
	Nnoneighbourhood, Nflat           int
	Nmalformed                        int // dropped before evaluation
	MedianRelElev                     float64
}

func newReport(attrs []Attribute, nmalformed int) Report {
	rpt := Report{Nsites: len(attrs), Nmalformed: nmalformed, MedianRelElev: math.NaN()}
	rel := make([]float64, 0, len(attrs))
	for i := range attrs {
		a := &attrs[i]
		if !a.sampleable() {
			rpt.Nunsampleable++
			continue
		}
		rpt.Nprocessed++
		if math.IsNaN(a.MeanElev) {
			rpt.Nnoneighbourhood++
		} else {
			rel = append(rel, a.RelElev)
		}
		if a.flat() {
			rpt.Nflat++
		}
	}
	if len(rel) > 0 {
		rpt.MedianRelElev = mmaths.SliceMedian(rel)
	}
	return rpt
}
