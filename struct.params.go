package topo

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ArcticWebb/AlaskaPermafrostThawDatabase-TopographyData/dem"
	"gopkg.in/yaml.v3"
)

// Params holds the run-time knobs. Defaults reflect the reference deployment:
// 100m neighbourhood on a 2m DEM, UTM zone 6, solstice-noon solar position.
type Params struct {
	Radius       float64   `yaml:"radius"`       // neighbourhood radius [m]
	MaxDiskCells int       `yaml:"maxdiskcells"` // cell-visit cap per neighbourhood query
	Nworkers     int       `yaml:"nworkers"`
	UTMZone      int       `yaml:"utmzone"`
	IDField      string    `yaml:"idfield"` // site-id attribute column of shapefile input
	WritePSI     bool      `yaml:"writepsi"`
	Solar        SolarGeom `yaml:"solar"`
	SolarTime    string    `yaml:"solartime"` // RFC3339; when set, Solar is derived for this instant
	RefLat       float64   `yaml:"reflat"`    // reference coordinate for SolarTime
	RefLng       float64   `yaml:"reflng"`
}

func DefaultParams() Params {
	return Params{
		Radius:       100.,
		MaxDiskCells: 250000,
		Nworkers:     8,
		UTMZone:      6,
		IDField:      "id",
		Solar:        NewSolarGeom(),
		RefLat:       64.73,
		RefLng:       -150.,
	}
}

// LoadParams reads a yaml parameter file over the defaults; empty path keeps
// the defaults as-is.
func LoadParams(fp string) (Params, error) {
	p := DefaultParams()
	if fp == "" {
		return p, p.check()
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		return p, fmt.Errorf("LoadParams: %v", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("LoadParams %s: %v", fp, err)
	}
	if p.SolarTime != "" {
		t, err := time.Parse(time.RFC3339, p.SolarTime)
		if err != nil {
			return p, fmt.Errorf("LoadParams %s solartime: %v", fp, err)
		}
		p.Solar = NewSolarGeomFromTime(t, p.RefLat, p.RefLng)
	}
	return p, p.check()
}

func (p *Params) check() error {
	if p.Radius < 0. {
		return fmt.Errorf("params: negative neighbourhood radius %f", p.Radius)
	}
	if p.MaxDiskCells <= 0 || p.MaxDiskCells > dem.MaxDiskCells {
		return fmt.Errorf("params: maxdiskcells must lie in (0,%d]", dem.MaxDiskCells)
	}
	if p.Nworkers < 1 {
		p.Nworkers = 1
	}
	if p.IDField == "" {
		p.IDField = "id"
	}
	return nil
}

// CheckRadius verifies the neighbourhood fits the cell-visit cap at a given
// cell size; callable only once the raster is known.
func (p *Params) CheckRadius(cs float64) error {
	nhalf := int(math.Ceil(p.Radius / cs))
	if d := 2*nhalf + 1; d*d > p.MaxDiskCells {
		return fmt.Errorf("params: radius %.0fm visits %d cells at %.1fm resolution, above the %d cap", p.Radius, d*d, cs, p.MaxDiskCells)
	}
	return nil
}
