package topo

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Sites holds the point locations to be attributed, input order preserved.
type Sites struct {
	Names      []string  // site identifiers
	Lat, Lng   []float64 // geographic coordinates (WGS84)
	E, N       []float64 // projected coordinates [m]
	Nmalformed int       // input rows dropped at load
	nzone      int       // sites beyond the working UTM zone
}

func (s *Sites) Nsites() int { return len(s.Names) }

// checkandprint writes the count of sites landing in each grid cell
func (s *Sites) checkandprint(strc *Structure, chkdirprfx string) {
	hits := strc.GD.NullInt32(-9999)
	for _, c := range strc.GD.Sactives {
		hits[c] = 0
	}
	for i := 0; i < s.Nsites(); i++ {
		if c := strc.Z.CellID(s.E[i], s.N[i]); c >= 0 {
			if hits[c] < 0 {
				hits[c] = 0
			}
			hits[c]++
		}
	}
	writeInts(strc.GD, chkdirprfx+"sites.hits.bil", hits)
}

func (s *Sites) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" sites.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" sites.Save %v", err)
	}
	f.Close()
	return nil
}

func LoadGobSites(fp string) (*Sites, error) {
	var sts Sites
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&sts)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &sts, nil
}
