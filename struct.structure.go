package topo

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/ArcticWebb/AlaskaPermafrostThawDatabase-TopographyData/dem"
	"github.com/maseology/goHydro/grid"
)

type Structure struct {
	GD          *grid.Definition
	Z, Slp, Asp *dem.Raster // ground surface elevation; slope (degrees from horizontal); aspect (degrees cw from north)
	Nc          int         // number of cells holding an elevation
}

func (s *Structure) Checkandprint(chkdirprfx string) {
	writeFloats32(s.GD, chkdirprfx+"structure.elev.bil", s.Z.Sentinel())     // ground surface elevation
	writeFloats32(s.GD, chkdirprfx+"structure.slope.bil", s.Slp.Sentinel())  // slope angle (degrees from horizontal)
	writeFloats32(s.GD, chkdirprfx+"structure.aspect.bil", s.Asp.Sentinel()) // aspect (degrees cw from north, -9999 where flat)
}

func (s *Structure) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" structure.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" structure.Save %v", err)
	}
	f.Close()
	return nil
}

func LoadGobStructure(fp string) (*Structure, error) {
	var strc Structure
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&strc)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &strc, nil
}
