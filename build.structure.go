package topo

import (
	"fmt"
	"log"
	"math"

	"github.com/ArcticWebb/AlaskaPermafrostThawDatabase-TopographyData/dem"
	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

func buildSTRC(gdefFP, demFP string) Structure {

	///////////////////////////////////////////////////////
	// STRUCTURE
	///////////////////////////////////////////////////////
	println(" > step 1: load grid definition")
	gd, lat := func() (*grid.Definition, *dem.Lattice) {
		gd, err := grid.ReadGDEF(gdefFP, true)
		if err != nil {
			log.Fatalf("%v", err)
		}
		lat, err := dem.ParseHeader(gdefFP)
		if err != nil {
			log.Fatalf(" buildSTRC dem.ParseHeader error: %v", err)
		}
		if gd.Ncells() != lat.Ncells() {
			log.Fatalf(" buildSTRC error: grid definition cell count mismatch (%d != %d)", gd.Ncells(), lat.Ncells())
		}
		if gd.Cwidth != lat.Cs {
			log.Fatalf(" buildSTRC error: grid definition cell width mismatch")
		}
		return gd, lat
	}()

	///////////////////////////////////////////////////////
	fmt.Printf(" > step 2: load DEM\n   loading: %s\n", demFP)
	z := func() *dem.Raster {
		switch mmio.GetExtension(demFP) {
		case ".bil":
			var g grid.Real
			g.NewGD32(demFP, gd)
			z := dem.New(lat)
			for c := 0; c < lat.Ncells(); c++ {
				if v, ok := g.A[c]; ok && v != dem.NoData {
					z.A[c] = v
				}
			}
			return z
		case ".asc":
			z, err := dem.LoadASC(demFP)
			if err != nil {
				log.Fatalf(" buildSTRC dem.LoadASC error: %v", err)
			}
			if z.Nrow != lat.Nrow || z.Ncol != lat.Ncol || z.Cs != lat.Cs {
				log.Fatalf(" buildSTRC error: %s does not align with %s", demFP, gdefFP)
			}
			if math.Abs(z.Eorig-lat.Eorig) > z.Cs/1000. || math.Abs(z.Norig-lat.Norig) > z.Cs/1000. {
				log.Fatalf(" buildSTRC error: %s origin does not align with %s", demFP, gdefFP)
			}
			return z
		default:
			log.Fatalf(" buildSTRC error: unsupported DEM format: %s", demFP)
			return nil
		}
	}()

	cids, nwarn := func() ([]int, int) {
		cids, nwarn := make([]int, 0, lat.Ncells()), 0
		for c := 0; c < lat.Ncells(); c++ {
			if math.IsNaN(z.A[c]) {
				nwarn++
				continue
			}
			cids = append(cids, c)
		}
		return cids, nwarn
	}()
	if len(cids) == 0 {
		log.Fatalf(" buildSTRC error: no cells in %s hold an elevation", demFP)
	}
	if nwarn > 0 {
		fmt.Printf("    WARNING %s of %s cells hold no elevation\n", mmio.Thousands(int64(nwarn)), mmio.Thousands(int64(lat.Ncells())))
	}

	println(" > step 3: compute slope and aspect")
	slp, asp := dem.SlopeAspect(z)

	gd.ResetActives(cids)

	s := Structure{
		GD:  gd,        // grid definition
		Z:   z,         // ground surface elevation
		Slp: slp,       // slope (degrees from horizontal)
		Asp: asp,       // aspect (degrees cw from north)
		Nc:  len(cids), // number of cells holding an elevation
	}

	return s
}
