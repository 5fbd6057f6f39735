package dem

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// LoadASC reads an ESRI ASCII grid. Cells equal to the header NODATA value
// come back as NaN.
func LoadASC(fp string) (*Raster, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("dem.LoadASC: %v", err)
	}
	if len(lns) < 7 {
		return nil, fmt.Errorf("dem.LoadASC: %s is not an ascii grid", fp)
	}

	var ncol, nrow int
	var xll, yll, cs float64
	nodata, cellref := -9999., "corner"
	nhead := 0
	for _, ln := range lns {
		flds := strings.Fields(ln)
		if len(flds) != 2 {
			break
		}
		v, err := strconv.ParseFloat(flds[1], 64)
		if err != nil {
			break
		}
		key := true
		switch strings.ToLower(flds[0]) {
		case "ncols":
			ncol = int(v)
		case "nrows":
			nrow = int(v)
		case "xllcorner":
			xll = v
		case "yllcorner":
			yll = v
		case "xllcenter":
			xll, cellref = v, "center"
		case "yllcenter":
			yll, cellref = v, "center"
		case "cellsize":
			cs = v
		case "nodata_value":
			nodata = v
		default: // data rows start here
			key = false
		}
		if !key {
			break
		}
		nhead++
	}
	if ncol <= 0 || nrow <= 0 || cs <= 0. {
		return nil, fmt.Errorf("dem.LoadASC: incomplete header in %s", fp)
	}
	if cellref == "center" {
		xll -= cs / 2.
		yll -= cs / 2.
	}

	r := New(&Lattice{Eorig: xll, Norig: yll + float64(nrow)*cs, Cs: cs, Nrow: nrow, Ncol: ncol})
	cid := 0
	for _, ln := range lns[nhead:] {
		for _, s := range strings.Fields(ln) {
			if cid >= len(r.A) {
				return nil, fmt.Errorf("dem.LoadASC: %s holds more than %d values", fp, len(r.A))
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("dem.LoadASC cell %d: %v", cid, err)
			}
			if v != nodata {
				r.A[cid] = v
			}
			cid++
		}
	}
	if cid != len(r.A) {
		return nil, fmt.Errorf("dem.LoadASC: %s holds %d of %d values", fp, cid, len(r.A))
	}
	return r, nil
}

// nodata sentinel used on binary check-raster output
const NoData = -9999.

// Sentinel converts NaNs to the NoData sentinel for raster export.
func (r *Raster) Sentinel() []float64 {
	o := make([]float64, len(r.A))
	for i, v := range r.A {
		if math.IsNaN(v) {
			o[i] = NoData
		} else {
			o[i] = v
		}
	}
	return o
}
