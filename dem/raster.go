package dem

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// MaxDiskCells caps the number of cells a single neighbourhood query may visit.
// At the reference resolution (2m cells, 100m radius) a disk visits ~10^4 cells,
// two orders of magnitude below the cap.
const MaxDiskCells = 1 << 18

// Lattice is a uniform structured grid: upper-left origin, cells Cs wide,
// row-major cell IDs increasing eastward then southward.
type Lattice struct {
	Eorig, Norig float64 // upper-left corner easting/northing
	Cs           float64 // cell size
	Nrow, Ncol   int
}

// Ncells total lattice size
func (l *Lattice) Ncells() int { return l.Nrow * l.Ncol }

// CellID returns the ID of the cell containing (e,n), -1 if outside the lattice.
func (l *Lattice) CellID(e, n float64) int {
	if math.IsNaN(e) || math.IsNaN(n) {
		return -1
	}
	col := int(math.Floor((e - l.Eorig) / l.Cs))
	row := int(math.Floor((l.Norig - n) / l.Cs))
	if row < 0 || row >= l.Nrow || col < 0 || col >= l.Ncol {
		return -1
	}
	return row*l.Ncol + col
}

// RowCol splits a cell ID
func (l *Lattice) RowCol(cid int) (int, int) { return cid / l.Ncol, cid % l.Ncol }

// Centroid returns the centre coordinate of a cell.
func (l *Lattice) Centroid(cid int) (float64, float64) {
	r, c := l.RowCol(cid)
	return l.Eorig + (float64(c)+.5)*l.Cs, l.Norig - (float64(r)+.5)*l.Cs
}

// ParseHeader reads the 6-line grid definition header (OE,ON,ROT,NR,NC,CS;
// cell size carries a 'U' prefix on uniform grids).
func ParseHeader(fp string) (*Lattice, error) {
	a, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader: %v", err)
	}
	if len(a) < 6 {
		return nil, fmt.Errorf("dem.ParseHeader: %s is not a grid definition", fp)
	}
	oe, err := strconv.ParseFloat(strings.TrimSpace(a[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader OE: %v", err)
	}
	on, err := strconv.ParseFloat(strings.TrimSpace(a[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader ON: %v", err)
	}
	rot, err := strconv.ParseFloat(strings.TrimSpace(a[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader ROT: %v", err)
	}
	if rot != 0. {
		return nil, fmt.Errorf("dem.ParseHeader: rotated grids not supported")
	}
	nr, err := strconv.ParseInt(strings.TrimSpace(a[3]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader NR: %v", err)
	}
	nc, err := strconv.ParseInt(strings.TrimSpace(a[4]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader NC: %v", err)
	}
	scs := strings.TrimSpace(a[5])
	if scs[0] != 'U' {
		return nil, fmt.Errorf("dem.ParseHeader: non-uniform grids not supported")
	}
	cs, err := strconv.ParseFloat(scs[1:], 64)
	if err != nil {
		return nil, fmt.Errorf("dem.ParseHeader CS: %v", err)
	}
	return &Lattice{Eorig: oe, Norig: on, Cs: cs, Nrow: int(nr), Ncol: int(nc)}, nil
}

// Raster is a lattice with one value per cell. NaN marks NoData.
type Raster struct {
	*Lattice
	A []float64
}

// New builds an empty raster over a lattice.
func New(l *Lattice) *Raster {
	a := make([]float64, l.Ncells())
	for i := range a {
		a[i] = math.NaN()
	}
	return &Raster{Lattice: l, A: a}
}

// Value returns a cell's value, NaN for NoData or an invalid ID.
func (r *Raster) Value(cid int) float64 {
	if cid < 0 || cid >= len(r.A) {
		return math.NaN()
	}
	return r.A[cid]
}

// ValueAt looks up the cell containing (e,n), NaN outside coverage.
func (r *Raster) ValueAt(e, n float64) float64 {
	return r.Value(r.CellID(e, n))
}

// MeanInDisk computes the arithmetic mean of all cells whose centres fall
// within rad of (e,n). Cells without data are skipped; the mean is taken over
// covered cells only. Returns NaN when no cell centre is covered.
func (r *Raster) MeanInDisk(e, n, rad float64) float64 {
	if rad < 0. || math.IsNaN(e) || math.IsNaN(n) {
		return math.NaN()
	}
	nhalf := int(math.Ceil(rad / r.Cs))
	if d := 2*nhalf + 1; d*d > MaxDiskCells {
		panic(fmt.Sprintf("dem.MeanInDisk: radius %f visits more than %d cells", rad, MaxDiskCells))
	}

	// clip the disk's bounding box to the lattice
	c0 := int(math.Floor((e - r.Eorig) / r.Cs))
	r0 := int(math.Floor((r.Norig - n) / r.Cs))
	rmin, rmax := r0-nhalf, r0+nhalf
	cmin, cmax := c0-nhalf, c0+nhalf
	if rmin < 0 {
		rmin = 0
	}
	if cmin < 0 {
		cmin = 0
	}
	if rmax >= r.Nrow {
		rmax = r.Nrow - 1
	}
	if cmax >= r.Ncol {
		cmax = r.Ncol - 1
	}

	s, cnt, r2 := 0., 0, rad*rad
	for row := rmin; row <= rmax; row++ {
		cn := r.Norig - (float64(row)+.5)*r.Cs
		for col := cmin; col <= cmax; col++ {
			ce := r.Eorig + (float64(col)+.5)*r.Cs
			if dx, dy := ce-e, cn-n; dx*dx+dy*dy > r2 {
				continue
			}
			if v := r.A[row*r.Ncol+col]; !math.IsNaN(v) {
				s += v
				cnt++
			}
		}
	}
	if cnt == 0 {
		return math.NaN()
	}
	return s / float64(cnt)
}
