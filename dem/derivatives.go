package dem

import "math"

// SlopeAspect derives slope and aspect layers from an elevation raster using
// the Horn 3x3 finite-difference gradient. Slope is in degrees from horizontal;
// aspect is the compass direction of steepest descent in degrees clockwise from
// north, [0,360). Edge cells mirror unavailable neighbours to the centre value.
// Flat cells get slope 0 and an undefined (NaN) aspect.
func SlopeAspect(z *Raster) (slope, aspect *Raster) {
	slope, aspect = New(z.Lattice), New(z.Lattice)
	for row := 0; row < z.Nrow; row++ {
		for col := 0; col < z.Ncol; col++ {
			cid := row*z.Ncol + col
			z0 := z.A[cid]
			if math.IsNaN(z0) {
				continue
			}

			nbr := func(dr, dc int) float64 {
				r, c := row+dr, col+dc
				if r < 0 || r >= z.Nrow || c < 0 || c >= z.Ncol {
					return z0
				}
				if v := z.A[r*z.Ncol+c]; !math.IsNaN(v) {
					return v
				}
				return z0
			}

			// a b c
			// d . f   rows run south, columns run east
			// g h i
			a, b, c := nbr(-1, -1), nbr(-1, 0), nbr(-1, 1)
			d, f := nbr(0, -1), nbr(0, 1)
			g, h, i := nbr(1, -1), nbr(1, 0), nbr(1, 1)

			gx := ((c + 2*f + i) - (a + 2*d + g)) / (8. * z.Cs) // eastward gradient
			gy := ((a + 2*b + c) - (g + 2*h + i)) / (8. * z.Cs) // northward gradient

			slope.A[cid] = math.Atan(math.Hypot(gx, gy)) * 180. / math.Pi
			if gx == 0. && gy == 0. {
				continue // flat, aspect undefined
			}
			az := math.Atan2(-gx, -gy) * 180. / math.Pi // steepest descent, cw from north
			if az < 0. {
				az += 360.
			}
			aspect.A[cid] = az
		}
	}
	return
}
