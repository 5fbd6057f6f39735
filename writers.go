package topo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

// ff formats a table value; missing prints as an empty cell, never zero
func ff(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteAttributesCsv prints one row per input site, in input order.
func WriteAttributesCsv(fp string, attrs []Attribute, radius float64) {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead(fmt.Sprintf("site_id,lon,lat,elevation,slope,aspect,mean_elev_%.0fm,relative_elev,solar_radiation_index", radius)); err != nil {
		log.Fatalf("%v", err)
	}
	for _, a := range attrs {
		csvw.WriteLine(a.Name, ff(a.Lng), ff(a.Lat), ff(a.Elev), ff(a.Slope), ff(a.Asp), ff(a.MeanElev), ff(a.RelElev), ff(a.Sri))
	}
}

func (rpt Report) Print() {
	fmt.Println()
	fmt.Printf("  %s sites evaluated: %s attributed; %s beyond raster coverage;\n", mmio.Thousands(int64(rpt.Nsites)), mmio.Thousands(int64(rpt.Nprocessed)), mmio.Thousands(int64(rpt.Nunsampleable)))
	fmt.Printf("  %d rows dropped at load; %d sites without neighbourhood coverage; %d sites on flat ground;\n", rpt.Nmalformed, rpt.Nnoneighbourhood, rpt.Nflat)
	if !math.IsNaN(rpt.MedianRelElev) {
		fmt.Printf("  median relative elevation %.2f m\n", rpt.MedianRelElev)
	}
}

func writeFloats32(gd *grid.Definition, fp string, f []float64) {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, f32)
	os.WriteFile(fp, buf.Bytes(), 0644)
	gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
}

func writeInts(gd *grid.Definition, fp string, i []int32) {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, i)
	os.WriteFile(fp, buf.Bytes(), 0644)
	gd.ToHDR(mmio.RemoveExtension(fp)+".hdr", 32)
}
