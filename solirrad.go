package topo

import (
	"encoding/gob"
	"math"
	"os"
	"sync"

	"github.com/maseology/goHydro/solirrad"
)

// BuildSolIrradFrac builds slope-aspect corrected daily potential solar
// irradiation fractions for every attributed site. Unsampleable sites are
// skipped; flat sites take aspect 0 (tan(slope)=0 leaves azimuth moot).
func BuildSolIrradFrac(attrs []Attribute) map[int][366]float64 {
	type kv struct {
		k int
		v [366]float64
	}
	var wg1 sync.WaitGroup
	ch := make(chan kv, len(attrs))
	psi := func(a *Attribute, i int) {
		defer wg1.Done()
		asp := a.Asp
		if math.IsNaN(asp) {
			asp = 0.
		}
		si := solirrad.New(a.Lat, math.Tan(a.Slope*deg2rad), math.Pi/2.-asp*deg2rad)
		ch <- kv{k: i, v: si.PSIfactor()}
	}

	for i := range attrs {
		if !attrs[i].sampleable() {
			continue
		}
		wg1.Add(1)
		go psi(&attrs[i], i)
	}
	wg1.Wait()
	close(ch)
	f := make(map[int][366]float64, len(attrs))
	for kv := range ch {
		f[kv.k] = kv.v
	}
	return f
}

// SifSave sif to gob
func SifSave(fp string, sif map[int][366]float64) error {
	f, err := os.Create(fp)
	defer f.Close()
	if err != nil {
		return err
	}
	enc := gob.NewEncoder(f)
	err = enc.Encode(sif)
	if err != nil {
		return err
	}
	return nil
}

// SifLoad sif gob
func SifLoad(fp string) (map[int][366]float64, error) {
	var sif map[int][366]float64
	f, err := os.Open(fp)
	defer f.Close()
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&sif)
	if err != nil {
		return nil, err
	}
	return sif, nil
}
