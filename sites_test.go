package topo

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeSites(t *testing.T, name, s string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fp, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestLoadSitesCsvGeographic(t *testing.T) {
	fp := writeSites(t, "sites.csv",
		"id,lon,lat\n"+
			"s1,-150.0,64.73\n"+ // zone 6
			"s2,-140.0,64.0\n"+ // zone 7: kept, unresolved
			"s3,abc,64.0\n"+
			"s4,64.0\n"+
			",-150.0,64.73\n"+
			"s6,-150.0,95.0\n"+
			"s7,-150.0,87.0\n"+ // beyond the projection's latitude band
			"\n")
	sts := loadSitesCsv(fp, 6)
	if sts.Nsites() != 2 {
		t.Fatalf("Nsites = %d, want 2", sts.Nsites())
	}
	if sts.Nmalformed != 5 {
		t.Errorf("Nmalformed = %d, want 5", sts.Nmalformed)
	}
	if sts.nzone != 1 {
		t.Errorf("nzone = %d, want 1", sts.nzone)
	}
	if sts.Names[0] != "s1" || sts.Lat[0] != 64.73 || sts.Lng[0] != -150. {
		t.Errorf("site 1 = %s (%v,%v)", sts.Names[0], sts.Lat[0], sts.Lng[0])
	}
	if e, n := sts.E[0], sts.N[0]; e < 300000. || e > 500000. || n < 7.1e6 || n > 7.3e6 {
		t.Errorf("site 1 projected to (%v,%v)", e, n)
	}
	if !math.IsNaN(sts.E[1]) || !math.IsNaN(sts.N[1]) {
		t.Errorf("out-of-zone site projected to (%v,%v), want NaN", sts.E[1], sts.N[1])
	}
}

func TestLoadSitesCsvProjected(t *testing.T) {
	fp := writeSites(t, "sites.csv",
		"id,e,n\n"+
			"p1,357000,7180000\n"+
			"p2,50,7180000\n") // easting outside the projection's range
	sts := loadSitesCsv(fp, 6)
	if sts.Nsites() != 1 {
		t.Fatalf("Nsites = %d, want 1", sts.Nsites())
	}
	if sts.Nmalformed != 1 {
		t.Errorf("Nmalformed = %d, want 1", sts.Nmalformed)
	}
	if sts.E[0] != 357000. || sts.N[0] != 7180000. {
		t.Errorf("projected coordinates changed: (%v,%v)", sts.E[0], sts.N[0])
	}
	if lat := sts.Lat[0]; lat < 64. || lat > 65. {
		t.Errorf("inverse latitude = %v, want ~64.6", lat)
	}
	if lng := sts.Lng[0]; lng < -151. || lng > -149. {
		t.Errorf("inverse longitude = %v, want ~-150", lng)
	}
}

func TestLoadSitesCsvHeaderVariants(t *testing.T) {
	fp := writeSites(t, "sites.csv", "ID, Longitude, Latitude\ns1,-150.0,64.73\n")
	if sts := loadSitesCsv(fp, 6); sts.Nsites() != 1 {
		t.Errorf("Nsites = %d, want 1", sts.Nsites())
	}
	fp = writeSites(t, "sites2.csv", "id,x,y\np1,357000,7180000\n")
	if sts := loadSitesCsv(fp, 6); sts.Nsites() != 1 || !(sts.Lat[0] > 0.) {
		t.Errorf("projected header variant failed")
	}
}

func TestSitesGobRoundTrip(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "sites.gob")
	s := Sites{
		Names:      []string{"a", "b"},
		Lat:        []float64{64., 65.},
		Lng:        []float64{-150., -151.},
		E:          []float64{400000., math.NaN()},
		N:          []float64{7.18e6, math.NaN()},
		Nmalformed: 3,
	}
	if err := s.SaveGob(fp); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGobSites(fp)
	if err != nil {
		t.Fatal(err)
	}
	if g.Nsites() != 2 || g.Names[1] != "b" || g.Nmalformed != 3 {
		t.Errorf("round trip = %+v", g)
	}
	if g.E[0] != 400000. || !math.IsNaN(g.E[1]) || !math.IsNaN(g.N[1]) {
		t.Errorf("eastings lost: %v %v", g.E, g.N)
	}
}
