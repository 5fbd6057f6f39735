package topo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeParams(t *testing.T, y string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "params.yml")
	if err := os.WriteFile(fp, []byte(y), 0644); err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestDefaultParams(t *testing.T) {
	p, err := LoadParams("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Radius != 100. || p.MaxDiskCells != 250000 || p.Nworkers != 8 {
		t.Errorf("defaults = %+v", p)
	}
	if p.UTMZone != 6 || p.IDField != "id" || p.WritePSI {
		t.Errorf("defaults = %+v", p)
	}
	if p.Solar.Decl != 23.44 || p.Solar.Azim != 136.52 {
		t.Errorf("default solar = %+v", p.Solar)
	}
}

func TestLoadParams(t *testing.T) {
	fp := writeParams(t, "radius: 50\nnworkers: 2\nutmzone: 7\nidfield: site\nwritepsi: true\nsolar:\n  decl: 10.0\n  azim: 200.0\n")
	p, err := LoadParams(fp)
	if err != nil {
		t.Fatal(err)
	}
	if p.Radius != 50. || p.Nworkers != 2 || p.UTMZone != 7 || p.IDField != "site" || !p.WritePSI {
		t.Errorf("loaded = %+v", p)
	}
	if p.Solar.Decl != 10. || p.Solar.Azim != 200. {
		t.Errorf("loaded solar = %+v", p.Solar)
	}
	if p.MaxDiskCells != 250000 { // untouched keys keep their defaults
		t.Errorf("MaxDiskCells = %d, want default", p.MaxDiskCells)
	}
}

func TestLoadParamsSolarTime(t *testing.T) {
	fp := writeParams(t, "solartime: 2023-06-21T22:00:00Z\nreflat: 64.73\nreflng: -150.0\n")
	p, err := LoadParams(fp)
	if err != nil {
		t.Fatal(err)
	}
	if p.Solar.Decl < 23.40 || p.Solar.Decl > 23.45 {
		t.Errorf("derived declination = %v, want 23.44", p.Solar.Decl)
	}
	if p.Solar.Azim < 175. || p.Solar.Azim > 185. {
		t.Errorf("derived azimuth = %v, want ~180", p.Solar.Azim)
	}
}

func TestLoadParamsRejects(t *testing.T) {
	if _, err := LoadParams(writeParams(t, "radius: -5\n")); err == nil {
		t.Errorf("LoadParams accepted a negative radius")
	}
	if _, err := LoadParams(writeParams(t, "maxdiskcells: 300000\n")); err == nil {
		t.Errorf("LoadParams accepted a cell cap above the hard limit")
	}
	if _, err := LoadParams(writeParams(t, "solartime: yesterday\n")); err == nil {
		t.Errorf("LoadParams accepted an unparseable solartime")
	}
	if _, err := LoadParams(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Errorf("LoadParams accepted a missing file")
	}
}

func TestLoadParamsClampsWorkers(t *testing.T) {
	p, err := LoadParams(writeParams(t, "nworkers: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Nworkers != 1 {
		t.Errorf("Nworkers = %d, want clamped to 1", p.Nworkers)
	}
}

func TestCheckRadius(t *testing.T) {
	p := DefaultParams()
	if err := p.CheckRadius(2.); err != nil { // 101x101 window on a 2m grid
		t.Errorf("CheckRadius(2) = %v", err)
	}
	p.MaxDiskCells = 100
	if err := p.CheckRadius(2.); err == nil {
		t.Errorf("CheckRadius passed a 101x101 window against a 100-cell cap")
	}
	p = DefaultParams()
	if err := p.CheckRadius(0.01); err == nil { // 20001x20001 window
		t.Errorf("CheckRadius passed a window wider than the cap")
	}
}
