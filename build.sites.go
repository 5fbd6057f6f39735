package topo

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
)

func buildSites(sitesfp, idfld string, utmzone int) Sites {

	fmt.Printf(" > step 4: load sites\n   loading: %s\n", sitesfp)
	var sts Sites
	switch mmio.GetExtension(sitesfp) {
	case ".csv":
		sts = loadSitesCsv(sitesfp, utmzone)
	case ".shp":
		sts = loadSitesShp(sitesfp, idfld, utmzone)
	default:
		log.Fatalf(" buildSites error: unsupported site file format: %s", sitesfp)
	}

	if sts.Nsites() == 0 {
		log.Fatalf(" buildSites error: no sites found in %s", sitesfp)
	}
	if sts.Nmalformed > 0 {
		fmt.Printf("    WARNING %d rows dropped (malformed coordinate)\n", sts.Nmalformed)
	}
	if sts.nzone > 0 {
		fmt.Printf("    WARNING %d sites fall outside UTM zone %d; treated as beyond grid coverage\n", sts.nzone, utmzone)
	}
	return sts
}

// addLatLng projects a geographic coordinate onto the working zone. Sites whose
// natural zone differs are kept with unresolved projected coordinates; they
// resolve off-grid and get reported with the out-of-coverage sites.
func (s *Sites) addLatLng(name string, lat, lng float64, utmzone int) bool {
	e, n, zn, _, err := UTM.FromLatLon(lat, lng, lat >= 0.)
	if err != nil {
		return false
	}
	if zn != utmzone {
		e, n = math.NaN(), math.NaN()
		s.nzone++
	}
	s.Names = append(s.Names, name)
	s.Lat = append(s.Lat, lat)
	s.Lng = append(s.Lng, lng)
	s.E = append(s.E, e)
	s.N = append(s.N, n)
	return true
}

func (s *Sites) addEN(name string, e, n float64, utmzone int) bool {
	lat, lng, err := UTM.ToLatLon(e, n, utmzone, "", true)
	if err != nil {
		return false
	}
	s.Names = append(s.Names, name)
	s.Lat = append(s.Lat, lat)
	s.Lng = append(s.Lng, lng)
	s.E = append(s.E, e)
	s.N = append(s.N, n)
	return true
}

func loadSitesCsv(fp string, utmzone int) Sites {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		log.Fatalf(" loadSitesCsv %s: %v", fp, err)
	}
	if len(lns) == 0 {
		log.Fatalf(" loadSitesCsv %s: empty file", fp)
	}

	geographic := func() bool {
		switch strings.ToLower(strings.ReplaceAll(lns[0], " ", "")) {
		case "id,lon,lat", "id,lng,lat", "id,longitude,latitude":
			return true
		case "id,e,n", "id,easting,northing", "id,x,y":
			return false
		default:
			log.Fatalf(" loadSitesCsv %s: unrecognized header %q", fp, lns[0])
			return false
		}
	}()

	var sts Sites
	for _, ln := range lns[1:] {
		if len(strings.TrimSpace(ln)) == 0 {
			continue
		}
		sp := strings.Split(ln, ",")
		if len(sp) != 3 {
			sts.Nmalformed++
			continue
		}
		nam := strings.TrimSpace(sp[0])
		v1, err1 := strconv.ParseFloat(strings.TrimSpace(sp[1]), 64)
		v2, err2 := strconv.ParseFloat(strings.TrimSpace(sp[2]), 64)
		if nam == "" || err1 != nil || err2 != nil || math.IsNaN(v1) || math.IsNaN(v2) {
			sts.Nmalformed++
			continue
		}
		if geographic { // id,lon,lat
			if math.Abs(v1) > 180. || math.Abs(v2) > 90. || !sts.addLatLng(nam, v2, v1, utmzone) {
				sts.Nmalformed++
			}
		} else { // id,e,n
			if !sts.addEN(nam, v1, v2, utmzone) {
				sts.Nmalformed++
			}
		}
	}
	return sts
}

func loadSitesShp(fp, idfld string, utmzone int) Sites {
	d, err := shp.NewDecoder(fp)
	if err != nil {
		log.Fatalf(" loadSitesShp %s: %v", fp, err)
	}

	var sts Sites
	for {
		g, flds, more := d.DecodeRowFields(idfld)
		if !more {
			break
		}
		nam, ok := flds[idfld]
		if !ok {
			log.Fatalf(" loadSitesShp %s: missing attribute column %s", fp, idfld)
		}
		nam = strings.Trim(nam, "\x00* ")
		p, ok := g.(geom.Point)
		if !ok || nam == "" || math.IsNaN(p.X) || math.IsNaN(p.Y) || math.Abs(p.X) > 180. || math.Abs(p.Y) > 90. {
			sts.Nmalformed++
			continue
		}
		if !sts.addLatLng(nam, p.Y, p.X, utmzone) {
			sts.Nmalformed++
		}
	}
	if err := d.Error(); err != nil {
		log.Fatalf(" loadSitesShp %s: %v", fp, err)
	}
	d.Close()

	return sts
}
