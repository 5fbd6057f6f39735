package topo

import (
	"log"
	"sync"
)

// LoadDomain re-loads the gobs saved by BuildTopo.
func LoadDomain(mdlprfx string) (*Structure, *Sites) {
	var wg sync.WaitGroup

	var strc *Structure
	var sts *Sites

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		if strc, err = LoadGobStructure(mdlprfx + "structure.gob"); err != nil {
			log.Fatalf("%v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if sts, err = LoadGobSites(mdlprfx + "sites.gob"); err != nil {
			log.Fatalf("%v", err)
		}
	}()
	wg.Wait()

	return strc, sts
}
