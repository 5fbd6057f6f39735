package topo

import (
	"log"
	"strconv"

	"github.com/maseology/mmio"
)

func BuildTopo(controlFP string) {

	///////////////////////////////////////////////////////
	println("load .topo file")
	var mdlprfx, gdefFP, demFP, sitesFP, paramFP string
	utmzone := -1
	func(topoFP string) { // getFilePaths
		ins := mmio.NewInstruct(topoFP)
		mdlprfx = ins.Param["prfx"][0]
		gdefFP = ins.Param["gdeffp"][0]
		demFP = ins.Param["demfp"][0]
		sitesFP = ins.Param["sitesfp"][0]
		if pfp, ok := ins.Param["paramfp"]; ok {
			paramFP = pfp[0]
		}
		if z, ok := ins.Param["utmzone"]; ok {
			zz, err := strconv.Atoi(z[0])
			if err != nil {
				panic(err)
			}
			utmzone = zz
		}
	}(controlFP)

	par, err := LoadParams(paramFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if utmzone > 0 {
		par.UTMZone = utmzone
	}

	///////////////////////////////////////////////////////
	println("building..")
	chkdir := mmio.GetFileDir(mdlprfx) + "/check/"
	strc := buildSTRC(gdefFP, demFP)
	sts := buildSites(sitesFP, par.IDField, par.UTMZone)
	if err := par.CheckRadius(strc.Z.Cs); err != nil {
		log.Fatalf(" BuildTopo: %v", err)
	}

	// summarize
	if len(chkdir) > 0 {
		println("\nBuild Summary\n==================================")
		mmio.MakeDir(chkdir)
		strc.Checkandprint(chkdir)
		sts.checkandprint(&strc, chkdir)
	}

	// save gobs
	println("\nSaving gobs..")
	if err := strc.SaveGob(mdlprfx + "structure.gob"); err != nil {
		panic(err)
	}
	if err := sts.SaveGob(mdlprfx + "sites.gob"); err != nil {
		panic(err)
	}

	println()
}
