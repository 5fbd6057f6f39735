package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	topo "github.com/ArcticWebb/AlaskaPermafrostThawDatabase-TopographyData"
	"github.com/joho/godotenv"
	"github.com/maseology/mmio"
)

var buildPtr = flag.Bool("build", false, "rebuild structure/sites gobs even when present")
var serialPtr = flag.Bool("serial", false, "evaluate sites one at a time with a progress bar")
var paramPtr = flag.String("params", "", "yaml parameter file (overrides the control file's paramfp)")

func main() {
	flag.Parse()
	godotenv.Load() // optional .env may carry TOPO_CONTROL

	controlFP := func() string {
		if flag.NArg() > 0 {
			return flag.Arg(0)
		}
		if fp, ok := os.LookupEnv("TOPO_CONTROL"); ok {
			return fp
		}
		fmt.Println("usage: topo [-build] [-serial] [-params params.yaml] control.topo")
		os.Exit(1)
		return ""
	}()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	var mdlprfx, paramFP string
	func() {
		ins := mmio.NewInstruct(controlFP)
		mdlprfx = ins.Param["prfx"][0]
		if pfp, ok := ins.Param["paramfp"]; ok {
			paramFP = pfp[0]
		}
	}()
	if *paramPtr != "" {
		paramFP = *paramPtr
	}

	if _, ok := mmio.FileExists(mdlprfx + "structure.gob"); !ok || *buildPtr {
		topo.BuildTopo(controlFP)
	}

	// load data
	strc, sts := topo.LoadDomain(mdlprfx)
	tt.Print("domain load complete\n")

	par, err := topo.LoadParams(paramFP)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// attribute sites
	var attrs []topo.Attribute
	var rpt topo.Report
	if *serialPtr {
		attrs, rpt = topo.EvaluateSerial(strc, sts, &par)
	} else {
		attrs, rpt = topo.Evaluate(strc, sts, &par)
	}
	tt.Print("evaluation complete\n")

	topo.WriteAttributesCsv(mdlprfx+"attributes.csv", attrs, par.Radius)
	if par.WritePSI {
		if err := topo.SifSave(mdlprfx+"sites.sif.gob", topo.BuildSolIrradFrac(attrs)); err != nil {
			log.Fatalf("%v", err)
		}
	}
	rpt.Print()
}
