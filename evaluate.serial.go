package topo

import (
	"log"

	"github.com/gosuri/uiprogress"
)

// EvaluateSerial runs the attribute pipeline one site at a time, no concurrency
func EvaluateSerial(strc *Structure, sts *Sites, p *Params) ([]Attribute, Report) {
	if err := p.CheckRadius(strc.Z.Cs); err != nil {
		log.Fatalf(" EvaluateSerial: %v", err)
	}

	ns := sts.Nsites()
	uiprogress.Start()
	sitename := make(chan string)
	bar := uiprogress.AddBar(ns).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-sitename
	})

	attrs := make([]Attribute, ns)
	for i := 0; i < ns; i++ {
		sitename <- sts.Names[i]
		attrs[i] = evalSite(strc, sts, p, i)
		bar.Incr()
	}
	close(sitename)
	uiprogress.Stop()

	return attrs, newReport(attrs, sts.Nmalformed)
}
