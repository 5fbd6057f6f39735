package topo

import (
	"log"
	"sync"
)

// Evaluate computes the attribute records for every site, fanning the
// independent per-site work over Params.Nworkers and reassembling results in
// input order. Output is identical to EvaluateSerial.
func Evaluate(strc *Structure, sts *Sites, p *Params) ([]Attribute, Report) {
	if err := p.CheckRadius(strc.Z.Cs); err != nil {
		log.Fatalf(" Evaluate: %v", err)
	}

	type out1 struct {
		a  Attribute
		ki int
	}
	generateInput := func(inputStream chan<- int) {
		for i := 0; i < sts.Nsites(); i++ {
			inputStream <- i
		}
	}
	newStreamer := func(wg *sync.WaitGroup, done <-chan interface{}, inputStream <-chan int, outputStream chan<- out1) {
		go func() {
			defer wg.Done()
			for {
				select {
				case i := <-inputStream:
					outputStream <- out1{evalSite(strc, sts, p, i), i}
				case <-done:
					return
				}
			}
		}()
	}

	done := make(chan interface{})
	inputStream := make(chan int)
	outputStream := make(chan out1)
	var wg sync.WaitGroup
	wg.Add(p.Nworkers)
	for k := 0; k < p.Nworkers; k++ {
		newStreamer(&wg, done, inputStream, outputStream)
	}
	go generateInput(inputStream)

	attrs := make([]Attribute, sts.Nsites())
	for k := 0; k < sts.Nsites(); k++ {
		o := <-outputStream
		attrs[o.ki] = o.a
	}
	close(done)
	wg.Wait()

	return attrs, newReport(attrs, sts.Nmalformed)
}
