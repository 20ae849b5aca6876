package harness

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/bigradix/internal/validate"
	"github.com/oisee/bigradix/pkg/diffcheck"
)

// WorkerPool runs Trials across parallel workers, recording every
// disagreement it finds. Shaped directly on the teacher's
// pkg/search.WorkerPool: a channel of work, N goroutines draining it,
// and a ticker goroutine printing throughput/ETA.
type WorkerPool struct {
	NumWorkers int
	Findings   *Table
	checked    atomic.Int64
	found      atomic.Int64
	completed  atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers, or
// runtime.NumCPU() workers if numWorkers <= 0.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		NumWorkers: numWorkers,
		Findings:   NewTable(),
	}
}

// Stats returns running totals: trials checked, disagreements found.
func (wp *WorkerPool) Stats() (checked, found int64) {
	return wp.checked.Load(), wp.found.Load()
}

// RunTrials distributes trials across workers. Each trial is checked
// twice: once for binary-core/naive-core agreement, once for
// SIMD/sequential agreement within the binary core.
func (wp *WorkerPool) RunTrials(trials []Trial, verbose bool) {
	total := int64(len(trials))

	ch := make(chan Trial, len(trials))
	for _, tr := range trials {
		ch <- tr
	}
	close(ch)

	done := make(chan struct{})
	start := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				comp := wp.completed.Load()
				checked := wp.checked.Load()
				found := wp.found.Load()
				elapsed := time.Since(start)
				var eta string
				if comp > 0 {
					remaining := time.Duration(float64(elapsed) * float64(total-comp) / float64(comp))
					eta = remaining.Round(time.Second).String()
				} else {
					eta = "..."
				}
				pct := float64(comp) / float64(total) * 100
				fmt.Printf("  [%s] %d/%d trials (%.1f%%) | %d checked | %d found | ETA %s\n",
					elapsed.Round(time.Second), comp, total, pct, checked, found, eta)
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < wp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tr := range ch {
				wp.processTrial(tr, verbose)
				wp.completed.Add(1)
			}
		}()
	}
	wg.Wait()
	close(done)

	elapsed := time.Since(start)
	comp := wp.completed.Load()
	checked := wp.checked.Load()
	found := wp.found.Load()
	fmt.Printf("  [%s] %d/%d trials (100.0%%) | %d checked | %d found | DONE\n",
		elapsed.Round(time.Second), comp, total, checked, found)
}

func (wp *WorkerPool) processTrial(tr Trial, verbose bool) {
	alph, err := validate.Alphabet(tr.Base, tr.Alph)
	if err != nil {
		if verbose {
			fmt.Printf("  SKIP base=%d: %v\n", tr.Base, err)
		}
		return
	}

	wp.checked.Add(1)
	agree, binOut, naiveOut, err := diffcheck.CoresAgreeWithAlphabet(tr.Base, alph, tr.Z1, tr.Z2, tr.Op)
	if err == nil && !agree {
		wp.found.Add(1)
		wp.Findings.Add(Finding{Trial: tr, Kind: "cores", BinOut: binOut, NaiveOut: naiveOut})
		if verbose {
			fmt.Printf("  FOUND cores-disagree: base=%d %s %c %s -> bin=%q naive=%q\n",
				tr.Base, tr.Z1, tr.Op, tr.Z2, binOut, naiveOut)
		}
	}

	wp.checked.Add(1)
	simdOut, seqOut := diffcheck.SIMDAgreesWithAlphabet(tr.Base, alph, tr.Z1, tr.Z2, tr.Op)
	if simdOut != seqOut {
		wp.found.Add(1)
		wp.Findings.Add(Finding{Trial: tr, Kind: "simd", BinOut: simdOut, SeqOut: seqOut})
		if verbose {
			fmt.Printf("  FOUND simd-disagree: base=%d %s %c %s -> simd=%q seq=%q\n",
				tr.Base, tr.Z1, tr.Op, tr.Z2, simdOut, seqOut)
		}
	}
}
