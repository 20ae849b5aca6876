package fuzz

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oisee/bigradix/pkg/harness"
)

// Config holds fuzz search configuration, the same shape as
// stoke.Config with "target instruction sequence" replaced by "bases
// to hunt across".
type Config struct {
	Bases      []BaseSpec
	Chains     int
	Iterations int
	Decay      float64
	Verbose    bool
}

// BaseSpec names one (base, alphabet) pair to fuzz.
type BaseSpec struct {
	Base int
	Alph string
}

// Run launches len(cfg.Bases)*cfg.Chains independent MCMC chains in
// parallel — one set of chains per base — and collects every
// disagreement found, mirroring stoke.Run's per-target chain fan-out.
func Run(cfg Config) []harness.Finding {
	if cfg.Chains <= 0 {
		cfg.Chains = 1
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 100_000
	}
	if cfg.Decay <= 0 || cfg.Decay >= 1 {
		cfg.Decay = 0.9999
	}

	var mu sync.Mutex
	var findings []harness.Finding
	var wg sync.WaitGroup

	baseSeed := rand.Uint64()
	startTime := time.Now()
	done := make(chan struct{})

	if cfg.Verbose {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					mu.Lock()
					found := len(findings)
					mu.Unlock()
					fmt.Printf("  [%s] %d disagreements found\n",
						time.Since(startTime).Round(time.Second), found)
				}
			}
		}()
	}

	for bi, spec := range cfg.Bases {
		for i := 0; i < cfg.Chains; i++ {
			wg.Add(1)
			go func(spec BaseSpec, chainID int) {
				defer wg.Done()
				seed := baseSeed + uint64(bi)*0x2545F4914F6CDD1D + uint64(chainID)*0x9E3779B97F4A7C15
				chain := NewChain(spec.Base, spec.Alph, 1.0, seed)

				for iter := 0; iter < cfg.Iterations; iter++ {
					candidate, outcome := chain.Step(cfg.Decay)
					if outcome.Disagreement() {
						f := toFinding(candidate, outcome)
						mu.Lock()
						findings = append(findings, f)
						mu.Unlock()
						if cfg.Verbose {
							fmt.Printf("  FOUND base=%d chain=%d iter=%d: %s\n",
								spec.Base, chainID, iter, describeFinding(f))
						}
					}
				}
			}(spec, i)
		}
	}

	wg.Wait()
	close(done)

	if cfg.Verbose {
		fmt.Printf("\nfuzz complete: %d disagreements found in %s\n",
			len(findings), time.Since(startTime).Round(time.Millisecond))
	}

	return findings
}

func toFinding(t Trial, o Outcome) harness.Finding {
	ht := harness.Trial{Base: t.Base, Alph: t.Alph, Z1: t.Z1, Z2: t.Z2, Op: t.Op}
	if !o.CoresAgree {
		return harness.Finding{Trial: ht, Kind: "cores", BinOut: o.BinOut, NaiveOut: o.NaiveOut}
	}
	return harness.Finding{Trial: ht, Kind: "simd", BinOut: o.SIMDOut, SeqOut: o.SeqOut}
}

func describeFinding(f harness.Finding) string {
	if f.Kind == "cores" {
		return fmt.Sprintf("base=%d %s %c %s: binary=%q naive=%q",
			f.Trial.Base, f.Trial.Z1, f.Trial.Op, f.Trial.Z2, f.BinOut, f.NaiveOut)
	}
	return fmt.Sprintf("base=%d %s %c %s: simd=%q seq=%q",
		f.Trial.Base, f.Trial.Z1, f.Trial.Op, f.Trial.Z2, f.BinOut, f.SeqOut)
}
