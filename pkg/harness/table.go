// Package harness runs many arithmetic trials across the fuzz and
// diffcheck packages in parallel and accumulates any disagreement it
// finds, the way the teacher's pkg/search/pkg/result pair runs many
// instruction-sequence searches in parallel and accumulates discovered
// optimization rules.
package harness

import (
	"sort"
	"sync"
)

// Trial names one arithmetic operation to check across both cores and
// both SIMD settings.
type Trial struct {
	Base   int
	Alph   string
	Z1, Z2 string
	Op     byte
}

// Finding records a disagreement surfaced by a trial: either the binary
// core and naive core disagree, or the SIMD and sequential paths of the
// binary core disagree.
type Finding struct {
	Trial    Trial
	Kind     string // "cores" or "simd"
	BinOut   string
	NaiveOut string // only set for Kind == "cores"
	SeqOut   string // only set for Kind == "simd"
}

// Table stores findings from a harness run, mirroring pkg/result.Table's
// thread-safe accumulate-then-sort shape.
type Table struct {
	mu       sync.Mutex
	findings []Finding
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a finding into the table.
func (t *Table) Add(f Finding) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.findings = append(t.findings, f)
}

// Findings returns a copy of all findings, sorted by base then by kind.
func (t *Table) Findings() []Finding {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Finding, len(t.findings))
	copy(out, t.findings)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Trial.Base != out[j].Trial.Base {
			return out[i].Trial.Base < out[j].Trial.Base
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Len returns the number of findings recorded so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.findings)
}
