package fuzz

import (
	"math"
	"math/rand/v2"
)

// Chain is a single Metropolis-Hastings MCMC chain with simulated
// annealing, shaped directly on stoke.Chain: the same accept/reject
// rule, the same temperature decay, just climbing Score instead of
// descending Cost.
type Chain struct {
	current     Trial
	best        Trial
	bestOutcome Outcome
	score       int
	bestScore   int
	temperature float64
	rng         *rand.Rand
	mutator     *Mutator

	Accepted int64
	Rejected int64
}

// NewChain starts a chain from a fresh random trial for (base, alph).
func NewChain(base int, alph string, temperature float64, seed uint64) *Chain {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	mutator := NewMutator(rng, base, alph)
	start := mutator.RandomTrial()
	outcome, _ := Check(start)
	score := Score(start, outcome)

	return &Chain{
		current:     start,
		best:        start,
		bestOutcome: outcome,
		score:       score,
		bestScore:   score,
		temperature: temperature,
		rng:         rng,
		mutator:     mutator,
	}
}

// Step performs one MCMC iteration: mutate, score, accept/reject.
// Returns the outcome of the candidate trial that was evaluated this
// step, so the caller can harvest a disagreement the moment it's seen
// even if the acceptance rule happens to reject it.
func (c *Chain) Step(decay float64) (Trial, Outcome) {
	candidate := c.mutator.Mutate(c.current)
	outcome, ok := Check(candidate)
	if !ok {
		return candidate, outcome
	}
	newScore := Score(candidate, outcome)
	delta := newScore - c.score

	accepted := false
	if delta >= 0 {
		accepted = true
	} else if c.temperature > 0 {
		prob := math.Exp(float64(delta) / c.temperature)
		if c.rng.Float64() < prob {
			accepted = true
		}
	}

	if accepted {
		c.current = candidate
		c.score = newScore
		c.Accepted++
		if newScore > c.bestScore {
			c.best = candidate
			c.bestOutcome = outcome
			c.bestScore = newScore
		}
	} else {
		c.Rejected++
	}

	c.temperature *= decay
	return candidate, outcome
}

// Best returns the highest-scoring trial seen and its outcome.
func (c *Chain) Best() (Trial, Outcome) {
	return c.best, c.bestOutcome
}
