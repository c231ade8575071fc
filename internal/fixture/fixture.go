// Package fixture generates synthetic GFA1 text for property tests
// elsewhere in the module. It adapts the teacher
// builder package's two linear-construction idioms — Path's
// deterministic chain-of-vertices walk and RandomSparse's seeded
// Bernoulli-trial edge sampling — to emit segments, links, and
// multiple overlapping paths instead of a core.Graph.
package fixture

import (
	"fmt"
	"math/rand"
	"strings"
)

// Options configures GenerateGFA. A zero value is invalid; use New to
// get sane defaults before overriding fields.
type Options struct {
	Segments     int     // number of S records, each of length SegLen
	SegLen       int     // uniform segment sequence length
	Paths        int     // number of P records
	MinPathLen   int     // minimum segments visited per path
	ExtraLinkP   float64 // Bernoulli probability of a non-adjacent L record, sampled like RandomSparse
	BackwardProb float64 // probability a path segment occurrence is reverse-oriented
	Seed         int64
}

// New returns Options with sane defaults: 20 segments, 6 paths, no
// extra links, no reverse orientation.
func New(seed int64) Options {
	return Options{
		Segments:   20,
		SegLen:     50,
		Paths:      6,
		MinPathLen: 2,
		Seed:       seed,
	}
}

// GenerateGFA renders a synthetic GFA1 document: a linear chain of
// Segments nodes (S + L records, as in builder's Path), optional extra
// random links sampled independently with probability ExtraLinkP (as
// in builder's RandomSparse), and Paths P records each covering a
// random contiguous sub-range of the chain.
func GenerateGFA(opts Options) string {
	if opts.Segments < 2 {
		opts.Segments = 2
	}
	if opts.SegLen < 1 {
		opts.SegLen = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	var sb strings.Builder
	for i := 1; i <= opts.Segments; i++ {
		fmt.Fprintf(&sb, "S\t%d\t%s\n", i, strings.Repeat("A", opts.SegLen))
	}
	for i := 1; i < opts.Segments; i++ {
		fmt.Fprintf(&sb, "L\t%d\t+\t%d\t+\t0M\n", i, i+1)
	}
	for i := 1; i <= opts.Segments; i++ {
		for j := i + 2; j <= opts.Segments; j++ {
			if rng.Float64() < opts.ExtraLinkP {
				fmt.Fprintf(&sb, "L\t%d\t+\t%d\t+\t0M\n", i, j)
			}
		}
	}

	minLen := opts.MinPathLen
	if minLen < 1 {
		minLen = 1
	}
	for p := 0; p < opts.Paths; p++ {
		start := rng.Intn(opts.Segments)
		span := minLen + rng.Intn(opts.Segments-minLen+1)
		if start+span > opts.Segments {
			span = opts.Segments - start
		}
		if span < 1 {
			span = 1
		}

		tokens := make([]string, 0, span)
		for k := 0; k < span; k++ {
			seg := start + k + 1
			ori := "+"
			if rng.Float64() < opts.BackwardProb {
				ori = "-"
			}
			tokens = append(tokens, fmt.Sprintf("%d%s", seg, ori))
		}
		fmt.Fprintf(&sb, "P\tpath%d\t%s\t*\n", p, strings.Join(tokens, ","))
	}

	return sb.String()
}
