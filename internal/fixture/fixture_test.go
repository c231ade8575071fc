package fixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/internal/fixture"
)

func TestGenerateGFA_DeterministicForSameSeed(t *testing.T) {
	opts := fixture.New(42)
	a := fixture.GenerateGFA(opts)
	b := fixture.GenerateGFA(opts)
	require.Equal(t, a, b)
}

func TestGenerateGFA_DifferentSeedsDiffer(t *testing.T) {
	opts := fixture.New(1)
	a := fixture.GenerateGFA(opts)
	opts.Seed = 2
	b := fixture.GenerateGFA(opts)
	require.NotEqual(t, a, b)
}

func TestGenerateGFA_HasExpectedRecordCounts(t *testing.T) {
	opts := fixture.New(7)
	opts.Segments = 10
	opts.Paths = 4
	body := fixture.GenerateGFA(opts)

	var segs, paths int
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "S\t"):
			segs++
		case strings.HasPrefix(line, "P\t"):
			paths++
		}
	}
	require.Equal(t, 10, segs)
	require.Equal(t, 4, paths)
}

func TestGenerateGFA_MinSegmentsClamped(t *testing.T) {
	opts := fixture.New(1)
	opts.Segments = 0
	body := fixture.GenerateGFA(opts)
	require.Contains(t, body, "S\t1\t")
	require.Contains(t, body, "S\t2\t")
}
