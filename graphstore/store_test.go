package graphstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/graphstore"
)

func writeGFA(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gfa")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const scenarioAGFA = "S\t1\tA\n" +
	"S\t2\tA\n" +
	"S\t3\tA\n" +
	"S\t4\tA\n" +
	"S\t5\tA\n" +
	"P\ta\t1+,2+,3+\t*\n" +
	"P\tb\t2+,3+,4+\t*\n"

func TestLoad_ScenarioA(t *testing.T) {
	path := writeGFA(t, scenarioAGFA)

	gs, err := graphstore.Load(path, false, false)
	require.NoError(t, err)
	require.Equal(t, 5, gs.SegmentCount())
	require.Equal(t, []string{"a", "b"}, gs.PathNames())

	id, ok := gs.SegmentID("3")
	require.True(t, ok)
	require.Equal(t, 1, gs.SegmentLength(id))
}

func TestLoad_DuplicateSegmentIsFatal(t *testing.T) {
	path := writeGFA(t, "S\t1\tA\nS\t1\tC\n")

	_, err := graphstore.Load(path, false, false)
	require.ErrorIs(t, err, graphstore.ErrDuplicateSegment)
}

// TestLoad_ScenarioF reproduces spec.md §8 Scenario F: a path with
// segment 2 traversed backward defines canonical edges (1,+,2,-) and
// (2,-,3,+), both of which must resolve.
func TestLoad_ScenarioF(t *testing.T) {
	body := "S\t1\tAA\n" +
		"S\t2\tAA\n" +
		"S\t3\tAA\n" +
		"L\t1\t+\t2\t-\t0M\n" +
		"L\t2\t-\t3\t+\t0M\n" +
		"P\tp\t1+,2-,3+\t*\n"
	path := writeGFA(t, body)

	gs, err := graphstore.Load(path, true, false)
	require.NoError(t, err)
	require.Equal(t, 2, gs.EdgeCount())

	s1, _ := gs.SegmentID("1")
	s2, _ := gs.SegmentID("2")
	s3, _ := gs.SegmentID("3")

	e1, err := gs.EdgeID(s1, graphstore.Forward, s2, graphstore.Backward)
	require.NoError(t, err)
	e2, err := gs.EdgeID(s2, graphstore.Backward, s3, graphstore.Forward)
	require.NoError(t, err)
	require.NotEqual(t, e1, e2)

	// flip(e) must resolve to the same EdgeId (spec.md §8 invariant 6).
	eFlip, err := gs.EdgeID(s2, graphstore.Forward, s1, graphstore.Backward)
	require.NoError(t, err)
	require.Equal(t, e1, eFlip)
}

func TestLoad_UnknownEdgeReference(t *testing.T) {
	body := "S\t1\tAA\n" +
		"S\t2\tAA\n" +
		"L\t1\t+\t9\t+\t0M\n"
	path := writeGFA(t, body)

	_, err := graphstore.Load(path, true, false)
	require.ErrorIs(t, err, graphstore.ErrUnknownSegment)
}

func TestCanonical_FlipIsInvolution(t *testing.T) {
	k := graphstore.Canonical(3, graphstore.Forward, 1, graphstore.Backward)
	require.Equal(t, k, k.Flip().Flip())
}

func TestLoad_NiceOrder(t *testing.T) {
	body := "S\t1\tA\n" +
		"S\t2\tA\n" +
		"S\t3\tA\n" +
		"L\t1\t+\t2\t+\t0M\n" +
		"L\t2\t+\t3\t+\t0M\n" +
		"P\tp\t1+,2+,3+\t*\n"
	path := writeGFA(t, body)

	gs, err := graphstore.Load(path, false, true)
	require.NoError(t, err)
	require.Equal(t, 3, gs.SegmentCount())
	// Every original segment name must still resolve to a valid id.
	for _, name := range []string{"1", "2", "3"} {
		id, ok := gs.SegmentID(name)
		require.True(t, ok)
		require.Greater(t, int(id), 0)
		require.LessOrEqual(t, int(id), 3)
	}
}
