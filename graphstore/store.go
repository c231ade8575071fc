package graphstore

import (
	"fmt"
	"io"

	"github.com/vlaran/pangaea/internal/gfa"
	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("graphstore")

// GraphStore is the immutable result of a single GFA ingestion pass:
// dense segment identifiers, segment lengths, canonical edge
// identifiers (if requested), and the ordered list of path identifiers
// observed. Constructed once per input file by Load and never mutated
// afterward (spec.md §3 "Lifecycles").
type GraphStore struct {
	segmentIndex map[string]SegmentId
	segmentName  []string // 1-based; index 0 unused
	segmentLen   []int    // 1-based; index 0 unused

	edgeIndex map[EdgeKey]EdgeId
	edgeKey   []EdgeKey // 1-based; index 0 unused

	pathNames []string // path identifiers, in file encounter order
}

// Load opens gfaPath (transparently decompressing gzip) and performs
// GraphStore's single ingestion pass, per spec.md §4.1. needEdges
// controls whether L records are resolved into canonical EdgeIds;
// needNiceOrder controls whether segments are subsequently relabelled
// by applyNiceOrder.
func Load(gfaPath string, needEdges, needNiceOrder bool) (*GraphStore, error) {
	r, err := gfa.Open(gfaPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	gs := &GraphStore{
		segmentIndex: make(map[string]SegmentId),
		segmentName:  []string{""},
		segmentLen:   []int{0},
		edgeIndex:    make(map[EdgeKey]EdgeId),
		edgeKey:      []EdgeKey{{}},
	}

	var rawLinks []gfa.Link
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch v := rec.(type) {
		case gfa.Segment:
			if _, dup := gs.segmentIndex[v.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSegment, v.Name)
			}
			id := SegmentId(len(gs.segmentName))
			gs.segmentIndex[v.Name] = id
			gs.segmentName = append(gs.segmentName, v.Name)
			gs.segmentLen = append(gs.segmentLen, v.Length)
		case gfa.Link:
			if needEdges || needNiceOrder {
				rawLinks = append(rawLinks, v)
			}
		case gfa.PathRecord:
			gs.pathNames = append(gs.pathNames, v.Name)
		case gfa.WalkRecord:
			ps := FromWalk(v.Sample, v.Hap, v.SeqID, v.Start, v.End, v.HasRange)
			gs.pathNames = append(gs.pathNames, ps.String())
		}
	}

	// Nice-order relabelling must happen before edge resolution: it
	// permutes SegmentIds in place, and edges must be keyed on final ids.
	if needNiceOrder {
		if err := gs.applyNiceOrder(rawLinks); err != nil {
			return nil, err
		}
	}

	if needEdges {
		if err := gs.resolveEdges(rawLinks); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("segments", gs.SegmentCount()).Int("paths", len(gs.pathNames)).Int("edges", gs.EdgeCount()).Msg("graph store loaded")

	return gs, nil
}

// resolveEdges builds edge2id from the buffered L records, now that
// every segment name has an assigned SegmentId.
func (gs *GraphStore) resolveEdges(links []gfa.Link) error {
	for _, l := range links {
		u, ok := gs.segmentIndex[l.From]
		if !ok {
			return fmt.Errorf("%w: link references %q", ErrUnknownSegment, l.From)
		}
		v, ok := gs.segmentIndex[l.To]
		if !ok {
			return fmt.Errorf("%w: link references %q", ErrUnknownSegment, l.To)
		}
		key := Canonical(u, l.FromOrient, v, l.ToOrient)
		if _, exists := gs.edgeIndex[key]; exists {
			continue
		}
		id := EdgeId(len(gs.edgeKey))
		gs.edgeIndex[key] = id
		gs.edgeKey = append(gs.edgeKey, key)
	}

	return nil
}

// SegmentCount returns N, the number of distinct segments.
func (gs *GraphStore) SegmentCount() int { return len(gs.segmentName) - 1 }

// EdgeCount returns the number of distinct canonical edges (0 if
// edges were not requested at Load time).
func (gs *GraphStore) EdgeCount() int { return len(gs.edgeKey) - 1 }

// SegmentID resolves a segment name to its dense ID.
func (gs *GraphStore) SegmentID(name string) (SegmentId, bool) {
	id, ok := gs.segmentIndex[name]
	return id, ok
}

// SegmentName returns the original S-record name for id.
func (gs *GraphStore) SegmentName(id SegmentId) string { return gs.segmentName[id] }

// SegmentLength returns the recorded length of segment id.
func (gs *GraphStore) SegmentLength(id SegmentId) int { return gs.segmentLen[id] }

// EdgeKeyByID returns the canonical (u,ou,v,ov) tuple for a
// previously-resolved EdgeId, used by tsv's by-group table to render
// the `<ori1><name1><ori2><name2>` edge identifier (spec.md §6).
func (gs *GraphStore) EdgeKeyByID(id EdgeId) EdgeKey { return gs.edgeKey[id] }

// EdgeID looks up the canonical EdgeId for an observed (u,ou,v,ov)
// adjacency. The diagnostic distinguishes "never seen" from "seen only
// in flipped form" per spec.md §7 UnknownEdge.
func (gs *GraphStore) EdgeID(u SegmentId, ou Orientation, v SegmentId, ov Orientation) (EdgeId, error) {
	key := Canonical(u, ou, v, ov)
	if id, ok := gs.edgeIndex[key]; ok {
		return id, nil
	}
	if _, ok := gs.edgeIndex[key.Flip()]; ok {
		return SentinelEdge, fmt.Errorf("%w: (%d%s,%d%s); only its flipped form is known", ErrUnknownEdge, u, ou, v, ov)
	}

	return SentinelEdge, fmt.Errorf("%w: (%d%s,%d%s); flipped form also unknown", ErrUnknownEdge, u, ou, v, ov)
}

// PathNames returns the path identifiers observed, in GFA file order.
func (gs *GraphStore) PathNames() []string { return gs.pathNames }
