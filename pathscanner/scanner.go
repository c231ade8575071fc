package pathscanner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vlaran/pangaea/graphmask"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/bedio"
	"github.com/vlaran/pangaea/internal/gfa"
	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("pathscanner")

// shardCount is T in spec.md §5's "shared append-only buffer partitioned
// by id mod T" description.
const shardCount = 1024

// job is one path's raw body, collected sequentially from disk before
// parallel parsing (spec.md §5 "the scanner reads the GFA sequentially;
// ... CPU-parallel data work is delegated to a thread pool").
type job struct {
	position int // index into the output PathItems slice (== mask.PathOrder position)
	index    int // GraphStore path index
	group    string
	isWalk   bool
	body     string
}

type coveredShard struct {
	mu   sync.Mutex
	data map[graphstore.SegmentId][]bedio.Interval
}

// Scan performs PathScanner's second GFA pass: for each path present in
// mask.PathOrder, parses its P/W body under gs and mask and emits the
// ordered countable ID list (spec.md §4.3). threads bounds the worker
// pool used for the parallel body-parsing stage (spec.md §5).
func Scan(gfaPath string, gs *graphstore.GraphStore, mask *graphmask.Mask, kind CountKind, threads int) (*Result, error) {
	jobs, err := collectJobs(gfaPath, gs, mask)
	if err != nil {
		return nil, err
	}

	out := make([]PathItems, len(jobs))
	var shards []coveredShard
	if kind == BP {
		shards = make([]coveredShard, shardCount)
		for i := range shards {
			shards[i].data = make(map[graphstore.SegmentId][]bedio.Interval)
		}
	}

	if threads < 1 {
		threads = 1
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(threads)

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			inc, exc := mask.IncludeMap[j.index], mask.ExcludeMap[j.index]
			hasInc := len(mask.IncludeMap) > 0
			items, lengths, covered, err := parseBody(gs, j, kind, hasInc, inc, exc)
			if err != nil {
				return err
			}
			out[j.position] = PathItems{PathIndex: j.index, Group: j.group, Items: items, Lengths: lengths}
			if kind == BP {
				for sid, ivs := range covered {
					addCovered(shards, sid, ivs)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Kind: kind, PathItems: out}
	if kind == BP {
		res.Covered = make(map[graphstore.SegmentId][]bedio.Interval, len(shards)*4)
		for i := range shards {
			for sid, ivs := range shards[i].data {
				res.Covered[sid] = ivs
			}
		}
	}

	return res, nil
}

func addCovered(shards []coveredShard, sid graphstore.SegmentId, ivs []bedio.Interval) {
	sh := &shards[int(sid)%len(shards)]
	sh.mu.Lock()
	sh.data[sid] = bedio.MergeSorted(append(sh.data[sid], ivs...))
	sh.mu.Unlock()
}

// collectJobs re-reads the GFA file sequentially (the only suspension
// point, per spec.md §5) and buffers each masked path's raw body.
func collectJobs(gfaPath string, gs *graphstore.GraphStore, mask *graphmask.Mask) ([]job, error) {
	nameToIndex := make(map[string]int, len(gs.PathNames()))
	for i, n := range gs.PathNames() {
		nameToIndex[n] = i
	}

	position := make(map[int]int, len(mask.PathOrder))
	group := make(map[int]string, len(mask.PathOrder))
	for pos, e := range mask.PathOrder {
		position[e.PathIndex] = pos
		group[e.PathIndex] = e.Group
	}

	r, err := gfa.Open(gfaPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	jobs := make([]job, len(mask.PathOrder))
	seen := make([]bool, len(mask.PathOrder))
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var name, body string
		var isWalk bool
		switch v := rec.(type) {
		case gfa.PathRecord:
			name, body = v.Name, v.Body
		case gfa.WalkRecord:
			ps := graphstore.FromWalk(v.Sample, v.Hap, v.SeqID, v.Start, v.End, v.HasRange)
			name, body, isWalk = ps.String(), v.Body, true
		default:
			continue
		}

		idx, ok := nameToIndex[name]
		if !ok {
			continue
		}
		pos, ok := position[idx]
		if !ok {
			continue // not part of the mask's path order
		}
		jobs[pos] = job{position: pos, index: idx, group: group[idx], isWalk: isWalk, body: body}
		seen[pos] = true
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("pathscanner: path at mask position %d not found in GFA body pass", i)
		}
	}

	return jobs, nil
}

// tokenize splits a P or W body into (name, orientation) pairs,
// matching spec.md §4.3's parsing contract for both record kinds: a
// token boundary is any '+'/'-' (P, trailing) or '>'/'<' (W, leading).
func tokenize(body string, isWalk bool) ([]string, []graphstore.Orientation, error) {
	if !isWalk {
		raw := strings.Split(body, ",")
		names := make([]string, len(raw))
		orients := make([]graphstore.Orientation, len(raw))
		for i, tok := range raw {
			if len(tok) < 2 {
				return nil, nil, fmt.Errorf("%w: token %q too short", ErrMalformedPath, tok)
			}
			o, ok := gfa.OrientationFromByte(tok[len(tok)-1])
			if !ok {
				return nil, nil, fmt.Errorf("%w: unknown orientation in %q", ErrMalformedPath, tok)
			}
			names[i] = tok[:len(tok)-1]
			orients[i] = o
		}

		return names, orients, nil
	}

	var names []string
	var orients []graphstore.Orientation
	var cur strings.Builder
	var curOrient graphstore.Orientation
	have := false
	flush := func() error {
		if !have {
			return nil
		}
		if cur.Len() == 0 {
			return fmt.Errorf("%w: empty segment name", ErrMalformedWalk)
		}
		names = append(names, cur.String())
		orients = append(orients, curOrient)
		cur.Reset()

		return nil
	}
	for i := 0; i < len(body); i++ {
		if o, ok := gfa.OrientationFromByte(body[i]); ok && (body[i] == '>' || body[i] == '<') {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			curOrient = o
			have = true
			continue
		}
		cur.WriteByte(body[i])
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%w: empty walk body", ErrMalformedWalk)
	}

	return names, orients, nil
}

func parseBody(gs *graphstore.GraphStore, j job, kind CountKind, hasInc bool, inc, exc graphmask.Span) ([]ItemID, []int, map[graphstore.SegmentId][]bedio.Interval, error) {
	names, orients, err := tokenize(j.body, j.isWalk)
	if err != nil {
		return nil, nil, nil, err
	}

	ids := make([]graphstore.SegmentId, len(names))
	for i, name := range names {
		id, ok := gs.SegmentID(name)
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: %q", graphstore.ErrUnknownSegment, name)
		}
		ids[i] = id
	}

	includeWhole := !hasInc || inc.Whole
	includeIntervals := inc.Intervals
	excludeWhole := exc.Whole
	excludeIntervals := exc.Intervals

	var items []ItemID
	var lengths []int
	var covered map[graphstore.SegmentId][]bedio.Interval
	if kind == BP {
		covered = make(map[graphstore.SegmentId][]bedio.Interval)
	}

	p := 0
	for i, id := range ids {
		l := gs.SegmentLength(id)
		if kind == Edge {
			if i+1 < len(ids) {
				nid := ids[i+1]
				nl := gs.SegmentLength(nid)
				a, b, any := clampLocal(includeWhole, includeIntervals, p, nl)
				if any && b-a == nl && !fullyExcluded(excludeWhole, excludeIntervals, p, nl) {
					eid, err := gs.EdgeID(id, orients[i], nid, orients[i+1])
					if err != nil {
						return nil, nil, nil, err
					}
					items = append(items, ItemID(eid))
				}
			}
			p += l
			continue
		}

		a, b, any := clampLocal(includeWhole, includeIntervals, p, l)
		if !any {
			p += l
			continue
		}
		ea, eb, hasExc := clampLocal(excludeWhole, excludeIntervals, p, l)
		if !hasExc {
			ea, eb = 0, 0
		}

		if kind == Node {
			if b-a == l && !(hasExc && eb-ea == l) {
				items = append(items, ItemID(id))
			}
			p += l
			continue
		}

		// BP: accumulate every covered sub-interval after subtracting
		// the excluded window; presence in the item list is binary
		// (any coverage at all), matching AbacusTotal's group-presence
		// semantics (spec.md §4.4); the partial lengths feed
		// uncovered_bps via Result.Covered instead.
		subs := subtractLocal(a, b, hasExc, ea, eb)
		if len(subs) == 0 {
			p += l
			continue
		}
		coveredLen := 0
		items = append(items, ItemID(id))
		for _, s := range subs {
			la, lb := s[0], s[1]
			coveredLen += lb - la
			if orients[i] == graphstore.Backward {
				la, lb = invertBackward(la, lb, l)
			}
			covered[id] = append(covered[id], bedio.Interval{Start: la, End: lb})
		}
		lengths = append(lengths, coveredLen)
		p += l
	}

	if kind == BP {
		for sid, ivs := range covered {
			covered[sid] = bedio.MergeSorted(ivs)
		}
	}

	return items, lengths, covered, nil
}

func fullyExcluded(whole bool, intervals []bedio.Interval, p, l int) bool {
	if !whole && len(intervals) == 0 {
		return false
	}
	a, b, any := clampLocal(whole, intervals, p, l)

	return any && b-a == l
}
