package graphstore

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment is a parsed path/walk identifier:
// sample['#'haplotype['#'seqid[':'start'-'end]]] (spec.md §6, grounded
// on original_source's graph.rs PathSegment::from_str). Coordinates are
// half-open; stripping them is the identity for grouping (spec.md §3).
type PathSegment struct {
	Sample     string
	Haplotype  string
	HasHap     bool
	SeqID      string
	HasSeqID   bool
	Start, End int
	HasRange   bool
}

// ParsePathSegment parses a P-record path name or a pre-joined W-record
// identifier against the sample[#haplotype[#seqid[:start-end]]] grammar.
func ParsePathSegment(raw string) (PathSegment, error) {
	coordPart := raw
	var start, end int
	hasRange := false
	if idx := strings.LastIndexByte(raw, ':'); idx >= 0 {
		rangeStr := raw[idx+1:]
		if dash := strings.IndexByte(rangeStr, '-'); dash >= 0 {
			s, serr := strconv.Atoi(rangeStr[:dash])
			e, eerr := strconv.Atoi(rangeStr[dash+1:])
			if serr == nil && eerr == nil {
				start, end, hasRange = s, e, true
				coordPart = raw[:idx]
			}
		}
	}

	fields := strings.Split(coordPart, "#")
	if len(fields) == 0 || fields[0] == "" {
		return PathSegment{}, fmt.Errorf("%w: %q", ErrMalformedPathID, raw)
	}

	ps := PathSegment{Sample: fields[0], Start: start, End: end, HasRange: hasRange}
	if len(fields) >= 2 {
		ps.Haplotype, ps.HasHap = fields[1], true
	}
	if len(fields) >= 3 {
		ps.SeqID, ps.HasSeqID = fields[2], true
	}
	if len(fields) > 3 {
		return PathSegment{}, fmt.Errorf("%w: too many '#'-separated fields in %q", ErrMalformedPathID, raw)
	}

	return ps, nil
}

// FromWalk builds a PathSegment directly from a W record's fields,
// skipping the string round-trip.
func FromWalk(sample, hap, seqID string, start, end int, hasRange bool) PathSegment {
	return PathSegment{
		Sample: sample, Haplotype: hap, HasHap: true,
		SeqID: seqID, HasSeqID: true,
		Start: start, End: end, HasRange: hasRange,
	}
}

// Identity returns the coordinate-stripped form of the identifier,
// used as the key for group lookups: two PathSegments differing only
// by coords share the same Identity (spec.md §9).
func (p PathSegment) Identity() string {
	var b strings.Builder
	b.WriteString(p.Sample)
	if p.HasHap {
		b.WriteByte('#')
		b.WriteString(p.Haplotype)
	}
	if p.HasSeqID {
		b.WriteByte('#')
		b.WriteString(p.SeqID)
	}

	return b.String()
}

// String reconstructs the full identifier, including coordinates.
func (p PathSegment) String() string {
	id := p.Identity()
	if p.HasRange {
		id += fmt.Sprintf(":%d-%d", p.Start, p.End)
	}

	return id
}
