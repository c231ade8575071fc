// Package pangaea computes pangenome statistics from variation graphs
// encoded in GFA1: coverage histograms, pangenome growth curves (union,
// core, and quorum-constrained), per-group presence/absence tables, and
// pairwise Jaccard similarities with hierarchical clustering.
//
// The pipeline:
//
//	graphstore  — one pass over GFA S/L/P/W records, assigning dense
//	              segment and canonical-edge identifiers.
//	graphmask   — turns grouping/include/exclude/order options into a
//	              deterministic path traversal plan.
//	pathscanner — a second GFA pass producing, per path, the ordered
//	              countable IDs (segments, edges, or covered base pairs)
//	              it contributes under the current mask.
//	abacus      — aggregates path contributions into either a dense
//	              per-group coverage total or a sparse by-group CSR
//	              matrix.
//	histogram   — coverage -> count distributions from an abacus total.
//	growth      — closed-form pangenome growth curves (union/core/quorum
//	              and ordered) from a histogram or a by-group abacus.
//
// Everything above the abacus layer — similarity clustering, node
// distribution, TSV/HTML rendering, and the cobra-based CLI in
// cmd/pangaea — consumes these packages' public results.
//
//	go get github.com/vlaran/pangaea
package pangaea
