package similarity

import "math"

// clusterNode tracks one active cluster during average-linkage
// agglomeration: its member leaf indices (in merge order, which
// doubles as the dendrogram leaf ordering once the whole tree has been
// collapsed into one cluster). Merging replaces two clusters by one
// holding both member lists, the disjoint-groups idea of prim_kruskal's
// DSU without its parent/rank maps.
type clusterNode struct {
	members []int
}

// Order returns a leaf ordering of the n groups in values (an n x n
// distance matrix, 0 on the diagonal) produced by average-linkage
// agglomerative clustering: repeatedly merge the two closest clusters,
// where inter-cluster distance is the mean of all pairwise distances
// between their members (UPGMA). Ties break on the lower cluster
// index pair for determinism. This mirrors the Rust original's use of
// kodama::linkage(..., Method::Average) to choose a heatmap row/column
// order (analyses/similarity.rs Similarity::set_table).
func Order(distances [][]float64) []int {
	n := len(distances)
	if n <= 1 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		return order
	}

	clusters := make([]*clusterNode, 0, n)
	for i := 0; i < n; i++ {
		clusters = append(clusters, &clusterNode{members: []int{i}})
	}

	for len(clusters) > 1 {
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				d := averageLinkage(clusters[i], clusters[j], distances)
				if d < best {
					best, bi, bj = d, i, j
				}
			}
		}

		merged := &clusterNode{members: append(append([]int{}, clusters[bi].members...), clusters[bj].members...)}
		next := make([]*clusterNode, 0, len(clusters)-1)
		for k, c := range clusters {
			if k == bi || k == bj {
				continue
			}
			next = append(next, c)
		}
		clusters = append(next, merged)
	}

	return clusters[0].members
}

func averageLinkage(a, b *clusterNode, distances [][]float64) float64 {
	var sum float64
	for _, i := range a.members {
		for _, j := range b.members {
			sum += distances[i][j]
		}
	}

	return sum / float64(len(a.members)*len(b.members))
}

// EuclideanDistances turns a similarity (or any numeric) matrix into a
// full distance matrix by treating each row as a feature vector and
// computing pairwise Euclidean distance between rows, matching the
// Rust original's calculate_distances/euclidean helpers.
func EuclideanDistances(m *Matrix) [][]float64 {
	n := len(m.Groups)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = m.Values.Row(i)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				diff := rows[i][k] - rows[j][k]
				sum += diff * diff
			}
			d := math.Sqrt(sum)
			out[i][j], out[j][i] = d, d
		}
	}

	return out
}

// Reorder permutes m's rows/columns and labels according to order.
func Reorder(m *Matrix, order []int) (*Matrix, error) {
	permuted, err := m.Values.Permute(order)
	if err != nil {
		return nil, err
	}
	groups := make([]string, len(order))
	for i, oi := range order {
		groups[i] = m.Groups[oi]
	}

	return &Matrix{Groups: groups, Values: permuted}, nil
}
