package grid

import "github.com/amfl/short-circuit/coord"

// wireUnionFind is a disjoint-set over provisional wire labels, used by
// deserialize's global connectivity pass. Unlike prim_kruskal.Kruskal's
// union-by-rank merge (which only needs *some* deterministic root), a wire
// label merge must keep the smaller label as the surviving root, so two
// boards that glyph-deserialize the same physical layout always converge on
// the same final grouping regardless of scan order.
type wireUnionFind struct {
	parent []int
}

func newWireUnionFind(n int) *wireUnionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &wireUnionFind{parent: parent}
}

// find follows parent pointers to the root, compressing the path as it
// goes so repeated lookups on the same label stay near O(1).
func (u *wireUnionFind) find(label int) int {
	for u.parent[label] != label {
		u.parent[label] = u.parent[u.parent[label]]
		label = u.parent[label]
	}
	return label
}

// union merges the sets containing a and b, keeping the smaller resulting
// root label so label identity is scan-order independent.
func (u *wireUnionFind) union(a, b int) {
	rootA, rootB := u.find(a), u.find(b)
	if rootA == rootB {
		return
	}
	if rootA < rootB {
		u.parent[rootB] = rootA
	} else {
		u.parent[rootA] = rootB
	}
}

// labelGrid runs a two-pass connected-component labeling over every Wire
// cell (as reported by isWire), using 4-connectivity. It returns, for each
// cell, a compact 0..k-1 group index (-1 for a non-wire cell) — the
// standard left/up-neighbor provisional-label pass followed by a union-find
// resolution pass, rather than a recursive flood fill, so a single global
// join over a large board never recurses.
func labelGrid(width, height int, isWire func(c coord.Coord) bool) [][]int {
	labels := make([][]int, height)
	for y := range labels {
		labels[y] = make([]int, width)
		for x := range labels[y] {
			labels[y][x] = -1
		}
	}

	uf := newWireUnionFind(width * height)
	next := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := coord.Coord{X: x, Y: y}
			if !isWire(c) {
				continue
			}
			up, left := -1, -1
			if y > 0 && labels[y-1][x] >= 0 {
				up = labels[y-1][x]
			}
			if x > 0 && labels[y][x-1] >= 0 {
				left = labels[y][x-1]
			}
			switch {
			case up < 0 && left < 0:
				labels[y][x] = next
				next++
			case up >= 0 && left < 0:
				labels[y][x] = up
			case left >= 0 && up < 0:
				labels[y][x] = left
			default:
				labels[y][x] = left
				uf.union(up, left)
			}
		}
	}

	resolved := make(map[int]int, next)
	groupOf := make([][]int, height)
	for y := range groupOf {
		groupOf[y] = make([]int, width)
		for x := range groupOf[y] {
			groupOf[y][x] = -1
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if labels[y][x] < 0 {
				continue
			}
			root := uf.find(labels[y][x])
			idx, ok := resolved[root]
			if !ok {
				idx = len(resolved)
				resolved[root] = idx
			}
			groupOf[y][x] = idx
		}
	}
	return groupOf
}
