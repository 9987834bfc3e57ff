package pathgraph

import "sort"

// Acyclic returns a copy of the graph without the links that close a cycle, for
// renderers that only accept DAGs. Links are admitted heaviest first, ties in
// link order, and a link is dropped when its target already reaches its source
// through admitted links. Admitted links keep their original order and node
// values are recomputed from them.
func (g *PathGraph) Acyclic() *PathGraph {
	order := make([]int, len(g.Links))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Links[order[i]].Weight > g.Links[order[j]].Weight
	})

	adjacency := make(map[string][]string)
	admitted := make([]bool, len(g.Links))
	for _, at := range order {
		link := g.Links[at]
		if reaches(adjacency, link.Target, link.Source) {
			continue
		}
		adjacency[link.Source] = append(adjacency[link.Source], link.Target)
		admitted[at] = true
	}

	links := make([]Link, 0, len(g.Links))
	for i, link := range g.Links {
		if admitted[i] {
			links = append(links, link)
		}
	}

	graph := fromLinks(links)
	graph.Skipped = append(graph.Skipped, g.Skipped...)
	return graph
}

// IsAcyclic reports whether no node can reach itself.
func (g *PathGraph) IsAcyclic() bool {
	adjacency := make(map[string][]string)
	for _, link := range g.Links {
		if reaches(adjacency, link.Target, link.Source) {
			return false
		}
		adjacency[link.Source] = append(adjacency[link.Source], link.Target)
	}
	return true
}

func reaches(adjacency map[string][]string, from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adjacency[current] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}
