// Package pathgraph aggregates customer journeys into a weighted directed graph of
// channel transitions, bounded by virtual Start and Conversion/Exit nodes, in the
// {nodes, links} shape flow diagrams consume.
package pathgraph

import (
	"fmt"

	M "mta/model"
)

const (
	NodeStart      = "Start"
	NodeConversion = "Conversion"
	NodeExit       = "Exit"
)

type Node struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

type PathGraph struct {
	Nodes   []Node                    `json:"nodes"`
	Links   []Link                    `json:"links"`
	Skipped []M.MalformedJourneyError `json:"skipped"`
}

type linkKey struct {
	source string
	target string
}

// IsVirtualNode reports whether id is one of the nodes bounding every path.
func IsVirtualNode(id string) bool {
	return id == NodeStart || id == NodeConversion || id == NodeExit
}

func isTerminalNode(id string) bool {
	return id == NodeConversion || id == NodeExit
}

// Build aggregates all journeys, converted or not, into a path graph.
//
// Each journey contributes its weight to every transition of
// [Start, channels..., Conversion|Exit]. Consecutive visits to the same channel add
// no link. Zero weight journeys add nothing. Malformed journeys and journeys
// using a virtual node id as a channel are skipped and listed on Skipped.
func Build(journeys []M.Journey) *PathGraph {
	links := []Link{}
	index := make(map[linkKey]int)
	skipped := []M.MalformedJourneyError{}

	for i, journey := range journeys {
		if malformed := validateForGraph(journey, i); malformed != nil {
			skipped = append(skipped, *malformed)
			continue
		}
		weight := journey.Weight()
		if weight == 0 {
			continue
		}
		for _, pair := range transitions(journey) {
			if pair.source == pair.target {
				continue
			}
			if at, exists := index[pair]; exists {
				links[at].Weight += weight
				continue
			}
			index[pair] = len(links)
			links = append(links, Link{Source: pair.source, Target: pair.target, Weight: weight})
		}
	}

	graph := fromLinks(links)
	graph.Skipped = skipped
	return graph
}

func validateForGraph(journey M.Journey, index int) *M.MalformedJourneyError {
	if malformed := M.ValidateJourneyAt(journey, index); malformed != nil {
		return malformed
	}
	for i, tp := range journey.Touchpoints {
		if IsVirtualNode(string(tp.Channel)) {
			return &M.MalformedJourneyError{
				Index:     index,
				JourneyID: journey.ID,
				Reason:    fmt.Sprintf("channel %q at touchpoint %d collides with a virtual node", tp.Channel, i),
			}
		}
	}
	return nil
}

func terminalOf(journey M.Journey) string {
	if journey.Converted {
		return NodeConversion
	}
	return NodeExit
}

func transitions(journey M.Journey) []linkKey {
	sequence := make([]string, 0, len(journey.Touchpoints)+2)
	sequence = append(sequence, NodeStart)
	for _, tp := range journey.Touchpoints {
		sequence = append(sequence, string(tp.Channel))
	}
	sequence = append(sequence, terminalOf(journey))

	pairs := make([]linkKey, 0, len(sequence)-1)
	for i := 1; i < len(sequence); i++ {
		pairs = append(pairs, linkKey{source: sequence[i-1], target: sequence[i]})
	}
	return pairs
}

// fromLinks derives the node set from the links, in first-occurrence order.
// Only nodes with at least one incident link are present.
func fromLinks(links []Link) *PathGraph {
	nodes := []Node{}
	nodeIndex := make(map[string]int)
	in := make(map[string]float64)
	out := make(map[string]float64)

	addNode := func(id string) {
		if _, exists := nodeIndex[id]; !exists {
			nodeIndex[id] = len(nodes)
			nodes = append(nodes, Node{ID: id})
		}
	}
	for _, link := range links {
		addNode(link.Source)
		addNode(link.Target)
		out[link.Source] += link.Weight
		in[link.Target] += link.Weight
	}
	for i := range nodes {
		if isTerminalNode(nodes[i].ID) {
			nodes[i].Value = in[nodes[i].ID]
		} else {
			nodes[i].Value = out[nodes[i].ID]
		}
	}
	return &PathGraph{Nodes: nodes, Links: links, Skipped: []M.MalformedJourneyError{}}
}

// IsEmpty is true when there is nothing to visualize.
func (g *PathGraph) IsEmpty() bool {
	return len(g.Links) == 0
}

func (g *PathGraph) Node(id string) (Node, bool) {
	for _, node := range g.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return Node{}, false
}

func (g *PathGraph) Link(source, target string) (Link, bool) {
	for _, link := range g.Links {
		if link.Source == source && link.Target == target {
			return link, true
		}
	}
	return Link{}, false
}

// InWeight is the total weight of links ending at id.
func (g *PathGraph) InWeight(id string) float64 {
	total := 0.0
	for _, link := range g.Links {
		if link.Target == id {
			total += link.Weight
		}
	}
	return total
}

// OutWeight is the total weight of links leaving id.
func (g *PathGraph) OutWeight(id string) float64 {
	total := 0.0
	for _, link := range g.Links {
		if link.Source == id {
			total += link.Weight
		}
	}
	return total
}
