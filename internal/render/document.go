package render

import (
	"strconv"

	"github.com/gabapcia/origintrace/internal/provenance"
)

const (
	// derivedEdgeColor is used for every edge inferred by trajectory analysis.
	derivedEdgeColor = "#000000"

	// derivedEdgeAlpha is the opacity of derived edges.
	derivedEdgeAlpha = 0.54
)

type (
	// Node is a vis-network node.
	Node struct {
		ID      int    `json:"id"`
		Label   string `json:"label"`
		Title   string `json:"title"`
		Color   string `json:"color"`
		Address string `json:"address"`
		Role    string `json:"role"`
	}

	// EdgeColor is a vis-network edge color with opacity.
	EdgeColor struct {
		Color   string  `json:"color"`
		Opacity float64 `json:"opacity"`
	}

	// Edge is a vis-network edge.
	Edge struct {
		ID     string     `json:"id"`
		From   int        `json:"from"`
		To     int        `json:"to"`
		Title  string     `json:"title"`
		Label  string     `json:"label,omitempty"`
		Color  *EdgeColor `json:"color,omitempty"`
		Arrows string     `json:"arrows"`
	}

	// Document is a directed network ready to be drawn by vis-network.
	Document struct {
		Heading string `json:"heading"`
		Nodes   []Node `json:"nodes"`
		Edges   []Edge `json:"edges"`
	}
)

// NewDocument lays out g under heading. Nodes are titled with their address
// and colored per address. Transaction edges are titled with their hash;
// derived edges carry their outcome as title and label and are drawn in
// translucent black.
func NewDocument(heading string, g provenance.Graph) Document {
	colors := AddressColors(g)

	doc := Document{
		Heading: heading,
		Nodes:   make([]Node, 0, len(g.Nodes)),
		Edges:   make([]Edge, 0, len(g.Edges)),
	}

	for _, n := range g.Nodes {
		doc.Nodes = append(doc.Nodes, Node{
			ID:      n.Index,
			Label:   n.Label(),
			Title:   n.Address,
			Color:   colors[n.Address],
			Address: n.Address,
			Role:    string(n.Role),
		})
	}

	for _, e := range g.Edges {
		edge := Edge{
			ID:     string(e.Kind) + ":" + strconv.Itoa(e.From) + "-" + strconv.Itoa(e.To),
			From:   e.From,
			To:     e.To,
			Title:  e.Payload,
			Arrows: "to",
		}

		if e.Kind == provenance.EdgeDerived {
			edge.Label = e.Payload
			edge.Color = &EdgeColor{Color: derivedEdgeColor, Opacity: derivedEdgeAlpha}
		}

		doc.Edges = append(doc.Edges, edge)
	}

	return doc
}
