// Package provenance rebuilds the custody chain of a ledger asset from its
// ordered ownership history and annotates round trips through a custodian
// address.
//
// The package performs no I/O. Callers hand it a fully materialized History
// whose order is the chronological order of the ledger.
package provenance

import (
	"slices"
	"strconv"
)

// Role classifies a node of the custody chain.
type Role string

const (
	// RoleOrigin marks the first owner of the asset.
	RoleOrigin Role = "Origin"

	// RoleCustodian marks a span of custody by the custodian address.
	RoleCustodian Role = "Custodian"

	// RoleHolder marks an owner adjacent to custody: the last holder before
	// the asset entered the custodian, or the first holder after it left.
	RoleHolder Role = "Holder"

	// RoleOwner marks any other intermediate owner.
	RoleOwner Role = "Owner"
)

// Node is one maximal contiguous span of ownership by a single address.
type Node struct {
	Index   int    `json:"index"`
	Address string `json:"address"`
	Role    Role   `json:"role"`
}

// Label returns the display label of the node. Ordinary owners are labeled
// with their chain position, every other role with its name.
func (n Node) Label() string {
	if n.Role == RoleOwner {
		return strconv.Itoa(n.Index)
	}
	return string(n.Role)
}

// EdgeKind tells apart edges driven by a transaction from edges inferred by
// trajectory analysis.
type EdgeKind string

const (
	// EdgeTransaction links node i to node i+1; its payload is a tx hash.
	EdgeTransaction EdgeKind = "transaction"

	// EdgeDerived links the neighbours of a custodian node; its payload is an
	// outcome label.
	EdgeDerived EdgeKind = "derived"
)

// Edge is a directed link between two chain nodes.
type Edge struct {
	From    int      `json:"from"`
	To      int      `json:"to"`
	Kind    EdgeKind `json:"kind"`
	Payload string   `json:"payload"`
}

// Graph is the custody chain. Nodes are stored by index, so Nodes[i].Index == i.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// FindNode reports whether a node with the given index exists.
func (g *Graph) FindNode(index int) bool {
	return index >= 0 && index < len(g.Nodes)
}

// Node returns the node at index.
func (g *Graph) Node(index int) (Node, bool) {
	if !g.FindNode(index) {
		return Node{}, false
	}
	return g.Nodes[index], true
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// TransactionEdges returns the step-by-step edges of the chain.
func (g *Graph) TransactionEdges() []Edge {
	return g.edgesOfKind(EdgeTransaction)
}

// DerivedEdges returns the edges added by trajectory analysis.
func (g *Graph) DerivedEdges() []Edge {
	return g.edgesOfKind(EdgeDerived)
}

func (g *Graph) edgesOfKind(kind EdgeKind) []Edge {
	var edges []Edge
	for _, e := range g.Edges {
		if e.Kind == kind {
			edges = append(edges, e)
		}
	}
	return edges
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() Graph {
	return Graph{
		Nodes: slices.Clone(g.Nodes),
		Edges: slices.Clone(g.Edges),
	}
}

func (g *Graph) addNode(address string, role Role) int {
	index := len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{Index: index, Address: address, Role: role})
	return index
}

func (g *Graph) relabel(index int, role Role) {
	g.Nodes[index].Role = role
}

func (g *Graph) addEdge(e Edge) {
	g.Edges = append(g.Edges, e)
}
