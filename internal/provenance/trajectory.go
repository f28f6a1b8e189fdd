package provenance

import "cmp"

// OutcomeLabels names the two possible outcomes of a custody span.
type OutcomeLabels struct {
	// Return labels a span where the asset went back to the address that
	// handed it to the custodian.
	Return string `json:"return"`

	// Transfer labels a span where the asset left the custodian to a new party.
	Transfer string `json:"transfer"`
}

// DefaultOutcomeLabels are the labels used when none are configured.
var DefaultOutcomeLabels = OutcomeLabels{
	Return:   "Withdraw",
	Transfer: "Sold",
}

// withDefaults fills empty labels from DefaultOutcomeLabels.
func (l OutcomeLabels) withDefaults() OutcomeLabels {
	return OutcomeLabels{
		Return:   cmp.Or(l.Return, DefaultOutcomeLabels.Return),
		Transfer: cmp.Or(l.Transfer, DefaultOutcomeLabels.Transfer),
	}
}

// Analyze adds a derived edge across every custodian node that has both a
// predecessor and a successor. The edge links the two neighbours and is
// labeled labels.Return when they share an address, labels.Transfer otherwise.
// A custodian at the end of the chain still holds the asset and gets no edge.
//
// The original transaction edges are kept. Derived edges are identified by
// their endpoints: analyzing the same graph again never duplicates them, and
// a different label pair relabels the existing ones.
func Analyze(g *Graph, labels OutcomeLabels) {
	labels = labels.withDefaults()

	for _, n := range g.Nodes {
		if n.Role != RoleCustodian {
			continue
		}

		before, hasBefore := g.Node(n.Index - 1)
		after, hasAfter := g.Node(n.Index + 1)
		if !hasBefore || !hasAfter {
			continue
		}

		payload := labels.Transfer
		if before.Address == after.Address {
			payload = labels.Return
		}

		g.putDerivedEdge(before.Index, after.Index, payload)
	}
}

// putDerivedEdge inserts a derived edge or updates the payload of an existing
// one with the same endpoints.
func (g *Graph) putDerivedEdge(from, to int, payload string) {
	for i, e := range g.Edges {
		if e.Kind == EdgeDerived && e.From == from && e.To == to {
			g.Edges[i].Payload = payload
			return
		}
	}

	g.addEdge(Edge{From: from, To: to, Kind: EdgeDerived, Payload: payload})
}

// Chain builds the custody chain of history and analyzes its trajectory.
func Chain(history History, custodian string, labels OutcomeLabels) Graph {
	g := Build(history, custodian)
	Analyze(&g, labels)
	return g
}
