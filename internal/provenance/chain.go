package provenance

import "github.com/gabapcia/origintrace/internal/pkg/types"

// Build turns an ordered ownership history into a custody chain.
//
// Consecutive transactions that leave the asset with the same address collapse
// into one node. Node 0 is the Origin. A node owned by custodian is a
// Custodian node; the node right before it becomes a Holder, and so does the
// first node created right after it. An empty custodian distinguishes nothing.
//
// Each new node i > 0 is linked to node i-1 by an edge carrying the hash of
// the transaction that created it. An empty history yields an empty graph.
//
// Precondition: history is in chronological order.
func Build(history History, custodian string) Graph {
	var (
		g       Graph
		counter int
		buckets = types.NewDefaultMap[string](func() types.Set[int] { return types.NewSet[int]() })
	)

	for _, event := range history.events {
		bucket, _ := buckets.Lookup(event.Address)
		if bucket.Len() > 0 && bucket.Has(counter-1) {
			continue
		}

		isCustodian := custodian != "" && event.Address == custodian

		switch {
		case counter == 0:
			g.addNode(event.Address, RoleOrigin)
		case isCustodian:
			g.relabel(counter-1, RoleHolder)
			g.addNode(event.Address, RoleCustodian)
		default:
			role := RoleOwner
			if g.Nodes[counter-1].Role == RoleCustodian {
				role = RoleHolder
			}
			g.addNode(event.Address, role)
		}

		if counter > 0 {
			g.addEdge(Edge{
				From:    counter - 1,
				To:      counter,
				Kind:    EdgeTransaction,
				Payload: event.TxHash,
			})
		}

		buckets.Get(event.Address).Add(counter)
		counter++
	}

	return g
}
