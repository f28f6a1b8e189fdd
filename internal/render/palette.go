// Package render turns a custody chain into something people can look at:
// an interactive HTML network, a console report, or a JSON dump.
package render

import (
	"fmt"
	"math/rand/v2"

	"github.com/gabapcia/origintrace/internal/pkg/types"
	"github.com/gabapcia/origintrace/internal/provenance"
)

// stableColors is the categorical palette handed out before falling back to
// random colors.
var stableColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Palette returns n colors: the stable palette first, then random ones.
// A non-positive n yields an empty palette.
func Palette(n int) []string {
	if n <= 0 {
		return []string{}
	}

	colors := make([]string, 0, n)
	colors = append(colors, stableColors[:min(n, len(stableColors))]...)
	for len(colors) < n {
		colors = append(colors, fmt.Sprintf("#%06X", rand.IntN(1<<24)))
	}

	return colors
}

// AddressColors assigns one color per distinct node address, in chain order.
func AddressColors(g provenance.Graph) map[string]string {
	addresses := types.NewOrderedSet[string]()
	for _, n := range g.Nodes {
		addresses.Add(n.Address)
	}

	palette := Palette(addresses.Len())
	colors := make(map[string]string, addresses.Len())
	for i, address := range addresses.ToSlice() {
		colors[address] = palette[i]
	}

	return colors
}
