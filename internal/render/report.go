package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gabapcia/origintrace/internal/pkg/types"
	"github.com/gabapcia/origintrace/internal/provenance"
)

// WriteReport prints the number of distinct owners of history and, for each
// owner in first-seen order, the transactions that left the asset with it.
func WriteReport(w io.Writer, history provenance.History) error {
	addresses := history.Addresses()
	if _, err := fmt.Fprintln(w, len(addresses), "Unique Wallet"); err != nil {
		return err
	}

	txHashes := types.NewDefaultMap[string](func() []string { return nil })
	for _, e := range history.Events() {
		txHashes.Set(e.Address, append(txHashes.Get(e.Address), e.TxHash))
	}

	for _, address := range addresses {
		if _, err := fmt.Fprintf(w, "\nAddress: %s\n", address); err != nil {
			return err
		}

		for _, txHash := range txHashes.Get(address) {
			if _, err := fmt.Fprintf(w, "Tx Hash: %s\n", txHash); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteHistory writes history as an indented JSON object of transaction hash
// to owner address.
func WriteHistory(w io.Writer, history provenance.History) error {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
