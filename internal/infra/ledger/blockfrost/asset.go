package blockfrost

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/gabapcia/origintrace/internal/pkg/transport/rest"
	"github.com/gabapcia/origintrace/internal/tracer"
)

type (
	// AssetTransactionResponse is one entry of /assets/{asset}/transactions.
	AssetTransactionResponse struct {
		TxHash      string `json:"tx_hash"`
		TxIndex     int    `json:"tx_index"`
		BlockHeight int64  `json:"block_height"`
		BlockTime   int64  `json:"block_time"`
	}

	// AmountResponse is a quantity of one unit held by an output.
	AmountResponse struct {
		Unit     string `json:"unit"`
		Quantity string `json:"quantity"`
	}

	// OutputResponse is a transaction output.
	OutputResponse struct {
		Address     string           `json:"address"`
		Amount      []AmountResponse `json:"amount"`
		OutputIndex int              `json:"output_index"`
	}

	// UTXOsResponse is the body of /txs/{hash}/utxos. Inputs are not needed.
	UTXOsResponse struct {
		Hash    string           `json:"hash"`
		Outputs []OutputResponse `json:"outputs"`
	}
)

// holds reports whether the output carries any quantity of unit.
func (o OutputResponse) holds(unit string) bool {
	for _, a := range o.Amount {
		if a.Unit == unit {
			return true
		}
	}
	return false
}

// AssetTransactions implements tracer.Ledger.
//
// Pages are requested oldest first until a short page is served. An asset
// Blockfrost does not know yields no transactions.
func (c *client) AssetTransactions(ctx context.Context, asset tracer.AssetID) ([]string, error) {
	path := "/assets/" + url.PathEscape(string(asset)) + "/transactions"

	var txHashes []string
	for page := 1; ; page++ {
		query := url.Values{
			"page":  {strconv.Itoa(page)},
			"count": {strconv.Itoa(pageSize)},
			"order": {"asc"},
		}

		var txs []AssetTransactionResponse
		if err := c.get(ctx, "asset_transactions", path, query, &txs); err != nil {
			if errors.Is(err, rest.ErrNotFound) {
				return txHashes, nil
			}
			return nil, err
		}

		for _, tx := range txs {
			txHashes = append(txHashes, tx.TxHash)
		}

		if len(txs) < pageSize {
			return txHashes, nil
		}
	}
}

// AssetOutputAddresses implements tracer.Ledger.
func (c *client) AssetOutputAddresses(ctx context.Context, txHash string, asset tracer.AssetID) ([]string, error) {
	var utxos UTXOsResponse
	if err := c.get(ctx, "tx_utxos", "/txs/"+url.PathEscape(txHash)+"/utxos", nil, &utxos); err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(utxos.Outputs))
	for _, output := range utxos.Outputs {
		if output.holds(string(asset)) {
			addresses = append(addresses, output.Address)
		}
	}

	return addresses, nil
}
