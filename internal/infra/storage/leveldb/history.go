package leveldb

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gabapcia/origintrace/internal/provenance"
	"github.com/gabapcia/origintrace/internal/tracer"

	"github.com/syndtr/goleveldb/leveldb"
)

// historyKey returns the key holding the history of asset.
//
// Format: "history:{asset}"
func historyKey(asset tracer.AssetID) []byte {
	return []byte("history:" + string(asset))
}

// SaveHistory implements tracer.HistoryStorage.
func (c *client) SaveHistory(ctx context.Context, asset tracer.AssetID, history provenance.History) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(history)
	if err != nil {
		return err
	}

	return c.conn.Put(historyKey(asset), data, nil)
}

// LoadHistory implements tracer.HistoryStorage.
func (c *client) LoadHistory(ctx context.Context, asset tracer.AssetID) (provenance.History, error) {
	if err := ctx.Err(); err != nil {
		return provenance.History{}, err
	}

	data, err := c.conn.Get(historyKey(asset), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			err = tracer.ErrHistoryNotFound
		}
		return provenance.History{}, err
	}

	var history provenance.History
	return history, json.Unmarshal(data, &history)
}

var _ tracer.HistoryStorage = (*client)(nil)
