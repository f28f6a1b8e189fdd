package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gabapcia/origintrace/internal/provenance"
	"github.com/gabapcia/origintrace/internal/tracer"

	"github.com/redis/go-redis/v9"
)

// historyStorageKey returns the key holding the history of asset.
//
// Format: "{namespace}:history:{asset}"
func (c *client) historyStorageKey(asset tracer.AssetID) string {
	return c.key("history", string(asset))
}

// SaveHistory implements tracer.HistoryStorage.
//
// The history is stored as its JSON object encoding with no expiration.
func (c *client) SaveHistory(ctx context.Context, asset tracer.AssetID, history provenance.History) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, c.historyStorageKey(asset), data, 0).Err()
}

// LoadHistory implements tracer.HistoryStorage.
func (c *client) LoadHistory(ctx context.Context, asset tracer.AssetID) (provenance.History, error) {
	data, err := c.conn.Get(ctx, c.historyStorageKey(asset)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = tracer.ErrHistoryNotFound
		}
		return provenance.History{}, err
	}

	var history provenance.History
	return history, json.Unmarshal(data, &history)
}

var _ tracer.HistoryStorage = (*client)(nil)
