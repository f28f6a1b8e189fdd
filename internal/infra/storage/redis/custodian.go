package redis

import (
	"context"
	"errors"

	"github.com/gabapcia/origintrace/internal/custodianregistry"

	"github.com/redis/go-redis/v9"
)

// custodianRegistryKey returns the hash mapping custodian names to
// addresses.
//
// Format: "{namespace}:custodians"
func (c *client) custodianRegistryKey() string {
	return c.key("custodians")
}

// SaveCustodian implements custodianregistry.CustodianStorage.
func (c *client) SaveCustodian(ctx context.Context, custodian custodianregistry.Custodian) error {
	return c.conn.HSet(ctx, c.custodianRegistryKey(), custodian.Name, custodian.Address).Err()
}

// DeleteCustodian implements custodianregistry.CustodianStorage.
func (c *client) DeleteCustodian(ctx context.Context, name string) error {
	return c.conn.HDel(ctx, c.custodianRegistryKey(), name).Err()
}

// LoadCustodian implements custodianregistry.CustodianStorage.
func (c *client) LoadCustodian(ctx context.Context, name string) (custodianregistry.Custodian, error) {
	address, err := c.conn.HGet(ctx, c.custodianRegistryKey(), name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = custodianregistry.ErrCustodianNotFound
		}
		return custodianregistry.Custodian{}, err
	}

	return custodianregistry.Custodian{Name: name, Address: address}, nil
}

// ListCustodians implements custodianregistry.CustodianStorage.
func (c *client) ListCustodians(ctx context.Context) ([]custodianregistry.Custodian, error) {
	entries, err := c.conn.HGetAll(ctx, c.custodianRegistryKey()).Result()
	if err != nil {
		return nil, err
	}

	custodians := make([]custodianregistry.Custodian, 0, len(entries))
	for name, address := range entries {
		custodians = append(custodians, custodianregistry.Custodian{Name: name, Address: address})
	}

	return custodians, nil
}

var _ custodianregistry.CustodianStorage = (*client)(nil)
