package leveldb

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/origintrace/internal/custodianregistry"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// custodianKeyPrefix prefixes every custodian alias key.
const custodianKeyPrefix = "custodian:"

// custodianKey returns the key holding the address of the custodian name.
//
// Format: "custodian:{name}"
func custodianKey(name string) []byte {
	return []byte(custodianKeyPrefix + name)
}

// SaveCustodian implements custodianregistry.CustodianStorage.
func (c *client) SaveCustodian(ctx context.Context, custodian custodianregistry.Custodian) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.conn.Put(custodianKey(custodian.Name), []byte(custodian.Address), nil)
}

// DeleteCustodian implements custodianregistry.CustodianStorage.
func (c *client) DeleteCustodian(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.conn.Delete(custodianKey(name), nil)
}

// LoadCustodian implements custodianregistry.CustodianStorage.
func (c *client) LoadCustodian(ctx context.Context, name string) (custodianregistry.Custodian, error) {
	if err := ctx.Err(); err != nil {
		return custodianregistry.Custodian{}, err
	}

	address, err := c.conn.Get(custodianKey(name), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			err = custodianregistry.ErrCustodianNotFound
		}
		return custodianregistry.Custodian{}, err
	}

	return custodianregistry.Custodian{Name: name, Address: string(address)}, nil
}

// ListCustodians implements custodianregistry.CustodianStorage.
func (c *client) ListCustodians(ctx context.Context) ([]custodianregistry.Custodian, error) {
	iter := c.conn.NewIterator(util.BytesPrefix([]byte(custodianKeyPrefix)), nil)
	defer iter.Release()

	var custodians []custodianregistry.Custodian
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		custodians = append(custodians, custodianregistry.Custodian{
			Name:    strings.TrimPrefix(string(iter.Key()), custodianKeyPrefix),
			Address: string(iter.Value()),
		})
	}

	return custodians, iter.Error()
}

var _ custodianregistry.CustodianStorage = (*client)(nil)
