// Package leveldb stores traced histories and custodian aliases in an
// embedded LevelDB database, for single-machine use without a Redis server.
package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// client wraps a LevelDB handle and implements the storage ports of the
// tracer and the custodian registry.
type client struct {
	conn *leveldb.DB
}

// Close flushes and closes the database.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient opens, or creates, the database at path.
func NewClient(path string) (*client, error) {
	conn, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}

// NewMemClient opens a database that lives in memory only.
func NewMemClient() (*client, error) {
	conn, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
