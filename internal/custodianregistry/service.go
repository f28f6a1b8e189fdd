// Package custodianregistry keeps named aliases for custodian addresses, so
// that traces can refer to a marketplace contract by a short name.
package custodianregistry

import "context"

// Service registers, removes, and resolves custodian aliases.
type Service interface {
	// Register stores address under name, replacing any previous address.
	//
	// Returns a validation error if name or address is empty.
	Register(ctx context.Context, name, address string) error

	// Unregister removes the alias name. Removing an unknown alias is not an error.
	Unregister(ctx context.Context, name string) error

	// Resolve returns the address registered under nameOrAddress. Values that
	// are not a registered alias are returned unchanged, as raw addresses.
	Resolve(ctx context.Context, nameOrAddress string) (string, error)

	// List returns every registered alias, sorted by name.
	List(ctx context.Context) ([]Custodian, error)
}

// service is the default implementation of Service.
type service struct {
	custodianStorage CustodianStorage
}

var _ Service = (*service)(nil)

// New creates a registry backed by cs.
func New(cs CustodianStorage) *service {
	return &service{
		custodianStorage: cs,
	}
}
