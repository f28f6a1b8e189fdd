package custodianregistry

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/gabapcia/origintrace/internal/pkg/validator"
)

// ErrCustodianNotFound is returned by storages for unknown aliases.
var ErrCustodianNotFound = errors.New("custodian not found")

// Custodian is a named custodian address.
type Custodian struct {
	Name    string `json:"name" validate:"required,max=64,printascii"`
	Address string `json:"address" validate:"required"`
}

// CustodianStorage persists custodian aliases.
type CustodianStorage interface {
	// SaveCustodian stores c, replacing any custodian with the same name.
	SaveCustodian(ctx context.Context, c Custodian) error

	// DeleteCustodian removes the custodian called name, if any.
	DeleteCustodian(ctx context.Context, name string) error

	// LoadCustodian returns the custodian called name, or ErrCustodianNotFound.
	LoadCustodian(ctx context.Context, name string) (Custodian, error)

	// ListCustodians returns every stored custodian in no particular order.
	ListCustodians(ctx context.Context) ([]Custodian, error)
}

// buildCustodian validates and assembles a Custodian.
func buildCustodian(name, address string) (Custodian, error) {
	c := Custodian{
		Name:    name,
		Address: address,
	}

	return c, validator.Validate(c)
}

// Register implements Service.
func (s *service) Register(ctx context.Context, name, address string) error {
	c, err := buildCustodian(name, address)
	if err != nil {
		return err
	}

	return s.custodianStorage.SaveCustodian(ctx, c)
}

// Unregister implements Service.
func (s *service) Unregister(ctx context.Context, name string) error {
	if err := validator.Var(name, "required"); err != nil {
		return err
	}

	return s.custodianStorage.DeleteCustodian(ctx, name)
}

// Resolve implements Service.
func (s *service) Resolve(ctx context.Context, nameOrAddress string) (string, error) {
	if nameOrAddress == "" {
		return "", nil
	}

	c, err := s.custodianStorage.LoadCustodian(ctx, nameOrAddress)
	if err != nil {
		if errors.Is(err, ErrCustodianNotFound) {
			return nameOrAddress, nil
		}
		return "", err
	}

	return c.Address, nil
}

// List implements Service.
func (s *service) List(ctx context.Context) ([]Custodian, error) {
	custodians, err := s.custodianStorage.ListCustodians(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(custodians, func(a, b Custodian) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return custodians, nil
}
