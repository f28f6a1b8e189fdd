package tracer

import (
	"context"
	"errors"

	"github.com/gabapcia/origintrace/internal/provenance"
)

// ErrHistoryNotFound is returned when no history was stored for an asset.
var ErrHistoryNotFound = errors.New("no history found for asset")

// HistoryStorage persists the ownership history of traced assets.
//
// A stored history doubles as a checkpoint: transactions it already holds are
// not resolved again on the next trace of the same asset.
type HistoryStorage interface {
	// SaveHistory stores history for asset, replacing any previous one.
	SaveHistory(ctx context.Context, asset AssetID, history provenance.History) error

	// LoadHistory returns the stored history of asset, or ErrHistoryNotFound.
	LoadHistory(ctx context.Context, asset AssetID) (provenance.History, error)
}

// nopHistoryStorage keeps nothing.
type nopHistoryStorage struct{}

var _ HistoryStorage = nopHistoryStorage{}

func (nopHistoryStorage) SaveHistory(context.Context, AssetID, provenance.History) error {
	return nil
}

func (nopHistoryStorage) LoadHistory(context.Context, AssetID) (provenance.History, error) {
	return provenance.History{}, ErrHistoryNotFound
}

// CustodianResolver turns a custodian alias into an address.
type CustodianResolver interface {
	// Resolve returns the address registered under nameOrAddress, or
	// nameOrAddress itself when it is not a registered alias.
	Resolve(ctx context.Context, nameOrAddress string) (string, error)
}

// identityCustodianResolver treats every custodian as a raw address.
type identityCustodianResolver struct{}

var _ CustodianResolver = identityCustodianResolver{}

func (identityCustodianResolver) Resolve(_ context.Context, nameOrAddress string) (string, error) {
	return nameOrAddress, nil
}
