package tracer

import "context"

// Ledger lists the on-chain activity of an asset.
type Ledger interface {
	// AssetTransactions returns the hash of every transaction that involved
	// asset, in chronological order. An asset without activity yields an
	// empty slice and no error.
	AssetTransactions(ctx context.Context, asset AssetID) ([]string, error)

	// AssetOutputAddresses returns, in output order, the addresses of the
	// outputs of txHash that hold asset. A transaction that burns the asset
	// yields an empty slice.
	AssetOutputAddresses(ctx context.Context, txHash string, asset AssetID) ([]string, error)
}

// AddressResolver maps an output address to the account that owns it.
type AddressResolver interface {
	// ResolveOwner returns the stake address controlling address, or address
	// itself when it has no stake part (e.g. script or enterprise addresses).
	ResolveOwner(ctx context.Context, address string) (string, error)
}
