package blockfrost

import (
	"context"
	"errors"
	"net/url"

	"github.com/gabapcia/origintrace/internal/pkg/transport/rest"
)

// AddressResponse is the body of /addresses/{address}.
type AddressResponse struct {
	Address      string  `json:"address"`
	StakeAddress *string `json:"stake_address"`
	Type         string  `json:"type"`
	Script       bool    `json:"script"`
}

// owner returns the stake address, or the address itself when it has none.
func (a AddressResponse) owner(fallback string) string {
	if a.StakeAddress == nil || *a.StakeAddress == "" {
		return fallback
	}
	return *a.StakeAddress
}

// ResolveOwner implements tracer.AddressResolver.
//
// Addresses Blockfrost has no record of are their own owner.
func (c *client) ResolveOwner(ctx context.Context, address string) (string, error) {
	var res AddressResponse
	if err := c.get(ctx, "address", "/addresses/"+url.PathEscape(address), nil, &res); err != nil {
		if errors.Is(err, rest.ErrNotFound) {
			return address, nil
		}
		return "", err
	}

	return res.owner(address), nil
}
