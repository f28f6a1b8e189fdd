package tracer

import (
	"fmt"

	"github.com/gabapcia/origintrace/internal/pkg/types"
	"github.com/gabapcia/origintrace/internal/pkg/validator"
	"github.com/gabapcia/origintrace/internal/provenance"
)

// AssetID is the ledger identifier of a native asset: the policy id followed
// by the hex-encoded asset name.
type AssetID string

// NewAssetID builds the AssetID of assetName minted under policyID.
func NewAssetID(policyID, assetName string) AssetID {
	return AssetID(policyID + string(types.HexEncode(assetName)))
}

// PolicyID returns the minting policy part of the asset id.
func (a AssetID) PolicyID() string {
	if len(a) < policyIDLength {
		return string(a)
	}
	return string(a[:policyIDLength])
}

// AssetName returns the decoded asset name part of the asset id.
func (a AssetID) AssetName() string {
	if len(a) < policyIDLength {
		return ""
	}
	return types.Hex(a[policyIDLength:]).Decode()
}

// policyIDLength is the length of a hex-encoded policy id (28 bytes).
const policyIDLength = 56

// Request identifies the asset to trace and the custodian to watch for.
type Request struct {
	// PolicyID is the hex-encoded minting policy.
	PolicyID string `validate:"required,hexadecimal,len=56"`

	// AssetName is the human readable asset name; it is hex encoded on the wire.
	AssetName string

	// Custodian is a custodian address or a registered alias. Empty watches nothing.
	Custodian string
}

// AssetID returns the ledger identifier of the requested asset.
func (r Request) AssetID() AssetID {
	return NewAssetID(r.PolicyID, r.AssetName)
}

// buildRequest validates the raw request fields and lowercases the policy id.
func buildRequest(req Request) (Request, error) {
	if err := validator.Validate(req); err != nil {
		return Request{}, err
	}

	policyID, err := types.HexFromString(req.PolicyID)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", validator.ErrValidationFailed, err)
	}

	req.PolicyID = string(policyID)
	return req, nil
}

// replayInput is the validated shape of a history handed to Replay.
type replayInput struct {
	Events []provenance.OwnershipEvent `validate:"dive"`
}

// validateHistory rejects histories with empty transaction hashes or addresses.
func validateHistory(history provenance.History) error {
	return validator.Validate(replayInput{Events: history.Events()})
}
