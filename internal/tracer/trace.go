package tracer

import (
	"context"
	"errors"

	"github.com/gabapcia/origintrace/internal/pkg/logger"
	"github.com/gabapcia/origintrace/internal/provenance"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Trace implements Service.
func (s *service) Trace(ctx context.Context, req Request) (Result, error) {
	req, err := buildRequest(req)
	if err != nil {
		return Result{}, err
	}

	asset := req.AssetID()

	ctx, span := s.tracer.Start(ctx, "tracer.Trace", trace.WithAttributes(
		attribute.String("asset.id", string(asset)),
		attribute.String("asset.policy_id", req.PolicyID),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "asset.id", string(asset))

	custodian, err := s.custodianResolver.Resolve(ctx, req.Custodian)
	if err != nil {
		return Result{}, recordError(span, err)
	}

	history, err := s.collectHistory(ctx, asset)
	if err != nil {
		logger.Error(ctx, "failed to collect asset history", "error", err)
		return Result{}, recordError(span, err)
	}

	span.SetAttributes(attribute.Int("history.length", history.Len()))
	if history.Len() == 0 {
		logger.Info(ctx, "asset has no ownership history")
		return Result{Asset: asset, Custodian: custodian}, nil
	}

	logger.Info(ctx, "asset history collected", "transactions", history.Len(), "owners", len(history.Addresses()))

	return Result{
		Asset:     asset,
		Custodian: custodian,
		History:   history,
		Graph:     provenance.Chain(history, custodian, s.labels),
	}, nil
}

// collectHistory merges the stored history of asset with the transactions the
// ledger reports, resolving only the ones not seen before, and stores the
// result when it grew.
func (s *service) collectHistory(ctx context.Context, asset AssetID) (provenance.History, error) {
	stored, err := s.historyStorage.LoadHistory(ctx, asset)
	if err != nil && !errors.Is(err, ErrHistoryNotFound) {
		return provenance.History{}, err
	}

	var txHashes []string
	err = s.retry.Execute(ctx, func() error {
		var err error
		txHashes, err = s.ledger.AssetTransactions(ctx, asset)
		return err
	})
	if err != nil {
		return provenance.History{}, err
	}

	if len(txHashes) == 0 {
		return provenance.History{}, nil
	}

	pending := make([]string, 0, len(txHashes))
	for _, txHash := range txHashes {
		if !stored.Has(txHash) {
			pending = append(pending, txHash)
		}
	}

	owners, err := s.resolveOwners(ctx, asset, pending)
	if err != nil {
		return provenance.History{}, err
	}

	var history provenance.History
	for _, txHash := range txHashes {
		if owner, ok := stored.Get(txHash); ok {
			history.Put(txHash, owner)
			continue
		}

		if owner, ok := owners[txHash]; ok {
			history.Put(txHash, owner)
		}
	}

	if len(pending) == 0 {
		return history, nil
	}

	if err := s.historyStorage.SaveHistory(ctx, asset, history); err != nil {
		logger.Warn(ctx, "failed to store asset history", "error", err)
	}

	return history, nil
}

// Replay implements Service.
func (s *service) Replay(ctx context.Context, history provenance.History, custodian string) (Result, error) {
	if err := validateHistory(history); err != nil {
		return Result{}, err
	}

	ctx, span := s.tracer.Start(ctx, "tracer.Replay", trace.WithAttributes(
		attribute.Int("history.length", history.Len()),
	))
	defer span.End()

	custodian, err := s.custodianResolver.Resolve(ctx, custodian)
	if err != nil {
		return Result{}, recordError(span, err)
	}

	result := Result{Custodian: custodian, History: history}
	if history.Len() > 0 {
		result.Graph = provenance.Chain(history, custodian, s.labels)
	}

	return result, nil
}

// History implements Service.
func (s *service) History(ctx context.Context, req Request) (provenance.History, error) {
	req, err := buildRequest(req)
	if err != nil {
		return provenance.History{}, err
	}

	return s.historyStorage.LoadHistory(ctx, req.AssetID())
}

// recordError marks span as failed and returns err unchanged.
func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
