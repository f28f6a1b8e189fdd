package tracer

import (
	"context"
	"sync"

	"github.com/gabapcia/origintrace/internal/pkg/logger"
	"github.com/gabapcia/origintrace/internal/pkg/x/chflow"

	"golang.org/x/sync/errgroup"
)

// ownerJob asks a worker for the owner after one transaction.
type ownerJob struct {
	txHash string
}

// ownerCache memoizes address to owner lookups across workers.
type ownerCache struct {
	mu     sync.Mutex
	owners map[string]string
}

func (c *ownerCache) get(address string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	owner, ok := c.owners[address]
	return owner, ok
}

func (c *ownerCache) put(address, owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.owners[address] = owner
}

// resolveOwners finds, for each transaction in txHashes, the owner of the
// last output holding asset. Transactions without such an output are left
// out of the returned map.
//
// Up to s.concurrency transactions are resolved at once; the first error
// cancels the remaining work.
func (s *service) resolveOwners(ctx context.Context, asset AssetID, txHashes []string) (map[string]string, error) {
	if len(txHashes) == 0 {
		return map[string]string{}, nil
	}

	var (
		mu     sync.Mutex
		owners = make(map[string]string, len(txHashes))
		cache  = &ownerCache{owners: make(map[string]string)}
		jobs   = make(chan ownerJob)
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, txHash := range txHashes {
			if !chflow.Send(gctx, jobs, ownerJob{txHash: txHash}) {
				return gctx.Err()
			}
		}
		return nil
	})

	for range min(s.concurrency, len(txHashes)) {
		g.Go(func() error {
			for {
				job, ok := chflow.Receive(gctx, jobs)
				if !ok {
					return gctx.Err()
				}

				owner, found, err := s.resolveOwner(gctx, asset, job.txHash, cache)
				if err != nil {
					return err
				}

				if !found {
					logger.Debug(gctx, "transaction left no output holding the asset", "tx.hash", job.txHash)
					continue
				}

				mu.Lock()
				owners[job.txHash] = owner
				mu.Unlock()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return owners, nil
}

// resolveOwner returns the owner of the last output of txHash holding asset.
// found is false when no output holds it.
func (s *service) resolveOwner(ctx context.Context, asset AssetID, txHash string, cache *ownerCache) (owner string, found bool, err error) {
	var addresses []string
	err = s.retry.Execute(ctx, func() error {
		var err error
		addresses, err = s.ledger.AssetOutputAddresses(ctx, txHash, asset)
		return err
	})
	if err != nil {
		return "", false, err
	}

	if len(addresses) == 0 {
		return "", false, nil
	}

	address := addresses[len(addresses)-1]
	if owner, ok := cache.get(address); ok {
		return owner, true, nil
	}

	err = s.retry.Execute(ctx, func() error {
		var err error
		owner, err = s.resolver.ResolveOwner(ctx, address)
		return err
	})
	if err != nil {
		return "", false, err
	}

	cache.put(address, owner)
	return owner, true, nil
}
