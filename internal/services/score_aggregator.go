package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rafabene/hyperlocal-backend/internal/domain/errors"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
)

// DefaultLookupConcurrency limita as buscas de produto em paralelo por recálculo
const DefaultLookupConcurrency = 8

// ScoreAggregator recalcula o score de uma franquia como a soma dos scores
// dos produtos de suas vendas ativas.
type ScoreAggregator struct {
	saleRepo      repositories.SaleRepository
	productRepo   repositories.ProductRepository
	franchiseRepo repositories.FranchiseRepository
	concurrency   int
	logger        ports.Logger
}

// NewScoreAggregator cria um novo ScoreAggregator
func NewScoreAggregator(
	saleRepo repositories.SaleRepository,
	productRepo repositories.ProductRepository,
	franchiseRepo repositories.FranchiseRepository,
	concurrency int,
	logger ports.Logger,
) *ScoreAggregator {
	if concurrency < 1 {
		concurrency = DefaultLookupConcurrency
	}
	return &ScoreAggregator{
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		franchiseRepo: franchiseRepo,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// Compute soma os scores sem persistir. Cada produto distinto é buscado uma
// vez, em paralelo; um produto inexistente aborta o cálculo com ErrProductNotFound.
func (a *ScoreAggregator) Compute(ctx context.Context, franchiseID string) (int, error) {
	sales, err := a.saleRepo.ListActiveByFranchise(ctx, franchiseID)
	if err != nil {
		return 0, err
	}
	if len(sales) == 0 {
		return 0, nil
	}

	soldUnits := make(map[string]int)
	for _, sale := range sales {
		soldUnits[sale.ProductID]++
	}

	var (
		mu    sync.Mutex
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for productID, units := range soldUnits {
		g.Go(func() error {
			product, err := a.productRepo.FindByID(gctx, productID)
			if err != nil {
				return err
			}
			if product == nil {
				return errors.ErrProductNotFound.With(map[string]interface{}{"ID": productID})
			}

			mu.Lock()
			total += product.Score * units
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}

// Recalculate computa e grava o novo score da franquia
func (a *ScoreAggregator) Recalculate(ctx context.Context, franchiseID string) (int, error) {
	score, err := a.Compute(ctx, franchiseID)
	if err != nil {
		return 0, err
	}

	if err := a.franchiseRepo.UpdateScore(ctx, franchiseID, score); err != nil {
		return 0, err
	}

	a.logger.Debug("franchise score recalculated", "franchise_id", franchiseID, "score", score)
	return score, nil
}
