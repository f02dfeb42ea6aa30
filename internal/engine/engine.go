// Package engine orchestrates the spending aggregation pipeline: identity
// resolution, the chain of record-source lookups, classification, and the
// fold into per-category totals.
package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rickeychiu/budgeteer/internal/core"
	"github.com/rickeychiu/budgeteer/internal/identity"
	"github.com/rickeychiu/budgeteer/internal/source"
	"github.com/rickeychiu/budgeteer/internal/taxonomy"
)

// Engine computes spending aggregates from a record source. It holds no
// per-request state; one Engine serves concurrent requests.
type Engine struct {
	src source.RecordSource
}

func New(src source.RecordSource) *Engine {
	return &Engine{src: src}
}

// Aggregate runs the full pipeline for one identity and returns the
// resulting aggregate. All-or-nothing: the first error in dependency order
// aborts the run, and no partial aggregate is ever returned. Deadlines and
// retries are the caller's concern; ctx cancellation propagates into every
// fetch.
func (e *Engine) Aggregate(ctx context.Context, id core.UserIdentity) (*core.SpendingAggregate, error) {
	customers, err := e.src.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := identity.Resolve(id, customers)
	if err != nil {
		return nil, err
	}

	accounts, err := e.src.ListAccounts(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, core.ErrNoAccountsForCustomer
	}
	// One account per run, the first returned. A documented simplification:
	// "first" carries no primary-account semantics.
	account := accounts[0]

	// Purchases and the merchant directory have no ordering dependency.
	var (
		purchases []core.Purchase
		merchants []core.Merchant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		purchases, err = e.src.ListPurchases(gctx, account.ID)
		return err
	})
	g.Go(func() error {
		var err error
		merchants, err = e.src.ListMerchants(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := fold(customer, account, purchases, merchants)

	slog.DebugContext(ctx, "Aggregation complete",
		"customer_id", agg.CustomerID,
		"purchase_count", agg.PurchaseCount,
		"total_spending", agg.TotalSpending)

	return agg, nil
}

// fold classifies each purchase and accumulates totals. Every amount lands
// in some bucket: a purchase with no merchant match or no raw tag counts
// fully under Miscellaneous, so TotalSpending always equals the sum of the
// category totals.
func fold(customer core.Customer, account core.Account, purchases []core.Purchase, merchants []core.Merchant) *core.SpendingAggregate {
	byID := make(map[string]core.Merchant, len(merchants))
	for _, m := range merchants {
		byID[m.ID] = m
	}

	totals := core.NewCategoryTotals()
	resolved := make(map[string]core.Category)
	var total float64

	for _, p := range purchases {
		total += p.Amount

		m, ok := byID[p.MerchantID]
		if !ok || len(m.RawCategories) == 0 {
			totals[core.CategoryMiscellaneous] += p.Amount
			continue
		}

		// Only the first raw tag participates; once resolved, the umbrella
		// is cached per merchant for the lifetime of this aggregate.
		umbrella, seen := resolved[p.MerchantID]
		if !seen {
			umbrella = taxonomy.Classify(m.RawCategories[0])
			resolved[p.MerchantID] = umbrella
		}
		totals[umbrella] += p.Amount
	}

	return &core.SpendingAggregate{
		CustomerID:         customer.ID,
		CustomerName:       customer.DisplayName(),
		AccountID:          account.ID,
		CategoryTotals:     totals,
		TotalSpending:      total,
		PurchaseCount:      len(purchases),
		Purchases:          purchases,
		MerchantsByID:      byID,
		MerchantCategories: resolved,
	}
}
