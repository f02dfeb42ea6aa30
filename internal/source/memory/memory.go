// Package memory provides a fixture-backed record source for local
// development and tests, so the server runs without upstream credentials.
package memory

import (
	"context"
	"sync"

	"github.com/rickeychiu/budgeteer/internal/core"
	"github.com/rickeychiu/budgeteer/internal/source"
)

// Store serves a fixed data set. Reads hand out copies so callers can never
// share mutable state across concurrent aggregation runs.
type Store struct {
	mu        sync.Mutex
	customers []core.Customer
	accounts  []core.Account
	purchases map[string][]core.Purchase // keyed by account id
	merchants []core.Merchant
}

var _ source.RecordSource = (*Store)(nil)

// New creates a store over the given records. Purchases are keyed by the
// account that owns them, mirroring the upstream per-account endpoint.
func New(customers []core.Customer, accounts []core.Account, purchases map[string][]core.Purchase, merchants []core.Merchant) *Store {
	if purchases == nil {
		purchases = map[string][]core.Purchase{}
	}
	return &Store{
		customers: customers,
		accounts:  accounts,
		purchases: purchases,
		merchants: merchants,
	}
}

// NewSeeded creates a store with a small sample data set that exercises
// several umbrella buckets plus the missing-merchant fallback.
func NewSeeded() *Store {
	return New(
		[]core.Customer{
			{ID: "cust-1", FirstName: "Jane", LastName: "Doe"},
			{ID: "cust-2", FirstName: "John", LastName: "Smith"},
		},
		[]core.Account{
			{ID: "acct-1", CustomerID: "cust-1"},
			{ID: "acct-2", CustomerID: "cust-2"},
		},
		map[string][]core.Purchase{
			"acct-1": {
				{ID: "p-1", MerchantID: "m-1", Amount: 52.40, PurchaseDate: "2026-08-03"},
				{ID: "p-2", MerchantID: "m-2", Amount: 18.75, PurchaseDate: "2026-08-05"},
				{ID: "p-3", MerchantID: "m-3", Amount: 120.00, PurchaseDate: "2026-08-09"},
				{ID: "p-4", MerchantID: "m-4", Amount: 64.10, PurchaseDate: "2026-08-14"},
				{ID: "p-5", MerchantID: "m-5", Amount: 9.99, PurchaseDate: "2026-08-18"},
				{ID: "p-6", MerchantID: "missing", Amount: 31.00, PurchaseDate: "2026-08-21"},
			},
			"acct-2": {
				{ID: "p-7", MerchantID: "m-1", Amount: 22.10, PurchaseDate: "2026-08-11"},
			},
		},
		[]core.Merchant{
			{ID: "m-1", Name: "Corner Grocer", Address: "12 Elm St", RawCategories: []string{"grocery"}},
			{ID: "m-2", Name: "Fuel Stop", Address: "48 Route 9", RawCategories: []string{"gas_station"}},
			{ID: "m-3", Name: "City Gym", Address: "7 Park Ave", RawCategories: []string{"gym"}},
			{ID: "m-4", Name: "Mega Mart", Address: "300 Broad St", RawCategories: []string{"department_store"}},
			{ID: "m-5", Name: "StreamCo", RawCategories: []string{"Internet"}},
		},
	)
}

func (s *Store) ListCustomers(_ context.Context) ([]core.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Customer(nil), s.customers...), nil
}

func (s *Store) ListAccounts(_ context.Context, customerID string) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Account
	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) ListPurchases(_ context.Context, accountID string) ([]core.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Purchase(nil), s.purchases[accountID]...), nil
}

func (s *Store) ListMerchants(_ context.Context) ([]core.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Merchant, 0, len(s.merchants))
	for _, m := range s.merchants {
		cp := m
		cp.RawCategories = append([]string(nil), m.RawCategories...)
		out = append(out, cp)
	}
	return out, nil
}
