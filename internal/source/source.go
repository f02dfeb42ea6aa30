// Package source defines the outbound port to the financial-record source.
package source

import (
	"context"

	"github.com/rickeychiu/budgeteer/internal/core"
)

// RecordSource is the read-only port to the external financial-record
// collaborator. Each call fetches a complete result set: no retries, no
// pagination. Failures surface as *core.UpstreamError naming the operation.
//
// ListAccounts returning an empty slice is not an error at this layer; the
// aggregation engine decides what an accountless customer means.
type RecordSource interface {
	ListCustomers(ctx context.Context) ([]core.Customer, error)
	ListAccounts(ctx context.Context, customerID string) ([]core.Account, error)
	ListPurchases(ctx context.Context, accountID string) ([]core.Purchase, error)
	ListMerchants(ctx context.Context) ([]core.Merchant, error)
}
