package core

type (
	// SpendingAggregate is the fully computed per-request view of a user's
	// spending. It is rebuilt from scratch on every aggregation call and is
	// never persisted; invariants:
	//
	//	TotalSpending == sum(CategoryTotals) == sum(Purchases[i].Amount)
	//	CategoryTotals holds all eight umbrella keys, zero-initialized.
	SpendingAggregate struct {
		CustomerID     string               `json:"customerId"`
		CustomerName   string               `json:"customerName"`
		AccountID      string               `json:"accountId"`
		CategoryTotals map[Category]float64 `json:"categoryTotals"`
		TotalSpending  float64              `json:"totalSpending"`
		PurchaseCount  int                  `json:"purchaseCount"`
		Purchases      []Purchase           `json:"purchases"`
		MerchantsByID  map[string]Merchant  `json:"merchantsById"`
		// MerchantCategories caches the umbrella resolved for each merchant
		// seen during this run. Derived data, scoped to this aggregate;
		// merchants that had no classifiable tag have no entry.
		MerchantCategories map[string]Category `json:"merchantCategories"`
	}

	// CategoryValue is one name/value pair in a spending context.
	CategoryValue struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	// SpendingContext is the compact summary handed to the summarization
	// collaborator: nonzero categories in descending spend order, a balance
	// figure, an optional savings goal, and a reporting period label.
	SpendingContext struct {
		Categories []CategoryValue `json:"categories"`
		Balance    *float64        `json:"balance,omitempty"`
		Goal       *float64        `json:"goal,omitempty"`
		Month      string          `json:"month,omitempty"`
	}
)
