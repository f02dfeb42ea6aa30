package core

// Category is one of the eight umbrella spending buckets every raw merchant
// tag folds into.
type Category string

const (
	CategoryShopping       Category = "Shopping"
	CategoryFoodDining     Category = "Food & Dining"
	CategorySavings        Category = "Savings & Investment"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills & Subscriptions"
	CategoryHealthFitness  Category = "Health & Fitness"
	CategoryTransportation Category = "Transportation"
	// CategoryMiscellaneous is both a real bucket and the fallback for
	// unmapped or absent raw tags; an unclassifiable purchase lands here
	// rather than being dropped.
	CategoryMiscellaneous Category = "Miscellaneous"
)

// categories lists every umbrella in declaration order. That order is the
// canonical one: duplicate raw tags resolve to the first declared umbrella,
// and projection ties break in this order.
var categories = []Category{
	CategoryShopping,
	CategoryFoodDining,
	CategorySavings,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthFitness,
	CategoryTransportation,
	CategoryMiscellaneous,
}

// Categories returns the umbrella categories in declaration order. The
// returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// NewCategoryTotals returns a totals map with every umbrella key present and
// zeroed, so per-category figures exist even for buckets with no spend.
func NewCategoryTotals() map[Category]float64 {
	totals := make(map[Category]float64, len(categories))
	for _, c := range categories {
		totals[c] = 0
	}
	return totals
}
