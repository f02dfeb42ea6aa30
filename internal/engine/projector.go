package engine

import (
	"math"
	"sort"

	"github.com/rickeychiu/budgeteer/internal/core"
)

// Project reduces an aggregate into the compact context object consumed by
// the summarization collaborator. Pure: reads the aggregate, mutates
// nothing.
//
// Categories are filtered to nonzero spend, rounded to cents, and ordered by
// descending value; ties keep category declaration order so the output is
// deterministic. Balance is the aggregate's total spending.
func Project(agg *core.SpendingAggregate, periodLabel string, goal *float64) core.SpendingContext {
	categories := make([]core.CategoryValue, 0, len(agg.CategoryTotals))
	for _, c := range core.Categories() {
		v := round2(agg.CategoryTotals[c])
		if v > 0 {
			categories = append(categories, core.CategoryValue{Name: string(c), Value: v})
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Value > categories[j].Value
	})

	balance := round2(agg.TotalSpending)
	return core.SpendingContext{
		Categories: categories,
		Balance:    &balance,
		Goal:       goal,
		Month:      periodLabel,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
