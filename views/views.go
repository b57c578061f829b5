// Package views holds the pure derived-view functions layered over a
// store snapshot: date grouping, spend aggregation, merchant rankings
// and period windowing. Nothing here mutates state or persists anything;
// callers pass in a fresh snapshot each time a view needs to render.
package views

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"go-demobank/models"
)

// Period is a symbolic spending window.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// dateKeyLayout renders bucket keys as long-form dates, e.g. "June 15, 2025".
const dateKeyLayout = "January 2, 2006"

// DateGroup is one calendar-date bucket of transactions.
type DateGroup struct {
	Date         string               `json:"date"`
	Transactions []models.Transaction `json:"transactions"`
}

// GroupByDate buckets transactions by calendar date. Relative order
// within a bucket follows the input list; buckets appear in first-seen
// order, so a date-descending input yields date-descending groups.
func GroupByDate(txs []models.Transaction) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, tx := range txs {
		key := tx.Date.Format(dateKeyLayout)
		i, seen := index[key]
		if !seen {
			index[key] = len(groups)
			groups = append(groups, DateGroup{Date: key})
			i = len(groups) - 1
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}

// CategorySummary is one category's share of debit spend.
type CategorySummary struct {
	Category   models.Category `json:"category"`
	Amount     float64         `json:"amount"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// CategorySpend groups debit transactions by category, summing amount
// and count and computing each category's percentage of total spend.
// Sums run through decimal arithmetic so float accumulation cannot
// drift the shares. Output is sorted amount-descending; ties keep
// first-seen order.
func CategorySpend(txs []models.Transaction) []CategorySummary {
	type bucket struct {
		amount decimal.Decimal
		count  int
	}
	totals := make(map[models.Category]*bucket)
	var order []models.Category
	totalSpend := decimal.Zero

	for _, tx := range txs {
		if tx.Type != models.Debit {
			continue
		}
		category := tx.Category.Normalize()
		amount := decimal.NewFromFloat(tx.Amount)
		b, seen := totals[category]
		if !seen {
			b = &bucket{}
			totals[category] = b
			order = append(order, category)
		}
		b.amount = b.amount.Add(amount)
		b.count++
		totalSpend = totalSpend.Add(amount)
	}

	hundred := decimal.NewFromInt(100)
	summaries := make([]CategorySummary, 0, len(order))
	for _, category := range order {
		b := totals[category]
		percentage := 0.0
		if !totalSpend.IsZero() {
			percentage = b.amount.Mul(hundred).Div(totalSpend).InexactFloat64()
		}
		summaries = append(summaries, CategorySummary{
			Category:   category,
			Amount:     b.amount.InexactFloat64(),
			Count:      b.count,
			Percentage: percentage,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Amount > summaries[j].Amount
	})
	return summaries
}

// MerchantSummary is one merchant's total debit spend.
type MerchantSummary struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// topMerchantLimit caps the merchant ranking.
const topMerchantLimit = 5

// TopMerchants groups debit transactions by merchant, sums amount and
// count, sorts amount-descending and keeps the top 5.
func TopMerchants(txs []models.Transaction) []MerchantSummary {
	type bucket struct {
		amount decimal.Decimal
		count  int
	}
	totals := make(map[string]*bucket)
	var order []string

	for _, tx := range txs {
		if tx.Type != models.Debit {
			continue
		}
		b, seen := totals[tx.Merchant]
		if !seen {
			b = &bucket{}
			totals[tx.Merchant] = b
			order = append(order, tx.Merchant)
		}
		b.amount = b.amount.Add(decimal.NewFromFloat(tx.Amount))
		b.count++
	}

	summaries := make([]MerchantSummary, 0, len(order))
	for _, merchant := range order {
		b := totals[merchant]
		summaries = append(summaries, MerchantSummary{
			Merchant: merchant,
			Amount:   b.amount.InexactFloat64(),
			Count:    b.count,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Amount > summaries[j].Amount
	})
	if len(summaries) > topMerchantLimit {
		summaries = summaries[:topMerchantLimit]
	}
	return summaries
}

// PeriodStart computes the window cutoff for a symbolic period relative
// to now: week is seven days back, month is the first of the current
// month, year is January 1. Unknown periods fall back to month.
func PeriodStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// FilterSince keeps transactions dated at or after the cutoff.
func FilterSince(txs []models.Transaction, cutoff time.Time) []models.Transaction {
	var kept []models.Transaction
	for _, tx := range txs {
		if !tx.Date.Before(cutoff) {
			kept = append(kept, tx)
		}
	}
	return kept
}
