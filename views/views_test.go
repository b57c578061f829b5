package views

import (
	"testing"
	"time"

	"go-demobank/models"
)

func debit(category models.Category, amount float64, merchant string, date time.Time) models.Transaction {
	return models.Transaction{
		AccountID: "acc-test",
		Type:      models.Debit,
		Category:  category,
		Amount:    amount,
		Merchant:  merchant,
		Status:    models.StatusCompleted,
		Date:      date,
	}
}

func TestCategorySpend_SumsCountsAndPercentages(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		debit(models.CategoryDining, 50, "A", now),
		debit(models.CategoryDining, 50, "B", now),
		debit(models.CategoryShopping, 100, "C", now),
	}

	summaries := CategorySpend(txs)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summaries))
	}

	// Tied amounts keep first-seen order.
	dining, shopping := summaries[0], summaries[1]
	if dining.Category != models.CategoryDining || shopping.Category != models.CategoryShopping {
		t.Fatalf("unexpected ordering: %+v", summaries)
	}
	if dining.Amount != 100 || dining.Count != 2 || dining.Percentage != 50.0 {
		t.Errorf("dining summary wrong: %+v", dining)
	}
	if shopping.Amount != 100 || shopping.Count != 1 || shopping.Percentage != 50.0 {
		t.Errorf("shopping summary wrong: %+v", shopping)
	}
}

func TestCategorySpend_SortsDescendingByAmount(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		debit(models.CategoryDining, 10, "A", now),
		debit(models.CategoryTravel, 300, "B", now),
		debit(models.CategoryShopping, 40, "C", now),
	}

	summaries := CategorySpend(txs)
	for i := 1; i < len(summaries); i++ {
		if summaries[i].Amount > summaries[i-1].Amount {
			t.Fatalf("not sorted descending: %+v", summaries)
		}
	}
	if summaries[0].Category != models.CategoryTravel {
		t.Errorf("expected travel on top, got %s", summaries[0].Category)
	}
}

func TestCategorySpend_IgnoresCredits(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		debit(models.CategoryDining, 50, "A", now),
		{Type: models.Credit, Category: models.CategoryIncome, Amount: 6400, Date: now},
	}

	summaries := CategorySpend(txs)
	if len(summaries) != 1 || summaries[0].Category != models.CategoryDining {
		t.Fatalf("credit transactions leaked into spend: %+v", summaries)
	}
	if summaries[0].Percentage != 100.0 {
		t.Errorf("expected 100%% share, got %v", summaries[0].Percentage)
	}
}

func TestCategorySpend_ZeroTotalYieldsZeroPercent(t *testing.T) {
	// Zero-amount debits exercise the division-by-zero guard.
	txs := []models.Transaction{debit(models.CategoryDining, 0, "A", time.Now())}

	summaries := CategorySpend(txs)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Percentage != 0 {
		t.Errorf("expected 0%% when total spend is 0, got %v", summaries[0].Percentage)
	}
}

func TestCategorySpend_NormalizesUnknownCategories(t *testing.T) {
	now := time.Now()
	txs := []models.Transaction{
		debit("mystery-bucket", 30, "A", now),
		debit(models.CategoryOther, 20, "B", now),
	}

	summaries := CategorySpend(txs)
	if len(summaries) != 1 || summaries[0].Category != models.CategoryOther {
		t.Fatalf("expected unknown categories to collapse into 'other': %+v", summaries)
	}
	if summaries[0].Amount != 50 || summaries[0].Count != 2 {
		t.Errorf("unexpected 'other' rollup: %+v", summaries[0])
	}
}

func TestTopMerchants_RanksAndTruncatesToFive(t *testing.T) {
	now := time.Now()
	var txs []models.Transaction
	amounts := map[string]float64{
		"M1": 10, "M2": 60, "M3": 30, "M4": 90, "M5": 20, "M6": 45,
	}
	for merchant, amount := range amounts {
		txs = append(txs, debit(models.CategoryShopping, amount, merchant, now))
	}
	// Repeat visits accumulate.
	txs = append(txs, debit(models.CategoryShopping, 15, "M1", now))

	merchants := TopMerchants(txs)
	if len(merchants) != 5 {
		t.Fatalf("expected top 5, got %d", len(merchants))
	}
	if merchants[0].Merchant != "M4" || merchants[0].Amount != 90 {
		t.Errorf("expected M4 on top, got %+v", merchants[0])
	}
	for i := 1; i < len(merchants); i++ {
		if merchants[i].Amount > merchants[i-1].Amount {
			t.Fatalf("not sorted descending: %+v", merchants)
		}
	}
	for _, m := range merchants {
		if m.Merchant == "M1" {
			if m.Amount != 25 || m.Count != 2 {
				t.Errorf("expected M1 to accumulate two visits, got %+v", m)
			}
		}
		if m.Merchant == "M5" {
			t.Error("expected the smallest merchant to fall off the top 5")
		}
	}
}

func TestGroupByDate_BucketsAndPreservesOrder(t *testing.T) {
	june15 := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	june14 := time.Date(2025, time.June, 14, 20, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		debit(models.CategoryDining, 1, "first", june15.Add(2*time.Hour)),
		debit(models.CategoryDining, 2, "second", june15),
		debit(models.CategoryDining, 3, "third", june14),
	}

	groups := GroupByDate(txs)
	if len(groups) != 2 {
		t.Fatalf("expected 2 date buckets, got %d", len(groups))
	}
	if groups[0].Date != "June 15, 2025" {
		t.Errorf("expected long-form date key, got %q", groups[0].Date)
	}
	if groups[1].Date != "June 14, 2025" {
		t.Errorf("expected second bucket 'June 14, 2025', got %q", groups[1].Date)
	}
	if groups[0].Transactions[0].Merchant != "first" || groups[0].Transactions[1].Merchant != "second" {
		t.Errorf("input order not preserved within bucket: %+v", groups[0].Transactions)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(groups))
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.June, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period Period
		want   time.Time
	}{
		{PeriodWeek, time.Date(2025, time.June, 13, 15, 30, 0, 0, time.UTC)},
		{PeriodMonth, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Period("bogus"), time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		if got := PeriodStart(tc.period, now); !got.Equal(tc.want) {
			t.Errorf("PeriodStart(%q) = %v, want %v", tc.period, got, tc.want)
		}
	}
}

func TestFilterSince_InclusiveCutoff(t *testing.T) {
	cutoff := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		debit(models.CategoryDining, 1, "on-cutoff", cutoff),
		debit(models.CategoryDining, 2, "after", cutoff.AddDate(0, 0, 3)),
		debit(models.CategoryDining, 3, "before", cutoff.Add(-time.Second)),
	}

	kept := FilterSince(txs, cutoff)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept transactions, got %d", len(kept))
	}
	for _, tx := range kept {
		if tx.Merchant == "before" {
			t.Error("transaction before the cutoff was kept")
		}
	}
}
