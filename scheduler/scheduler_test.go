package scheduler

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go-demobank/models"
)

type billPayerStub struct {
	bills  []models.Bill
	paid   []string
	payErr map[string]error
}

func (s *billPayerStub) Bills() []models.Bill {
	return s.bills
}

func (s *billPayerStub) PayBill(billID, accountID string) (models.Transaction, error) {
	if err := s.payErr[billID]; err != nil {
		return models.Transaction{}, err
	}
	s.paid = append(s.paid, billID)
	return models.Transaction{ID: "txn-" + billID, AccountID: accountID}, nil
}

func newTestJobs(store BillPayer, now time.Time) *Jobs {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobs := NewJobs(store, logger)
	jobs.now = func() time.Time { return now }
	return jobs
}

func TestRunAutopay_PaysDueAutopayBills(t *testing.T) {
	now := time.Date(2025, time.June, 20, 6, 0, 0, 0, time.UTC)
	store := &billPayerStub{bills: []models.Bill{
		{ID: "b-due", Autopay: true, IsPaid: false, DueDate: now.AddDate(0, 0, -1), SourceAccountID: "acc-1"},
		{ID: "b-future", Autopay: true, IsPaid: false, DueDate: now.AddDate(0, 0, 5), SourceAccountID: "acc-1"},
		{ID: "b-manual", Autopay: false, IsPaid: false, DueDate: now.AddDate(0, 0, -2), SourceAccountID: "acc-1"},
		{ID: "b-paid", Autopay: true, IsPaid: true, DueDate: now.AddDate(0, 0, -2), SourceAccountID: "acc-1"},
	}}

	newTestJobs(store, now).RunAutopay()

	if len(store.paid) != 1 || store.paid[0] != "b-due" {
		t.Errorf("expected only the due autopay bill to be paid, got %v", store.paid)
	}
}

func TestRunAutopay_SkipsBillsWithoutSourceAccount(t *testing.T) {
	now := time.Date(2025, time.June, 20, 6, 0, 0, 0, time.UTC)
	store := &billPayerStub{bills: []models.Bill{
		{ID: "b-no-source", Autopay: true, IsPaid: false, DueDate: now.AddDate(0, 0, -1)},
	}}

	newTestJobs(store, now).RunAutopay()

	if len(store.paid) != 0 {
		t.Errorf("expected no payments, got %v", store.paid)
	}
}

func TestRunAutopay_FailureDoesNotStopSweep(t *testing.T) {
	now := time.Date(2025, time.June, 20, 6, 0, 0, 0, time.UTC)
	store := &billPayerStub{
		bills: []models.Bill{
			{ID: "b-fails", Autopay: true, IsPaid: false, DueDate: now.AddDate(0, 0, -1), SourceAccountID: "acc-1"},
			{ID: "b-ok", Autopay: true, IsPaid: false, DueDate: now.AddDate(0, 0, -1), SourceAccountID: "acc-1"},
		},
		payErr: map[string]error{"b-fails": errors.New("account missing")},
	}

	newTestJobs(store, now).RunAutopay()

	if len(store.paid) != 1 || store.paid[0] != "b-ok" {
		t.Errorf("expected the sweep to continue past failures, got %v", store.paid)
	}
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobs := NewJobs(&billPayerStub{}, logger)
	if _, err := Start("not a cron spec", jobs, logger); err == nil {
		t.Fatal("expected an invalid cron schedule to be rejected")
	}
}

func TestStart_ValidSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobs := NewJobs(&billPayerStub{}, logger)
	c, err := Start("0 6 * * *", jobs, logger)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Stop()
}
