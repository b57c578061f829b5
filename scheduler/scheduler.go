// Package scheduler runs the autopay job: bills flagged for autopay are
// paid from their source account once they come due, giving the seed
// data's autopay flag actual behavior instead of cosmetic state.
package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"go-demobank/models"
)

// BillPayer is the slice of the data store the autopay job needs.
type BillPayer interface {
	Bills() []models.Bill
	PayBill(billID, accountID string) (models.Transaction, error)
}

// Jobs holds the scheduled work and its dependencies.
type Jobs struct {
	store  BillPayer
	logger *slog.Logger
	now    func() time.Time
}

// NewJobs wires the autopay job to a store.
func NewJobs(store BillPayer, logger *slog.Logger) *Jobs {
	return &Jobs{store: store, logger: logger, now: time.Now}
}

// RunAutopay pays every unpaid autopay bill whose due date has arrived.
// Bills without a source account are skipped; individual failures are
// logged and do not stop the sweep.
func (j *Jobs) RunAutopay() {
	now := j.now()
	for _, bill := range j.store.Bills() {
		if !bill.Autopay || bill.IsPaid || bill.DueDate.After(now) {
			continue
		}
		if bill.SourceAccountID == "" {
			j.logger.Warn("autopay bill has no source account, skipping", "bill_id", bill.ID, "payee", bill.Payee)
			continue
		}
		tx, err := j.store.PayBill(bill.ID, bill.SourceAccountID)
		if err != nil {
			j.logger.Error("autopay payment failed", "bill_id", bill.ID, "payee", bill.Payee, "error", err)
			continue
		}
		j.logger.Info("autopay payment completed",
			"bill_id", bill.ID, "payee", bill.Payee, "amount", bill.Amount, "transaction_id", tx.ID)
	}
}

// Start registers the autopay job on the given cron schedule and starts
// the scheduler. The returned cron can be stopped on shutdown.
func Start(schedule string, jobs *Jobs, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, jobs.RunAutopay); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("autopay scheduler started", "schedule", schedule)
	return c, nil
}
